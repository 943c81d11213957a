package lists

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vidscope/vidscope-desktop/internal/api"
	"github.com/vidscope/vidscope-desktop/internal/cache"
	"github.com/vidscope/vidscope-desktop/internal/model"
)

// Guard errors raised before any network call is attempted
var (
	// ErrEmptyName rejects empty or whitespace-only list names
	ErrEmptyName = errors.New("list name must not be empty")

	// ErrDefaultList rejects rename/delete of the protected default list
	ErrDefaultList = errors.New("the default list cannot be renamed or deleted")
)

// RefreshFunc receives the freshly re-fetched list after a mutation
type RefreshFunc func(list *model.List)

// CollectionRefreshFunc receives the re-fetched list collection after a
// mutation that changes which lists exist.
type CollectionRefreshFunc func(lists []*model.List)

// Service performs list CRUD and membership mutations. The client keeps
// no authoritative list state: after every successful mutation the
// affected list (or the whole collection) is re-fetched from the backend
// and pushed to subscribed views. Views additionally re-fetch on their
// own open; this is pull on demand, not push on change.
type Service struct {
	backend api.Backend
	ownerID func() string
	videos  *cache.Loader[string, *model.Video]

	mu             sync.RWMutex
	subscribers    map[string]map[string]RefreshFunc
	collectionSubs map[string]CollectionRefreshFunc
}

// NewService creates a list mutation service. ownerID supplies the
// session user whose collection is refreshed after create/delete.
func NewService(backend api.Backend, ownerID func() string) *Service {
	return &Service{
		backend:        backend,
		ownerID:        ownerID,
		videos:         cache.NewLoader(backend.GetVideo),
		subscribers:    make(map[string]map[string]RefreshFunc),
		collectionSubs: make(map[string]CollectionRefreshFunc),
	}
}

// Subscribe registers a view for refreshes of one list. The returned
// function unsubscribes; callers must invoke it on view teardown.
func (s *Service) Subscribe(listID string, fn RefreshFunc) func() {
	id := uuid.NewString()

	s.mu.Lock()
	if s.subscribers[listID] == nil {
		s.subscribers[listID] = make(map[string]RefreshFunc)
	}
	s.subscribers[listID][id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if subs, ok := s.subscribers[listID]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(s.subscribers, listID)
			}
		}
	}
}

// SubscribeCollection registers a view for refreshes of the whole list
// collection (create/rename/delete).
func (s *Service) SubscribeCollection(fn CollectionRefreshFunc) func() {
	id := uuid.NewString()

	s.mu.Lock()
	s.collectionSubs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.collectionSubs, id)
	}
}

// CreateList creates a new list and refreshes the collection
func (s *Service) CreateList(ctx context.Context, name string) (*model.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	list, err := s.backend.CreateList(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	s.refreshCollection(ctx)
	return list, nil
}

// RenameList renames a list. The default list is rejected client-side
// without a network call, as is an empty name.
func (s *Service) RenameList(ctx context.Context, list *model.List, name string) error {
	if list.IsDefault {
		return ErrDefaultList
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	if err := s.backend.RenameList(ctx, list.ID, name); err != nil {
		return fmt.Errorf("failed to rename list: %w", err)
	}

	s.refreshList(ctx, list.ID)
	s.refreshCollection(ctx)
	return nil
}

// DeleteList deletes a list. The default list is rejected client-side
// without a network call.
func (s *Service) DeleteList(ctx context.Context, list *model.List) error {
	if list.IsDefault {
		return ErrDefaultList
	}

	if err := s.backend.DeleteList(ctx, list.ID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	s.refreshCollection(ctx)
	return nil
}

// AddVideo adds a video to a list and refreshes that list's views
func (s *Service) AddVideo(ctx context.Context, listID, videoID string) error {
	if err := s.backend.AddListVideo(ctx, listID, videoID); err != nil {
		return fmt.Errorf("failed to add video to list: %w", err)
	}

	s.refreshList(ctx, listID)
	return nil
}

// RemoveVideo removes a video from a list and refreshes that list's views
func (s *Service) RemoveVideo(ctx context.Context, listID, videoID string) error {
	if err := s.backend.RemoveListVideo(ctx, listID, videoID); err != nil {
		return fmt.Errorf("failed to remove video from list: %w", err)
	}

	s.refreshList(ctx, listID)
	return nil
}

// AddToLists adds one video to several lists at once. All mutations fire
// concurrently and AddToLists waits for every one to settle. A partial
// failure surfaces as a single error; lists that succeeded are not
// rolled back (accepted behaviour, there is no transactionality across
// lists).
func (s *Service) AddToLists(ctx context.Context, videoID string, listIDs ...string) error {
	if len(listIDs) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(listIDs))

	for i, listID := range listIDs {
		wg.Add(1)
		go func(i int, listID string) {
			defer wg.Done()
			errs[i] = s.backend.AddListVideo(ctx, listID, videoID)
		}(i, listID)
	}
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			log.Printf("Adding video %s to list %s failed: %v", videoID, listIDs[i], err)
			continue
		}
		s.refreshList(ctx, listIDs[i])
	}

	if failed > 0 {
		return fmt.Errorf("adding the video failed for %d of %d lists", failed, len(listIDs))
	}
	return nil
}

// ResolveVideo hydrates an id-only membership entry into the full video
// object. Concurrent resolves of the same id share one backend fetch,
// and a successful result is memoized for the session; a failed fetch is
// not cached and the next call retries.
func (s *Service) ResolveVideo(ctx context.Context, videoID string) (*model.Video, error) {
	video, err := s.videos.Resolve(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve video %s: %w", videoID, err)
	}
	return video, nil
}

// GetList fetches a list directly; views call this on their own open
// instead of relying on pushed state.
func (s *Service) GetList(ctx context.Context, listID string) (*model.List, error) {
	list, err := s.backend.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load list: %w", err)
	}
	return list, nil
}

// GetLists fetches the session user's full collection
func (s *Service) GetLists(ctx context.Context) ([]*model.List, error) {
	lists, err := s.backend.GetLists(ctx, s.ownerID())
	if err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	return lists, nil
}

// refreshList re-fetches one list and notifies its subscribed views. A
// failed refresh is logged, not surfaced: the mutation itself already
// succeeded and views will re-pull on their next open.
func (s *Service) refreshList(ctx context.Context, listID string) {
	s.mu.RLock()
	count := len(s.subscribers[listID])
	s.mu.RUnlock()
	if count == 0 {
		return
	}

	list, err := s.backend.GetList(ctx, listID)
	if err != nil {
		log.Printf("Post-mutation refresh of list %s failed: %v", listID, err)
		return
	}

	s.mu.RLock()
	fns := make([]RefreshFunc, 0, count)
	for _, fn := range s.subscribers[listID] {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(list)
	}
}

// refreshCollection re-fetches the owner's collection and notifies
// collection subscribers.
func (s *Service) refreshCollection(ctx context.Context) {
	s.mu.RLock()
	count := len(s.collectionSubs)
	s.mu.RUnlock()
	if count == 0 {
		return
	}

	lists, err := s.backend.GetLists(ctx, s.ownerID())
	if err != nil {
		log.Printf("Post-mutation refresh of list collection failed: %v", err)
		return
	}

	s.mu.RLock()
	fns := make([]CollectionRefreshFunc, 0, count)
	for _, fn := range s.collectionSubs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(lists)
	}
}
