package feed

import (
	"context"
	"log"
	"sync"

	"github.com/vidscope/vidscope-desktop/internal/api"
	"github.com/vidscope/vidscope-desktop/internal/cache"
	"github.com/vidscope/vidscope-desktop/internal/model"
)

// Snapshot is the controller state handed to the UI on every change
type Snapshot struct {
	Query   model.FeedQuery
	Items   []*model.Video
	Loading bool
	Err     error
}

// Controller orchestrates the Discover feed modes. Changing the query
// discards the previous result set and issues a fresh fetch; a loading
// or error state is terminal until the next query change. Results of a
// superseded fetch are dropped, never committed over newer state.
type Controller struct {
	backend api.Backend
	userID  func() string

	mu         sync.RWMutex
	query      model.FeedQuery
	items      []*model.Video
	loading    bool
	lastErr    error
	generation uint64

	categories *cache.Loader[string, string]
	onUpdate   func(Snapshot)
}

// NewController creates a feed controller. userID supplies the session
// user for the friends feed.
func NewController(backend api.Backend, userID func() string) *Controller {
	c := &Controller{
		backend: backend,
		userID:  userID,
	}

	c.categories = cache.NewLoader(func(ctx context.Context, videoID string) (string, error) {
		submission, err := c.backend.GetLatestSubmission(ctx, videoID)
		if err != nil {
			return "", err
		}
		category, err := c.backend.GetCategory(ctx, submission.CategoryID)
		if err != nil {
			return "", err
		}
		return category.Name, nil
	})

	return c
}

// SetUpdateCallback sets the callback function for state changes
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Snapshot returns the current controller state
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Query:   c.query,
		Items:   c.items,
		Loading: c.loading,
		Err:     c.lastErr,
	}
}

// SetQuery switches the feed to a new mode/filter/sort and starts a
// fresh fetch. The previous result set is discarded, not merged.
func (c *Controller) SetQuery(ctx context.Context, query model.FeedQuery) {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.query = query
	c.items = nil
	c.loading = true
	c.lastErr = nil
	c.mu.Unlock()

	c.notify()

	go c.load(ctx, generation, query)
}

// Reload re-issues the fetch for the current query, used by the retry
// affordance on a failed feed.
func (c *Controller) Reload(ctx context.Context) {
	c.mu.RLock()
	query := c.query
	c.mu.RUnlock()
	c.SetQuery(ctx, query)
}

// load fetches the feed for one query generation and commits the result
// only if no newer query has superseded it.
func (c *Controller) load(ctx context.Context, generation uint64, query model.FeedQuery) {
	items, err := c.fetch(ctx, query)

	c.mu.Lock()
	if c.generation != generation {
		// A newer query is in flight or committed; this response is stale
		c.mu.Unlock()
		log.Printf("Dropping stale feed response for mode %s", query.Mode)
		return
	}

	if err != nil {
		c.loading = false
		c.lastErr = err
		c.mu.Unlock()
		log.Printf("Feed fetch failed for mode %s: %v", query.Mode, err)
		c.notify()
		return
	}

	if query.Mode == model.FeedModeDefault {
		items = SortVideos(items, query.Sort)
	}

	c.items = items
	c.loading = false
	c.mu.Unlock()

	c.notify()
	c.enrich(ctx, generation, items)
}

// fetch issues the one network call appropriate to the query's mode
func (c *Controller) fetch(ctx context.Context, query model.FeedQuery) ([]*model.Video, error) {
	switch query.Mode {
	case model.FeedModeFriends:
		return c.backend.GetFriendsFeed(ctx, c.userID())
	case model.FeedModeCurated:
		return c.backend.GetCuratedPicks(ctx)
	case model.FeedModeTrending:
		return c.backend.GetTrending(ctx)
	default:
		return c.backend.ListVideos(ctx, query.CategoryFilter, query.Sort)
	}
}

// enrich resolves category names for items that lack one. Each lookup is
// memoized per video id; a failed lookup degrades that one item to an
// empty category and never fails the feed.
func (c *Controller) enrich(ctx context.Context, generation uint64, items []*model.Video) {
	var wg sync.WaitGroup
	changed := false
	var changedMu sync.Mutex

	for _, item := range items {
		if item.CategoryName != "" {
			continue
		}

		wg.Add(1)
		go func(videoID string) {
			defer wg.Done()
			if _, err := c.categories.Resolve(ctx, videoID); err != nil {
				log.Printf("Category enrichment failed for video %s: %v", videoID, err)
				return
			}
			changedMu.Lock()
			changed = true
			changedMu.Unlock()
		}(item.ID)
	}

	wg.Wait()

	c.mu.RLock()
	stale := c.generation != generation
	c.mu.RUnlock()

	if changed && !stale {
		c.notify()
	}
}

// CategoryName returns the display category for a video: the item's own
// denormalized name when present, otherwise the enriched value, otherwise
// the degraded empty string.
func (c *Controller) CategoryName(v *model.Video) string {
	if v.CategoryName != "" {
		return v.CategoryName
	}
	if name, ok := c.categories.Peek(v.ID); ok {
		return name
	}
	return ""
}

// notify calls the update callback with a fresh snapshot if set
func (c *Controller) notify() {
	c.mu.RLock()
	callback := c.onUpdate
	c.mu.RUnlock()

	if callback != nil {
		callback(c.Snapshot())
	}
}
