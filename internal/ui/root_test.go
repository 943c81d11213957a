package ui

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"

	"github.com/vidscope/vidscope-desktop/internal/config"
	"github.com/vidscope/vidscope-desktop/internal/feed"
	"github.com/vidscope/vidscope-desktop/internal/lists"
	"github.com/vidscope/vidscope-desktop/internal/model"
	"github.com/vidscope/vidscope-desktop/internal/thumbs"
)

// stubBackend returns empty feeds; the UI tests only exercise widget
// construction and rendering decisions.
type stubBackend struct{}

func (stubBackend) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	return nil, errors.New("not implemented")
}

func (stubBackend) ListVideos(ctx context.Context, category string, sort model.SortKey) ([]*model.Video, error) {
	return nil, nil
}

func (stubBackend) GetFriendsFeed(ctx context.Context, userID string) ([]*model.Video, error) {
	return nil, nil
}

func (stubBackend) GetCuratedPicks(ctx context.Context) ([]*model.Video, error) {
	return nil, nil
}

func (stubBackend) GetTrending(ctx context.Context) ([]*model.Video, error) {
	return nil, nil
}

func (stubBackend) GetLatestSubmission(ctx context.Context, videoID string) (*model.Submission, error) {
	return nil, errors.New("not implemented")
}

func (stubBackend) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return nil, errors.New("not implemented")
}

func (stubBackend) GetLists(ctx context.Context, ownerID string) ([]*model.List, error) {
	return nil, nil
}

func (stubBackend) GetList(ctx context.Context, id string) (*model.List, error) {
	return nil, errors.New("not implemented")
}

func (stubBackend) CreateList(ctx context.Context, name string) (*model.List, error) {
	return nil, errors.New("not implemented")
}

func (stubBackend) RenameList(ctx context.Context, id, name string) error {
	return errors.New("not implemented")
}

func (stubBackend) DeleteList(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (stubBackend) AddListVideo(ctx context.Context, listID, videoID string) error {
	return errors.New("not implemented")
}

func (stubBackend) RemoveListVideo(ctx context.Context, listID, videoID string) error {
	return errors.New("not implemented")
}

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()

	testApp := test.NewApp()
	window := testApp.NewWindow("test")

	backend := stubBackend{}
	session := config.NewSession()
	feedCtrl := feed.NewController(backend, session.UserID)
	listSvc := lists.NewService(backend, session.UserID)
	resolver := thumbs.NewResolver(&http.Client{})

	return NewRootUI(window, testApp, backend, session, feedCtrl, listSvc, resolver)
}

func TestNewRootUIConstructs(t *testing.T) {
	// Constructing the root UI must not panic: the sort select fires
	// its callback synchronously while the widgets are being built
	ui := newTestRootUI(t)

	if ui.sortSelect == nil || ui.categoryBox == nil {
		t.Fatal("Expected discover controls to be initialized")
	}
	if ui.sortSelect.SelectedIndex() != 0 {
		t.Errorf("Expected sort select to default to index 0, got %d", ui.sortSelect.SelectedIndex())
	}
	if n := len(ui.tabs.Items); n != 5 {
		t.Errorf("Expected 5 tabs, got %d", n)
	}
}

func TestShouldRenderNeverDropsStateTransitions(t *testing.T) {
	// A bare RootUI keeps the initial background fetch from stamping
	// the debounce fields mid-test
	ui := &RootUI{}

	query := model.FeedQuery{Mode: model.FeedModeDefault}
	loading := feed.Snapshot{Query: query, Loading: true}
	settled := feed.Snapshot{Query: query, Items: []*model.Video{{ID: "v1", Title: "One"}}}
	failed := feed.Snapshot{Query: query, Err: errors.New("boom")}

	if !ui.shouldRender(loading) {
		t.Fatal("Expected the loading snapshot to render")
	}

	// The fetch settling right after the loading notification must
	// render even inside the debounce window
	if !ui.shouldRender(settled) {
		t.Fatal("Expected the settled snapshot to render immediately after loading")
	}

	// A repeat render of settled content inside the window is paced
	if ui.shouldRender(settled) {
		t.Error("Expected a repeated settled snapshot to be debounced")
	}

	// Errors always render
	if !ui.shouldRender(failed) {
		t.Error("Expected the error snapshot to render")
	}
	if !ui.shouldRender(loading) {
		t.Error("Expected a new loading snapshot to render")
	}
}

func TestShouldRenderPacesOnlyWithinWindow(t *testing.T) {
	ui := &RootUI{}

	settled := feed.Snapshot{
		Query: model.FeedQuery{Mode: model.FeedModeDefault},
		Items: []*model.Video{{ID: "v1", Title: "One"}},
	}

	if !ui.shouldRender(settled) {
		t.Fatal("Expected the first settled snapshot to render")
	}

	ui.uiUpdateMutex.Lock()
	ui.lastUIUpdate = time.Now().Add(-2 * UIUpdateDebounce)
	ui.uiUpdateMutex.Unlock()

	if !ui.shouldRender(settled) {
		t.Error("Expected a settled snapshot outside the window to render")
	}
}

func TestFeedCardListUsesCategoryLookup(t *testing.T) {
	test.NewApp()

	loc := NewLocalization()
	resolver := thumbs.NewResolver(&http.Client{})

	// The video itself carries no category; the lookup stands in for
	// the controller's enrichment cache
	snapshot := feed.Snapshot{
		Query: model.FeedQuery{Mode: model.FeedModeDefault},
		Items: []*model.Video{{ID: "v1", Title: "One"}},
	}
	lookup := func(v *model.Video) string { return "Music" }

	obj := feedCardList(snapshot, lookup, resolver, loc, nil)

	scroll, ok := obj.(*container.Scroll)
	if !ok {
		t.Fatalf("Expected a scroll container, got %T", obj)
	}
	column := scroll.Content.(*fyne.Container)
	card, ok := column.Objects[0].(*VideoCard)
	if !ok {
		t.Fatalf("Expected a video card, got %T", column.Objects[0])
	}

	if card.category.Text != "Music" {
		t.Errorf("Expected the enriched category 'Music' on the card, got '%s'", card.category.Text)
	}
}
