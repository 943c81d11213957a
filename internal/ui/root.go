package ui

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidscope/vidscope-desktop/internal/api"
	"github.com/vidscope/vidscope-desktop/internal/config"
	"github.com/vidscope/vidscope-desktop/internal/feed"
	"github.com/vidscope/vidscope-desktop/internal/lists"
	"github.com/vidscope/vidscope-desktop/internal/model"
	"github.com/vidscope/vidscope-desktop/internal/thumbs"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	session      *config.Session
	localization *Localization

	backend  api.Backend
	feedCtrl *feed.Controller
	resolver *thumbs.Resolver

	tabs         *container.AppTabs
	discoverBody *fyne.Container
	friendsBody  *fyne.Container
	sortSelect   *widget.Select
	categoryBox  *widget.Entry

	picksView    *PicksView
	trendingView *TrendingView
	listsView    *ListsView

	// UI update debouncing for enrichment bursts
	lastUIUpdate  time.Time
	lastSettled   bool
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, backend api.Backend, session *config.Session, feedCtrl *feed.Controller, listSvc *lists.Service, resolver *thumbs.Resolver) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		session:      session,
		localization: localization,
		backend:      backend,
		feedCtrl:     feedCtrl,
		resolver:     resolver,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Feed updates arrive on controller goroutines
	ui.feedCtrl.SetUpdateCallback(ui.onFeedUpdate)

	ui.picksView = NewPicksView(backend, resolver, localization, ui.onVideoTapped)
	ui.trendingView = NewTrendingView(backend, resolver, settings, localization)
	ui.listsView = NewListsView(listSvc, window, localization)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Sort and category controls only apply to the default mode. The
	// category entry must exist before the select gets its callback:
	// SetSelectedIndex fires the callback synchronously.
	ui.categoryBox = widget.NewEntry()
	ui.categoryBox.SetPlaceHolder(ui.localization.GetText(KeyCategoryFilter))
	ui.categoryBox.OnSubmitted = func(string) {
		ui.applyDiscoverQuery()
	}

	ui.sortSelect = widget.NewSelect(ui.sortOptions(), nil)
	ui.sortSelect.SetSelectedIndex(0)
	ui.sortSelect.OnChanged = func(string) {
		ui.applyDiscoverQuery()
	}

	controls := container.NewBorder(nil, nil, ui.sortSelect, nil, ui.categoryBox)

	ui.discoverBody = container.NewStack()
	ui.friendsBody = container.NewStack()

	discoverTab := container.NewBorder(controls, nil, nil, nil, ui.discoverBody)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabAll), discoverTab),
		container.NewTabItem(ui.localization.GetText(KeyTabFriends), ui.friendsBody),
		container.NewTabItem(ui.localization.GetText(KeyTabPicks), ui.picksView.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabTrending), ui.trendingView.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabLists), ui.listsView.Content()),
	)
	ui.tabs.OnSelected = ui.onTabSelected

	ui.window.SetContent(ui.tabs)
	ui.window.SetOnClosed(ui.teardown)

	// Load the initial tab
	ui.applyDiscoverQuery()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		lang := code
		languageMenu.Items = append(languageMenu.Items, fyne.NewMenuItem(name, func() {
			ui.settings.SetLanguage(lang)
			ui.localization.SetLanguage(lang)
		}))
	}

	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile))
	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onTabSelected switches the active feed mode and manages the
// trending rotation timer
func (ui *RootUI) onTabSelected(tab *container.TabItem) {
	// The rotation timer must not run while another tab is shown
	if tab.Text == ui.localization.GetText(KeyTabTrending) {
		ui.trendingView.Load(context.Background())
		ui.trendingView.Show()
	} else {
		ui.trendingView.Hide()
	}

	switch tab.Text {
	case ui.localization.GetText(KeyTabAll):
		ui.applyDiscoverQuery()
	case ui.localization.GetText(KeyTabFriends):
		ui.feedCtrl.SetQuery(context.Background(), model.FeedQuery{Mode: model.FeedModeFriends})
	case ui.localization.GetText(KeyTabPicks):
		ui.picksView.Load(context.Background())
	case ui.localization.GetText(KeyTabLists):
		ui.listsView.Load(context.Background())
	}
}

// applyDiscoverQuery submits the default-mode query built from the
// sort and category controls
func (ui *RootUI) applyDiscoverQuery() {
	ui.feedCtrl.SetQuery(context.Background(), model.FeedQuery{
		Mode:           model.FeedModeDefault,
		CategoryFilter: ui.categoryBox.Text,
		Sort:           ui.selectedSort(),
	})
}

// sortOptions returns the localized sort choice labels
func (ui *RootUI) sortOptions() []string {
	return []string{
		ui.localization.GetText(KeySortNewest),
		ui.localization.GetText(KeySortRatingDesc),
		ui.localization.GetText(KeySortRatingAsc),
	}
}

// selectedSort maps the select widget back to a sort key
func (ui *RootUI) selectedSort() model.SortKey {
	switch ui.sortSelect.SelectedIndex() {
	case 1:
		return model.SortRatingDesc
	case 2:
		return model.SortRatingAsc
	default:
		return model.SortNewest
	}
}

// onFeedUpdate renders a feed snapshot into the tab it belongs to
func (ui *RootUI) onFeedUpdate(snapshot feed.Snapshot) {
	if !ui.shouldRender(snapshot) {
		return
	}

	fyne.Do(func() {
		body := ui.discoverBody
		if snapshot.Query.Mode == model.FeedModeFriends {
			body = ui.friendsBody
		}

		body.RemoveAll()
		body.Add(ui.renderSnapshot(snapshot))
		body.Refresh()
	})
}

// shouldRender decides whether a snapshot is rendered or debounced.
// State transitions (into loading, into an error, a fetch settling)
// always render; only repeat renders of already-settled content are
// paced, to absorb per-item enrichment bursts.
func (ui *RootUI) shouldRender(snapshot feed.Snapshot) bool {
	settled := !snapshot.Loading && snapshot.Err == nil

	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	if settled && ui.lastSettled && time.Since(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}

	ui.lastUIUpdate = time.Now()
	ui.lastSettled = settled
	return true
}

// renderSnapshot builds the canvas object for one feed state
func (ui *RootUI) renderSnapshot(snapshot feed.Snapshot) fyne.CanvasObject {
	if snapshot.Loading {
		return container.NewCenter(container.NewVBox(
			widget.NewLabel(ui.localization.GetText(KeyLoading)),
			widget.NewProgressBarInfinite(),
		))
	}

	if snapshot.Err != nil {
		log.Printf("Feed error: %v", snapshot.Err)
		retry := widget.NewButton(ui.localization.GetText(KeyRetry), func() {
			ui.feedCtrl.Reload(context.Background())
		})
		return container.NewCenter(container.NewVBox(
			widget.NewLabel(ui.localization.GetText(KeyFeedError)),
			retry,
		))
	}

	return feedCardList(snapshot, ui.feedCtrl.CategoryName, ui.resolver, ui.localization, ui.onVideoTapped)
}

// teardown releases the rotation timer and list subscriptions when the
// window closes
func (ui *RootUI) teardown() {
	ui.trendingView.Hide()
	ui.listsView.Teardown()
}

// onVideoTapped opens the add-to-lists dialog for a card
func (ui *RootUI) onVideoTapped(video model.Video) {
	ui.listsView.ShowAddToListsDialog(video)
}
