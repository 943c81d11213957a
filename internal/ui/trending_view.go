package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidscope/vidscope-desktop/internal/api"
	"github.com/vidscope/vidscope-desktop/internal/config"
	"github.com/vidscope/vidscope-desktop/internal/stack"
	"github.com/vidscope/vidscope-desktop/internal/thumbs"
)

// TrendingView shows the trending rotation: one large front card that
// advances on a timer, with a small overlay strip of upcoming videos.
// The timer only runs while the view is visible.
type TrendingView struct {
	backend      api.Backend
	resolver     *thumbs.Resolver
	settings     *config.Settings
	localization *Localization

	rotation *stack.RotationStack
	content  *fyne.Container
	visible  bool
}

// NewTrendingView creates the trending view
func NewTrendingView(backend api.Backend, resolver *thumbs.Resolver, settings *config.Settings, loc *Localization) *TrendingView {
	tv := &TrendingView{
		backend:      backend,
		resolver:     resolver,
		settings:     settings,
		localization: loc,
		rotation:     stack.NewRotationStack(nil),
		content:      container.NewStack(),
	}

	tv.render()
	return tv
}

// Content returns the view's root canvas object
func (tv *TrendingView) Content() fyne.CanvasObject {
	return tv.content
}

// Load fetches the trending videos and rebuilds the rotation
func (tv *TrendingView) Load(ctx context.Context) {
	go func() {
		trending, err := tv.backend.GetTrending(ctx)
		if err != nil {
			log.Printf("Failed to load trending videos: %v", err)
			return
		}

		fyne.Do(func() {
			tv.rotation.Stop()
			tv.rotation = stack.NewRotationStack(trending)
			tv.rotation.SetAdvanceCallback(func(pointer int) {
				fyne.Do(tv.render)
			})

			tv.render()
			if tv.visible {
				tv.rotation.Start(tv.settings.GetRotationInterval())
			}
		})
	}()
}

// Show marks the view visible and starts the rotation timer
func (tv *TrendingView) Show() {
	tv.visible = true
	tv.rotation.Start(tv.settings.GetRotationInterval())
}

// Hide stops the rotation timer; it must not keep firing while
// another tab is active
func (tv *TrendingView) Hide() {
	tv.visible = false
	tv.rotation.Stop()
}

// render rebuilds the front card and the overlay strip
func (tv *TrendingView) render() {
	tv.content.RemoveAll()

	front, ok := tv.rotation.Front()
	if !ok {
		empty := widget.NewLabel(tv.localization.GetText(KeyEmptyFeed))
		empty.Alignment = fyne.TextAlignCenter
		tv.content.Add(container.NewCenter(empty))
		tv.content.Refresh()
		return
	}

	frontCard := NewVideoCard(*front, tv.resolver, tv.localization, nil)

	overlay := container.NewHBox()
	for i, upcoming := range tv.rotation.Overlay() {
		offset := i + 1
		label := upcoming.Title
		overlay.Add(widget.NewButton(label, func() {
			tv.rotation.Select(offset)
			tv.render()
		}))
	}

	tv.content.Add(container.NewBorder(nil, overlay, nil, nil, frontCard))
	tv.content.Refresh()
}
