package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidscope/vidscope-desktop/internal/api"
	"github.com/vidscope/vidscope-desktop/internal/model"
	"github.com/vidscope/vidscope-desktop/internal/stack"
	"github.com/vidscope/vidscope-desktop/internal/thumbs"
)

// PicksView presents the Sunday picks as a swipeable card stack. The
// front card reacts to gestures; the card behind it is a preview only.
type PicksView struct {
	backend      api.Backend
	resolver     *thumbs.Resolver
	localization *Localization
	onAccept     func(model.Video)

	stack   *stack.SwipeStack
	content *fyne.Container
}

// NewPicksView creates the picks view
func NewPicksView(backend api.Backend, resolver *thumbs.Resolver, loc *Localization, onAccept func(model.Video)) *PicksView {
	pv := &PicksView{
		backend:      backend,
		resolver:     resolver,
		localization: loc,
		onAccept:     onAccept,
		stack:        stack.NewSwipeStack(nil),
		content:      container.NewStack(),
	}

	pv.render()
	return pv
}

// Content returns the view's root canvas object
func (pv *PicksView) Content() fyne.CanvasObject {
	return pv.content
}

// Load fetches this week's picks and rebuilds the stack
func (pv *PicksView) Load(ctx context.Context) {
	go func() {
		picks, err := pv.backend.GetCuratedPicks(ctx)
		if err != nil {
			log.Printf("Failed to load picks: %v", err)
			fyne.Do(func() {
				pv.stack = stack.NewSwipeStack(nil)
				pv.render()
			})
			return
		}

		queue := make([]model.VideoRef, 0, len(picks))
		for _, pick := range picks {
			queue = append(queue, model.ResolvedRef(pick))
		}

		fyne.Do(func() {
			pv.stack = stack.NewSwipeStack(queue)
			pv.render()
		})
	}()
}

// handleGesture maps front-card gestures onto stack operations
func (pv *PicksView) handleGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		pv.discard()
	case GestureSwipeRight, GestureTap:
		pv.accept()
	}
}

// discard drops the front card and reveals the next one
func (pv *PicksView) discard() {
	pv.stack.Discard()
	pv.render()
}

// accept opens the front card without consuming it
func (pv *PicksView) accept() {
	ref, ok := pv.stack.Accept()
	if !ok {
		return
	}

	if video, resolved := ref.Video(); resolved && pv.onAccept != nil {
		pv.onAccept(*video)
	}
}

// render rebuilds the card stack from the current front and preview
func (pv *PicksView) render() {
	pv.content.RemoveAll()

	front, ok := pv.stack.Front()
	if !ok {
		done := widget.NewLabel(pv.localization.GetText(KeyPicksDone))
		done.Alignment = fyne.TextAlignCenter
		pv.content.Add(container.NewCenter(done))
		pv.content.Refresh()
		return
	}

	// Preview sits underneath the interactive front card
	if preview, hasPreview := pv.stack.Preview(); hasPreview {
		pv.content.Add(NewPreviewCard(cardForRef(preview, pv.resolver, pv.localization)))
	}

	frontCard := NewSwipeableCard(cardForRef(front, pv.resolver, pv.localization), pv.handleGesture)
	discardButton := widget.NewButton(IconDiscard, pv.discard)
	acceptButton := widget.NewButton(IconAccept, pv.accept)
	controls := container.NewHBox(discardButton, acceptButton)

	pv.content.Add(container.NewBorder(nil, container.NewCenter(controls), nil, nil, frontCard))
	pv.content.Refresh()
}
