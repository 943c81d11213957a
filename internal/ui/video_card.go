package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidscope/vidscope-desktop/internal/feed"
	"github.com/vidscope/vidscope-desktop/internal/model"
	"github.com/vidscope/vidscope-desktop/internal/thumbs"
)

// VideoCard displays a single video with its thumbnail and metadata
type VideoCard struct {
	widget.BaseWidget

	video     model.Video
	thumbnail *canvas.Image
	title     *widget.Label
	category  *widget.Label
	rating    *widget.Label

	resolver     *thumbs.Resolver
	localization *Localization
	onTapped     func(model.Video)
}

// NewVideoCard creates a card for the given video and starts loading
// its thumbnail in the background
func NewVideoCard(video model.Video, resolver *thumbs.Resolver, loc *Localization, onTapped func(model.Video)) *VideoCard {
	vc := &VideoCard{
		video:        video,
		resolver:     resolver,
		localization: loc,
		onTapped:     onTapped,
	}

	vc.thumbnail = canvas.NewImageFromResource(nil)
	vc.thumbnail.FillMode = canvas.ImageFillContain
	vc.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	vc.title = widget.NewLabel(video.Title)
	vc.title.TextStyle = fyne.TextStyle{Bold: true}
	vc.title.Truncation = fyne.TextTruncateEllipsis

	vc.category = widget.NewLabel(video.CategoryName)
	vc.rating = widget.NewLabel(vc.ratingText())

	vc.ExtendBaseWidget(vc)
	vc.loadThumbnail()

	return vc
}

// Update refreshes the card with new video data, for example after
// category enrichment completed
func (vc *VideoCard) Update(video model.Video) {
	reload := video.YouTubeID != vc.video.YouTubeID
	vc.video = video

	vc.title.SetText(video.Title)
	vc.category.SetText(video.CategoryName)
	vc.rating.SetText(vc.ratingText())

	if reload {
		vc.loadThumbnail()
	}
}

// Video returns the video shown by this card
func (vc *VideoCard) Video() model.Video {
	return vc.video
}

// Tapped handles tap events on the card
func (vc *VideoCard) Tapped(_ *fyne.PointEvent) {
	if vc.onTapped != nil {
		vc.onTapped(vc.video)
	}
}

// CreateRenderer creates the card layout
func (vc *VideoCard) CreateRenderer() fyne.WidgetRenderer {
	meta := container.NewHBox(vc.category, widget.NewLabel("·"), vc.rating)
	content := container.NewVBox(vc.thumbnail, vc.title, meta)

	return widget.NewSimpleRenderer(container.NewPadded(content))
}

// ratingText formats the average rating for display
func (vc *VideoCard) ratingText() string {
	if !vc.video.HasRating() {
		return vc.localization.GetText(KeyNoRating)
	}
	return fmt.Sprintf("★ %.1f", vc.video.Rating())
}

// loadThumbnail resolves the thumbnail URL and fetches the image
// without blocking the UI
func (vc *VideoCard) loadThumbnail() {
	id := vc.video.YouTubeID
	if id == "" {
		return
	}

	go func() {
		url := vc.resolver.Resolve(context.Background(), id)

		res, err := fyne.LoadResourceFromURLString(url)
		if err != nil {
			log.Printf("Failed to load thumbnail for %s: %v", id, err)
			return
		}

		fyne.Do(func() {
			vc.thumbnail.Resource = res
			vc.thumbnail.Refresh()
		})
	}()
}

// cardForRef builds a video card for a stack entry, falling back to a
// placeholder when the reference has not been resolved yet
func cardForRef(ref model.VideoRef, resolver *thumbs.Resolver, loc *Localization) fyne.CanvasObject {
	if video, ok := ref.Video(); ok {
		return NewVideoCard(*video, resolver, loc, nil)
	}

	placeholder := widget.NewLabel(loc.GetText(KeyLoading))
	placeholder.Alignment = fyne.TextAlignCenter
	return placeholder
}

// feedCardList renders a feed snapshot as a scrollable card column.
// categoryName supplies the display category for each video; enriched
// names live in the controller's cache, not on the video itself.
func feedCardList(snapshot feed.Snapshot, categoryName func(*model.Video) string, resolver *thumbs.Resolver, loc *Localization, onTapped func(model.Video)) fyne.CanvasObject {
	if len(snapshot.Items) == 0 {
		empty := widget.NewLabel(loc.GetText(KeyEmptyFeed))
		empty.Alignment = fyne.TextAlignCenter
		return empty
	}

	cards := container.NewVBox()
	for _, video := range snapshot.Items {
		card := *video
		if categoryName != nil {
			card.CategoryName = categoryName(video)
		}
		cards.Add(NewVideoCard(card, resolver, loc, onTapped))
	}

	return container.NewVScroll(cards)
}
