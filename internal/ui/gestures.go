package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler handles touch gestures on cards
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	touchEndPos    fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	gh.touchEndPos = event.Position
	duration := time.Since(gh.touchStartTime)

	// Compare squared distance against the squared threshold to avoid
	// the sqrt; the threshold itself stays in pixels
	dx := gh.touchEndPos.X - gh.touchStartPos.X
	dy := gh.touchEndPos.Y - gh.touchStartPos.Y
	distanceSq := dx*dx + dy*dy
	thresholdSq := gh.swipeThreshold * gh.swipeThreshold

	// Detect gesture type
	if duration < gh.longPressDuration && distanceSq < thresholdSq {
		gh.triggerGesture(GestureTap)
	} else if duration >= gh.longPressDuration {
		gh.triggerGesture(GestureLongPress)
	} else if distanceSq >= thresholdSq {
		gh.detectSwipeDirection(dx, dy)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	// Reset tracking
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	// Determine primary direction
	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
	} else {
		if dy > 0 {
			gh.triggerGesture(GestureSwipeDown)
		} else {
			gh.triggerGesture(GestureSwipeUp)
		}
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// SwipeableCard wraps a card so it can be dismissed or accepted by
// swiping. Preview cards are created inert and ignore all input.
type SwipeableCard struct {
	fyne.CanvasObject
	gestureHandler *GestureHandler
	interactive    bool
}

// NewSwipeableCard creates a swipeable wrapper around a card
func NewSwipeableCard(card fyne.CanvasObject, onGesture func(GestureType)) *SwipeableCard {
	return &SwipeableCard{
		CanvasObject:   card,
		gestureHandler: NewGestureHandler(onGesture),
		interactive:    true,
	}
}

// NewPreviewCard creates a card that only shows what comes next and
// does not react to touches
func NewPreviewCard(card fyne.CanvasObject) *SwipeableCard {
	return &SwipeableCard{
		CanvasObject: card,
		interactive:  false,
	}
}

// TouchDown handles touch down events
func (sc *SwipeableCard) TouchDown(event *mobile.TouchEvent) {
	if sc.interactive && sc.gestureHandler != nil {
		sc.gestureHandler.TouchDown(event)
	}
}

// TouchUp handles touch up events
func (sc *SwipeableCard) TouchUp(event *mobile.TouchEvent) {
	if sc.interactive && sc.gestureHandler != nil {
		sc.gestureHandler.TouchUp(event)
	}
}

// TouchCancel handles touch cancel events
func (sc *SwipeableCard) TouchCancel(event *mobile.TouchEvent) {
	if sc.interactive && sc.gestureHandler != nil {
		sc.gestureHandler.TouchCancel(event)
	}
}
