package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns touch and drag events into gestures. Touch events
// come from the mobile driver, drag events from both drivers.
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Drag tracking
	dragging  bool
	dragDelta fyne.Delta

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
	if gh.touchStartTime.IsZero() {
		return
	}
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	duration := time.Since(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	gh.trigger(gh.Classify(dx, dy, duration))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// Dragged accumulates drag movement
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	gh.dragging = true
	gh.dragDelta.DX += event.Dragged.DX
	gh.dragDelta.DY += event.Dragged.DY
}

// DragEnd reports a swipe when the drag covered enough distance
func (gh *GestureHandler) DragEnd() {
	if !gh.dragging {
		return
	}
	delta := gh.dragDelta
	gh.dragging = false
	gh.dragDelta = fyne.Delta{}

	if g := gh.Classify(delta.DX, delta.DY, 0); g != GestureTap {
		gh.trigger(g)
	}
}

// Classify determines the gesture for a movement of (dx, dy) that took
// duration
func (gh *GestureHandler) Classify(dx, dy float32, duration time.Duration) GestureType {
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	if distance >= gh.swipeThreshold {
		return swipeDirection(dx, dy)
	}
	if duration >= gh.longPressDuration {
		return GestureLongPress
	}
	return GestureTap
}

// swipeDirection determines the primary direction of a swipe
func swipeDirection(dx, dy float32) GestureType {
	absDx := float32(math.Abs(float64(dx)))
	absDy := float32(math.Abs(float64(dy)))

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

func (gh *GestureHandler) trigger(gesture GestureType) {
	if gh.onGesture != nil && gesture != GestureNone {
		gh.onGesture(gesture)
	}
}
