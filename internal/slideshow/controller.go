package slideshow

import (
	"image"
	"math"
	"time"
)

// DefaultSwapInterval is how long a slide stays on screen.
const DefaultSwapInterval = 5 * time.Second

// State is the display state of the slideshow.
type State int

const (
	// StateEmpty means there is nothing to show; the UI renders a placeholder.
	StateEmpty State = iota
	// StateShowing means at least one slide is loaded.
	StateShowing
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateShowing:
		return "Showing"
	default:
		return "Unknown"
	}
}

// Slide is a decoded, display-ready image.
type Slide struct {
	Name  string
	Image image.Image
}

// View is what the display surface renders for a single frame.
type View struct {
	Loading   bool
	Slide     Slide
	Index     int
	Total     int
	Remaining int // whole seconds until the next swap
}

// Controller owns the slide list, the current index and the swap deadline.
// It is not safe for concurrent use.
type Controller struct {
	slides   []Slide
	index    int
	lastSwap time.Time
	interval time.Duration
}

// NewController creates an empty controller. A non-positive interval falls
// back to DefaultSwapInterval.
func NewController(interval time.Duration, now time.Time) *Controller {
	if interval <= 0 {
		interval = DefaultSwapInterval
	}
	return &Controller{
		interval: interval,
		lastSwap: now,
	}
}

// Interval returns the swap interval
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Index returns the current slide index (0 when empty)
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of loaded slides
func (c *Controller) Len() int {
	return len(c.slides)
}

// State reports whether there is anything to show
func (c *Controller) State() State {
	if len(c.slides) == 0 {
		return StateEmpty
	}
	return StateShowing
}

// Tick advances to the next slide once the swap interval has elapsed.
// With fewer than two slides the index never moves; the deadline still
// restarts so the countdown keeps cycling.
func (c *Controller) Tick(now time.Time) {
	if now.Sub(c.lastSwap) < c.interval {
		return
	}
	c.lastSwap = now
	if len(c.slides) > 1 {
		c.index = (c.index + 1) % len(c.slides)
	}
}

// Load replaces the slide list. The index is kept while it is still valid and
// clamped to 0 otherwise. Leaving the empty state restarts the swap deadline.
func (c *Controller) Load(slides []Slide, now time.Time) {
	wasEmpty := len(c.slides) == 0
	c.slides = slides
	if c.index >= len(c.slides) {
		c.index = 0
	}
	if wasEmpty && len(c.slides) > 0 {
		c.lastSwap = now
	}
}

// View returns the frame to render at the given time. It has no side effects.
func (c *Controller) View(now time.Time) View {
	if len(c.slides) == 0 {
		return View{Loading: true}
	}
	return View{
		Slide:     c.slides[c.index],
		Index:     c.index,
		Total:     len(c.slides),
		Remaining: c.remaining(now),
	}
}

func (c *Controller) remaining(now time.Time) int {
	left := c.interval - now.Sub(c.lastSwap)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}
