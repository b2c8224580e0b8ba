package slideshow

import (
	"context"
	"time"
)

// DefaultTickInterval drives swap detection and the countdown display.
const DefaultTickInterval = 100 * time.Millisecond

// DispatchFunc runs fn on the goroutine that owns the Controller.
type DispatchFunc func(fn func())

// RenderFunc receives the view after every state change.
type RenderFunc func(View)

// Player feeds ticks and load results into a Controller through a single
// dispatch queue.
type Player struct {
	ctrl     *Controller
	dispatch DispatchFunc
	render   RenderFunc
	tick     time.Duration
	now      func() time.Time
}

// PlayerOption configures a Player
type PlayerOption func(*Player)

// WithTickInterval overrides DefaultTickInterval
func WithTickInterval(d time.Duration) PlayerOption {
	return func(p *Player) {
		if d > 0 {
			p.tick = d
		}
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) PlayerOption {
	return func(p *Player) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPlayer creates a player. A nil render is allowed.
func NewPlayer(ctrl *Controller, dispatch DispatchFunc, render RenderFunc, opts ...PlayerOption) *Player {
	p := &Player{
		ctrl:     ctrl,
		dispatch: dispatch,
		render:   render,
		tick:     DefaultTickInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run posts a tick every tick interval until ctx is done.
func (p *Player) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick()
		}
	}
}

// Tick posts a single tick.
func (p *Player) Tick() {
	p.dispatch(func() {
		now := p.now()
		p.ctrl.Tick(now)
		p.emit(now)
	})
}

// Deliver posts a freshly loaded slide list. It may be called from any goroutine.
func (p *Player) Deliver(slides []Slide) {
	p.dispatch(func() {
		now := p.now()
		p.ctrl.Load(slides, now)
		p.emit(now)
	})
}

func (p *Player) emit(now time.Time) {
	if p.render != nil {
		p.render(p.ctrl.View(now))
	}
}
