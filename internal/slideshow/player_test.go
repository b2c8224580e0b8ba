package slideshow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is advanced by the test; reads happen on the dispatch goroutine.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// serialQueue runs posted functions one at a time on its own goroutine.
type serialQueue struct {
	jobs chan func()
	done chan struct{}
}

func newSerialQueue() *serialQueue {
	q := &serialQueue{jobs: make(chan func(), 64), done: make(chan struct{})}
	go func() {
		defer close(q.done)
		for fn := range q.jobs {
			fn()
		}
	}()
	return q
}

func (q *serialQueue) Post(fn func()) { q.jobs <- fn }

func (q *serialQueue) Drain() {
	close(q.jobs)
	<-q.done
}

func TestPlayer_DeliverAndTick(t *testing.T) {
	clock := &fakeClock{now: epoch}
	ctrl := NewController(5*time.Second, clock.Now())
	q := newSerialQueue()

	var views []View
	p := NewPlayer(ctrl, q.Post, func(v View) { views = append(views, v) }, WithClock(clock.Now))

	p.Tick()
	p.Deliver(makeSlides(3))
	clock.Advance(5 * time.Second)
	p.Tick()
	q.Drain()

	require.Len(t, views, 3)
	assert.True(t, views[0].Loading)
	assert.False(t, views[1].Loading)
	assert.Equal(t, 0, views[1].Index)
	assert.Equal(t, 1, views[2].Index)
	assert.Equal(t, 1, ctrl.Index())
}

func TestPlayer_NilRender(t *testing.T) {
	ctrl := NewController(time.Second, epoch)
	p := NewPlayer(ctrl, func(fn func()) { fn() }, nil, WithClock(func() time.Time { return epoch }))

	assert.NotPanics(t, func() {
		p.Deliver(makeSlides(2))
		p.Tick()
	})
	assert.Equal(t, 2, ctrl.Len())
}

func TestPlayer_RunStopsOnCancel(t *testing.T) {
	ctrl := NewController(time.Second, epoch)

	var mu sync.Mutex
	ticks := 0
	dispatch := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		ticks++
		fn()
	}
	p := NewPlayer(ctrl, dispatch, nil, WithTickInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Greater(t, ticks, 0)
}

func TestPlayerOptions_IgnoreInvalid(t *testing.T) {
	p := NewPlayer(NewController(time.Second, epoch), func(fn func()) { fn() }, nil,
		WithTickInterval(0), WithClock(nil))

	assert.Equal(t, DefaultTickInterval, p.tick)
	assert.NotNil(t, p.now)
}
