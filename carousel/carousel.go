// Package carousel drives a looping item carousel: which item is current,
// autoplay timing, a short transition lock after every move, and swipe
// gestures.
//
// All commands are safe for concurrent use. None of them fail: a command
// that does not apply (out-of-range index, a move while transitioning, any
// call after Close) is ignored and reported through its boolean result.
package carousel

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSettleDelay      = 300 * time.Millisecond
	DefaultAutoplayInterval = 5 * time.Second
	DefaultResumeDelay      = 3 * time.Second
	DefaultSwipeThreshold   = 50.0
)

type Config struct {
	// SettleDelay is how long navigation stays locked after a move.
	SettleDelay time.Duration
	// AutoplayInterval is the time between automatic advances.
	AutoplayInterval time.Duration
	// ResumeDelay is how long autoplay stays suspended after a gesture ends.
	ResumeDelay time.Duration
	// SwipeThreshold is the minimum horizontal drag that counts as a swipe.
	SwipeThreshold float64
	// StickyPause keeps autoplay off after a gesture when the user had
	// paused it explicitly before the gesture started.
	StickyPause bool
}

func DefaultConfig() Config {
	return Config{
		SettleDelay:      DefaultSettleDelay,
		AutoplayInterval: DefaultAutoplayInterval,
		ResumeDelay:      DefaultResumeDelay,
		SwipeThreshold:   DefaultSwipeThreshold,
		StickyPause:      true,
	}
}

func (c Config) normalized() Config {
	if c.SettleDelay <= 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	if c.AutoplayInterval <= 0 {
		c.AutoplayInterval = DefaultAutoplayInterval
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = DefaultResumeDelay
	}
	if c.SwipeThreshold <= 0 {
		c.SwipeThreshold = DefaultSwipeThreshold
	}
	return c
}

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseTransitioning Phase = "transitioning"
	PhasePaused        Phase = "paused"
)

// Swipe is how a finished gesture was interpreted.
type Swipe string

const (
	SwipeNone     Swipe = "none"
	SwipeNext     Swipe = "next"
	SwipePrevious Swipe = "previous"
)

// State is a snapshot of the carousel.
type State struct {
	Index         int   `json:"index"`
	Len           int   `json:"length"`
	AutoPlaying   bool  `json:"autoPlaying"`
	Transitioning bool  `json:"transitioning"`
	Paused        bool  `json:"paused"` // explicit pause via TogglePlay
	Touching      bool  `json:"touching"`
	Phase         Phase `json:"phase"`
}

type settings struct {
	cfg   Config
	clock Clock
	log   logrus.FieldLogger
}

type Option func(*settings)

func WithConfig(cfg Config) Option { return func(s *settings) { s.cfg = cfg } }

// WithClock replaces the real clock; nil is ignored.
func WithClock(clock Clock) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets the logger for move tracing; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// slot holds at most one pending timer of a kind. gen invalidates
// callbacks that were already on their way when the timer was replaced.
type slot struct {
	timer Timer
	gen   uint64
}

type Carousel[T any] struct {
	mu    sync.Mutex
	items []T
	cfg   Config
	clock Clock
	log   logrus.FieldLogger

	index         int
	autoPlaying   bool
	transitioning bool
	userPaused    bool
	touchStartX   *float64
	touchEndX     *float64
	pausedAtTouch bool
	closed        bool

	settle   slot
	autoplay slot
	resume   slot
}

// New starts a carousel on the first item with autoplay running.
func New[T any](items []T, opts ...Option) *Carousel[T] {
	s := settings{cfg: DefaultConfig(), clock: RealClock, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&s)
	}
	c := &Carousel[T]{
		items:       append([]T(nil), items...),
		cfg:         s.cfg.normalized(),
		clock:       s.clock,
		log:         s.log,
		autoPlaying: true,
	}
	c.mu.Lock()
	c.rescheduleAutoplay()
	c.mu.Unlock()
	return c
}

func (c *Carousel[T]) Len() int { return len(c.items) }

// Items returns a copy of the carousel items.
func (c *Carousel[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// Current returns the current item; false when there are no items.
func (c *Carousel[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[c.index], true
}

func (c *Carousel[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := State{
		Index:         c.index,
		Len:           len(c.items),
		AutoPlaying:   c.autoPlaying,
		Transitioning: c.transitioning,
		Paused:        c.userPaused,
		Touching:      c.touchStartX != nil,
	}
	switch {
	case c.transitioning:
		st.Phase = PhaseTransitioning
	case !c.autoPlaying:
		st.Phase = PhasePaused
	default:
		st.Phase = PhaseIdle
	}
	return st
}

/* -------------------- navigation -------------------- */

func (c *Carousel[T]) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step(1)
}

func (c *Carousel[T]) Previous() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step(-1)
}

// GoTo jumps to index. The current index, an index outside the item range
// and any call during a transition are ignored.
func (c *Carousel[T]) GoTo(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.transitioning || index < 0 || index >= len(c.items) || index == c.index {
		return false
	}
	c.moveTo(index)
	return true
}

func (c *Carousel[T]) step(delta int) bool {
	n := len(c.items)
	if c.closed || n == 0 || c.transitioning {
		return false
	}
	c.moveTo(((c.index+delta)%n + n) % n)
	return true
}

func (c *Carousel[T]) moveTo(index int) {
	c.log.WithFields(logrus.Fields{"from": c.index, "to": index}).Debug("carousel move")
	c.index = index
	c.transitioning = true
	c.schedule(&c.settle, c.cfg.SettleDelay, func() { c.transitioning = false })
	c.rescheduleAutoplay()
}

/* -------------------- autoplay -------------------- */

// TogglePlay flips autoplay and returns the new setting. Pausing here is
// an explicit user pause; it also cancels a pending post-gesture resume.
func (c *Carousel[T]) TogglePlay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.autoPlaying
	}
	c.autoPlaying = !c.autoPlaying
	c.userPaused = !c.autoPlaying
	c.cancel(&c.resume)
	c.rescheduleAutoplay()
	return c.autoPlaying
}

// rescheduleAutoplay drops the pending tick, if any, and arms a fresh one
// when autoplay is on. Every change to the index or to autoPlaying goes
// through here, so there is never more than one tick pending.
func (c *Carousel[T]) rescheduleAutoplay() {
	c.cancel(&c.autoplay)
	if c.closed || !c.autoPlaying || len(c.items) < 2 {
		return
	}
	c.schedule(&c.autoplay, c.cfg.AutoplayInterval, c.tick)
}

func (c *Carousel[T]) tick() {
	if !c.autoPlaying {
		return
	}
	if c.transitioning {
		c.rescheduleAutoplay()
		return
	}
	c.step(1)
}

/* -------------------- gestures -------------------- */

// TouchStart begins a gesture at x and suspends autoplay.
func (c *Carousel[T]) TouchStart(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.pausedAtTouch = c.userPaused
	c.touchStartX = &x
	c.touchEndX = nil
	c.autoPlaying = false
	c.cancel(&c.resume)
	c.rescheduleAutoplay()
}

// TouchMove records the latest position of an ongoing gesture.
func (c *Carousel[T]) TouchMove(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.touchStartX == nil {
		return
	}
	c.touchEndX = &x
}

// TouchEnd finishes the gesture. A drag left past the threshold moves to
// the next item, a drag right to the previous one; anything shorter,
// including a tap without movement, does not navigate. The result is the
// move actually made, so a swipe during a transition reports SwipeNone.
// Autoplay resumes after ResumeDelay unless the pause is sticky.
func (c *Carousel[T]) TouchEnd() Swipe {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.touchStartX == nil {
		return SwipeNone
	}

	swipe := SwipeNone
	if c.touchEndX != nil {
		distance := *c.touchStartX - *c.touchEndX
		switch {
		case distance > c.cfg.SwipeThreshold:
			if c.step(1) {
				swipe = SwipeNext
			}
		case distance < -c.cfg.SwipeThreshold:
			if c.step(-1) {
				swipe = SwipePrevious
			}
		}
	}
	c.touchStartX, c.touchEndX = nil, nil

	if c.cfg.StickyPause && c.pausedAtTouch {
		return swipe
	}
	c.schedule(&c.resume, c.cfg.ResumeDelay, func() {
		c.autoPlaying = true
		c.userPaused = false
		c.rescheduleAutoplay()
	})
	return swipe
}

/* -------------------- timers -------------------- */

// schedule replaces the timer in s. fire runs with c.mu held.
func (c *Carousel[T]) schedule(s *slot, d time.Duration, fire func()) {
	c.cancel(s)
	gen := s.gen
	s.timer = c.clock.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || s.gen != gen {
			return
		}
		s.timer = nil
		fire()
	})
}

func (c *Carousel[T]) cancel(s *slot) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// Close cancels every pending timer. Later commands are ignored.
func (c *Carousel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.autoPlaying = false
	c.cancel(&c.settle)
	c.cancel(&c.autoplay)
	c.cancel(&c.resume)
}
