package carousel

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ---------- manual clock ---------- */

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	c       *fakeClock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{c: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward, firing due callbacks in order. Callbacks run
// without the clock lock held so they can schedule new timers.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()
	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

/* ---------- helpers ---------- */

var five = []string{"a", "b", "c", "d", "e"}

func newTest(t *testing.T, items []string, cfg Config) (*Carousel[string], *fakeClock) {
	t.Helper()
	clk := &fakeClock{}
	c := New(items, WithClock(clk), WithConfig(cfg))
	t.Cleanup(c.Close)
	return c, clk
}

func settle(clk *fakeClock) { clk.Advance(DefaultSettleDelay) }

/* ---------- navigation ---------- */

func TestPrevious_WrapsToEnd(t *testing.T) {
	c, _ := newTest(t, five, DefaultConfig())
	require.True(t, c.Previous())
	assert.Equal(t, 4, c.State().Index)

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "e", cur)
}

func TestNext_WrapAroundLaw(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	for i := 0; i < len(five); i++ {
		require.True(t, c.Next())
		settle(clk)
	}
	assert.Equal(t, 0, c.State().Index)
}

func TestNext_IgnoredWhileTransitioning(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	require.True(t, c.Next())
	assert.True(t, c.State().Transitioning)
	assert.Equal(t, PhaseTransitioning, c.State().Phase)

	assert.False(t, c.Next())
	assert.False(t, c.Previous())
	assert.False(t, c.GoTo(3))
	assert.Equal(t, 1, c.State().Index)

	clk.Advance(DefaultSettleDelay - time.Millisecond)
	assert.False(t, c.Next())

	clk.Advance(time.Millisecond)
	assert.False(t, c.State().Transitioning)
	assert.True(t, c.Next())
	assert.Equal(t, 2, c.State().Index)
}

func TestGoTo(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())

	assert.False(t, c.GoTo(0), "same index")
	assert.False(t, c.GoTo(5), "out of range")
	assert.False(t, c.GoTo(-1), "negative")
	assert.False(t, c.State().Transitioning)

	assert.True(t, c.GoTo(3))
	assert.Equal(t, 3, c.State().Index)
	assert.True(t, c.State().Transitioning)

	settle(clk)
	assert.True(t, c.GoTo(1))
	assert.Equal(t, 1, c.State().Index)
}

func TestIndexStaysInRange(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		switch r.Intn(4) {
		case 0:
			c.Next()
		case 1:
			c.Previous()
		case 2:
			c.GoTo(r.Intn(9) - 2)
		default:
			clk.Advance(time.Duration(r.Intn(400)) * time.Millisecond)
		}
		idx := c.State().Index
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(five))
	}
}

func TestEmptyCarousel(t *testing.T) {
	c, clk := newTest(t, nil, DefaultConfig())
	assert.False(t, c.Next())
	assert.False(t, c.Previous())
	assert.False(t, c.GoTo(0))
	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, clk.pending())
}

/* ---------- autoplay ---------- */

func TestAutoplay_AdvancesOnInterval(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	clk.Advance(DefaultAutoplayInterval - time.Millisecond)
	assert.Equal(t, 0, c.State().Index)

	clk.Advance(time.Millisecond)
	assert.Equal(t, 1, c.State().Index)

	clk.Advance(DefaultAutoplayInterval)
	assert.Equal(t, 2, c.State().Index)
}

func TestAutoplay_RestartsAfterManualMove(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())

	clk.Advance(4 * time.Second)
	require.True(t, c.Next())

	// the tick that was due at 5s must not fire on top of the manual move
	clk.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, c.State().Index)

	clk.Advance(3500 * time.Millisecond)
	assert.Equal(t, 2, c.State().Index)
}

func TestAutoplay_SingleTickPending(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	for i := 0; i < 10; i++ {
		c.Next()
		c.Previous()
		c.GoTo(i % len(five))
		c.TogglePlay()
		c.TogglePlay()
		settle(clk)
	}
	// only the autoplay tick is left once transitions have settled
	assert.Equal(t, 1, clk.pending())

	before := c.State().Index
	clk.Advance(DefaultAutoplayInterval)
	assert.Equal(t, (before+1)%len(five), c.State().Index)
}

func TestAutoplay_TickDuringTransitionIsRescheduled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoplayInterval = 100 * time.Millisecond
	c, clk := newTest(t, five, cfg)

	require.True(t, c.Next())
	clk.Advance(150 * time.Millisecond)
	assert.Equal(t, 1, c.State().Index, "tick landed inside the settle window")

	clk.Advance(time.Second)
	assert.Greater(t, c.State().Index, 1, "autoplay kept running")
}

func TestTogglePlay(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())

	assert.False(t, c.TogglePlay())
	st := c.State()
	assert.True(t, st.Paused)
	assert.Equal(t, PhasePaused, st.Phase)

	clk.Advance(20 * time.Second)
	assert.Equal(t, 0, c.State().Index)
	assert.Equal(t, 0, clk.pending())

	assert.True(t, c.TogglePlay())
	assert.Equal(t, PhaseIdle, c.State().Phase)
	clk.Advance(DefaultAutoplayInterval)
	assert.Equal(t, 1, c.State().Index)
}

func TestSingleItem_NoAutoplay(t *testing.T) {
	c, clk := newTest(t, []string{"only"}, DefaultConfig())
	assert.Equal(t, 0, clk.pending())
	clk.Advance(time.Minute)
	assert.Equal(t, 0, c.State().Index)
}

/* ---------- gestures ---------- */

func TestSwipeLeft_Next(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())

	c.TouchStart(200)
	assert.False(t, c.State().AutoPlaying)
	assert.True(t, c.State().Touching)
	c.TouchMove(120)
	c.TouchMove(100)
	assert.Equal(t, SwipeNext, c.TouchEnd())
	assert.Equal(t, 1, c.State().Index)
	assert.False(t, c.State().Touching)

	// suspended until the resume delay passes
	clk.Advance(DefaultResumeDelay - time.Millisecond)
	assert.False(t, c.State().AutoPlaying)
	clk.Advance(time.Millisecond)
	assert.True(t, c.State().AutoPlaying)

	clk.Advance(DefaultAutoplayInterval)
	assert.Equal(t, 2, c.State().Index)
}

func TestSwipeRight_Previous(t *testing.T) {
	c, _ := newTest(t, five, DefaultConfig())
	c.TouchStart(100)
	c.TouchMove(151)
	assert.Equal(t, SwipePrevious, c.TouchEnd())
	assert.Equal(t, 4, c.State().Index)
}

func TestSwipe_DuringTransitionReportsNone(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	require.True(t, c.Next())

	c.TouchStart(200)
	c.TouchMove(50)
	assert.Equal(t, SwipeNone, c.TouchEnd())
	assert.Equal(t, 1, c.State().Index)
	assert.True(t, c.State().Transitioning)

	settle(clk)
	c.TouchStart(200)
	c.TouchMove(50)
	assert.Equal(t, SwipeNext, c.TouchEnd())
	assert.Equal(t, 2, c.State().Index)
}

func TestShortDragAndTap_NoNavigationButResume(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())

	c.TouchStart(100)
	c.TouchMove(140)
	assert.Equal(t, SwipeNone, c.TouchEnd())

	c.TouchStart(100)
	assert.Equal(t, SwipeNone, c.TouchEnd())
	assert.Equal(t, 0, c.State().Index)

	clk.Advance(DefaultResumeDelay)
	assert.True(t, c.State().AutoPlaying)
}

func TestTouchEnd_WithoutStartIsIgnored(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	c.TouchMove(10)
	assert.Equal(t, SwipeNone, c.TouchEnd())
	assert.True(t, c.State().AutoPlaying)
	// only the autoplay tick
	assert.Equal(t, 1, clk.pending())
}

func TestTouchStart_CancelsPendingResume(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	c.TouchStart(0)
	c.TouchEnd()
	clk.Advance(2 * time.Second)

	// a second gesture starts before the first resume fired
	c.TouchStart(0)
	clk.Advance(2 * time.Second)
	assert.False(t, c.State().AutoPlaying)

	c.TouchEnd()
	clk.Advance(DefaultResumeDelay)
	assert.True(t, c.State().AutoPlaying)
}

func TestStickyPause(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	c.TogglePlay()

	c.TouchStart(300)
	c.TouchMove(100)
	assert.Equal(t, SwipeNext, c.TouchEnd())
	clk.Advance(time.Minute)

	st := c.State()
	assert.False(t, st.AutoPlaying)
	assert.True(t, st.Paused)
	assert.Equal(t, 1, st.Index)
}

func TestNonStickyPause_GestureResumes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StickyPause = false
	c, clk := newTest(t, five, cfg)
	c.TogglePlay()

	c.TouchStart(300)
	c.TouchEnd()
	clk.Advance(DefaultResumeDelay)

	st := c.State()
	assert.True(t, st.AutoPlaying)
	assert.False(t, st.Paused)
}

func TestTogglePlay_CancelsResume(t *testing.T) {
	c, clk := newTest(t, five, DefaultConfig())
	c.TouchStart(0)
	c.TouchEnd()

	// explicit play then pause while the resume is pending
	assert.True(t, c.TogglePlay())
	assert.False(t, c.TogglePlay())
	clk.Advance(DefaultResumeDelay)
	assert.False(t, c.State().AutoPlaying)
}

/* ---------- lifecycle ---------- */

func TestClose_CancelsTimers(t *testing.T) {
	clk := &fakeClock{}
	c := New(five, WithClock(clk))
	c.Next()
	c.TouchStart(0)
	c.TouchEnd()
	require.Positive(t, clk.pending())

	c.Close()
	assert.Equal(t, 0, clk.pending())

	clk.Advance(time.Minute)
	assert.Equal(t, 1, c.State().Index)
	assert.False(t, c.Next())
	assert.False(t, c.TogglePlay())
	c.Close()
}

func TestConfig_ZeroValuesUseDefaults(t *testing.T) {
	cfg := Config{}.normalized()
	assert.Equal(t, DefaultSettleDelay, cfg.SettleDelay)
	assert.Equal(t, DefaultAutoplayInterval, cfg.AutoplayInterval)
	assert.Equal(t, DefaultResumeDelay, cfg.ResumeDelay)
	assert.Equal(t, DefaultSwipeThreshold, cfg.SwipeThreshold)
}

func TestNilOptionsAreIgnored(t *testing.T) {
	c := New(five, WithLogger(nil), WithClock(nil), WithConfig(DefaultConfig()))
	t.Cleanup(c.Close)

	assert.NotPanics(t, func() { c.Next() })
	assert.Equal(t, 1, c.State().Index)
}

func TestRealClock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SettleDelay = 5 * time.Millisecond
	c := New(five, WithConfig(cfg))
	defer c.Close()

	require.True(t, c.Next())
	assert.Eventually(t, func() bool { return !c.State().Transitioning }, time.Second, 5*time.Millisecond)
}
