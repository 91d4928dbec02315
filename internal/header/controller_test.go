package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSink struct {
	heights []int
	onWrite func(rows int)
}

func (s *countingSink) SetSpacerHeight(rows int) {
	s.heights = append(s.heights, rows)
	if s.onWrite != nil {
		s.onWrite(rows)
	}
}

var epoch = time.Unix(1_700_000_000, 0)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestController(t *testing.T) (*Controller, *countingSink) {
	t.Helper()
	sink := &countingSink{}
	c := New(DefaultTunables(), DefaultGeometry(), WithSpacerSink(sink))
	c.Layout(DefaultGeometry())
	return c, sink
}

// runUntilRest ticks at the frame interval until the animator stops.
func runUntilRest(t *testing.T, c *Controller, from int) int {
	t.Helper()
	ms := from
	for c.Tick(at(ms)) {
		ms += 16
		if ms-from > 2000 {
			t.Fatal("animation did not settle")
		}
	}
	return ms
}

func TestController_ScenarioA_ShortDragSnapsBack(t *testing.T) {
	c, _ := newTestController(t)
	tun := c.Tunables()

	require.True(t, c.PointerDown(4, at(0)))
	end := 4 + 0.8*tun.PullThreshold
	c.PointerMove(end, at(30))
	assert.Greater(t, c.ExpandProgress(), 0.0)

	// Hold still long enough for the velocity window to empty.
	r, ok := c.PointerUp(end, at(500))
	require.True(t, ok)
	assert.Equal(t, 0.0, r.Velocity)
	assert.Equal(t, DecisionSnapBack, r.Decision)
	assert.Equal(t, Collapsing, c.State())

	runUntilRest(t, c, 516)
	assert.Equal(t, Collapsed, c.State())
	assert.Equal(t, 0.0, c.ExpandProgress())
}

func TestController_ScenarioB_LongDragExpands(t *testing.T) {
	c, _ := newTestController(t)
	tun := c.Tunables()

	require.True(t, c.PointerDown(2, at(0)))
	c.PointerMove(2+tun.PullThreshold+1, at(200))
	r, ok := c.PointerUp(2+tun.PullThreshold+1, at(400))
	require.True(t, ok)
	assert.Equal(t, DecisionExpand, r.Decision)
	assert.Equal(t, Expanding, c.State())

	runUntilRest(t, c, 416)
	assert.Equal(t, 1.0, c.ExpandProgress())
	assert.Equal(t, Expanded, c.State())
	assert.True(t, c.IsExpanded())
	assert.Equal(t, 24, c.SpacerHeight())
}

func TestController_ScenarioC_ScrollWhileExpandedCollapses(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.Expand(at(0)))
	runUntilRest(t, c, 16)
	require.Equal(t, Expanded, c.State())

	effect := c.OnScroll(12, at(1000))
	assert.Equal(t, ScrollForcedCollapse, effect)
	assert.Equal(t, Collapsing, c.State())
	assert.Equal(t, 0.0, c.MinimizeProgress(), "no minimize tracking before the collapse lands")

	runUntilRest(t, c, 1016)
	assert.Equal(t, Collapsed, c.State())
	assert.Equal(t, 0.0, c.ExpandProgress())
	// Tracking resumes from the remembered offset once collapsed.
	assert.Equal(t, 1.0, c.MinimizeProgress())
}

func TestController_ScenarioD_RetargetStartsFromInterpolatedValue(t *testing.T) {
	c, _ := newTestController(t)
	tun := c.Tunables()

	require.True(t, c.AnimateTo(1, tun.ExpandDuration, Decelerate, at(0)))
	c.Tick(at(16))
	c.Tick(at(32))

	require.True(t, c.AnimateTo(0, tun.CollapseDuration, AccelerateDecelerate, at(50)))

	want := Decelerate(50.0 / 500.0)
	assert.InDelta(t, want, c.anim.From(), 1e-12)
	assert.InDelta(t, want, c.ExpandProgress(), 1e-12)
	assert.NotEqual(t, 1.0, c.anim.From())
	assert.NotEqual(t, 0.0, c.anim.From())
	assert.Equal(t, Collapsing, c.State())

	runUntilRest(t, c, 66)
	assert.Equal(t, Collapsed, c.State())
	assert.Equal(t, 0.0, c.ExpandProgress())
}

func TestController_ScenarioE_UnchangedExtentSkipsSpacerWrite(t *testing.T) {
	c, sink := newTestController(t)
	writes := len(sink.heights)

	require.True(t, c.PointerDown(3, at(0)))
	// Both positions sit inside the dead zone, so both frames are identical.
	c.PointerMove(4, at(16))
	c.PointerMove(5, at(32))

	assert.Len(t, sink.heights, writes)
	assert.Equal(t, writes, c.bridge.Writes())
	assert.Positive(t, c.bridge.Skipped())
}

func TestController_RoundTripRestoresRestFrame(t *testing.T) {
	c, _ := newTestController(t)
	rest := c.Frame()

	require.True(t, c.Expand(at(0)))
	ms := runUntilRest(t, c, 16)
	require.NotEqual(t, rest, c.Frame())

	require.True(t, c.Collapse(at(ms)))
	runUntilRest(t, c, ms+16)

	assert.Equal(t, rest, c.Frame())
	assert.Equal(t, 12, c.SpacerHeight())
}

func TestController_DragMonotonic(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.PointerDown(1, at(0)))

	prev := 0.0
	for i := 1; i <= 60; i++ {
		c.PointerMove(1+float64(i)*0.5, at(i*8))
		got := c.ExpandProgress()
		if got < prev {
			t.Fatalf("step %d: progress %v fell below %v", i, got, prev)
		}
		prev = got
	}
}

func TestController_PointerDownGating(t *testing.T) {
	c, _ := newTestController(t)

	assert.False(t, c.PointerDown(-1, at(0)), "above the header")
	assert.False(t, c.PointerDown(12, at(0)), "below the extent")

	require.True(t, c.Expand(at(0)))
	assert.False(t, c.PointerDown(3, at(10)), "mid animation")
}

func TestController_InterceptReleasedOnCancel(t *testing.T) {
	rec := &interceptRecorder{}
	c := New(DefaultTunables(), DefaultGeometry(), WithIntercept(rec))

	require.True(t, c.Handoff(40, at(0)))
	assert.True(t, c.Dragging())
	c.PointerMove(48, at(16))
	c.Cancel(at(32))

	assert.False(t, c.Dragging())
	assert.Equal(t, []bool{true, false}, rec.calls)
	assert.Equal(t, Collapsing, c.State())
}

func TestController_CommandsWaitForDragToEnd(t *testing.T) {
	c, _ := newTestController(t)

	require.True(t, c.PointerDown(2, at(0)))
	c.PointerMove(8, at(16))
	progress := c.ExpandProgress()

	assert.False(t, c.Expand(at(20)))
	assert.False(t, c.Toggle(at(24)))
	assert.False(t, c.Collapse(at(28)))
	assert.False(t, c.AnimateTo(1, c.Tunables().ExpandDuration, Decelerate, at(30)))

	assert.True(t, c.Dragging())
	assert.False(t, c.Animating())
	assert.Equal(t, Collapsed, c.State())
	assert.Equal(t, progress, c.ExpandProgress())

	// The drag still settles through its own release.
	c.PointerMove(20, at(48))
	_, ok := c.PointerUp(20, at(64))
	require.True(t, ok)
	assert.Equal(t, Expanding, c.State())
}

func TestController_ScrollDuringDragIsRecordedOnly(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.Expand(at(0)))
	runUntilRest(t, c, 16)
	require.Equal(t, Expanded, c.State())

	require.True(t, c.PointerDown(3, at(1000)))
	assert.Equal(t, ScrollIgnored, c.OnScroll(5, at(1010)))
	assert.True(t, c.Dragging())
	assert.Equal(t, Expanded, c.State())
	assert.Equal(t, 1.0, c.ExpandProgress())
	assert.Equal(t, 5.0, c.scroll.Offset())

	// Snapping back lands on Expanded, and later scrolls still close it.
	_, ok := c.PointerUp(3, at(1500))
	require.True(t, ok)
	runUntilRest(t, c, 1516)
	assert.Equal(t, Expanded, c.State())
	assert.Equal(t, ScrollForcedCollapse, c.OnScroll(5, at(2000)))
}

func TestController_MinimizedDragDoesNotExpand(t *testing.T) {
	c, _ := newTestController(t)
	c.OnScroll(6, at(0))
	require.Equal(t, 1.0, c.MinimizeProgress())

	require.True(t, c.PointerDown(1, at(10)))
	c.PointerMove(9, at(30))
	assert.Equal(t, 0.0, c.ExpandProgress())

	r, _ := c.PointerUp(9, at(40))
	assert.Equal(t, DecisionExpand, r.Decision)
	assert.Equal(t, Collapsed, c.State())
	assert.False(t, c.Animating())
}

func TestController_ReentrantScrollIsDeferred(t *testing.T) {
	c, sink := newTestController(t)

	nested := ScrollIgnored
	sink.onWrite = func(int) {
		if nested == ScrollIgnored {
			// The host re-clamps its offset after the spacer shrinks.
			nested = c.OnScroll(2, at(1))
		}
	}

	assert.Equal(t, ScrollTracked, c.OnScroll(3, at(0)))
	assert.Equal(t, ScrollDeferred, nested)
	assert.Equal(t, 0.5, c.MinimizeProgress())
	require.True(t, c.HasDeferred())

	c.RunDeferred()
	assert.False(t, c.HasDeferred())
	assert.InDelta(t, 2.0/6.0, c.MinimizeProgress(), 1e-12)
}

func TestController_SpacerUsesEstimateBeforeLayout(t *testing.T) {
	sink := &countingSink{}
	g := DefaultGeometry()
	c := New(DefaultTunables(), g, WithSpacerSink(sink))

	require.Equal(t, []int{12}, sink.heights)

	c.OnScroll(3, at(0))
	assert.Equal(t, 8, c.SpacerHeight(), "round(lerp(12, 3, 0.5))")
}
