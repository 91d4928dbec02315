package header

import "math"

// SpacerSink is the host side of the spacer contract: a placeholder at the
// top of the scroll content whose height tracks the header extent.
type SpacerSink interface {
	SetSpacerHeight(rows int)
}

// SpacerBridge publishes the header extent to the host spacer.
// Writes are skipped when the value has not changed.
type SpacerBridge struct {
	sink    SpacerSink
	last    int
	written bool
	writes  int
	skipped int
}

// NewSpacerBridge returns a bridge writing to sink. A nil sink is allowed;
// the bridge then only tracks the value.
func NewSpacerBridge(sink SpacerSink) *SpacerBridge {
	return &SpacerBridge{sink: sink}
}

// SetSink replaces the host and forces the next Sync to write.
func (b *SpacerBridge) SetSink(sink SpacerSink) {
	b.sink = sink
	b.written = false
}

// Height returns the last published height.
func (b *SpacerBridge) Height() int { return b.last }

// Writes returns how many times the sink was written.
func (b *SpacerBridge) Writes() int { return b.writes }

// Skipped returns how many syncs were no-ops.
func (b *SpacerBridge) Skipped() int { return b.skipped }

// Sync publishes the extent. measured is the rendered row count, or 0 when
// the header has not been laid out yet; the static estimate is used then.
// Returns true if the sink was written.
func (b *SpacerBridge) Sync(measured int, g Geometry, expand, minimize float64) bool {
	rows := measured
	if rows <= 0 {
		rows = int(math.Round(EstimateExtent(g, expand, minimize)))
	}
	if b.written && rows == b.last {
		b.skipped++
		return false
	}
	b.last = rows
	b.written = true
	if b.sink == nil {
		return false
	}
	b.writes++
	b.sink.SetSpacerHeight(rows)
	return true
}
