package sim

import "github.com/me/gosched/pkg/model"

// timelineBuilder accumulates execution slices. extend merges a dispatch
// into the open slice when the same pid continues without a gap; closeSlice
// forces the next dispatch to start a new slice regardless of pid.
type timelineBuilder struct {
	slices model.Timeline
	open   bool
}

func (b *timelineBuilder) extend(pid, start, end int) {
	if b.open {
		last := &b.slices[len(b.slices)-1]
		if last.PID == pid && last.End == start {
			last.End = end
			return
		}
	}
	b.slices = append(b.slices, model.ExecutionSlice{PID: pid, Start: start, End: end})
	b.open = true
}

// append adds a slice without ever merging. Round-Robin emits one slice per
// dispatch even when the same pid runs again immediately.
func (b *timelineBuilder) append(pid, start, end int) {
	b.slices = append(b.slices, model.ExecutionSlice{PID: pid, Start: start, End: end})
	b.open = false
}

func (b *timelineBuilder) closeSlice() {
	b.open = false
}

func (b *timelineBuilder) done() model.Timeline {
	return b.slices
}
