package tui

import (
	"github.com/javiermolinar/strategr/internal/strategy"
)

// maxUndo bounds the undo history.
const maxUndo = 100

// session owns the strategy being edited on the board.
//
// Slot edits go through a TimeSlotsState whose change notifications copy
// the slots back into the strategy. An edit is recorded for undo only when
// the slots actually differ afterwards, so repainting the same values
// leaves no history.
type session struct {
	strategy *strategy.Strategy
	slots    *strategy.TimeSlotsState
	saved    *strategy.TimeSlotsState
	history  []*strategy.TimeSlotsState
	revision int  // bumped by every recorded edit and undo
	catalog  bool // activities added since the last save
}

func newSession(st *strategy.Strategy) *session {
	s := &session{
		strategy: st,
		slots:    st.TimeSlots(),
	}
	s.saved = s.slots.Clone()
	s.slots.OnChange(s.sync)
	return s
}

// edit runs fn against the live slots and reports whether anything changed.
func (s *session) edit(fn func(ts *strategy.TimeSlotsState)) bool {
	before := s.slots.Clone()
	fn(s.slots)
	if before.Equal(s.slots) {
		return false
	}

	s.history = append(s.history, before)
	if len(s.history) > maxUndo {
		s.history = s.history[len(s.history)-maxUndo:]
	}
	s.revision++
	return true
}

// Paint assigns slot to every index.
func (s *session) Paint(slot strategy.Slot, indices []int) bool {
	return s.edit(func(ts *strategy.TimeSlotsState) {
		ts.SetActivityAtIndices(slot, indices)
	})
}

// Fill copies the slot at from over the inclusive range to till.
func (s *session) Fill(from, till int) bool {
	return s.edit(func(ts *strategy.TimeSlotsState) {
		ts.FillSlots(from, till)
	})
}

// Copy copies the slot at from to to.
func (s *session) Copy(from, to int) bool {
	src, ok := s.slots.At(from)
	if !ok {
		return false
	}
	return s.Paint(src.Slot, []int{to})
}

// SetBeginTime moves the strategy to a new begin time.
func (s *session) SetBeginTime(minutes int) bool {
	return s.edit(func(ts *strategy.TimeSlotsState) {
		ts.SetBeginTime(minutes)
	})
}

// Undo restores the state before the last edit.
func (s *session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.slots.Assign(last)
	s.revision++
	return true
}

// AddActivity appends a to the catalogue unless its name is taken.
func (s *session) AddActivity(a strategy.Activity) bool {
	if _, ok := s.strategy.ActivityByName(a.Name); ok {
		return false
	}
	s.strategy.AppendActivity(a)
	s.catalog = true
	return true
}

// Dirty reports whether the strategy differs from the last saved state.
func (s *session) Dirty() bool {
	return s.catalog || !s.slots.Equal(s.saved)
}

// MarkSaved records the current slots as saved.
func (s *session) MarkSaved(snapshot *strategy.TimeSlotsState) {
	s.saved = snapshot
	s.catalog = false
}

// Snapshot returns a copy of the strategy suitable for saving off the
// event loop.
func (s *session) Snapshot() (*strategy.Strategy, *strategy.TimeSlotsState) {
	return s.strategy.Clone(), s.slots.Clone()
}

func (s *session) sync() {
	// Slot count never changes on the board, so this cannot fail.
	_ = s.strategy.ApplyTimeSlots(s.slots)
}
