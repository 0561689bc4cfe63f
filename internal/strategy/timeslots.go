package strategy

import "errors"

// ErrEmptyTimeSlots is returned when building a TimeSlotsState from no slots.
// Begin time and slot duration cannot be recovered from an empty sequence.
var ErrEmptyTimeSlots = errors.New("cannot build time slots from an empty sequence")

// TimeSlot is a slot placed on the clock.
type TimeSlot struct {
	BeginTime int // minutes from midnight
	Duration  int // minutes
	Slot      Slot
}

// EndTime returns the end of the slot in minutes from midnight.
func (t TimeSlot) EndTime() int {
	return t.BeginTime + t.Duration
}

// TimeSlotsState is a time-addressed slot array. Every mutating call
// notifies subscribers exactly once, after the change, whether or not any
// value differs. Calls that address no slot at all are no-ops and do not
// notify.
type TimeSlotsState struct {
	Notifier

	beginTime    int
	slotDuration int
	slots        []TimeSlot
}

// NewTimeSlotsState creates numberOfSlots empty slots starting at beginTime.
func NewTimeSlotsState(beginTime, slotDuration, numberOfSlots int) *TimeSlotsState {
	ts := &TimeSlotsState{
		beginTime:    beginTime,
		slotDuration: slotDuration,
	}
	ts.populate(numberOfSlots)
	return ts
}

// TimeSlotsStateFrom builds a state from existing time slots. Begin time and
// slot duration are taken from the first slot.
func TimeSlotsStateFrom(slots []TimeSlot) (*TimeSlotsState, error) {
	if len(slots) == 0 {
		return nil, ErrEmptyTimeSlots
	}

	return &TimeSlotsState{
		beginTime:    slots[0].BeginTime,
		slotDuration: slots[0].Duration,
		slots:        append([]TimeSlot(nil), slots...),
	}, nil
}

// BeginTime returns the begin time of the first slot.
func (ts *TimeSlotsState) BeginTime() int {
	return ts.beginTime
}

// SetBeginTime moves every slot so the first one starts at beginTime.
func (ts *TimeSlotsState) SetBeginTime(beginTime int) {
	ts.beginTime = beginTime
	ts.retime()
	ts.notify()
}

// SlotDuration returns the duration of each slot in minutes.
func (ts *TimeSlotsState) SlotDuration() int {
	return ts.slotDuration
}

// SetSlotDuration changes the duration of every slot.
func (ts *TimeSlotsState) SetSlotDuration(slotDuration int) {
	ts.slotDuration = slotDuration
	ts.retime()
	ts.notify()
}

// NumberOfSlots returns the number of slots.
func (ts *TimeSlotsState) NumberOfSlots() int {
	return len(ts.slots)
}

// SetNumberOfSlots truncates the state or appends empty slots.
func (ts *TimeSlotsState) SetNumberOfSlots(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(ts.slots) {
		ts.slots = ts.slots[:n]
	} else {
		for i := len(ts.slots); i < n; i++ {
			ts.slots = append(ts.slots, TimeSlot{
				BeginTime: ts.SlotBeginTime(i),
				Duration:  ts.slotDuration,
			})
		}
	}
	ts.notify()
}

// SlotBeginTime returns the begin time of slot index.
func (ts *TimeSlotsState) SlotBeginTime(index int) int {
	return ts.beginTime + index*ts.slotDuration
}

// HasSlotIndex reports whether index is within the state.
func (ts *TimeSlotsState) HasSlotIndex(index int) bool {
	return index >= 0 && index < len(ts.slots)
}

// At returns the time slot at index.
func (ts *TimeSlotsState) At(index int) (TimeSlot, bool) {
	if !ts.HasSlotIndex(index) {
		return TimeSlot{}, false
	}
	return ts.slots[index], true
}

// IndexAtTime returns the slot covering minutes from midnight.
func (ts *TimeSlotsState) IndexAtTime(minutes int) (int, bool) {
	if ts.slotDuration <= 0 || minutes < ts.beginTime {
		return 0, false
	}
	index := (minutes - ts.beginTime) / ts.slotDuration
	if !ts.HasSlotIndex(index) {
		return 0, false
	}
	return index, true
}

// Slots returns the flat slot assignments.
func (ts *TimeSlotsState) Slots() []Slot {
	out := make([]Slot, len(ts.slots))
	for i, t := range ts.slots {
		out[i] = t.Slot
	}
	return out
}

// TimeSlots returns a copy of the time slots.
func (ts *TimeSlotsState) TimeSlots() []TimeSlot {
	return append([]TimeSlot(nil), ts.slots...)
}

// SetActivityAtIndices assigns slot to every valid index and notifies once
// if at least one index was in range.
func (ts *TimeSlotsState) SetActivityAtIndices(slot Slot, indices []int) {
	written := false
	for _, index := range indices {
		if ts.setSlotAt(index, slot) {
			written = true
		}
	}
	if written {
		ts.notify()
	}
}

// FillSlots copies the slot at fromIndex into every index between fromIndex
// and tillIndex inclusive. The source is read before any write.
func (ts *TimeSlotsState) FillSlots(fromIndex, tillIndex int) {
	if !ts.HasSlotIndex(fromIndex) || !ts.HasSlotIndex(tillIndex) {
		return
	}

	source := ts.slots[fromIndex].Slot
	if tillIndex < fromIndex {
		fromIndex, tillIndex = tillIndex, fromIndex
	}

	for i := fromIndex; i <= tillIndex; i++ {
		ts.setSlotAt(i, source)
	}
	ts.notify()
}

// FindSlotWithActivity returns the first index assigned to a.
func (ts *TimeSlotsState) FindSlotWithActivity(a Activity) (int, bool) {
	for i, t := range ts.slots {
		if t.Slot.Is(a) {
			return i, true
		}
	}
	return 0, false
}

// HasActivity reports whether any slot is assigned to a.
func (ts *TimeSlotsState) HasActivity(a Activity) bool {
	_, ok := ts.FindSlotWithActivity(a)
	return ok
}

// RemoveActivity clears every slot assigned to a.
func (ts *TimeSlotsState) RemoveActivity(a Activity) {
	ts.substitute(a, EmptySlot)
}

// EditActivity rewrites every slot assigned to old to updated.
func (ts *TimeSlotsState) EditActivity(old, updated Activity) {
	ts.substitute(old, SlotOf(updated))
}

// Assign copies begin time, duration and slots from other and notifies once.
// Subscribers of ts are kept; those of other are not copied.
func (ts *TimeSlotsState) Assign(other *TimeSlotsState) {
	ts.beginTime = other.beginTime
	ts.slotDuration = other.slotDuration
	ts.slots = append([]TimeSlot(nil), other.slots...)
	ts.notify()
}

// Clone returns a copy without subscribers.
func (ts *TimeSlotsState) Clone() *TimeSlotsState {
	return &TimeSlotsState{
		beginTime:    ts.beginTime,
		slotDuration: ts.slotDuration,
		slots:        append([]TimeSlot(nil), ts.slots...),
	}
}

// Equal reports whether both states have the same timing and slots.
func (ts *TimeSlotsState) Equal(other *TimeSlotsState) bool {
	if ts.beginTime != other.beginTime ||
		ts.slotDuration != other.slotDuration ||
		len(ts.slots) != len(other.slots) {
		return false
	}
	for i := range ts.slots {
		if ts.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

func (ts *TimeSlotsState) substitute(old Activity, replacement Slot) {
	for i := range ts.slots {
		if ts.slots[i].Slot.Is(old) {
			ts.slots[i].Slot = replacement
		}
	}
	ts.notify()
}

// setSlotAt writes without notifying. Returns false if index is out of range.
func (ts *TimeSlotsState) setSlotAt(index int, slot Slot) bool {
	if !ts.HasSlotIndex(index) {
		return false
	}
	ts.slots[index].Slot = slot
	return true
}

func (ts *TimeSlotsState) populate(n int) {
	if n < 0 {
		n = 0
	}
	ts.slots = make([]TimeSlot, n)
	ts.retime()
}

func (ts *TimeSlotsState) retime() {
	for i := range ts.slots {
		ts.slots[i].BeginTime = ts.SlotBeginTime(i)
		ts.slots[i].Duration = ts.slotDuration
	}
}
