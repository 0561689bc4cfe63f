package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy errors.
var (
	ErrSlotCountMismatch = errors.New("slot count does not match strategy")
	ErrInvalidSlotCount  = errors.New("number of slots must be positive")
	ErrIndexOutOfRange   = errors.New("slot index out of range")
)

// Defaults for a new strategy.
const (
	DefaultNumberOfSlots = 72
	DefaultSlotDuration  = 15      // minutes
	DefaultBeginTime     = 6 * 60 // 06:00
)

// Strategy owns the activity catalogue and the slot array of a day.
//
// The slot array has a fixed length set at creation. Reads outside the
// index range return EmptySlot and writes outside it are ignored.
type Strategy struct {
	activities   []Activity
	slots        []Slot
	beginTime    int // minutes from midnight
	slotDuration int // minutes

	// Groups are derived from slots. The cache is valid while
	// groupsVersion == version; every slot write bumps version.
	version       uint64
	groupsVersion uint64
	groups        []ActivityGroup
}

// Option configures a Strategy at creation.
type Option func(*Strategy)

// WithBeginTime sets the begin time in minutes from midnight.
func WithBeginTime(minutes int) Option {
	return func(s *Strategy) { s.beginTime = minutes }
}

// WithSlotDuration sets the slot duration in minutes.
func WithSlotDuration(minutes int) Option {
	return func(s *Strategy) { s.slotDuration = minutes }
}

// WithActivities sets the initial activity catalogue.
func WithActivities(activities ...Activity) Option {
	return func(s *Strategy) {
		s.activities = append([]Activity(nil), activities...)
	}
}

// New creates a strategy with numberOfSlots empty slots.
func New(numberOfSlots int, opts ...Option) (*Strategy, error) {
	if numberOfSlots <= 0 {
		return nil, ErrInvalidSlotCount
	}

	s := &Strategy{
		slots:        make([]Slot, numberOfSlots),
		beginTime:    DefaultBeginTime,
		slotDuration: DefaultSlotDuration,
		version:      1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Template describes the shape of a default strategy.
type Template struct {
	NumberOfSlots int
	BeginTime     int
	SlotDuration  int
}

// DefaultActivities is the catalogue of a freshly created strategy.
func DefaultActivities() []Activity {
	return []Activity{
		{Name: "Training", Color: "#f38ba8"},
		{Name: "Work 1", Color: "#89b4fa"},
		{Name: "Nap", Color: "#a6e3a1"},
		{Name: "Commute", Color: "#f9e2af"},
	}
}

// NewDefault creates a strategy pre-filled from DefaultActivities.
// The first three quarters of the day hold Training, Work 1 and Nap;
// the last quarter is left empty.
func NewDefault(t Template) (*Strategy, error) {
	activities := DefaultActivities()
	s, err := New(t.NumberOfSlots,
		WithBeginTime(t.BeginTime),
		WithSlotDuration(t.SlotDuration),
		WithActivities(activities...),
	)
	if err != nil {
		return nil, err
	}

	n := len(s.slots)
	for i := range s.slots {
		switch {
		case i < n/4:
			s.slots[i] = SlotOf(activities[0])
		case i < 2*n/4:
			s.slots[i] = SlotOf(activities[1])
		case i < 3*n/4:
			s.slots[i] = SlotOf(activities[2])
		}
	}
	s.touch()

	return s, nil
}

// NumberOfSlots returns the fixed length of the slot array.
func (s *Strategy) NumberOfSlots() int {
	return len(s.slots)
}

// BeginTime returns the begin time in minutes from midnight.
func (s *Strategy) BeginTime() int {
	return s.beginTime
}

// SlotDuration returns the slot duration in minutes.
func (s *Strategy) SlotDuration() int {
	return s.slotDuration
}

// EndTime returns the end of the last slot in minutes from midnight.
func (s *Strategy) EndTime() int {
	return s.beginTime + len(s.slots)*s.slotDuration
}

// SlotBeginTime returns the begin time of slot index in minutes from midnight.
func (s *Strategy) SlotBeginTime(index int) int {
	return s.beginTime + index*s.slotDuration
}

// Activities returns a copy of the activity catalogue in insertion order.
func (s *Strategy) Activities() []Activity {
	return append([]Activity(nil), s.activities...)
}

// Slots returns a copy of the slot array.
func (s *Strategy) Slots() []Slot {
	return cloneSlots(s.slots)
}

// SetSlots replaces the whole slot array.
// Returns ErrSlotCountMismatch if the length differs.
func (s *Strategy) SetSlots(slots []Slot) error {
	if len(slots) != len(s.slots) {
		return fmt.Errorf("%w: got %d, want %d", ErrSlotCountMismatch, len(slots), len(s.slots))
	}
	copy(s.slots, slots)
	s.touch()
	return nil
}

// HasSlotIndex reports whether index is within the slot array.
func (s *Strategy) HasSlotIndex(index int) bool {
	return index >= 0 && index < len(s.slots)
}

// SlotAt returns the slot at index, or EmptySlot if out of range.
func (s *Strategy) SlotAt(index int) Slot {
	if !s.HasSlotIndex(index) {
		return EmptySlot
	}
	return s.slots[index]
}

// SetSlotAt assigns slot to index. Out-of-range indices are ignored.
func (s *Strategy) SetSlotAt(index int, slot Slot) {
	if !s.HasSlotIndex(index) {
		return
	}
	s.slots[index] = slot
	s.touch()
}

// SetSlotsAt assigns slot to every index.
func (s *Strategy) SetSlotsAt(indices []int, slot Slot) {
	for _, index := range indices {
		s.SetSlotAt(index, slot)
	}
}

// CopySlot copies the value at from into to.
// Nothing happens if either index is out of range.
func (s *Strategy) CopySlot(from, to int) {
	if !s.HasSlotIndex(from) || !s.HasSlotIndex(to) {
		return
	}
	s.slots[to] = s.slots[from]
	s.touch()
}

// FillSlots copies the slot at from into every index between from and to,
// inclusive, in either direction. The source value is read once, before
// any write. Nothing happens if either index is out of range.
func (s *Strategy) FillSlots(from, to int) {
	if !s.HasSlotIndex(from) || !s.HasSlotIndex(to) {
		return
	}

	source := s.slots[from]
	if to < from {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		s.slots[i] = source
	}
	s.touch()
}

// AppendActivity adds a to the catalogue. Slots are not affected.
func (s *Strategy) AppendActivity(a Activity) {
	s.activities = append(s.activities, a)
}

// RemoveActivity removes every catalogue entry equal to a and clears
// every slot assigned to it.
func (s *Strategy) RemoveActivity(a Activity) {
	kept := s.activities[:0]
	for _, existing := range s.activities {
		if existing != a {
			kept = append(kept, existing)
		}
	}
	s.activities = kept

	s.replaceSlots(a, EmptySlot)
}

// EditActivity replaces old with updated in the catalogue and in every slot.
func (s *Strategy) EditActivity(old, updated Activity) {
	for i, existing := range s.activities {
		if existing == old {
			s.activities[i] = updated
		}
	}

	s.replaceSlots(old, SlotOf(updated))
}

// HasActivity reports whether a is in the catalogue.
func (s *Strategy) HasActivity(a Activity) bool {
	_, ok := s.ActivityIndex(a)
	return ok
}

// ActivityIndex returns the catalogue position of a.
func (s *Strategy) ActivityIndex(a Activity) (int, bool) {
	for i, existing := range s.activities {
		if existing == a {
			return i, true
		}
	}
	return 0, false
}

// ActivityByName returns the first catalogue entry named name.
func (s *Strategy) ActivityByName(name string) (Activity, bool) {
	for _, existing := range s.activities {
		if existing.Name == name {
			return existing, true
		}
	}
	return Activity{}, false
}

// Group returns the activity groups of the current slots.
func (s *Strategy) Group() []ActivityGroup {
	return append([]ActivityGroup(nil), s.cachedGroups()...)
}

// StartSlotIndexForGroupIndex returns the first slot index of group g.
func (s *Strategy) StartSlotIndexForGroupIndex(g int) (int, bool) {
	return StartSlotIndexForGroupIndex(s.cachedGroups(), g)
}

// GroupIndexForSlotIndex returns the index of the group containing slot index.
func (s *Strategy) GroupIndexForSlotIndex(index int) (int, bool) {
	return GroupIndexForSlotIndex(s.cachedGroups(), index)
}

// GroupRange returns the inclusive slot bounds of group g.
func (s *Strategy) GroupRange(g int) (start, end int, ok bool) {
	groups := s.cachedGroups()
	start, ok = StartSlotIndexForGroupIndex(groups, g)
	if !ok {
		return 0, 0, false
	}
	return start, start + groups[g].Length - 1, true
}

// Clone returns a deep copy of the strategy.
func (s *Strategy) Clone() *Strategy {
	return &Strategy{
		activities:   append([]Activity(nil), s.activities...),
		slots:        cloneSlots(s.slots),
		beginTime:    s.beginTime,
		slotDuration: s.slotDuration,
		version:      1,
	}
}

// TimeSlots exports the slots to a time-addressed state.
func (s *Strategy) TimeSlots() *TimeSlotsState {
	ts := NewTimeSlotsState(s.beginTime, s.slotDuration, len(s.slots))
	for i, slot := range s.slots {
		ts.slots[i].Slot = slot
	}
	return ts
}

// ApplyTimeSlots replaces slots, begin time and slot duration from ts.
// Returns ErrSlotCountMismatch if ts has a different number of slots.
func (s *Strategy) ApplyTimeSlots(ts *TimeSlotsState) error {
	if err := s.SetSlots(ts.Slots()); err != nil {
		return err
	}
	s.beginTime = ts.BeginTime()
	s.slotDuration = ts.SlotDuration()
	return nil
}

// DebugSlots returns a line per slot, for debug logs.
func (s *Strategy) DebugSlots() string {
	var b strings.Builder
	b.WriteString("-Slots------------------\n")
	for i, slot := range s.slots {
		fmt.Fprintf(&b, "Slot %d\t%s\n", i, slot)
	}
	return b.String()
}

// DebugGroups returns a line per group, for debug logs.
func (s *Strategy) DebugGroups() string {
	var b strings.Builder
	b.WriteString("-Groups-----------------\n")
	for i, g := range s.cachedGroups() {
		fmt.Fprintf(&b, "Group %d\t%s\t%d\n", i, g.Slot, g.Length)
	}
	return b.String()
}

func (s *Strategy) replaceSlots(old Activity, replacement Slot) {
	changed := false
	for i, slot := range s.slots {
		if slot.Is(old) {
			s.slots[i] = replacement
			changed = true
		}
	}
	if changed {
		s.touch()
	}
}

func (s *Strategy) touch() {
	s.version++
}

func (s *Strategy) cachedGroups() []ActivityGroup {
	if s.groups == nil || s.groupsVersion != s.version {
		s.groups = Group(s.slots)
		s.groupsVersion = s.version
	}
	return s.groups
}
