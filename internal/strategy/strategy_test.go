package strategy

import (
	"errors"
	"strings"
	"testing"
)

// strategyFromString creates a strategy whose slots follow pattern.
// Every letter in the pattern is added to the catalogue once.
func strategyFromString(t *testing.T, pattern string) *Strategy {
	t.Helper()

	s, err := New(len(pattern))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	seen := make(map[rune]bool)
	for _, r := range pattern {
		if r != '-' && !seen[r] {
			seen[r] = true
			s.AppendActivity(testActivity(r))
		}
	}
	if err := s.SetSlots(slotsFromString(pattern)); err != nil {
		t.Fatalf("SetSlots failed: %v", err)
	}
	return s
}

func TestNew_InvalidSlotCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := New(n); !errors.Is(err, ErrInvalidSlotCount) {
			t.Errorf("New(%d): expected ErrInvalidSlotCount, got %v", n, err)
		}
	}
}

func TestNew_Options(t *testing.T) {
	s, err := New(8, WithBeginTime(9*60), WithSlotDuration(30), WithActivities(testActivity('A')))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.NumberOfSlots() != 8 {
		t.Errorf("expected 8 slots, got %d", s.NumberOfSlots())
	}
	if s.BeginTime() != 540 {
		t.Errorf("expected begin 540, got %d", s.BeginTime())
	}
	if s.SlotDuration() != 30 {
		t.Errorf("expected duration 30, got %d", s.SlotDuration())
	}
	if s.EndTime() != 540+8*30 {
		t.Errorf("expected end %d, got %d", 540+8*30, s.EndTime())
	}
	if s.SlotBeginTime(2) != 600 {
		t.Errorf("expected slot 2 to begin at 600, got %d", s.SlotBeginTime(2))
	}
	if !s.HasActivity(testActivity('A')) {
		t.Error("expected catalogue to contain A")
	}
}

func TestNewDefault(t *testing.T) {
	s, err := NewDefault(Template{NumberOfSlots: 8, BeginTime: 360, SlotDuration: 15})
	if err != nil {
		t.Fatalf("NewDefault failed: %v", err)
	}

	activities := s.Activities()
	if len(activities) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(activities))
	}

	want := []Slot{
		SlotOf(activities[0]), SlotOf(activities[0]),
		SlotOf(activities[1]), SlotOf(activities[1]),
		SlotOf(activities[2]), SlotOf(activities[2]),
		EmptySlot, EmptySlot,
	}
	for i, slot := range s.Slots() {
		if slot != want[i] {
			t.Errorf("slot %d = %s, want %s", i, slot, want[i])
		}
	}
}

func TestSlotAt_OutOfRange(t *testing.T) {
	s := strategyFromString(t, "AAA")

	for _, index := range []int{-1, 3, 100} {
		if got := s.SlotAt(index); got != EmptySlot {
			t.Errorf("SlotAt(%d) = %s, want empty", index, got)
		}
	}
}

func TestSetSlotAt(t *testing.T) {
	s := strategyFromString(t, "----")
	a := testActivity('A')

	s.SetSlotAt(1, SlotOf(a))
	if got := slotsToString(s.Slots()); got != "-A--" {
		t.Errorf("slots = %q, want %q", got, "-A--")
	}

	s.SetSlotAt(s.NumberOfSlots(), SlotOf(a))
	s.SetSlotAt(-1, SlotOf(a))
	if got := slotsToString(s.Slots()); got != "-A--" {
		t.Errorf("out-of-range writes changed slots: %q", got)
	}
}

func TestSetSlotsAt(t *testing.T) {
	s := strategyFromString(t, "AAAAA")

	s.SetSlotsAt([]int{4, 0, 2, 9}, EmptySlot)
	if got := slotsToString(s.Slots()); got != "-A-A-" {
		t.Errorf("slots = %q, want %q", got, "-A-A-")
	}
}

func TestCopySlot(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{name: "copy assigned", from: 0, to: 2, want: "A-AB"},
		{name: "copy empty", from: 1, to: 3, want: "A---"},
		{name: "source out of range", from: -1, to: 0, want: "A--B"},
		{name: "target out of range", from: 0, to: 4, want: "A--B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := strategyFromString(t, "A--B")
			s.CopySlot(tt.from, tt.to)
			if got := slotsToString(s.Slots()); got != tt.want {
				t.Errorf("slots = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFillSlots(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		from, to int
		want     string
	}{
		{name: "forward", pattern: "X---", from: 0, to: 3, want: "XXXX"},
		{name: "backward", pattern: "---Y", from: 3, to: 0, want: "YYYY"},
		{name: "source is fixed", pattern: "XY-Z", from: 0, to: 3, want: "XXXX"},
		{name: "backward source is from argument", pattern: "A-BC", from: 2, to: 0, want: "BBBC"},
		{name: "fill with empty", pattern: "-AAA", from: 0, to: 2, want: "---A"},
		{name: "single slot", pattern: "AB", from: 1, to: 1, want: "AB"},
		{name: "from out of range", pattern: "A--", from: -1, to: 2, want: "A--"},
		{name: "to out of range", pattern: "A--", from: 0, to: 3, want: "A--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := strategyFromString(t, tt.pattern)
			s.FillSlots(tt.from, tt.to)
			if got := slotsToString(s.Slots()); got != tt.want {
				t.Errorf("FillSlots(%d, %d) on %q = %q, want %q", tt.from, tt.to, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestRemoveActivity(t *testing.T) {
	s := strategyFromString(t, "AAB-A")
	a := testActivity('A')
	s.AppendActivity(a) // duplicate entry is removed too

	s.RemoveActivity(a)

	if s.HasActivity(a) {
		t.Error("expected A to be removed from catalogue")
	}
	for i, slot := range s.Slots() {
		if slot.Is(a) {
			t.Errorf("slot %d still references A", i)
		}
	}
	if got := slotsToString(s.Slots()); got != "--B--" {
		t.Errorf("slots = %q, want %q", got, "--B--")
	}
	if len(s.Activities()) != 1 {
		t.Errorf("expected 1 activity left, got %d", len(s.Activities()))
	}
}

func TestRemoveActivity_NotInCatalogue(t *testing.T) {
	s := strategyFromString(t, "AB")
	s.RemoveActivity(testActivity('Z'))

	if got := slotsToString(s.Slots()); got != "AB" {
		t.Errorf("slots = %q, want %q", got, "AB")
	}
	if len(s.Activities()) != 2 {
		t.Errorf("expected 2 activities, got %d", len(s.Activities()))
	}
}

func TestEditActivity(t *testing.T) {
	s := strategyFromString(t, "AAB")
	old := testActivity('A')
	updated := Activity{Name: "C", Color: "#112233"}

	s.EditActivity(old, updated)

	if s.HasActivity(old) {
		t.Error("old activity still in catalogue")
	}
	if idx, ok := s.ActivityIndex(updated); !ok || idx != 0 {
		t.Errorf("expected updated activity at index 0, got %d (ok=%v)", idx, ok)
	}
	if got := slotsToString(s.Slots()); got != "CCB" {
		t.Errorf("slots = %q, want %q", got, "CCB")
	}
}

func TestActivityByName(t *testing.T) {
	s := strategyFromString(t, "AB")

	a, ok := s.ActivityByName("B")
	if !ok || a != testActivity('B') {
		t.Errorf("ActivityByName(B) = %v, %v", a, ok)
	}
	if _, ok := s.ActivityByName("Z"); ok {
		t.Error("expected Z to be missing")
	}
}

func TestStrategyGroup(t *testing.T) {
	s := strategyFromString(t, "AAABA")

	if got := groupsToString(s.Group()); got != "A3 B1 A1" {
		t.Errorf("Group() = %q, want %q", got, "A3 B1 A1")
	}

	g, ok := s.GroupIndexForSlotIndex(3)
	if !ok || g != 1 {
		t.Errorf("GroupIndexForSlotIndex(3) = %d, %v", g, ok)
	}
	start, ok := s.StartSlotIndexForGroupIndex(2)
	if !ok || start != 4 {
		t.Errorf("StartSlotIndexForGroupIndex(2) = %d, %v", start, ok)
	}
	start, end, ok := s.GroupRange(0)
	if !ok || start != 0 || end != 2 {
		t.Errorf("GroupRange(0) = %d, %d, %v", start, end, ok)
	}
	if _, _, ok := s.GroupRange(3); ok {
		t.Error("expected GroupRange(3) to be absent")
	}
}

func TestStrategyGroup_CacheMatchesRecompute(t *testing.T) {
	s := strategyFromString(t, "AAAA--BB")
	a, b := testActivity('A'), testActivity('B')

	mutations := []func(){
		func() { s.SetSlotAt(1, EmptySlot) },
		func() { s.SetSlotsAt([]int{4, 5}, SlotOf(b)) },
		func() { s.CopySlot(0, 1) },
		func() { s.FillSlots(7, 3) },
		func() { s.RemoveActivity(b) },
		func() { s.EditActivity(a, b) },
		func() { _ = s.SetSlots(slotsFromString("-A-A-A-A")) },
	}

	for i, mutate := range mutations {
		_ = s.Group() // warm the cache
		mutate()
		got := groupsToString(s.Group())
		want := groupsToString(Group(s.Slots()))
		if got != want {
			t.Errorf("mutation %d: cached groups %q, recomputed %q", i, got, want)
		}
	}
}

func TestStrategyGroup_ReturnsCopy(t *testing.T) {
	s := strategyFromString(t, "AA")
	groups := s.Group()
	groups[0].Length = 99

	if s.Group()[0].Length != 2 {
		t.Error("modifying returned groups changed the strategy")
	}
}

func TestSetSlots_LengthMismatch(t *testing.T) {
	s := strategyFromString(t, "AAA")
	err := s.SetSlots(slotsFromString("AA"))
	if !errors.Is(err, ErrSlotCountMismatch) {
		t.Fatalf("expected ErrSlotCountMismatch, got %v", err)
	}
	if got := slotsToString(s.Slots()); got != "AAA" {
		t.Errorf("slots changed to %q", got)
	}
}

func TestClone(t *testing.T) {
	s := strategyFromString(t, "AB-")
	c := s.Clone()
	c.SetSlotAt(0, EmptySlot)
	c.AppendActivity(testActivity('Z'))

	if got := slotsToString(s.Slots()); got != "AB-" {
		t.Errorf("original slots changed to %q", got)
	}
	if s.HasActivity(testActivity('Z')) {
		t.Error("original catalogue changed")
	}
}

func TestTimeSlotsRoundTrip(t *testing.T) {
	s, err := New(4, WithBeginTime(480), WithSlotDuration(30))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = s.SetSlots(slotsFromString("AB-A"))

	ts := s.TimeSlots()
	if ts.BeginTime() != 480 || ts.SlotDuration() != 30 || ts.NumberOfSlots() != 4 {
		t.Fatalf("unexpected timing: %d %d %d", ts.BeginTime(), ts.SlotDuration(), ts.NumberOfSlots())
	}
	if ts.SlotBeginTime(3) != 570 {
		t.Errorf("slot 3 begins at %d, want 570", ts.SlotBeginTime(3))
	}

	ts.FillSlots(0, 2)
	ts.SetBeginTime(420)

	if err := s.ApplyTimeSlots(ts); err != nil {
		t.Fatalf("ApplyTimeSlots failed: %v", err)
	}
	if got := slotsToString(s.Slots()); got != "AAAA" {
		t.Errorf("slots = %q, want %q", got, "AAAA")
	}
	if s.BeginTime() != 420 {
		t.Errorf("begin time = %d, want 420", s.BeginTime())
	}

	short := NewTimeSlotsState(0, 15, 2)
	if err := s.ApplyTimeSlots(short); !errors.Is(err, ErrSlotCountMismatch) {
		t.Errorf("expected ErrSlotCountMismatch, got %v", err)
	}
}

func TestDebugOutput(t *testing.T) {
	s := strategyFromString(t, "A-")

	slots := s.DebugSlots()
	if !strings.Contains(slots, "Slot 0\tA") || !strings.Contains(slots, "Slot 1\tNone") {
		t.Errorf("unexpected DebugSlots output:\n%s", slots)
	}
	groups := s.DebugGroups()
	if !strings.Contains(groups, "Group 1\tNone\t1") {
		t.Errorf("unexpected DebugGroups output:\n%s", groups)
	}
}

func TestNewActivity(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		color   string
		want    Activity
		wantErr error
	}{
		{name: "valid", inName: " Nap ", color: "#A6E3A1", want: Activity{Name: "Nap", Color: "#a6e3a1"}},
		{name: "no color", inName: "Read", want: Activity{Name: "Read"}},
		{name: "empty name", inName: "  ", wantErr: ErrEmptyActivityName},
		{name: "bad color", inName: "Read", color: "red", wantErr: ErrInvalidColor},
		{name: "bad hex digit", inName: "Read", color: "#12345g", wantErr: ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewActivity(tt.inName, tt.color)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
