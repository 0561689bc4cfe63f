package strategy

import (
	"errors"
	"testing"
)

// countChanges subscribes to ts and returns a pointer to the call count.
func countChanges(ts *TimeSlotsState) *int {
	n := 0
	ts.OnChange(func() { n++ })
	return &n
}

func timeSlotsFromString(pattern string) *TimeSlotsState {
	ts := NewTimeSlotsState(9*60, 15, len(pattern))
	for i, slot := range slotsFromString(pattern) {
		ts.slots[i].Slot = slot
	}
	return ts
}

func TestNewTimeSlotsState(t *testing.T) {
	ts := NewTimeSlotsState(9*60, 15, 4)

	if ts.NumberOfSlots() != 4 {
		t.Fatalf("expected 4 slots, got %d", ts.NumberOfSlots())
	}
	for i, slot := range ts.TimeSlots() {
		if slot.BeginTime != 540+i*15 {
			t.Errorf("slot %d begins at %d", i, slot.BeginTime)
		}
		if slot.Duration != 15 {
			t.Errorf("slot %d duration %d", i, slot.Duration)
		}
		if !slot.Slot.IsEmpty() {
			t.Errorf("slot %d should be empty", i)
		}
	}
	last, _ := ts.At(3)
	if last.EndTime() != 600 {
		t.Errorf("last slot ends at %d, want 600", last.EndTime())
	}
}

func TestTimeSlotsStateFrom(t *testing.T) {
	if _, err := TimeSlotsStateFrom(nil); !errors.Is(err, ErrEmptyTimeSlots) {
		t.Fatalf("expected ErrEmptyTimeSlots, got %v", err)
	}

	ts, err := TimeSlotsStateFrom([]TimeSlot{
		{BeginTime: 600, Duration: 30, Slot: SlotOf(testActivity('A'))},
		{BeginTime: 630, Duration: 30},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.BeginTime() != 600 || ts.SlotDuration() != 30 {
		t.Errorf("timing = %d/%d, want 600/30", ts.BeginTime(), ts.SlotDuration())
	}
	if got := slotsToString(ts.Slots()); got != "A-" {
		t.Errorf("slots = %q, want %q", got, "A-")
	}
}

func TestTimeSlotsState_SetActivityAtIndices(t *testing.T) {
	ts := timeSlotsFromString("-----")
	changes := countChanges(ts)

	ts.SetActivityAtIndices(SlotOf(testActivity('A')), []int{0, 2, 4, 10})

	if got := slotsToString(ts.Slots()); got != "A-A-A" {
		t.Errorf("slots = %q, want %q", got, "A-A-A")
	}
	if *changes != 1 {
		t.Errorf("expected 1 notification, got %d", *changes)
	}

	// Writing values already in place is still one logical mutation.
	ts.SetActivityAtIndices(SlotOf(testActivity('A')), []int{0, 2})
	if *changes != 2 {
		t.Errorf("repeated batch: notifications = %d, want 2", *changes)
	}

	ts.SetActivityAtIndices(SlotOf(testActivity('A')), []int{-1, 5})
	ts.SetActivityAtIndices(SlotOf(testActivity('A')), nil)
	if *changes != 2 {
		t.Errorf("batch without valid indices notified: %d", *changes)
	}
}

func TestTimeSlotsState_FillSlots(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		from, till  int
		want        string
		wantChanges int
	}{
		{name: "forward", pattern: "X---", from: 0, till: 3, want: "XXXX", wantChanges: 1},
		{name: "backward", pattern: "---Y", from: 3, till: 0, want: "YYYY", wantChanges: 1},
		{name: "source is fixed", pattern: "XY-Z", from: 0, till: 3, want: "XXXX", wantChanges: 1},
		{name: "out of range", pattern: "X---", from: 0, till: 4, want: "X---", wantChanges: 0},
		{name: "same values", pattern: "XX--", from: 0, till: 1, want: "XX--", wantChanges: 1},
		{name: "single slot", pattern: "X---", from: 2, till: 2, want: "X---", wantChanges: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := timeSlotsFromString(tt.pattern)
			changes := countChanges(ts)

			ts.FillSlots(tt.from, tt.till)

			if got := slotsToString(ts.Slots()); got != tt.want {
				t.Errorf("slots = %q, want %q", got, tt.want)
			}
			if *changes != tt.wantChanges {
				t.Errorf("notifications = %d, want %d", *changes, tt.wantChanges)
			}
		})
	}
}

func TestTimeSlotsState_FindAndHas(t *testing.T) {
	ts := timeSlotsFromString("-AB-B")

	index, ok := ts.FindSlotWithActivity(testActivity('B'))
	if !ok || index != 2 {
		t.Errorf("FindSlotWithActivity(B) = %d, %v; want 2, true", index, ok)
	}
	if _, ok := ts.FindSlotWithActivity(testActivity('Z')); ok {
		t.Error("expected Z not to be found")
	}
	if !ts.HasActivity(testActivity('A')) {
		t.Error("expected HasActivity(A)")
	}
	if ts.HasActivity(testActivity('Z')) {
		t.Error("expected !HasActivity(Z)")
	}
}

func TestTimeSlotsState_EditAndRemoveActivity(t *testing.T) {
	ts := timeSlotsFromString("AABA")
	changes := countChanges(ts)

	ts.EditActivity(testActivity('A'), testActivity('C'))
	if got := slotsToString(ts.Slots()); got != "CCBC" {
		t.Errorf("after edit slots = %q", got)
	}
	if *changes != 1 {
		t.Errorf("edit notified %d times", *changes)
	}

	ts.RemoveActivity(testActivity('C'))
	if got := slotsToString(ts.Slots()); got != "--B-" {
		t.Errorf("after remove slots = %q", got)
	}
	if *changes != 2 {
		t.Errorf("remove notified %d times in total, want 2", *changes)
	}

	ts.RemoveActivity(testActivity('Z'))
	if *changes != 3 {
		t.Errorf("removing unknown activity: notifications = %d, want 3", *changes)
	}
	if got := slotsToString(ts.Slots()); got != "--B-" {
		t.Errorf("removing unknown activity changed slots to %q", got)
	}
}

func TestTimeSlotsState_Assign(t *testing.T) {
	ts := timeSlotsFromString("AA")
	changes := countChanges(ts)

	other := NewTimeSlotsState(7*60, 30, 3)
	other.SetActivityAtIndices(SlotOf(testActivity('B')), []int{1})
	otherChanges := countChanges(other)

	ts.Assign(other)

	if !ts.Equal(other) {
		t.Error("expected states to be equal after Assign")
	}
	if *changes != 1 {
		t.Errorf("Assign notified %d times, want 1", *changes)
	}
	if ts.listenerCount() != 1 {
		t.Errorf("Assign changed subscribers: %d", ts.listenerCount())
	}

	other.SetActivityAtIndices(SlotOf(testActivity('C')), []int{0})
	if ts.Equal(other) {
		t.Error("Assign must deep copy slots")
	}
	if *changes != 1 {
		t.Error("mutating the source notified the copy")
	}
	if *otherChanges != 1 {
		t.Errorf("source notified %d times, want 1", *otherChanges)
	}
}

func TestTimeSlotsState_TimingSetters(t *testing.T) {
	ts := timeSlotsFromString("A--")
	changes := countChanges(ts)

	ts.SetBeginTime(600)
	ts.SetSlotDuration(20)
	ts.SetSlotDuration(20)

	if *changes != 3 {
		t.Errorf("expected 3 notifications, got %d", *changes)
	}
	slot, ok := ts.At(2)
	if !ok || slot.BeginTime != 640 || slot.Duration != 20 {
		t.Errorf("slot 2 = %+v", slot)
	}
}

func TestTimeSlotsState_SetNumberOfSlots(t *testing.T) {
	ts := timeSlotsFromString("AB")
	changes := countChanges(ts)

	ts.SetNumberOfSlots(4)
	if got := slotsToString(ts.Slots()); got != "AB--" {
		t.Errorf("grown slots = %q", got)
	}
	last, _ := ts.At(3)
	if last.BeginTime != ts.SlotBeginTime(3) {
		t.Errorf("appended slot begins at %d, want %d", last.BeginTime, ts.SlotBeginTime(3))
	}

	ts.SetNumberOfSlots(1)
	if got := slotsToString(ts.Slots()); got != "A" {
		t.Errorf("shrunk slots = %q", got)
	}
	if *changes != 2 {
		t.Errorf("expected 2 notifications, got %d", *changes)
	}
}

func TestTimeSlotsState_IndexAtTime(t *testing.T) {
	ts := NewTimeSlotsState(9*60, 15, 4)

	tests := []struct {
		minutes int
		want    int
		wantOK  bool
	}{
		{minutes: 540, want: 0, wantOK: true},
		{minutes: 554, want: 0, wantOK: true},
		{minutes: 555, want: 1, wantOK: true},
		{minutes: 599, want: 3, wantOK: true},
		{minutes: 600, wantOK: false},
		{minutes: 539, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ts.IndexAtTime(tt.minutes)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("IndexAtTime(%d) = %d, %v; want %d, %v", tt.minutes, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	ts := timeSlotsFromString("--")
	first, second := 0, 0
	unsubscribe := ts.OnChange(func() { first++ })
	ts.OnChange(func() { second++ })

	ts.FillSlots(0, 1)
	ts.SetActivityAtIndices(SlotOf(testActivity('A')), []int{0})
	unsubscribe()
	ts.SetActivityAtIndices(EmptySlot, []int{0})

	if first != 2 {
		t.Errorf("first listener called %d times, want 2", first)
	}
	if second != 3 {
		t.Errorf("second listener called %d times, want 3", second)
	}
}

func TestTimeSlotsState_Clone(t *testing.T) {
	ts := timeSlotsFromString("A-")
	countChanges(ts)

	c := ts.Clone()
	if c.listenerCount() != 0 {
		t.Error("clone should not copy subscribers")
	}
	c.SetActivityAtIndices(EmptySlot, []int{0})
	if got := slotsToString(ts.Slots()); got != "A-" {
		t.Errorf("original changed to %q", got)
	}
}
