package strategy

// Slot is the assignment state of one time position: empty, or holding
// one Activity. The zero value is an empty slot.
type Slot struct {
	activity Activity
	assigned bool
}

// EmptySlot is the unassigned slot.
var EmptySlot = Slot{}

// SlotOf returns a slot assigned to a.
func SlotOf(a Activity) Slot {
	return Slot{activity: a, assigned: true}
}

// Activity returns the assigned activity and true, or false if empty.
func (s Slot) Activity() (Activity, bool) {
	return s.activity, s.assigned
}

// IsEmpty returns true if no activity is assigned.
func (s Slot) IsEmpty() bool {
	return !s.assigned
}

// Is returns true if the slot is assigned to a.
func (s Slot) Is(a Activity) bool {
	return s.assigned && s.activity == a
}

// String returns the activity name, or "None" for an empty slot.
func (s Slot) String() string {
	if !s.assigned {
		return "None"
	}
	return s.activity.Name
}

func cloneSlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}
