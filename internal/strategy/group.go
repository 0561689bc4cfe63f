package strategy

// ActivityGroup is a run of contiguous slots sharing one assignment.
type ActivityGroup struct {
	Slot   Slot
	Length int
}

// Activity returns the group's activity and true, or false for an empty group.
func (g ActivityGroup) Activity() (Activity, bool) {
	return g.Slot.Activity()
}

// Group compresses slots into activity groups.
//
// Consecutive slots assigned to the same activity merge into one group.
// Empty slots never merge: every empty slot is its own group of length 1,
// so each gap stays individually selectable on the board.
func Group(slots []Slot) []ActivityGroup {
	var (
		result []ActivityGroup
		open   *ActivityGroup
	)

	flush := func() {
		if open != nil {
			result = append(result, *open)
			open = nil
		}
	}

	for i, slot := range slots {
		if slot.IsEmpty() {
			flush()
			result = append(result, ActivityGroup{Slot: slot, Length: 1})
			continue
		}

		if i == 0 || slots[i-1] != slot {
			flush()
			open = &ActivityGroup{Slot: slot, Length: 1}
		} else if open != nil {
			open.Length++
		}
	}
	flush()

	return result
}

// StartSlotIndexForGroupIndex returns the first slot index of group g.
// Returns false if g is out of range.
func StartSlotIndexForGroupIndex(groups []ActivityGroup, g int) (int, bool) {
	if g < 0 || g >= len(groups) {
		return 0, false
	}

	start := 0
	for i := 0; i < g; i++ {
		start += groups[i].Length
	}
	return start, true
}

// GroupIndexForSlotIndex returns the index of the group containing slot s.
// Returns false if s is outside the slots covered by groups.
func GroupIndexForSlotIndex(groups []ActivityGroup, s int) (int, bool) {
	if s < 0 {
		return 0, false
	}

	start := 0
	for i, g := range groups {
		end := start + g.Length - 1
		if s >= start && s <= end {
			return i, true
		}
		start = end + 1
	}
	return 0, false
}

// expand reproduces the slot array described by groups.
func expand(groups []ActivityGroup) []Slot {
	n := 0
	for _, g := range groups {
		n += g.Length
	}

	slots := make([]Slot, 0, n)
	for _, g := range groups {
		for i := 0; i < g.Length; i++ {
			slots = append(slots, g.Slot)
		}
	}
	return slots
}
