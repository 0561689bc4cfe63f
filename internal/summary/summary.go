// Package summary aggregates how a strategy's time is spent.
package summary

import (
	"github.com/javiermolinar/strategr/internal/strategy"
)

// ActivityTotal is the planned time of one activity.
type ActivityTotal struct {
	Activity strategy.Activity
	Minutes  int
	Slots    int
	Blocks   int // contiguous groups
}

// Summary holds aggregated strategy data.
type Summary struct {
	Totals      []ActivityTotal // catalogue order, activities with no slots omitted
	FreeMinutes int
	Minutes     int // whole strategy span
}

// PlannedMinutes returns the minutes assigned to any activity.
func (s Summary) PlannedMinutes() int {
	return s.Minutes - s.FreeMinutes
}

// PlannedPercent returns the share of the span assigned to activities.
func (s Summary) PlannedPercent() int {
	if s.Minutes == 0 {
		return 0
	}
	return s.PlannedMinutes() * 100 / s.Minutes
}

// Summarize builds a summary from the groups of st.
// Activities found in slots but missing from the catalogue are listed last.
func Summarize(st *strategy.Strategy) Summary {
	duration := st.SlotDuration()
	s := Summary{Minutes: st.NumberOfSlots() * duration}

	byActivity := make(map[strategy.Activity]*ActivityTotal)
	var order []strategy.Activity
	for _, a := range st.Activities() {
		if _, ok := byActivity[a]; !ok {
			byActivity[a] = &ActivityTotal{Activity: a}
			order = append(order, a)
		}
	}

	for _, group := range st.Group() {
		a, ok := group.Activity()
		if !ok {
			s.FreeMinutes += group.Length * duration
			continue
		}
		total, ok := byActivity[a]
		if !ok {
			total = &ActivityTotal{Activity: a}
			byActivity[a] = total
			order = append(order, a)
		}
		total.Minutes += group.Length * duration
		total.Slots += group.Length
		total.Blocks++
	}

	for _, a := range order {
		if total := byActivity[a]; total.Slots > 0 {
			s.Totals = append(s.Totals, *total)
		}
	}
	return s
}
