package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/summary"
	"github.com/javiermolinar/strategr/internal/tui/view"
)

// parseIndex parses a slot index and checks it against n slots.
func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid slot index %q: %w", arg, err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("slot %d of %d: %w", i, n, strategy.ErrIndexOutOfRange)
	}
	return i, nil
}

// parseIndices parses slot indices and inclusive ranges such as "4-7".
func parseIndices(args []string, n int) ([]int, error) {
	var indices []int
	for _, arg := range args {
		from, to, isRange := strings.Cut(arg, "-")
		if !isRange {
			i, err := parseIndex(arg, n)
			if err != nil {
				return nil, err
			}
			indices = append(indices, i)
			continue
		}

		start, err := parseIndex(from, n)
		if err != nil {
			return nil, err
		}
		end, err := parseIndex(to, n)
		if err != nil {
			return nil, err
		}
		if end < start {
			start, end = end, start
		}
		for i := start; i <= end; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// clockRange formats the span from slot first to the end of slot last.
func clockRange(st *strategy.Strategy, first, last int) string {
	return view.ClockRange(st.SlotBeginTime(first), st.SlotBeginTime(last+1))
}

// printGroups prints one line per activity group with a bar scaled to width.
func printGroups(w io.Writer, st *strategy.Strategy, width int) {
	groups := st.Group()
	barWidth := max(width-40, 10)

	for g, group := range groups {
		start, end, _ := st.GroupRange(g)
		minutes := group.Length * st.SlotDuration()
		bar := strings.Repeat(" ", max(group.Length*barWidth/st.NumberOfSlots(), 1))

		a, ok := group.Activity()
		if !ok {
			fmt.Fprintf(w, "  %s  %s %s\n", clockRange(st, start, end), formatMuted(fmt.Sprintf("%-18s", "·")), formatMuted(view.FormatDuration(minutes)))
			continue
		}
		fmt.Fprintf(w, "  %s  %s %s %s\n",
			clockRange(st, start, end),
			formatActivity(a, fmt.Sprintf("%-18s", truncate(a.Name, 18))),
			fmt.Sprintf("%-7s", view.FormatDuration(minutes)),
			formatSwatch(a, bar))
	}
}

// printSlots prints every slot with its index and time.
func printSlots(w io.Writer, st *strategy.Strategy) {
	for i, slot := range st.Slots() {
		label := formatMuted("·")
		if a, ok := slot.Activity(); ok {
			label = formatActivity(a, a.Name)
		}
		fmt.Fprintf(w, "  %3d  %s  %s\n", i, clockRange(st, i, i), label)
	}
}

// printTotals prints the planned time per activity in catalogue order.
func printTotals(w io.Writer, st *strategy.Strategy) {
	sum := summary.Summarize(st)

	parts := make([]string, 0, len(sum.Totals)+1)
	for _, total := range sum.Totals {
		parts = append(parts, fmt.Sprintf("%s %s", total.Activity.Name, view.FormatDuration(total.Minutes)))
	}
	if sum.FreeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("free %s", view.FormatDuration(sum.FreeMinutes)))
	}
	fmt.Fprintf(w, "%s\n", formatStats(strings.Join(parts, " · ")))
	fmt.Fprintf(w, "%s\n", formatMuted(fmt.Sprintf("%d%% of %s planned", sum.PlannedPercent(), view.FormatDuration(sum.Minutes))))
}

// truncate shortens s to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
