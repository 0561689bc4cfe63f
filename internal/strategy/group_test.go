package strategy

import (
	"math/rand"
	"strconv"
	"testing"
)

// testActivity returns a distinct activity for each letter.
func testActivity(r rune) Activity {
	return Activity{Name: string(r)}
}

// slotsFromString builds slots from a pattern like "AA-B".
// Letters are activities, '-' is an empty slot.
func slotsFromString(pattern string) []Slot {
	slots := make([]Slot, 0, len(pattern))
	for _, r := range pattern {
		if r == '-' {
			slots = append(slots, EmptySlot)
			continue
		}
		slots = append(slots, SlotOf(testActivity(r)))
	}
	return slots
}

// slotsToString is the inverse of slotsFromString.
func slotsToString(slots []Slot) string {
	out := make([]rune, len(slots))
	for i, s := range slots {
		a, ok := s.Activity()
		if !ok {
			out[i] = '-'
			continue
		}
		out[i] = []rune(a.Name)[0]
	}
	return string(out)
}

// groupsToString renders groups as "A3 B1 -1".
func groupsToString(groups []ActivityGroup) string {
	out := ""
	for i, g := range groups {
		if i > 0 {
			out += " "
		}
		name := "-"
		if a, ok := g.Activity(); ok {
			name = a.Name
		}
		out += name + strconv.Itoa(g.Length)
	}
	return out
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "empty array", pattern: "", want: ""},
		{name: "single assigned", pattern: "A", want: "A1"},
		{name: "single empty", pattern: "-", want: "-1"},
		{name: "assigned run merges", pattern: "AAABA", want: "A3 B1 A1"},
		{name: "empty run never merges", pattern: "---", want: "-1 -1 -1"},
		{name: "run ends at last index", pattern: "-AA", want: "-1 A2"},
		{name: "gap splits same activity", pattern: "AA-AA", want: "A2 -1 A2"},
		{name: "alternating", pattern: "ABAB", want: "A1 B1 A1 B1"},
		{name: "mixed", pattern: "AA--BBB-", want: "A2 -1 -1 B3 -1"},
		{name: "long run", pattern: "AAAAAAAAAAAAB", want: "A12 B1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupsToString(Group(slotsFromString(tt.pattern)))
			if got != tt.want {
				t.Errorf("Group(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestGroup_DistinguishesColor(t *testing.T) {
	a := Activity{Name: "Work", Color: "#ffffff"}
	b := Activity{Name: "Work", Color: "#000000"}

	groups := Group([]Slot{SlotOf(a), SlotOf(b)})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for structurally different activities, got %d", len(groups))
	}
}

func TestGroup_Validity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("AB--")

	for n := 0; n < 200; n++ {
		length := rng.Intn(30)
		pattern := make([]rune, length)
		for i := range pattern {
			pattern[i] = alphabet[rng.Intn(len(alphabet))]
		}

		slots := slotsFromString(string(pattern))
		groups := Group(slots)

		sum := 0
		for _, g := range groups {
			if g.Length < 1 {
				t.Fatalf("pattern %q: group with length %d", string(pattern), g.Length)
			}
			if g.Slot.IsEmpty() && g.Length != 1 {
				t.Fatalf("pattern %q: empty group with length %d", string(pattern), g.Length)
			}
			sum += g.Length
		}
		if sum != len(slots) {
			t.Fatalf("pattern %q: lengths sum to %d, want %d", string(pattern), sum, len(slots))
		}

		if got := slotsToString(expand(groups)); got != string(pattern) {
			t.Fatalf("expand(group(%q)) = %q", string(pattern), got)
		}
	}
}

func TestStartSlotIndexForGroupIndex(t *testing.T) {
	groups := Group(slotsFromString("AAA-BB-"))
	// A3 -1 B2 -1

	tests := []struct {
		group  int
		want   int
		wantOK bool
	}{
		{group: 0, want: 0, wantOK: true},
		{group: 1, want: 3, wantOK: true},
		{group: 2, want: 4, wantOK: true},
		{group: 3, want: 6, wantOK: true},
		{group: 4, wantOK: false},
		{group: -1, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := StartSlotIndexForGroupIndex(groups, tt.group)
		if ok != tt.wantOK {
			t.Errorf("group %d: ok = %v, want %v", tt.group, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("group %d: start = %d, want %d", tt.group, got, tt.want)
		}
	}
}

func TestGroupIndexForSlotIndex(t *testing.T) {
	groups := Group(slotsFromString("AAA-BB-"))

	tests := []struct {
		slot   int
		want   int
		wantOK bool
	}{
		{slot: 0, want: 0, wantOK: true},
		{slot: 2, want: 0, wantOK: true},
		{slot: 3, want: 1, wantOK: true},
		{slot: 4, want: 2, wantOK: true},
		{slot: 5, want: 2, wantOK: true},
		{slot: 6, want: 3, wantOK: true},
		{slot: 7, wantOK: false},
		{slot: -1, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := GroupIndexForSlotIndex(groups, tt.slot)
		if ok != tt.wantOK {
			t.Errorf("slot %d: ok = %v, want %v", tt.slot, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("slot %d: group = %d, want %d", tt.slot, got, tt.want)
		}
	}
}

func TestIndexTranslation_Inverse(t *testing.T) {
	patterns := []string{"A", "-", "AAABA", "--AA--BB", "ABBBBC---C"}

	for _, pattern := range patterns {
		groups := Group(slotsFromString(pattern))
		for g := range groups {
			start, ok := StartSlotIndexForGroupIndex(groups, g)
			if !ok {
				t.Fatalf("%q: no start for group %d", pattern, g)
			}
			back, ok := GroupIndexForSlotIndex(groups, start)
			if !ok || back != g {
				t.Errorf("%q: group %d -> slot %d -> group %d (ok=%v)", pattern, g, start, back, ok)
			}
		}
	}
}

func TestGroupIndexForSlotIndex_EmptyGroups(t *testing.T) {
	if _, ok := GroupIndexForSlotIndex(nil, 0); ok {
		t.Error("expected no group for empty group list")
	}
	if _, ok := StartSlotIndexForGroupIndex(nil, 0); ok {
		t.Error("expected no start for empty group list")
	}
}
