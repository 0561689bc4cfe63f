// Package strategy defines the slot and activity model of a day strategy.
//
// A strategy splits a period into a fixed number of equal slots. Each slot
// is either empty or assigned to one Activity. Contiguous slots sharing the
// same activity are presented to callers as ActivityGroups, which are always
// derived from the slots and never stored.
package strategy

import (
	"errors"
	"strings"
)

// Validation errors.
var (
	ErrEmptyActivityName = errors.New("activity name cannot be empty")
	ErrInvalidColor      = errors.New("color must be in #RRGGBB format")
)

// Activity is a named category that can be assigned to slots.
// Activities are compared by value.
type Activity struct {
	Name  string
	Color string // "#RRGGBB", optional
}

// NewActivity creates an Activity with validation.
// The name is trimmed; color may be empty.
func NewActivity(name, color string) (Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Activity{}, ErrEmptyActivityName
	}

	color = strings.TrimSpace(color)
	if color != "" && !isHexColor(color) {
		return Activity{}, ErrInvalidColor
	}

	return Activity{Name: name, Color: strings.ToLower(color)}, nil
}

// String returns the activity name.
func (a Activity) String() string {
	return a.Name
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
