// Package document reads and writes strategies as JSON files.
//
// Slots are stored as indices into the activity list, or null for an
// empty slot:
//
//	{"title": "Weekday", "beginTime": 360, "slotDuration": 15,
//	 "activities": [{"name": "Nap", "color": "#a6e3a1"}],
//	 "slots": [0, null, 0]}
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/strategr/internal/strategy"
)

// Extension is the file extension for strategy documents.
const Extension = ".stg"

// Document errors.
var (
	ErrInvalidDocument = errors.New("invalid strategy document")
	ErrEmptyDocument   = errors.New("strategy document has no slots")
	ErrUnknownActivity = errors.New("slot references unknown activity")
)

type activityJSON struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type documentJSON struct {
	Title        string         `json:"title,omitempty"`
	BeginTime    int            `json:"beginTime"`
	SlotDuration int            `json:"slotDuration"`
	Activities   []activityJSON `json:"activities"`
	Slots        []*int         `json:"slots"`
}

// Marshal encodes s as an indented JSON document.
// Slots holding an activity missing from the catalogue are an error.
func Marshal(title string, s *strategy.Strategy) ([]byte, error) {
	doc := documentJSON{
		Title:        title,
		BeginTime:    s.BeginTime(),
		SlotDuration: s.SlotDuration(),
	}

	for _, a := range s.Activities() {
		doc.Activities = append(doc.Activities, activityJSON{Name: a.Name, Color: a.Color})
	}
	if doc.Activities == nil {
		doc.Activities = []activityJSON{}
	}

	doc.Slots = make([]*int, s.NumberOfSlots())
	for i, slot := range s.Slots() {
		a, ok := slot.Activity()
		if !ok {
			continue
		}
		index, ok := s.ActivityIndex(a)
		if !ok {
			return nil, fmt.Errorf("slot %d (%s): %w", i, a.Name, ErrUnknownActivity)
		}
		doc.Slots[i] = &index
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a JSON document into a strategy and its title.
func Unmarshal(data []byte) (string, *strategy.Strategy, error) {
	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(doc.Slots) == 0 {
		return "", nil, ErrEmptyDocument
	}

	// Activities are kept as written so that slot references and
	// structural equality survive a round trip.
	activities := make([]strategy.Activity, 0, len(doc.Activities))
	for i, a := range doc.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return "", nil, fmt.Errorf("activity %d: %w", i, strategy.ErrEmptyActivityName)
		}
		activities = append(activities, strategy.Activity{Name: a.Name, Color: a.Color})
	}

	s, err := strategy.New(len(doc.Slots),
		strategy.WithBeginTime(doc.BeginTime),
		strategy.WithSlotDuration(doc.SlotDuration),
		strategy.WithActivities(activities...),
	)
	if err != nil {
		return "", nil, err
	}

	slots := make([]strategy.Slot, len(doc.Slots))
	for i, index := range doc.Slots {
		if index == nil {
			continue
		}
		if *index < 0 || *index >= len(activities) {
			return "", nil, fmt.Errorf("slot %d references activity %d: %w", i, *index, ErrUnknownActivity)
		}
		slots[i] = strategy.SlotOf(activities[*index])
	}
	if err := s.SetSlots(slots); err != nil {
		return "", nil, err
	}

	return doc.Title, s, nil
}

// ReadFile loads a strategy document from path.
func ReadFile(path string) (string, *strategy.Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}

	title, s, err := Unmarshal(data)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if title == "" {
		title = TitleFromPath(path)
	}
	return title, s, nil
}

// WriteFile stores s at path. The document is written to a temporary file
// in the same directory and renamed into place.
func WriteFile(path, title string, s *strategy.Strategy) error {
	data, err := Marshal(title, s)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".strategy-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// TitleFromPath returns the file name without directory and extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// ResolvePath expands a leading "~/", joins relative paths onto dir when
// dir is set, and adds Extension when the path has none.
func ResolvePath(path, dir string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	if filepath.Ext(path) == "" {
		path += Extension
	}
	return path
}
