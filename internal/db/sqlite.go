// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/strategr/internal/strategy"
)

// ErrEmptyName is returned when a strategy is saved without a name.
var ErrEmptyName = errors.New("strategy name cannot be empty")

// SQLite implements strategy.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ strategy.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveStrategy stores st under name, replacing its activities and slots.
// The whole write happens in one transaction.
func (s *SQLite) SaveStrategy(ctx context.Context, name string, st *strategy.Strategy) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM strategies WHERE name = ?`, name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO strategies (id, name, begin_time, slot_duration, number_of_slots, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, name, st.BeginTime(), st.SlotDuration(), st.NumberOfSlots(), time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting strategy: %w", err)
		}
	case err != nil:
		return fmt.Errorf("looking up strategy: %w", err)
	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE strategies
			SET begin_time = ?, slot_duration = ?, number_of_slots = ?, updated_at = ?
			WHERE id = ?
		`, st.BeginTime(), st.SlotDuration(), st.NumberOfSlots(), time.Now().UTC().Format(time.RFC3339), id)
		if err != nil {
			return fmt.Errorf("updating strategy: %w", err)
		}
	}

	if err := deleteChildren(ctx, tx, id); err != nil {
		return err
	}

	activityStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO activities (strategy_id, position, name, color) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing activity insert: %w", err)
	}
	defer func() { _ = activityStmt.Close() }()

	for i, a := range st.Activities() {
		if _, err := activityStmt.ExecContext(ctx, id, i, a.Name, a.Color); err != nil {
			return fmt.Errorf("inserting activity %q: %w", a.Name, err)
		}
	}

	slotStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO slots (strategy_id, slot_index, activity_position) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing slot insert: %w", err)
	}
	defer func() { _ = slotStmt.Close() }()

	for i, slot := range st.Slots() {
		var position sql.NullInt64
		if a, ok := slot.Activity(); ok {
			index, found := st.ActivityIndex(a)
			if !found {
				return fmt.Errorf("slot %d references activity %q missing from catalogue", i, a.Name)
			}
			position = sql.NullInt64{Int64: int64(index), Valid: true}
		}
		if _, err := slotStmt.ExecContext(ctx, id, i, position); err != nil {
			return fmt.Errorf("inserting slot %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LoadStrategy returns the strategy stored under name.
func (s *SQLite) LoadStrategy(ctx context.Context, name string) (*strategy.Strategy, error) {
	var (
		id                                     string
		beginTime, slotDuration, numberOfSlots int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, begin_time, slot_duration, number_of_slots
		FROM strategies
		WHERE name = ?
	`, strings.TrimSpace(name)).Scan(&id, &beginTime, &slotDuration, &numberOfSlots)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, strategy.ErrStrategyNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying strategy: %w", err)
	}

	activities, err := s.loadActivities(ctx, id)
	if err != nil {
		return nil, err
	}

	st, err := strategy.New(numberOfSlots,
		strategy.WithBeginTime(beginTime),
		strategy.WithSlotDuration(slotDuration),
		strategy.WithActivities(activities...),
	)
	if err != nil {
		return nil, fmt.Errorf("building strategy: %w", err)
	}

	slots, err := s.loadSlots(ctx, id, numberOfSlots, activities)
	if err != nil {
		return nil, err
	}
	if err := st.SetSlots(slots); err != nil {
		return nil, fmt.Errorf("restoring slots: %w", err)
	}

	return st, nil
}

func (s *SQLite) loadActivities(ctx context.Context, id string) ([]strategy.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, color FROM activities WHERE strategy_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var activities []strategy.Activity
	for rows.Next() {
		var a strategy.Activity
		if err := rows.Scan(&a.Name, &a.Color); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (s *SQLite) loadSlots(ctx context.Context, id string, n int, activities []strategy.Activity) ([]strategy.Slot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slot_index, activity_position FROM slots WHERE strategy_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	slots := make([]strategy.Slot, n)
	for rows.Next() {
		var (
			index    int
			position sql.NullInt64
		)
		if err := rows.Scan(&index, &position); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		if !position.Valid || index < 0 || index >= n {
			continue
		}
		if position.Int64 < 0 || int(position.Int64) >= len(activities) {
			return nil, fmt.Errorf("slot %d references unknown activity %d", index, position.Int64)
		}
		slots[index] = strategy.SlotOf(activities[position.Int64])
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}
	return slots, nil
}

// ListStrategies returns summaries of all stored strategies ordered by name.
func (s *SQLite) ListStrategies(ctx context.Context) ([]strategy.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, number_of_slots, begin_time, slot_duration, updated_at
		FROM strategies
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying strategies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []strategy.Summary
	for rows.Next() {
		var (
			sum       strategy.Summary
			updatedAt string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.NumberOfSlots, &sum.BeginTime, &sum.SlotDuration, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning strategy: %w", err)
		}
		sum.UpdatedAt, err = parseTimestamp(updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating strategies: %w", err)
	}
	return summaries, nil
}

// DeleteStrategy removes the strategy stored under name.
func (s *SQLite) DeleteStrategy(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM strategies WHERE name = ?`, strings.TrimSpace(name)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%q: %w", name, strategy.ErrStrategyNotFound)
	}
	if err != nil {
		return fmt.Errorf("looking up strategy: %w", err)
	}

	if err := deleteChildren(ctx, tx, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM strategies WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting strategy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func deleteChildren(ctx context.Context, tx *sql.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE strategy_id = ?`, id); err != nil {
		return fmt.Errorf("deleting slots: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM activities WHERE strategy_id = ?`, id); err != nil {
		return fmt.Errorf("deleting activities: %w", err)
	}
	return nil
}

// parseTimestamp parses a timestamp in the formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
