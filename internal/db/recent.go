package db

import (
	"context"
	"fmt"
)

// TouchRecentFile moves path to the front of the recent files list and
// drops entries beyond limit.
func (s *SQLite) TouchRecentFile(ctx context.Context, path string, limit int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// seq grows on every touch, so ordering does not depend on clock resolution.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO recent_files (path, seq)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM recent_files))
		ON CONFLICT(path) DO UPDATE SET seq = excluded.seq
	`, path)
	if err != nil {
		return fmt.Errorf("recording recent file: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM recent_files
		WHERE path NOT IN (
			SELECT path FROM recent_files ORDER BY seq DESC LIMIT ?
		)
	`, limit)
	if err != nil {
		return fmt.Errorf("trimming recent files: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// RecentFiles returns recently opened document paths, newest first.
func (s *SQLite) RecentFiles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path FROM recent_files ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying recent files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scanning recent file: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent files: %w", err)
	}
	return paths, nil
}

// ClearRecentFiles forgets all recent files.
func (s *SQLite) ClearRecentFiles(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recent_files`); err != nil {
		return fmt.Errorf("clearing recent files: %w", err)
	}
	return nil
}
