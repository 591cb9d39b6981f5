// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lucasvidela/jornada/internal/event"
)

// SQLite implements event.Repository using SQLite.
//
// Timestamps are stored as RFC3339 in UTC so range queries can compare them
// lexicographically; scanned values are converted back to local time.
type SQLite struct {
	db *sql.DB
}

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

// CreateEvent adds a new event to the repository and sets its ID.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.Category == "" {
		e.Category = event.CategoryBusy
	}

	query := `
		INSERT INTO events (title, description, start_time, end_time, color, category, series_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Title,
		e.Description,
		storeTime(e.Start),
		storeTime(e.End),
		e.Color,
		e.Category,
		e.SeriesID,
		storeTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// CreateEvents adds multiple events in a single transaction.
func (s *SQLite) CreateEvents(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO events (title, description, start_time, end_time, color, category, series_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, e := range events {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now()
		}
		if e.Category == "" {
			e.Category = event.CategoryBusy
		}
		result, err := tx.ExecContext(ctx, query,
			e.Title, e.Description, storeTime(e.Start), storeTime(e.End),
			e.Color, e.Category, e.SeriesID, storeTime(e.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting event %q: %w", e.Title, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		e.ID = id
	}

	return tx.Commit()
}

// GetEvent retrieves an event by ID. Returns nil if not found.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	query := `
		SELECT id, title, description, start_time, end_time, color, category, series_id, created_at
		FROM events
		WHERE id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// ListEventsByDay returns all events whose span touches the given day.
func (s *SQLite) ListEventsByDay(ctx context.Context, day time.Time) ([]*event.Event, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.ListEventsByRange(ctx, start, start.AddDate(0, 0, 1))
}

// ListEventsByRange returns all events overlapping [start, end), ordered by start time.
func (s *SQLite) ListEventsByRange(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT id, title, description, start_time, end_time, color, category, series_id, created_at
		FROM events
		WHERE start_time < ? AND end_time > ?
		ORDER BY start_time
	`

	rows, err := s.db.QueryContext(ctx, query, storeTime(end), storeTime(start))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// DeleteEvent removes an event by ID.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

// DeletePlanned removes all planner-produced blocks on the given day.
func (s *SQLite) DeletePlanned(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		DELETE FROM events
		WHERE category IN ('task', 'buffer', 'habit')
		  AND start_time < ? AND end_time > ?
	`
	result, err := s.db.ExecContext(ctx, query, storeTime(end), storeTime(start))
	if err != nil {
		return 0, fmt.Errorf("deleting planned blocks: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner abstracts sql.Row and sql.Rows for scanEvent.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*event.Event, error) {
	var (
		e         event.Event
		startStr  string
		endStr    string
		createdAt string
		category  string
	)

	err := row.Scan(&e.ID, &e.Title, &e.Description, &startStr, &endStr, &e.Color, &category, &e.SeriesID, &createdAt)
	if err != nil {
		return nil, err
	}

	if e.Start, err = loadTime(startStr); err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	if e.End, err = loadTime(endStr); err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}
	if e.CreatedAt, err = loadTime(createdAt); err != nil {
		// created_at can carry the SQLite default format from rows
		// written outside this code path; tolerate it.
		if t, perr := time.Parse("2006-01-02 15:04:05", createdAt); perr == nil {
			e.CreatedAt = t
		} else {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
	}
	e.Category = event.Category(category)

	return &e, nil
}

func storeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func loadTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}
