package event

import (
	"context"
	"time"
)

// Repository defines the storage interface for events.
type Repository interface {
	// CreateEvent adds a new event to the repository and sets its ID.
	CreateEvent(ctx context.Context, e *Event) error

	// CreateEvents adds multiple events in a single transaction.
	// Used when persisting a full planned day.
	CreateEvents(ctx context.Context, events []*Event) error

	// GetEvent retrieves an event by ID. Returns nil if not found.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// ListEventsByDay returns all events whose span touches the given day,
	// ordered by start time.
	ListEventsByDay(ctx context.Context, day time.Time) ([]*Event, error)

	// ListEventsByRange returns all events overlapping [start, end),
	// ordered by start time.
	ListEventsByRange(ctx context.Context, start, end time.Time) ([]*Event, error)

	// DeleteEvent removes an event by ID.
	// Returns ErrEventNotFound if no such event exists.
	DeleteEvent(ctx context.Context, id int64) error

	// DeletePlanned removes all planner-produced blocks (task, buffer, habit)
	// on the given day. Used before re-planning a saved day.
	DeletePlanned(ctx context.Context, day time.Time) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
