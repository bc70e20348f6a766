package domain

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxDescriptionLength is the maximum number of characters stored for an event description.
const MaxDescriptionLength = 200

// Event represents a developer event (conference, meetup). It is the aggregate root for its speakers.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	IsDeleted   bool       `json:"isDeleted"`
	Speakers    []*Speaker `json:"speakers"`
}

// NewEvent returns a new active Event with a freshly generated ID and no speakers.
func NewEvent(title, description string, startDate, endDate time.Time) *Event {
	return &Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		IsDeleted:   false,
		Speakers:    []*Speaker{},
	}
}

// Update replaces title, description and dates. It does not validate its input
// and never touches IsDeleted or Speakers.
func (e *Event) Update(title, description string, startDate, endDate time.Time) {
	e.Title = title
	e.Description = description
	e.StartDate = startDate
	e.EndDate = endDate
}

// Delete marks the event as soft-deleted. Calling it again has no further effect.
func (e *Event) Delete() {
	e.IsDeleted = true
}

// IsActive reports whether the event has not been soft-deleted.
func (e *Event) IsActive() bool {
	return !e.IsDeleted
}

// ValidateDescription returns ErrDescriptionTooLong when description exceeds MaxDescriptionLength characters.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// EventRepository defines the interface for event storage.
// Reads that return whole events populate Speakers.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// GetByID returns the event regardless of IsDeleted.
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetForUpdate loads the event row without speakers, locking it for the
	// current transaction where the store supports row locks.
	GetForUpdate(ctx context.Context, id string) (*Event, error)
	// ListActive returns every event with IsDeleted == false.
	ListActive(ctx context.Context) ([]*Event, error)
	// Update persists title, description, dates and the deleted flag.
	Update(ctx context.Context, event *Event) error
	Exists(ctx context.Context, id string) (bool, error)
}

// Transactor runs fn inside a single store transaction. Repositories called with
// the context passed to fn take part in that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventService defines the business logic for managing events and their speakers.
type EventService interface {
	ListActiveEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, title, description string, startDate, endDate time.Time) (*Event, error)
	UpdateEvent(ctx context.Context, id, title, description string, startDate, endDate time.Time) error
	DeleteEvent(ctx context.Context, id string) error
	AddSpeaker(ctx context.Context, eventID, name, talkTitle, talkDescription, linkedInProfile string) error
}
