package domain

import (
	"context"
	"time"
)

// Event represents a wedding event owned by one organizer.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Name        string    `json:"name"`
	CoupleNames string    `json:"couple_names"`
	EventDate   time.Time `json:"event_date"`
	Venue       string    `json:"venue"`
	Template    string    `json:"template"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(organizerID, name, coupleNames, venue, template string, eventDate, now time.Time) *Event {
	return &Event{
		OrganizerID: organizerID,
		Name:        name,
		CoupleNames: coupleNames,
		EventDate:   eventDate,
		Venue:       venue,
		Template:    template,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EventUpdate holds the patchable event fields. Nil means "leave unchanged".
type EventUpdate struct {
	Name        *string
	CoupleNames *string
	EventDate   *time.Time
	Venue       *string
	Template    *string
}

// EventRepository defines the interface for event storage. Deleting an event
// cascades to its guests and vendor assignments at the store level.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines organizer-facing event management.
type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, event *Event) (*Event, error)
	GetEvent(ctx context.Context, eventID, organizerID string) (*Event, error)
	ListMyEvents(ctx context.Context, organizerID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, eventID, organizerID string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, organizerID string) error
}
