package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddinghub/internal/domain"
)

type eventService struct {
	logger    *slog.Logger
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService with the given repository.
func NewEventService(logger *slog.Logger, eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		logger:    logger,
		eventRepo: eventRepo,
	}
}

// ownedEvent fetches the event and checks the caller owns it.
func ownedEvent(ctx context.Context, repo domain.EventRepository, eventID, organizerID string) (*domain.Event, error) {
	event, err := repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID string, event *domain.Event) (*domain.Event, error) {
	if strings.TrimSpace(event.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if event.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}
	now := time.Now()
	event.OrganizerID = organizerID
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Template == "" {
		event.Template = "classic"
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID, organizerID string) (*domain.Event, error) {
	return ownedEvent(ctx, s.eventRepo, eventID, organizerID)
}

func (s *eventService) ListMyEvents(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, organizerID string, upd domain.EventUpdate) (*domain.Event, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}
	event, err := s.eventRepo.Update(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, organizerID string) error {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return err
	}
	// Guests and vendor assignments go with the event; the store cascades.
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	s.logger.InfoContext(ctx, "event deleted", "event_id", eventID, "organizer_id", organizerID)
	return nil
}
