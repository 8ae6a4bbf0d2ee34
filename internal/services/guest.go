package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddinghub/internal/domain"
	"weddinghub/internal/monitoring"
)

type guestService struct {
	logger    *slog.Logger
	eventRepo domain.EventRepository
	guestRepo domain.GuestRepository
	codec     domain.IdentityCodec
	baseURL   string
}

// NewGuestService creates a GuestService. baseURL is the public dashboard
// origin used to build invitation links.
func NewGuestService(
	logger *slog.Logger,
	eventRepo domain.EventRepository,
	guestRepo domain.GuestRepository,
	codec domain.IdentityCodec,
	baseURL string,
) domain.GuestService {
	return &guestService{
		logger:    logger,
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		codec:     codec,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *guestService) invitationLink(eventID, token string) string {
	return fmt.Sprintf("%s/invite/%s/%s", s.baseURL, eventID, token)
}

func (s *guestService) AddGuest(ctx context.Context, organizerID, eventID, name, phone string, category domain.GuestCategory) (*domain.Guest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown guest category %q", domain.ErrValidation, category)
	}
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}

	// The identity token is bound to the guest for life here. It is only ever
	// replaced through ResetToken, because reissuing invalidates QR codes
	// that may already be printed.
	token := s.codec.IssueToken()
	guest := domain.NewGuest(eventID, name, phone, category, token, s.invitationLink(eventID, token), time.Now())
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}
	return guest, nil
}

func (s *guestService) GetGuest(ctx context.Context, organizerID, eventID, guestID string) (*domain.Guest, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.GetByID(ctx, eventID, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return guest, nil
}

func (s *guestService) ListGuests(ctx context.Context, organizerID, eventID string, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, 0, err
	}
	guests, total, err := s.guestRepo.ListByEventID(ctx, eventID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list guests: %w", err)
	}
	return guests, total, nil
}

func (s *guestService) DeleteGuest(ctx context.Context, organizerID, eventID, guestID string) error {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return err
	}
	if err := s.guestRepo.Delete(ctx, eventID, guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete guest: %w", err)
	}
	return nil
}

func (s *guestService) UpdateRSVP(ctx context.Context, eventID, token string, status domain.RSVPStatus, message *string) (*domain.Guest, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown rsvp status %q", domain.ErrValidation, status)
	}
	guest, err := s.guestRepo.GetByToken(ctx, eventID, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest by token: %w", err)
	}

	// RSVP is repeatable: the guest owns this value and the latest answer
	// wins. Reverting to pending clears both the message and the timestamp so
	// the rsvp_at/rsvp_status invariant holds.
	var at *time.Time
	if status != domain.RSVPPending {
		now := time.Now()
		at = &now
	} else {
		message = nil
	}
	updated, err := s.guestRepo.UpdateRSVP(ctx, eventID, guest.ID, status, message, at)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update rsvp: %w", err)
	}
	return updated, nil
}

func (s *guestService) CheckIn(ctx context.Context, organizerID, eventID, guestID string) (*domain.Guest, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	return s.checkIn(ctx, eventID, guestID)
}

func (s *guestService) CheckInByToken(ctx context.Context, organizerID, eventID, token string) (*domain.Guest, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.GetByToken(ctx, eventID, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			monitoring.TrackCheckin(eventID, "unknown_token")
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest by token: %w", err)
	}
	return s.checkIn(ctx, eventID, guest.ID)
}

// checkIn delegates the actual flip to the repository's conditional update,
// so concurrent scans of the same code resolve to one winner.
func (s *guestService) checkIn(ctx context.Context, eventID, guestID string) (*domain.Guest, error) {
	guest, err := s.guestRepo.CheckIn(ctx, eventID, guestID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			monitoring.TrackCheckin(eventID, "duplicate")
			return nil, domain.ErrAlreadyCheckedIn
		case errors.Is(err, domain.ErrNotFound):
			monitoring.TrackCheckin(eventID, "not_found")
			return nil, domain.ErrNotFound
		}
		monitoring.TrackCheckin(eventID, "error")
		return nil, fmt.Errorf("check in guest: %w", err)
	}
	monitoring.TrackCheckin(eventID, "success")
	s.logger.InfoContext(ctx, "guest checked in", "event_id", eventID, "guest_id", guestID)
	return guest, nil
}

func (s *guestService) ResetToken(ctx context.Context, organizerID, eventID, guestID string) (*domain.Guest, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	token := s.codec.IssueToken()
	guest, err := s.guestRepo.UpdateToken(ctx, eventID, guestID, token, s.invitationLink(eventID, token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reset token: %w", err)
	}
	s.logger.InfoContext(ctx, "guest token reset", "event_id", eventID, "guest_id", guestID)
	return guest, nil
}

func (s *guestService) QRCode(ctx context.Context, organizerID, eventID, guestID string, opts domain.QREncodeOptions) ([]byte, error) {
	guest, err := s.GetGuest(ctx, organizerID, eventID, guestID)
	if err != nil {
		return nil, err
	}
	png, err := s.codec.Encode(guest.IdentityToken, opts)
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (s *guestService) QRCodeDataURL(ctx context.Context, organizerID, eventID, guestID string, opts domain.QREncodeOptions) (string, error) {
	guest, err := s.GetGuest(ctx, organizerID, eventID, guestID)
	if err != nil {
		return "", err
	}
	return s.codec.DataURL(guest.IdentityToken, opts)
}
