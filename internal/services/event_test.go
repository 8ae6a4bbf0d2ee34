package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"weddinghub/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEventService_CreateEvent(t *testing.T) {
	tests := []struct {
		name         string
		event        *domain.Event
		wantErr      error
		wantTemplate string
	}{
		{
			name: "success with default template",
			event: &domain.Event{
				Name:        "Sarah & Budi Wedding",
				CoupleNames: "Sarah & Budi",
				EventDate:   time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
			},
			wantTemplate: "classic",
		},
		{
			name: "explicit template kept",
			event: &domain.Event{
				Name:      "Reception",
				EventDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
				Template:  "rustic",
			},
			wantTemplate: "rustic",
		},
		{
			name:    "missing name",
			event:   &domain.Event{EventDate: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing date",
			event:   &domain.Event{Name: "Wedding"},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{events: map[string]*domain.Event{}}
			svc := NewEventService(testLogger(), repo)

			got, err := svc.CreateEvent(context.Background(), "org-1", tt.event)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.OrganizerID != "org-1" {
				t.Fatalf("expected organizer org-1, got %s", got.OrganizerID)
			}
			if got.Template != tt.wantTemplate {
				t.Fatalf("expected template %s, got %s", tt.wantTemplate, got.Template)
			}
			if got.ID == "" {
				t.Fatal("expected id to be set")
			}
		})
	}
}

func TestEventService_GetEvent_Ownership(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"ev-1": {ID: "ev-1", OrganizerID: "org-1", Name: "Wedding"},
	}}
	svc := NewEventService(testLogger(), repo)

	t.Run("owner sees event", func(t *testing.T) {
		got, err := svc.GetEvent(context.Background(), "ev-1", "org-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ev-1" {
			t.Fatalf("expected ev-1, got %s", got.ID)
		}
	})

	t.Run("other organizer forbidden", func(t *testing.T) {
		_, err := svc.GetEvent(context.Background(), "ev-1", "org-2")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown event not found", func(t *testing.T) {
		_, err := svc.GetEvent(context.Background(), "ev-missing", "org-1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		repo := &mockEventRepository{events: map[string]*domain.Event{
			"ev-1": {ID: "ev-1", OrganizerID: "org-1", Name: "Wedding"},
		}}
		svc := NewEventService(testLogger(), repo)

		empty := "  "
		_, err := svc.UpdateEvent(context.Background(), "ev-1", "org-1", domain.EventUpdate{Name: &empty})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("patches venue", func(t *testing.T) {
		repo := &mockEventRepository{events: map[string]*domain.Event{
			"ev-1": {ID: "ev-1", OrganizerID: "org-1", Name: "Wedding", Venue: "Hall"},
		}}
		svc := NewEventService(testLogger(), repo)

		venue := "Garden Pavilion"
		got, err := svc.UpdateEvent(context.Background(), "ev-1", "org-1", domain.EventUpdate{Venue: &venue})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Venue != "Garden Pavilion" {
			t.Fatalf("expected venue patched, got %s", got.Venue)
		}
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"ev-1": {ID: "ev-1", OrganizerID: "org-1", Name: "Wedding"},
	}}
	svc := NewEventService(testLogger(), repo)

	if err := svc.DeleteEvent(context.Background(), "ev-1", "org-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteEvent(context.Background(), "ev-1", "org-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteEvent(context.Background(), "ev-1", "org-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
