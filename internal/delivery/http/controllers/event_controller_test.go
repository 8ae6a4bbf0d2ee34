package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weddinghub/internal/delivery/http/helpers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event  *domain.Event
	events []*domain.Event
	err    error
	upd    domain.EventUpdate
}

func (f *fakeEventService) CreateEvent(_ context.Context, _ string, event *domain.Event) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.event != nil {
		return f.event, nil
	}
	return event, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, _, _ string) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) ListMyEvents(_ context.Context, _ string) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) UpdateEvent(_ context.Context, _, _ string, upd domain.EventUpdate) (*domain.Event, error) {
	f.upd = upd
	return f.event, f.err
}

func (f *fakeEventService) DeleteEvent(_ context.Context, _, _ string) error {
	return f.err
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		authed     bool
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"name":"Ani & Budi","couple_names":"Ani & Budi","event_date":"2026-11-07T10:00:00Z","venue":"Grand Ballroom"}`,
			authed:     true,
			svc:        &fakeEventService{},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"event_date":"2026-11-07T10:00:00Z"}`,
			authed:     true,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing event date",
			body:       `{"name":"Ani & Budi"}`,
			authed:     true,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			authed:     true,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "no organizer in context",
			body:       `{"name":"Ani & Budi","event_date":"2026-11-07T10:00:00Z"}`,
			authed:     false,
			svc:        &fakeEventService{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewEventController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			if tt.authed {
				req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
			}
			rr := httptest.NewRecorder()

			controller.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			} else {
				require.Nil(t, envelope.Error)
			}
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			eventID:    testEventID,
			svc:        &fakeEventService{event: &domain.Event{ID: testEventID, Name: "Ani & Budi"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed id never reaches the service",
			eventID:    "not-a-uuid",
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "not found",
			eventID:    testEventID,
			svc:        &fakeEventService{err: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "foreign organizer",
			eventID:    testEventID,
			svc:        &fakeEventService{err: domain.ErrForbidden},
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewEventController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.eventID, nil)
			req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			controller.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
		})
	}
}

func TestEventController_UpdateEvent_PartialPatch(t *testing.T) {
	svc := &fakeEventService{event: &domain.Event{ID: testEventID, Venue: "Garden Pavilion"}}
	controller := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodPatch, "/events/"+testEventID, bytes.NewBufferString(`{"venue":"Garden Pavilion"}`))
	req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
	req.SetPathValue("eventID", testEventID)
	rr := httptest.NewRecorder()

	controller.UpdateEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, svc.upd.Venue)
	assert.Equal(t, "Garden Pavilion", *svc.upd.Venue)
	assert.Nil(t, svc.upd.Name)
	assert.Nil(t, svc.upd.EventDate)
}

func TestEventController_DeleteEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		controller := NewEventController(testLogger, &fakeEventService{})

		req := httptest.NewRequest(http.MethodDelete, "/events/"+testEventID, nil)
		req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()

		controller.DeleteEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		controller := NewEventController(testLogger, &fakeEventService{err: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodDelete, "/events/"+testEventID, nil)
		req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()

		controller.DeleteEvent(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
