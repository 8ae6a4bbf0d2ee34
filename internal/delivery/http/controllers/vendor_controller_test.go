package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinghub/internal/delivery/http/helpers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/domain"
)

const (
	testVendorID     = "c0a8012e-5b4d-4f3a-8e2b-7d6c5b4a3f21"
	testAssignmentID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
)

// fakeVendorService implements domain.VendorService for handler tests.
type fakeVendorService struct {
	vendor      *domain.Vendor
	vendors     []*domain.Vendor
	assignment  *domain.EventVendor
	assignments []*domain.EventVendorWithVendor
	removed     *domain.RemovedAssignment
	err         error
	lastUpd     domain.EventVendorUpdate
}

func (f *fakeVendorService) CreateVendor(_ context.Context, _ string, vendor *domain.Vendor) (*domain.Vendor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.vendor != nil {
		return f.vendor, nil
	}
	return vendor, nil
}

func (f *fakeVendorService) GetVendor(_ context.Context, _, _ string) (*domain.Vendor, error) {
	return f.vendor, f.err
}

func (f *fakeVendorService) ListMyVendors(_ context.Context, _ string) ([]*domain.Vendor, error) {
	return f.vendors, f.err
}

func (f *fakeVendorService) UpdateVendor(_ context.Context, _, _ string, _ domain.VendorUpdate) (*domain.Vendor, error) {
	return f.vendor, f.err
}

func (f *fakeVendorService) DeleteVendor(_ context.Context, _, _ string) error {
	return f.err
}

func (f *fakeVendorService) AssignVendor(_ context.Context, _, _, _ string, _ decimal.Decimal, _ string) (*domain.EventVendor, error) {
	return f.assignment, f.err
}

func (f *fakeVendorService) ListAssignments(_ context.Context, _, _ string) ([]*domain.EventVendorWithVendor, error) {
	return f.assignments, f.err
}

func (f *fakeVendorService) UpdateAssignment(_ context.Context, _, _ string, upd domain.EventVendorUpdate) (*domain.EventVendor, error) {
	f.lastUpd = upd
	return f.assignment, f.err
}

func (f *fakeVendorService) RemoveAssignment(_ context.Context, _, _ string) (*domain.RemovedAssignment, error) {
	return f.removed, f.err
}

func TestVendorController_CreateVendor(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"name":"Floral Co","category":"decoration","price_range":"premium","contact_name":"Sari","contact_phone":"+62812222"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"category":"decoration","price_range":"premium"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown category",
			body:       `{"name":"Floral Co","category":"fireworks","price_range":"premium"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown price range",
			body:       `{"name":"Floral Co","category":"decoration","price_range":"free"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewVendorController(testLogger, &fakeVendorService{})

			req := httptest.NewRequest(http.MethodPost, "/vendors", bytes.NewBufferString(tt.body))
			req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
			rr := httptest.NewRecorder()

			controller.CreateVendor(rr, req)

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

func TestVendorController_AssignVendor(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeVendorService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"vendor_id":"` + testVendorID + `","contract_amount":"50000000","currency":"IDR"}`,
			svc:        &fakeVendorService{assignment: &domain.EventVendor{ID: testAssignmentID}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "vendor id must be a uuid",
			body:       `{"vendor_id":"vendor-1","contract_amount":"50000000","currency":"IDR"}`,
			svc:        &fakeVendorService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "negative amount",
			body:       `{"vendor_id":"` + testVendorID + `","contract_amount":"-1","currency":"IDR"}`,
			svc:        &fakeVendorService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing currency",
			body:       `{"vendor_id":"` + testVendorID + `","contract_amount":"50000000"}`,
			svc:        &fakeVendorService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "vendor owned by someone else",
			body:       `{"vendor_id":"` + testVendorID + `","contract_amount":"50000000","currency":"IDR"}`,
			svc:        &fakeVendorService{err: domain.ErrForbidden},
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewVendorController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/vendors", bytes.NewBufferString(tt.body))
			req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
			req.SetPathValue("eventID", testEventID)
			rr := httptest.NewRecorder()

			controller.AssignVendor(rr, req)

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

func TestVendorController_UpdateAssignment(t *testing.T) {
	t.Run("payment status forwarded as typed value", func(t *testing.T) {
		svc := &fakeVendorService{assignment: &domain.EventVendor{ID: testAssignmentID, PaymentStatus: domain.PaymentDPPaid}}
		controller := NewVendorController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPatch, "/event-vendors/"+testAssignmentID, bytes.NewBufferString(`{"payment_status":"dp_paid"}`))
		req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
		req.SetPathValue("assignmentID", testAssignmentID)
		rr := httptest.NewRecorder()

		controller.UpdateAssignment(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, svc.lastUpd.PaymentStatus)
		assert.Equal(t, domain.PaymentDPPaid, *svc.lastUpd.PaymentStatus)
		assert.Nil(t, svc.lastUpd.Status)
		assert.Nil(t, svc.lastUpd.ContractAmount)
	})

	t.Run("status regression maps to 422", func(t *testing.T) {
		controller := NewVendorController(testLogger, &fakeVendorService{err: domain.ErrInvalidTransition})

		req := httptest.NewRequest(http.MethodPatch, "/event-vendors/"+testAssignmentID, bytes.NewBufferString(`{"payment_status":"pending"}`))
		req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
		req.SetPathValue("assignmentID", testAssignmentID)
		rr := httptest.NewRecorder()

		controller.UpdateAssignment(rr, req)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeInvalidTransition, envelope.Error.Code)
	})
}

func TestVendorController_RemoveAssignment(t *testing.T) {
	controller := NewVendorController(testLogger, &fakeVendorService{
		removed: &domain.RemovedAssignment{ID: testAssignmentID, HadPayments: true},
	})

	req := httptest.NewRequest(http.MethodDelete, "/event-vendors/"+testAssignmentID, nil)
	req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-1"))
	req.SetPathValue("assignmentID", testAssignmentID)
	rr := httptest.NewRecorder()

	controller.RemoveAssignment(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var removed domain.RemovedAssignment
	require.NoError(t, json.Unmarshal(dataBytes, &removed))
	assert.True(t, removed.HadPayments)
}
