package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"weddinghub/internal/domain"
)

type vendorService struct {
	logger          *slog.Logger
	eventRepo       domain.EventRepository
	vendorRepo      domain.VendorRepository
	eventVendorRepo domain.EventVendorRepository
}

// NewVendorService creates a VendorService with the given repositories.
func NewVendorService(
	logger *slog.Logger,
	eventRepo domain.EventRepository,
	vendorRepo domain.VendorRepository,
	eventVendorRepo domain.EventVendorRepository,
) domain.VendorService {
	return &vendorService{
		logger:          logger,
		eventRepo:       eventRepo,
		vendorRepo:      vendorRepo,
		eventVendorRepo: eventVendorRepo,
	}
}

// ownedVendor fetches the catalog vendor and checks the caller owns it.
func (s *vendorService) ownedVendor(ctx context.Context, vendorID, organizerID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	if vendor.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	return vendor, nil
}

// ownedAssignment fetches an assignment and checks the caller owns the event
// it belongs to.
func (s *vendorService) ownedAssignment(ctx context.Context, assignmentID, organizerID string) (*domain.EventVendor, error) {
	assignment, err := s.eventVendorRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if _, err := ownedEvent(ctx, s.eventRepo, assignment.EventID, organizerID); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, organizerID string, vendor *domain.Vendor) (*domain.Vendor, error) {
	if strings.TrimSpace(vendor.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !vendor.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown vendor category %q", domain.ErrValidation, vendor.Category)
	}
	if !vendor.PriceRange.Valid() {
		return nil, fmt.Errorf("%w: unknown price range %q", domain.ErrValidation, vendor.PriceRange)
	}
	now := time.Now()
	vendor.OrganizerID = organizerID
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) GetVendor(ctx context.Context, organizerID, vendorID string) (*domain.Vendor, error) {
	return s.ownedVendor(ctx, vendorID, organizerID)
}

func (s *vendorService) ListMyVendors(ctx context.Context, organizerID string) ([]*domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, organizerID, vendorID string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	if _, err := s.ownedVendor(ctx, vendorID, organizerID); err != nil {
		return nil, err
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown vendor category %q", domain.ErrValidation, *upd.Category)
	}
	if upd.PriceRange != nil && !upd.PriceRange.Valid() {
		return nil, fmt.Errorf("%w: unknown price range %q", domain.ErrValidation, *upd.PriceRange)
	}
	vendor, err := s.vendorRepo.Update(ctx, vendorID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, organizerID, vendorID string) error {
	if _, err := s.ownedVendor(ctx, vendorID, organizerID); err != nil {
		return err
	}
	if err := s.vendorRepo.Delete(ctx, vendorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}

func (s *vendorService) AssignVendor(ctx context.Context, organizerID, eventID, vendorID string, amount decimal.Decimal, currency string) (*domain.EventVendor, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: contract amount cannot be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(currency) == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	if _, err := s.ownedVendor(ctx, vendorID, organizerID); err != nil {
		return nil, err
	}

	assignment := domain.NewEventVendor(eventID, vendorID, amount, currency, time.Now())
	if err := s.eventVendorRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

func (s *vendorService) ListAssignments(ctx context.Context, organizerID, eventID string) ([]*domain.EventVendorWithVendor, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	assignments, err := s.eventVendorRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	vendorsByID := make(map[string]*domain.Vendor)
	result := make([]*domain.EventVendorWithVendor, 0, len(assignments))
	for _, a := range assignments {
		vendor, ok := vendorsByID[a.VendorID]
		if !ok {
			vendor, err = s.vendorRepo.GetByID(ctx, a.VendorID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Vendor deleted under the assignment; skip the entry.
					continue
				}
				return nil, fmt.Errorf("get vendor for assignment: %w", err)
			}
			vendorsByID[a.VendorID] = vendor
		}
		result = append(result, &domain.EventVendorWithVendor{
			Assignment: a,
			Vendor:     vendor,
		})
	}
	return result, nil
}

func (s *vendorService) UpdateAssignment(ctx context.Context, organizerID, assignmentID string, upd domain.EventVendorUpdate) (*domain.EventVendor, error) {
	current, err := s.ownedAssignment(ctx, assignmentID, organizerID)
	if err != nil {
		return nil, err
	}
	if upd.ContractAmount != nil && upd.ContractAmount.IsNegative() {
		return nil, fmt.Errorf("%w: contract amount cannot be negative", domain.ErrValidation)
	}
	// Both lifecycles are validated against their transition tables before
	// anything is written, so a rejected patch leaves the record untouched.
	if upd.PaymentStatus != nil {
		if !upd.PaymentStatus.Valid() {
			return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, *upd.PaymentStatus)
		}
		if !current.PaymentStatus.CanTransition(*upd.PaymentStatus) {
			return nil, fmt.Errorf("%w: payment status %s -> %s", domain.ErrInvalidTransition, current.PaymentStatus, *upd.PaymentStatus)
		}
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown assignment status %q", domain.ErrValidation, *upd.Status)
		}
		if !current.Status.CanTransition(*upd.Status) {
			return nil, fmt.Errorf("%w: assignment status %s -> %s", domain.ErrInvalidTransition, current.Status, *upd.Status)
		}
	}
	assignment, err := s.eventVendorRepo.Update(ctx, assignmentID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	return assignment, nil
}

func (s *vendorService) RemoveAssignment(ctx context.Context, organizerID, assignmentID string) (*domain.RemovedAssignment, error) {
	current, err := s.ownedAssignment(ctx, assignmentID, organizerID)
	if err != nil {
		return nil, err
	}
	// Payments never block removal; the flag lets the caller surface a
	// warning about lost financial history.
	hadPayments := current.PaymentStatus == domain.PaymentDPPaid || current.PaymentStatus == domain.PaymentPaid
	if err := s.eventVendorRepo.Delete(ctx, assignmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete assignment: %w", err)
	}
	if hadPayments {
		s.logger.InfoContext(ctx, "assignment with payment history removed",
			"assignment_id", assignmentID, "payment_status", current.PaymentStatus)
	}
	return &domain.RemovedAssignment{ID: assignmentID, HadPayments: hadPayments}, nil
}
