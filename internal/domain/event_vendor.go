package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks money paid against a vendor assignment.
type PaymentStatus string

// Payment statuses. Part of the wire contract; do not rename.
const (
	PaymentPending   PaymentStatus = "pending"
	PaymentDPPaid    PaymentStatus = "dp_paid"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentDPPaid, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}

// AssignmentStatus tracks confirmation of a vendor assignment.
type AssignmentStatus string

// Assignment statuses. Part of the wire contract; do not rename.
const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// Valid reports whether s is a known assignment status.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentConfirmed, AssignmentCancelled:
		return true
	}
	return false
}

// paymentTransitions is the allowed payment-status transition table.
// pending → dp_paid → paid; cancellation is allowed any time before paid;
// paid and cancelled are terminal. Adding a status only requires editing
// this table.
var paymentTransitions = map[PaymentStatus]map[PaymentStatus]struct{}{
	PaymentPending:   {PaymentDPPaid: {}, PaymentPaid: {}, PaymentCancelled: {}},
	PaymentDPPaid:    {PaymentPaid: {}, PaymentCancelled: {}},
	PaymentPaid:      {},
	PaymentCancelled: {},
}

// assignmentTransitions is the allowed assignment-status transition table.
// cancelled is terminal.
var assignmentTransitions = map[AssignmentStatus]map[AssignmentStatus]struct{}{
	AssignmentPending:   {AssignmentConfirmed: {}, AssignmentCancelled: {}},
	AssignmentConfirmed: {AssignmentCancelled: {}},
	AssignmentCancelled: {},
}

// CanTransition reports whether the payment status may move from s to next.
// A no-op (s == next) is always allowed.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	if s == next {
		return true
	}
	_, ok := paymentTransitions[s][next]
	return ok
}

// CanTransition reports whether the assignment status may move from s to next.
// A no-op (s == next) is always allowed.
func (s AssignmentStatus) CanTransition(next AssignmentStatus) bool {
	if s == next {
		return true
	}
	_, ok := assignmentTransitions[s][next]
	return ok
}

// EventVendor links a vendor to an event with its own payment and assignment
// lifecycles, independent of both parents. Deleting either parent cascades to
// the link.
// swagger:model EventVendor
type EventVendor struct {
	ID             string           `json:"id"`
	EventID        string           `json:"event_id"`
	VendorID       string           `json:"vendor_id"`
	ContractAmount decimal.Decimal  `json:"contract_amount"`
	Currency       string           `json:"currency"`
	PaymentStatus  PaymentStatus    `json:"payment_status"`
	Status         AssignmentStatus `json:"status"`
	Notes          *string          `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// NewEventVendor returns a new assignment in pending/pending.
func NewEventVendor(eventID, vendorID string, amount decimal.Decimal, currency string, now time.Time) *EventVendor {
	return &EventVendor{
		EventID:        eventID,
		VendorID:       vendorID,
		ContractAmount: amount,
		Currency:       currency,
		PaymentStatus:  PaymentPending,
		Status:         AssignmentPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// EventVendorUpdate holds the patchable assignment fields. Nil means "leave unchanged".
type EventVendorUpdate struct {
	ContractAmount *decimal.Decimal
	Currency       *string
	PaymentStatus  *PaymentStatus
	Status         *AssignmentStatus
	Notes          *string
}

// EventVendorWithVendor bundles an assignment with its catalog vendor.
type EventVendorWithVendor struct {
	Assignment *EventVendor `json:"assignment"`
	Vendor     *Vendor      `json:"vendor"`
}

// EventVendorRepository defines storage operations for vendor assignments.
type EventVendorRepository interface {
	Create(ctx context.Context, ev *EventVendor) error
	GetByID(ctx context.Context, id string) (*EventVendor, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventVendor, error)
	Update(ctx context.Context, id string, upd EventVendorUpdate) (*EventVendor, error)
	Delete(ctx context.Context, id string) error
}

// RemovedAssignment reports the outcome of removing an assignment.
// HadPayments is true when money had already moved (dp_paid or paid); the
// removal still succeeds, the flag exists so callers can warn upstream.
type RemovedAssignment struct {
	ID          string `json:"id"`
	HadPayments bool   `json:"had_payments"`
}

// VendorService defines the vendor catalog and assignment lifecycle.
type VendorService interface {
	CreateVendor(ctx context.Context, organizerID string, vendor *Vendor) (*Vendor, error)
	GetVendor(ctx context.Context, organizerID, vendorID string) (*Vendor, error)
	ListMyVendors(ctx context.Context, organizerID string) ([]*Vendor, error)
	UpdateVendor(ctx context.Context, organizerID, vendorID string, upd VendorUpdate) (*Vendor, error)
	DeleteVendor(ctx context.Context, organizerID, vendorID string) error

	AssignVendor(ctx context.Context, organizerID, eventID, vendorID string, amount decimal.Decimal, currency string) (*EventVendor, error)
	ListAssignments(ctx context.Context, organizerID, eventID string) ([]*EventVendorWithVendor, error)
	// UpdateAssignment patches any subset of fields; a status regression fails
	// with ErrInvalidTransition and leaves the record unchanged.
	UpdateAssignment(ctx context.Context, organizerID, assignmentID string, upd EventVendorUpdate) (*EventVendor, error)
	// RemoveAssignment deletes the link regardless of payment status;
	// financial history never blocks removal.
	RemoveAssignment(ctx context.Context, organizerID, assignmentID string) (*RemovedAssignment, error)
}
