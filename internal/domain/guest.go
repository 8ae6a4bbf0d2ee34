package domain

import (
	"context"
	"time"
)

// GuestCategory classifies a guest for seating and reporting.
type GuestCategory string

// Guest categories. Part of the wire contract; do not rename.
const (
	CategoryVIP     GuestCategory = "VIP"
	CategoryRegular GuestCategory = "Regular"
	CategoryFamily  GuestCategory = "Family"
)

// GuestCategories lists all categories in display order.
var GuestCategories = []GuestCategory{CategoryVIP, CategoryRegular, CategoryFamily}

// Valid reports whether c is a known guest category.
func (c GuestCategory) Valid() bool {
	switch c {
	case CategoryVIP, CategoryRegular, CategoryFamily:
		return true
	}
	return false
}

// RSVPStatus is the guest's self-reported attendance intention.
type RSVPStatus string

// RSVP statuses. Part of the wire contract; do not rename.
const (
	RSVPPending      RSVPStatus = "pending"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
)

// Valid reports whether s is a known RSVP status.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPAttending, RSVPNotAttending:
		return true
	}
	return false
}

// Guest represents an invited guest of a single event.
//
// Invariants maintained by the guest repository and service:
// CheckedInAt is set iff CheckedIn is true, and RSVPAt is set iff
// RSVPStatus is not "pending".
// swagger:model Guest
type Guest struct {
	ID             string        `json:"id"`
	EventID        string        `json:"event_id"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Category       GuestCategory `json:"category"`
	IdentityToken  string        `json:"identity_token"`
	CheckedIn      bool          `json:"checked_in"`
	CheckedInAt    *time.Time    `json:"checked_in_at,omitempty"`
	RSVPStatus     RSVPStatus    `json:"rsvp_status"`
	RSVPMessage    *string       `json:"rsvp_message,omitempty"`
	RSVPAt         *time.Time    `json:"rsvp_at,omitempty"`
	InvitationLink string        `json:"invitation_link"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewGuest returns a new pending, not-checked-in Guest. ID is set by the
// repository on create; the identity token is assigned once and never
// reassigned except through an explicit token reset.
func NewGuest(eventID, name, phone string, category GuestCategory, identityToken, invitationLink string, now time.Time) *Guest {
	return &Guest{
		EventID:        eventID,
		Name:           name,
		Phone:          phone,
		Category:       category,
		IdentityToken:  identityToken,
		RSVPStatus:     RSVPPending,
		InvitationLink: invitationLink,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// GuestRepository defines storage operations for guests.
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, eventID, guestID string) (*Guest, error)
	// GetByToken looks the identity token up verbatim, scoped by event id so
	// tokens cannot collide across events.
	GetByToken(ctx context.Context, eventID, token string) (*Guest, error)
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Guest, int, error)
	// CheckIn atomically flips checked_in from false to true and stamps
	// checked_in_at. It returns ErrAlreadyCheckedIn when the guest exists but
	// the flag was already set, and ErrNotFound when the guest does not exist
	// in the event. The flip must be a single conditional write, never a
	// read-then-write pair.
	CheckIn(ctx context.Context, eventID, guestID string, at time.Time) (*Guest, error)
	// UpdateRSVP overwrites the RSVP fields; last write wins.
	UpdateRSVP(ctx context.Context, eventID, guestID string, status RSVPStatus, message *string, at *time.Time) (*Guest, error)
	// UpdateToken rewrites the identity token and invitation link on explicit reset.
	UpdateToken(ctx context.Context, eventID, guestID, token, invitationLink string) (*Guest, error)
	Delete(ctx context.Context, eventID, guestID string) error
}

// QREncodeOptions parameterize the rendered QR raster image.
type QREncodeOptions struct {
	// Width is the image edge length in pixels.
	Width int
	// Level is the error-correction level: "L", "M", "Q" or "H".
	// Print-quality output should use "H".
	Level string
	// DarkColor and LightColor are hex colors like "#000000". Empty means
	// black on white.
	DarkColor  string
	LightColor string
}

// IdentityCodec issues guest identity tokens and renders them as QR images.
type IdentityCodec interface {
	// IssueToken returns a new opaque, unguessable token.
	IssueToken() string
	// Encode renders the token as a PNG. Errors wrap ErrEncoding; the encoder
	// never silently degrades the requested correction level.
	Encode(token string, opts QREncodeOptions) ([]byte, error)
	// DataURL renders the token as a base64 data URL for direct embedding.
	DataURL(token string, opts QREncodeOptions) (string, error)
}

// GuestService defines the guest lifecycle: creation with token issue, RSVP
// updates, one-shot check-in, and QR rendering.
type GuestService interface {
	AddGuest(ctx context.Context, organizerID, eventID, name, phone string, category GuestCategory) (*Guest, error)
	GetGuest(ctx context.Context, organizerID, eventID, guestID string) (*Guest, error)
	ListGuests(ctx context.Context, organizerID, eventID string, params PaginationParams) ([]*Guest, int, error)
	DeleteGuest(ctx context.Context, organizerID, eventID, guestID string) error
	// UpdateRSVP is guest self-service, addressed by identity token. It may be
	// called repeatedly; the latest value wins.
	UpdateRSVP(ctx context.Context, eventID, token string, status RSVPStatus, message *string) (*Guest, error)
	// CheckIn marks the guest present at most once. A duplicate attempt fails
	// with ErrAlreadyCheckedIn. There is no check-out.
	CheckIn(ctx context.Context, organizerID, eventID, guestID string) (*Guest, error)
	// CheckInByToken resolves the scanned token within the event, then checks in.
	CheckInByToken(ctx context.Context, organizerID, eventID, token string) (*Guest, error)
	// ResetToken reissues the identity token, invalidating previously shared
	// QR codes. Never happens implicitly.
	ResetToken(ctx context.Context, organizerID, eventID, guestID string) (*Guest, error)
	// QRCode renders the guest's identity token as a PNG.
	QRCode(ctx context.Context, organizerID, eventID, guestID string, opts QREncodeOptions) ([]byte, error)
	// QRCodeDataURL renders the same image as a base64 data URL for direct
	// embedding in the dashboard.
	QRCodeDataURL(ctx context.Context, organizerID, eventID, guestID string, opts QREncodeOptions) (string, error)
}
