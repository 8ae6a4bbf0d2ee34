package domain

import (
	"context"
	"time"
)

// VendorCategory is the fixed service-category enumeration for vendors.
type VendorCategory string

// Vendor categories. Part of the wire contract; do not rename.
const (
	VendorCatering           VendorCategory = "catering"
	VendorDecoration         VendorCategory = "decoration"
	VendorPhotography        VendorCategory = "photography"
	VendorVideography        VendorCategory = "videography"
	VendorMC                 VendorCategory = "mc"
	VendorMusic              VendorCategory = "music"
	VendorMakeup             VendorCategory = "makeup"
	VendorVenue              VendorCategory = "venue"
	VendorTransport          VendorCategory = "transport"
	VendorSouvenir           VendorCategory = "souvenir"
	VendorInvitationPrinting VendorCategory = "invitation_printing"
	VendorWeddingCake        VendorCategory = "wedding_cake"
	VendorOther              VendorCategory = "other"
)

var vendorCategories = map[VendorCategory]struct{}{
	VendorCatering: {}, VendorDecoration: {}, VendorPhotography: {},
	VendorVideography: {}, VendorMC: {}, VendorMusic: {}, VendorMakeup: {},
	VendorVenue: {}, VendorTransport: {}, VendorSouvenir: {},
	VendorInvitationPrinting: {}, VendorWeddingCake: {}, VendorOther: {},
}

// Valid reports whether c is a known vendor category.
func (c VendorCategory) Valid() bool {
	_, ok := vendorCategories[c]
	return ok
}

// PriceRange is the vendor's indicative pricing tier.
type PriceRange string

// Price ranges. Part of the wire contract; do not rename.
const (
	PriceBudget   PriceRange = "budget"
	PriceStandard PriceRange = "standard"
	PricePremium  PriceRange = "premium"
	PriceLuxury   PriceRange = "luxury"
)

// Valid reports whether p is a known price range.
func (p PriceRange) Valid() bool {
	switch p {
	case PriceBudget, PriceStandard, PricePremium, PriceLuxury:
		return true
	}
	return false
}

// Vendor is an organizer-scoped catalog entry, reusable across the
// organizer's events. It is referenced, not owned, by assignments.
// swagger:model Vendor
type Vendor struct {
	ID           string         `json:"id"`
	OrganizerID  string         `json:"organizer_id"`
	Name         string         `json:"name"`
	Category     VendorCategory `json:"category"`
	PriceRange   PriceRange     `json:"price_range"`
	ContactName  string         `json:"contact_name"`
	ContactPhone string         `json:"contact_phone"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewVendor returns a new Vendor. ID is set by the repository on create.
func NewVendor(organizerID, name string, category VendorCategory, priceRange PriceRange, contactName, contactPhone string, now time.Time) *Vendor {
	return &Vendor{
		OrganizerID:  organizerID,
		Name:         name,
		Category:     category,
		PriceRange:   priceRange,
		ContactName:  contactName,
		ContactPhone: contactPhone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// VendorUpdate holds the patchable vendor fields. Nil means "leave unchanged".
type VendorUpdate struct {
	Name         *string
	Category     *VendorCategory
	PriceRange   *PriceRange
	ContactName  *string
	ContactPhone *string
}

// VendorRepository defines storage operations for the vendor catalog.
type VendorRepository interface {
	Create(ctx context.Context, vendor *Vendor) error
	GetByID(ctx context.Context, id string) (*Vendor, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Vendor, error)
	Update(ctx context.Context, id string, upd VendorUpdate) (*Vendor, error)
	Delete(ctx context.Context, id string) error
}
