package services

import (
	"context"
	"fmt"
	"time"

	"weddinghub/internal/domain"
)

type mockEventRepository struct {
	events map[string]*domain.Event
	err    error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = fmt.Sprintf("ev-%d", len(m.events)+1)
	if m.events == nil {
		m.events = map[string]*domain.Event{}
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Event{}
	for _, ev := range m.events {
		if ev.OrganizerID == organizerID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		ev.Name = *upd.Name
	}
	if upd.Venue != nil {
		ev.Venue = *upd.Venue
	}
	return ev, nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

type mockGuestRepository struct {
	guests map[string]*domain.Guest
	err    error
}

func (m *mockGuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	if m.err != nil {
		return m.err
	}
	guest.ID = fmt.Sprintf("g-%d", len(m.guests)+1)
	if m.guests == nil {
		m.guests = map[string]*domain.Guest{}
	}
	m.guests[guest.ID] = guest
	return nil
}

func (m *mockGuestRepository) GetByID(ctx context.Context, eventID, guestID string) (*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[guestID]
	if !ok || g.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (m *mockGuestRepository) GetByToken(ctx context.Context, eventID, token string) (*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, g := range m.guests {
		if g.EventID == eventID && g.IdentityToken == token {
			return g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockGuestRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	out := []*domain.Guest{}
	for _, g := range m.guests {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, len(out), nil
}

func (m *mockGuestRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Guest{}
	for _, g := range m.guests {
		out = append(out, g)
	}
	return out, nil
}

func (m *mockGuestRepository) ListAllByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Guest{}
	for _, g := range m.guests {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGuestRepository) CheckIn(ctx context.Context, eventID, guestID string, at time.Time) (*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[guestID]
	if !ok || g.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	if g.CheckedIn {
		return nil, domain.ErrAlreadyCheckedIn
	}
	g.CheckedIn = true
	g.CheckedInAt = &at
	return g, nil
}

func (m *mockGuestRepository) UpdateRSVP(ctx context.Context, eventID, guestID string, status domain.RSVPStatus, message *string, at *time.Time) (*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[guestID]
	if !ok || g.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	g.RSVPStatus = status
	g.RSVPMessage = message
	g.RSVPAt = at
	return g, nil
}

func (m *mockGuestRepository) UpdateToken(ctx context.Context, eventID, guestID, token, invitationLink string) (*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[guestID]
	if !ok || g.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	g.IdentityToken = token
	g.InvitationLink = invitationLink
	return g, nil
}

func (m *mockGuestRepository) Delete(ctx context.Context, eventID, guestID string) error {
	if m.err != nil {
		return m.err
	}
	g, ok := m.guests[guestID]
	if !ok || g.EventID != eventID {
		return domain.ErrNotFound
	}
	delete(m.guests, guestID)
	return nil
}

type mockVendorRepository struct {
	vendors map[string]*domain.Vendor
	err     error
}

func (m *mockVendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	if m.err != nil {
		return m.err
	}
	v.ID = fmt.Sprintf("v-%d", len(m.vendors)+1)
	if m.vendors == nil {
		m.vendors = map[string]*domain.Vendor{}
	}
	m.vendors[v.ID] = v
	return nil
}

func (m *mockVendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.vendors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (m *mockVendorRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Vendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Vendor{}
	for _, v := range m.vendors {
		if v.OrganizerID == organizerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVendorRepository) Update(ctx context.Context, id string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.vendors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		v.Name = *upd.Name
	}
	if upd.Category != nil {
		v.Category = *upd.Category
	}
	if upd.PriceRange != nil {
		v.PriceRange = *upd.PriceRange
	}
	return v, nil
}

func (m *mockVendorRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.vendors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.vendors, id)
	return nil
}

type mockEventVendorRepository struct {
	assignments map[string]*domain.EventVendor
	err         error
}

func (m *mockEventVendorRepository) Create(ctx context.Context, ev *domain.EventVendor) error {
	if m.err != nil {
		return m.err
	}
	ev.ID = fmt.Sprintf("link-%d", len(m.assignments)+1)
	if m.assignments == nil {
		m.assignments = map[string]*domain.EventVendor{}
	}
	m.assignments[ev.ID] = ev
	return nil
}

func (m *mockEventVendorRepository) GetByID(ctx context.Context, id string) (*domain.EventVendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.assignments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventVendorRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventVendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.EventVendor{}
	for _, ev := range m.assignments {
		if ev.EventID == eventID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventVendorRepository) Update(ctx context.Context, id string, upd domain.EventVendorUpdate) (*domain.EventVendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.assignments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.ContractAmount != nil {
		ev.ContractAmount = *upd.ContractAmount
	}
	if upd.Currency != nil {
		ev.Currency = *upd.Currency
	}
	if upd.PaymentStatus != nil {
		ev.PaymentStatus = *upd.PaymentStatus
	}
	if upd.Status != nil {
		ev.Status = *upd.Status
	}
	if upd.Notes != nil {
		ev.Notes = upd.Notes
	}
	return ev, nil
}

func (m *mockEventVendorRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.assignments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.assignments, id)
	return nil
}

type mockIdentityCodec struct {
	tokens  []string
	next    int
	encoded []byte
	err     error
}

func (m *mockIdentityCodec) IssueToken() string {
	if m.next < len(m.tokens) {
		t := m.tokens[m.next]
		m.next++
		return t
	}
	m.next++
	return fmt.Sprintf("tok-%d", m.next)
}

func (m *mockIdentityCodec) Encode(token string, opts domain.QREncodeOptions) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.encoded != nil {
		return m.encoded, nil
	}
	return []byte("png:" + token), nil
}

func (m *mockIdentityCodec) DataURL(token string, opts domain.QREncodeOptions) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "data:image/png;base64," + token, nil
}
