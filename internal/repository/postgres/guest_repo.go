package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"weddinghub/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{
		DB: db,
	}
}

// NewGuestSnapshotRepository exposes the analytics read-side view over the
// same table.
func NewGuestSnapshotRepository(db *sql.DB) domain.GuestSnapshotRepository {
	return &guestRepository{
		DB: db,
	}
}

const guestColumns = `id, event_id, name, phone, category, identity_token, checked_in, checked_in_at, rsvp_status, rsvp_message, rsvp_at, invitation_link, created_at, updated_at`

func scanGuest(row interface{ Scan(...any) error }) (*domain.Guest, error) {
	g := &domain.Guest{}
	var checkedInAt, rsvpAt sql.NullTime
	var rsvpMessage sql.NullString
	err := row.Scan(
		&g.ID, &g.EventID, &g.Name, &g.Phone, &g.Category, &g.IdentityToken,
		&g.CheckedIn, &checkedInAt, &g.RSVPStatus, &rsvpMessage, &rsvpAt,
		&g.InvitationLink, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if checkedInAt.Valid {
		g.CheckedInAt = &checkedInAt.Time
	}
	if rsvpMessage.Valid {
		g.RSVPMessage = &rsvpMessage.String
	}
	if rsvpAt.Valid {
		g.RSVPAt = &rsvpAt.Time
	}
	return g, nil
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (event_id, name, phone, category, identity_token, rsvp_status, invitation_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		g.EventID, g.Name, g.Phone, g.Category, g.IdentityToken, g.RSVPStatus,
		g.InvitationLink, g.CreatedAt, g.UpdatedAt,
	).Scan(&g.ID)
}

func (r *guestRepository) GetByID(ctx context.Context, eventID, guestID string) (*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE id = $1 AND event_id = $2
	`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, guestID, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) GetByToken(ctx context.Context, eventID, token string) (*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE event_id = $1 AND identity_token = $2
	`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, eventID, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM guests WHERE event_id = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE event_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, 0, err
		}
		guests = append(guests, g)
	}
	return guests, total, rows.Err()
}

func (r *guestRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Guest, error) {
	query := `
		SELECT g.id, g.event_id, g.name, g.phone, g.category, g.identity_token, g.checked_in, g.checked_in_at, g.rsvp_status, g.rsvp_message, g.rsvp_at, g.invitation_link, g.created_at, g.updated_at
		FROM guests g
		JOIN events e ON e.id = g.event_id
		WHERE e.organizer_id = $1
		ORDER BY g.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) ListAllByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

// CheckIn is the one atomic conditional write in the system. The WHERE clause
// only matches when checked_in is still false, so two concurrent scans of the
// same QR code resolve to exactly one success; the loser sees zero rows and
// gets ErrAlreadyCheckedIn after confirming the guest exists.
func (r *guestRepository) CheckIn(ctx context.Context, eventID, guestID string, at time.Time) (*domain.Guest, error) {
	query := `
		UPDATE guests
		SET checked_in = TRUE, checked_in_at = $3, updated_at = NOW()
		WHERE id = $1 AND event_id = $2 AND checked_in = FALSE
		RETURNING ` + guestColumns + `
	`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, guestID, eventID, at))
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	// Zero rows: either the guest is missing or already checked in.
	existing, getErr := r.GetByID(ctx, eventID, guestID)
	if getErr != nil {
		return nil, getErr
	}
	if existing.CheckedIn {
		return nil, domain.ErrAlreadyCheckedIn
	}
	// The row reappeared unchecked between the two statements; treat the
	// attempt as lost.
	return nil, domain.ErrNotFound
}

func (r *guestRepository) UpdateRSVP(ctx context.Context, eventID, guestID string, status domain.RSVPStatus, message *string, at *time.Time) (*domain.Guest, error) {
	query := `
		UPDATE guests
		SET rsvp_status = $3, rsvp_message = $4, rsvp_at = $5, updated_at = NOW()
		WHERE id = $1 AND event_id = $2
		RETURNING ` + guestColumns + `
	`
	var msg sql.NullString
	if message != nil {
		msg = sql.NullString{String: *message, Valid: true}
	}
	var rsvpAt sql.NullTime
	if at != nil {
		rsvpAt = sql.NullTime{Time: *at, Valid: true}
	}
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, guestID, eventID, status, msg, rsvpAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) UpdateToken(ctx context.Context, eventID, guestID, token, invitationLink string) (*domain.Guest, error) {
	query := `
		UPDATE guests
		SET identity_token = $3, invitation_link = $4, updated_at = NOW()
		WHERE id = $1 AND event_id = $2
		RETURNING ` + guestColumns + `
	`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, guestID, eventID, token, invitationLink))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) Delete(ctx context.Context, eventID, guestID string) error {
	query := `DELETE FROM guests WHERE id = $1 AND event_id = $2`
	result, err := r.DB.ExecContext(ctx, query, guestID, eventID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
