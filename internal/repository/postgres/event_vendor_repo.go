package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"weddinghub/internal/domain"
)

type eventVendorRepository struct {
	DB *sql.DB
}

func NewEventVendorRepository(db *sql.DB) domain.EventVendorRepository {
	return &eventVendorRepository{
		DB: db,
	}
}

const eventVendorColumns = `id, event_id, vendor_id, contract_amount, currency, payment_status, status, notes, created_at, updated_at`

func scanEventVendor(row interface{ Scan(...any) error }) (*domain.EventVendor, error) {
	ev := &domain.EventVendor{}
	var notes sql.NullString
	err := row.Scan(
		&ev.ID, &ev.EventID, &ev.VendorID, &ev.ContractAmount, &ev.Currency,
		&ev.PaymentStatus, &ev.Status, &notes, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		ev.Notes = &notes.String
	}
	return ev, nil
}

func (r *eventVendorRepository) Create(ctx context.Context, ev *domain.EventVendor) error {
	query := `
		INSERT INTO event_vendors (event_id, vendor_id, contract_amount, currency, payment_status, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		ev.EventID, ev.VendorID, ev.ContractAmount, ev.Currency,
		ev.PaymentStatus, ev.Status, ev.CreatedAt, ev.UpdatedAt,
	).Scan(&ev.ID)
}

func (r *eventVendorRepository) GetByID(ctx context.Context, id string) (*domain.EventVendor, error) {
	query := `
		SELECT ` + eventVendorColumns + `
		FROM event_vendors
		WHERE id = $1
	`
	ev, err := scanEventVendor(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (r *eventVendorRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventVendor, error) {
	query := `
		SELECT ` + eventVendorColumns + `
		FROM event_vendors
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	assignments := make([]*domain.EventVendor, 0)
	for rows.Next() {
		ev, err := scanEventVendor(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, ev)
	}
	return assignments, rows.Err()
}

func (r *eventVendorRepository) Update(ctx context.Context, id string, upd domain.EventVendorUpdate) (*domain.EventVendor, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	if upd.ContractAmount != nil {
		setClauses = append(setClauses, fmt.Sprintf("contract_amount = $%d", n))
		args = append(args, *upd.ContractAmount)
		n++
	}
	if upd.Currency != nil {
		setClauses = append(setClauses, fmt.Sprintf("currency = $%d", n))
		args = append(args, *upd.Currency)
		n++
	}
	if upd.PaymentStatus != nil {
		setClauses = append(setClauses, fmt.Sprintf("payment_status = $%d", n))
		args = append(args, *upd.PaymentStatus)
		n++
	}
	if upd.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", n))
		args = append(args, *upd.Status)
		n++
	}
	if upd.Notes != nil {
		setClauses = append(setClauses, fmt.Sprintf("notes = $%d", n))
		args = append(args, *upd.Notes)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE event_vendors SET %s
		WHERE id = $%d
		RETURNING `+eventVendorColumns+`
	`, strings.Join(setClauses, ", "), n)
	ev, err := scanEventVendor(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (r *eventVendorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM event_vendors WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
