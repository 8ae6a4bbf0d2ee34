package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"weddinghub/internal/domain"
)

type vendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) domain.VendorRepository {
	return &vendorRepository{
		DB: db,
	}
}

const vendorColumns = `id, organizer_id, name, category, price_range, contact_name, contact_phone, created_at, updated_at`

func scanVendor(row interface{ Scan(...any) error }) (*domain.Vendor, error) {
	v := &domain.Vendor{}
	err := row.Scan(
		&v.ID, &v.OrganizerID, &v.Name, &v.Category, &v.PriceRange,
		&v.ContactName, &v.ContactPhone, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	query := `
		INSERT INTO vendors (organizer_id, name, category, price_range, contact_name, contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.OrganizerID, v.Name, v.Category, v.PriceRange, v.ContactName, v.ContactPhone, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE id = $1
	`
	v, err := scanVendor(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vendorRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE organizer_id = $1
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *vendorRepository) Update(ctx context.Context, id string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", n))
		args = append(args, *upd.Category)
		n++
	}
	if upd.PriceRange != nil {
		setClauses = append(setClauses, fmt.Sprintf("price_range = $%d", n))
		args = append(args, *upd.PriceRange)
		n++
	}
	if upd.ContactName != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact_name = $%d", n))
		args = append(args, *upd.ContactName)
		n++
	}
	if upd.ContactPhone != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact_phone = $%d", n))
		args = append(args, *upd.ContactPhone)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE vendors SET %s
		WHERE id = $%d
		RETURNING `+vendorColumns+`
	`, strings.Join(setClauses, ", "), n)
	v, err := scanVendor(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM vendors WHERE id = $1`
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
