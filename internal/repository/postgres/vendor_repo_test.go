package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"weddinghub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var vendorCols = []string{
	"id", "organizer_id", "name", "category", "price_range",
	"contact_name", "contact_phone", "created_at", "updated_at",
}

func TestVendorRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO vendors \(organizer_id, name, category, price_range, contact_name, contact_phone, created_at, updated_at\)`).
		WithArgs("org-1", "Dapur Seroja", domain.VendorCatering, domain.PricePremium, "Ibu Rina", "+62812000", created, created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("v-uuid-1"))

	repo := NewVendorRepository(db)
	vendor := domain.NewVendor("org-1", "Dapur Seroja", domain.VendorCatering, domain.PricePremium, "Ibu Rina", "+62812000", created)
	require.NoError(t, repo.Create(ctx, vendor))
	require.Equal(t, "v-uuid-1", vendor.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVendorRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, organizer_id, name, category, price_range`).
			WithArgs("v-1").
			WillReturnRows(sqlmock.NewRows(vendorCols).
				AddRow("v-1", "org-1", "Dapur Seroja", "catering", "premium", "Ibu Rina", "+62812000", created, created))

		repo := NewVendorRepository(db)
		got, err := repo.GetByID(ctx, "v-1")
		require.NoError(t, err)
		require.Equal(t, domain.VendorCatering, got.Category)
		require.Equal(t, domain.PricePremium, got.PriceRange)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, organizer_id, name`).
			WithArgs("v-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewVendorRepository(db)
		got, err := repo.GetByID(ctx, "v-missing")
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVendorRepository_ListByOrganizerID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(vendorCols).
		AddRow("v-1", "org-1", "Arjuna Decor", "decoration", "standard", "Pak Dedi", "+62813000", created, created).
		AddRow("v-2", "org-1", "Dapur Seroja", "catering", "premium", "Ibu Rina", "+62812000", created, created)
	mock.ExpectQuery(`FROM vendors\s+WHERE organizer_id = \$1\s+ORDER BY name ASC`).
		WithArgs("org-1").
		WillReturnRows(rows)

	repo := NewVendorRepository(db)
	got, err := repo.ListByOrganizerID(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Arjuna Decor", got[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVendorRepository_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pr := domain.PriceLuxury
	mock.ExpectQuery(`UPDATE vendors SET updated_at = NOW\(\), price_range = \$1`).
		WithArgs(domain.PriceLuxury, "v-1").
		WillReturnRows(sqlmock.NewRows(vendorCols).
			AddRow("v-1", "org-1", "Dapur Seroja", "catering", "luxury", "Ibu Rina", "+62812000", created, created))

	repo := NewVendorRepository(db)
	got, err := repo.Update(ctx, "v-1", domain.VendorUpdate{PriceRange: &pr})
	require.NoError(t, err)
	require.Equal(t, domain.PriceLuxury, got.PriceRange)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVendorRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM vendors WHERE id = \$1`).
			WithArgs("v-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewVendorRepository(db)
		require.NoError(t, repo.Delete(ctx, "v-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM vendors`).
			WithArgs("v-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewVendorRepository(db)
		err = repo.Delete(ctx, "v-missing")
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
