package postgres

import "database/sql"

// RunMigrations creates the schema if it does not exist. Statements are
// idempotent and run in order on startup.
//
// Column names and enum values mirror the wire contract consumed by the
// dashboard frontend; renaming any of them requires a migration.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organizer_id VARCHAR(36) NOT NULL,
			name VARCHAR(255) NOT NULL,
			couple_names VARCHAR(255) NOT NULL,
			event_date TIMESTAMPTZ NOT NULL,
			venue VARCHAR(255) NOT NULL,
			template VARCHAR(64) NOT NULL DEFAULT 'classic',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_organizer ON events (organizer_id)`,
		`CREATE TABLE IF NOT EXISTS guests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(32) NOT NULL DEFAULT '',
			category VARCHAR(16) NOT NULL
				CHECK (category IN ('VIP', 'Regular', 'Family')),
			identity_token VARCHAR(64) NOT NULL,
			checked_in BOOLEAN NOT NULL DEFAULT FALSE,
			checked_in_at TIMESTAMPTZ,
			rsvp_status VARCHAR(16) NOT NULL DEFAULT 'pending'
				CHECK (rsvp_status IN ('pending', 'attending', 'not_attending')),
			rsvp_message TEXT,
			rsvp_at TIMESTAMPTZ,
			invitation_link TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (event_id, identity_token),
			CHECK (checked_in = (checked_in_at IS NOT NULL)),
			CHECK ((rsvp_status = 'pending') = (rsvp_at IS NULL))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_guests_event ON guests (event_id)`,
		`CREATE TABLE IF NOT EXISTS vendors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organizer_id VARCHAR(36) NOT NULL,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(32) NOT NULL
				CHECK (category IN ('catering', 'decoration', 'photography',
					'videography', 'mc', 'music', 'makeup', 'venue', 'transport',
					'souvenir', 'invitation_printing', 'wedding_cake', 'other')),
			price_range VARCHAR(16) NOT NULL
				CHECK (price_range IN ('budget', 'standard', 'premium', 'luxury')),
			contact_name VARCHAR(255) NOT NULL DEFAULT '',
			contact_phone VARCHAR(32) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vendors_organizer ON vendors (organizer_id)`,
		`CREATE TABLE IF NOT EXISTS event_vendors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			vendor_id UUID NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
			contract_amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
			currency VARCHAR(8) NOT NULL DEFAULT 'IDR',
			payment_status VARCHAR(16) NOT NULL DEFAULT 'pending'
				CHECK (payment_status IN ('pending', 'dp_paid', 'paid', 'cancelled')),
			status VARCHAR(16) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'confirmed', 'cancelled')),
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_event_vendors_event ON event_vendors (event_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
