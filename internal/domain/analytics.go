package domain

import "context"

// TimelinePeriod selects the window of a check-in timeline query.
type TimelinePeriod string

// Timeline periods. Part of the wire contract; do not rename.
const (
	Period7Days   TimelinePeriod = "7days"
	Period30Days  TimelinePeriod = "30days"
	Period3Months TimelinePeriod = "3months"
)

// Days returns the number of daily buckets the period spans.
func (p TimelinePeriod) Days() int {
	switch p {
	case Period7Days:
		return 7
	case Period30Days:
		return 30
	case Period3Months:
		return 90
	}
	return 0
}

// Valid reports whether p is a known timeline period.
func (p TimelinePeriod) Valid() bool {
	return p.Days() > 0
}

// TimeBucket is one unit of a time-partitioned aggregation (a day or a
// month), ordered oldest first and zero-filled for chart-axis continuity.
// swagger:model TimeBucket
type TimeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryBreakdown holds per-category RSVP counts. Categories with zero
// guests are omitted, not zero-filled.
// swagger:model CategoryBreakdown
type CategoryBreakdown struct {
	Category     GuestCategory `json:"category"`
	Attending    int           `json:"attending"`
	NotAttending int           `json:"not_attending"`
	Pending      int           `json:"pending"`
}

// DashboardTotals are the headline numbers on the organizer dashboard.
// swagger:model DashboardTotals
type DashboardTotals struct {
	TotalEvents     int `json:"total_events"`
	UpcomingEvents  int `json:"upcoming_events"`
	TotalGuests     int `json:"total_guests"`
	CheckedInGuests int `json:"checked_in_guests"`
}

// AnalyticsService produces read-side aggregations over guest and event
// snapshots. All outputs are deterministic pure functions of the loaded
// collections; no method mutates anything.
type AnalyticsService interface {
	// AttendanceRate returns attending/total*100 rounded to one decimal
	// place, and 0 for an event with no guests.
	AttendanceRate(ctx context.Context, organizerID, eventID string) (float64, error)
	// RSVPBreakdown groups the event's guests by category.
	RSVPBreakdown(ctx context.Context, organizerID, eventID string) ([]CategoryBreakdown, error)
	// MonthlyEventCounts returns exactly `months` calendar-month buckets,
	// oldest first, ending with the current month.
	MonthlyEventCounts(ctx context.Context, organizerID string, months int) ([]TimeBucket, error)
	// CheckinTimeline returns one bucket per organizer-local calendar day in
	// the period, ending today.
	CheckinTimeline(ctx context.Context, organizerID string, period TimelinePeriod) ([]TimeBucket, error)
	DashboardTotals(ctx context.Context, organizerID string) (*DashboardTotals, error)
}

// GuestSnapshotRepository is the read-side view of guests the aggregator
// consumes: unpaginated collections scoped to an organizer or one event.
type GuestSnapshotRepository interface {
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Guest, error)
	ListAllByEventID(ctx context.Context, eventID string) ([]*Guest, error)
}
