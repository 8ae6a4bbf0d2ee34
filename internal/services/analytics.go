package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"weddinghub/internal/domain"
)

// DefaultMonths is the monthly-event-counts window when the caller does not
// ask for a specific one.
const DefaultMonths = 6

type analyticsService struct {
	logger    *slog.Logger
	eventRepo domain.EventRepository
	guests    domain.GuestSnapshotRepository

	// now is replaceable in tests; bucketing depends on the current day.
	now func() time.Time
}

// NewAnalyticsService creates an AnalyticsService. All queries are pure
// read-side aggregations; nothing here mutates state.
func NewAnalyticsService(
	logger *slog.Logger,
	eventRepo domain.EventRepository,
	guests domain.GuestSnapshotRepository,
) domain.AnalyticsService {
	return &analyticsService{
		logger:    logger,
		eventRepo: eventRepo,
		guests:    guests,
		now:       time.Now,
	}
}

// eventGuests loads the full guest snapshot of an owned event. A store read
// failure degrades to an empty snapshot with a logged warning so one broken
// widget does not blank the whole dashboard.
func (s *analyticsService) eventGuests(ctx context.Context, organizerID, eventID string) ([]*domain.Guest, error) {
	if _, err := ownedEvent(ctx, s.eventRepo, eventID, organizerID); err != nil {
		return nil, err
	}
	guests, err := s.guests.ListAllByEventID(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "guest snapshot read failed, degrading to empty", "event_id", eventID, "err", err)
		return []*domain.Guest{}, nil
	}
	return guests, nil
}

func (s *analyticsService) AttendanceRate(ctx context.Context, organizerID, eventID string) (float64, error) {
	guests, err := s.eventGuests(ctx, organizerID, eventID)
	if err != nil {
		return 0, err
	}
	if len(guests) == 0 {
		return 0, nil
	}
	attending := 0
	for _, g := range guests {
		if g.RSVPStatus == domain.RSVPAttending {
			attending++
		}
	}
	rate := float64(attending) / float64(len(guests)) * 100
	return math.Round(rate*10) / 10, nil
}

func (s *analyticsService) RSVPBreakdown(ctx context.Context, organizerID, eventID string) ([]domain.CategoryBreakdown, error) {
	guests, err := s.eventGuests(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.GuestCategory]*domain.CategoryBreakdown)
	for _, g := range guests {
		b, ok := byCategory[g.Category]
		if !ok {
			b = &domain.CategoryBreakdown{Category: g.Category}
			byCategory[g.Category] = b
		}
		switch g.RSVPStatus {
		case domain.RSVPAttending:
			b.Attending++
		case domain.RSVPNotAttending:
			b.NotAttending++
		default:
			b.Pending++
		}
	}

	// Categories with no guests are omitted, not zero-filled; a category list
	// has no axis that needs continuity.
	result := make([]domain.CategoryBreakdown, 0, len(byCategory))
	for _, c := range domain.GuestCategories {
		if b, ok := byCategory[c]; ok {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (s *analyticsService) MonthlyEventCounts(ctx context.Context, organizerID string, months int) ([]domain.TimeBucket, error) {
	if months <= 0 {
		months = DefaultMonths
	}
	events, err := s.eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		s.logger.WarnContext(ctx, "event snapshot read failed, degrading to empty", "organizer_id", organizerID, "err", err)
		events = nil
	}

	// Always exactly `months` buckets, oldest first, zero-filled: the chart
	// x-axis must stay continuous even across empty months.
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	buckets := make([]domain.TimeBucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		key := m.Format("2006-01")
		buckets[i] = domain.TimeBucket{Label: m.Format("Jan 2006")}
		index[key] = i
	}
	for _, e := range events {
		key := e.EventDate.In(now.Location()).Format("2006-01")
		if i, ok := index[key]; ok {
			buckets[i].Count++
		}
	}
	return buckets, nil
}

func (s *analyticsService) CheckinTimeline(ctx context.Context, organizerID string, period domain.TimelinePeriod) ([]domain.TimeBucket, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", domain.ErrValidation, period)
	}
	guests, err := s.guests.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		s.logger.WarnContext(ctx, "guest snapshot read failed, degrading to empty", "organizer_id", organizerID, "err", err)
		guests = nil
	}

	days := period.Days()
	now := s.now()
	// Bucket keys are calendar dates in the organizer's local zone, not raw
	// timestamps, so a scan near midnight lands in exactly one day.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))
	buckets := make([]domain.TimeBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		buckets[i] = domain.TimeBucket{Label: key}
		index[key] = i
	}
	for _, g := range guests {
		if g.CheckedInAt == nil {
			continue
		}
		key := g.CheckedInAt.In(now.Location()).Format("2006-01-02")
		if i, ok := index[key]; ok {
			buckets[i].Count++
		}
	}
	return buckets, nil
}

func (s *analyticsService) DashboardTotals(ctx context.Context, organizerID string) (*domain.DashboardTotals, error) {
	totals := &domain.DashboardTotals{}

	events, err := s.eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		s.logger.WarnContext(ctx, "event snapshot read failed, degrading to empty", "organizer_id", organizerID, "err", err)
		events = nil
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	totals.TotalEvents = len(events)
	for _, e := range events {
		if !e.EventDate.Before(today) {
			totals.UpcomingEvents++
		}
	}

	guests, err := s.guests.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		s.logger.WarnContext(ctx, "guest snapshot read failed, degrading to empty", "organizer_id", organizerID, "err", err)
		guests = nil
	}
	totals.TotalGuests = len(guests)
	for _, g := range guests {
		if g.CheckedIn {
			totals.CheckedInGuests++
		}
	}
	return totals, nil
}
