package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"weddinghub/internal/delivery/http/helpers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/domain"
)

type AnalyticsController struct {
	Logger  *slog.Logger
	Service domain.AnalyticsService
}

func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		Logger:  logger,
		Service: svc,
	}
}

// AttendanceRateResponse is the body of GET /events/{eventID}/attendance-rate.
type AttendanceRateResponse struct {
	EventID        string  `json:"event_id"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// AttendanceRate godoc
// @Summary Attendance rate for one event
// @Description attending guests / total guests * 100, rounded to one decimal. 0 for an event with no guests.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=controllers.AttendanceRateResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/analytics/attendance-rate [get]
func (c *AnalyticsController) AttendanceRate(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	rate, err := c.Service.AttendanceRate(r.Context(), organizerID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AttendanceRateResponse{
		EventID:        eventID,
		AttendanceRate: rate,
	})
}

// RSVPBreakdown godoc
// @Summary RSVP counts per guest category
// @Description One entry per category that has guests, in VIP, Regular, Family order. Empty categories are omitted.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.CategoryBreakdown}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/analytics/rsvp-breakdown [get]
func (c *AnalyticsController) RSVPBreakdown(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	breakdown, err := c.Service.RSVPBreakdown(r.Context(), organizerID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, breakdown)
}

// EventsPerMonth godoc
// @Summary Event counts per calendar month
// @Description Zero-filled buckets, oldest first, ending with the current month. Defaults to 6 months; cap 24.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param months query int false "Number of months (1-24, default 6)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.TimeBucket}
// @Router /analytics/events-per-month [get]
func (c *AnalyticsController) EventsPerMonth(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 24 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "months must be an integer between 1 and 24")
			return
		}
		months = n
	}
	buckets, err := c.Service.MonthlyEventCounts(r.Context(), organizerID, months)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, buckets)
}

// CheckinTimeline godoc
// @Summary Check-in counts per day
// @Description One zero-filled bucket per calendar day in the selected period, ending today.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "7days, 30days or 3months (default 7days)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.TimeBucket}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /analytics/checkin-timeline [get]
func (c *AnalyticsController) CheckinTimeline(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	period := domain.TimelinePeriod(r.URL.Query().Get("period"))
	if period == "" {
		period = domain.Period7Days
	}
	if !period.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "period must be one of 7days, 30days, 3months")
		return
	}
	buckets, err := c.Service.CheckinTimeline(r.Context(), organizerID, period)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, buckets)
}

// Dashboard godoc
// @Summary Organizer dashboard totals
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.DashboardTotals}
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	totals, err := c.Service.DashboardTotals(r.Context(), organizerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, totals)
}
