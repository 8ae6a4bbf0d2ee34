package http

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"weddinghub/internal/delivery/http/controllers"
	"weddinghub/internal/delivery/http/helpers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything except /health, /metrics, /swagger/ and the public RSVP
// endpoint requires a bearer token.
func NewRouter(
	db *sql.DB,
	verifier domain.TokenVerifier,
	eventController *controllers.EventController,
	guestController *controllers.GuestController,
	vendorController *controllers.VendorController,
	analyticsController *controllers.AnalyticsController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("POST /events", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /events", auth(eventController.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}", auth(eventController.GetEvent))
	mux.HandleFunc("PATCH /events/{eventID}", auth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(eventController.DeleteEvent))

	// Guests
	mux.HandleFunc("POST /events/{eventID}/guests", auth(guestController.AddGuest))
	mux.HandleFunc("GET /events/{eventID}/guests", auth(guestController.ListGuests))
	mux.HandleFunc("GET /events/{eventID}/guests/{guestID}", auth(guestController.GetGuest))
	mux.HandleFunc("DELETE /events/{eventID}/guests/{guestID}", auth(guestController.DeleteGuest))
	mux.HandleFunc("GET /events/{eventID}/guests/{guestID}/qrcode", auth(guestController.QRCode))
	mux.HandleFunc("POST /events/{eventID}/guests/{guestID}/checkin", auth(guestController.CheckInGuest))
	mux.HandleFunc("POST /events/{eventID}/guests/{guestID}/token-reset", auth(guestController.ResetToken))
	mux.HandleFunc("POST /events/{eventID}/checkin", auth(guestController.CheckInScan))

	// Guest self-service RSVP; the identity token is the credential.
	mux.HandleFunc("PUT /public/events/{eventID}/rsvp/{token}", guestController.UpdateRSVP)

	// Vendor catalog
	mux.HandleFunc("POST /vendors", auth(vendorController.CreateVendor))
	mux.HandleFunc("GET /vendors", auth(vendorController.ListVendors))
	mux.HandleFunc("GET /vendors/{vendorID}", auth(vendorController.GetVendor))
	mux.HandleFunc("PATCH /vendors/{vendorID}", auth(vendorController.UpdateVendor))
	mux.HandleFunc("DELETE /vendors/{vendorID}", auth(vendorController.DeleteVendor))

	// Vendor assignments
	mux.HandleFunc("POST /events/{eventID}/vendors", auth(vendorController.AssignVendor))
	mux.HandleFunc("GET /events/{eventID}/vendors", auth(vendorController.ListAssignments))
	mux.HandleFunc("PATCH /event-vendors/{assignmentID}", auth(vendorController.UpdateAssignment))
	mux.HandleFunc("DELETE /event-vendors/{assignmentID}", auth(vendorController.RemoveAssignment))

	// Analytics
	mux.HandleFunc("GET /analytics/dashboard", auth(analyticsController.Dashboard))
	mux.HandleFunc("GET /analytics/events-per-month", auth(analyticsController.EventsPerMonth))
	mux.HandleFunc("GET /analytics/checkin-timeline", auth(analyticsController.CheckinTimeline))
	mux.HandleFunc("GET /events/{eventID}/analytics/rsvp-breakdown", auth(analyticsController.RSVPBreakdown))
	mux.HandleFunc("GET /events/{eventID}/analytics/attendance-rate", auth(analyticsController.AttendanceRate))

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unreachable")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Metrics and docs
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
