package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"weddinghub/internal/delivery/http/helpers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/domain"
	"weddinghub/internal/monitoring"
)

type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// AddGuestRequest is the request body for POST /events/{eventID}/guests.
type AddGuestRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

// Validate implements helpers.Validator.
func (r *AddGuestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !domain.GuestCategory(r.Category).Valid() {
		errs = append(errs, "category must be one of VIP, Regular, Family")
	}
	return errs
}

// AddGuest godoc
// @Summary Add a guest to an event
// @Description Creates the guest with a freshly issued identity token and invitation link.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.AddGuestRequest true "Guest fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/guests [post]
func (c *GuestController) AddGuest(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req AddGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.Service.AddGuest(r.Context(), organizerID, eventID, req.Name, req.Phone, domain.GuestCategory(req.Category))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, guest)
}

// GuestListResponse is the data payload for GET /events/{eventID}/guests.
type GuestListResponse struct {
	Guests     []*domain.Guest        `json:"guests"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListGuests godoc
// @Summary List an event's guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse
// @Router /events/{eventID}/guests [get]
func (c *GuestController) ListGuests(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	guests, total, err := c.Service.ListGuests(r.Context(), organizerID, eventID, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GuestListResponse{
		Guests:     guests,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetGuest godoc
// @Summary Get one guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/guests/{guestID} [get]
func (c *GuestController) GetGuest(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	guestID, ok := pathUUID(w, r, "guestID")
	if !ok {
		return
	}
	guest, err := c.Service.GetGuest(r.Context(), organizerID, eventID, guestID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// DeleteGuest godoc
// @Summary Remove a guest from an event
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/guests/{guestID} [delete]
func (c *GuestController) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	guestID, ok := pathUUID(w, r, "guestID")
	if !ok {
		return
	}
	if err := c.Service.DeleteGuest(r.Context(), organizerID, eventID, guestID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": guestID})
}

// QRCode godoc
// @Summary Render a guest's QR code
// @Description Returns a PNG by default, or a base64 data URL when format=data_url. Use level=H for print.
// @Tags guests
// @Produce png
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Param width query int false "Image width in pixels (default 256)"
// @Param level query string false "Error-correction level: L, M, Q, H (default M)"
// @Param dark query string false "Foreground hex color"
// @Param light query string false "Background hex color"
// @Param format query string false "png (default) or data_url"
// @Success 200 {file} byte
// @Failure 422 {object} helpers.APIResponse "error.code: encoding_error"
// @Router /events/{eventID}/guests/{guestID}/qrcode [get]
func (c *GuestController) QRCode(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	guestID, ok := pathUUID(w, r, "guestID")
	if !ok {
		return
	}

	opts := domain.QREncodeOptions{
		Level:      r.URL.Query().Get("level"),
		DarkColor:  r.URL.Query().Get("dark"),
		LightColor: r.URL.Query().Get("light"),
	}
	if s := r.URL.Query().Get("width"); s != "" {
		width, err := strconv.Atoi(s)
		if err != nil || width <= 0 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid width")
			return
		}
		opts.Width = width
	}

	if r.URL.Query().Get("format") == "data_url" {
		dataURL, err := c.Service.QRCodeDataURL(r.Context(), organizerID, eventID, guestID, opts)
		if err != nil {
			writeServiceError(c.Logger, w, r, err)
			return
		}
		monitoring.TrackQRRender()
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"data_url": dataURL})
		return
	}

	png, err := c.Service.QRCode(r.Context(), organizerID, eventID, guestID, opts)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	monitoring.TrackQRRender()
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// CheckInGuest godoc
// @Summary Check a guest in by id
// @Description One-shot: a second attempt fails with already_checked_in.
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_checked_in"
// @Router /events/{eventID}/guests/{guestID}/checkin [post]
func (c *GuestController) CheckInGuest(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	guestID, ok := pathUUID(w, r, "guestID")
	if !ok {
		return
	}
	guest, err := c.Service.CheckIn(r.Context(), organizerID, eventID, guestID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// CheckInScanRequest is the request body for POST /events/{eventID}/checkin.
type CheckInScanRequest struct {
	Token string `json:"token"`
}

// Validate implements helpers.Validator.
func (r *CheckInScanRequest) Validate() []string {
	if strings.TrimSpace(r.Token) == "" {
		return []string{"token is required"}
	}
	return nil
}

// CheckInScanResponse is the payload the scanning UI consumes. ErrorKind is
// set only when Success is false: "already_checked_in" or "not_found".
type CheckInScanResponse struct {
	Success   bool          `json:"success"`
	Guest     *domain.Guest `json:"guest,omitempty"`
	ErrorKind string        `json:"error_kind,omitempty"`
}

// CheckInScan godoc
// @Summary Check a guest in from a scanned QR token
// @Description The scanner posts the decoded token; the guest is resolved within the event and checked in at most once. Duplicate and unknown scans come back as 200 with success=false so kiosk devices can render the outcome directly.
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.CheckInScanRequest true "Scanned token"
// @Success 200 {object} helpers.APIResponse
// @Router /events/{eventID}/checkin [post]
func (c *GuestController) CheckInScan(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req CheckInScanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	guest, err := c.Service.CheckInByToken(r.Context(), organizerID, eventID, strings.TrimSpace(req.Token))
	if err != nil {
		// Duplicate and unknown scans are expected outcomes at the venue, not
		// transport errors; the kiosk needs them in the success payload.
		switch {
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			helpers.WriteJSONSuccess(w, http.StatusOK, CheckInScanResponse{Success: false, ErrorKind: "already_checked_in"})
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONSuccess(w, http.StatusOK, CheckInScanResponse{Success: false, ErrorKind: "not_found"})
		default:
			writeServiceError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckInScanResponse{Success: true, Guest: guest})
}

// ResetToken godoc
// @Summary Reissue a guest's identity token
// @Description Previously printed or shared QR codes stop working. Only ever explicit, never implicit.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/guests/{guestID}/token-reset [post]
func (c *GuestController) ResetToken(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	guestID, ok := pathUUID(w, r, "guestID")
	if !ok {
		return
	}
	guest, err := c.Service.ResetToken(r.Context(), organizerID, eventID, guestID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// UpdateRSVPRequest is the request body for the public RSVP endpoint.
type UpdateRSVPRequest struct {
	Status  string  `json:"status"`
	Message *string `json:"message"`
}

// Validate implements helpers.Validator.
func (r *UpdateRSVPRequest) Validate() []string {
	if !domain.RSVPStatus(r.Status).Valid() {
		return []string{"status must be one of pending, attending, not_attending"}
	}
	return nil
}

// UpdateRSVP godoc
// @Summary Update a guest's RSVP (guest self-service)
// @Description Addressed by the invitation token; no login. Repeatable — the latest answer wins.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param token path string true "Identity token from the invitation link"
// @Param body body controllers.UpdateRSVPRequest true "RSVP fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /public/events/{eventID}/rsvp/{token} [put]
func (c *GuestController) UpdateRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	token := r.PathValue("token")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing token")
		return
	}
	var req UpdateRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.Service.UpdateRSVP(r.Context(), eventID, token, domain.RSVPStatus(req.Status), req.Message)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}
