package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"weddinghub/internal/delivery/http/helpers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/domain"
)

type VendorController struct {
	Logger  *slog.Logger
	Service domain.VendorService
}

func NewVendorController(logger *slog.Logger, svc domain.VendorService) *VendorController {
	return &VendorController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateVendorRequest is the request body for POST /vendors.
type CreateVendorRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	PriceRange   string `json:"price_range"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// Validate implements helpers.Validator.
func (r *CreateVendorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !domain.VendorCategory(r.Category).Valid() {
		errs = append(errs, "unknown category")
	}
	if !domain.PriceRange(r.PriceRange).Valid() {
		errs = append(errs, "price_range must be one of budget, standard, premium, luxury")
	}
	return errs
}

// CreateVendor godoc
// @Summary Add a vendor to the organizer's catalog
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateVendorRequest true "Vendor fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /vendors [post]
func (c *VendorController) CreateVendor(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	vendor := &domain.Vendor{
		Name:         req.Name,
		Category:     domain.VendorCategory(req.Category),
		PriceRange:   domain.PriceRange(req.PriceRange),
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	}
	created, err := c.Service.CreateVendor(r.Context(), organizerID, vendor)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListVendors godoc
// @Summary List the organizer's vendor catalog
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /vendors [get]
func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	vendors, err := c.Service.ListMyVendors(r.Context(), organizerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, vendors)
}

// GetVendor godoc
// @Summary Get one vendor
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param vendorID path string true "Vendor ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{vendorID} [get]
func (c *VendorController) GetVendor(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	vendorID, ok := pathUUID(w, r, "vendorID")
	if !ok {
		return
	}
	vendor, err := c.Service.GetVendor(r.Context(), organizerID, vendorID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, vendor)
}

// UpdateVendorRequest is the request body for PATCH /vendors/{vendorID}.
// Omitted fields are left unchanged.
type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	PriceRange   *string `json:"price_range"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
}

// UpdateVendor godoc
// @Summary Patch a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vendorID path string true "Vendor ID (UUID)"
// @Param body body controllers.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{vendorID} [patch]
func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	vendorID, ok := pathUUID(w, r, "vendorID")
	if !ok {
		return
	}
	var req UpdateVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.VendorUpdate{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	}
	if req.Category != nil {
		cat := domain.VendorCategory(*req.Category)
		upd.Category = &cat
	}
	if req.PriceRange != nil {
		pr := domain.PriceRange(*req.PriceRange)
		upd.PriceRange = &pr
	}
	vendor, err := c.Service.UpdateVendor(r.Context(), organizerID, vendorID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, vendor)
}

// DeleteVendor godoc
// @Summary Remove a vendor from the catalog
// @Description Assignments referencing the vendor are removed with it.
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param vendorID path string true "Vendor ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{vendorID} [delete]
func (c *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	vendorID, ok := pathUUID(w, r, "vendorID")
	if !ok {
		return
	}
	if err := c.Service.DeleteVendor(r.Context(), organizerID, vendorID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": vendorID})
}

// AssignVendorRequest is the request body for POST /events/{eventID}/vendors.
type AssignVendorRequest struct {
	VendorID       string          `json:"vendor_id"`
	ContractAmount decimal.Decimal `json:"contract_amount"`
	Currency       string          `json:"currency"`
}

// Validate implements helpers.Validator.
func (r *AssignVendorRequest) Validate() []string {
	var errs []string
	if !uuidRegex.MatchString(r.VendorID) {
		errs = append(errs, "vendor_id must be a UUID")
	}
	if r.ContractAmount.IsNegative() {
		errs = append(errs, "contract_amount cannot be negative")
	}
	if strings.TrimSpace(r.Currency) == "" {
		errs = append(errs, "currency is required")
	}
	return errs
}

// AssignVendor godoc
// @Summary Assign a vendor to an event
// @Description Creates the link in pending/pending.
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.AssignVendorRequest true "Assignment fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/vendors [post]
func (c *VendorController) AssignVendor(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req AssignVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	assignment, err := c.Service.AssignVendor(r.Context(), organizerID, eventID, req.VendorID, req.ContractAmount, req.Currency)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, assignment)
}

// ListAssignments godoc
// @Summary List an event's vendor assignments
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Router /events/{eventID}/vendors [get]
func (c *VendorController) ListAssignments(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	assignments, err := c.Service.ListAssignments(r.Context(), organizerID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignments)
}

// UpdateAssignmentRequest is the request body for PATCH /event-vendors/{assignmentID}.
// Omitted fields are left unchanged.
type UpdateAssignmentRequest struct {
	ContractAmount *decimal.Decimal `json:"contract_amount"`
	Currency       *string          `json:"currency"`
	PaymentStatus  *string          `json:"payment_status"`
	Status         *string          `json:"status"`
	Notes          *string          `json:"notes"`
}

// UpdateAssignment godoc
// @Summary Patch a vendor assignment
// @Description Payment and assignment statuses only move forward (or to cancelled); a regression fails with invalid_transition and nothing changes.
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignmentID path string true "Assignment ID (UUID)"
// @Param body body controllers.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /event-vendors/{assignmentID} [patch]
func (c *VendorController) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	assignmentID, ok := pathUUID(w, r, "assignmentID")
	if !ok {
		return
	}
	var req UpdateAssignmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.EventVendorUpdate{
		ContractAmount: req.ContractAmount,
		Currency:       req.Currency,
		Notes:          req.Notes,
	}
	if req.PaymentStatus != nil {
		ps := domain.PaymentStatus(*req.PaymentStatus)
		upd.PaymentStatus = &ps
	}
	if req.Status != nil {
		st := domain.AssignmentStatus(*req.Status)
		upd.Status = &st
	}
	assignment, err := c.Service.UpdateAssignment(r.Context(), organizerID, assignmentID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignment)
}

// RemoveAssignment godoc
// @Summary Remove a vendor assignment
// @Description Always succeeds regardless of payment status; the had_payments flag tells the UI whether financial history was attached.
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param assignmentID path string true "Assignment ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event-vendors/{assignmentID} [delete]
func (c *VendorController) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	assignmentID, ok := pathUUID(w, r, "assignmentID")
	if !ok {
		return
	}
	removed, err := c.Service.RemoveAssignment(r.Context(), organizerID, assignmentID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, removed)
}
