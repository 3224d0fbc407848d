package controllers

import (
	"log/slog"
	"net/http"

	"eventsignup/internal/delivery/http/helpers"
	"eventsignup/internal/domain"
)

// CreateSignupRequest is the request body for POST /events/{eventID}/signups.
type CreateSignupRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=128"`
	Comment string `json:"comment" validate:"max=250"`
}

// SignupListResponse is the data payload for GET /admin/signups.
type SignupListResponse struct {
	Signups []*domain.Signup `json:"signups"`
	Paging  domain.PageInfo  `json:"paging"`
}

// SignupListSuccessResponse is the success envelope for GET /admin/signups (200).
type SignupListSuccessResponse struct {
	Data  SignupListResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type SignupController struct {
	Logger  *slog.Logger
	Signups domain.SignupService
}

func NewSignupController(logger *slog.Logger, svc domain.SignupService) *SignupController {
	return &SignupController{
		Logger:  logger,
		Signups: svc,
	}
}

// CreateSignup godoc
// @Summary Sign up for an event
// @Description Register a visitor for an event. Name is required (1-128 characters), comment is optional (max 250). The event reference is not validated unless strict mode is enabled.
// @Tags signups
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body CreateSignupRequest true "Signup data"
// @Success 201 {object} helpers.APIResponse "data contains status created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/signups [post]
func (c *SignupController) CreateSignup(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CreateSignupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Signups.Create(r.Context(), req.Name, req.Comment, eventID) {
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.GenericFailureMessage)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, StatusResponse{Status: "created"})
}

// ListSignups godoc
// @Summary List signups (admin)
// @Description Returns one page of signups with pagination metadata. Supports optional full-text search over name and comment. Requires an authenticated session.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param search query string false "Full-text search term"
// @Success 200 {object} controllers.SignupListSuccessResponse "data contains signups and paging"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/signups [get]
func (c *SignupController) ListSignups(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(r)
	search := helpers.ParseSearch(r)
	signups, paging := c.Signups.List(r.Context(), page, search)
	helpers.WriteJSONSuccess(w, http.StatusOK, SignupListResponse{
		Signups: signups,
		Paging:  paging.WithLinks("/admin/signups"),
	})
}
