package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventsignup/internal/delivery/http/helpers"
	"eventsignup/internal/domain"
)

// CreateEventRequest is the request body for POST /admin/events.
type CreateEventRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=128"`
	Description string `json:"description"`
}

// UpdateEventRequest is the request body for PATCH /admin/events/{eventID}.
// Both mutable fields are replaced in full; the slug is never re-derived.
type UpdateEventRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=128"`
	Description string `json:"description"`
}

// EventListResponse is the data payload for event list endpoints.
type EventListResponse struct {
	Events []*domain.Event `json:"events"`
	Paging domain.PageInfo `json:"paging"`
}

// EventListSuccessResponse is the success envelope for GET /events (200).
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StatusResponse is a minimal data payload carrying only a status string.
type StatusResponse struct {
	Status string `json:"status"`
}

type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger: logger,
		Events: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns one page of events with pagination metadata. Supports optional full-text search over name and description via the search query parameter. Invalid page numbers are coerced to 1.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param search query string false "Full-text search term"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains events and paging"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, "/events")
}

// AdminListEvents godoc
// @Summary List events (admin)
// @Description Same as GET /events but behind the session guard, for the admin review screen. Paging links point at the admin path.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param search query string false "Full-text search term"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains events and paging"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/events [get]
func (c *EventController) AdminListEvents(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, "/admin/events")
}

func (c *EventController) list(w http.ResponseWriter, r *http.Request, baseURL string) {
	page := helpers.ParsePage(r)
	search := helpers.ParseSearch(r)
	events, paging := c.Events.List(r.Context(), page, search)
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events: events,
		Paging: paging.WithLinks(baseURL),
	})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns a single event.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Events.GetByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.GenericFailureMessage)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Create a new event. Name is required (1-128 characters); the slug is derived from the name at creation time. Requires an authenticated session.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains status created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Events.Create(r.Context(), req.Name, req.Description) {
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.GenericFailureMessage)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, StatusResponse{Status: "created"})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event's name and description. The slug keeps its creation-time value. Updating a missing event fails. Requires an authenticated session.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to replace"
// @Success 200 {object} helpers.APIResponse "data contains status updated"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Events.Update(r.Context(), eventID, req.Name, req.Description) {
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.GenericFailureMessage)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}
