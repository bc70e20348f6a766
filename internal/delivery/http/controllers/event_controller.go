package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"awesomedevevents/internal/delivery/http/helpers"
	"awesomedevevents/internal/domain"
)

// EventInputRequest is the request body for POST and PUT /api/dev-events.
// Dates are RFC 3339 timestamps.
type EventInputRequest struct {
	Title       string    `json:"title" example:"GopherCon"`
	Description string    `json:"description" example:"Annual Go conference"`
	StartDate   time.Time `json:"startDate" example:"2024-06-01T09:00:00Z"`
	EndDate     time.Time `json:"endDate" example:"2024-06-03T18:00:00Z"`
}

// Validate implements helpers.Validator.
func (req EventInputRequest) Validate() []string {
	var errs []string
	if err := domain.ValidateDescription(req.Description); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}

// SpeakerInputRequest is the request body for POST /api/dev-events/{id}/speakers.
type SpeakerInputRequest struct {
	Name            string `json:"name" example:"Rob Pike"`
	TalkTitle       string `json:"talkTitle" example:"Concurrency is not parallelism"`
	TalkDescription string `json:"talkDescription"`
	LinkedInProfile string `json:"linkedInProfile"`
}

// Validate implements helpers.Validator.
func (req SpeakerInputRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List active events
// @Description Returns every event that has not been deleted, with its speakers.
// @Tags dev-events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/dev-events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListActiveEvents(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the event with its speakers. Deleted events are returned too, with isDeleted set.
// @Tags dev-events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 404 "event not found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/dev-events/{id} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an active event without speakers. The Location header points at the new resource.
// @Tags dev-events
// @Accept json
// @Produce json
// @Param event body EventInputRequest true "Event data"
// @Success 201 {object} domain.Event
// @Header 201 {string} Location "absolute URL of the created event"
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/dev-events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventInputRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.Title, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	w.Header().Set("Location", eventURL(r, event.ID))
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces title, description and dates. Deleted events can still be updated.
// @Tags dev-events
// @Accept json
// @Param id path string true "Event ID (UUID)"
// @Param event body EventInputRequest true "Event data"
// @Success 204 "updated"
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 404 "event not found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/dev-events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	var req EventInputRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), id, req.Title, req.Description, req.StartDate, req.EndDate); err != nil {
		c.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Soft-deletes the event. It disappears from the list but stays readable by ID.
// @Tags dev-events
// @Param id path string true "Event ID (UUID)"
// @Success 204 "deleted"
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 404 "event not found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/dev-events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSpeaker godoc
// @Summary Add a speaker to an event
// @Tags dev-events
// @Accept json
// @Param id path string true "Event ID (UUID)"
// @Param speaker body SpeakerInputRequest true "Speaker data"
// @Success 204 "speaker added"
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 404 "event not found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/dev-events/{id}/speakers [post]
func (c *EventController) AddSpeaker(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	var req SpeakerInputRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.AddSpeaker(r.Context(), id, req.Name, req.TalkTitle, req.TalkDescription, req.LinkedInProfile); err != nil {
		c.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fail maps a service error to a response. Anything other than ErrNotFound is logged.
func (c *EventController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteNotFound(w)
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteInternalError(w)
}

// eventIDParam returns the canonical form of the {id} path parameter.
// A value that is not a UUID gets a 400 and ok=false.
func eventIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event id")
		return "", false
	}
	return id.String(), true
}

func eventURL(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host + "/api/dev-events/" + id
}
