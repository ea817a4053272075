// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Shivanand-hulikatti/event-finder/internal/auth"
	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/Shivanand-hulikatti/event-finder/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// EventHandler holds all HTTP handlers for the event API.
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeServiceError maps service and repository errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrUnknownUser):
		writeError(w, http.StatusForbidden, "user is not registered")
	default:
		logrus.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func queryOptionalInt(r *http.Request, key string) (*int, error) {
	if r.URL.Query().Get(key) == "" {
		return nil, nil
	}
	n, err := queryInt(r, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func queryInts(r *http.Request, key string) ([]int, error) {
	var out []int
	for _, v := range r.URL.Query()[key] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer", key)
		}
		out = append(out, n)
	}
	return out, nil
}

func subject(r *http.Request) string {
	if id, ok := auth.FromContext(r.Context()); ok {
		return id.Subject
	}
	return ""
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// SearchEvents handles GET /events
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := model.SearchFilters{
		Categories:         q["category"],
		Tags:               q["tag"],
		RegistrationStatus: q.Get("registrationStatus"),
	}

	var err error
	if filters.Districts, err = queryInts(r, "district"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filters.MinParticipationFee, err = queryOptionalInt(r, "minFee"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filters.MaxParticipationFee, err = queryOptionalInt(r, "maxFee"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.svc.SearchEvents(r.Context(), filters, q.Get("token"), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// pageFunc is a listing that only takes a cursor and a limit.
type pageFunc func(r *http.Request, token string, limit int) (*model.Page[model.Event], error)

func (h *EventHandler) list(fn pageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		page, err := fn(r, r.URL.Query().Get("token"), limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// OngoingFestivals handles GET /events/festivals/ongoing
func (h *EventHandler) OngoingFestivals(w http.ResponseWriter, r *http.Request) {
	h.list(func(r *http.Request, token string, limit int) (*model.Page[model.Event], error) {
		return h.svc.OngoingFestivals(r.Context(), token, limit)
	})(w, r)
}

// NewEvents handles GET /events/new
func (h *EventHandler) NewEvents(w http.ResponseWriter, r *http.Request) {
	h.list(func(r *http.Request, token string, limit int) (*model.Page[model.Event], error) {
		return h.svc.NewEvents(r.Context(), token, limit)
	})(w, r)
}

// FavoriteEvents handles GET /me/favorites
func (h *EventHandler) FavoriteEvents(w http.ResponseWriter, r *http.Request) {
	h.list(func(r *http.Request, token string, limit int) (*model.Page[model.Event], error) {
		return h.svc.FavoriteEvents(r.Context(), subject(r), token, limit)
	})(w, r)
}

// ViewHistory handles GET /me/history
func (h *EventHandler) ViewHistory(w http.ResponseWriter, r *http.Request) {
	h.list(func(r *http.Request, token string, limit int) (*model.Page[model.Event], error) {
		return h.svc.ViewHistory(r.Context(), subject(r), token, limit)
	})(w, r)
}

// GetEvent handles GET /events/{uuid}
// Authenticated views are recorded in the caller's history.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetEvent(r.Context(), chi.URLParam(r, "uuid"), subject(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	d, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// DeleteEvent handles DELETE /events/{uuid}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEvent(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// IsFavorite handles GET /events/{uuid}/favorite
func (h *EventHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.IsFavorite(r.Context(), chi.URLParam(r, "uuid"), subject(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": ok})
}

// AddFavorite handles PUT /events/{uuid}/favorite
func (h *EventHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AddFavorite(r.Context(), chi.URLParam(r, "uuid"), subject(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /events/{uuid}/favorite
func (h *EventHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFavorite(r.Context(), chi.URLParam(r, "uuid"), subject(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles POST /me
// Returns the caller's user, creating it on first call.
func (h *EventHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	u, created, err := h.svc.GetOrCreateUser(r.Context(), id.Subject, id.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{"user": u, "isNew": created})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
