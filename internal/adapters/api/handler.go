// Package api serves workday lookups over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/engine/lookup"
)

// Lookup answers workday queries.
type Lookup interface {
	IsWorkday(date string) (bool, error)
	Today() (date string, isWorkday bool, err error)
	Status() (lookup.Status, bool)
}

// Handler serves the workday routes.
type Handler struct {
	lookup Lookup
	logger ports.Logger
}

// NewHandler creates a Handler.
func NewHandler(l Lookup, logger ports.Logger) *Handler {
	return &Handler{lookup: l, logger: logger}
}

// RegisterRoutes adds the workday and health routes to router.
func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	// httprouter cannot mix a static "today" segment with the :year wildcard,
	// so /api/workday/today is dispatched from the single-segment route.
	router.GET("/api/workday/:year", h.handleToday)
	router.GET("/api/workday/:year/:month/:day", h.handleDate)
	router.GET("/health", h.handleHealth)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, MessageNotFound)
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, MessageMethodNotAllowed)
	})
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("year") != "today" {
		writeError(w, http.StatusNotFound, MessageNotFound)
		return
	}

	_, isWorkday, err := h.lookup.Today()
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	writeResult(w, WorkdayData{IsWorkday: isWorkday})
}

func (h *Handler) handleDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	year, errYear := strconv.Atoi(ps.ByName("year"))
	month, errMonth := strconv.Atoi(ps.ByName("month"))
	day, errDay := strconv.Atoi(ps.ByName("day"))
	if err := errors.Join(errYear, errMonth, errDay); err != nil {
		writeError(w, http.StatusNotFound, MessageIncorrectParam)
		return
	}

	isWorkday, err := h.lookup.IsWorkday(lookup.Date(year, month, day))
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	writeResult(w, WorkdayData{IsWorkday: isWorkday})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	status, ok := h.lookup.Status()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Entries:  status.Entries,
		Year:     status.Year,
		Digest:   status.Digest,
		LoadedAt: status.LoadedAt.Format(time.RFC3339),
	})
}

func (h *Handler) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDateNotFound), errors.Is(err, domain.ErrInvalidDate):
		writeError(w, http.StatusNotFound, MessageIncorrectDate)
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		writeError(w, http.StatusServiceUnavailable, MessageUnavailable)
	default:
		h.logger.Error(err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, MessageInternalError)
	}
}
