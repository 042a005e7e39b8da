package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/blaisecz/sleep-journal/pkg/problem"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// UserIDHeader identifies the caller on every sleep log endpoint.
	UserIDHeader = "X-User-ID"

	internalErrorMessage = "An unexpected internal error occurred. Please try again later."
)

type SleepLogHandler struct {
	service    service.SleepLogService
	statistics service.StatisticsService
	logger     *zap.Logger
}

func NewSleepLogHandler(service service.SleepLogService, statistics service.StatisticsService, logger *zap.Logger) *SleepLogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SleepLogHandler{
		service:    service,
		statistics: statistics,
		logger:     logger.Named("sleep_log_handler"),
	}
}

// Create handles POST /api/sleep-logs
// @Summary Record sleep
// @Description Log last night's sleep. One entry per user and sleep date; the total time in bed is computed from bed and wake time.
// @Tags sleep-logs
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepLogRequest true "Sleep data"
// @Success 201 {object} domain.SleepLogResponse "Sleep log created"
// @Failure 400 {object} problem.Problem "Invalid body or missing header"
// @Failure 409 {object} problem.Problem "Sleep log already exists for this date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-logs [post]
func (h *SleepLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req domain.CreateSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, domain.WrapError(domain.ErrInvalidArgument, err, "Invalid JSON body"))
		return
	}
	req.UserID = userID

	log, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, log.ToResponse())
}

// Latest handles GET /api/sleep-logs/latest
// @Summary Latest sleep
// @Description Fetch the sleep log with the most recent sleep date.
// @Tags sleep-logs
// @Produce json
// @Param X-User-ID header string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SleepLogResponse "Most recent sleep log"
// @Failure 400 {object} problem.Problem "Missing or invalid header"
// @Failure 404 {object} problem.Problem "No sleep log recorded yet"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-logs/latest [get]
func (h *SleepLogHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log, err := h.service.GetLatest(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, log.ToResponse())
}

// Statistics handles GET /api/sleep-logs/statistics
// @Summary 30-day statistics
// @Description Averages and feeling counts over the last 30 calendar days, today included. Clock times are reported in the server's configured timezone.
// @Tags sleep-logs
// @Produce json
// @Param X-User-ID header string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SleepStatistics "Statistics for the window"
// @Failure 400 {object} problem.Problem "Missing or invalid header"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-logs/statistics [get]
func (h *SleepLogHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	stats, err := h.statistics.Compute(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// userIDFromHeader accepts only the hyphenated 36 character UUID form.
func userIDFromHeader(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return uuid.Nil, domain.NewError(domain.ErrMissingHeader, "Required request header '%s' is not present", UserIDHeader)
	}
	if len(raw) != 36 {
		return uuid.Nil, domain.NewError(domain.ErrMissingHeader, "Request header '%s' must be a valid UUID", UserIDHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.WrapError(domain.ErrMissingHeader, err, "Request header '%s' must be a valid UUID", UserIDHeader)
	}
	return id, nil
}

func (h *SleepLogHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrMissingHeader):
		p = problem.BadRequest(domain.MessageOf(err))
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(domain.MessageOf(err))
	case errors.Is(err, domain.ErrConflict):
		p = problem.Conflict(domain.MessageOf(err))
	default:
		p = problem.InternalError(internalErrorMessage)
	}

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", p.Status),
		zap.Error(err),
	}
	if p.Status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Warn("request rejected", fields...)
	}

	p.Write(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
