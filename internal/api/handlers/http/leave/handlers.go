package leave

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"geoattend/internal/domain"
	"geoattend/internal/middleware"
	"geoattend/pkg/e"
	"geoattend/pkg/validator"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LeaveSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, req domain.SubmitLeaveRequest) (uuid.UUID, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.LeaveRequest, int64, error)
}

type Handler struct {
	logger *slog.Logger
	Leave  LeaveSubmitter
}

func NewHandler(logger *slog.Logger, leave LeaveSubmitter) *Handler {
	return &Handler{logger: logger, Leave: leave}
}

func (h *Handler) LeaveSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid leave request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Leave.Submit(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("leave request submitted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) LeaveListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	requests, total, err := h.Leave.ListForUser(r.Context(), userID, page, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"requests": requests,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return def
	}
	return i
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
