package attendance

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"geoattend/internal/domain"
	"geoattend/internal/middleware"
	"geoattend/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AttendanceChecker interface {
	Evaluate(ctx context.Context, managerID uuid.UUID, req domain.EvaluateRequest) (domain.EvaluateResponse, error)
	Mark(ctx context.Context, userID, managerID uuid.UUID, req domain.MarkAttendanceRequest) (domain.MarkAttendanceResponse, error)
	History(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.AttendanceRecord, int64, error)
}

type Handler struct {
	logger     *slog.Logger
	Attendance AttendanceChecker
}

func NewHandler(logger *slog.Logger, attendance AttendanceChecker) *Handler {
	return &Handler{
		logger:     logger,
		Attendance: attendance,
	}
}

func (h *Handler) AttendanceEvaluate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	_, managerID, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req domain.EvaluateRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid evaluate request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Attendance.Evaluate(r.Context(), managerID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("geofence evaluated",
		slog.Float64("distance_m", resp.DistanceM),
		slog.Bool("within_range", resp.WithinRange),
		slog.Bool("low_confidence", resp.LowConfidence),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AttendanceMark(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, managerID, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req domain.MarkAttendanceRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid mark request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Attendance.Mark(r.Context(), userID, managerID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("attendance mark recorded", slog.String("record_id", resp.RecordID.String()))
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) AttendanceHistory(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.identity(w, r)
	if !ok {
		return
	}

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	records, total, err := h.Attendance.History(r.Context(), userID, page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (userID, managerID uuid.UUID, ok bool) {
	userID, uok := middleware.UserID(r.Context())
	managerID, mok := middleware.ManagerID(r.Context())
	if !uok || !mok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, managerID, true
}

// decodeStrict rejects unknown fields and trailing data after the first
// JSON object.
func (h *Handler) decodeStrict(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
