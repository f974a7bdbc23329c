package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"geoattend/internal/domain"
	"geoattend/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type OfficeAdmin interface {
	Create(ctx context.Context, req domain.CreateOfficeRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Office, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Office, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateOfficeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AttendanceStats, error)
}

type LeaveAdmin interface {
	ListByStatus(ctx context.Context, status domain.LeaveStatus, page, limit int) ([]*domain.LeaveRequest, int64, error)
	Decide(ctx context.Context, id uuid.UUID, req domain.DecideLeaveRequest) error
}

type Handler struct {
	logger  *slog.Logger
	Offices OfficeAdmin
	Stats   StatsGetter
	Leaves  LeaveAdmin
}

func NewHandler(logger *slog.Logger, offices OfficeAdmin, stats StatsGetter, leaves LeaveAdmin) *Handler {
	return &Handler{
		logger:  logger,
		Offices: offices,
		Stats:   stats,
		Leaves:  leaves,
	}
}

func (h *Handler) AdminOfficeCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid office payload", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating office",
		slog.String("manager_id", req.ManagerID),
		slog.String("name", req.Name),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	id, err := h.Offices.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("office created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminOfficeList(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	offices, total, err := h.Offices.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.ListOfficesResponse{
		Offices: offices,
		Page:    page,
		Limit:   limit,
		Total:   total,
	})
}

func (h *Handler) AdminOfficeGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	office, err := h.Offices.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, office)
}

func (h *Handler) AdminOfficeUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Offices.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("office updated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminOfficeDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Offices.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("office deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	req := domain.StatsRequest{
		Minutes: parseInt(r.URL.Query().Get("minutes"), 60),
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminLeaveList(w http.ResponseWriter, r *http.Request) {
	status := domain.LeaveStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.LeavePending
	}
	switch status {
	case domain.LeavePending, domain.LeaveApproved, domain.LeaveRejected:
	default:
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	requests, total, err := h.Leaves.ListByStatus(r.Context(), status, page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"requests": requests,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *Handler) AdminLeaveDecide(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Leaves.Decide(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("leave request decided", slog.String("id", id.String()), slog.String("status", req.Status))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
