package service

import (
	"context"
	"fmt"
	"time"

	"geoattend/internal/domain"
	"geoattend/pkg/e"

	"github.com/google/uuid"
)

type LeaveRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error)
	Update(ctx context.Context, req *domain.LeaveRequest) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.LeaveRequest, int64, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus, page, limit int) ([]*domain.LeaveRequest, int64, error)
}

type leaveService struct {
	repo LeaveRepository
}

func NewLeaveService(repo LeaveRepository) LeaveService {
	return &leaveService{repo: repo}
}

const leaveDateLayout = "2006-01-02"

func (s *leaveService) Submit(ctx context.Context, userID uuid.UUID, req domain.SubmitLeaveRequest) (uuid.UUID, error) {
	start, err := time.Parse(leaveDateLayout, req.StartDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("start_date: %w", e.ErrInvalidInput)
	}
	end, err := time.Parse(leaveDateLayout, req.EndDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("end_date: %w", e.ErrInvalidInput)
	}
	if end.Before(start) {
		return uuid.Nil, fmt.Errorf("end_date before start_date: %w", e.ErrInvalidInput)
	}

	lr := &domain.LeaveRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      domain.LeaveType(req.Type),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    domain.LeavePending,
	}
	if err := s.repo.Create(ctx, lr); err != nil {
		return uuid.Nil, err
	}
	return lr.ID, nil
}

func (s *leaveService) ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.LeaveRequest, int64, error) {
	return s.repo.ListByUser(ctx, userID, page, limit)
}

func (s *leaveService) ListByStatus(ctx context.Context, status domain.LeaveStatus, page, limit int) ([]*domain.LeaveRequest, int64, error) {
	return s.repo.ListByStatus(ctx, status, page, limit)
}

func (s *leaveService) Decide(ctx context.Context, id uuid.UUID, req domain.DecideLeaveRequest) error {
	lr, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if lr.Status != domain.LeavePending {
		return e.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	lr.Status = domain.LeaveStatus(req.Status)
	lr.DecidedAt = &now

	return s.repo.Update(ctx, lr)
}
