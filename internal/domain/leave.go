package domain

import (
	"time"

	"github.com/google/uuid"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

type LeaveType string

const (
	LeaveAnnual LeaveType = "annual"
	LeaveSick   LeaveType = "sick"
	LeaveUnpaid LeaveType = "unpaid"
)

type LeaveRequest struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Type      LeaveType   `json:"type"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Reason    string      `json:"reason,omitempty"`
	Status    LeaveStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	DecidedAt *time.Time  `json:"decided_at,omitempty"`
}

type SubmitLeaveRequest struct {
	Type      string `json:"type" validate:"required,oneof=annual sick unpaid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"max=500"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
