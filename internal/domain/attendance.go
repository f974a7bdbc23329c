package domain

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OfficeID    uuid.UUID `json:"office_id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	AccuracyM   *float64  `json:"accuracy_m,omitempty"`
	DistanceM   float64   `json:"distance_m"`
	WithinRange bool      `json:"within_range"`
	Overridden  bool      `json:"overridden"`
	MarkedAt    time.Time `json:"marked_at"`
}

type EvaluateRequest struct {
	Lat       float64  `json:"lat" validate:"lat"`
	Lng       float64  `json:"lng" validate:"lng"`
	AccuracyM *float64 `json:"accuracy_m" validate:"omitempty,accuracy_m"`
}

type EvaluateResponse struct {
	DistanceM        float64 `json:"distance_m"`
	Office           *Office `json:"office"`
	RequiredM        float64 `json:"required_distance_m"`
	WithinRange      bool    `json:"within_range"`
	LowConfidence    bool    `json:"low_confidence"`
	OverrideRequired bool    `json:"override_required"`
}

// MarkAttendanceRequest carries the same fix as EvaluateRequest plus the
// caller's explicit confirmations: Override acknowledges an out-of-range
// mark ("mark anyway"), ConfirmAccuracy acknowledges a low-confidence fix.
type MarkAttendanceRequest struct {
	Lat             float64  `json:"lat" validate:"lat"`
	Lng             float64  `json:"lng" validate:"lng"`
	AccuracyM       *float64 `json:"accuracy_m" validate:"omitempty,accuracy_m"`
	Override        bool     `json:"override"`
	ConfirmAccuracy bool     `json:"confirm_accuracy"`
}

type MarkAttendanceResponse struct {
	RecordID    uuid.UUID `json:"record_id"`
	OfficeID    uuid.UUID `json:"office_id"`
	OfficeName  string    `json:"office_name"`
	DistanceM   float64   `json:"distance_m"`
	WithinRange bool      `json:"within_range"`
	Overridden  bool      `json:"overridden"`
	MarkedAt    time.Time `json:"marked_at"`
}
