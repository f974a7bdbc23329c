package domain

type AttendanceStats struct {
	UserCount  int64 `json:"user_count"`
	TotalMarks int64 `json:"total_marks"`
	Minutes    int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=0,max=1440"` // 1 day max
}
