package domain

type CreateOfficeRequest struct {
	ManagerID         string   `json:"manager_id" validate:"required,uuid"`
	Name              string   `json:"name" validate:"required,min=1,max=120"`
	Lat               float64  `json:"lat" validate:"lat"`
	Lng               float64  `json:"lng" validate:"lng"`
	RequiredDistanceM *float64 `json:"required_distance_m" validate:"omitempty,min=10,max=100000"`
}

type UpdateOfficeRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Lat               *float64 `json:"lat" validate:"omitempty,lat"`
	Lng               *float64 `json:"lng" validate:"omitempty,lng"`
	RequiredDistanceM *float64 `json:"required_distance_m" validate:"omitempty,min=10,max=100000"`
}

type ListOfficesResponse struct {
	Offices []*Office `json:"offices"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int64     `json:"total"`
}
