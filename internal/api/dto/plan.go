package dto

// CreatePlanRequest represents a plan creation request
type CreatePlanRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
}

// UpdatePlanRequest represents a partial plan update; absent fields are left
// untouched
type UpdatePlanRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
}
