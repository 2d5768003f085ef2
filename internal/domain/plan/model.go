package plan

import (
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/user"
)

// Plan is a priced, timed fitness program authored by a trainer
type Plan struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"` // days
	TrainerID   int64     `json:"trainerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Trainer is the resolved owning trainer, populated on reads
	Trainer *user.Public `json:"trainer,omitempty"`
}

// Update describes a partial plan update; nil fields are left untouched
type Update struct {
	Title       *string
	Description *string
	Price       *float64
	Duration    *int
}
