// Package access decides how much of a plan a viewer may see. It is the single
// policy behind the catalog listing and the single-plan endpoint: entitled
// viewers get the full record, everyone else gets a redacted preview. Redaction
// is a silent degrade, never an error.
package access

import (
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
)

// Viewer identifies who is looking. The zero value is an anonymous viewer.
type Viewer struct {
	UserID int64
	Role   user.Role
}

// Anonymous is the viewer for unauthenticated requests
var Anonymous = Viewer{}

// NewViewer builds an authenticated viewer
func NewViewer(userID int64, role user.Role) Viewer {
	return Viewer{UserID: userID, Role: role}
}

// IsAnonymous reports whether the viewer is unauthenticated
func (v Viewer) IsAnonymous() bool {
	return v.UserID == 0
}

// PlanView is what a viewer sees of a plan. Preview views omit description,
// duration, updatedAt and the subscription flag.
type PlanView struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Price        float64      `json:"price"`
	Duration     int          `json:"duration,omitempty"`
	Trainer      *user.Public `json:"trainer,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
	IsSubscribed *bool        `json:"isSubscribed,omitempty"`
}

// Full reports whether the view carries the unredacted record
func (pv *PlanView) Full() bool {
	return pv.Description != "" || pv.Duration != 0
}

// FullView returns the unredacted record with the subscription flag set
func FullView(p *plan.Plan, isSubscribed bool) *PlanView {
	updated := p.UpdatedAt
	return &PlanView{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Duration:     p.Duration,
		Trainer:      p.Trainer,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    &updated,
		IsSubscribed: &isSubscribed,
	}
}

// PreviewView returns the redacted record
func PreviewView(p *plan.Plan) *PlanView {
	return &PlanView{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Trainer:   p.Trainer,
		CreatedAt: p.CreatedAt,
	}
}

// PreviewWithFlag returns the redacted record carrying an explicit
// isSubscribed=false, the shape the single-plan endpoint uses.
func PreviewWithFlag(p *plan.Plan) *PlanView {
	pv := PreviewView(p)
	notSubscribed := false
	pv.IsSubscribed = &notSubscribed
	return pv
}

// Evaluate applies the visibility policy. isSubscribed must reflect whether
// the viewer holds an active subscription for this plan; it is ignored for
// anonymous viewers.
//
// Trainers see every plan in full, their own or not. Users see full records
// only for plans they actively subscribe to.
func Evaluate(v Viewer, p *plan.Plan, isSubscribed bool) *PlanView {
	if v.IsAnonymous() {
		return PreviewView(p)
	}

	switch v.Role {
	case user.RoleTrainer:
		return FullView(p, isSubscribed)
	case user.RoleUser:
		if isSubscribed {
			return FullView(p, true)
		}
		return PreviewView(p)
	default:
		// Unknown role: fail closed
		return PreviewView(p)
	}
}
