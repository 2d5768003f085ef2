package access

import (
	"testing"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
)

func testPlan() *plan.Plan {
	return &plan.Plan{
		ID:          1,
		Title:       "5K Training",
		Description: "Couch to 5K in thirty days",
		Price:       20,
		Duration:    30,
		TrainerID:   10,
		CreatedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Trainer:     &user.Public{ID: 10, Name: "Coach A", Email: "a@example.com"},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		viewer       Viewer
		isSubscribed bool
		wantFull     bool
		wantFlag     *bool
	}{
		{
			name:     "anonymous viewer gets preview",
			viewer:   Anonymous,
			wantFull: false,
		},
		{
			name:         "anonymous viewer gets preview even if flagged subscribed",
			viewer:       Anonymous,
			isSubscribed: true,
			wantFull:     false,
		},
		{
			name:         "subscribed user gets full record",
			viewer:       NewViewer(2, user.RoleUser),
			isSubscribed: true,
			wantFull:     true,
			wantFlag:     boolPtr(true),
		},
		{
			name:     "non-subscribed user gets preview",
			viewer:   NewViewer(2, user.RoleUser),
			wantFull: false,
		},
		{
			name:     "owning trainer gets full record",
			viewer:   NewViewer(10, user.RoleTrainer),
			wantFull: true,
			wantFlag: boolPtr(false),
		},
		{
			name:     "other trainer gets full record",
			viewer:   NewViewer(11, user.RoleTrainer),
			wantFull: true,
			wantFlag: boolPtr(false),
		},
		{
			name:     "unknown role fails closed to preview",
			viewer:   Viewer{UserID: 2, Role: user.Role("admin")},
			wantFull: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlan()
			got := Evaluate(tt.viewer, p, tt.isSubscribed)

			if got.Full() != tt.wantFull {
				t.Fatalf("Evaluate() full = %v, want %v", got.Full(), tt.wantFull)
			}

			if !tt.wantFull {
				if got.Description != "" {
					t.Errorf("preview leaked description: %q", got.Description)
				}
				if got.Duration != 0 {
					t.Errorf("preview leaked duration: %d", got.Duration)
				}
				if got.IsSubscribed != nil {
					t.Errorf("preview carried isSubscribed flag")
				}
			} else {
				if got.Description != p.Description {
					t.Errorf("full view description = %q, want %q", got.Description, p.Description)
				}
				if got.Duration != p.Duration {
					t.Errorf("full view duration = %d, want %d", got.Duration, p.Duration)
				}
			}

			if tt.wantFlag != nil {
				if got.IsSubscribed == nil || *got.IsSubscribed != *tt.wantFlag {
					t.Errorf("isSubscribed = %v, want %v", got.IsSubscribed, *tt.wantFlag)
				}
			}

			// Preview always keeps the public fields
			if got.ID != p.ID || got.Title != p.Title || got.Price != p.Price {
				t.Errorf("view lost public fields: %+v", got)
			}
			if got.Trainer == nil || got.Trainer.ID != p.Trainer.ID {
				t.Errorf("view lost trainer: %+v", got.Trainer)
			}
		})
	}
}

func TestPreviewWithFlag(t *testing.T) {
	pv := PreviewWithFlag(testPlan())

	if pv.Full() {
		t.Fatal("PreviewWithFlag() returned a full view")
	}
	if pv.IsSubscribed == nil || *pv.IsSubscribed {
		t.Errorf("PreviewWithFlag() isSubscribed = %v, want false", pv.IsSubscribed)
	}
}

func boolPtr(b bool) *bool { return &b }
