// Package goal contains goal-related use cases.
package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// GoalProgress is a goal with its derived completion percentage.
type GoalProgress struct {
	GoalID      uuid.UUID       `json:"goal_id"`
	Title       string          `json:"title"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Remaining   decimal.Decimal `json:"remaining"`
	Percent     int             `json:"percent"`
	IsCompleted bool            `json:"is_completed"`
	TargetDate  *time.Time      `json:"target_date,omitempty"`
}

// Progress returns the goal's completion percentage in [0, 100]. A negative
// current amount counts as zero and a non-positive target yields zero.
func Progress(goal *entity.Goal) int {
	if goal == nil {
		return 0
	}
	return valueobject.ClampedPercent(valueobject.NonNegative(goal.CurrentAmount), goal.TargetAmount)
}

// BuildGoalProgress derives progress for each goal in input order.
// IsCompleted is passed through as stored.
func BuildGoalProgress(goals []*entity.Goal) []GoalProgress {
	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		if g == nil {
			continue
		}
		current := valueobject.NonNegative(g.CurrentAmount)
		progress = append(progress, GoalProgress{
			GoalID:      g.ID,
			Title:       g.Title,
			Target:      g.TargetAmount,
			Current:     g.CurrentAmount,
			Remaining:   valueobject.NonNegative(g.TargetAmount.Sub(current)),
			Percent:     Progress(g),
			IsCompleted: g.IsCompleted,
			TargetDate:  g.TargetDate,
		})
	}
	return progress
}
