package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
)

// GetGoalProgressInput represents the input for listing goal progress.
type GetGoalProgressInput struct {
	UserID uuid.UUID
}

// GetGoalProgressOutput represents the progress of every goal of an owner.
type GetGoalProgressOutput struct {
	Goals []GoalProgress `json:"goals"`
}

// GetGoalProgressUseCase computes progress for an owner's goals.
type GetGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ReportCache
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(goalRepo adapter.GoalRepository, cache adapter.ReportCache) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute lists the owner's goals ordered by title with their progress.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context, input GetGoalProgressInput) (*GetGoalProgressOutput, error) {
	return reportcache.GetOrCompute(ctx, uc.cache, input.UserID, "goals",
		func(ctx context.Context) (*GetGoalProgressOutput, error) {
			goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to list goals: %w", err)
			}
			return &GetGoalProgressOutput{Goals: BuildGoalProgress(goals)}, nil
		})
}
