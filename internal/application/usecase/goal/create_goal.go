package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	Description   *string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	ImageURL      *string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ReportCache
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.ReportCache) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateAmount("target_amount", input.TargetAmount); err != nil {
		return nil, err
	}
	if err := validateAmount("current_amount", input.CurrentAmount); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		title,
		input.Description,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
	)
	goal.ImageURL = input.ImageURL

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
