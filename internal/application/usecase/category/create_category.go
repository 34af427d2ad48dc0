package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/reportcache"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID   uuid.UUID
	Name     string
	Type     entity.CategoryType
	ParentID *uuid.UUID
	Color    *string
	Icon     *string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, cache adapter.ReportCache) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}
	if err := validateIcon(input.Icon); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, input.UserID, *input.ParentID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewLedgerError(
					domainerror.ErrCodeCategoryNotOwned,
					"parent category does not belong to user",
					domainerror.ErrCategoryNotOwned,
				)
			}
			return nil, fmt.Errorf("failed to find parent category: %w", err)
		}
	}

	category := entity.NewCategory(input.UserID, name, input.Type, input.ParentID, input.Color, input.Icon)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	reportcache.Invalidate(ctx, uc.cache, input.UserID)

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
