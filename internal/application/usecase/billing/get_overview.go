// Package billing contains billing overview and charge use cases.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/billing"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// overviewCacheTTL bounds staleness between a write on one instance and a
// cached read on another.
const overviewCacheTTL = 5 * time.Minute

// GetOverviewInput represents the input for the billing overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// GetOverviewOutput represents the output of the billing overview.
type GetOverviewOutput struct {
	Summary *billing.Summary
}

// GetOverviewUseCase aggregates a period's billing snapshot, serving from
// the Redis cache when a fresh copy exists.
type GetOverviewUseCase struct {
	clientRepo    adapter.ClientRepository
	productRepo   adapter.ProductRepository
	expenseRepo   adapter.ExpenseRepository
	overviewCache adapter.OverviewCache
	now           func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	clientRepo adapter.ClientRepository,
	productRepo adapter.ProductRepository,
	expenseRepo adapter.ExpenseRepository,
	overviewCache adapter.OverviewCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		expenseRepo:   expenseRepo,
		overviewCache: overviewCache,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Execute returns the billing summary for the requested period.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	if input.Month < time.January || input.Month > time.December || input.Year <= 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be 1-12 and year positive",
			domainerror.ErrInvalidPeriod,
		)
	}

	if uc.overviewCache != nil {
		payload, err := uc.overviewCache.Get(ctx, input.UserID, input.Month, input.Year)
		if err != nil {
			slog.Warn("Overview cache read failed", "error", err, "userID", input.UserID)
		} else if payload != "" {
			var cached billing.Summary
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return &GetOverviewOutput{Summary: &cached}, nil
			}
			slog.Warn("Discarding undecodable overview cache entry", "userID", input.UserID)
		}
	}

	clients, err := uc.clientRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	products, err := uc.productRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByPeriod(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	summary := billing.Aggregate(clients, products, expenses, input.Month, input.Year, uc.now())

	if uc.overviewCache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := uc.overviewCache.Set(ctx, input.UserID, input.Month, input.Year, string(payload), overviewCacheTTL); err != nil {
				slog.Warn("Overview cache write failed", "error", err, "userID", input.UserID)
			}
		}
	}

	return &GetOverviewOutput{Summary: summary}, nil
}
