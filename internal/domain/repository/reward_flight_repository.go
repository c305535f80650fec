package repository

import (
	"context"

	"rewardfare-service/internal/domain/entity"
)

// RewardFlightRepository defines the interface for reward flight persistence
type RewardFlightRepository interface {
	// UpsertBatch writes a non-empty batch in one statement, resolving
	// conflicts on (program, route, date, fare) with last-write-wins.
	// Returns the affected-row count.
	UpsertBatch(ctx context.Context, rows []entity.RewardFlight) (int64, error)
}
