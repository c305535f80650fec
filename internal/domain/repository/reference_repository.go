package repository

import (
	"context"

	"rewardfare-service/internal/domain/entity"
)

// ReferenceRepository defines the interface for reference data lookups.
// All operations are read-only; fare mappings require the program id first,
// the remaining lookups are independent of each other.
type ReferenceRepository interface {
	ProgramIDByName(ctx context.Context, name string) (int64, error)
	FareMappings(ctx context.Context, programID int64) ([]entity.FareMapping, error)
	RoutesByCountry(ctx context.Context, countryCode string) ([]entity.Route, error)
	CurrencyIDByCountry(ctx context.Context, countryCode string) (int64, error)
}
