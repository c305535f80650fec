package repository

import (
	"context"

	"rewardfare-service/internal/domain/entity"
)

// PricingRepository defines the interface for the remote pricing calendar
type PricingRepository interface {
	// FetchCalendar retrieves the per-day price entries for one
	// (route, fare) pair. A failed fetch returns an empty slice together
	// with an error wrapping domain.ErrRemoteFetch; callers treat it as
	// "no data today" rather than aborting.
	FetchCalendar(ctx context.Context, departingCode, arrivingCode, fareCode string, window entity.DateWindow) ([]entity.PriceDay, error)
}
