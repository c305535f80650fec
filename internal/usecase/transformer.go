package usecase

import (
	"fmt"
	"time"

	"rewardfare-service/internal/domain"
	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/pkg/utils"
)

// RowContext carries the reference identifiers a raw price entry does not
// know about itself. The orchestrator resolves them once and threads them
// through every transform.
type RowContext struct {
	ProgramID  int64
	RouteID    int64
	CurrencyID int64
	FareID     int64
}

// Transformer maps raw per-day price entries into normalized rows.
// Field selection is strategy specific: market pricing carries the points
// value in basePoints, live pricing in totalPoints. Live rows are also
// stamped with the transform time for downstream staleness queries.
type Transformer struct {
	strategy entity.Strategy
	now      func() time.Time
}

// NewTransformer creates a transformer for the run's pricing strategy
func NewTransformer(strategy entity.Strategy) *Transformer {
	return &Transformer{
		strategy: strategy,
		now:      time.Now,
	}
}

// Transform builds one persistence row from a raw entry. A row is all or
// nothing: any missing or invalid field yields domain.ErrMalformedEntry,
// never a partial row, because a partial row would corrupt the natural key.
func (t *Transformer) Transform(day entity.PriceDay, rc RowContext) (entity.RewardFlight, error) {
	departureDate, err := utils.ParseAPIDate(day.DepartureDate)
	if err != nil {
		return entity.RewardFlight{}, fmt.Errorf("%w: %v", domain.ErrMalformedEntry, err)
	}

	points := day.BasePoints
	if t.strategy == entity.StrategyLive {
		points = day.TotalPoints
	}
	if points == nil {
		return entity.RewardFlight{}, fmt.Errorf("%w: entry for %s has no points value",
			domain.ErrMalformedEntry, day.DepartureDate)
	}
	if day.TotalTax == nil {
		return entity.RewardFlight{}, fmt.Errorf("%w: entry for %s has no totalTax",
			domain.ErrMalformedEntry, day.DepartureDate)
	}
	if *points < 0 || *day.TotalTax < 0 {
		return entity.RewardFlight{}, fmt.Errorf("%w: entry for %s has negative points or tax",
			domain.ErrMalformedEntry, day.DepartureDate)
	}

	row := entity.RewardFlight{
		Program:  rc.ProgramID,
		Route:    rc.RouteID,
		Points:   *points,
		Taxes:    *day.TotalTax,
		Currency: rc.CurrencyID,
		Date:     utils.ISODate(departureDate),
		Fare:     rc.FareID,
	}

	if t.strategy == entity.StrategyLive {
		capturedAt := t.now().UTC()
		row.UpdatedAt = &capturedAt
	}

	return row, nil
}
