package usecase

import (
	"errors"
	"testing"
	"time"

	"rewardfare-service/internal/domain"
	"rewardfare-service/internal/domain/entity"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTransform_MarketStrategy(t *testing.T) {
	tr := NewTransformer(entity.StrategyMarket)

	day := entity.PriceDay{
		DepartureDate: "150326",
		BasePoints:    int64Ptr(12000),
		TotalTax:      int64Ptr(55),
	}
	rc := RowContext{ProgramID: 1, RouteID: 7, CurrencyID: 41, FareID: 3}

	row, err := tr.Transform(day, rc)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	want := entity.RewardFlight{
		Program: 1, Route: 7, Points: 12000, Taxes: 55,
		Currency: 41, Date: "2026-03-15", Fare: 3,
	}
	if row != want {
		t.Errorf("Transform = %+v, want %+v", row, want)
	}
	if row.UpdatedAt != nil {
		t.Errorf("market row should not carry a capture timestamp, got %v", row.UpdatedAt)
	}
}

func TestTransform_LiveStrategy(t *testing.T) {
	fixed := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	tr := NewTransformer(entity.StrategyLive)
	tr.now = func() time.Time { return fixed }

	day := entity.PriceDay{
		DepartureDate: "010126",
		BasePoints:    int64Ptr(8000),
		TotalPoints:   int64Ptr(9400),
		TotalTax:      int64Ptr(30),
	}
	rc := RowContext{ProgramID: 2, RouteID: 9, CurrencyID: 41, FareID: 5}

	row, err := tr.Transform(day, rc)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if row.Points != 9400 {
		t.Errorf("live strategy must read totalPoints, got points=%d", row.Points)
	}
	if row.Date != "2026-01-01" {
		t.Errorf("date = %q, want 2026-01-01", row.Date)
	}
	if row.UpdatedAt == nil || !row.UpdatedAt.Equal(fixed) {
		t.Errorf("capture timestamp = %v, want %v", row.UpdatedAt, fixed)
	}
}

func TestTransform_MalformedEntries(t *testing.T) {
	cases := []struct {
		name     string
		strategy entity.Strategy
		day      entity.PriceDay
	}{
		{
			name:     "unparseable date",
			strategy: entity.StrategyMarket,
			day:      entity.PriceDay{DepartureDate: "2026-03-15", BasePoints: int64Ptr(1), TotalTax: int64Ptr(1)},
		},
		{
			name:     "missing base points for market",
			strategy: entity.StrategyMarket,
			day:      entity.PriceDay{DepartureDate: "150326", TotalPoints: int64Ptr(1), TotalTax: int64Ptr(1)},
		},
		{
			name:     "missing total points for live",
			strategy: entity.StrategyLive,
			day:      entity.PriceDay{DepartureDate: "150326", BasePoints: int64Ptr(1), TotalTax: int64Ptr(1)},
		},
		{
			name:     "missing tax",
			strategy: entity.StrategyMarket,
			day:      entity.PriceDay{DepartureDate: "150326", BasePoints: int64Ptr(1)},
		},
		{
			name:     "negative points",
			strategy: entity.StrategyMarket,
			day:      entity.PriceDay{DepartureDate: "150326", BasePoints: int64Ptr(-1), TotalTax: int64Ptr(1)},
		},
		{
			name:     "negative tax",
			strategy: entity.StrategyMarket,
			day:      entity.PriceDay{DepartureDate: "150326", BasePoints: int64Ptr(1), TotalTax: int64Ptr(-5)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransformer(tc.strategy)
			if _, err := tr.Transform(tc.day, RowContext{}); !errors.Is(err, domain.ErrMalformedEntry) {
				t.Errorf("Transform = %v, want ErrMalformedEntry", err)
			}
		})
	}
}
