package entity

import "time"

// RewardFlight is a normalized reward price row ready for persistence.
// (Program, Route, Date, Fare) is the natural key in the store; re-running
// the pipeline overwrites rows sharing that tuple.
type RewardFlight struct {
	Program  int64
	Route    int64
	Points   int64
	Taxes    int64
	Currency int64
	Date     string // YYYY-MM-DD
	Fare     int64
	// UpdatedAt is stamped at transform time by the live strategy only,
	// for downstream staleness queries. Nil for market rows.
	UpdatedAt *time.Time
}
