package entity

// PriceDay is a single per-day price entry from the pricing calendar API.
// Points fields are pointers because the two endpoint shapes differ:
// market pricing carries basePoints, live pricing carries totalPoints.
// A nil value means the field was absent from the response.
type PriceDay struct {
	DepartureDate string `json:"departureDate"` // ddmmyy
	BasePoints    *int64 `json:"basePoints"`
	TotalPoints   *int64 `json:"totalPoints"`
	TotalTax      *int64 `json:"totalTax"`
}

// Strategy selects which pricing calendar endpoint a run uses
type Strategy string

const (
	StrategyMarket Strategy = "market"
	StrategyLive   Strategy = "live"
)

// DateWindow bounds a calendar search in the API's ddmmyy encoding.
// End is set only for the live strategy; market pricing determines its
// own horizon.
type DateWindow struct {
	Start string
	End   string
}
