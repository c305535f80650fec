package entity

// Route is a directed departure/arrival airport pair tracked for pricing
type Route struct {
	ID            int64
	DepartingCode string
	ArrivingCode  string
}

// RewardProgram is the frequent-flyer program points are denominated in
type RewardProgram struct {
	ID   int64
	Name string
}

// FareMapping translates the airline's own fare-class code, used in
// calendar requests, into the internal fare identifier stored on rows
type FareMapping struct {
	Code   string
	FareID int64
}

// Currency identifies the currency taxes are denominated in for a country
type Currency struct {
	ID          int64
	CountryCode string
}
