package entity

import "time"

// RunReport is the per-run outcome document archived after each pipeline
// pass. It is operational history only; the relational store never sees it.
type RunReport struct {
	ID             string    `bson:"_id,omitempty"`
	Strategy       string    `bson:"strategy"`
	Program        string    `bson:"program"`
	StartedAt      time.Time `bson:"startedAt"`
	FinishedAt     time.Time `bson:"finishedAt"`
	RoutesTotal    int       `bson:"routesTotal"`
	RoutesUploaded int       `bson:"routesUploaded"`
	RoutesFailed   int       `bson:"routesFailed"`
	FetchCalls     int       `bson:"fetchCalls"`
	FetchFailures  int       `bson:"fetchFailures"`
	RowsUpserted   int64     `bson:"rowsUpserted"`
	EntriesSkipped int       `bson:"entriesSkipped"`
	Status         string    `bson:"status"`
}
