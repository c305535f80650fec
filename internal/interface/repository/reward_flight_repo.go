package repository

import (
	"context"
	"fmt"
	"time"

	"rewardfare-service/internal/domain"
	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRewardFlightRepository implements the RewardFlightRepository interface
type GormRewardFlightRepository struct {
	db *gorm.DB
}

// NewGormRewardFlightRepository creates a new GORM reward flight repository
func NewGormRewardFlightRepository(db *gorm.DB) repository.RewardFlightRepository {
	return &GormRewardFlightRepository{
		db: db,
	}
}

// RewardFlights GORM model for database mapping. The composite unique
// index is the conflict target for upserts; CapturedAt keeps gorm's
// UpdatedAt auto-tracking out of the updated_at column.
type RewardFlights struct {
	Program    int64      `gorm:"column:program;uniqueIndex:idx_reward_flight_key"`
	Route      int64      `gorm:"column:route;uniqueIndex:idx_reward_flight_key"`
	Date       string     `gorm:"column:date;uniqueIndex:idx_reward_flight_key"`
	Fare       int64      `gorm:"column:fare;uniqueIndex:idx_reward_flight_key"`
	Points     int64      `gorm:"column:points"`
	Taxes      int64      `gorm:"column:taxes"`
	Currency   int64      `gorm:"column:currency"`
	CapturedAt *time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name
func (RewardFlights) TableName() string {
	return "reward_flight"
}

// UpsertBatch writes the batch in a single statement. Rows whose
// (program, route, date, fare) tuple already exists are overwritten;
// new tuples are inserted.
func (r *GormRewardFlightRepository) UpsertBatch(ctx context.Context, rows []entity.RewardFlight) (int64, error) {
	models := make([]RewardFlights, 0, len(rows))
	for _, row := range rows {
		models = append(models, RewardFlights{
			Program:    row.Program,
			Route:      row.Route,
			Date:       row.Date,
			Fare:       row.Fare,
			Points:     row.Points,
			Taxes:      row.Taxes,
			Currency:   row.Currency,
			CapturedAt: row.UpdatedAt,
		})
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "program"},
			{Name: "route"},
			{Name: "date"},
			{Name: "fare"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"points", "taxes", "currency", "updated_at"}),
	}).Create(&models)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: upsert %d reward flight rows: %v",
			domain.ErrPersistence, len(rows), result.Error)
	}

	return result.RowsAffected, nil
}
