package repository

import (
	"context"
	"errors"
	"fmt"

	"rewardfare-service/internal/domain"
	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormReferenceRepository implements the ReferenceRepository interface
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GORM reference data repository
func NewGormReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &GormReferenceRepository{
		db: db,
	}
}

// RewardPrograms GORM model for database mapping
type RewardPrograms struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;unique"`
}

// TableName overrides the default table name
func (RewardPrograms) TableName() string {
	return "reward_program"
}

// FareMappings GORM model for database mapping
type FareMappings struct {
	Program int64  `gorm:"column:program"`
	Fare    int64  `gorm:"column:fare"`
	Code    string `gorm:"column:code"`
}

// TableName overrides the default table name
func (FareMappings) TableName() string {
	return "fare_mapping"
}

// Routes GORM model for database mapping
type Routes struct {
	ID        int64 `gorm:"column:id;primaryKey"`
	Departing int64 `gorm:"column:departing"`
	Arriving  int64 `gorm:"column:arriving"`
}

// TableName overrides the default table name
func (Routes) TableName() string {
	return "route"
}

// Airports GORM model for database mapping
type Airports struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	Code    string `gorm:"column:code;unique"`
	Country int64  `gorm:"column:country"`
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airport"
}

// Countries GORM model for database mapping
type Countries struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Code string `gorm:"column:code;unique"`
}

// TableName overrides the default table name
func (Countries) TableName() string {
	return "country"
}

// Currencies GORM model for database mapping
type Currencies struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	Country int64 `gorm:"column:country"`
}

// TableName overrides the default table name
func (Currencies) TableName() string {
	return "currency"
}

// ProgramIDByName finds a reward program id by exact display name
func (r *GormReferenceRepository) ProgramIDByName(ctx context.Context, name string) (int64, error) {
	var program RewardPrograms
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&program)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: reward program %q", domain.ErrReferenceNotFound, name)
		}
		return 0, fmt.Errorf("query reward program %q: %w", name, result.Error)
	}
	return program.ID, nil
}

// FareMappings returns all fare code mappings for a program. An empty
// result is valid: a program with no fares configured yields no fetches.
func (r *GormReferenceRepository) FareMappings(ctx context.Context, programID int64) ([]entity.FareMapping, error) {
	var rows []FareMappings
	result := r.db.WithContext(ctx).Where("program = ?", programID).Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("query fare mappings for program %d: %w", programID, result.Error)
	}

	mappings := make([]entity.FareMapping, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, entity.FareMapping{
			Code:   row.Code,
			FareID: row.Fare,
		})
	}
	return mappings, nil
}

// routeRow carries the joined route + airport code projection
type routeRow struct {
	ID            int64
	DepartingCode string
	ArrivingCode  string
}

// RoutesByCountry returns all routes whose departing airport belongs to
// the given country
func (r *GormReferenceRepository) RoutesByCountry(ctx context.Context, countryCode string) ([]entity.Route, error) {
	var rows []routeRow
	result := r.db.WithContext(ctx).
		Table("route").
		Select("route.id AS id, dep.code AS departing_code, arr.code AS arriving_code").
		Joins("JOIN airport dep ON dep.id = route.departing").
		Joins("JOIN airport arr ON arr.id = route.arriving").
		Joins("JOIN country ON country.id = dep.country").
		Where("country.code = ?", countryCode).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("query routes for country %q: %w", countryCode, result.Error)
	}

	routes := make([]entity.Route, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, entity.Route{
			ID:            row.ID,
			DepartingCode: row.DepartingCode,
			ArrivingCode:  row.ArrivingCode,
		})
	}
	return routes, nil
}

// CurrencyIDByCountry finds the currency id for a country code
func (r *GormReferenceRepository) CurrencyIDByCountry(ctx context.Context, countryCode string) (int64, error) {
	var currency Currencies
	result := r.db.WithContext(ctx).
		Table("currency").
		Select("currency.id, currency.country").
		Joins("JOIN country ON country.id = currency.country").
		Where("country.code = ?", countryCode).
		Take(&currency)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: currency for country %q", domain.ErrReferenceNotFound, countryCode)
		}
		return 0, fmt.Errorf("query currency for country %q: %w", countryCode, result.Error)
	}
	return currency.ID, nil
}
