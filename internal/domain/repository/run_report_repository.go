package repository

import (
	"context"

	"rewardfare-service/internal/domain/entity"
)

// RunReportRepository defines the interface for archiving run outcomes
type RunReportRepository interface {
	Save(ctx context.Context, report *entity.RunReport) error
}
