package repository

import (
	"context"

	"wealth-objective/domain"
)

// ProjectionRepository keeps the most recent projections, newest first.
type ProjectionRepository interface {
	Save(ctx context.Context, record domain.ProjectionRecord) error
	Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error)
}
