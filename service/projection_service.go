package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wealth-objective/domain"
	"wealth-objective/projection"
	"wealth-objective/repository"
)

type ProjectionService struct {
	repo   repository.ProjectionRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewProjectionService creates a new ProjectionService with the given repository.
func NewProjectionService(repo repository.ProjectionRepository, logger *zap.Logger) *ProjectionService {
	return &ProjectionService{repo: repo, logger: logger, now: time.Now}
}

// Project runs the projection engine and records the result in the history.
func (s *ProjectionService) Project(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {

	if err := CheckHorizon(input.HorizonPeriods); err != nil {
		return domain.ProjectionResult{}, err
	}

	result, err := projection.Project(input)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	record := domain.ProjectionRecord{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Input:     input,
		Result:    result,
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save projection", zap.String("id", record.ID), zap.Error(err))
	}

	s.logger.Debug("projection computed",
		zap.String("id", record.ID),
		zap.Int("periods", input.HorizonPeriods),
		zap.Stringer("final_balance", result.FinalBalance()),
	)
	return result, nil
}

// History returns the most recent projections, newest first.
func (s *ProjectionService) History(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(ctx, limit)
}

// CheckHorizon rejects horizons above MaxHorizonPeriods.
func CheckHorizon(periods int) error {
	if periods > MaxHorizonPeriods {
		return projection.NewInvalidInput(projection.ConstraintHorizon,
			"horizonte excede el máximo permitido de %d periodos", MaxHorizonPeriods)
	}
	return nil
}
