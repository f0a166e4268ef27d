package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"wealth-objective/domain"
	"wealth-objective/projection"
)

type MockProjectionRepository struct {
	SaveCalled bool
	ForceError bool
	Saved      []domain.ProjectionRecord
	LastLimit  int
}

func (m *MockProjectionRepository) Save(
	_ context.Context,
	record domain.ProjectionRecord,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockProjectionRepository) Recent(_ context.Context, limit int) ([]domain.ProjectionRecord, error) {
	m.LastLimit = limit
	return m.Saved, nil
}

func validInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		Principal:            decimal.NewFromInt(1000),
		PeriodicContribution: decimal.NewFromInt(100),
		PeriodicRate:         decimal.RequireFromString("0.01"),
		HorizonPeriods:       3,
	}
}

func TestProject_SavesRecord(t *testing.T) {

	mockRepo := &MockProjectionRepository{}
	service := NewProjectionService(mockRepo, zap.NewNop())

	result, err := service.Project(context.Background(), validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := result.FinalBalance().StringFixed(2); got != "1333.31" {
		t.Errorf("expected 1333.31, got %s", got)
	}

	if !mockRepo.SaveCalled || len(mockRepo.Saved) != 1 {
		t.Fatalf("expected repository Save to be called once")
	}
	if mockRepo.Saved[0].ID == "" {
		t.Errorf("expected record id")
	}
}

func TestProject_SaveFailureIsNotFatal(t *testing.T) {

	core, logs := observer.New(zapcore.WarnLevel)
	mockRepo := &MockProjectionRepository{ForceError: true}
	service := NewProjectionService(mockRepo, zap.New(core))

	_, err := service.Project(context.Background(), validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.FilterMessage("failed to save projection").Len() != 1 {
		t.Errorf("expected a warning about the failed save")
	}
}

func TestProject_InvalidInputNotSaved(t *testing.T) {

	mockRepo := &MockProjectionRepository{}
	service := NewProjectionService(mockRepo, zap.NewNop())

	input := validInput()
	input.PeriodicRate = decimal.RequireFromString("-1.5")

	_, err := service.Project(context.Background(), input)

	if !errors.Is(err, projection.ErrInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestProject_HorizonLimit(t *testing.T) {

	service := NewProjectionService(&MockProjectionRepository{}, zap.NewNop())

	input := validInput()
	input.HorizonPeriods = MaxHorizonPeriods + 1

	_, err := service.Project(context.Background(), input)

	var iie *projection.InvalidInputError
	if !errors.As(err, &iie) || iie.Constraint != projection.ConstraintHorizon {
		t.Errorf("expected horizon error, got %v", err)
	}
}

func TestHistory_ClampsLimit(t *testing.T) {

	mockRepo := &MockProjectionRepository{}
	service := NewProjectionService(mockRepo, zap.NewNop())

	_, _ = service.History(context.Background(), 0)
	if mockRepo.LastLimit != DefaultHistoryLimit {
		t.Errorf("expected default limit %d, got %d", DefaultHistoryLimit, mockRepo.LastLimit)
	}

	_, _ = service.History(context.Background(), 10_000)
	if mockRepo.LastLimit != MaxHistoryLimit {
		t.Errorf("expected max limit %d, got %d", MaxHistoryLimit, mockRepo.LastLimit)
	}
}
