package repository

import (
	"context"
	"sync"

	"wealth-objective/domain"
)

// ProjectionRepositoryMemory is an in-memory implementation of ProjectionRepository.
type ProjectionRepositoryMemory struct {
	mu      sync.Mutex
	maxSize int
	data    []domain.ProjectionRecord
}

// NewProjectionRepositoryMemory creates an in-memory repository holding at most maxSize records.
func NewProjectionRepositoryMemory(maxSize int) *ProjectionRepositoryMemory {
	return &ProjectionRepositoryMemory{
		maxSize: maxSize,
		data:    []domain.ProjectionRecord{},
	}
}

// Save stores the record, dropping the oldest one when full.
func (r *ProjectionRepositoryMemory) Save(
	_ context.Context,
	record domain.ProjectionRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if r.maxSize > 0 && len(r.data) > r.maxSize {
		r.data = r.data[len(r.data)-r.maxSize:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *ProjectionRepositoryMemory) Recent(
	_ context.Context,
	limit int,
) ([]domain.ProjectionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.ProjectionRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
