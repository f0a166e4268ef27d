package repository

import (
	"context"
	"strconv"
	"testing"

	"wealth-objective/domain"
)

func TestProjectionRepositoryMemory_RecentNewestFirst(t *testing.T) {
	repo := NewProjectionRepositoryMemory(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, domain.ProjectionRecord{ID: strconv.Itoa(i)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	want := []string{"4", "3", "2"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("record %d: expected id %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestProjectionRepositoryMemory_Limit(t *testing.T) {
	repo := NewProjectionRepositoryMemory(0)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_ = repo.Save(ctx, domain.ProjectionRecord{ID: strconv.Itoa(i)})
	}

	got, _ := repo.Recent(ctx, 2)
	if len(got) != 2 || got[0].ID != "3" {
		t.Errorf("unexpected records: %+v", got)
	}
}
