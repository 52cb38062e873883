package repository_test

import (
	"context"
	"testing"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/testutil"
)

func TestWeeklyPointsRepository_UpsertAndFind(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewWeeklyPointsRepository(db)
	clients := repository.NewClientRepository(db)
	ctx := context.Background()

	client, _ := clients.Create(ctx, models.Client{Name: "Jane Doe"})

	records := []models.WeeklyPointRecord{
		{Week: "2026-W06", Label: "Feb 2 – Feb 8", Move: 8},
		{Week: "2026-W05", Label: "Jan 26 – Feb 1", Move: 10, Recover: 5, Connect: 2, Breathe: 1},
	}
	if err := repo.Upsert(ctx, client.ID, records); err != nil {
		t.Fatalf("upserting points: %v", err)
	}

	found, err := repo.FindByClient(ctx, client.ID)
	if err != nil {
		t.Fatalf("finding points: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 records, got %d", len(found))
	}
	// Ordered by week regardless of insert order.
	if found[0].Week != "2026-W05" || found[1].Week != "2026-W06" {
		t.Errorf("unexpected order: %s, %s", found[0].Week, found[1].Week)
	}
	if found[0].Move != 10 || found[0].Breathe != 1 {
		t.Errorf("pillar totals not persisted: %+v", found[0])
	}
}

func TestWeeklyPointsRepository_UpsertReplacesWeek(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewWeeklyPointsRepository(db)
	clients := repository.NewClientRepository(db)
	ctx := context.Background()

	client, _ := clients.Create(ctx, models.Client{Name: "Jane Doe"})

	repo.Upsert(ctx, client.ID, []models.WeeklyPointRecord{
		{Week: "2026-W05", Label: "Jan 26 – Feb 1", Move: 10},
	})
	if err := repo.Upsert(ctx, client.ID, []models.WeeklyPointRecord{
		{Week: "2026-W05", Label: "Jan 26 – Feb 1", Move: 12, Fuel: 3},
	}); err != nil {
		t.Fatalf("re-upserting week: %v", err)
	}

	found, _ := repo.FindByClient(ctx, client.ID)
	if len(found) != 1 {
		t.Fatalf("expected 1 record after re-upsert, got %d", len(found))
	}
	if found[0].Move != 12 || found[0].Fuel != 3 {
		t.Errorf("re-upsert did not replace totals: %+v", found[0])
	}
}

func TestWeeklyPointsRepository_ScopedByClient(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewWeeklyPointsRepository(db)
	clients := repository.NewClientRepository(db)
	ctx := context.Background()

	first, _ := clients.Create(ctx, models.Client{Name: "A"})
	second, _ := clients.Create(ctx, models.Client{Name: "B"})

	repo.Upsert(ctx, first.ID, []models.WeeklyPointRecord{{Week: "2026-W05", Move: 10}})
	repo.Upsert(ctx, second.ID, []models.WeeklyPointRecord{{Week: "2026-W05", Move: 99}})

	found, _ := repo.FindByClient(ctx, first.ID)
	if len(found) != 1 || found[0].Move != 10 {
		t.Errorf("client scoping leaked: %+v", found)
	}
}

func TestWeeklyPointsRepository_Delete(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewWeeklyPointsRepository(db)
	clients := repository.NewClientRepository(db)
	ctx := context.Background()

	client, _ := clients.Create(ctx, models.Client{Name: "Jane Doe"})
	repo.Upsert(ctx, client.ID, []models.WeeklyPointRecord{
		{Week: "2026-W05", Move: 10},
		{Week: "2026-W06", Move: 8},
	})

	if err := repo.Delete(ctx, client.ID, "2026-W05"); err != nil {
		t.Fatalf("deleting week: %v", err)
	}
	found, _ := repo.FindByClient(ctx, client.ID)
	if len(found) != 1 || found[0].Week != "2026-W06" {
		t.Errorf("expected only 2026-W06 to remain, got %+v", found)
	}
}
