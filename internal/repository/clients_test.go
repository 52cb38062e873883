package repository_test

import (
	"context"
	"testing"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
	"github.com/kylerishisaki/APEXDashboard/internal/testutil"
)

func TestClientRepository_CreateAndFindByID(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	client := models.Client{
		Name:      "Jane Doe",
		Title:     "Olympic Hopeful",
		StartDate: "2026-01-07",
	}

	created, err := repo.Create(ctx, client)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected non-empty ID")
	}
	if created.ShareToken == "" {
		t.Fatal("expected a generated share token")
	}
	if created.Phase != 1 {
		t.Errorf("expected default phase 1, got %d", created.Phase)
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("finding client: %v", err)
	}
	if found.Name != "Jane Doe" {
		t.Errorf("expected name 'Jane Doe', got '%s'", found.Name)
	}
	if found.StartDate != "2026-01-07" {
		t.Errorf("expected start date '2026-01-07', got '%s'", found.StartDate)
	}
}

func TestClientRepository_FindByShareToken(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.Client{Name: "Jane Doe"})

	found, err := repo.FindByShareToken(ctx, created.ShareToken)
	if err != nil {
		t.Fatalf("finding client by share token: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected client %s, got %s", created.ID, found.ID)
	}

	if _, err := repo.FindByShareToken(ctx, "not-a-token"); err == nil {
		t.Error("expected error for unknown share token")
	}
}

func TestClientRepository_TokensAreUnique(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	first, _ := repo.Create(ctx, models.Client{Name: "A"})
	second, _ := repo.Create(ctx, models.Client{Name: "B"})
	if first.ShareToken == second.ShareToken {
		t.Error("two clients received the same share token")
	}
}

func TestClientRepository_Update(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.Client{Name: "Jane Doe", Phase: 1})

	created.Phase = 2
	created.CoachNote = "Pushing into the build block."
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("updating client: %v", err)
	}

	found, _ := repo.FindByID(ctx, created.ID)
	if found.Phase != 2 {
		t.Errorf("expected phase 2, got %d", found.Phase)
	}
	if found.CoachNote != "Pushing into the build block." {
		t.Errorf("coach note not persisted, got '%s'", found.CoachNote)
	}
	// The share token survives updates, or every shared link breaks.
	if found.ShareToken != created.ShareToken {
		t.Error("share token changed on update")
	}
}

func TestClientRepository_Delete(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.Client{Name: "Jane Doe"})

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("deleting client: %v", err)
	}
	if _, err := repo.FindByID(ctx, created.ID); err == nil {
		t.Error("expected error finding deleted client")
	}
}

func TestClientRepository_FindAll(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	repo.Create(ctx, models.Client{Name: "A"})
	repo.Create(ctx, models.Client{Name: "B"})

	clients, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("finding clients: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
}
