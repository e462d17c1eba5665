package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openfooty/roster-api/internal/domain/player"
	"github.com/openfooty/roster-api/internal/infrastructure/repository/memory"
	"github.com/openfooty/roster-api/internal/usecase"
)

func newPlayerService() *usecase.PlayerService {
	return usecase.NewPlayerService(memory.NewPlayerRepository())
}

func TestPlayerService_CreateAndGet(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validPlayer(1))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID == 0 || !created.IsActive {
		t.Fatalf("unexpected created player: %+v", created)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Lastname != "Ospina" {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestPlayerService_CreateInvalid(t *testing.T) {
	svc := newPlayerService()

	item := validPlayer(1)
	item.Lastname = "Re" // below the 5 character minimum
	_, err := svc.Create(context.Background(), item)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_GetMissing(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.GetByID(context.Background(), 7)
	var notFound *usecase.NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "Player" {
		t.Fatalf("expected Player not-found, got %v", err)
	}
}

func TestPlayerService_ListWithFilter(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPlayer(1)); err != nil {
		t.Fatalf("create player: %v", err)
	}
	second := validPlayer(1)
	second.Firstname = "James"
	second.Lastname = "Rodriguez"
	second.Position = "Midfielder"
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("create player: %v", err)
	}

	items, err := svc.List(ctx, player.Filter{Position: "Mid"})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 1 || items[0].Lastname != "Rodriguez" {
		t.Fatalf("unexpected filter result: %+v", items)
	}
}

func TestPlayerService_UpdatePartial(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validPlayer(1))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	dorsal := 25
	teamID := int64(2)
	updated, err := svc.Update(ctx, created.ID, player.Update{Dorsal: &dorsal, TeamID: &teamID})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if updated.Dorsal != 25 || updated.TeamID != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Lastname != created.Lastname {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestPlayerService_UpdateMissing(t *testing.T) {
	svc := newPlayerService()

	dorsal := 9
	_, err := svc.Update(context.Background(), 123, player.Update{Dorsal: &dorsal})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_SoftDelete(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validPlayer(1))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	deleted, err := svc.SoftDelete(ctx, created.ID)
	if err != nil {
		t.Fatalf("soft delete player: %v", err)
	}
	if deleted.IsActive {
		t.Fatal("deleted player must be inactive")
	}

	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
