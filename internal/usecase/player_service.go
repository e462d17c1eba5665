package usecase

import (
	"context"
	"fmt"

	"github.com/openfooty/roster-api/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	item.ID = 0
	item.IsActive = true
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, &NotFoundError{Resource: "Player"}
	}

	return item, nil
}

func (s *PlayerService) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Update(ctx context.Context, id int64, upd player.Update) (player.Player, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	upd.Apply(&item)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, found, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !found {
		return player.Player{}, &NotFoundError{Resource: "Player"}
	}

	return updated, nil
}

// SoftDelete marks a player inactive and returns its final state.
func (s *PlayerService) SoftDelete(ctx context.Context, id int64) (player.Player, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	item.IsActive = false
	deleted, found, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("soft delete player: %w", err)
	}
	if !found {
		return player.Player{}, &NotFoundError{Resource: "Player"}
	}

	return deleted, nil
}
