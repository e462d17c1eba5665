package usecase

import (
	"context"
	"fmt"

	"github.com/openfooty/roster-api/internal/domain/player"
	"github.com/openfooty/roster-api/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *TeamService) Create(ctx context.Context, item team.Team) (team.Team, error) {
	item.ID = 0
	item.IsActive = true
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *TeamService) GetByID(ctx context.Context, id int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, &NotFoundError{Resource: "Team"}
	}

	return item, nil
}

func (s *TeamService) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

// ListPlayersByTeam returns the players currently associated with a team.
// It intentionally does not re-filter by is_active; inactive players stay in
// the team's collection even though they are hidden from the flat list.
func (s *TeamService) ListPlayersByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, upd team.Update) (team.Team, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, err
	}

	upd.Apply(&item)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, found, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !found {
		return team.Team{}, &NotFoundError{Resource: "Team"}
	}

	return updated, nil
}

// SoftDelete marks a team inactive and returns its final state. The row is
// never removed; players of the team are not cascaded.
func (s *TeamService) SoftDelete(ctx context.Context, id int64) (team.Team, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, err
	}

	item.IsActive = false
	deleted, found, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("soft delete team: %w", err)
	}
	if !found {
		return team.Team{}, &NotFoundError{Resource: "Team"}
	}

	return deleted, nil
}
