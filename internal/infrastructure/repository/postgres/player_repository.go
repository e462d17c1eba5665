package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/openfooty/roster-api/internal/domain/player"
	qb "github.com/openfooty/roster-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"firstname",
	"lastname",
	"birthdate",
	"height",
	"nationality",
	"position",
	"dorsal",
	"team_id",
	"is_active",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("firstname", "lastname", "birthdate", "height", "nationality", "position", "dorsal", "team_id", "is_active").
		Values(item.Firstname, item.Lastname, item.Birthdate, item.Height, item.Nationality, item.Position, item.Dorsal, item.TeamID, item.IsActive).
		Suffix("RETURNING " + playerColumnList()).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return row.toDomain(), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("id", id),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	conditions := []qb.Condition{qb.Eq("is_active", true)}
	for _, pair := range []struct {
		column string
		value  string
	}{
		{"firstname", filter.Firstname},
		{"lastname", filter.Lastname},
		{"nationality", filter.Nationality},
		{"position", filter.Position},
	} {
		if pair.value == "" {
			continue
		}
		conditions = append(conditions, qb.Contains(pair.column, pair.value))
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	// No is_active condition; this path returns the team's full collection.
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, bool, error) {
	query, args, err := qb.Update("players").
		Set("firstname", item.Firstname).
		Set("lastname", item.Lastname).
		Set("birthdate", item.Birthdate).
		Set("height", item.Height).
		Set("nationality", item.Nationality).
		Set("position", item.Position).
		Set("dorsal", item.Dorsal).
		Set("team_id", item.TeamID).
		Set("is_active", item.IsActive).
		Where(
			qb.Eq("id", item.ID),
			qb.Eq("is_active", true),
		).
		Suffix("RETURNING " + playerColumnList()).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func playerColumnList() string {
	return joinColumns(playerSelectColumns)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
