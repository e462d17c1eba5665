package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/openfooty/roster-api/internal/domain/team"
	qb "github.com/openfooty/roster-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"id",
	"name",
	"country",
	"city",
	"stadium",
	"color",
	"coach",
	"is_active",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("name", "country", "city", "stadium", "color", "coach", "is_active").
		Values(item.Name, item.Country, item.City, item.Stadium, item.Color, item.Coach, item.IsActive).
		Suffix("RETURNING " + teamColumnList()).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return row.toDomain(), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(
			qb.Eq("id", id),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	conditions := []qb.Condition{qb.Eq("is_active", true)}
	for _, pair := range []struct {
		column string
		value  string
	}{
		{"name", filter.Name},
		{"country", filter.Country},
		{"city", filter.City},
		{"stadium", filter.Stadium},
		{"color", filter.Color},
		{"coach", filter.Coach},
	} {
		if pair.value == "" {
			continue
		}
		conditions = append(conditions, qb.Contains(pair.column, pair.value))
	}

	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, bool, error) {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("country", item.Country).
		Set("city", item.City).
		Set("stadium", item.Stadium).
		Set("color", item.Color).
		Set("coach", item.Coach).
		Set("is_active", item.IsActive).
		Where(
			qb.Eq("id", item.ID),
			qb.Eq("is_active", true),
		).
		Suffix("RETURNING " + teamColumnList()).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("update team: %w", err)
	}

	return row.toDomain(), true, nil
}

func teamColumnList() string {
	return joinColumns(teamSelectColumns)
}
