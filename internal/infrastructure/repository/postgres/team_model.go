package postgres

import "github.com/openfooty/roster-api/internal/domain/team"

type teamTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Country  string `db:"country"`
	City     string `db:"city"`
	Stadium  string `db:"stadium"`
	Color    string `db:"color"`
	Coach    string `db:"coach"`
	IsActive bool   `db:"is_active"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:       m.ID,
		Name:     m.Name,
		Country:  m.Country,
		City:     m.City,
		Stadium:  m.Stadium,
		Color:    m.Color,
		Coach:    m.Coach,
		IsActive: m.IsActive,
	}
}
