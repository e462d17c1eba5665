package postgres

import (
	"time"

	"github.com/openfooty/roster-api/internal/domain/player"
)

type playerTableModel struct {
	ID          int64     `db:"id"`
	Firstname   string    `db:"firstname"`
	Lastname    string    `db:"lastname"`
	Birthdate   time.Time `db:"birthdate"`
	Height      float64   `db:"height"`
	Nationality string    `db:"nationality"`
	Position    string    `db:"position"`
	Dorsal      int       `db:"dorsal"`
	TeamID      int64     `db:"team_id"`
	IsActive    bool      `db:"is_active"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		Firstname:   m.Firstname,
		Lastname:    m.Lastname,
		Birthdate:   m.Birthdate,
		Height:      m.Height,
		Nationality: m.Nationality,
		Position:    m.Position,
		Dorsal:      m.Dorsal,
		TeamID:      m.TeamID,
		IsActive:    m.IsActive,
	}
}
