package player

import (
	"fmt"
	"time"
)

// Player is a squad member of a team. Every player belongs to exactly one
// team through TeamID.
type Player struct {
	ID          int64
	Firstname   string
	Lastname    string
	Birthdate   time.Time
	Height      float64
	Nationality string
	Position    string
	Dorsal      int
	TeamID      int64
	IsActive    bool
}

func (p Player) Validate() error {
	if len(p.Firstname) < 2 || len(p.Firstname) > 30 {
		return fmt.Errorf("player firstname must be 2 to 30 characters")
	}
	if len(p.Lastname) < 5 || len(p.Lastname) > 30 {
		return fmt.Errorf("player lastname must be 5 to 30 characters")
	}
	if p.Birthdate.IsZero() {
		return fmt.Errorf("player birthdate is required")
	}
	if p.Height <= 0 {
		return fmt.Errorf("player height must be greater than zero")
	}
	if p.Nationality == "" || len(p.Nationality) > 30 {
		return fmt.Errorf("player nationality must be 1 to 30 characters")
	}
	if p.Position == "" || len(p.Position) > 20 {
		return fmt.Errorf("player position must be 1 to 20 characters")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}

// Update carries the fields of a partial update. Nil fields keep their
// stored values.
type Update struct {
	Firstname   *string
	Lastname    *string
	Birthdate   *time.Time
	Height      *float64
	Nationality *string
	Position    *string
	Dorsal      *int
	TeamID      *int64
}

// Apply merges the present fields into p.
func (u Update) Apply(p *Player) {
	if u.Firstname != nil {
		p.Firstname = *u.Firstname
	}
	if u.Lastname != nil {
		p.Lastname = *u.Lastname
	}
	if u.Birthdate != nil {
		p.Birthdate = *u.Birthdate
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Nationality != nil {
		p.Nationality = *u.Nationality
	}
	if u.Position != nil {
		p.Position = *u.Position
	}
	if u.Dorsal != nil {
		p.Dorsal = *u.Dorsal
	}
	if u.TeamID != nil {
		p.TeamID = *u.TeamID
	}
}

// Filter restricts List to players whose field contains the given substring.
// Only text fields are filterable; numeric fields are not.
type Filter struct {
	Firstname   string
	Lastname    string
	Nationality string
	Position    string
}
