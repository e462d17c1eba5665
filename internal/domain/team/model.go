package team

import "fmt"

// Team is a football club. Inactive teams are hidden from reads but kept in
// storage.
type Team struct {
	ID       int64
	Name     string
	Country  string
	City     string
	Stadium  string
	Color    string
	Coach    string
	IsActive bool
}

func (t Team) Validate() error {
	if err := requireMax("name", t.Name, 30); err != nil {
		return err
	}
	if err := requireMax("country", t.Country, 20); err != nil {
		return err
	}
	if err := requireMax("city", t.City, 20); err != nil {
		return err
	}
	if err := requireMax("stadium", t.Stadium, 30); err != nil {
		return err
	}
	if err := requireMax("color", t.Color, 20); err != nil {
		return err
	}
	if err := requireMax("coach", t.Coach, 30); err != nil {
		return err
	}

	return nil
}

func requireMax(field, value string, max int) error {
	if value == "" {
		return fmt.Errorf("team %s is required", field)
	}
	if len(value) > max {
		return fmt.Errorf("team %s exceeds %d characters", field, max)
	}
	return nil
}

// Update carries the fields of a partial update. Nil fields keep their
// stored values.
type Update struct {
	Name    *string
	Country *string
	City    *string
	Stadium *string
	Color   *string
	Coach   *string
}

// Apply merges the present fields into t.
func (u Update) Apply(t *Team) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Country != nil {
		t.Country = *u.Country
	}
	if u.City != nil {
		t.City = *u.City
	}
	if u.Stadium != nil {
		t.Stadium = *u.Stadium
	}
	if u.Color != nil {
		t.Color = *u.Color
	}
	if u.Coach != nil {
		t.Coach = *u.Coach
	}
}

// Filter restricts List to teams whose field contains the given substring.
// Empty values are ignored.
type Filter struct {
	Name    string
	Country string
	City    string
	Stadium string
	Color   string
	Coach   string
}
