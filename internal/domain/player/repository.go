package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) (Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	List(ctx context.Context, filter Filter) ([]Player, error)
	// ListByTeam returns every player of a team, inactive ones included.
	// The team collection read is the one path that keeps inactive rows.
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	// Update persists every mutable field of an active player, including
	// is_active, and returns the stored row. The bool is false when no
	// active player with that id exists.
	Update(ctx context.Context, item Player) (Player, bool, error)
}
