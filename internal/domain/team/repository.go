package team

import "context"

// Repository describes team persistence needs from use cases. Reads and
// updates only see active teams.
type Repository interface {
	Create(ctx context.Context, item Team) (Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	List(ctx context.Context, filter Filter) ([]Team, error)
	// Update persists every mutable field of an active team, including
	// is_active, and returns the stored row. The bool is false when no
	// active team with that id exists.
	Update(ctx context.Context, item Team) (Team, bool, error)
}
