package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/openfooty/roster-api/internal/domain/player"
)

// PlayerRepository is an in-memory player.Repository used by tests.
type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	nextID int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		items:  make(map[int64]player.Player),
		nextID: 1,
	}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || !item.IsActive {
		return player.Player{}, false, nil
	}

	return item, true, nil
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		if !item.IsActive {
			continue
		}
		if !matchesPlayerFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// No is_active filter here on purpose; see player.Repository.
	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok || !stored.IsActive {
		return player.Player{}, false, nil
	}
	r.items[item.ID] = item

	return item, true, nil
}

func matchesPlayerFilter(item player.Player, filter player.Filter) bool {
	pairs := []struct {
		value  string
		needle string
	}{
		{item.Firstname, filter.Firstname},
		{item.Lastname, filter.Lastname},
		{item.Nationality, filter.Nationality},
		{item.Position, filter.Position},
	}
	for _, pair := range pairs {
		if pair.needle == "" {
			continue
		}
		if !strings.Contains(pair.value, pair.needle) {
			return false
		}
	}

	return true
}
