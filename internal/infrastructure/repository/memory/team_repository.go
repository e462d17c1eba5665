package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/openfooty/roster-api/internal/domain/team"
)

// TeamRepository is an in-memory team.Repository used by tests.
type TeamRepository struct {
	mu     sync.RWMutex
	items  map[int64]team.Team
	nextID int64
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		items:  make(map[int64]team.Team),
		nextID: 1,
	}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || !item.IsActive {
		return team.Team{}, false, nil
	}

	return item, true, nil
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, item := range r.items {
		if !item.IsActive {
			continue
		}
		if !matchesTeamFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok || !stored.IsActive {
		return team.Team{}, false, nil
	}
	r.items[item.ID] = item

	return item, true, nil
}

func matchesTeamFilter(item team.Team, filter team.Filter) bool {
	pairs := []struct {
		value  string
		needle string
	}{
		{item.Name, filter.Name},
		{item.Country, filter.Country},
		{item.City, filter.City},
		{item.Stadium, filter.Stadium},
		{item.Color, filter.Color},
		{item.Coach, filter.Coach},
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
