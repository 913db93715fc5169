package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ksliga/league-api/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) ListByChampionship(_ context.Context, championshipID int64) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.store.teams {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.nameTakenLocked(item) {
		return team.Team{}, fmt.Errorf("create team %q: %w", item.Name, team.ErrDuplicateName)
	}
	item.ID = r.store.nextID()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.store.now().UTC()
	}
	r.store.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.teams[item.ID]
	if !ok {
		return fmt.Errorf("team=%d not found", item.ID)
	}
	if r.nameTakenLocked(item) {
		return fmt.Errorf("update team %q: %w", item.Name, team.ErrDuplicateName)
	}
	item.ChampionshipID = existing.ChampionshipID
	item.CreatedAt = existing.CreatedAt
	r.store.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.teams, teamID)
	return nil
}

func (r *TeamRepository) nameTakenLocked(item team.Team) bool {
	for _, existing := range r.store.teams {
		if existing.ID != item.ID &&
			existing.ChampionshipID == item.ChampionshipID &&
			strings.EqualFold(existing.Name, item.Name) {
			return true
		}
	}
	return false
}
