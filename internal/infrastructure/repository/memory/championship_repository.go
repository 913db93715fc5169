package memory

import (
	"context"
	"fmt"

	"github.com/ksliga/league-api/internal/domain/championship"
)

type ChampionshipRepository struct {
	store *Store
}

func (r *ChampionshipRepository) List(_ context.Context) ([]championship.Championship, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]championship.Championship, 0, len(r.store.championships))
	for _, item := range r.store.championships {
		out = append(out, item)
	}
	return out, nil
}

func (r *ChampionshipRepository) GetByID(_ context.Context, id int64) (championship.Championship, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.championships[id]
	return item, ok, nil
}

func (r *ChampionshipRepository) GetActive(_ context.Context) (championship.Championship, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.championships {
		if item.IsActive {
			return item, true, nil
		}
	}
	return championship.Championship{}, false, nil
}

func (r *ChampionshipRepository) Create(_ context.Context, item championship.Championship) (championship.Championship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.store.now().UTC()
	}
	if item.IsActive {
		r.clearActiveLocked()
	}
	r.store.championships[item.ID] = item
	return item, nil
}

func (r *ChampionshipRepository) Update(_ context.Context, item championship.Championship) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.championships[item.ID]
	if !ok {
		return fmt.Errorf("championship=%d not found", item.ID)
	}
	item.CreatedAt = existing.CreatedAt
	if item.IsActive {
		r.clearActiveLocked()
	}
	r.store.championships[item.ID] = item
	return nil
}

func (r *ChampionshipRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.championships, id)
	for teamID, item := range r.store.teams {
		if item.ChampionshipID == id {
			delete(r.store.teams, teamID)
		}
	}
	for playerID, item := range r.store.players {
		if item.ChampionshipID == id {
			delete(r.store.players, playerID)
		}
	}
	for matchID, item := range r.store.matches {
		if item.ChampionshipID == id {
			r.store.deleteMatchLocked(matchID)
		}
	}
	return nil
}

func (r *ChampionshipRepository) clearActiveLocked() {
	for id, item := range r.store.championships {
		if item.IsActive {
			item.IsActive = false
			r.store.championships[id] = item
		}
	}
}
