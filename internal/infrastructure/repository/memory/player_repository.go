package memory

import (
	"context"
	"fmt"

	"github.com/ksliga/league-api/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) ListByChampionship(_ context.Context, championshipID int64) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.store.players {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	player.SortScorers(out)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.store.now().UTC()
	}
	r.store.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.players[item.ID]
	if !ok {
		return fmt.Errorf("player=%d not found", item.ID)
	}
	item.ChampionshipID = existing.ChampionshipID
	item.CreatedAt = existing.CreatedAt
	r.store.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.players, playerID)
	return nil
}
