package memory

import (
	"context"
	"fmt"

	"github.com/ksliga/league-api/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) ListByChampionship(_ context.Context, championshipID int64) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.store.matches {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	match.SortSchedule(out)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.championships[item.ChampionshipID]; !ok {
		return match.Match{}, fmt.Errorf("championship=%d not found", item.ChampionshipID)
	}
	item.ID = r.store.nextID()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.store.now().UTC()
	}
	r.store.matches[item.ID] = item
	return item, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.matches[item.ID]
	if !ok {
		return fmt.Errorf("match=%d not found", item.ID)
	}
	item.ChampionshipID = existing.ChampionshipID
	item.CreatedAt = existing.CreatedAt
	r.store.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deleteMatchLocked(matchID)
	return nil
}
