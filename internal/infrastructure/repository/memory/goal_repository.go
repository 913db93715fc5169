package memory

import (
	"context"
	"fmt"

	"github.com/ksliga/league-api/internal/domain/goal"
)

type GoalRepository struct {
	store *Store
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, item := range r.store.goals {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	goal.SortTimeline(out)
	return out, nil
}

func (r *GoalRepository) GetByID(_ context.Context, goalID int64) (goal.Goal, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.goals[goalID]
	return item, ok, nil
}

func (r *GoalRepository) Create(_ context.Context, item goal.Goal) (goal.Goal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[item.MatchID]; !ok {
		return goal.Goal{}, fmt.Errorf("match=%d not found", item.MatchID)
	}
	item.ID = r.store.nextID()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.store.now().UTC()
	}
	r.store.goals[item.ID] = item
	return item, nil
}

func (r *GoalRepository) Delete(_ context.Context, goalID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.goals, goalID)
	return nil
}
