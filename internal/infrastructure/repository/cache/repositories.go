package cache

import (
	"context"
	"strconv"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/team"
	basecache "github.com/ksliga/league-api/internal/platform/cache"
)

const (
	prefixChampionship = "championship:"
	prefixTeam         = "team:"
	prefixMatch        = "match:"
	prefixPlayer       = "player:"
	prefixGoal         = "goal:"
)

func idKey(prefix, kind string, id int64) string {
	return prefix + kind + ":" + strconv.FormatInt(id, 10)
}

type lookup[T any] struct {
	value  T
	exists bool
}

func cachedLookup[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	got, err := basecache.Load(ctx, store, key, func(ctx context.Context) (lookup[T], error) {
		value, exists, err := load(ctx)
		if err != nil {
			return lookup[T]{}, err
		}
		return lookup[T]{value: value, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return got.value, got.exists, nil
}

func cachedList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

type ChampionshipRepository struct {
	next  championship.Repository
	cache *basecache.Store
}

func NewChampionshipRepository(next championship.Repository, cache *basecache.Store) *ChampionshipRepository {
	return &ChampionshipRepository{next: next, cache: cache}
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]championship.Championship, error) {
	return cachedList(ctx, r.cache, prefixChampionship+"list", r.next.List)
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, id int64) (championship.Championship, bool, error) {
	return cachedLookup(ctx, r.cache, idKey(prefixChampionship, "id", id), func(ctx context.Context) (championship.Championship, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *ChampionshipRepository) GetActive(ctx context.Context) (championship.Championship, bool, error) {
	return cachedLookup(ctx, r.cache, prefixChampionship+"active", r.next.GetActive)
}

func (r *ChampionshipRepository) Create(ctx context.Context, item championship.Championship) (championship.Championship, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return championship.Championship{}, err
	}
	r.cache.DeletePrefix(ctx, prefixChampionship)
	return created, nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, item championship.Championship) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixChampionship)
	return nil
}

// Delete cascades in the store, so every cached aggregate may be stale.
func (r *ChampionshipRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Clear(ctx)
	return nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByChampionship(ctx context.Context, championshipID int64) ([]team.Team, error) {
	return cachedList(ctx, r.cache, idKey(prefixTeam, "list", championshipID), func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByChampionship(ctx, championshipID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return cachedLookup(ctx, r.cache, idKey(prefixTeam, "id", teamID), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}
	r.cache.DeletePrefix(ctx, prefixTeam)
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixTeam)
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	if err := r.next.Delete(ctx, teamID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixTeam)
	return nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByChampionship(ctx context.Context, championshipID int64) ([]match.Match, error) {
	return cachedList(ctx, r.cache, idKey(prefixMatch, "list", championshipID), func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByChampionship(ctx, championshipID)
	})
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	return cachedLookup(ctx, r.cache, idKey(prefixMatch, "id", matchID), func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, matchID)
	})
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return match.Match{}, err
	}
	r.cache.DeletePrefix(ctx, prefixMatch)
	return created, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixMatch)
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	if err := r.next.Delete(ctx, matchID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixMatch, prefixGoal)
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByChampionship(ctx context.Context, championshipID int64) ([]player.Player, error) {
	return cachedList(ctx, r.cache, idKey(prefixPlayer, "list", championshipID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByChampionship(ctx, championshipID)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return cachedLookup(ctx, r.cache, idKey(prefixPlayer, "id", playerID), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.DeletePrefix(ctx, prefixPlayer)
	return created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixPlayer)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixPlayer)
	return nil
}

type GoalRepository struct {
	next  goal.Repository
	cache *basecache.Store
}

func NewGoalRepository(next goal.Repository, cache *basecache.Store) *GoalRepository {
	return &GoalRepository{next: next, cache: cache}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	return cachedList(ctx, r.cache, idKey(prefixGoal, "match", matchID), func(ctx context.Context) ([]goal.Goal, error) {
		return r.next.ListByMatch(ctx, matchID)
	})
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID int64) (goal.Goal, bool, error) {
	return cachedLookup(ctx, r.cache, idKey(prefixGoal, "id", goalID), func(ctx context.Context) (goal.Goal, bool, error) {
		return r.next.GetByID(ctx, goalID)
	})
}

func (r *GoalRepository) Create(ctx context.Context, item goal.Goal) (goal.Goal, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return goal.Goal{}, err
	}
	r.cache.DeletePrefix(ctx, prefixGoal)
	return created, nil
}

func (r *GoalRepository) Delete(ctx context.Context, goalID int64) error {
	if err := r.next.Delete(ctx, goalID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prefixGoal)
	return nil
}
