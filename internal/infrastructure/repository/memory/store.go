package memory

import (
	"sync"
	"time"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/team"
)

// Store keeps every aggregate in one place so deletes can cascade the way
// foreign keys do in postgres.
type Store struct {
	mu sync.RWMutex

	championships map[int64]championship.Championship
	teams         map[int64]team.Team
	matches       map[int64]match.Match
	players       map[int64]player.Player
	goals         map[int64]goal.Goal

	lastID int64
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		championships: make(map[int64]championship.Championship),
		teams:         make(map[int64]team.Team),
		matches:       make(map[int64]match.Match),
		players:       make(map[int64]player.Player),
		goals:         make(map[int64]goal.Goal),
		now:           time.Now,
	}
}

func (s *Store) Championships() *ChampionshipRepository {
	return &ChampionshipRepository{store: s}
}

func (s *Store) Teams() *TeamRepository {
	return &TeamRepository{store: s}
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{store: s}
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

func (s *Store) Goals() *GoalRepository {
	return &GoalRepository{store: s}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// deleteMatchLocked removes a match and its goals.
func (s *Store) deleteMatchLocked(matchID int64) {
	delete(s.matches, matchID)
	for id, item := range s.goals {
		if item.MatchID == matchID {
			delete(s.goals, id)
		}
	}
}
