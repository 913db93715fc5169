package usecase

import (
	"context"
	"sync"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/team"
)

type stubChampionshipRepo struct {
	byID map[int64]championship.Championship
	err  error
}

func (s *stubChampionshipRepo) List(context.Context) ([]championship.Championship, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]championship.Championship, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubChampionshipRepo) GetByID(_ context.Context, id int64) (championship.Championship, bool, error) {
	if s.err != nil {
		return championship.Championship{}, false, s.err
	}
	item, ok := s.byID[id]
	return item, ok, nil
}

func (s *stubChampionshipRepo) GetActive(context.Context) (championship.Championship, bool, error) {
	for _, item := range s.byID {
		if item.IsActive {
			return item, true, nil
		}
	}
	return championship.Championship{}, false, s.err
}

func (s *stubChampionshipRepo) Create(_ context.Context, item championship.Championship) (championship.Championship, error) {
	item.ID = int64(len(s.byID) + 1)
	s.byID[item.ID] = item
	return item, nil
}

func (s *stubChampionshipRepo) Update(_ context.Context, item championship.Championship) error {
	s.byID[item.ID] = item
	return nil
}

func (s *stubChampionshipRepo) Delete(_ context.Context, id int64) error {
	delete(s.byID, id)
	return nil
}

func oneChampionship(id int64) *stubChampionshipRepo {
	return &stubChampionshipRepo{
		byID: map[int64]championship.Championship{
			id: {ID: id, Name: "KS Liga", Season: "2025", TournamentType: championship.TypeLeague},
		},
	}
}

type stubTeamRepo struct {
	mu      sync.Mutex
	items   []team.Team
	err     error
	updated []team.Team
}

func (s *stubTeamRepo) ListByChampionship(_ context.Context, championshipID int64) ([]team.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]team.Team, 0, len(s.items))
	for _, item := range s.items {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubTeamRepo) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	for _, item := range s.items {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, s.err
}

func (s *stubTeamRepo) Create(_ context.Context, item team.Team) (team.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = int64(len(s.items) + 1)
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubTeamRepo) Update(_ context.Context, item team.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, item)
	return nil
}

func (s *stubTeamRepo) Delete(context.Context, int64) error {
	return nil
}

type stubMatchRepo struct {
	items []match.Match
	err   error
}

func (s *stubMatchRepo) ListByChampionship(_ context.Context, championshipID int64) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]match.Match, 0, len(s.items))
	for _, item := range s.items {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMatchRepo) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	for _, item := range s.items {
		if item.ID == matchID {
			return item, true, nil
		}
	}
	return match.Match{}, false, s.err
}

func (s *stubMatchRepo) Create(_ context.Context, item match.Match) (match.Match, error) {
	item.ID = int64(len(s.items) + 1)
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubMatchRepo) Update(_ context.Context, item match.Match) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
		}
	}
	return nil
}

func (s *stubMatchRepo) Delete(context.Context, int64) error {
	return nil
}

type stubPlayerRepo struct {
	items []player.Player
	err   error
}

func (s *stubPlayerRepo) ListByChampionship(_ context.Context, championshipID int64) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]player.Player, 0, len(s.items))
	for _, item := range s.items {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPlayerRepo) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	for _, item := range s.items {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepo) Create(_ context.Context, item player.Player) (player.Player, error) {
	item.ID = int64(len(s.items) + 1)
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubPlayerRepo) Update(context.Context, player.Player) error {
	return nil
}

func (s *stubPlayerRepo) Delete(context.Context, int64) error {
	return nil
}

type stubGoalRepo struct {
	byMatch  map[int64][]goal.Goal
	failFor  map[int64]error
	created  []goal.Goal
	mu       sync.Mutex
	requests []int64
}

func (s *stubGoalRepo) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, error) {
	s.mu.Lock()
	s.requests = append(s.requests, matchID)
	s.mu.Unlock()

	if err, ok := s.failFor[matchID]; ok {
		return nil, err
	}
	return append([]goal.Goal(nil), s.byMatch[matchID]...), nil
}

func (s *stubGoalRepo) GetByID(_ context.Context, goalID int64) (goal.Goal, bool, error) {
	for _, items := range s.byMatch {
		for _, item := range items {
			if item.ID == goalID {
				return item, true, nil
			}
		}
	}
	return goal.Goal{}, false, nil
}

func (s *stubGoalRepo) Create(_ context.Context, item goal.Goal) (goal.Goal, error) {
	item.ID = int64(len(s.created) + 100)
	s.created = append(s.created, item)
	return item, nil
}

func (s *stubGoalRepo) Delete(context.Context, int64) error {
	return nil
}

func intPtr(v int) *int {
	return &v
}
