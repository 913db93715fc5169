package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/standing"
	"github.com/ksliga/league-api/internal/domain/team"
	"github.com/ksliga/league-api/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
)

const defaultGoalWorkers = 8

// MatchWithGoals is a finished match together with its goal timeline.
type MatchWithGoals struct {
	Match match.Match
	Goals []goal.Goal
}

// Overview is everything the championship page shows at once.
type Overview struct {
	Championship championship.Championship
	Teams        []team.Team
	Standings    []standing.Row
	Calendar     []match.Match
	Results      []MatchWithGoals
	Scorers      []player.Player
}

type OverviewService struct {
	championshipRepo championship.Repository
	teamRepo         team.Repository
	matchRepo        match.Repository
	playerRepo       player.Repository
	goalRepo         goal.Repository
	standings        *StandingService
	goalWorkers      int
	logger           *logging.Logger
}

func NewOverviewService(
	championshipRepo championship.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	goalRepo goal.Repository,
	standings *StandingService,
	goalWorkers int,
	logger *logging.Logger,
) *OverviewService {
	if logger == nil {
		logger = logging.Default()
	}
	if goalWorkers <= 0 {
		goalWorkers = defaultGoalWorkers
	}

	return &OverviewService{
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		matchRepo:        matchRepo,
		playerRepo:       playerRepo,
		goalRepo:         goalRepo,
		standings:        standings,
		goalWorkers:      goalWorkers,
		logger:           logger,
	}
}

func (s *OverviewService) Get(ctx context.Context, championshipID int64) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Get")
	defer span.End()

	champ, err := getChampionship(ctx, s.championshipRepo, championshipID)
	if err != nil {
		return Overview{}, err
	}

	var (
		teams   []team.Team
		matches []match.Match
		players []player.Player
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListByChampionship(ctx, championshipID)
		if err != nil {
			return fmt.Errorf("list teams by championship: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListByChampionship(ctx, championshipID)
		if err != nil {
			return fmt.Errorf("list matches by championship: %w", err)
		}
		match.SortSchedule(items)
		matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListByChampionship(ctx, championshipID)
		if err != nil {
			return fmt.Errorf("list players by championship: %w", err)
		}
		player.SortScorers(items)
		players = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return Overview{}, err
	}

	calendar, finished := match.SplitByStatus(matches)
	results, err := s.attachGoals(ctx, finished)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Championship: champ,
		Teams:        teams,
		Standings:    s.standings.compute(ctx, championshipID, teams, matches),
		Calendar:     calendar,
		Results:      results,
		Scorers:      players,
	}, nil
}

// attachGoals loads each match timeline on a bounded worker pool. A failed
// load leaves that match with no goals.
func (s *OverviewService) attachGoals(ctx context.Context, matches []match.Match) ([]MatchWithGoals, error) {
	out := make([]MatchWithGoals, len(matches))
	if len(matches) == 0 {
		return out, nil
	}

	workerCount := s.goalWorkers
	if workerCount > len(matches) {
		workerCount = len(matches)
	}
	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create goal worker pool: %w", err)
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for i, m := range matches {
		out[i] = MatchWithGoals{Match: m, Goals: []goal.Goal{}}

		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			items, err := s.goalRepo.ListByMatch(ctx, m.ID)
			if err != nil {
				s.logger.WarnContext(ctx, "load match goals failed",
					"match_id", m.ID,
					"error", err,
				)
				return
			}
			if len(items) == 0 {
				return
			}
			goal.SortTimeline(items)
			out[i].Goals = items
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit goal task to worker pool: %w", err)
		}
	}
	wg.Wait()

	return out, nil
}
