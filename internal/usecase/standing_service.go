package usecase

import (
	"context"
	"fmt"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/standing"
	"github.com/ksliga/league-api/internal/domain/team"
	"github.com/ksliga/league-api/internal/platform/logging"
	"golang.org/x/sync/errgroup"
)

type StandingService struct {
	championshipRepo championship.Repository
	teamRepo         team.Repository
	matchRepo        match.Repository
	logger           *logging.Logger
}

func NewStandingService(
	championshipRepo championship.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		matchRepo:        matchRepo,
		logger:           logger,
	}
}

// Compute builds the league table of a championship from its teams and
// finished matches.
func (s *StandingService) Compute(ctx context.Context, championshipID int64) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Compute")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return nil, err
	}

	teams, matches, err := s.load(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	return s.compute(ctx, championshipID, teams, matches), nil
}

func (s *StandingService) load(ctx context.Context, championshipID int64) ([]team.Team, []match.Match, error) {
	var (
		teams   []team.Team
		matches []match.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.teamRepo.ListByChampionship(gctx, championshipID)
		if err != nil {
			return fmt.Errorf("list teams by championship: %w", err)
		}
		teams = items
		return nil
	})
	g.Go(func() error {
		items, err := s.matchRepo.ListByChampionship(gctx, championshipID)
		if err != nil {
			return fmt.Errorf("list matches by championship: %w", err)
		}
		matches = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return teams, matches, nil
}

// compute runs the calculator on already loaded data.
func (s *StandingService) compute(ctx context.Context, championshipID int64, teams []team.Team, matches []match.Match) []standing.Row {
	rows, summary := standing.ComputeWithSummary(teams, matches)
	if summary.NoResult > 0 || summary.UnknownTeam > 0 {
		s.logger.DebugContext(ctx, "standings skipped matches",
			"championship_id", championshipID,
			"counted", summary.Counted,
			"no_result", summary.NoResult,
			"unknown_team", summary.UnknownTeam,
		)
	}
	return rows
}
