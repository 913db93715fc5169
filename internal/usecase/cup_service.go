package usecase

import (
	"context"
	"fmt"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/team"
	"golang.org/x/sync/errgroup"
)

// CupStage is one round of the bracket with display logos for its teams.
type CupStage struct {
	Stage   match.CupStage
	Matches []match.Match
	Logos   map[string]string
}

type CupService struct {
	championshipRepo championship.Repository
	teamRepo         team.Repository
	matchRepo        match.Repository
}

func NewCupService(championshipRepo championship.Repository, teamRepo team.Repository, matchRepo match.Repository) *CupService {
	return &CupService{
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		matchRepo:        matchRepo,
	}
}

// Bracket returns every known cup stage in order, including empty ones.
func (s *CupService) Bracket(ctx context.Context, championshipID int64) ([]CupStage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CupService.Bracket")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return nil, err
	}

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
		return nil, err
	}

	logos := team.LogoByName(teams)
	grouped := match.GroupByCupStage(matches)
	out := make([]CupStage, 0, len(grouped))
	for _, stage := range grouped {
		stageLogos := make(map[string]string, len(stage.Matches)*2)
		for _, m := range stage.Matches {
			stageLogos[m.HomeTeam] = logoFor(logos, m.HomeTeam)
			stageLogos[m.AwayTeam] = logoFor(logos, m.AwayTeam)
		}
		out = append(out, CupStage{
			Stage:   stage.Stage,
			Matches: stage.Matches,
			Logos:   stageLogos,
		})
	}
	return out, nil
}

func logoFor(logos map[string]string, teamName string) string {
	if logo, ok := logos[teamName]; ok {
		return logo
	}
	return team.PlaceholderLogo
}
