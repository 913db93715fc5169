package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/match"
)

type MatchInput struct {
	Round       int
	Date        string
	KickoffTime string
	HomeTeam    string
	AwayTeam    string
	HomeScore   *int
	AwayScore   *int
	IsFinished  bool
	CupStage    string
}

type MatchService struct {
	championshipRepo championship.Repository
	matchRepo        match.Repository
}

func NewMatchService(championshipRepo championship.Repository, matchRepo match.Repository) *MatchService {
	return &MatchService{
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
	}
}

// ListByChampionship returns matches ordered by round, then date.
func (s *MatchService) ListByChampionship(ctx context.Context, championshipID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByChampionship")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return nil, err
	}
	return s.list(ctx, championshipID)
}

// Calendar returns matches that are not finished yet.
func (s *MatchService) Calendar(ctx context.Context, championshipID int64) ([]match.Match, error) {
	items, err := s.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	calendar, _ := match.SplitByStatus(items)
	return calendar, nil
}

// Results returns finished matches.
func (s *MatchService) Results(ctx context.Context, championshipID int64) ([]match.Match, error) {
	items, err := s.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	_, results := match.SplitByStatus(items)
	return results, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	return getMatch(ctx, s.matchRepo, matchID)
}

func (s *MatchService) Create(ctx context.Context, championshipID int64, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return match.Match{}, err
	}

	item := match.Match{ChampionshipID: championshipID}
	if err := applyMatchInput(&item, input); err != nil {
		return match.Match{}, err
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) Update(ctx context.Context, matchID int64, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := getMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if err := applyMatchInput(&item, input); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return item, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := getMatch(ctx, s.matchRepo, matchID); err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (s *MatchService) list(ctx context.Context, championshipID int64) ([]match.Match, error) {
	items, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list matches by championship: %w", err)
	}
	match.SortSchedule(items)
	return items, nil
}

func applyMatchInput(item *match.Match, input MatchInput) error {
	date, err := match.ParseDate(input.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item.Round = input.Round
	item.Date = date
	item.KickoffTime = strings.TrimSpace(input.KickoffTime)
	item.HomeTeam = strings.TrimSpace(input.HomeTeam)
	item.AwayTeam = strings.TrimSpace(input.AwayTeam)
	item.HomeScore = input.HomeScore
	item.AwayScore = input.AwayScore
	item.IsFinished = input.IsFinished
	item.CupStage = match.NormalizeCupStage(input.CupStage)

	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func getMatch(ctx context.Context, repo match.Repository, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return item, nil
}
