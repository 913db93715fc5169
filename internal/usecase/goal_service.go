package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
)

type GoalInput struct {
	PlayerName string
	TeamName   string
	Minute     *int
	Type       string
}

type GoalService struct {
	matchRepo match.Repository
	goalRepo  goal.Repository
}

func NewGoalService(matchRepo match.Repository, goalRepo goal.Repository) *GoalService {
	return &GoalService{
		matchRepo: matchRepo,
		goalRepo:  goalRepo,
	}
}

// ListByMatch returns the goal timeline of a match.
func (s *GoalService) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.ListByMatch")
	defer span.End()

	if _, err := getMatch(ctx, s.matchRepo, matchID); err != nil {
		return nil, err
	}
	return s.timeline(ctx, matchID)
}

func (s *GoalService) Add(ctx context.Context, matchID int64, input GoalInput) (goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.Add")
	defer span.End()

	matchItem, err := getMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return goal.Goal{}, err
	}

	item := goal.Goal{
		MatchID:    matchID,
		PlayerName: strings.TrimSpace(input.PlayerName),
		TeamName:   strings.TrimSpace(input.TeamName),
		Minute:     input.Minute,
		Type:       goal.NormalizeType(input.Type),
	}
	if err := item.Validate(); err != nil {
		return goal.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if item.TeamName != matchItem.HomeTeam && item.TeamName != matchItem.AwayTeam {
		return goal.Goal{}, fmt.Errorf("%w: team %q did not play match %d", ErrInvalidInput, item.TeamName, matchID)
	}

	created, err := s.goalRepo.Create(ctx, item)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	return created, nil
}

func (s *GoalService) Delete(ctx context.Context, goalID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.Delete")
	defer span.End()

	if goalID <= 0 {
		return fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}
	_, exists, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return fmt.Errorf("get goal: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: goal=%d", ErrNotFound, goalID)
	}

	if err := s.goalRepo.Delete(ctx, goalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

func (s *GoalService) timeline(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	items, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list goals by match: %w", err)
	}
	goal.SortTimeline(items)
	return items, nil
}
