package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
)

func TestGoalService_Add(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepo{items: []match.Match{{ID: 4, ChampionshipID: 1, HomeTeam: "Karpaty", AwayTeam: "Rukh"}}}
	goals := &stubGoalRepo{}
	service := NewGoalService(matches, goals)

	got, err := service.Add(context.Background(), 4, GoalInput{PlayerName: "Ivan Petrenko", TeamName: "Rukh", Minute: intPtr(55)})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.Type != goal.TypeRegular || got.MatchID != 4 {
		t.Fatalf("unexpected goal: %+v", got)
	}

	if _, err := service.Add(context.Background(), 4, GoalInput{PlayerName: "Ivan Petrenko", TeamName: "Dynamo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for team outside match, got %v", err)
	}
	if _, err := service.Add(context.Background(), 5, GoalInput{PlayerName: "Ivan Petrenko", TeamName: "Rukh"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}

func TestGoalService_ListByMatch_Timeline(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepo{items: []match.Match{{ID: 4, ChampionshipID: 1, HomeTeam: "A", AwayTeam: "B"}}}
	goals := &stubGoalRepo{byMatch: map[int64][]goal.Goal{
		4: {
			{ID: 1, MatchID: 4},
			{ID: 2, MatchID: 4, Minute: intPtr(80)},
			{ID: 3, MatchID: 4, Minute: intPtr(5)},
		},
	}}
	service := NewGoalService(matches, goals)

	got, err := service.ListByMatch(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListByMatch error: %v", err)
	}
	if len(got) != 3 || got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 1 {
		t.Fatalf("unexpected timeline: %+v", got)
	}
}
