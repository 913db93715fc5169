package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ksliga/league-api/internal/domain/match"
)

func TestMatchService_Create(t *testing.T) {
	t.Parallel()

	repo := &stubMatchRepo{}
	service := NewMatchService(oneChampionship(1), repo)

	got, err := service.Create(context.Background(), 1, MatchInput{
		Round:       3,
		Date:        "2025-09-14",
		KickoffTime: "16:00",
		HomeTeam:    " Karpaty ",
		AwayTeam:    "Rukh",
		CupStage:    "1/4 фіналу",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.HomeTeam != "Karpaty" || got.CupStage != "1/4" {
		t.Fatalf("unexpected match: %+v", got)
	}
	if !got.Date.Equal(time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", got.Date)
	}
}

func TestMatchService_Create_Validation(t *testing.T) {
	t.Parallel()

	service := NewMatchService(oneChampionship(1), &stubMatchRepo{})

	tests := []struct {
		name  string
		input MatchInput
	}{
		{name: "bad date", input: MatchInput{Round: 1, Date: "14.09.2025", HomeTeam: "A", AwayTeam: "B"}},
		{name: "same teams", input: MatchInput{Round: 1, Date: "2025-09-14", HomeTeam: "A", AwayTeam: "A"}},
		{name: "finished without score", input: MatchInput{Round: 1, Date: "2025-09-14", HomeTeam: "A", AwayTeam: "B", IsFinished: true}},
		{name: "zero round", input: MatchInput{Date: "2025-09-14", HomeTeam: "A", AwayTeam: "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Create(context.Background(), 1, tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestMatchService_CalendarAndResults(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubMatchRepo{items: []match.Match{
		{ID: 1, ChampionshipID: 1, Round: 2, Date: day, HomeTeam: "A", AwayTeam: "B"},
		{ID: 2, ChampionshipID: 1, Round: 1, Date: day, HomeTeam: "C", AwayTeam: "D", IsFinished: true, HomeScore: intPtr(1), AwayScore: intPtr(0)},
		{ID: 3, ChampionshipID: 1, Round: 1, Date: day.AddDate(0, 0, 1), HomeTeam: "A", AwayTeam: "C"},
	}}
	service := NewMatchService(oneChampionship(1), repo)

	calendar, err := service.Calendar(context.Background(), 1)
	if err != nil {
		t.Fatalf("Calendar error: %v", err)
	}
	if len(calendar) != 2 || calendar[0].ID != 3 || calendar[1].ID != 1 {
		t.Fatalf("unexpected calendar: %+v", calendar)
	}

	results, err := service.Results(context.Background(), 1)
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Fatalf("unexpected results: %+v", results)
	}
}
