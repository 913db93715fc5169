package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/team"
)

func finishedMatch(championshipID int64, home, away string, homeScore, awayScore int) match.Match {
	return match.Match{
		ChampionshipID: championshipID,
		Round:          1,
		Date:           time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		HomeTeam:       home,
		AwayTeam:       away,
		HomeScore:      intPtr(homeScore),
		AwayScore:      intPtr(awayScore),
		IsFinished:     true,
	}
}

func TestStandingService_Compute(t *testing.T) {
	t.Parallel()

	const championshipID = 7
	teamRepo := &stubTeamRepo{items: []team.Team{
		{ID: 1, ChampionshipID: championshipID, Name: "A", Logo: "https://cdn/a.png"},
		{ID: 2, ChampionshipID: championshipID, Name: "B"},
		{ID: 3, ChampionshipID: championshipID, Name: "C"},
		{ID: 4, ChampionshipID: championshipID + 1, Name: "Other league"},
	}}
	matchRepo := &stubMatchRepo{items: []match.Match{
		finishedMatch(championshipID, "A", "B", 2, 1),
		finishedMatch(championshipID, "B", "C", 0, 0),
		{ChampionshipID: championshipID, Round: 2, HomeTeam: "A", AwayTeam: "C"},
		finishedMatch(championshipID, "A", "Removed", 3, 0),
	}}

	service := NewStandingService(oneChampionship(championshipID), teamRepo, matchRepo, nil)

	got, err := service.Compute(context.Background(), championshipID)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].TeamName != "A" || got[0].Points != 3 || got[0].Position != 1 || got[0].Logo != "https://cdn/a.png" {
		t.Fatalf("unexpected rank 1 row: %+v", got[0])
	}
	if got[1].TeamName != "C" || got[1].Points != 1 || got[1].Position != 2 {
		t.Fatalf("unexpected rank 2 row: %+v", got[1])
	}
	if got[2].TeamName != "B" || got[2].Games != 2 || got[2].Position != 3 || got[2].Logo != team.PlaceholderLogo {
		t.Fatalf("unexpected rank 3 row: %+v", got[2])
	}
}

func TestStandingService_Compute_ChampionshipNotFound(t *testing.T) {
	t.Parallel()

	service := NewStandingService(oneChampionship(1), &stubTeamRepo{}, &stubMatchRepo{}, nil)

	_, err := service.Compute(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingService_Compute_InvalidID(t *testing.T) {
	t.Parallel()

	service := NewStandingService(oneChampionship(1), &stubTeamRepo{}, &stubMatchRepo{}, nil)

	_, err := service.Compute(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingService_Compute_RepositoryErrorIsReturned(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	service := NewStandingService(
		oneChampionship(1),
		&stubTeamRepo{},
		&stubMatchRepo{err: storeErr},
		nil,
	)

	got, err := service.Compute(context.Background(), 1)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no rows on failure, got %+v", got)
	}
}
