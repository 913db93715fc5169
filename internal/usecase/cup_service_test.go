package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/team"
)

func TestCupService_Bracket(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	teams := &stubTeamRepo{items: []team.Team{
		{ID: 1, ChampionshipID: 1, Name: "Karpaty", Logo: "https://cdn/karpaty.png"},
		{ID: 2, ChampionshipID: 1, Name: "Rukh"},
	}}
	matches := &stubMatchRepo{items: []match.Match{
		{ID: 1, ChampionshipID: 1, Round: 1, Date: day, HomeTeam: "Karpaty", AwayTeam: "Rukh", CupStage: "final"},
		{ID: 2, ChampionshipID: 1, Round: 1, Date: day, HomeTeam: "Karpaty", AwayTeam: "Ghost", CupStage: "1/2"},
		{ID: 3, ChampionshipID: 1, Round: 1, Date: day, HomeTeam: "A", AwayTeam: "B"},
	}}
	service := NewCupService(oneChampionship(1), teams, matches)

	got, err := service.Bracket(context.Background(), 1)
	if err != nil {
		t.Fatalf("Bracket error: %v", err)
	}
	if len(got) != len(match.CupStages) {
		t.Fatalf("expected all %d stages, got %d", len(match.CupStages), len(got))
	}

	final := got[len(got)-1]
	if final.Stage.Key != "final" || len(final.Matches) != 1 {
		t.Fatalf("unexpected final: %+v", final)
	}
	if final.Logos["Karpaty"] != "https://cdn/karpaty.png" || final.Logos["Rukh"] != team.PlaceholderLogo {
		t.Fatalf("unexpected logos: %+v", final.Logos)
	}

	semis := got[len(got)-2]
	if len(semis.Matches) != 1 || semis.Logos["Ghost"] != team.PlaceholderLogo {
		t.Fatalf("unexpected semi-finals: %+v", semis)
	}
	if len(got[0].Matches) != 0 {
		t.Fatalf("expected empty first stage, got %+v", got[0].Matches)
	}
}
