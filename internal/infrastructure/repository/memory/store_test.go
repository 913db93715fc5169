package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionshipRepository_ActiveIsExclusive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewStore().Championships()

	first, err := repo.Create(ctx, championship.Championship{Name: "A", Season: "2024", IsActive: true, TournamentType: championship.TypeLeague})
	require.NoError(t, err)
	second, err := repo.Create(ctx, championship.Championship{Name: "B", Season: "2025", IsActive: true, TournamentType: championship.TypeLeague})
	require.NoError(t, err)

	active, ok, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)

	got, _, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestChampionshipRepository_DeleteCascades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()

	keep, err := store.Championships().Create(ctx, championship.Championship{Name: "Keep", Season: "2025", TournamentType: championship.TypeLeague})
	require.NoError(t, err)
	drop, err := store.Championships().Create(ctx, championship.Championship{Name: "Drop", Season: "2025", TournamentType: championship.TypeLeague})
	require.NoError(t, err)

	for _, id := range []int64{keep.ID, drop.ID} {
		_, err := store.Teams().Create(ctx, team.Team{ChampionshipID: id, Name: "Karpaty"})
		require.NoError(t, err)
		_, err = store.Players().Create(ctx, player.Player{ChampionshipID: id, Name: "Ivan", Team: "Karpaty"})
		require.NoError(t, err)
	}
	dropped, err := store.Matches().Create(ctx, match.Match{ChampionshipID: drop.ID, Round: 1, Date: time.Now(), HomeTeam: "Karpaty", AwayTeam: "Rukh"})
	require.NoError(t, err)
	droppedGoal, err := store.Goals().Create(ctx, goal.Goal{MatchID: dropped.ID, PlayerName: "Ivan", TeamName: "Karpaty", Type: goal.TypeRegular})
	require.NoError(t, err)

	require.NoError(t, store.Championships().Delete(ctx, drop.ID))

	teams, err := store.Teams().ListByChampionship(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)
	players, err := store.Players().ListByChampionship(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, players)
	_, exists, err := store.Matches().GetByID(ctx, dropped.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	_, exists, err = store.Goals().GetByID(ctx, droppedGoal.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	kept, err := store.Teams().ListByChampionship(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestTeamRepository_DuplicateName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	champ, err := store.Championships().Create(ctx, championship.Championship{Name: "A", Season: "2025", TournamentType: championship.TypeLeague})
	require.NoError(t, err)

	_, err = store.Teams().Create(ctx, team.Team{ChampionshipID: champ.ID, Name: "Rukh"})
	require.NoError(t, err)
	_, err = store.Teams().Create(ctx, team.Team{ChampionshipID: champ.ID, Name: "RUKH"})
	assert.True(t, errors.Is(err, team.ErrDuplicateName), "got %v", err)
}

func TestSeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	store.Seed()

	active, ok, err := store.Championships().GetActive(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "KS Liga", active.Name)

	teams, err := store.Teams().ListByChampionship(ctx, active.ID)
	require.NoError(t, err)
	assert.Len(t, teams, 6)

	matches, err := store.Matches().ListByChampionship(ctx, active.ID)
	require.NoError(t, err)
	require.Len(t, matches, 6)
	assert.Equal(t, 1, matches[0].Round)

	goals, err := store.Goals().ListByMatch(ctx, matches[0].ID)
	require.NoError(t, err)
	assert.Len(t, goals, 3)
}
