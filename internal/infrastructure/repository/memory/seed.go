package memory

import (
	"time"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/team"
)

// Seed fills the store with a demo league and cup so the API has something
// to show without a database.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	league := s.putChampionshipLocked(championship.Championship{
		Name: "KS Liga", Season: "2025", IsActive: true,
		TournamentType: championship.TypeLeague, CreatedAt: created,
	})
	cup := s.putChampionshipLocked(championship.Championship{
		Name: "Кубок KS", Season: "2025",
		TournamentType: championship.TypeCup, CreatedAt: created.Add(-24 * time.Hour),
	})

	names := []string{"Карпати", "Рух", "Волинь", "Буковина", "Полісся", "Верес"}
	for _, championshipID := range []int64{league, cup} {
		for _, name := range names {
			id := s.nextID()
			s.teams[id] = team.Team{ID: id, ChampionshipID: championshipID, Name: name, CreatedAt: created}
		}
	}

	day := func(offset int) time.Time {
		return time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	score := func(v int) *int { return &v }

	leagueMatches := []match.Match{
		{Round: 1, Date: day(0), KickoffTime: "16:00", HomeTeam: "Карпати", AwayTeam: "Рух", HomeScore: score(2), AwayScore: score(1), IsFinished: true},
		{Round: 1, Date: day(0), KickoffTime: "18:00", HomeTeam: "Волинь", AwayTeam: "Буковина", HomeScore: score(0), AwayScore: score(0), IsFinished: true},
		{Round: 1, Date: day(1), KickoffTime: "15:00", HomeTeam: "Полісся", AwayTeam: "Верес", HomeScore: score(3), AwayScore: score(1), IsFinished: true},
		{Round: 2, Date: day(7), KickoffTime: "16:00", HomeTeam: "Рух", AwayTeam: "Волинь"},
		{Round: 2, Date: day(7), KickoffTime: "18:00", HomeTeam: "Буковина", AwayTeam: "Полісся"},
		{Round: 2, Date: day(8), KickoffTime: "15:00", HomeTeam: "Верес", AwayTeam: "Карпати"},
	}
	var firstMatchID int64
	for i, item := range leagueMatches {
		item.ID = s.nextID()
		item.ChampionshipID = league
		item.CreatedAt = created
		s.matches[item.ID] = item
		if i == 0 {
			firstMatchID = item.ID
		}
	}

	cupMatches := []match.Match{
		{Round: 1, Date: day(14), HomeTeam: "Карпати", AwayTeam: "Верес", HomeScore: score(1), AwayScore: score(0), IsFinished: true, CupStage: "1/2"},
		{Round: 1, Date: day(15), HomeTeam: "Рух", AwayTeam: "Полісся", HomeScore: score(2), AwayScore: score(2), IsFinished: true, CupStage: "1/2"},
		{Round: 2, Date: day(30), HomeTeam: "Карпати", AwayTeam: "Полісся", CupStage: "final"},
	}
	for _, item := range cupMatches {
		item.ID = s.nextID()
		item.ChampionshipID = cup
		item.CreatedAt = created
		s.matches[item.ID] = item
	}

	for _, item := range []player.Player{
		{Name: "Андрій Коваль", Team: "Карпати", Goals: 2},
		{Name: "Богдан Мельник", Team: "Полісся", Goals: 2},
		{Name: "Олег Шевчук", Team: "Рух", Goals: 1},
		{Name: "Ігор Бондар", Team: "Полісся", Goals: 1},
		{Name: "Тарас Лисенко", Team: "Верес", Goals: 1},
	} {
		item.ID = s.nextID()
		item.ChampionshipID = league
		item.CreatedAt = created
		s.players[item.ID] = item
	}

	minute := func(v int) *int { return &v }
	for _, item := range []goal.Goal{
		{PlayerName: "Андрій Коваль", TeamName: "Карпати", Minute: minute(23), Type: goal.TypeRegular},
		{PlayerName: "Олег Шевчук", TeamName: "Рух", Minute: minute(51), Type: goal.TypePenalty},
		{PlayerName: "Андрій Коваль", TeamName: "Карпати", Minute: minute(88), Type: goal.TypeRegular},
	} {
		item.ID = s.nextID()
		item.MatchID = firstMatchID
		item.CreatedAt = created
		s.goals[item.ID] = item
	}
}

func (s *Store) putChampionshipLocked(item championship.Championship) int64 {
	item.ID = s.nextID()
	s.championships[item.ID] = item
	return item.ID
}
