package standing

import (
	"sort"

	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/team"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// Row is one line of a league table.
type Row struct {
	Position     int
	TeamID       int64
	TeamName     string
	Logo         string
	Games        int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

func (r Row) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Summary counts how the matches passed to Compute were used.
type Summary struct {
	Counted     int
	NoResult    int
	UnknownTeam int
}

// Compute builds the league table for teams from the given matches.
//
// Every team gets a row, even without games. Only finished matches carrying
// both scores are counted. A match naming a team that is not in teams is
// skipped. Rows are ranked by points, then goal difference; exact ties keep
// the order of teams.
func Compute(teams []team.Team, matches []match.Match) []Row {
	rows, _ := ComputeWithSummary(teams, matches)
	return rows
}

// ComputeWithSummary is Compute that also reports skipped matches.
func ComputeWithSummary(teams []team.Team, matches []match.Match) ([]Row, Summary) {
	rows := make([]Row, len(teams))
	indexByName := make(map[string]int, len(teams))
	for i, t := range teams {
		rows[i] = Row{
			TeamID:   t.ID,
			TeamName: t.Name,
			Logo:     t.LogoOrPlaceholder(),
		}
		if _, exists := indexByName[t.Name]; !exists {
			indexByName[t.Name] = i
		}
	}

	var summary Summary
	for _, m := range matches {
		if !m.HasResult() {
			summary.NoResult++
			continue
		}

		homeIdx, homeOK := indexByName[m.HomeTeam]
		awayIdx, awayOK := indexByName[m.AwayTeam]
		if !homeOK || !awayOK {
			summary.UnknownTeam++
			continue
		}

		applyResult(&rows[homeIdx], &rows[awayIdx], *m.HomeScore, *m.AwayScore)
		summary.Counted++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDifference() > rows[j].GoalDifference()
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, summary
}

func applyResult(home, away *Row, homeScore, awayScore int) {
	home.Games++
	away.Games++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		home.Wins++
		home.Points += pointsPerWin
		away.Losses++
	case homeScore < awayScore:
		away.Wins++
		away.Points += pointsPerWin
		home.Losses++
	default:
		home.Draws++
		away.Draws++
		home.Points += pointsPerDraw
		away.Points += pointsPerDraw
	}
}
