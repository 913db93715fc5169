package match

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var kickoffTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Match is one game of a championship. Teams are referenced by name and the
// score is only meaningful once the match is finished.
type Match struct {
	ID             int64
	ChampionshipID int64
	Round          int
	Date           time.Time
	KickoffTime    string
	HomeTeam       string
	AwayTeam       string
	HomeScore      *int
	AwayScore      *int
	IsFinished     bool
	CupStage       string
	CreatedAt      time.Time
}

// HasResult reports whether the match counts towards the league table.
func (m Match) HasResult() bool {
	return m.IsFinished && m.HomeScore != nil && m.AwayScore != nil
}

func (m Match) Validate() error {
	if m.ChampionshipID <= 0 {
		return fmt.Errorf("match championship id is required")
	}
	if m.Round < 1 {
		return fmt.Errorf("match round must be >= 1")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.KickoffTime != "" && !kickoffTimePattern.MatchString(m.KickoffTime) {
		return fmt.Errorf("match time must be HH:MM, got %q", m.KickoffTime)
	}

	home := strings.TrimSpace(m.HomeTeam)
	away := strings.TrimSpace(m.AwayTeam)
	if home == "" || away == "" {
		return fmt.Errorf("home and away teams are required")
	}
	if home == away {
		return fmt.Errorf("home and away teams must differ")
	}

	if (m.HomeScore == nil) != (m.AwayScore == nil) {
		return fmt.Errorf("home and away scores must be set together")
	}
	if m.HomeScore != nil && (*m.HomeScore < 0 || *m.AwayScore < 0) {
		return fmt.Errorf("scores must be >= 0")
	}
	if m.IsFinished && m.HomeScore == nil {
		return fmt.Errorf("finished match requires both scores")
	}
	if m.CupStage != "" && !IsKnownCupStage(m.CupStage) {
		return fmt.Errorf("unknown cup stage %q", m.CupStage)
	}

	return nil
}

// SortSchedule orders matches by round, then date, then id.
func SortSchedule(items []Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Round != items[j].Round {
			return items[i].Round < items[j].Round
		}
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].ID < items[j].ID
	})
}

// SplitByStatus separates upcoming fixtures from played ones, keeping order.
func SplitByStatus(items []Match) (calendar, results []Match) {
	calendar = make([]Match, 0, len(items))
	results = make([]Match, 0, len(items))
	for _, item := range items {
		if item.IsFinished {
			results = append(results, item)
			continue
		}
		calendar = append(calendar, item)
	}
	return calendar, results
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}
