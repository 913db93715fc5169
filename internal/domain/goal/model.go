package goal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	TypeRegular = "regular"
	TypePenalty = "penalty"
	TypeOwnGoal = "own_goal"
)

const MaxMinute = 130

// Goal is a single scoring event inside a match.
type Goal struct {
	ID         int64
	MatchID    int64
	PlayerName string
	TeamName   string
	Minute     *int
	Type       string
	CreatedAt  time.Time
}

func NormalizeType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return TypeRegular
	}
	return v
}

func (g Goal) Validate() error {
	if g.MatchID <= 0 {
		return fmt.Errorf("goal match id is required")
	}
	if strings.TrimSpace(g.PlayerName) == "" {
		return fmt.Errorf("goal player name is required")
	}
	if strings.TrimSpace(g.TeamName) == "" {
		return fmt.Errorf("goal team name is required")
	}
	if g.Minute != nil && (*g.Minute < 1 || *g.Minute > MaxMinute) {
		return fmt.Errorf("goal minute must be between 1 and %d", MaxMinute)
	}
	switch g.Type {
	case TypeRegular, TypePenalty, TypeOwnGoal:
	default:
		return fmt.Errorf("unknown goal type %q", g.Type)
	}

	return nil
}

// SortTimeline orders goals by minute with unknown minutes last.
func SortTimeline(items []Goal) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Minute, items[j].Minute
		switch {
		case a == nil && b == nil:
			return items[i].ID < items[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return items[i].ID < items[j].ID
		}
	})
}
