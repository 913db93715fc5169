package player

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Player is a goal scorer entry. Goals is a tally maintained by admins.
type Player struct {
	ID             int64
	ChampionshipID int64
	Name           string
	Team           string
	Goals          int
	CreatedAt      time.Time
}

func (p Player) Validate() error {
	if p.ChampionshipID <= 0 {
		return fmt.Errorf("player championship id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if p.Goals < 0 {
		return fmt.Errorf("player goals must be >= 0")
	}

	return nil
}

// SortScorers orders players by goals descending, then by name.
func SortScorers(items []Player) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Goals != items[j].Goals {
			return items[i].Goals > items[j].Goals
		}
		return items[i].Name < items[j].Name
	})
}
