package championship

import (
	"fmt"
	"strings"
	"time"
)

const (
	TypeLeague = "league"
	TypeCup    = "cup"
)

// Championship is one edition of a competition. Teams, matches and players
// are scoped to it.
type Championship struct {
	ID             int64
	Name           string
	Season         string
	IsActive       bool
	TournamentType string
	CreatedAt      time.Time
}

func NormalizeType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return TypeLeague
	}
	return v
}

func (c Championship) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("championship name is required")
	}
	if strings.TrimSpace(c.Season) == "" {
		return fmt.Errorf("championship season is required")
	}
	switch c.TournamentType {
	case TypeLeague, TypeCup:
	default:
		return fmt.Errorf("unknown tournament type %q", c.TournamentType)
	}

	return nil
}

// PickDefault returns the active championship, falling back to the newest
// one when none is flagged active.
func PickDefault(items []Championship) (Championship, bool) {
	if len(items) == 0 {
		return Championship{}, false
	}

	newest := items[0]
	for _, item := range items {
		if item.IsActive {
			return item, true
		}
		if item.CreatedAt.After(newest.CreatedAt) {
			newest = item
		}
	}
	return newest, true
}
