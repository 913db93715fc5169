package team

import (
	"fmt"
	"strings"
	"time"
)

const PlaceholderLogo = "/placeholder.svg?height=32&width=32"

// Team is a club registered for a championship. Matches reference it by name.
type Team struct {
	ID             int64
	ChampionshipID int64
	Name           string
	Logo           string
	CreatedAt      time.Time
}

func (t Team) LogoOrPlaceholder() string {
	if strings.TrimSpace(t.Logo) == "" {
		return PlaceholderLogo
	}
	return t.Logo
}

func (t Team) Validate() error {
	if t.ChampionshipID <= 0 {
		return fmt.Errorf("team championship id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Name) > 100 {
		return fmt.Errorf("team name is too long")
	}

	return nil
}

// LogoByName maps team names to display logos. The first team wins when
// names repeat.
func LogoByName(teams []Team) map[string]string {
	out := make(map[string]string, len(teams))
	for _, t := range teams {
		if _, exists := out[t.Name]; exists {
			continue
		}
		out[t.Name] = t.LogoOrPlaceholder()
	}
	return out
}
