package match

import (
	"sort"
	"strings"
)

// CupStage is one knockout round of a cup bracket.
type CupStage struct {
	Key   string
	Label string
}

// CupStages lists the knockout rounds in bracket order.
var CupStages = []CupStage{
	{Key: "1/32", Label: "1/32 фіналу"},
	{Key: "1/16", Label: "1/16 фіналу"},
	{Key: "1/8", Label: "1/8 фіналу"},
	{Key: "1/4", Label: "1/4 фіналу"},
	{Key: "1/2", Label: "1/2 фіналу"},
	{Key: "final", Label: "Фінал"},
}

// NormalizeCupStage accepts either a stage key or its display label and
// returns the key. Unknown values are returned trimmed and unchanged.
func NormalizeCupStage(value string) string {
	v := strings.TrimSpace(value)
	for _, stage := range CupStages {
		if strings.EqualFold(v, stage.Key) || v == stage.Label {
			return stage.Key
		}
	}
	return v
}

func IsKnownCupStage(value string) bool {
	for _, stage := range CupStages {
		if stage.Key == value {
			return true
		}
	}
	return false
}

// StageMatches pairs a cup stage with its matches.
type StageMatches struct {
	Stage   CupStage
	Matches []Match
}

// GroupByCupStage returns every known stage in bracket order, each holding
// its matches sorted by date. Matches without a known stage are dropped.
func GroupByCupStage(items []Match) []StageMatches {
	byStage := make(map[string][]Match, len(CupStages))
	for _, item := range items {
		key := NormalizeCupStage(item.CupStage)
		if !IsKnownCupStage(key) {
			continue
		}
		byStage[key] = append(byStage[key], item)
	}

	out := make([]StageMatches, 0, len(CupStages))
	for _, stage := range CupStages {
		matches := byStage[stage.Key]
		if matches == nil {
			matches = []Match{}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			if !matches[i].Date.Equal(matches[j].Date) {
				return matches[i].Date.Before(matches[j].Date)
			}
			return matches[i].KickoffTime < matches[j].KickoffTime
		})
		out = append(out, StageMatches{Stage: stage, Matches: matches})
	}
	return out
}
