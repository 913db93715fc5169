package match

import (
	"strings"
	"testing"
	"time"
)

func intPtr(v int) *int {
	return &v
}

func TestMatchValidate(t *testing.T) {
	valid := Match{
		ChampionshipID: 1,
		Round:          1,
		Date:           time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
		KickoffTime:    "18:30",
		HomeTeam:       "Karpaty",
		AwayTeam:       "Rukh",
	}

	tests := []struct {
		name    string
		mutate  func(*Match)
		wantErr string
	}{
		{name: "valid scheduled", mutate: func(*Match) {}},
		{name: "valid finished", mutate: func(m *Match) {
			m.IsFinished = true
			m.HomeScore = intPtr(2)
			m.AwayScore = intPtr(0)
		}},
		{name: "valid cup stage", mutate: func(m *Match) { m.CupStage = "final" }},
		{name: "missing championship", mutate: func(m *Match) { m.ChampionshipID = 0 }, wantErr: "championship"},
		{name: "round zero", mutate: func(m *Match) { m.Round = 0 }, wantErr: "round"},
		{name: "missing date", mutate: func(m *Match) { m.Date = time.Time{} }, wantErr: "date"},
		{name: "bad time", mutate: func(m *Match) { m.KickoffTime = "25:00" }, wantErr: "HH:MM"},
		{name: "same teams", mutate: func(m *Match) { m.AwayTeam = m.HomeTeam }, wantErr: "differ"},
		{name: "missing away", mutate: func(m *Match) { m.AwayTeam = " " }, wantErr: "required"},
		{name: "one score", mutate: func(m *Match) { m.HomeScore = intPtr(1) }, wantErr: "together"},
		{name: "negative score", mutate: func(m *Match) {
			m.HomeScore = intPtr(-1)
			m.AwayScore = intPtr(0)
		}, wantErr: ">= 0"},
		{name: "finished without score", mutate: func(m *Match) { m.IsFinished = true }, wantErr: "finished"},
		{name: "unknown stage", mutate: func(m *Match) { m.CupStage = "1/64" }, wantErr: "cup stage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHasResult(t *testing.T) {
	if (Match{IsFinished: true, HomeScore: intPtr(1)}).HasResult() {
		t.Fatalf("expected no result when away score is missing")
	}
	if (Match{HomeScore: intPtr(1), AwayScore: intPtr(1)}).HasResult() {
		t.Fatalf("expected no result for unfinished match")
	}
	if !(Match{IsFinished: true, HomeScore: intPtr(0), AwayScore: intPtr(0)}).HasResult() {
		t.Fatalf("expected result for finished 0-0")
	}
}

func TestSortScheduleAndSplit(t *testing.T) {
	d1 := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 7)
	items := []Match{
		{ID: 3, Round: 2, Date: d1},
		{ID: 2, Round: 1, Date: d2, IsFinished: true},
		{ID: 1, Round: 1, Date: d1, IsFinished: true},
	}

	SortSchedule(items)
	if items[0].ID != 1 || items[1].ID != 2 || items[2].ID != 3 {
		t.Fatalf("unexpected order: %d %d %d", items[0].ID, items[1].ID, items[2].ID)
	}

	calendar, results := SplitByStatus(items)
	if len(calendar) != 1 || calendar[0].ID != 3 {
		t.Fatalf("unexpected calendar: %+v", calendar)
	}
	if len(results) != 2 || results[0].ID != 1 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestGroupByCupStage(t *testing.T) {
	d1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	items := []Match{
		{ID: 1, CupStage: "Фінал", Date: d1.AddDate(0, 1, 0)},
		{ID: 2, CupStage: "1/2", Date: d1.AddDate(0, 0, 7)},
		{ID: 3, CupStage: "1/2 фіналу", Date: d1},
		{ID: 4, CupStage: ""},
		{ID: 5, CupStage: "group A"},
	}

	got := GroupByCupStage(items)
	if len(got) != len(CupStages) {
		t.Fatalf("expected %d stages, got %d", len(CupStages), len(got))
	}
	for i, stage := range got {
		if stage.Stage.Key != CupStages[i].Key {
			t.Fatalf("stage %d: expected %s, got %s", i, CupStages[i].Key, stage.Stage.Key)
		}
		if stage.Matches == nil {
			t.Fatalf("stage %s: expected non-nil match list", stage.Stage.Key)
		}
	}

	semis := got[4]
	if len(semis.Matches) != 2 || semis.Matches[0].ID != 3 || semis.Matches[1].ID != 2 {
		t.Fatalf("unexpected semi-final matches: %+v", semis.Matches)
	}
	final := got[5]
	if len(final.Matches) != 1 || final.Matches[0].ID != 1 {
		t.Fatalf("unexpected final matches: %+v", final.Matches)
	}
	if len(got[0].Matches) != 0 {
		t.Fatalf("expected empty 1/32 stage")
	}
}

func TestNormalizeCupStage(t *testing.T) {
	tests := map[string]string{
		"1/8 фіналу": "1/8",
		" FINAL ":    "final",
		"1/4":        "1/4",
		"":           "",
		"other":      "other",
	}
	for in, want := range tests {
		if got := NormalizeCupStage(in); got != want {
			t.Fatalf("NormalizeCupStage(%q)=%q want=%q", in, got, want)
		}
	}
}
