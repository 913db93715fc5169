package httpapi

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/goal"
	"github.com/ksliga/league-api/internal/domain/match"
	"github.com/ksliga/league-api/internal/domain/player"
	"github.com/ksliga/league-api/internal/domain/standing"
	"github.com/ksliga/league-api/internal/domain/team"
	"github.com/ksliga/league-api/internal/usecase"
)

// newValidator reports field errors by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type championshipRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Season         string `json:"season" validate:"required,max=50"`
	IsActive       bool   `json:"is_active"`
	TournamentType string `json:"tournament_type" validate:"omitempty,oneof=league cup"`
}

type teamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Logo string `json:"logo" validate:"omitempty,max=2048"`
}

type matchRequest struct {
	Round       int    `json:"round" validate:"gte=1"`
	Date        string `json:"date" validate:"required"`
	KickoffTime string `json:"time" validate:"omitempty,len=5"`
	HomeTeam    string `json:"home_team" validate:"required,max=100"`
	AwayTeam    string `json:"away_team" validate:"required,max=100"`
	HomeScore   *int   `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore   *int   `json:"away_score" validate:"omitempty,gte=0"`
	IsFinished  bool   `json:"is_finished"`
	CupStage    string `json:"cup_stage" validate:"omitempty,max=50"`
}

type playerRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Team  string `json:"team" validate:"required,max=100"`
	Goals int    `json:"goals" validate:"gte=0"`
}

type goalRequest struct {
	PlayerName string `json:"player_name" validate:"required,max=100"`
	TeamName   string `json:"team_name" validate:"required,max=100"`
	Minute     *int   `json:"minute" validate:"omitempty,gte=1,lte=130"`
	Type       string `json:"goal_type" validate:"omitempty,oneof=regular penalty own_goal"`
}

func (r championshipRequest) toInput() usecase.ChampionshipInput {
	return usecase.ChampionshipInput{
		Name:           r.Name,
		Season:         r.Season,
		IsActive:       r.IsActive,
		TournamentType: r.TournamentType,
	}
}

func (r teamRequest) toInput() usecase.TeamInput {
	return usecase.TeamInput{Name: r.Name, Logo: r.Logo}
}

func (r matchRequest) toInput() usecase.MatchInput {
	return usecase.MatchInput{
		Round:       r.Round,
		Date:        r.Date,
		KickoffTime: r.KickoffTime,
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		HomeScore:   r.HomeScore,
		AwayScore:   r.AwayScore,
		IsFinished:  r.IsFinished,
		CupStage:    r.CupStage,
	}
}

func (r playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{Name: r.Name, Team: r.Team, Goals: r.Goals}
}

func (r goalRequest) toInput() usecase.GoalInput {
	return usecase.GoalInput{
		PlayerName: r.PlayerName,
		TeamName:   r.TeamName,
		Minute:     r.Minute,
		Type:       r.Type,
	}
}

type championshipDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Season         string `json:"season"`
	IsActive       bool   `json:"is_active"`
	TournamentType string `json:"tournament_type"`
	CreatedAt      string `json:"created_at"`
}

type teamDTO struct {
	ID             int64  `json:"id"`
	ChampionshipID int64  `json:"championship_id"`
	Name           string `json:"name"`
	Logo           string `json:"logo"`
}

type matchDTO struct {
	ID             int64  `json:"id"`
	ChampionshipID int64  `json:"championship_id"`
	Round          int    `json:"round"`
	Date           string `json:"date"`
	KickoffTime    string `json:"time,omitempty"`
	HomeTeam       string `json:"home_team"`
	AwayTeam       string `json:"away_team"`
	HomeScore      *int   `json:"home_score"`
	AwayScore      *int   `json:"away_score"`
	IsFinished     bool   `json:"is_finished"`
	CupStage       string `json:"cup_stage,omitempty"`
}

type matchWithGoalsDTO struct {
	matchDTO
	Goals []goalDTO `json:"goals"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         int64  `json:"team_id"`
	Team           string `json:"team"`
	Logo           string `json:"logo"`
	Games          int    `json:"games"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type playerDTO struct {
	ID             int64  `json:"id"`
	ChampionshipID int64  `json:"championship_id"`
	Name           string `json:"name"`
	Team           string `json:"team"`
	Goals          int    `json:"goals"`
}

type goalDTO struct {
	ID         int64  `json:"id"`
	MatchID    int64  `json:"match_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	Minute     *int   `json:"minute"`
	Type       string `json:"goal_type"`
}

type cupStageDTO struct {
	Key     string            `json:"key"`
	Label   string            `json:"label"`
	Matches []matchDTO        `json:"matches"`
	Logos   map[string]string `json:"logos"`
}

type overviewDTO struct {
	Championship championshipDTO     `json:"championship"`
	Teams        []teamDTO           `json:"teams"`
	Standings    []standingDTO       `json:"standings"`
	Calendar     []matchDTO          `json:"calendar"`
	Results      []matchWithGoalsDTO `json:"results"`
	Scorers      []playerDTO         `json:"scorers"`
}

func championshipToDTO(v championship.Championship) championshipDTO {
	return championshipDTO{
		ID:             v.ID,
		Name:           v.Name,
		Season:         v.Season,
		IsActive:       v.IsActive,
		TournamentType: v.TournamentType,
		CreatedAt:      formatTime(v.CreatedAt),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:             v.ID,
		ChampionshipID: v.ChampionshipID,
		Name:           v.Name,
		Logo:           v.LogoOrPlaceholder(),
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:             v.ID,
		ChampionshipID: v.ChampionshipID,
		Round:          v.Round,
		Date:           v.Date.Format(match.DateLayout),
		KickoffTime:    v.KickoffTime,
		HomeTeam:       v.HomeTeam,
		AwayTeam:       v.AwayTeam,
		HomeScore:      v.HomeScore,
		AwayScore:      v.AwayScore,
		IsFinished:     v.IsFinished,
		CupStage:       v.CupStage,
	}
}

func standingToDTO(v standing.Row) standingDTO {
	return standingDTO{
		Position:       v.Position,
		TeamID:         v.TeamID,
		Team:           v.TeamName,
		Logo:           v.Logo,
		Games:          v.Games,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference(),
		Points:         v.Points,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:             v.ID,
		ChampionshipID: v.ChampionshipID,
		Name:           v.Name,
		Team:           v.Team,
		Goals:          v.Goals,
	}
}

func goalToDTO(v goal.Goal) goalDTO {
	return goalDTO{
		ID:         v.ID,
		MatchID:    v.MatchID,
		PlayerName: v.PlayerName,
		TeamName:   v.TeamName,
		Minute:     v.Minute,
		Type:       v.Type,
	}
}

func cupStageToDTO(v usecase.CupStage) cupStageDTO {
	logos := v.Logos
	if logos == nil {
		logos = map[string]string{}
	}
	return cupStageDTO{
		Key:     v.Stage.Key,
		Label:   v.Stage.Label,
		Matches: mapSlice(v.Matches, matchToDTO),
		Logos:   logos,
	}
}

func overviewToDTO(v usecase.Overview) overviewDTO {
	return overviewDTO{
		Championship: championshipToDTO(v.Championship),
		Teams:        mapSlice(v.Teams, teamToDTO),
		Standings:    mapSlice(v.Standings, standingToDTO),
		Calendar:     mapSlice(v.Calendar, matchToDTO),
		Results: mapSlice(v.Results, func(item usecase.MatchWithGoals) matchWithGoalsDTO {
			return matchWithGoalsDTO{
				matchDTO: matchToDTO(item.Match),
				Goals:    mapSlice(item.Goals, goalToDTO),
			}
		}),
		Scorers: mapSlice(v.Scorers, playerToDTO),
	}
}

// mapSlice always returns a non-nil slice so lists encode as [].
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
