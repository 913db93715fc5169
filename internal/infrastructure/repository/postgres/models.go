package postgres

import (
	"database/sql"
	"time"
)

type championshipTableModel struct {
	ID             int64     `db:"id,readonly"`
	Name           string    `db:"name"`
	Season         string    `db:"season"`
	IsActive       bool      `db:"is_active"`
	TournamentType string    `db:"tournament_type"`
	CreatedAt      time.Time `db:"created_at,readonly"`
	UpdatedAt      time.Time `db:"updated_at,readonly"`
}

type teamTableModel struct {
	ID             int64          `db:"id,readonly"`
	ChampionshipID int64          `db:"championship_id"`
	Name           string         `db:"name"`
	Logo           sql.NullString `db:"logo"`
	CreatedAt      time.Time      `db:"created_at,readonly"`
	UpdatedAt      time.Time      `db:"updated_at,readonly"`
}

type matchTableModel struct {
	ID             int64          `db:"id,readonly"`
	ChampionshipID int64          `db:"championship_id"`
	Round          int            `db:"round"`
	MatchDate      time.Time      `db:"match_date"`
	MatchTime      sql.NullString `db:"match_time"`
	HomeTeam       string         `db:"home_team"`
	AwayTeam       string         `db:"away_team"`
	HomeScore      sql.NullInt32  `db:"home_score"`
	AwayScore      sql.NullInt32  `db:"away_score"`
	IsFinished     bool           `db:"is_finished"`
	CupStage       sql.NullString `db:"cup_stage"`
	CreatedAt      time.Time      `db:"created_at,readonly"`
	UpdatedAt      time.Time      `db:"updated_at,readonly"`
}

type playerTableModel struct {
	ID             int64     `db:"id,readonly"`
	ChampionshipID int64     `db:"championship_id"`
	Name           string    `db:"name"`
	Team           string    `db:"team"`
	Goals          int       `db:"goals"`
	CreatedAt      time.Time `db:"created_at,readonly"`
	UpdatedAt      time.Time `db:"updated_at,readonly"`
}

type goalTableModel struct {
	ID         int64         `db:"id,readonly"`
	MatchID    int64         `db:"match_id"`
	PlayerName string        `db:"player_name"`
	TeamName   string        `db:"team_name"`
	Minute     sql.NullInt32 `db:"minute"`
	GoalType   string        `db:"goal_type"`
	CreatedAt  time.Time     `db:"created_at,readonly"`
}

type createdRow struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
