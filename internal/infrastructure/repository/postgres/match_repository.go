package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ksliga/league-api/internal/domain/match"
	qb "github.com/ksliga/league-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByChampionship(ctx context.Context, championshipID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("championship_id", championshipID)).
		OrderBy("round", "match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by championship query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by championship: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchToRow(item), "RETURNING id, created_at")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var created createdRow
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	item.ID = created.ID
	item.CreatedAt = created.CreatedAt
	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	builder, err := qb.UpdateModel("matches", matchToRow(item))
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match id=%d: %w", item.ID, err)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for the match goals.
func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match id=%d: %w", matchID, err)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.ID,
		ChampionshipID: row.ChampionshipID,
		Round:          row.Round,
		Date:           row.MatchDate.UTC(),
		KickoffTime:    row.MatchTime.String,
		HomeTeam:       row.HomeTeam,
		AwayTeam:       row.AwayTeam,
		HomeScore:      nullIntToPtr(row.HomeScore),
		AwayScore:      nullIntToPtr(row.AwayScore),
		IsFinished:     row.IsFinished,
		CupStage:       row.CupStage.String,
		CreatedAt:      row.CreatedAt,
	}
}

func matchToRow(item match.Match) matchTableModel {
	return matchTableModel{
		ChampionshipID: item.ChampionshipID,
		Round:          item.Round,
		MatchDate:      item.Date,
		MatchTime:      stringToNull(item.KickoffTime),
		HomeTeam:       item.HomeTeam,
		AwayTeam:       item.AwayTeam,
		HomeScore:      intPtrToNull(item.HomeScore),
		AwayScore:      intPtrToNull(item.AwayScore),
		IsFinished:     item.IsFinished,
		CupStage:       stringToNull(item.CupStage),
	}
}
