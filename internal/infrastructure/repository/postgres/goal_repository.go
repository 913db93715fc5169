package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ksliga/league-api/internal/domain/goal"
	qb "github.com/ksliga/league-api/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select("*").From("match_goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute ASC NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by match query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals by match: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}
	return out, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID int64) (goal.Goal, bool, error) {
	query, args, err := qb.Select("*").From("match_goals").
		Where(qb.Eq("id", goalID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return goal.Goal{}, false, fmt.Errorf("build select goal by id query: %w", err)
	}

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return goal.Goal{}, false, nil
		}
		return goal.Goal{}, false, fmt.Errorf("get goal by id: %w", err)
	}
	return goalFromRow(row), true, nil
}

func (r *GoalRepository) Create(ctx context.Context, item goal.Goal) (goal.Goal, error) {
	query, args, err := qb.InsertModel("match_goals", goalTableModel{
		MatchID:    item.MatchID,
		PlayerName: item.PlayerName,
		TeamName:   item.TeamName,
		Minute:     intPtrToNull(item.Minute),
		GoalType:   item.Type,
	}, "RETURNING id, created_at")
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	var created createdRow
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal: %w", err)
	}

	item.ID = created.ID
	item.CreatedAt = created.CreatedAt
	return item, nil
}

func (r *GoalRepository) Delete(ctx context.Context, goalID int64) error {
	query, args, err := qb.DeleteFrom("match_goals").Where(qb.Eq("id", goalID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete goal query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete goal id=%d: %w", goalID, err)
	}
	return nil
}

func goalFromRow(row goalTableModel) goal.Goal {
	return goal.Goal{
		ID:         row.ID,
		MatchID:    row.MatchID,
		PlayerName: row.PlayerName,
		TeamName:   row.TeamName,
		Minute:     nullIntToPtr(row.Minute),
		Type:       row.GoalType,
		CreatedAt:  row.CreatedAt,
	}
}
