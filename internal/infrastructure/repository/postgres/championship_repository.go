package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ksliga/league-api/internal/domain/championship"
	qb "github.com/ksliga/league-api/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, championshipFromRow(row))
	}
	return out, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, id int64) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build select championship by id query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *ChampionshipRepository) GetActive(ctx context.Context) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("is_active", true)).
		OrderBy("created_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build select active championship query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *ChampionshipRepository) Create(ctx context.Context, item championship.Championship) (championship.Championship, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("begin tx create championship: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if item.IsActive {
		if err := clearActive(ctx, tx, 0); err != nil {
			return championship.Championship{}, err
		}
	}

	query, args, err := qb.InsertModel("championships", championshipToRow(item), "RETURNING id, created_at")
	if err != nil {
		return championship.Championship{}, fmt.Errorf("build insert championship query: %w", err)
	}
	var created createdRow
	if err := tx.GetContext(ctx, &created, query, args...); err != nil {
		return championship.Championship{}, fmt.Errorf("insert championship: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return championship.Championship{}, fmt.Errorf("commit create championship tx: %w", err)
	}

	item.ID = created.ID
	item.CreatedAt = created.CreatedAt
	return item, nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, item championship.Championship) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update championship: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if item.IsActive {
		if err := clearActive(ctx, tx, item.ID); err != nil {
			return err
		}
	}

	builder, err := qb.UpdateModel("championships", championshipToRow(item))
	if err != nil {
		return fmt.Errorf("build update championship query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update championship query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update championship id=%d: %w", item.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update championship tx: %w", err)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for teams, matches, players and goals.
func (r *ChampionshipRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("championships").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete championship query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete championship id=%d: %w", id, err)
	}
	return nil
}

func (r *ChampionshipRepository) getOne(ctx context.Context, query string, args []any) (championship.Championship, bool, error) {
	var row championshipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship: %w", err)
	}
	return championshipFromRow(row), true, nil
}

func clearActive(ctx context.Context, tx *sqlx.Tx, exceptID int64) error {
	query, args, err := qb.Update("championships").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_active", true), qb.Ne("id", exceptID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear active championship query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear active championship: %w", err)
	}
	return nil
}

func championshipFromRow(row championshipTableModel) championship.Championship {
	return championship.Championship{
		ID:             row.ID,
		Name:           row.Name,
		Season:         row.Season,
		IsActive:       row.IsActive,
		TournamentType: row.TournamentType,
		CreatedAt:      row.CreatedAt,
	}
}

func championshipToRow(item championship.Championship) championshipTableModel {
	return championshipTableModel{
		ID:             item.ID,
		Name:           item.Name,
		Season:         item.Season,
		IsActive:       item.IsActive,
		TournamentType: item.TournamentType,
	}
}
