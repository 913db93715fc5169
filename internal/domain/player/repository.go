package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// ListByChampionship returns players ordered as a scorers table.
	ListByChampionship(ctx context.Context, championshipID int64) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID int64) error
}
