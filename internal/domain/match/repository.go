package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	// ListByChampionship returns matches ordered by round and date.
	ListByChampionship(ctx context.Context, championshipID int64) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID int64) error
}
