package goal

import "context"

// Repository describes match goal persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
	GetByID(ctx context.Context, goalID int64) (Goal, bool, error)
	Create(ctx context.Context, item Goal) (Goal, error)
	Delete(ctx context.Context, goalID int64) error
}
