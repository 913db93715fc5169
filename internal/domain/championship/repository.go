package championship

import "context"

// Repository describes championship persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Championship, error)
	GetByID(ctx context.Context, id int64) (Championship, bool, error)
	GetActive(ctx context.Context) (Championship, bool, error)
	Create(ctx context.Context, item Championship) (Championship, error)
	Update(ctx context.Context, item Championship) error
	// Delete removes the championship together with its teams, matches,
	// players and goals.
	Delete(ctx context.Context, id int64) error
}
