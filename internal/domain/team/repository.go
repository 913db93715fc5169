package team

import (
	"context"
	"errors"
)

// ErrDuplicateName is returned when a championship already has a team with
// the same name.
var ErrDuplicateName = errors.New("team name already exists in championship")

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByChampionship(ctx context.Context, championshipID int64) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID int64) error
}
