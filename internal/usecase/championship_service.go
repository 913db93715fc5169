package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ksliga/league-api/internal/domain/championship"
)

type ChampionshipInput struct {
	Name           string
	Season         string
	IsActive       bool
	TournamentType string
}

type ChampionshipService struct {
	repo championship.Repository
}

func NewChampionshipService(repo championship.Repository) *ChampionshipService {
	return &ChampionshipService{repo: repo}
}

// List returns championships newest first.
func (s *ChampionshipService) List(ctx context.Context) ([]championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *ChampionshipService) Get(ctx context.Context, id int64) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Get")
	defer span.End()

	return getChampionship(ctx, s.repo, id)
}

// Active returns the championship flagged active. When none is flagged the
// newest one is used; ErrNotFound means there are no championships at all.
func (s *ChampionshipService) Active(ctx context.Context) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Active")
	defer span.End()

	item, exists, err := s.repo.GetActive(ctx)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get active championship: %w", err)
	}
	if exists {
		return item, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("list championships: %w", err)
	}
	item, ok := championship.PickDefault(items)
	if !ok {
		return championship.Championship{}, fmt.Errorf("%w: no championships", ErrNotFound)
	}
	return item, nil
}

func (s *ChampionshipService) Create(ctx context.Context, input ChampionshipInput) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Create")
	defer span.End()

	item := championship.Championship{
		Name:           strings.TrimSpace(input.Name),
		Season:         strings.TrimSpace(input.Season),
		IsActive:       input.IsActive,
		TournamentType: championship.NormalizeType(input.TournamentType),
	}
	if err := item.Validate(); err != nil {
		return championship.Championship{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("create championship: %w", err)
	}
	return created, nil
}

func (s *ChampionshipService) Update(ctx context.Context, id int64, input ChampionshipInput) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Update")
	defer span.End()

	item, err := getChampionship(ctx, s.repo, id)
	if err != nil {
		return championship.Championship{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Season = strings.TrimSpace(input.Season)
	item.IsActive = input.IsActive
	item.TournamentType = championship.NormalizeType(input.TournamentType)
	if err := item.Validate(); err != nil {
		return championship.Championship{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return championship.Championship{}, fmt.Errorf("update championship: %w", err)
	}
	return item, nil
}

func (s *ChampionshipService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Delete")
	defer span.End()

	if _, err := getChampionship(ctx, s.repo, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete championship: %w", err)
	}
	return nil
}

func getChampionship(ctx context.Context, repo championship.Repository, id int64) (championship.Championship, error) {
	if id <= 0 {
		return championship.Championship{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, id)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%d", ErrNotFound, id)
	}
	return item, nil
}
