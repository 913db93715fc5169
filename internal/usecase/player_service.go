package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/player"
)

type PlayerInput struct {
	Name  string
	Team  string
	Goals int
}

type PlayerService struct {
	championshipRepo championship.Repository
	playerRepo       player.Repository
}

func NewPlayerService(championshipRepo championship.Repository, playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		championshipRepo: championshipRepo,
		playerRepo:       playerRepo,
	}
}

// TopScorers returns the championship players ordered by goals, then name.
func (s *PlayerService) TopScorers(ctx context.Context, championshipID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopScorers")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list players by championship: %w", err)
	}
	player.SortScorers(items)
	return items, nil
}

func (s *PlayerService) Create(ctx context.Context, championshipID int64, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return player.Player{}, err
	}

	item := player.Player{
		ChampionshipID: championshipID,
		Name:           strings.TrimSpace(input.Name),
		Team:           strings.TrimSpace(input.Team),
		Goals:          input.Goals,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID int64, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Team = strings.TrimSpace(input.Team)
	item.Goals = input.Goals
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.getPlayer(ctx, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}
