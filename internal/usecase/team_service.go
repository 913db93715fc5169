package usecase

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ksliga/league-api/internal/domain/championship"
	"github.com/ksliga/league-api/internal/domain/team"
)

const MaxLogoBytes = 2 << 20

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// LogoStorage stores team logo files and returns their public URL.
type LogoStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type TeamInput struct {
	Name string
	Logo string
}

type TeamService struct {
	championshipRepo championship.Repository
	teamRepo         team.Repository
	logos            LogoStorage
	now              func() time.Time
}

// NewTeamService builds the service. logos may be nil when logo upload is
// disabled.
func NewTeamService(championshipRepo championship.Repository, teamRepo team.Repository, logos LogoStorage) *TeamService {
	return &TeamService{
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		logos:            logos,
		now:              time.Now,
	}
}

// ListByChampionship returns teams ordered by name.
func (s *TeamService) ListByChampionship(ctx context.Context, championshipID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByChampionship")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list teams by championship: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *TeamService) Create(ctx context.Context, championshipID int64, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if _, err := getChampionship(ctx, s.championshipRepo, championshipID); err != nil {
		return team.Team{}, err
	}

	item := team.Team{
		ChampionshipID: championshipID,
		Name:           strings.TrimSpace(input.Name),
		Logo:           strings.TrimSpace(input.Logo),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureUniqueName(ctx, item); err != nil {
		return team.Team{}, err
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, wrapTeamWriteError("create team", err)
	}
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, teamID int64, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Logo = strings.TrimSpace(input.Logo)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureUniqueName(ctx, item); err != nil {
		return team.Team{}, err
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, wrapTeamWriteError("update team", err)
	}
	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if _, err := s.getTeam(ctx, teamID); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

// UploadLogo stores an image as the team logo and points the team at it.
func (s *TeamService) UploadLogo(ctx context.Context, teamID int64, data []byte) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UploadLogo")
	defer span.End()

	if s.logos == nil {
		return team.Team{}, fmt.Errorf("%w: logo storage is not configured", ErrDependencyUnavailable)
	}
	if len(data) == 0 {
		return team.Team{}, fmt.Errorf("%w: logo file is empty", ErrInvalidInput)
	}
	if len(data) > MaxLogoBytes {
		return team.Team{}, fmt.Errorf("%w: logo exceeds %d bytes", ErrInvalidInput, MaxLogoBytes)
	}

	contentType, ext, err := detectLogoType(data)
	if err != nil {
		return team.Team{}, err
	}

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	key := path.Join("teams", fmt.Sprintf("%d", item.ChampionshipID), fmt.Sprintf("%d-%d%s", item.ID, s.now().Unix(), ext))
	url, err := s.logos.Upload(ctx, key, contentType, data)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: upload logo: %v", ErrDependencyUnavailable, err)
	}

	item.Logo = url
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team logo: %w", err)
	}
	return item, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) ensureUniqueName(ctx context.Context, item team.Team) error {
	items, err := s.teamRepo.ListByChampionship(ctx, item.ChampionshipID)
	if err != nil {
		return fmt.Errorf("list teams by championship: %w", err)
	}
	for _, existing := range items {
		if existing.ID != item.ID && strings.EqualFold(existing.Name, item.Name) {
			return fmt.Errorf("%w: team %q already exists", ErrConflict, item.Name)
		}
	}
	return nil
}

func wrapTeamWriteError(op string, err error) error {
	if crerr.Is(err, team.ErrDuplicateName) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func detectLogoType(data []byte) (string, string, error) {
	detected := mimetype.Detect(data)
	for mime, ext := range logoExtensions {
		if detected.Is(mime) {
			return mime, ext, nil
		}
	}
	return "", "", fmt.Errorf("%w: unsupported logo type %s", ErrInvalidInput, detected.String())
}
