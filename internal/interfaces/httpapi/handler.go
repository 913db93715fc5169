package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/ksliga/league-api/internal/platform/logging"
	"github.com/ksliga/league-api/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

// Services groups the use cases the HTTP layer dispatches to.
type Services struct {
	Championships *usecase.ChampionshipService
	Teams         *usecase.TeamService
	Matches       *usecase.MatchService
	Players       *usecase.PlayerService
	Goals         *usecase.GoalService
	Standings     *usecase.StandingService
	Cup           *usecase.CupService
	Overview      *usecase.OverviewService
}

type Handler struct {
	championshipService *usecase.ChampionshipService
	teamService         *usecase.TeamService
	matchService        *usecase.MatchService
	playerService       *usecase.PlayerService
	goalService         *usecase.GoalService
	standingService     *usecase.StandingService
	cupService          *usecase.CupService
	overviewService     *usecase.OverviewService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		championshipService: services.Championships,
		teamService:         services.Teams,
		matchService:        services.Matches,
		playerService:       services.Players,
		goalService:         services.Goals,
		standingService:     services.Standings,
		cupService:          services.Cup,
		overviewService:     services.Overview,
		logger:              logger,
		validator:           newValidator(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeAndValidate(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	defer body.Close()

	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

// fail logs client errors at warn and everything else at error before
// writing the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
