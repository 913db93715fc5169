package httpapi

import (
	"context"
	"net/http"

	"github.com/ksliga/league-api/internal/domain/match"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	h.listMatches(w, r, "httpapi.Handler.ListMatches", h.matchService.ListByChampionship)
}

func (h *Handler) ListCalendar(w http.ResponseWriter, r *http.Request) {
	h.listMatches(w, r, "httpapi.Handler.ListCalendar", h.matchService.Calendar)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	h.listMatches(w, r, "httpapi.Handler.ListResults", h.matchService.Results)
}

func (h *Handler) listMatches(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	load func(ctx context.Context, championshipID int64) ([]match.Match, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := load(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, championshipID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create match failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, matchID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.fail(ctx, w, "delete match failed", err, "match_id", matchID)
		return
	}

	writeNoContent(w)
}
