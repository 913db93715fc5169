package httpapi

import "net/http"

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingService.Compute(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "compute standings failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, standingToDTO))
}

func (h *Handler) GetCupBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCupBracket")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stages, err := h.cupService.Bracket(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "build cup bracket failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(stages, cupStageToDTO))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.overviewService.Get(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "get overview failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}
