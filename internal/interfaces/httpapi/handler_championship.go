package httpapi

import (
	"net/http"
)

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	items, err := h.championshipService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list championships failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, championshipToDTO))
}

func (h *Handler) GetActiveChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveChampionship")
	defer span.End()

	item, err := h.championshipService.Active(ctx)
	if err != nil {
		h.fail(ctx, w, "get active championship failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipToDTO(item))
}

func (h *Handler) GetChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionship")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.championshipService.Get(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "get championship failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipToDTO(item))
}

func (h *Handler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChampionship")
	defer span.End()

	var req championshipRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.championshipService.Create(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create championship failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, championshipToDTO(item))
}

func (h *Handler) UpdateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChampionship")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req championshipRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.championshipService.Update(ctx, championshipID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update championship failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipToDTO(item))
}

func (h *Handler) DeleteChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChampionship")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.championshipService.Delete(ctx, championshipID); err != nil {
		h.fail(ctx, w, "delete championship failed", err, "championship_id", championshipID)
		return
	}

	h.logger.InfoContext(ctx, "championship deleted", "championship_id", championshipID)
	writeNoContent(w)
}
