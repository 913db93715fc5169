package httpapi

import "net/http"

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoals")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.goalService.ListByMatch(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "list goals failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, goalToDTO))
}

func (h *Handler) AddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGoal")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req goalRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.goalService.Add(ctx, matchID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "add goal failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, goalToDTO(item))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGoal")
	defer span.End()

	goalID, err := pathID(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.goalService.Delete(ctx, goalID); err != nil {
		h.fail(ctx, w, "delete goal failed", err, "goal_id", goalID)
		return
	}

	writeNoContent(w)
}
