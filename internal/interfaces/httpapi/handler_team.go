package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/ksliga/league-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// multipart framing allowance on top of the logo itself
const logoFormOverheadBytes = 64 << 10

var logoFormFields = map[string]struct{}{"file": {}, "logo": {}}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.ListByChampionship(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamToDTO))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	championshipID, err := pathID(r, "championshipID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req teamRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Create(ctx, championshipID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req teamRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Update(ctx, teamID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.fail(ctx, w, "delete team failed", err, "team_id", teamID)
		return
	}

	writeNoContent(w)
}

// UploadTeamLogo accepts a multipart form with a "file" (or "logo") part, or
// the raw image as the request body.
func (h *Handler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadTeamLogo")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	r.Body = http.MaxBytesReader(w, r.Body, usecase.MaxLogoBytes+logoFormOverheadBytes)
	if err := readLogo(r, buf); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UploadLogo(ctx, teamID, buf.B)
	if err != nil {
		h.fail(ctx, w, "upload team logo failed", err, "team_id", teamID, "size", buf.Len())
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func readLogo(r *http.Request, buf *bytebufferpool.ByteBuffer) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.EqualFold(mediaType, "multipart/form-data") {
		return copyLogo(buf, r.Body)
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return fmt.Errorf("%w: invalid multipart body: %v", usecase.ErrInvalidInput, err)
	}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: multipart field \"file\" is required", usecase.ErrInvalidInput)
		}
		if err != nil {
			return fmt.Errorf("%w: read multipart body: %v", usecase.ErrInvalidInput, err)
		}
		if _, ok := logoFormFields[part.FormName()]; !ok {
			_ = part.Close()
			continue
		}
		err = copyLogo(buf, part)
		_ = part.Close()
		return err
	}
}

func copyLogo(buf *bytebufferpool.ByteBuffer, src io.Reader) error {
	if _, err := buf.ReadFrom(io.LimitReader(src, usecase.MaxLogoBytes+1)); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: logo exceeds %d bytes", usecase.ErrInvalidInput, usecase.MaxLogoBytes)
		}
		return fmt.Errorf("%w: read logo: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
