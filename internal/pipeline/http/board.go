package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/service"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/view"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/pipelinesdk"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"
)

type BoardHandler struct {
	BoardService     *service.BoardService
	ViewStateService *service.ViewStateService
}

// HandleGet godoc
//
//	@Summary		Current board
//	@Description	Projection of the visible candidates for the current search query, view mode and
//	@Description	collapsed groups. Only the field for the active mode (sections, columns or list) is set.
//	@Tags			Board
//	@Produce		json
//	@Success		200	{object}	pipelinesdk.ProjectionResponse	"mode, query, stats and one of sections, columns, list"
//	@Failure		401	{object}	pipelinesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/board [get].
func (h *BoardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.writeProjection(w, r)
}

// HandleSearch godoc
//
//	@Summary		Set search query
//	@Description	Replaces the search query and returns the new projection. An empty query clears the search.
//	@Tags			Board
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pipelinesdk.SearchRequest		true	"query"
//	@Success		200		{object}	pipelinesdk.ProjectionResponse	"the new projection"
//	@Failure		400		{object}	pipelinesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	pipelinesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/board/search [put].
func (h *BoardHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req pipelinesdk.SearchRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		pipelinesdk.ErrInvalidJSON.WriteError(w)
		return
	}

	h.ViewStateService.SetQuery(req.Query)
	h.writeProjection(w, r)
}

// HandleMode godoc
//
//	@Summary		Set view mode
//	@Description	Switches between the sections, board and list layouts and returns the new projection.
//	@Tags			Board
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pipelinesdk.ModeRequest				true	"mode"
//	@Success		200		{object}	pipelinesdk.ProjectionResponse		"the new projection"
//	@Failure		400		{object}	pipelinesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	pipelinesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/board/mode [put].
func (h *BoardHandler) HandleMode(w http.ResponseWriter, r *http.Request) {
	var req pipelinesdk.ModeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		pipelinesdk.ErrInvalidJSON.WriteError(w)
		return
	}

	mode, err := view.ParseMode(req.Mode)
	if err != nil {
		pipelinesdk.NewValidationError(map[string]string{"mode": "mode must be sections, board or list"}).WriteError(w)
		return
	}

	h.ViewStateService.SetMode(mode)
	h.writeProjection(w, r)
}

// HandleToggle godoc
//
//	@Summary		Toggle a group
//	@Description	Flips a company/role group of the sections view between expanded and collapsed.
//	@Description	The group is named by its key, or by company and role. Groups start expanded.
//	@Tags			Board
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pipelinesdk.ToggleGroupRequest		true	"key, or company and role"
//	@Success		200		{object}	pipelinesdk.ToggleGroupResponse		"key, expanded"
//	@Failure		400		{object}	pipelinesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	pipelinesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/board/groups/toggle [post].
func (h *BoardHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req pipelinesdk.ToggleGroupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		pipelinesdk.ErrInvalidJSON.WriteError(w)
		return
	}

	key := req.Key
	if key == "" {
		if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Role) == "" {
			pipelinesdk.NewValidationError(map[string]string{"key": "key or company and role are required"}).WriteError(w)
			return
		}
		key = view.GroupKey(req.Company, req.Role)
	}

	expanded := h.ViewStateService.Toggle(key)
	slogx.FromContext(r.Context()).Debug("group toggled", "key", key, "expanded", expanded)

	httpx.WriteJSON(w, http.StatusOK, pipelinesdk.ToggleGroupResponse{Key: key, Expanded: expanded})
}

func (h *BoardHandler) writeProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := viewerFromContext(ctx)
	if !ok {
		pipelinesdk.ErrNotSignedIn.WriteError(w)
		return
	}

	p, err := h.BoardService.Projection(ctx, viewer)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			pipelinesdk.ErrNotSignedIn.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to build projection", "err", err)
		pipelinesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProjection(p))
}
