package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/service"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/pipelinesdk"
)

type CandidatesHandler struct {
	CandidateService *service.CandidateService
	ViewStateService *service.ViewStateService
}

// HandleList godoc
//
//	@Summary		List candidates
//	@Description	Flat list of the candidates visible to the session, newest first, with summary stats.
//	@Description	Without the q parameter the board's current search query is applied.
//	@Tags			Candidates
//	@Produce		json
//	@Param			q	query		string								false	"search query"
//	@Success		200	{object}	pipelinesdk.CandidateListResponse	"candidates, stats"
//	@Failure		401	{object}	pipelinesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/candidates [get].
func (h *CandidatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := viewerFromContext(ctx)
	if !ok {
		pipelinesdk.ErrNotSignedIn.WriteError(w)
		return
	}

	params := r.URL.Query()
	query := params.Get("q")
	if !params.Has("q") {
		query = h.ViewStateService.Snapshot().Query
	}

	cs, stats := h.CandidateService.List(ctx, viewer, query)
	httpx.WriteJSON(w, http.StatusOK, pipelinesdk.CandidateListResponse{
		Candidates: toCandidates(cs),
		Stats:      toStats(stats),
	})
}

// HandleAdd godoc
//
//	@Summary		Add a candidate
//	@Description	Puts a new candidate at the front of the pipeline. Only HR sessions may add candidates.
//	@Tags			Candidates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pipelinesdk.AddCandidateRequest			true	"name, email, role, company, stage, notes"
//	@Success		201		{object}	pipelinesdk.Candidate					"the new candidate"
//	@Failure		400		{object}	pipelinesdk.ValidationErrorResponse		"code, message, details"
//	@Failure		401		{object}	pipelinesdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	pipelinesdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/candidates [post].
func (h *CandidatesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pipelinesdk.AddCandidateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		pipelinesdk.ErrInvalidJSON.WriteError(w)
		return
	}

	errs := req.Validate()

	stage := domain.StageApplied
	if strings.TrimSpace(req.Stage) != "" {
		var err error
		if stage, err = domain.ParseStage(strings.TrimSpace(req.Stage)); err != nil {
			if errs == nil {
				errs = map[string]string{}
			}
			errs["stage"] = "unknown stage " + req.Stage
		}
	}

	if errs != nil {
		pipelinesdk.NewValidationError(errs).WriteError(w)
		return
	}

	c := h.CandidateService.Add(ctx, domain.NewCandidate{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Role:    strings.TrimSpace(req.Role),
		Company: strings.TrimSpace(req.Company),
		Stage:   stage,
		Notes:   req.Notes,
	})

	httpx.WriteJSON(w, http.StatusCreated, toCandidate(c))
}

// HandleMove godoc
//
//	@Summary		Move a candidate
//	@Description	Steps a candidate one stage forward or back. Moving past either end of the pipeline
//	@Description	returns the candidate unchanged. Unknown ids, and candidates outside a COMPANY session's
//	@Description	company, are ignored with 204.
//	@Tags			Candidates
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"candidate id"
//	@Param			request	body		pipelinesdk.MoveRequest				true	"direction"
//	@Success		200		{object}	pipelinesdk.Candidate				"the candidate after the move"
//	@Success		204		"No Content"
//	@Failure		400		{object}	pipelinesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	pipelinesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/candidates/{id}/move [post].
func (h *CandidatesHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := viewerFromContext(ctx)
	if !ok {
		pipelinesdk.ErrNotSignedIn.WriteError(w)
		return
	}

	var req pipelinesdk.MoveRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		pipelinesdk.ErrInvalidJSON.WriteError(w)
		return
	}

	dir, err := domain.ParseDirection(req.Direction)
	if err != nil {
		pipelinesdk.NewValidationError(map[string]string{"direction": "direction must be next or prev"}).WriteError(w)
		return
	}

	res := h.CandidateService.Move(ctx, viewer, r.PathValue("id"), dir)
	if !res.Found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCandidate(res.Candidate))
}
