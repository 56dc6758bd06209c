package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/service"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/pipelinesdk"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleLogin godoc
//
//	@Summary		Sign in
//	@Description	Fabricates a profile for the given email and role and makes it the active session.
//	@Description	Any previously active session is replaced and its token stops working. No password is checked.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pipelinesdk.LoginRequest				true	"email, role, company"
//	@Success		200		{object}	pipelinesdk.SessionResponse				"access_token, token_type, expires_in, profile"
//	@Failure		400		{object}	pipelinesdk.ValidationErrorResponse		"code, message, details"
//	@Failure		429		{object}	pipelinesdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	pipelinesdk.ErrorResponse				"error, error_description"
//	@Router			/v1/session [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pipelinesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		pipelinesdk.ErrInvalidJSON.WriteError(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		pipelinesdk.NewValidationError(errs).WriteError(w)
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		pipelinesdk.NewValidationError(map[string]string{"role": "role must be HR or COMPANY"}).WriteError(w)
		return
	}

	sess, err := h.SessionService.Login(ctx, service.LoginInput{
		Email:   strings.TrimSpace(req.Email),
		Role:    role,
		Company: req.Company,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyMissing):
			pipelinesdk.NewValidationError(map[string]string{"company": "company is required for COMPANY logins"}).WriteError(w)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Info("login abandoned", "err", err)
			pipelinesdk.NewAPIError(http.StatusServiceUnavailable, pipelinesdk.ErrorCodeServerError, "login was cancelled").WriteError(w)
		default:
			log.Error("failed to start session", "err", err)
			pipelinesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pipelinesdk.SessionResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(sess.ExpiresAt).Round(time.Second).Seconds()),
		Profile:     toProfile(sess.Profile),
	})
}

// HandleLogout godoc
//
//	@Summary		Sign out
//	@Description	Clears the active session. Every token issued so far is rejected afterwards.
//	@Tags			Session
//	@Success		204	"No Content"
//	@Failure		401	{object}	pipelinesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.SessionService.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// HandleGet godoc
//
//	@Summary		Current profile
//	@Description	Returns the profile of the active session.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	pipelinesdk.Profile			"id, name, email, role, company, avatar"
//	@Failure		401	{object}	pipelinesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.SessionService.Current()
	if !ok {
		pipelinesdk.ErrNotSignedIn.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(profile))
}
