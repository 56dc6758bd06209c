package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/service"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/jwtx"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"

	_ "github.com/aussiebroadwan/hirejoy/api/pipeline" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	SessionService   *service.SessionService
	CandidateService *service.CandidateService
	BoardService     *service.BoardService
	ViewStateService *service.ViewStateService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerCandidates()
	r.registerBoard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			HireJoy Pipeline API
//	@version		0.1.0
//	@description	Recruitment pipeline tracker. HR sessions see and manage every candidate, COMPANY
//	@description	sessions see the candidates of their own company.
//	@description
//	@description				Only one session is active at a time. Signing in replaces the previous session.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/hirejoy
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from POST /v1/session. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured verifies the bearer token, rejects tokens of replaced sessions and
// rate limits per session.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, extra ...httpx.Middleware) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier, r.SessionService.Check)}
	mws = append(mws, extra...)
	mws = append(mws, httpx.RateLimitBySession(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// POST /session - strict rate limit by IP, there is no password to guess
	// but every login throws the active user out
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.LoginLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/session", r.secured(http.HandlerFunc(h.HandleLogout), httpx.WriteLimit))
	r.Mux.Handle("GET /v1/session", r.secured(http.HandlerFunc(h.HandleGet), httpx.ReadLimit))
}

func (r *Router) registerCandidates() {
	h := &CandidatesHandler{
		CandidateService: r.CandidateService,
		ViewStateService: r.ViewStateService,
	}

	r.Mux.Handle("GET /v1/candidates", r.secured(http.HandlerFunc(h.HandleList), httpx.ReadLimit))

	// Only HR gets the add form
	r.Mux.Handle("POST /v1/candidates", r.secured(http.HandlerFunc(h.HandleAdd), httpx.WriteLimit,
		httpx.RequireRole(string(domain.RoleHR)),
	))

	r.Mux.Handle("POST /v1/candidates/{id}/move", r.secured(http.HandlerFunc(h.HandleMove), httpx.WriteLimit))
}

func (r *Router) registerBoard() {
	h := &BoardHandler{
		BoardService:     r.BoardService,
		ViewStateService: r.ViewStateService,
	}

	r.Mux.Handle("GET /v1/board", r.secured(http.HandlerFunc(h.HandleGet), httpx.ReadLimit))

	// Search fires on every keystroke so it shares the read budget
	r.Mux.Handle("PUT /v1/board/search", r.secured(http.HandlerFunc(h.HandleSearch), httpx.ReadLimit))
	r.Mux.Handle("PUT /v1/board/mode", r.secured(http.HandlerFunc(h.HandleMode), httpx.WriteLimit))
	r.Mux.Handle("POST /v1/board/groups/toggle", r.secured(http.HandlerFunc(h.HandleToggle), httpx.WriteLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /v1/stages",
		httpx.Chain(StagesHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
