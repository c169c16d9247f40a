package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/strideapp/stride/internal/stride/service"
	"github.com/strideapp/stride/internal/stride/store"
	"github.com/strideapp/stride/pkg/httpx"
	"github.com/strideapp/stride/pkg/jwtx"
	"github.com/strideapp/stride/pkg/slogx"

	_ "github.com/strideapp/stride/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	resolver     httpx.PrincipalResolver
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	UserService     *service.UserService
	ExerciseService *service.ExerciseService
	CalendarService *service.CalendarService
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
		resolver:     &directoryResolver{store: st},
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
	r.registerAuth()
	r.registerUsers()
	r.registerExercises()
	r.registerCalendar()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Stride Fitness API
//	@version		0.1.0
//	@description	Backend for the Stride fitness tracker: account registration and login, a shared exercise catalog, and per-user activity calendars.
//	@description
//	@description				Access and refresh tokens are HS256-signed JWTs. Send the access token as "Bearer {token}".
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - rate limited by IP + username form field to slow
	// credential stuffing against a single account
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	// POST /refresh - moderate rate limit by IP
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	me := &MeHandler{}
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier, r.resolver),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)

	h := &UsersHandler{UserService: r.UserService}

	// Admin endpoints: the token must carry the admin scope and the
	// handler re-checks the principal's current role.
	admin := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier, r.resolver),
			httpx.RequireAnyScope("admin"),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/users", admin(h.List))
	r.Mux.Handle("POST /v1/users", admin(h.Create))
	r.Mux.Handle("GET /v1/users/{id}", admin(h.Get))
	r.Mux.Handle("PUT /v1/users/{id}", admin(h.Update))
	r.Mux.Handle("DELETE /v1/users/{id}", admin(h.Delete))
}

func (r *Router) registerExercises() {
	h := &ExercisesHandler{ExerciseService: r.ExerciseService}

	// The catalog is shared: any authenticated user may read or edit it.
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier, r.resolver),
			httpx.RequireAnyScope("user", "admin"),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/exercises", secured(h.List))
	r.Mux.Handle("POST /v1/exercises", secured(h.Create))
	r.Mux.Handle("GET /v1/exercises/types", secured(h.Types))
	r.Mux.Handle("GET /v1/exercises/difficulties", secured(h.Difficulties))
	r.Mux.Handle("GET /v1/exercises/{id}", secured(h.Get))
	r.Mux.Handle("PUT /v1/exercises/{id}", secured(h.Update))
	r.Mux.Handle("DELETE /v1/exercises/{id}", secured(h.Delete))
}

func (r *Router) registerCalendar() {
	h := &CalendarHandler{CalendarService: r.CalendarService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier, r.resolver),
			httpx.RequireAnyScope("user", "admin"),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/calendar", secured(h.List))
	r.Mux.Handle("POST /v1/calendar", secured(h.Create))
	r.Mux.Handle("GET /v1/calendar/{id}", secured(h.Get))
	r.Mux.Handle("PUT /v1/calendar/{id}", secured(h.Update))
	r.Mux.Handle("DELETE /v1/calendar/{id}", secured(h.Delete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", &LivezHandler{
		BuildVersion: r.buildVersion,
		StartTime:    r.startTime,
	})
	r.Mux.Handle("GET /readyz", &ReadyzHandler{
		BuildVersion: r.buildVersion,
		StartTime:    r.startTime,
		Store:        r.store,
	})
}
