package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/store"
	"github.com/aussiebroadwan/tasklist/pkg/httpx"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"

	_ "github.com/aussiebroadwan/tasklist/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	UserService *service.UserService
	TaskService *service.TaskService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. CORS runs first so preflight requests are
	// answered before routing.
	r.middlewares = []httpx.Middleware{
		httpx.CORS(),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Task List Service API
//	@version		0.1.0
//	@description	Minimal multi-user task list service. Users register and log in with a
//	@description	username and password, then manage per-user tasks over JSON endpoints.
//	@description
//	@description	All /api endpoints reply with HTTP 200 and a boolean success field in the
//	@description	body; failures carry success=false and a human-readable message.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/tasklist
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	// POST /api/register and /api/login - strict rate limit by IP
	// (credential-guessing surface)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /api/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	loginHandler := &LoginHandler{UserService: r.UserService}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTasks() {
	listHandler := &TaskListHandler{TaskService: r.TaskService}
	addHandler := &TaskAddHandler{TaskService: r.TaskService}
	updateHandler := &TaskUpdateHandler{TaskService: r.TaskService}
	deleteHandler := &TaskDeleteHandler{TaskService: r.TaskService}

	// Task CRUD - lenient rate limit by IP (normal interactive traffic)
	r.Mux.Handle("GET /api/tasks",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/tasks",
		httpx.Chain(addHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /api/tasks/{id}",
		httpx.Chain(updateHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /api/tasks/{id}",
		httpx.Chain(deleteHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
