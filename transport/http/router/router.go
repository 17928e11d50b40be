package router

import (
	"hotel/config"
	"hotel/infras/prometheus"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hotel/docs" // registers the swagger spec
)

const (
	swaggerRoute   = "/swagger/*"
	swaggerDocJSON = "/swagger/doc.json"
)

type DomainHandlers struct {
	Room  room.Handler
	Guest guest.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	config         *config.Config
	middleware     middleware.AppMiddleware
	metrics        *prometheus.Metrics
}

// SetupRoutes installs the middleware chain, then the HTML pages, the /v1
// JSON API and the operational endpoints.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.middleware.RequestID, r.middleware.Logging)

	if r.config.Metrics.Enable {
		router.Use(r.middleware.Metrics)
	}

	router.Use(
		chiMiddleware.Recoverer,
		r.middleware.Tracing,
		chiMiddleware.Timeout(r.requestTimeout()),
	)

	if r.config.Metrics.Enable {
		router.Method(http.MethodGet, r.config.Metrics.Path, r.metrics.Handler())
	}

	router.Get(swaggerRoute, httpSwagger.Handler(httpSwagger.URL(swaggerDocJSON)))

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.CORS(), r.middleware.RateLimit())

		r.DomainHandlers.Room.Pages(routerGroup)
		r.DomainHandlers.Guest.Pages(routerGroup)

		routerGroup.Route("/v1", func(v1 chi.Router) {
			r.DomainHandlers.Room.Router(v1)
			r.DomainHandlers.Guest.Router(v1)
		})
	})
}

func (r *Router) requestTimeout() time.Duration {
	if r.config.Server.RequestTimeoutSeconds <= 0 {
		return 15 * time.Second
	}

	return time.Duration(r.config.Server.RequestTimeoutSeconds) * time.Second
}

func New(domainHandlers DomainHandlers, cfg *config.Config, appMiddleware middleware.AppMiddleware, metrics *prometheus.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		config:         cfg,
		middleware:     appMiddleware,
		metrics:        metrics,
	}
}
