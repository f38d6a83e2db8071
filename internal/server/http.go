package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports database reachability. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouteRegistrar mounts a group of API routes.
type RouteRegistrar interface {
	Register(r gin.IRouter)
}

// Deps are the collaborators the router is built from.
type Deps struct {
	CORS     config.CORS
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
	DB       Pinger
	Handlers []RouteRegistrar
}

// NewRouter wires middleware, API routes and the operational endpoints.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.ContextWithFallback = true

	r.Use(RequestID(), RequestLogger(d.Logger), Metrics(d.Metrics), Recovery())
	r.Use(CORS(d.CORS)...)

	r.NoRoute(func(c *gin.Context) { httperrors.Abort(c, http.StatusNotFound) })
	r.NoMethod(func(c *gin.Context) { httperrors.Abort(c, http.StatusMethodNotAllowed) })

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	r.GET("/v1/ping", func(c *gin.Context) {
		if err := d.DB.Ping(c.Request.Context()); err != nil {
			httperrors.AbortWithError(c, http.StatusBadGateway, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	for _, h := range d.Handlers {
		h.Register(r)
	}
	return r
}

// NewHTTPServer wraps handler with the configured address and timeouts.
func NewHTTPServer(cfg *config.App, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
}
