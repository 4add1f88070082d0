package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Sahillather002/challenge-fun-app/internal/activity"
	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/fitness"
	"github.com/Sahillather002/challenge-fun-app/internal/handler"
	"github.com/Sahillather002/challenge-fun-app/internal/leaderboard"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
	"github.com/Sahillather002/challenge-fun-app/internal/realtime"
)

// Options configures the HTTP surface.
type Options struct {
	Addr           string
	Version        string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
	AllowedOrigins []string
}

// Services are the components the routes call into.
type Services struct {
	Fitness     fitness.Service
	Leaderboard leaderboard.Service
	Activity    activity.Service
	Pinger      cache.Pinger
	Hub         *realtime.Hub
	Snapshots   *realtime.SnapshotCache
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware chain.
func NewRouter(opts Options, svcs Services) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, opts.TrustedProxies)
	r.Use(SecurityHeadersMiddleware())
	r.Use(limiter.Middleware)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svcs.Pinger))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/fitness", func(r chi.Router) {
			r.Post("/sync", handler.HandleSyncFitness(svcs.Fitness))
			r.Get("/stats/{userId}", handler.HandleGetFitnessStats(svcs.Fitness))
			r.Get("/daily/{userId}", handler.HandleGetDailySample(svcs.Fitness))
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Post("/update", handler.HandleUpdateScore(svcs.Leaderboard))
			r.Get("/{competitionId}", handler.HandleGetLeaderboard(svcs.Leaderboard))
			r.Get("/{competitionId}/rank/{userId}", handler.HandleGetUserRank(svcs.Leaderboard))
		})

		r.Route("/prizes", func(r chi.Router) {
			r.Post("/calculate/{competitionId}", handler.HandleCalculatePrizes(svcs.Leaderboard))
			r.Get("/{competitionId}", handler.HandleGetPrizes(svcs.Leaderboard))
		})

		r.Post("/activity", handler.HandleSubmitActivity(svcs.Activity))
	})

	r.Get("/ws/leaderboard/{competitionId}",
		realtime.WebSocketHandler(svcs.Hub, svcs.Snapshots, realtime.NewUpgrader(opts.AllowedOrigins)))
	r.Get("/stream/leaderboard/{competitionId}", realtime.SSEHandler(svcs.Hub, svcs.Snapshots))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
