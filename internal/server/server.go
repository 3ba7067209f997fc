// Package server wires the HTTP surface: routing, request-id logging,
// metrics and graceful shutdown. Handlers stay thin; game logic lives in the
// services.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hmelikyan/wanderbot/internal/action"
	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/crafting"
	"github.com/hmelikyan/wanderbot/internal/handler"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/market"
	"github.com/hmelikyan/wanderbot/internal/metrics"
	"github.com/hmelikyan/wanderbot/internal/mob"
	"github.com/hmelikyan/wanderbot/internal/player"
)

// Services groups the game services the router exposes.
type Services struct {
	Players player.Service
	Actions action.Service
	Crafts  crafting.Service
	Mobs    mob.Service
	Markets market.Service
	Locks   *concurrency.LockManager
	Readyz  handler.Pinger
}

// Server owns the HTTP listener.
type Server struct {
	httpServer *http.Server
}

// New builds the router and the server.
func New(port int, svcs Services) *Server {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svcs.Readyz))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/player", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(svcs.Players, svcs.Locks))
			r.Get("/{playerID}", handler.HandleGetProfile(svcs.Players))
			r.Post("/use-item", handler.HandleUseItem(svcs.Players, svcs.Locks))
			r.Post("/gift/claim", handler.HandleClaimGift(svcs.Players, svcs.Locks))
			r.Post("/upgrade", handler.HandleChooseUpgrade(svcs.Players, svcs.Locks))
		})

		r.Route("/action", func(r chi.Router) {
			r.Post("/start", handler.HandleStartAction(svcs.Actions, svcs.Locks))
			r.Post("/poll", handler.HandlePollAction(svcs.Actions, svcs.Locks))
		})

		r.Post("/craft", handler.HandleCraft(svcs.Crafts, svcs.Locks))

		r.Route("/quest", func(r chi.Router) {
			r.Post("/complete", handler.HandleCompleteQuest(svcs.Players, svcs.Locks))
			r.Post("/skip", handler.HandleSkipQuest(svcs.Players, svcs.Locks))
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/", handler.HandleListings(svcs.Markets))
			r.Get("/price", handler.HandleMedianPrice(svcs.Markets))
			r.Post("/sell", handler.HandleSell(svcs.Markets))
			r.Post("/buy", handler.HandleBuy(svcs.Markets))
			r.Post("/cancel", handler.HandleCancelListing(svcs.Markets))
		})

		r.Route("/mob", func(r chi.Router) {
			r.Get("/trade-offer", handler.HandleTradeOffer(svcs.Mobs))
			r.Post("/trade", handler.HandleAcceptTrade(svcs.Mobs, svcs.Locks))
			r.Post("/chest", handler.HandleOpenChest(svcs.Mobs, svcs.Locks))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until the listener closes.
func (s *Server) Start() error {
	slog.Default().Info("server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r)

		log.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
