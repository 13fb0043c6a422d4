package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"passerelle/internal/config"
	"passerelle/internal/ports/input"
)

const (
	serviceName = "passerelle"
	version     = "1.0.0"
)

// Server is the HTTP adapter: the language API, the translation documents,
// health, metrics and the site's static assets.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	log        *slog.Logger

	// OnReload, when set, runs on SIGHUP (typically the localization
	// service's Reload).
	OnReload func(ctx context.Context)
}

// NewServer wires the handler onto a Gin engine with logging, recovery and
// metrics middleware.
func NewServer(cfg *config.Config, localizer input.Localizer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(RequestLog(logger), gin.Recovery(), Metrics())

	handler := NewHandler(localizer)
	handler.RegisterRoutes(engine)
	engine.GET("/healthz", handler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerStatic(engine, cfg.StaticDir)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
		engine: engine,
		log:    logger,
	}
}

// registerStatic serves the site's assets for every unmatched route. Without
// a configured directory, unmatched routes answer a JSON 404.
func registerStatic(engine *gin.Engine, dir string) {
	if dir == "" {
		engine.NoRoute(func(c *gin.Context) {
			errorResponse(c, http.StatusNotFound, "ressource introuvable")
		})
		return
	}

	fileServer := http.FileServer(http.Dir(dir))
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			errorResponse(c, http.StatusNotFound, "ressource introuvable")
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// Start runs the server until SIGINT or SIGTERM, reloading translations on
// SIGHUP, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("🚀 Serveur HTTP en écoute", "addr", s.httpServer.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(stop)

	for {
		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			if sig == syscall.SIGHUP {
				s.log.Info("🔄 Rechargement des traductions demandé")
				if s.OnReload != nil {
					s.OnReload(context.Background())
				}
				continue
			}

			s.log.Info("🛑 Arrêt demandé, fermeture en cours")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.httpServer.Shutdown(ctx)
		}
	}
}
