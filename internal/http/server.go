package http

import (
	"net/http"

	"github.com/thunderfc/clubsync/internal/config"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/syncer"
)

func NewServer(sync *syncer.Syncer, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Syncer:         sync,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /snapshot", Chain(s.SnapshotHandler(), paramsMiddleware))
	s.Router.Handle("GET /recent-matches", Chain(s.RecentMatchesHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("PATCH /players/{id}", Chain(s.UpdatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /games", Chain(s.AddGameHandler(), paramsMiddleware))
	s.Router.Handle("PATCH /games/{id}", Chain(s.UpdateGameHandler(), paramsMiddleware))
	s.Router.Handle("POST /news", Chain(s.AddNewsHandler(), paramsMiddleware))
	s.Router.Handle("POST /logo", Chain(s.UploadLogoHandler(), paramsMiddleware))
	s.Router.Handle("GET /logos/", http.StripPrefix("/logos/", http.FileServer(http.Dir(s.Cfg.Logo.Dir))))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
