package http

import (
	"net/http"

	"github.com/thunderfc/clubsync/internal/config"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/syncer"
)

type Server struct {
	Syncer         *syncer.Syncer
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
