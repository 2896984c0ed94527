package handler

import (
	"net/http"
	"sync"

	"github.com/tuncanbit/pairscope/internal/app"
	"github.com/tuncanbit/pairscope/pkg/config"
	"github.com/tuncanbit/pairscope/pkg/logger"
)

var (
	once    sync.Once
	router  http.Handler
	initErr error
)

// Handler is the serverless entrypoint. The router is built on first use and
// reused for the lifetime of the instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		srv, err := app.Bootstrap(cfg, logger.NewWithConfig(cfg.Logger))
		if err != nil {
			initErr = err
			return
		}
		router = srv.Handler()
	})

	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	router.ServeHTTP(w, r)
}
