package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/FocuswithJustin/citerefs/internal/logging"
	"github.com/FocuswithJustin/citerefs/scripture"
)

// Config configures the reference-scan HTTP/WebSocket server.
type Config struct {
	Port  int
	Model *scripture.BibleModel
}

// Start runs GlobalHub and serves the job/WebSocket endpoints until the
// process exits or ListenAndServe returns an error.
func Start(cfg Config) error {
	if cfg.Model != nil {
		SetModel(cfg.Model)
	}

	GlobalHub = NewHub()
	go GlobalHub.Run()

	addr := fmt.Sprintf(":%d", cfg.Port)
	logging.ServerStartup("citeref-api", "http", cfg.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
