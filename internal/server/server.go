package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/akolanti/RagWeb/internal/adapter/utils"
	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/handlers"
	"github.com/akolanti/RagWeb/internal/middleware"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

var (
	server  *http.Server
	_logger = logger_i.NewLogger("server")
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

// NewRouter mounts every route behind the Wrap chain.
func NewRouter(h *handlers.Handler, mw *middleware.Middleware) http.Handler {
	r := utils.NewRouter()

	r.Get("/health", mw.Wrap(h.HealthHandler))
	r.Post("/upload", mw.Wrap(h.UploadHandler))
	r.Post("/sync", mw.Wrap(h.SyncHandler))
	r.Get("/sync/status", mw.Wrap(h.SyncStatusHandler))
	r.Get("/ingestion-status/{job_id}", mw.Wrap(h.IngestionStatusHandler))
	r.Post("/ask", mw.Wrap(h.AskHandler))
	return r
}

func CreateServer(listenAddr string, handler http.Handler) {
	server = &http.Server{
		Addr:         listenAddr,
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				_logger.Error("Could not shutdown gracefully", "error", err)
			}
		}
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Graceful shutdown complete")
	case <-ctx.Done():
		_logger.Info("Force shut down")
		os.Exit(1)
	}
}
