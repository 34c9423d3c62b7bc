package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	journalDelivery "mirror-backend/internal/journal/delivery"
	journalUsecase "mirror-backend/internal/journal/usecase"
	"mirror-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	journalHandler *journalDelivery.JournalHandler
	config         *config.Config
	logger         *zap.Logger
}

func NewHandler(journalUc journalUsecase.JournalUsecase, cfg *config.Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		journalHandler: journalDelivery.NewJournalHandler(journalUc, logger),
		config:         cfg,
		logger:         logger,
	}
}

// Engine builds the gin engine with middleware and routes
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(h.config.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.logger))
	r.Use(CORS(h.config.AllowedOrigins()))

	SetupRoutes(r, h.journalHandler)
	return r
}

// Start serves HTTP on addr until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.logger.Info("Shutting down HTTP server", zap.Duration("timeout", h.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
