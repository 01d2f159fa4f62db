package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/api/handler"
	"github.com/vfg2006/creative-rotation-api/internal/api/handler/router"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/optimizing"
	"github.com/vfg2006/creative-rotation-api/pkg/middleware"
)

// Ciclos manuais são síncronos; o desligamento espera o ciclo em curso até este limite
const shutdownTimeout = 30 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	optimizer optimizing.OptimizerService,
	authenticator authenticating.Authenticator,
	sweeper handler.SweepController,
	registry *prometheus.Registry,
	pinger handler.Pinger,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(pinger)...),
		router.WithRoutes(handler.Metrics(registry)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Campaigns(optimizer)...),
		router.WithRoutes(handler.Optimizer(sweeper)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins...),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			IdleTimeout:       time.Minute,
		},
	}

	return srv, nil
}

// Run atende até o contexto ser cancelado e então desliga de forma graciosa
func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erro durante a execução do servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de encerramento recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
