package main

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-rotation-api/infrastructure/integrator/creative"
	"github.com/vfg2006/creative-rotation-api/infrastructure/integrator/creative/creativeclient"
	"github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta"
	"github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-rotation-api/infrastructure/lock"
	"github.com/vfg2006/creative-rotation-api/infrastructure/repository"
	"github.com/vfg2006/creative-rotation-api/infrastructure/repository/boltstore"
	"github.com/vfg2006/creative-rotation-api/internal/api/handler"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/metrics"
	"github.com/vfg2006/creative-rotation-api/internal/scheduler"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/deploying"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/generating"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/optimizing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// application reúne as dependências montadas a partir da configuração
type application struct {
	optimizer     *optimizing.Service
	authenticator *authenticating.Service
	sweeper       *scheduler.OptimizerSweepService
	tokenManager  *metaclient.TokenManager
	metrics       *metrics.Metrics
	pinger        handler.Pinger
	closers       []func() error
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso")
		}
	}
}

func bootstrap(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{metrics: metrics.New()}
	metrics.SetGlobal(app.metrics)

	configs, runs, err := app.openStore(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	renderClient := config.NewRenderClient(cfg)
	if err := cfg.ApplySecrets(ctx, renderClient); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar o token do Meta do armazenamento de segredos")
	}

	app.tokenManager = metaclient.NewTokenManager(cfg, renderClient)
	metaIntegrator := meta.New(metaclient.NewClient(cfg))
	creativeIntegrator := creative.New(creativeclient.NewClient(cfg))

	app.optimizer = optimizing.NewService(
		configs,
		runs,
		analyzing.NewService(metaIntegrator, cfg.Optimizer.WindowDays),
		generating.NewService(creativeIntegrator),
		deploying.NewService(metaIntegrator),
		app.tokenManager,
		app.newLocker(cfg.Redis),
		optimizing.GuardrailsFromConfig(cfg.Optimizer),
	)

	app.authenticator = authenticating.NewService(cfg.Auth)
	app.sweeper = scheduler.NewOptimizerSweepService(app.optimizer, cfg.Optimizer)

	return app, nil
}

func (a *application) openStore(ctx context.Context, cfg *config.Config) (repository.CampaignConfigRepository, repository.RunRepository, error) {
	if cfg.Store.Driver == config.StoreDriverBolt {
		store, err := boltstore.Open(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, store.Close)
		a.pinger = store

		logrus.WithField("path", cfg.Store.BoltPath).Info("Armazenamento local bbolt aberto")
		return store, store, nil
	}

	if cfg.Database.RunMigrations {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return nil, nil, err
		}
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return nil, nil, err
	}
	a.closers = append(a.closers, conn.Close)
	a.pinger = conn

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return repository.NewCampaignConfigRepository(conn), repository.NewRunRepository(conn), nil
}

// newLocker usa o Redis quando configurado, permitindo mais de uma instância do serviço
func (a *application) newLocker(cfg config.Redis) optimizing.CampaignLocker {
	if cfg.Addr == "" {
		logrus.Info("REDIS_ADDR vazio, usando trava em memória")
		return lock.NewMemoryLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	a.closers = append(a.closers, client.Close)

	return lock.NewRedisLocker(client, time.Duration(cfg.LockTTLSeconds)*time.Second)
}
