package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/creative-rotation-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-rotation-api/internal/api"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/pkg/log"
)

func main() {
	root := &cobra.Command{
		Use:           "creative-rotation-api",
		Short:         "Motor de rotação de criativos para campanhas do Meta",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), migrateCmd(), runOnceCmd())

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("Erro ao executar comando")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP e a varredura periódica",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap(ctx, cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			go app.tokenManager.StartAutoRefresh(ctx)

			if err := app.sweeper.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar a varredura de otimização")
			} else {
				logrus.Info("Varredura de otimização iniciada com sucesso")
			}

			server, err := api.New(cfg, app.optimizer, app.authenticator, app.sweeper, app.metrics.Registry(), app.pinger)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações do PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return postgres.Migrate(cfg.Database.DSN)
		},
	}
}

func runOnceCmd() *cobra.Command {
	var (
		campaignID string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "run-once",
		Short: "Executa um único ciclo de otimização para a campanha",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.optimizer.RunOnce(cmd.Context(), campaignID, domain.RunOptions{
				Force:   force,
				Trigger: domain.RunTriggerManual,
			})
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}

	cmd.Flags().StringVar(&campaignID, "campaign", "", "id da campanha no Meta")
	cmd.Flags().BoolVar(&force, "force", false, "ignora o intervalo mínimo e cria variantes para todos os conjuntos")
	_ = cmd.MarkFlagRequired("campaign")

	return cmd
}
