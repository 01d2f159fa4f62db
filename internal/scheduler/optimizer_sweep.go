package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/metrics"
)

//go:generate mockgen -source=optimizer_sweep.go -destination=mocks/optimizer_sweep.go -package=mocks

// CampaignOptimizer é o que a varredura precisa do motor de otimização
type CampaignOptimizer interface {
	ListCampaigns(ctx context.Context) ([]*domain.CampaignConfig, error)
	RunOnce(ctx context.Context, campaignID string, opts domain.RunOptions) (*domain.RunResult, error)
}

// SweepConfig representa a configuração da varredura periódica
type SweepConfig struct {
	Enabled         bool
	IntervalMinutes int
	CronSchedule    string
}

// SweepSummary resume a última varredura concluída
type SweepSummary struct {
	Campaigns  int                            `json:"campaigns"`
	ByStatus   map[domain.RunResultStatus]int `json:"by_status"`
	Errors     int                            `json:"errors"`
	StartedAt  time.Time                      `json:"started_at"`
	FinishedAt time.Time                      `json:"finished_at"`
}

// OptimizerSweepService percorre as campanhas habilitadas, uma de cada vez, disparando um ciclo para cada
type OptimizerSweepService struct {
	scheduler            *gocron.Scheduler
	config               SweepConfig
	optimizer            CampaignOptimizer
	sweepRunning         bool
	sweepMutex           sync.Mutex
	baseCtx              context.Context
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSummary          *SweepSummary
}

func NewOptimizerSweepService(optimizer CampaignOptimizer, appConfig config.Optimizer) *OptimizerSweepService {
	sweepConfig := SweepConfig{
		Enabled:         appConfig.SweepEnabled,
		IntervalMinutes: appConfig.SweepIntervalMinutes,
		CronSchedule:    appConfig.SweepCron,
	}

	logrus.WithFields(logrus.Fields{
		"sweep_enabled":          sweepConfig.Enabled,
		"sweep_interval_minutes": sweepConfig.IntervalMinutes,
		"sweep_cron":             sweepConfig.CronSchedule,
	}).Info("Configuração da varredura de otimização carregada")

	return &OptimizerSweepService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    sweepConfig,
		optimizer: optimizer,
		baseCtx:   context.Background(),
	}
}

// Start agenda a varredura; o agendador para quando o contexto é cancelado
func (s *OptimizerSweepService) Start(ctx context.Context) error {
	s.sweepMutex.Lock()
	s.baseCtx = ctx
	s.sweepMutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Varredura de otimização desabilitada por configuração")
		return nil
	}

	var job *gocron.Scheduler
	if s.config.CronSchedule != "" {
		job = s.scheduler.Cron(s.config.CronSchedule)
	} else {
		job = s.scheduler.Every(s.config.IntervalMinutes).Minutes().WaitForSchedule()
	}

	if _, err := job.SingletonMode().Do(func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("erro ao agendar varredura de otimização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep executa uma varredura completa de forma síncrona; retorna false se outra já estiver em andamento
func (s *OptimizerSweepService) Sweep(ctx context.Context) bool {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de otimização já em andamento, ignorando")
		return false
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	summary := s.sweep(ctx)

	s.sweepMutex.Lock()
	s.lastSweepCompletedAt = summary.FinishedAt
	s.lastSummary = summary
	s.sweepMutex.Unlock()

	return true
}

func (s *OptimizerSweepService) sweep(ctx context.Context) *SweepSummary {
	summary := &SweepSummary{
		ByStatus:  make(map[domain.RunResultStatus]int),
		StartedAt: time.Now(),
	}

	logrus.Info("Iniciando varredura de otimização das campanhas habilitadas")

	campaigns, err := s.optimizer.ListCampaigns(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para a varredura de otimização")
		summary.Errors++
		summary.FinishedAt = time.Now()
		return summary
	}

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			logrus.WithField("remaining", len(campaigns)-summary.Campaigns).Warn("Varredura interrompida pelo cancelamento do contexto")
			break
		}

		summary.Campaigns++
		result, err := s.runCampaign(ctx, campaign.CampaignID)
		if err != nil {
			summary.Errors++
			continue
		}
		summary.ByStatus[result.Status]++
	}

	summary.FinishedAt = time.Now()
	duration := summary.FinishedAt.Sub(summary.StartedAt)
	metrics.ObserveSweep(duration, summary.Campaigns)

	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": summary.Campaigns,
		"errors":    summary.Errors,
		"by_status": summary.ByStatus,
	}).Info("Varredura de otimização concluída")

	return summary
}

// runCampaign isola a falha de uma campanha para que a varredura siga para as próximas
func (s *OptimizerSweepService) runCampaign(ctx context.Context, campaignID string) (result *domain.RunResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"panic":       r,
			}).Error("Pânico durante o ciclo da campanha, seguindo com a varredura")
			result, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	result, err = s.optimizer.RunOnce(ctx, campaignID, domain.RunOptions{Trigger: domain.RunTriggerSweep})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro no ciclo da campanha durante a varredura")
		return nil, err
	}

	return result, nil
}

// TriggerSweep inicia uma varredura em segundo plano; retorna false se já houver uma em andamento
func (s *OptimizerSweepService) TriggerSweep() bool {
	s.sweepMutex.Lock()
	running := s.sweepRunning
	ctx := s.baseCtx
	s.sweepMutex.Unlock()

	if running {
		logrus.Info("Varredura de otimização já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando varredura manual de otimização")
	go s.Sweep(ctx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *OptimizerSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	status := map[string]any{
		"sweep_enabled":           s.config.Enabled,
		"sweep_interval_minutes":  s.config.IntervalMinutes,
		"sweep_cron":              s.config.CronSchedule,
		"sweep_running":           s.sweepRunning,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_sweep_summary"] = s.lastSummary
	}

	return status
}
