package optimizing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/creative-rotation-api/infrastructure/repository"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/metrics"
	"github.com/vfg2006/creative-rotation-api/internal/policy"
	"github.com/vfg2006/creative-rotation-api/pkg/apiErrors"
	"github.com/vfg2006/creative-rotation-api/pkg/log"
)

// recordTimeout limita a gravação do ciclo, que roda desligada do cancelamento do ciclo
const recordTimeout = config.RecordTimeoutSeconds * time.Second

// Motivos dos ciclos pulados
const (
	ReasonMinInterval       = "min_interval_between_runs"
	ReasonFlightEnded       = "flight_ended"
	ReasonCreativeCap       = "creative_cap_reached"
	ReasonAdsetInterval     = "adset_creation_interval"
	ReasonNoAdsets          = "no_adsets"
	ReasonEmptyVariantPlan  = "empty_variant_plan"
	ReasonCampaignDisabled  = "campaign_disabled"
	ReasonNoPlateauDetected = "no_plateau_detected"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type OptimizerService interface {
	EnableCampaign(ctx context.Context, req *domain.EnableCampaignRequest) (*domain.CampaignConfig, error)
	DisableCampaign(ctx context.Context, campaignID string) error
	RunOnce(ctx context.Context, campaignID string, opts domain.RunOptions) (*domain.RunResult, error)
	GetCampaignStatus(ctx context.Context, campaignID string, limit int) (*domain.CampaignStatus, error)
	ListCampaigns(ctx context.Context) ([]*domain.CampaignConfig, error)
}

type Service struct {
	configs     repository.CampaignConfigRepository
	runs        repository.RunRepository
	analyzer    Analyzer
	generator   Generator
	deployer    Deployer
	credentials CredentialsProvider
	locker      CampaignLocker
	guardrails  Guardrails
	now         func() time.Time
}

func NewService(
	configs repository.CampaignConfigRepository,
	runs repository.RunRepository,
	analyzer Analyzer,
	generator Generator,
	deployer Deployer,
	credentials CredentialsProvider,
	locker CampaignLocker,
	guardrails Guardrails,
) *Service {
	return &Service{
		configs:     configs,
		runs:        runs,
		analyzer:    analyzer,
		generator:   generator,
		deployer:    deployer,
		credentials: credentials,
		locker:      locker,
		guardrails:  guardrails,
		now:         time.Now,
	}
}

// EnableCampaign cria ou atualiza a configuração da campanha e a habilita, preservando o histórico de execuções
func (s *Service) EnableCampaign(ctx context.Context, req *domain.EnableCampaignRequest) (*domain.CampaignConfig, error) {
	if err := validateEnableRequest(req); err != nil {
		return nil, err
	}

	cfg, err := s.configs.GetByCampaignID(ctx, req.CampaignID)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, req.CampaignID, err.Error())
	}
	if cfg == nil {
		cfg = &domain.CampaignConfig{CampaignID: req.CampaignID}
	}

	cfg.AccountID = req.AccountID
	cfg.PageID = req.PageID
	cfg.DestinationURL = req.DestinationURL
	cfg.KPI = req.KPI
	cfg.AssetTypes = req.AssetTypes
	cfg.DailyBudget = req.DailyBudget
	cfg.StartAt = req.StartAt
	cfg.EndAt = req.EndAt
	cfg.FlightHours = req.FlightHours
	cfg.OverrideCountPerType = req.OverrideCountPerType
	cfg.ForceTwoPerType = req.ForceTwoPerType
	if req.Thresholds != nil {
		cfg.Thresholds = *req.Thresholds
	}
	if req.StopRules != nil {
		cfg.StopRules = *req.StopRules
	}
	if req.GenerationContext != nil {
		cfg.GenerationContext = *req.GenerationContext
	}
	cfg.Enabled = true

	if err := s.configs.Upsert(ctx, cfg); err != nil {
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, req.CampaignID, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": cfg.CampaignID,
		"kpi":         cfg.KPI,
		"asset_types": cfg.AssetTypes,
	}).Info("Otimização habilitada para a campanha")

	return cfg, nil
}

func (s *Service) DisableCampaign(ctx context.Context, campaignID string) error {
	if campaignID == "" {
		return NewOptimizerError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.configs.SetEnabled(ctx, campaignID, false); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewOptimizerErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
		}
		return NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).Info("Otimização desabilitada para a campanha")
	return nil
}

func (s *Service) GetCampaignStatus(ctx context.Context, campaignID string, limit int) (*domain.CampaignStatus, error) {
	if campaignID == "" {
		return nil, NewOptimizerError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if limit <= 0 {
		limit = s.guardrails.RecentRunsLimit
	}

	cfg, err := s.configs.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if cfg == nil {
		return nil, NewOptimizerErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	runs, err := s.runs.ListRecentRuns(ctx, campaignID, limit)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	return &domain.CampaignStatus{Config: cfg, Runs: runs}, nil
}

func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.CampaignConfig, error) {
	configs, err := s.configs.ListEnabled(ctx)
	if err != nil {
		return nil, NewOptimizerError(ErrStore, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return configs, nil
}

// RunOnce executa um ciclo completo para a campanha. Um ciclo já em andamento para a mesma campanha
// resulta em status busy sem esperar.
func (s *Service) RunOnce(ctx context.Context, campaignID string, opts domain.RunOptions) (*domain.RunResult, error) {
	if campaignID == "" {
		return nil, NewOptimizerError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if opts.Trigger == "" {
		opts.Trigger = domain.RunTriggerManual
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"trigger":     opts.Trigger,
	})

	release, acquired, err := s.locker.TryLock(ctx, campaignID)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrLock, apiErrors.ErrInternalServer, campaignID, err.Error())
	}
	if !acquired {
		logger.Info("Ciclo já em andamento para a campanha")
		metrics.IncCycle(string(domain.RunResultBusy), string(opts.Trigger))
		return &domain.RunResult{CampaignID: campaignID, Status: domain.RunResultBusy, Reason: ErrCampaignBusy.Error()}, nil
	}
	defer release()

	if s.guardrails.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.guardrails.CycleTimeout)
		defer cancel()
	}

	result, err := s.runCycle(ctx, campaignID, opts, logger)
	if err != nil {
		logger.WithError(err).Error("Ciclo de otimização falhou")
		metrics.IncCycle("error", string(opts.Trigger))
		return nil, err
	}

	logger.WithFields(log.Fields{
		"status": result.Status,
		"reason": result.Reason,
	}).Info("Ciclo de otimização finalizado")
	metrics.IncCycle(string(result.Status), string(opts.Trigger))

	return result, nil
}

func (s *Service) runCycle(ctx context.Context, campaignID string, opts domain.RunOptions, logger log.Logger) (*domain.RunResult, error) {
	startedAt := s.now()
	result := &domain.RunResult{CampaignID: campaignID}

	cfg, err := s.configs.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if cfg == nil {
		return nil, NewOptimizerErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if opts.Trigger == domain.RunTriggerSweep && !cfg.Enabled {
		return skipped(result, ReasonCampaignDisabled), nil
	}

	if !opts.Force && !policy.CanRun(cfg.LastRunAt, startedAt, s.guardrails.MinHoursBetweenRuns) {
		return skipped(result, ReasonMinInterval), nil
	}

	reason, err := s.checkStopRules(ctx, cfg, startedAt)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return skipped(result, reason), nil
	}

	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrCredentials, apiErrors.ErrPlatformAuth, campaignID, err.Error())
	}

	// Analyzing
	analysis, err := s.analyzer.AnalyzeCampaign(ctx, domain.AnalyzeRequest{
		AccountID:   cfg.AccountID,
		CampaignID:  cfg.CampaignID,
		KPI:         cfg.KPI,
		Credentials: creds,
		Thresholds:  policy.MergeThresholds(s.guardrails.DefaultThresholds, cfg.Thresholds),
	})
	if err != nil {
		code := apiErrors.ErrPlatformOperation
		if errors.Is(err, domain.ErrPlatformAuth) {
			s.credentials.InvalidateCredentials()
			code = apiErrors.ErrPlatformAuth
		}
		return nil, &OptimizerError{Err: fmt.Errorf("%w: %w", ErrAnalysis, err), Code: code, CampaignID: campaignID}
	}
	result.Analysis = analysis

	if !opts.Force && !analysis.AnyPlateau() {
		result.Status = domain.RunResultNoPlateau
		result.Reason = ReasonNoPlateauDetected
		return result, nil
	}

	// Planning
	mode := domain.RunModePlateau
	targets := analysis.PlateauedAdsets()
	if opts.Force {
		mode = domain.RunModeInitial
		targets = append([]string(nil), analysis.AdsetIDs...)
	} else {
		targets, err = s.filterRecentlyCreated(ctx, campaignID, targets, startedAt)
		if err != nil {
			return nil, err
		}
	}

	if len(targets) == 0 {
		reason := ReasonAdsetInterval
		if opts.Force {
			reason = ReasonNoAdsets
		}
		return skipped(result, reason), nil
	}

	requested := policy.DecideVariantPlan(planInput(cfg, opts, startedAt))
	if requested.Total() == 0 {
		return skipped(result, ReasonEmptyVariantPlan), nil
	}

	// cada variante gerada precisa caber em todos os conjuntos alvo
	plan := policy.ClampPlan(requested, s.guardrails.MaxNewAdsPerAdset)
	if plan != requested {
		logger.WithFields(log.Fields{
			"requested_images": requested.Images,
			"requested_videos": requested.Videos,
			"limit":            s.guardrails.MaxNewAdsPerAdset,
		}).Info("Plano reduzido ao limite de anúncios por conjunto")
	}

	logger.WithFields(log.Fields{
		"mode":      mode,
		"adsets":    len(targets),
		"images":    plan.Images,
		"videos":    plan.Videos,
		"adset_ids": targets,
	}).Info("Plano de variantes definido")

	// Generating
	variants, err := s.generator.GenerateVariants(ctx, domain.GenerateRequest{
		CampaignID:     cfg.CampaignID,
		Form:           cfg.GenerationContext.Form,
		Answers:        cfg.GenerationContext.Answers,
		URL:            cfg.DestinationURL,
		MediaSelection: cfg.GenerationContext.MediaSelection,
		Plan:           plan,
	})
	if err != nil {
		logger.WithError(err).Warn("Geração de variantes falhou, ciclo encerrado sem publicar")
		metrics.IncGenerationFailure(generationFailureKind(err))
		result.Status = domain.RunResultGenerationFailed
		result.Reason = err.Error()
		return result, nil
	}

	// Deploying
	deployment, deployErr := s.deployer.Deploy(ctx, domain.DeployRequest{
		AccountID:      cfg.AccountID,
		CampaignID:     cfg.CampaignID,
		PageID:         cfg.PageID,
		DestinationURL: cfg.DestinationURL,
		Credentials:    creds,
		AdsetIDs:       targets,
		Variants:       variants,
		WinnerByAdset:  analysis.WinnerByAdset,
		LoserByAdset:   analysis.LoserByAdset,
		PauseLosers:    mode == domain.RunModePlateau,
		MaxAdsPerAdset: s.guardrails.MaxNewAdsPerAdset,
	})
	if deployErr != nil {
		logger.WithError(deployErr).Error("Publicação interrompida, gravando o resultado parcial")
		if errors.Is(deployErr, domain.ErrPlatformAuth) {
			s.credentials.InvalidateCredentials()
		}
	}
	if deployment == nil {
		deployment = domain.NewDeployResult()
	}

	// Recorded
	run, history := buildRun(cfg, opts, mode, analysis, plan, deployment, deployErr, startedAt, s.now())

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := s.runs.RecordRun(recordCtx, run, history); err != nil {
		logger.WithFields(log.Fields{
			"run_id":  run.ID,
			"created": run.CreatedAdsByAdset,
			"paused":  run.PausedAdsByAdset,
		}).WithError(err).Error("Falha ao gravar execução já publicada")
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	recordDeploymentMetrics(deployment)

	result.Status = domain.RunResultCompleted
	if run.Status == domain.RunStatusPartial {
		result.Status = domain.RunResultPartial
	}
	result.Run = run

	return result, nil
}

func (s *Service) checkStopRules(ctx context.Context, cfg *domain.CampaignConfig, now time.Time) (string, error) {
	if cfg.StopRules.StopAtFlightEnd && cfg.EndAt != nil && !now.Before(*cfg.EndAt) {
		return ReasonFlightEnded, nil
	}

	if cfg.StopRules.MaxCreativesTotal > 0 {
		count, err := s.runs.CountCreatives(ctx, cfg.CampaignID)
		if err != nil {
			return "", NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, cfg.CampaignID, err.Error())
		}
		if count >= cfg.StopRules.MaxCreativesTotal {
			return ReasonCreativeCap, nil
		}
	}

	return "", nil
}

// filterRecentlyCreated remove conjuntos que receberam criativos dentro do intervalo mínimo
func (s *Service) filterRecentlyCreated(ctx context.Context, campaignID string, adsetIDs []string, now time.Time) ([]string, error) {
	lastCreated, err := s.runs.LastCreativeAtByAdset(ctx, campaignID)
	if err != nil {
		return nil, NewOptimizerErrorWithID(ErrStore, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	minInterval := time.Duration(s.guardrails.MinHoursBetweenAdsetCreation) * time.Hour
	allowed := make([]string, 0, len(adsetIDs))
	for _, adsetID := range adsetIDs {
		if last, ok := lastCreated[adsetID]; ok && now.Sub(last) < minInterval {
			continue
		}
		allowed = append(allowed, adsetID)
	}

	return allowed, nil
}

// planInput aplica as opções da chamada sobre a configuração salva
func planInput(cfg *domain.CampaignConfig, opts domain.RunOptions, now time.Time) policy.PlanInput {
	in := policy.PlanInput{
		AssetTypes:           cfg.AssetTypes,
		DailyBudget:          cfg.DailyBudget,
		OverrideCountPerType: cfg.OverrideCountPerType,
		ForceTwoPerType:      cfg.ForceTwoPerType,
		FlightHours: policy.ResolveFlightHours(policy.FlightInput{
			StartAt:       cfg.StartAt,
			EndAt:         cfg.EndAt,
			FallbackHours: cfg.FlightHours,
		}, now),
	}

	if opts.AssetTypes != nil {
		in.AssetTypes = *opts.AssetTypes
	}
	if opts.OverrideCountPerType != nil {
		in.OverrideCountPerType = opts.OverrideCountPerType
	}
	if opts.ForceTwoPerType != nil {
		in.ForceTwoPerType = *opts.ForceTwoPerType
	}

	return in
}

func buildRun(
	cfg *domain.CampaignConfig,
	opts domain.RunOptions,
	mode domain.RunMode,
	analysis *domain.Analysis,
	plan domain.VariantPlan,
	deployment *domain.DeployResult,
	deployErr error,
	startedAt, finishedAt time.Time,
) (*domain.Run, []*domain.CreativeHistoryEntry) {
	run := &domain.Run{
		ID:                uuid.NewString(),
		CampaignID:        cfg.CampaignID,
		AccountID:         cfg.AccountID,
		Mode:              mode,
		Trigger:           opts.Trigger,
		Status:            domain.RunStatusCompleted,
		PlateauByAdset:    analysis.PlateauByAdset,
		Plan:              plan,
		CreatedAdsByAdset: make(map[string][]string, len(deployment.CreatedAdsByAdset)),
		PausedAdsByAdset:  deployment.PausedAdsByAdset,
		FailuresByAdset:   deployment.FailuresByAdset,
		StartedAt:         startedAt,
		FinishedAt:        finishedAt,
	}
	if deployErr != nil || deployment.HasFailures() {
		run.Status = domain.RunStatusPartial
	}

	history := make([]*domain.CreativeHistoryEntry, 0)
	for adsetID, created := range deployment.CreatedAdsByAdset {
		for _, ad := range created {
			run.CreatedAdsByAdset[adsetID] = append(run.CreatedAdsByAdset[adsetID], ad.AdID)
			history = append(history, &domain.CreativeHistoryEntry{
				ID:         uuid.NewString(),
				RunID:      run.ID,
				CampaignID: cfg.CampaignID,
				AdsetID:    adsetID,
				AdID:       ad.AdID,
				VariantID:  ad.VariantID,
				Kind:       ad.Kind,
				CreatedAt:  finishedAt,
			})
		}
	}

	return run, history
}

func recordDeploymentMetrics(deployment *domain.DeployResult) {
	created := map[domain.VariantKind]int{}
	for _, ads := range deployment.CreatedAdsByAdset {
		for _, ad := range ads {
			created[ad.Kind]++
		}
	}
	for kind, n := range created {
		metrics.AddAdsCreated(string(kind), n)
	}

	paused, failures := 0, 0
	for _, ads := range deployment.PausedAdsByAdset {
		paused += len(ads)
	}
	for _, errs := range deployment.FailuresByAdset {
		failures += len(errs)
	}
	metrics.AddAdsPaused(paused)
	metrics.AddDeployFailures(failures)
}

func generationFailureKind(err error) string {
	var genErr interface{ FailedKind() domain.VariantKind }
	if errors.As(err, &genErr) {
		return string(genErr.FailedKind())
	}
	return "unknown"
}

func skipped(result *domain.RunResult, reason string) *domain.RunResult {
	result.Status = domain.RunResultSkipped
	result.Reason = reason
	return result
}

func validateEnableRequest(req *domain.EnableCampaignRequest) error {
	if req == nil || req.CampaignID == "" {
		return NewOptimizerError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if req.KPI == "" {
		req.KPI = domain.KPICTR
	}
	if !req.KPI.IsValid() {
		return NewOptimizerErrorWithID(ErrInvalidKPI, apiErrors.ErrInvalidFormat, req.CampaignID, string(req.KPI))
	}

	if req.AssetTypes == "" {
		req.AssetTypes = domain.AssetTypeImage
	}
	if !req.AssetTypes.IsValid() {
		return NewOptimizerErrorWithID(ErrInvalidAssetTypes, apiErrors.ErrInvalidFormat, req.CampaignID, string(req.AssetTypes))
	}

	return validateConfig(&domain.CampaignConfig{
		CampaignID:     req.CampaignID,
		AccountID:      req.AccountID,
		PageID:         req.PageID,
		DestinationURL: req.DestinationURL,
	})
}

// validateConfig rejeita configurações incompletas antes de qualquer chamada externa
func validateConfig(cfg *domain.CampaignConfig) error {
	switch {
	case cfg.CampaignID == "":
		return NewOptimizerError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	case cfg.AccountID == "":
		return NewOptimizerErrorWithID(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, cfg.CampaignID, "")
	case cfg.PageID == "":
		return NewOptimizerErrorWithID(ErrPageIDRequired, apiErrors.ErrMissingRequiredData, cfg.CampaignID, "")
	case cfg.DestinationURL == "":
		return NewOptimizerErrorWithID(ErrDestinationRequired, apiErrors.ErrMissingRequiredData, cfg.CampaignID, "")
	}
	return nil
}
