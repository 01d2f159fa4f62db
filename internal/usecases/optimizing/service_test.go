package optimizing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-rotation-api/infrastructure/lock"
	"github.com/vfg2006/creative-rotation-api/infrastructure/repository"
	repomocks "github.com/vfg2006/creative-rotation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

var (
	now   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	creds = domain.PlatformCredentials{AccessToken: "token"}
)

type fixture struct {
	configs     *repomocks.MockCampaignConfigRepository
	runs        *repomocks.MockRunRepository
	analyzer    *mocks.MockAnalyzer
	generator   *mocks.MockGenerator
	deployer    *mocks.MockDeployer
	credentials *mocks.MockCredentialsProvider
	locker      CampaignLocker
	guardrails  Guardrails
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		configs:     repomocks.NewMockCampaignConfigRepository(ctrl),
		runs:        repomocks.NewMockRunRepository(ctrl),
		analyzer:    mocks.NewMockAnalyzer(ctrl),
		generator:   mocks.NewMockGenerator(ctrl),
		deployer:    mocks.NewMockDeployer(ctrl),
		credentials: mocks.NewMockCredentialsProvider(ctrl),
		locker:      lock.NewMemoryLocker(),
		guardrails:  DefaultGuardrails(),
	}
}

func (f *fixture) service() *Service {
	s := NewService(f.configs, f.runs, f.analyzer, f.generator, f.deployer, f.credentials, f.locker, f.guardrails)
	s.now = func() time.Time { return now }
	return s
}

func campaignConfig() *domain.CampaignConfig {
	return &domain.CampaignConfig{
		ID:             "cfg1",
		CampaignID:     "c1",
		AccountID:      "act1",
		PageID:         "page",
		DestinationURL: "https://loja.example.com",
		KPI:            domain.KPICTR,
		AssetTypes:     domain.AssetTypeImage,
		Enabled:        true,
	}
}

func analysisWith(plateau map[string]bool) *domain.Analysis {
	return &domain.Analysis{
		CampaignID:     "c1",
		AdsetIDs:       []string{"as1", "as2"},
		PlateauByAdset: plateau,
		WinnerByAdset:  map[string]string{"as1": "w1", "as2": "w2"},
		LoserByAdset:   map[string]string{"as1": "l1", "as2": "l2"},
	}
}

func deployedTo(adsets ...string) *domain.DeployResult {
	result := domain.NewDeployResult()
	for _, adsetID := range adsets {
		result.CreatedAdsByAdset[adsetID] = []domain.CreatedAd{{AdID: "new_" + adsetID, VariantID: "img_a", Kind: domain.VariantKindImage}}
		result.PausedAdsByAdset[adsetID] = []string{"l_" + adsetID}
	}
	return result
}

var variants = []domain.CreativeVariant{{ID: "img_a", Kind: domain.VariantKindImage}}

func TestService_RunOnce(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.RunOptions
		setup    func(f *fixture)
		validate func(t *testing.T, result *domain.RunResult, err error)
	}{
		{
			name: "Campanha sem configuração",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrCampaignNotFound)
			},
		},
		{
			name: "Configuração incompleta falha antes de chamar a plataforma",
			setup: func(f *fixture) {
				cfg := campaignConfig()
				cfg.PageID = ""
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(cfg, nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				assert.ErrorIs(t, err, ErrPageIDRequired)
			},
		},
		{
			name: "Execução recente respeita o intervalo mínimo",
			setup: func(f *fixture) {
				cfg := campaignConfig()
				lastRun := now.Add(-2 * time.Hour)
				cfg.LastRunAt = &lastRun
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(cfg, nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultSkipped, result.Status)
				assert.Equal(t, ReasonMinInterval, result.Reason)
			},
		},
		{
			name: "Fim da veiculação encerra a otimização",
			setup: func(f *fixture) {
				cfg := campaignConfig()
				end := now.Add(-time.Hour)
				cfg.EndAt = &end
				cfg.StopRules.StopAtFlightEnd = true
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(cfg, nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, ReasonFlightEnded, result.Reason)
			},
		},
		{
			name: "Limite total de criativos atingido",
			setup: func(f *fixture) {
				cfg := campaignConfig()
				cfg.StopRules.MaxCreativesTotal = 10
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(cfg, nil)
				f.runs.EXPECT().CountCreatives(gomock.Any(), "c1").Return(10, nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultSkipped, result.Status)
				assert.Equal(t, ReasonCreativeCap, result.Reason)
			},
		},
		{
			name: "Sem platô não gera nem publica",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": false, "as2": false}), nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultNoPlateau, result.Status)
				assert.NotNil(t, result.Analysis)
				assert.Nil(t, result.Run)
			},
		},
		{
			name: "Platô publica apenas nos conjuntos afetados e grava o ciclo",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.AnalyzeRequest) (*domain.Analysis, error) {
						assert.Equal(t, "act1", req.AccountID)
						assert.Equal(t, creds, req.Credentials)
						assert.Equal(t, int64(1000), req.Thresholds.MinImpressions)
						return analysisWith(map[string]bool{"as1": true, "as2": false}), nil
					})
				f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").Return(map[string]time.Time{}, nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.GenerateRequest) ([]domain.CreativeVariant, error) {
						assert.Equal(t, domain.VariantPlan{Images: 1}, req.Plan)
						assert.Equal(t, "https://loja.example.com", req.URL)
						return variants, nil
					})
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
						assert.Equal(t, []string{"as1"}, req.AdsetIDs)
						assert.True(t, req.PauseLosers)
						assert.Equal(t, 2, req.MaxAdsPerAdset)
						assert.Equal(t, "l1", req.LoserByAdset["as1"])
						return deployedTo("as1"), nil
					})
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *domain.Run, history []*domain.CreativeHistoryEntry) error {
						assert.Equal(t, domain.RunModePlateau, run.Mode)
						assert.Equal(t, domain.RunStatusCompleted, run.Status)
						assert.Equal(t, domain.RunTriggerManual, run.Trigger)
						assert.Equal(t, map[string][]string{"as1": {"new_as1"}}, run.CreatedAdsByAdset)
						require.Len(t, history, 1)
						assert.Equal(t, run.ID, history[0].RunID)
						assert.Equal(t, "img_a", history[0].VariantID)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultCompleted, result.Status)
				require.NotNil(t, result.Run)
				assert.Equal(t, 1, result.Run.CreatedAdsCount())
			},
		},
		{
			name: "Conjunto com criativo recente fica de fora",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": true}), nil)
				f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").
					Return(map[string]time.Time{"as1": now.Add(-10 * time.Hour)}, nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultSkipped, result.Status)
				assert.Equal(t, ReasonAdsetInterval, result.Reason)
			},
		},
		{
			name: "Execução forçada publica em todos os conjuntos sem pausar",
			opts: domain.RunOptions{Force: true},
			setup: func(f *fixture) {
				cfg := campaignConfig()
				lastRun := now.Add(-time.Hour)
				cfg.LastRunAt = &lastRun
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(cfg, nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": false, "as2": false}), nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).Return(variants, nil)
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
						assert.Equal(t, []string{"as1", "as2"}, req.AdsetIDs)
						assert.False(t, req.PauseLosers)
						return deployedTo("as1", "as2"), nil
					})
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *domain.Run, history []*domain.CreativeHistoryEntry) error {
						assert.Equal(t, domain.RunModeInitial, run.Mode)
						assert.Len(t, history, 2)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultCompleted, result.Status)
			},
		},
		{
			name: "Ambos os tipos forçados são reduzidos ao limite por conjunto",
			opts: domain.RunOptions{Force: true, AssetTypes: ptr(domain.AssetTypeBoth), ForceTwoPerType: ptr(true)},
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{}), nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.GenerateRequest) ([]domain.CreativeVariant, error) {
						assert.Equal(t, domain.VariantPlan{Images: 1, Videos: 1}, req.Plan)
						return []domain.CreativeVariant{
							{ID: "img_1", Kind: domain.VariantKindImage},
							{ID: "vid_1", Kind: domain.VariantKindVideo},
						}, nil
					})
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
						assert.Len(t, req.Variants, req.MaxAdsPerAdset)
						return deployedTo("as1"), nil
					})
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.VariantPlan{Images: 1, Videos: 1}, result.Run.Plan)
			},
		},
		{
			name: "Limite maior por conjunto mantém dois de cada tipo",
			opts: domain.RunOptions{Force: true, AssetTypes: ptr(domain.AssetTypeBoth), ForceTwoPerType: ptr(true)},
			setup: func(f *fixture) {
				f.guardrails.MaxNewAdsPerAdset = 4
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{}), nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.GenerateRequest) ([]domain.CreativeVariant, error) {
						assert.Equal(t, domain.VariantPlan{Images: 2, Videos: 2}, req.Plan)
						return variants, nil
					})
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
						assert.Equal(t, 4, req.MaxAdsPerAdset)
						return deployedTo("as1"), nil
					})
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.VariantPlan{Images: 2, Videos: 2}, result.Run.Plan)
			},
		},
		{
			name: "Falha de geração encerra o ciclo sem publicar nem gravar",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": true}), nil)
				f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").Return(nil, nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).Return(nil, errors.New("render indisponível"))
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultGenerationFailed, result.Status)
				assert.Contains(t, result.Reason, "render indisponível")
				assert.Nil(t, result.Run)
			},
		},
		{
			name: "Falhas na publicação resultam em ciclo parcial gravado",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": true, "as2": true}), nil)
				f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").Return(map[string]time.Time{}, nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).Return(variants, nil)

				deployment := deployedTo("as1")
				deployment.FailuresByAdset["as2"] = []string{"create img_a: boom"}
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(deployment, nil)
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *domain.Run, _ []*domain.CreativeHistoryEntry) error {
						assert.Equal(t, domain.RunStatusPartial, run.Status)
						assert.Equal(t, map[string][]string{"as1": {"new_as1"}}, run.CreatedAdsByAdset)
						assert.Equal(t, []string{"create img_a: boom"}, run.FailuresByAdset["as2"])
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultPartial, result.Status)
			},
		},
		{
			name: "Autenticação recusada na análise invalida a credencial",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPlatformAuth)
				f.credentials.EXPECT().InvalidateCredentials()
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrAnalysis)
				assert.ErrorIs(t, err, domain.ErrPlatformAuth)
			},
		},
		{
			name: "Publicação interrompida por autenticação ainda grava o parcial",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": true, "as2": true}), nil)
				f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").Return(map[string]time.Time{}, nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).Return(variants, nil)

				deployment := deployedTo("as1")
				deployment.FailuresByAdset["as2"] = []string{"aborted: platform authentication failed"}
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(deployment, domain.ErrPlatformAuth)
				f.credentials.EXPECT().InvalidateCredentials()
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RunResultPartial, result.Status)
				assert.Equal(t, []string{"new_as1"}, result.Run.CreatedAdsByAdset["as1"])
			},
		},
		{
			name: "Falha ao gravar o ciclo",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
					Return(analysisWith(map[string]bool{"as1": true}), nil)
				f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").Return(map[string]time.Time{}, nil)
				f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).Return(variants, nil)
				f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(deployedTo("as1"), nil)
				f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrStore)
			},
		},
		{
			name: "Credencial indisponível",
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
				f.credentials.EXPECT().Credentials(gomock.Any()).Return(domain.PlatformCredentials{}, errors.New("sem token"))
			},
			validate: func(t *testing.T, result *domain.RunResult, err error) {
				assert.ErrorIs(t, err, ErrCredentials)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service().RunOnce(context.Background(), "c1", tt.opts)
			tt.validate(t, result, err)
		})
	}
}

func TestService_RunOnce_RequiresCampaignID(t *testing.T) {
	_, err := newFixture(t).service().RunOnce(context.Background(), "", domain.RunOptions{})
	assert.ErrorIs(t, err, ErrCampaignIDRequired)
}

func TestService_RunOnce_LockHeld(t *testing.T) {
	f := newFixture(t)
	locker := mocks.NewMockCampaignLocker(gomock.NewController(t))
	locker.EXPECT().TryLock(gomock.Any(), "c1").Return(nil, false, nil)
	f.locker = locker

	result, err := f.service().RunOnce(context.Background(), "c1", domain.RunOptions{Trigger: domain.RunTriggerSweep})
	require.NoError(t, err)
	assert.Equal(t, domain.RunResultBusy, result.Status)
}

func TestService_RunOnce_ConcurrentCyclesForSameCampaign(t *testing.T) {
	f := newFixture(t)
	service := f.service()

	deploying := make(chan struct{})
	unblock := make(chan struct{})

	f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil).Times(1)
	f.credentials.EXPECT().Credentials(gomock.Any()).Return(creds, nil).Times(1)
	f.analyzer.EXPECT().AnalyzeCampaign(gomock.Any(), gomock.Any()).
		Return(analysisWith(map[string]bool{"as1": true}), nil).Times(1)
	f.runs.EXPECT().LastCreativeAtByAdset(gomock.Any(), "c1").Return(map[string]time.Time{}, nil).Times(1)
	f.generator.EXPECT().GenerateVariants(gomock.Any(), gomock.Any()).Return(variants, nil).Times(1)
	f.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.DeployRequest) (*domain.DeployResult, error) {
			close(deploying)
			<-unblock
			return deployedTo("as1"), nil
		}).Times(1)
	f.runs.EXPECT().RecordRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var (
		wg          sync.WaitGroup
		firstResult *domain.RunResult
		firstErr    error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstResult, firstErr = service.RunOnce(context.Background(), "c1", domain.RunOptions{})
	}()

	<-deploying
	second, err := service.RunOnce(context.Background(), "c1", domain.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.RunResultBusy, second.Status)

	close(unblock)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, domain.RunResultCompleted, firstResult.Status)
}

func TestService_EnableCampaign(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.EnableCampaignRequest
		setup    func(f *fixture)
		validate func(t *testing.T, cfg *domain.CampaignConfig, err error)
	}{
		{
			name: "KPI inválido",
			req:  &domain.EnableCampaignRequest{CampaignID: "c1", AccountID: "act1", PageID: "p", DestinationURL: "u", KPI: "roas"},
			validate: func(t *testing.T, cfg *domain.CampaignConfig, err error) {
				assert.ErrorIs(t, err, ErrInvalidKPI)
			},
		},
		{
			name: "Sem página",
			req:  &domain.EnableCampaignRequest{CampaignID: "c1", AccountID: "act1", DestinationURL: "u"},
			validate: func(t *testing.T, cfg *domain.CampaignConfig, err error) {
				assert.ErrorIs(t, err, ErrPageIDRequired)
			},
		},
		{
			name: "Nova campanha recebe os padrões",
			req:  &domain.EnableCampaignRequest{CampaignID: "c1", AccountID: "act1", PageID: "p", DestinationURL: "u"},
			setup: func(f *fixture) {
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(nil, nil)
				f.configs.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, cfg *domain.CampaignConfig, err error) {
				require.NoError(t, err)
				assert.True(t, cfg.Enabled)
				assert.Equal(t, domain.KPICTR, cfg.KPI)
				assert.Equal(t, domain.AssetTypeImage, cfg.AssetTypes)
			},
		},
		{
			name: "Atualização preserva a última execução",
			req: &domain.EnableCampaignRequest{
				CampaignID: "c1", AccountID: "act1", PageID: "p2", DestinationURL: "u",
				KPI: domain.KPICPC, Thresholds: &domain.Thresholds{MinImpressions: 500},
			},
			setup: func(f *fixture) {
				existing := campaignConfig()
				existing.Enabled = false
				lastRun := now.Add(-48 * time.Hour)
				existing.LastRunAt = &lastRun
				f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(existing, nil)
				f.configs.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, cfg *domain.CampaignConfig, err error) {
				require.NoError(t, err)
				assert.Equal(t, "cfg1", cfg.ID)
				assert.Equal(t, "p2", cfg.PageID)
				assert.Equal(t, domain.KPICPC, cfg.KPI)
				assert.Equal(t, int64(500), cfg.Thresholds.MinImpressions)
				require.NotNil(t, cfg.LastRunAt)
				assert.True(t, cfg.Enabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			cfg, err := f.service().EnableCampaign(context.Background(), tt.req)
			tt.validate(t, cfg, err)
		})
	}
}

func TestService_DisableCampaign(t *testing.T) {
	t.Run("Campanha inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.configs.EXPECT().SetEnabled(gomock.Any(), "c9", false).Return(repository.ErrNotFound)

		err := f.service().DisableCampaign(context.Background(), "c9")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("Desabilita", func(t *testing.T) {
		f := newFixture(t)
		f.configs.EXPECT().SetEnabled(gomock.Any(), "c1", false).Return(nil)

		assert.NoError(t, f.service().DisableCampaign(context.Background(), "c1"))
	})
}

func TestService_GetCampaignStatus(t *testing.T) {
	f := newFixture(t)
	f.configs.EXPECT().GetByCampaignID(gomock.Any(), "c1").Return(campaignConfig(), nil)
	f.runs.EXPECT().ListRecentRuns(gomock.Any(), "c1", 10).Return([]*domain.Run{{ID: "r1"}}, nil)

	status, err := f.service().GetCampaignStatus(context.Background(), "c1", 0)
	require.NoError(t, err)
	assert.Equal(t, "c1", status.Config.CampaignID)
	require.Len(t, status.Runs, 1)
	assert.Equal(t, "r1", status.Runs[0].ID)
}

func ptr[T any](v T) *T {
	return &v
}
