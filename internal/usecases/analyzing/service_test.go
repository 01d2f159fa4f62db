package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/policy"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

var (
	evaluatedAt = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	creds       = domain.PlatformCredentials{AccessToken: "token"}
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(reader MetricsReader) *Service {
	s := NewService(reader, 3)
	s.now = func() time.Time { return evaluatedAt }
	return s
}

func analyzeRequest() domain.AnalyzeRequest {
	return domain.AnalyzeRequest{
		AccountID:   "act1",
		CampaignID:  "c1",
		KPI:         domain.KPICTR,
		Credentials: creds,
		Thresholds:  policy.DefaultThresholds,
	}
}

// metricsTable responde GetMetrics por objeto e pela data inicial da janela
type metricsTable map[string]map[time.Time]domain.WindowMetrics

func (m metricsTable) get(_ context.Context, _ domain.PlatformCredentials, objectID string, window domain.DateRange) (domain.WindowMetrics, error) {
	byWindow, ok := m[objectID]
	if !ok {
		return domain.WindowMetrics{}, errors.New("insights indisponíveis")
	}
	return byWindow[window.Since], nil
}

func TestWindows(t *testing.T) {
	recent, prior := Windows(evaluatedAt, 3)

	if diff := cmp.Diff(domain.DateRange{Since: day(7), Until: day(9)}, recent); diff != "" {
		t.Errorf("janela recente (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(domain.DateRange{Since: day(4), Until: day(6)}, prior); diff != "" {
		t.Errorf("janela anterior (-want +got):\n%s", diff)
	}
}

func TestService_AnalyzeCampaign(t *testing.T) {
	recentSince, priorSince := day(7), day(4)

	tests := []struct {
		name     string
		setup    func(reader *mocks.MockMetricsReader)
		validate func(t *testing.T, analysis *domain.Analysis, err error)
	}{
		{
			name: "Conjunto em platô com vencedor e perdedor pelo CTR recente",
			setup: func(reader *mocks.MockMetricsReader) {
				table := metricsTable{
					"as1": {
						recentSince: {Impressions: 2000, Spend: 20, CTR: 0.03},
						priorSince:  {Impressions: 2000, Spend: 20, CTR: 0.05},
					},
					"ad1": {recentSince: {CTR: 0.01}},
					"ad2": {recentSince: {CTR: 0.04}},
					"ad3": {recentSince: {CTR: 0.02}},
				}
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return([]string{"as1"}, nil)
				reader.EXPECT().ListAds(gomock.Any(), creds, "as1").Return([]domain.PlatformAd{{ID: "ad1"}, {ID: "ad2"}, {ID: "ad3"}}, nil)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, gomock.Any(), gomock.Any()).DoAndReturn(table.get).Times(8)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.True(t, analysis.PlateauByAdset["as1"])
				assert.Equal(t, "ad2", analysis.WinnerByAdset["as1"])
				assert.Equal(t, "ad1", analysis.LoserByAdset["as1"])
				assert.Empty(t, analysis.DegradedAdsets)
				assert.Equal(t, evaluatedAt, analysis.EvaluatedAt)
			},
		},
		{
			name: "Conjunto sem métricas é degradado e não lista anúncios",
			setup: func(reader *mocks.MockMetricsReader) {
				table := metricsTable{
					"as2": {
						recentSince: {Impressions: 500, Spend: 20, CTR: 0.03},
						priorSince:  {Impressions: 500, Spend: 20, CTR: 0.05},
					},
				}
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return([]string{"as1", "as2"}, nil)
				reader.EXPECT().ListAds(gomock.Any(), creds, "as2").Return([]domain.PlatformAd{}, nil)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, gomock.Any(), gomock.Any()).DoAndReturn(table.get).Times(4)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"as1"}, analysis.DegradedAdsets)
				assert.False(t, analysis.PlateauByAdset["as1"])
				assert.Empty(t, analysis.AdsByAdset["as1"])
				// impressões abaixo do mínimo
				assert.False(t, analysis.PlateauByAdset["as2"])
				assert.False(t, analysis.AnyPlateau())
				assert.NotContains(t, analysis.WinnerByAdset, "as2")
			},
		},
		{
			name: "Conjunto com um único anúncio tem o mesmo vencedor e perdedor",
			setup: func(reader *mocks.MockMetricsReader) {
				table := metricsTable{
					"as1": {recentSince: {}, priorSince: {}},
					"ad1": {recentSince: {CTR: 0.02}, priorSince: {}},
				}
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return([]string{"as1"}, nil)
				reader.EXPECT().ListAds(gomock.Any(), creds, "as1").Return([]domain.PlatformAd{{ID: "ad1"}}, nil)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, gomock.Any(), gomock.Any()).DoAndReturn(table.get).Times(4)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ad1", analysis.WinnerByAdset["as1"])
				assert.Equal(t, "ad1", analysis.LoserByAdset["as1"])
			},
		},
		{
			name: "Permissão negada nas métricas de um anúncio zera apenas esse anúncio",
			setup: func(reader *mocks.MockMetricsReader) {
				table := metricsTable{
					"as2": {
						recentSince: {Impressions: 2000, Spend: 20, CTR: 0.03},
						priorSince:  {Impressions: 2000, Spend: 20, CTR: 0.05},
					},
					"as2_a": {recentSince: {Impressions: 900, CTR: 0.02}, priorSince: {Impressions: 800, CTR: 0.04}},
				}
				permissionDenied := errors.New("meta: (#200) no permission on this object")
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return([]string{"as2"}, nil)
				reader.EXPECT().ListAds(gomock.Any(), creds, "as2").Return([]domain.PlatformAd{{ID: "as2_a"}, {ID: "as2_b"}}, nil)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, "as2_b", gomock.Any()).Return(domain.WindowMetrics{}, permissionDenied).Times(2)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, gomock.Not("as2_b"), gomock.Any()).DoAndReturn(table.get).Times(4)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				require.NotNil(t, analysis)
				assert.Equal(t, []string{"as2"}, analysis.DegradedAdsets)
				assert.True(t, analysis.PlateauByAdset["as2"])

				expected := []domain.AdMetrics{
					{AdID: "as2_a", Recent: domain.WindowMetrics{Impressions: 900, CTR: 0.02}, Prior: domain.WindowMetrics{Impressions: 800, CTR: 0.04}},
					{AdID: "as2_b"},
				}
				if diff := cmp.Diff(expected, analysis.AdsByAdset["as2"]); diff != "" {
					t.Errorf("anúncios do conjunto (-want +got):\n%s", diff)
				}
				assert.Equal(t, "as2_a", analysis.WinnerByAdset["as2"])
				assert.Equal(t, "as2_b", analysis.LoserByAdset["as2"])
			},
		},
		{
			name: "Falha de autenticação na listagem aborta a análise",
			setup: func(reader *mocks.MockMetricsReader) {
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return(nil, domain.ErrPlatformAuth)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				assert.ErrorIs(t, err, ErrPlatformAuth)
				assert.Nil(t, analysis)
			},
		},
		{
			name: "Falha comum na listagem de conjuntos aborta a análise",
			setup: func(reader *mocks.MockMetricsReader) {
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				assert.ErrorIs(t, err, ErrListAdsets)
				assert.NotErrorIs(t, err, ErrPlatformAuth)
				assert.Nil(t, analysis)
			},
		},
		{
			name: "Falha de autenticação em métricas de anúncio aborta a análise",
			setup: func(reader *mocks.MockMetricsReader) {
				reader.EXPECT().ListAdsets(gomock.Any(), creds, "c1").Return([]string{"as1"}, nil)
				reader.EXPECT().ListAds(gomock.Any(), creds, "as1").Return([]domain.PlatformAd{{ID: "ad1"}}, nil)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, "as1", gomock.Any()).Return(domain.WindowMetrics{}, nil).Times(2)
				reader.EXPECT().GetMetrics(gomock.Any(), creds, "ad1", gomock.Any()).
					Return(domain.WindowMetrics{}, wrappedAuthError()).Times(2)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				assert.ErrorIs(t, err, domain.ErrPlatformAuth)
				assert.Nil(t, analysis)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := mocks.NewMockMetricsReader(ctrl)
			tt.setup(reader)

			analysis, err := newTestService(reader).AnalyzeCampaign(context.Background(), analyzeRequest())
			tt.validate(t, analysis, err)
		})
	}
}

func wrappedAuthError() error {
	return errors.Join(domain.ErrPlatformAuth, errors.New("meta: token de acesso expirado ou inválido"))
}

func TestRankAds(t *testing.T) {
	tests := []struct {
		name     string
		kpi      domain.KPI
		ads      []domain.AdMetrics
		expected []string
	}{
		{
			name: "CTR decrescente com empate preservando a ordem",
			kpi:  domain.KPICTR,
			ads: []domain.AdMetrics{
				{AdID: "a", Recent: domain.WindowMetrics{CTR: 0.01}},
				{AdID: "b", Recent: domain.WindowMetrics{CTR: 0.03}},
				{AdID: "c", Recent: domain.WindowMetrics{CTR: 0.01}},
			},
			expected: []string{"b", "a", "c"},
		},
		{
			name: "CPC crescente com custo zero no fim",
			kpi:  domain.KPICPC,
			ads: []domain.AdMetrics{
				{AdID: "a", Recent: domain.WindowMetrics{CPC: 0}},
				{AdID: "b", Recent: domain.WindowMetrics{CPC: 1.2}},
				{AdID: "c", Recent: domain.WindowMetrics{CPC: 0.4}},
			},
			expected: []string{"c", "b", "a"},
		},
		{
			name: "Cliques decrescentes",
			kpi:  domain.KPIClicks,
			ads: []domain.AdMetrics{
				{AdID: "a", Recent: domain.WindowMetrics{Clicks: 3}},
				{AdID: "b", Recent: domain.WindowMetrics{Clicks: 10}},
			},
			expected: []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RankAds(tt.ads, tt.kpi)

			got := make([]string, 0, len(tt.ads))
			for _, ad := range tt.ads {
				got = append(got, ad.AdID)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
