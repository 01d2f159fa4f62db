package policy

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

func TestIsPlateau(t *testing.T) {
	healthy := domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: 0.05, Frequency: 1.2}

	tests := []struct {
		name     string
		recent   domain.WindowMetrics
		prior    domain.WindowMetrics
		expected bool
	}{
		{
			name:     "Impressões abaixo do mínimo nunca é platô",
			recent:   domain.WindowMetrics{Impressions: 999, Spend: 50, CTR: 0.001, Frequency: 9},
			prior:    healthy,
			expected: false,
		},
		{
			name:     "Investimento abaixo do mínimo nunca é platô",
			recent:   domain.WindowMetrics{Impressions: 5000, Spend: 9.99, CTR: 0.001, Frequency: 9},
			prior:    healthy,
			expected: false,
		},
		{
			name:     "Queda de CTR de 40% é platô",
			recent:   domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: 0.03, Frequency: 1.2},
			prior:    domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: 0.05, Frequency: 1.1},
			expected: true,
		},
		{
			name:     "Queda de CTR pequena e frequência baixa não é platô",
			recent:   domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: 0.045, Frequency: 1.2},
			prior:    healthy,
			expected: false,
		},
		{
			name:     "Frequência no limite é platô",
			recent:   domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: 0.05, Frequency: 4.0},
			prior:    healthy,
			expected: true,
		},
		{
			name:     "CTR anterior zerado conta como queda zero",
			recent:   domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: 0.01, Frequency: 1},
			prior:    domain.WindowMetrics{},
			expected: false,
		},
		{
			name:     "Valores NaN são tratados como zero",
			recent:   domain.WindowMetrics{Impressions: 5000, Spend: 50, CTR: math.NaN(), Frequency: math.Inf(1)},
			prior:    domain.WindowMetrics{CTR: math.NaN()},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPlateau(tt.recent, tt.prior, DefaultThresholds))
		})
	}
}

func TestDecideVariantPlan(t *testing.T) {
	three := 3
	zero := 0

	tests := []struct {
		name     string
		input    PlanInput
		expected domain.VariantPlan
	}{
		{
			name:     "Forçar dois por tipo somente com imagem",
			input:    PlanInput{AssetTypes: domain.AssetTypeImage, ForceTwoPerType: true},
			expected: domain.VariantPlan{Images: 2, Videos: 0},
		},
		{
			name:     "Forçar dois por tipo com ambos",
			input:    PlanInput{AssetTypes: domain.AssetTypeBoth, ForceTwoPerType: true, OverrideCountPerType: &zero},
			expected: domain.VariantPlan{Images: 2, Videos: 2},
		},
		{
			name:     "Override é aplicado literalmente",
			input:    PlanInput{AssetTypes: domain.AssetTypeVideo, OverrideCountPerType: &three},
			expected: domain.VariantPlan{Images: 0, Videos: 3},
		},
		{
			name:     "Orçamento baixo e veiculação curta gera uma variante por tipo",
			input:    PlanInput{AssetTypes: domain.AssetTypeBoth, DailyBudget: 20, FlightHours: 48},
			expected: domain.VariantPlan{Images: 1, Videos: 1},
		},
		{
			name:     "Orçamento alto gera duas variantes",
			input:    PlanInput{AssetTypes: domain.AssetTypeImage, DailyBudget: 120, FlightHours: 24},
			expected: domain.VariantPlan{Images: 2},
		},
		{
			name:     "Veiculação longa gera duas variantes",
			input:    PlanInput{AssetTypes: domain.AssetTypeVideo, DailyBudget: 5, FlightHours: 240},
			expected: domain.VariantPlan{Videos: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, DecideVariantPlan(tt.input)); diff != "" {
				t.Errorf("plano inesperado (-esperado +obtido):\n%s", diff)
			}
		})
	}
}

func TestClampPlan(t *testing.T) {
	tests := []struct {
		name     string
		plan     domain.VariantPlan
		limit    int
		expected domain.VariantPlan
	}{
		{
			name:     "Ambos forçados com limite dois ficam um de cada",
			plan:     domain.VariantPlan{Images: 2, Videos: 2},
			limit:    MaxNewAdsPerAdsetPerRun,
			expected: domain.VariantPlan{Images: 1, Videos: 1},
		},
		{
			name:     "Limite ímpar favorece imagem",
			plan:     domain.VariantPlan{Images: 2, Videos: 2},
			limit:    3,
			expected: domain.VariantPlan{Images: 2, Videos: 1},
		},
		{
			name:     "Tipo único é truncado",
			plan:     domain.VariantPlan{Videos: 3},
			limit:    2,
			expected: domain.VariantPlan{Videos: 2},
		},
		{
			name:     "Tipo esgotado libera vagas para o outro",
			plan:     domain.VariantPlan{Images: 1, Videos: 3},
			limit:    3,
			expected: domain.VariantPlan{Images: 1, Videos: 2},
		},
		{
			name:     "Plano dentro do limite não muda",
			plan:     domain.VariantPlan{Images: 1, Videos: 1},
			limit:    2,
			expected: domain.VariantPlan{Images: 1, Videos: 1},
		},
		{
			name:     "Limite zero não restringe",
			plan:     domain.VariantPlan{Images: 2, Videos: 2},
			limit:    0,
			expected: domain.VariantPlan{Images: 2, Videos: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, ClampPlan(tt.plan, tt.limit)); diff != "" {
				t.Errorf("plano inesperado (-esperado +obtido):\n%s", diff)
			}
		})
	}
}

func TestResolveFlightHours(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-12 * time.Hour)
	end := now.Add(36 * time.Hour)
	past := now.Add(-48 * time.Hour)

	tests := []struct {
		name     string
		input    FlightInput
		expected int
	}{
		{name: "Sem data final usa fallback", input: FlightInput{FallbackHours: 72}, expected: 72},
		{name: "Fallback negativo vira zero", input: FlightInput{FallbackHours: -5}, expected: 0},
		{name: "Data final sem início parte de agora", input: FlightInput{EndAt: &end}, expected: 36},
		{name: "Data final com início", input: FlightInput{StartAt: &start, EndAt: &end}, expected: 48},
		{name: "Data final no passado vira zero", input: FlightInput{EndAt: &past, FallbackHours: 10}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveFlightHours(tt.input, now))
		})
	}
}

func TestMergeThresholds(t *testing.T) {
	merged := MergeThresholds(DefaultThresholds, domain.Thresholds{CTRDropPct: 0.3})

	assert.Equal(t, domain.Thresholds{
		MinImpressions: 1000,
		MinSpend:       10,
		CTRDropPct:     0.3,
		FreqMax:        4.0,
	}, merged)
}

func TestCanRun(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	oneHourAgo := now.Add(-time.Hour)
	dayAgo := now.Add(-24 * time.Hour)

	assert.True(t, CanRun(nil, now, MinHoursBetweenRuns))
	assert.False(t, CanRun(&oneHourAgo, now, MinHoursBetweenRuns))
	assert.True(t, CanRun(&dayAgo, now, MinHoursBetweenRuns))
}
