package policy

import (
	"math"
	"time"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

// Guardrails padrão do motor de otimização
const (
	MinHoursBetweenRuns          = 24
	MinHoursBetweenAdsetCreation = 48
	MaxNewAdsPerAdsetPerRun      = 2
	MaxVariantsPerKind           = 2
)

// Heurísticas do plano de variantes
const (
	HighDailyBudget = 50.0
	LongFlightHours = 168
)

var DefaultThresholds = domain.Thresholds{
	MinImpressions: 1000,
	MinSpend:       10,
	CTRDropPct:     0.20,
	FreqMax:        4.0,
}

// MergeThresholds aplica os campos não zerados de overrides sobre defaults
func MergeThresholds(defaults, overrides domain.Thresholds) domain.Thresholds {
	merged := defaults
	if overrides.MinImpressions > 0 {
		merged.MinImpressions = overrides.MinImpressions
	}
	if overrides.MinSpend > 0 {
		merged.MinSpend = overrides.MinSpend
	}
	if overrides.CTRDropPct > 0 {
		merged.CTRDropPct = overrides.CTRDropPct
	}
	if overrides.FreqMax > 0 {
		merged.FreqMax = overrides.FreqMax
	}
	return merged
}

// IsPlateau decide se um conjunto de anúncios estagnou comparando a janela recente com a anterior.
// Sem volume mínimo de impressões e investimento nunca há platô.
func IsPlateau(recent, prior domain.WindowMetrics, t domain.Thresholds) bool {
	impressions := float64(recent.Impressions)
	if impressions < float64(t.MinImpressions) || finite(recent.Spend) < t.MinSpend {
		return false
	}

	priorCTR := finite(prior.CTR)
	recentCTR := finite(recent.CTR)

	drop := 0.0
	if priorCTR > 0 {
		drop = (priorCTR - recentCTR) / priorCTR
	}

	if drop >= t.CTRDropPct {
		return true
	}

	return t.FreqMax > 0 && finite(recent.Frequency) >= t.FreqMax
}

type PlanInput struct {
	AssetTypes           domain.AssetType
	DailyBudget          float64
	FlightHours          int
	OverrideCountPerType *int
	ForceTwoPerType      bool
}

// DecideVariantPlan define quantas variantes de cada tipo devem ser geradas no ciclo
func DecideVariantPlan(in PlanInput) domain.VariantPlan {
	perKind := 0

	switch {
	case in.ForceTwoPerType:
		perKind = 2
	case in.OverrideCountPerType != nil:
		perKind = max(0, *in.OverrideCountPerType)
	default:
		perKind = 1
		if finite(in.DailyBudget) >= HighDailyBudget || in.FlightHours >= LongFlightHours {
			perKind = 2
		}
		perKind = min(perKind, MaxVariantsPerKind)
	}

	plan := domain.VariantPlan{}
	if in.AssetTypes.WantsImages() {
		plan.Images = perKind
	}
	if in.AssetTypes.WantsVideos() {
		plan.Videos = perKind
	}

	return plan
}

// ClampPlan reduz o plano ao limite de anúncios novos por conjunto, alternando imagem e vídeo
// na mesma ordem em que o deploy publica. Limite não positivo mantém o plano.
func ClampPlan(plan domain.VariantPlan, limit int) domain.VariantPlan {
	if limit <= 0 || plan.Total() <= limit {
		return plan
	}

	clamped := domain.VariantPlan{}
	for clamped.Total() < limit {
		progressed := false
		if clamped.Images < plan.Images {
			clamped.Images++
			progressed = true
		}
		if clamped.Total() < limit && clamped.Videos < plan.Videos {
			clamped.Videos++
			progressed = true
		}
		if !progressed {
			break
		}
	}

	return clamped
}

type FlightInput struct {
	StartAt       *time.Time
	EndAt         *time.Time
	FallbackHours int
}

// ResolveFlightHours calcula a duração da veiculação em horas, nunca negativa
func ResolveFlightHours(in FlightInput, now time.Time) int {
	if in.EndAt == nil {
		return max(0, in.FallbackHours)
	}

	start := now
	if in.StartAt != nil {
		start = *in.StartAt
	}

	hours := in.EndAt.Sub(start).Hours()
	return int(math.Round(math.Max(0, hours)))
}

// CanRun informa se o intervalo mínimo desde a última execução já passou
func CanRun(lastRunAt *time.Time, now time.Time, minHours int) bool {
	if lastRunAt == nil {
		return true
	}
	return now.Sub(*lastRunAt) >= time.Duration(minHours)*time.Hour
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
