package optimizing

import (
	"time"

	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/policy"
)

// Guardrails limita a frequência e o volume de mudanças por campanha
type Guardrails struct {
	MinHoursBetweenRuns          int
	MinHoursBetweenAdsetCreation int
	MaxNewAdsPerAdset            int
	RecentRunsLimit              int
	CycleTimeout                 time.Duration
	DefaultThresholds            domain.Thresholds
}

func DefaultGuardrails() Guardrails {
	return Guardrails{
		MinHoursBetweenRuns:          policy.MinHoursBetweenRuns,
		MinHoursBetweenAdsetCreation: policy.MinHoursBetweenAdsetCreation,
		MaxNewAdsPerAdset:            policy.MaxNewAdsPerAdsetPerRun,
		RecentRunsLimit:              10,
		CycleTimeout:                 10 * time.Minute,
		DefaultThresholds:            policy.DefaultThresholds,
	}
}

// GuardrailsFromConfig aplica a configuração sobre os padrões; valores não positivos mantêm o padrão
func GuardrailsFromConfig(cfg config.Optimizer) Guardrails {
	g := DefaultGuardrails()

	if cfg.MinHoursBetweenRuns > 0 {
		g.MinHoursBetweenRuns = cfg.MinHoursBetweenRuns
	}
	if cfg.MinHoursBetweenAdsetCreation > 0 {
		g.MinHoursBetweenAdsetCreation = cfg.MinHoursBetweenAdsetCreation
	}
	if cfg.MaxNewAdsPerAdset > 0 {
		g.MaxNewAdsPerAdset = cfg.MaxNewAdsPerAdset
	}
	if cfg.RecentRunsLimit > 0 {
		g.RecentRunsLimit = cfg.RecentRunsLimit
	}
	if cfg.CycleTimeoutSeconds > 0 {
		g.CycleTimeout = cfg.CycleTimeout()
	}

	g.DefaultThresholds = policy.MergeThresholds(policy.DefaultThresholds, domain.Thresholds{
		MinImpressions: cfg.MinImpressions,
		MinSpend:       cfg.MinSpend,
		CTRDropPct:     cfg.CTRDropPct,
		FreqMax:        cfg.FreqMax,
	})

	return g
}
