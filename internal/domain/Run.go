package domain

import (
	"time"
)

type RunMode string

const (
	RunModeInitial RunMode = "initial"
	RunModePlateau RunMode = "plateau"
)

type RunTrigger string

const (
	RunTriggerSweep  RunTrigger = "sweep"
	RunTriggerManual RunTrigger = "manual"
)

type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusPartial   RunStatus = "partial"
)

// Run é o registro imutável de um ciclo que chegou à etapa de publicação
type Run struct {
	ID                string              `json:"id"`
	CampaignID        string              `json:"campaign_id"`
	AccountID         string              `json:"account_id"`
	Mode              RunMode             `json:"mode"`
	Trigger           RunTrigger          `json:"trigger"`
	Status            RunStatus           `json:"status"`
	PlateauByAdset    map[string]bool     `json:"plateau_by_adset"`
	Plan              VariantPlan         `json:"plan"`
	CreatedAdsByAdset map[string][]string `json:"created_ads_by_adset"`
	PausedAdsByAdset  map[string][]string `json:"paused_ads_by_adset"`
	FailuresByAdset   map[string][]string `json:"failures_by_adset,omitempty"`
	StartedAt         time.Time           `json:"started_at"`
	FinishedAt        time.Time           `json:"finished_at"`
}

// CreatedAdsCount retorna o total de anúncios criados em todos os conjuntos
func (r *Run) CreatedAdsCount() int {
	total := 0
	for _, ads := range r.CreatedAdsByAdset {
		total += len(ads)
	}
	return total
}

type CreativeHistoryEntry struct {
	ID         string      `json:"id"`
	RunID      string      `json:"run_id"`
	CampaignID string      `json:"campaign_id"`
	AdsetID    string      `json:"adset_id"`
	AdID       string      `json:"ad_id"`
	VariantID  string      `json:"variant_id"`
	Kind       VariantKind `json:"kind"`
	CreatedAt  time.Time   `json:"created_at"`
}

type RunResultStatus string

const (
	RunResultCompleted        RunResultStatus = "completed"
	RunResultPartial          RunResultStatus = "partial"
	RunResultSkipped          RunResultStatus = "skipped"
	RunResultBusy             RunResultStatus = "busy"
	RunResultNoPlateau        RunResultStatus = "no_plateau"
	RunResultGenerationFailed RunResultStatus = "generation_failed"
)

// RunOptions são as opções de quem dispara o ciclo
type RunOptions struct {
	Force                bool       `json:"force"`
	Trigger              RunTrigger `json:"-"`
	OverrideCountPerType *int       `json:"override_count_per_type,omitempty"`
	ForceTwoPerType      *bool      `json:"force_two_per_type,omitempty"`
	AssetTypes           *AssetType `json:"asset_types,omitempty"`
}

type RunResult struct {
	CampaignID string          `json:"campaign_id"`
	Status     RunResultStatus `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	Analysis   *Analysis       `json:"analysis,omitempty"`
	Run        *Run            `json:"run,omitempty"`
}
