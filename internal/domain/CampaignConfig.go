package domain

import (
	"time"
)

type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
	AssetTypeBoth  AssetType = "both"
)

// WantsImages indica se o tipo solicitado inclui imagens
func (a AssetType) WantsImages() bool {
	return a == AssetTypeImage || a == AssetTypeBoth
}

// WantsVideos indica se o tipo solicitado inclui vídeos
func (a AssetType) WantsVideos() bool {
	return a == AssetTypeVideo || a == AssetTypeBoth
}

func (a AssetType) IsValid() bool {
	return a == AssetTypeImage || a == AssetTypeVideo || a == AssetTypeBoth
}

type KPI string

const (
	KPICTR         KPI = "ctr"
	KPICPC         KPI = "cpc"
	KPICPM         KPI = "cpm"
	KPIClicks      KPI = "clicks"
	KPIImpressions KPI = "impressions"
)

func (k KPI) IsValid() bool {
	switch k {
	case KPICTR, KPICPC, KPICPM, KPIClicks, KPIImpressions:
		return true
	}
	return false
}

// LowerIsBetter indica KPIs de custo, onde o menor valor é o melhor desempenho
func (k KPI) LowerIsBetter() bool {
	return k == KPICPC || k == KPICPM
}

// Thresholds são os limites usados na detecção de platô.
// Campos zerados são substituídos pelos valores padrão.
type Thresholds struct {
	MinImpressions int64   `json:"min_impressions"`
	MinSpend       float64 `json:"min_spend"`
	CTRDropPct     float64 `json:"ctr_drop_pct"`
	FreqMax        float64 `json:"freq_max"`
}

type StopRules struct {
	StopAtFlightEnd   bool `json:"stop_at_flight_end"`
	MaxCreativesTotal int  `json:"max_creatives_total"`
}

// GenerationContext é repassado ao serviço de renderização de criativos
type GenerationContext struct {
	Form           map[string]any `json:"form,omitempty"`
	Answers        map[string]any `json:"answers,omitempty"`
	MediaSelection []string       `json:"media_selection,omitempty"`
}

type CampaignConfig struct {
	ID                   string            `json:"id"`
	CampaignID           string            `json:"campaign_id"`
	AccountID            string            `json:"account_id"`
	PageID               string            `json:"page_id"`
	DestinationURL       string            `json:"destination_url"`
	KPI                  KPI               `json:"kpi"`
	AssetTypes           AssetType         `json:"asset_types"`
	DailyBudget          float64           `json:"daily_budget"`
	StartAt              *time.Time        `json:"start_at,omitempty"`
	EndAt                *time.Time        `json:"end_at,omitempty"`
	FlightHours          int               `json:"flight_hours"`
	OverrideCountPerType *int              `json:"override_count_per_type,omitempty"`
	ForceTwoPerType      bool              `json:"force_two_per_type"`
	Thresholds           Thresholds        `json:"thresholds"`
	StopRules            StopRules         `json:"stop_rules"`
	GenerationContext    GenerationContext `json:"generation_context"`
	Enabled              bool              `json:"enabled"`
	LastRunAt            *time.Time        `json:"last_run_at,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// EnableCampaignRequest contém os dados para habilitar ou atualizar a otimização de uma campanha
type EnableCampaignRequest struct {
	CampaignID           string             `json:"campaign_id"`
	AccountID            string             `json:"account_id"`
	PageID               string             `json:"page_id"`
	DestinationURL       string             `json:"destination_url"`
	KPI                  KPI                `json:"kpi"`
	AssetTypes           AssetType          `json:"asset_types"`
	DailyBudget          float64            `json:"daily_budget"`
	StartAt              *time.Time         `json:"start_at,omitempty"`
	EndAt                *time.Time         `json:"end_at,omitempty"`
	FlightHours          int                `json:"flight_hours"`
	OverrideCountPerType *int               `json:"override_count_per_type,omitempty"`
	ForceTwoPerType      bool               `json:"force_two_per_type"`
	Thresholds           *Thresholds        `json:"thresholds,omitempty"`
	StopRules            *StopRules         `json:"stop_rules,omitempty"`
	GenerationContext    *GenerationContext `json:"generation_context,omitempty"`
}

type CampaignStatus struct {
	Config *CampaignConfig `json:"config"`
	Runs   []*Run          `json:"runs"`
}
