package domain

import (
	"errors"
	"time"
)

// ErrPlatformAuth marca falhas de autenticação na plataforma de anúncios; abortam o ciclo inteiro
var ErrPlatformAuth = errors.New("platform authentication failed")

// WindowMetrics agrega as métricas de uma entidade em uma janela de datas
type WindowMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	Frequency   float64 `json:"frequency"`
}

// KPIValue retorna o valor da métrica correspondente ao KPI
func (m WindowMetrics) KPIValue(kpi KPI) float64 {
	switch kpi {
	case KPICPC:
		return m.CPC
	case KPICPM:
		return m.CPM
	case KPIClicks:
		return float64(m.Clicks)
	case KPIImpressions:
		return float64(m.Impressions)
	default:
		return m.CTR
	}
}

type DateRange struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

type AdsetMetrics struct {
	Recent WindowMetrics `json:"recent"`
	Prior  WindowMetrics `json:"prior"`
}

type AdMetrics struct {
	AdID   string        `json:"ad_id"`
	Name   string        `json:"name"`
	Status string        `json:"status"`
	Recent WindowMetrics `json:"recent"`
	Prior  WindowMetrics `json:"prior"`
}

type Analysis struct {
	CampaignID     string                  `json:"campaign_id"`
	EvaluatedAt    time.Time               `json:"evaluated_at"`
	RecentWindow   DateRange               `json:"recent_window"`
	PriorWindow    DateRange               `json:"prior_window"`
	AdsetIDs       []string                `json:"adset_ids"`
	AdsetMetrics   map[string]AdsetMetrics `json:"adset_metrics"`
	AdsByAdset     map[string][]AdMetrics  `json:"ads_by_adset"`
	PlateauByAdset map[string]bool         `json:"plateau_by_adset"`
	WinnerByAdset  map[string]string       `json:"winner_by_adset"`
	LoserByAdset   map[string]string       `json:"loser_by_adset"`
	DegradedAdsets []string                `json:"degraded_adsets,omitempty"`
}

// AnyPlateau indica se algum conjunto de anúncios está em platô
func (a *Analysis) AnyPlateau() bool {
	if a == nil {
		return false
	}
	for _, plateau := range a.PlateauByAdset {
		if plateau {
			return true
		}
	}
	return false
}

// PlateauedAdsets retorna os conjuntos em platô, na ordem da plataforma
func (a *Analysis) PlateauedAdsets() []string {
	adsets := make([]string, 0)
	for _, id := range a.AdsetIDs {
		if a.PlateauByAdset[id] {
			adsets = append(adsets, id)
		}
	}
	return adsets
}

type PlatformCredentials struct {
	AccessToken string
}

type AnalyzeRequest struct {
	AccountID   string
	CampaignID  string
	KPI         KPI
	Credentials PlatformCredentials
	Thresholds  Thresholds
}

// PlatformAd é um anúncio como listado pela plataforma
type PlatformAd struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
