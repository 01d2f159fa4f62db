package domain

import (
	"strings"
)

type VariantKind string

const (
	VariantKindImage VariantKind = "image"
	VariantKindVideo VariantKind = "video"
)

const (
	ImageVariantPrefix = "img_"
	VideoVariantPrefix = "vid_"
)

// Prefix retorna o prefixo de identificação de variantes do tipo
func (k VariantKind) Prefix() string {
	if k == VariantKindVideo {
		return VideoVariantPrefix
	}
	return ImageVariantPrefix
}

type VariantPlan struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
}

func (p VariantPlan) Total() int {
	return p.Images + p.Videos
}

type CreativeVariant struct {
	ID           string      `json:"id"`
	Kind         VariantKind `json:"kind"`
	ImageHash    string      `json:"image_hash,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	VideoID      string      `json:"video_id,omitempty"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	Headline     string      `json:"headline"`
	PrimaryText  string      `json:"primary_text"`
	CallToAction string      `json:"call_to_action"`
}

// NormalizeVariantID garante o prefixo correto do tipo no identificador da variante
func NormalizeVariantID(kind VariantKind, id string) string {
	id = strings.TrimPrefix(strings.TrimPrefix(id, ImageVariantPrefix), VideoVariantPrefix)
	return kind.Prefix() + id
}

type GenerateRequest struct {
	CampaignID     string
	Form           map[string]any
	Answers        map[string]any
	URL            string
	MediaSelection []string
	Plan           VariantPlan
}

type DeployRequest struct {
	AccountID      string
	CampaignID     string
	PageID         string
	DestinationURL string
	Credentials    PlatformCredentials
	AdsetIDs       []string
	Variants       []CreativeVariant
	WinnerByAdset  map[string]string
	LoserByAdset   map[string]string
	PauseLosers    bool
	MaxAdsPerAdset int
}

// CreatedAd relaciona a variante ao anúncio criado na plataforma
type CreatedAd struct {
	AdID      string      `json:"ad_id"`
	VariantID string      `json:"variant_id"`
	Kind      VariantKind `json:"kind"`
}

type DeployResult struct {
	CreatedAdsByAdset map[string][]CreatedAd `json:"created_ads_by_adset"`
	PausedAdsByAdset  map[string][]string    `json:"paused_ads_by_adset"`
	FailuresByAdset   map[string][]string    `json:"failures_by_adset"`
	// SkippedPauses guarda, por conjunto, o anúncio que não foi pausado por ser também o vencedor
	SkippedPauses map[string]string `json:"skipped_pauses,omitempty"`
}

func NewDeployResult() *DeployResult {
	return &DeployResult{
		CreatedAdsByAdset: make(map[string][]CreatedAd),
		PausedAdsByAdset:  make(map[string][]string),
		FailuresByAdset:   make(map[string][]string),
		SkippedPauses:     make(map[string]string),
	}
}

// HasFailures indica se alguma operação de publicação falhou
func (r *DeployResult) HasFailures() bool {
	for _, failures := range r.FailuresByAdset {
		if len(failures) > 0 {
			return true
		}
	}
	return false
}

// PublishAdInput reúne o necessário para publicar uma variante em um conjunto de anúncios
type PublishAdInput struct {
	AccountID      string
	PageID         string
	AdsetID        string
	DestinationURL string
	Variant        CreativeVariant
}
