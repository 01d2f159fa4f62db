package analyzing

import (
	"context"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

// MetricsReader é a parte de leitura da plataforma de anúncios usada pela análise
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type MetricsReader interface {
	ListAdsets(ctx context.Context, creds domain.PlatformCredentials, campaignID string) ([]string, error)
	ListAds(ctx context.Context, creds domain.PlatformCredentials, adsetID string) ([]domain.PlatformAd, error)
	GetMetrics(ctx context.Context, creds domain.PlatformCredentials, objectID string, window domain.DateRange) (domain.WindowMetrics, error)
}
