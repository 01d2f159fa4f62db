package deploying

import (
	"context"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

// AdPublisher é a parte de escrita da plataforma de anúncios
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type AdPublisher interface {
	PublishAd(ctx context.Context, creds domain.PlatformCredentials, in domain.PublishAdInput) (string, error)
	PauseAd(ctx context.Context, creds domain.PlatformCredentials, adID string) error
}
