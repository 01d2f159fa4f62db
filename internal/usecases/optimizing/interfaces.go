package optimizing

import (
	"context"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

type Analyzer interface {
	AnalyzeCampaign(ctx context.Context, req domain.AnalyzeRequest) (*domain.Analysis, error)
}

type Generator interface {
	GenerateVariants(ctx context.Context, req domain.GenerateRequest) ([]domain.CreativeVariant, error)
}

type Deployer interface {
	Deploy(ctx context.Context, req domain.DeployRequest) (*domain.DeployResult, error)
}

// CredentialsProvider entrega o token da plataforma para o ciclo; InvalidateCredentials força a revalidação
// depois de uma falha de autenticação
type CredentialsProvider interface {
	Credentials(ctx context.Context) (domain.PlatformCredentials, error)
	InvalidateCredentials()
}

// CampaignLocker garante um único ciclo por campanha; acquired=false indica que outro ciclo está em andamento
type CampaignLocker interface {
	TryLock(ctx context.Context, campaignID string) (release func(), acquired bool, err error)
}
