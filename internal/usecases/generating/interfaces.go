package generating

import (
	"context"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

// Renderer é o serviço externo que produz as variantes de criativo
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type Renderer interface {
	RenderVariants(ctx context.Context, kind domain.VariantKind, count int, req domain.GenerateRequest) ([]domain.CreativeVariant, error)
}
