package generating

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// maxAttempts inclui a tentativa original
const maxAttempts = 2

type GeneratorService interface {
	GenerateVariants(ctx context.Context, req domain.GenerateRequest) ([]domain.CreativeVariant, error)
}

type Service struct {
	renderer Renderer
}

func NewService(renderer Renderer) *Service {
	return &Service{
		renderer: renderer,
	}
}

// GenerateVariants pede as variantes de imagem e vídeo em paralelo. Um lote incompleto é repetido uma vez
// pela quantidade que faltou; se ainda faltar, nenhuma variante é devolvida.
func (s *Service) GenerateVariants(ctx context.Context, req domain.GenerateRequest) ([]domain.CreativeVariant, error) {
	var images, videos []domain.CreativeVariant

	g, gctx := errgroup.WithContext(ctx)
	if req.Plan.Images > 0 {
		g.Go(func() error {
			var err error
			images, err = s.generateKind(gctx, domain.VariantKindImage, req.Plan.Images, req)
			return err
		})
	}
	if req.Plan.Videos > 0 {
		g.Go(func() error {
			var err error
			videos, err = s.generateKind(gctx, domain.VariantKindVideo, req.Plan.Videos, req)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	variants := make([]domain.CreativeVariant, 0, len(images)+len(videos))
	variants = append(variants, images...)
	variants = append(variants, videos...)

	return variants, nil
}

func (s *Service) generateKind(ctx context.Context, kind domain.VariantKind, count int, req domain.GenerateRequest) ([]domain.CreativeVariant, error) {
	variants := make([]domain.CreativeVariant, 0, count)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts && len(variants) < count; attempt++ {
		missing := count - len(variants)

		got, err := s.renderer.RenderVariants(ctx, kind, missing, req)
		if err != nil {
			lastErr = err
			logrus.WithFields(logrus.Fields{
				"campaign_id": req.CampaignID,
				"kind":        kind,
				"attempt":     attempt,
				"error":       err.Error(),
			}).Warn("Falha ao gerar variantes")
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if len(got) > missing {
			got = got[:missing]
		}
		variants = append(variants, got...)
	}

	if len(variants) < count {
		return nil, &GenerationError{
			Kind:      kind,
			Requested: count,
			Received:  len(variants),
			Cause:     lastErr,
		}
	}

	seen := make(map[string]bool, len(variants))
	for i := range variants {
		id := variants[i].ID
		if id == "" || seen[domain.NormalizeVariantID(kind, id)] {
			suffix, err := utils.GenerateID()
			if err != nil {
				return nil, err
			}
			id = id + suffix
		}

		variants[i].Kind = kind
		variants[i].ID = domain.NormalizeVariantID(kind, id)
		seen[variants[i].ID] = true
	}

	return variants, nil
}
