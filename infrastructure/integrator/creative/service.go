package creative

import (
	"context"

	"github.com/vfg2006/creative-rotation-api/infrastructure/integrator/creative/creativeclient"
	creativedomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/creative/domain"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

// CreativeIntegrator adapta o serviço de renderização para variantes do domínio
type CreativeIntegrator struct {
	Client creativeclient.Client
}

func New(client creativeclient.Client) *CreativeIntegrator {
	return &CreativeIntegrator{
		Client: client,
	}
}

func (s *CreativeIntegrator) RenderVariants(ctx context.Context, kind domain.VariantKind, count int, req domain.GenerateRequest) ([]domain.CreativeVariant, error) {
	if count <= 0 {
		return []domain.CreativeVariant{}, nil
	}

	variants, err := s.Client.RenderVariants(ctx, creativedomain.RenderVariantsRequest{
		CampaignID:     req.CampaignID,
		Kind:           string(kind),
		Count:          count,
		URL:            req.URL,
		Form:           req.Form,
		Answers:        req.Answers,
		MediaSelection: req.MediaSelection,
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.CreativeVariant, 0, len(variants))
	for _, v := range variants {
		result = append(result, FactoryCreativeVariant(kind, v))
	}

	return result, nil
}

// FactoryCreativeVariant usa o tipo solicitado, já que o serviço pode omitir o campo kind
func FactoryCreativeVariant(kind domain.VariantKind, v creativedomain.Variant) domain.CreativeVariant {
	return domain.CreativeVariant{
		ID:           v.ID,
		Kind:         kind,
		ImageHash:    v.ImageHash,
		ImageURL:     v.ImageURL,
		VideoID:      v.VideoID,
		ThumbnailURL: v.ThumbnailURL,
		Headline:     v.Headline,
		PrimaryText:  v.PrimaryText,
		CallToAction: v.CallToAction,
	}
}
