package deploying

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

type DeployerService interface {
	Deploy(ctx context.Context, req domain.DeployRequest) (*domain.DeployResult, error)
}

type Service struct {
	publisher AdPublisher
}

func NewService(publisher AdPublisher) *Service {
	return &Service{
		publisher: publisher,
	}
}

// Deploy publica as variantes em cada conjunto, um conjunto por vez, e pausa o perdedor quando pedido.
// O resultado sempre traz o que foi aplicado; o erro só é devolvido quando a implantação foi interrompida
// por falha de autenticação ou cancelamento, e nesse caso o resultado parcial continua válido.
func (s *Service) Deploy(ctx context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
	result := domain.NewDeployResult()
	variants := selectVariants(req.Variants, req.MaxAdsPerAdset)

	for i, adsetID := range req.AdsetIDs {
		if err := ctx.Err(); err != nil {
			markAborted(result, req.AdsetIDs[i:], err)
			return result, err
		}

		if err := s.deployAdset(ctx, req, adsetID, variants, result); err != nil {
			markAborted(result, req.AdsetIDs[i+1:], err)
			return result, err
		}
	}

	return result, nil
}

func (s *Service) deployAdset(ctx context.Context, req domain.DeployRequest, adsetID string, variants []domain.CreativeVariant, result *domain.DeployResult) error {
	fields := logrus.Fields{
		"campaign_id": req.CampaignID,
		"adset_id":    adsetID,
	}

	for _, variant := range variants {
		adID, err := s.publisher.PublishAd(ctx, req.Credentials, domain.PublishAdInput{
			AccountID:      req.AccountID,
			PageID:         req.PageID,
			AdsetID:        adsetID,
			DestinationURL: req.DestinationURL,
			Variant:        variant,
		})
		if err != nil {
			logrus.WithFields(fields).WithField("variant_id", variant.ID).WithError(err).Error("Falha ao criar anúncio")
			result.FailuresByAdset[adsetID] = append(result.FailuresByAdset[adsetID], fmt.Sprintf("create %s: %s", variant.ID, err.Error()))
			if isFatal(ctx, err) {
				return err
			}
			continue
		}

		result.CreatedAdsByAdset[adsetID] = append(result.CreatedAdsByAdset[adsetID], domain.CreatedAd{
			AdID:      adID,
			VariantID: variant.ID,
			Kind:      variant.Kind,
		})
	}

	if !req.PauseLosers {
		return nil
	}

	loser := req.LoserByAdset[adsetID]
	switch {
	case loser == "":
		return nil
	case loser == req.WinnerByAdset[adsetID]:
		result.SkippedPauses[adsetID] = loser
		logrus.WithFields(fields).WithField("ad_id", loser).Info("Perdedor também é o vencedor, pausa ignorada")
		return nil
	case len(result.CreatedAdsByAdset[adsetID]) == 0:
		// sem anúncio novo o conjunto ficaria com menos anúncios ativos
		result.SkippedPauses[adsetID] = loser
		logrus.WithFields(fields).WithField("ad_id", loser).Warn("Nenhum anúncio criado no conjunto, pausa ignorada")
		return nil
	}

	if err := s.publisher.PauseAd(ctx, req.Credentials, loser); err != nil {
		logrus.WithFields(fields).WithField("ad_id", loser).WithError(err).Error("Falha ao pausar anúncio")
		result.FailuresByAdset[adsetID] = append(result.FailuresByAdset[adsetID], fmt.Sprintf("pause %s: %s", loser, err.Error()))
		if isFatal(ctx, err) {
			return err
		}
		return nil
	}

	result.PausedAdsByAdset[adsetID] = append(result.PausedAdsByAdset[adsetID], loser)
	return nil
}

// selectVariants alterna imagens e vídeos antes de aplicar o limite por conjunto
func selectVariants(variants []domain.CreativeVariant, limit int) []domain.CreativeVariant {
	var images, videos []domain.CreativeVariant
	for _, v := range variants {
		if v.Kind == domain.VariantKindVideo {
			videos = append(videos, v)
		} else {
			images = append(images, v)
		}
	}

	ordered := make([]domain.CreativeVariant, 0, len(variants))
	for i := 0; i < len(images) || i < len(videos); i++ {
		if i < len(images) {
			ordered = append(ordered, images[i])
		}
		if i < len(videos) {
			ordered = append(ordered, videos[i])
		}
	}

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

// isFatal interrompe o deploy só em falha do token ou cancelamento; permissão negada em um objeto fica restrita ao conjunto
func isFatal(ctx context.Context, err error) bool {
	return errors.Is(err, domain.ErrPlatformAuth) || ctx.Err() != nil
}

func markAborted(result *domain.DeployResult, adsetIDs []string, cause error) {
	for _, adsetID := range adsetIDs {
		result.FailuresByAdset[adsetID] = append(result.FailuresByAdset[adsetID], "aborted: "+cause.Error())
	}
}
