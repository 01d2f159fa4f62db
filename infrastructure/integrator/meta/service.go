package meta

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/pkg/utils"
)

const defaultCallToAction = "LEARN_MORE"

// MetaIntegrator traduz a Graph API para os tipos do motor de otimização
type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

func (s *MetaIntegrator) ListAdsets(ctx context.Context, creds domain.PlatformCredentials, campaignID string) ([]string, error) {
	adsets, err := s.Client.ListAdSets(ctx, creds.AccessToken, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("meta: failed to list adsets")
		return nil, wrapAuthError(err)
	}

	ids := make([]string, 0, len(adsets))
	for _, adset := range adsets {
		ids = append(ids, adset.ID)
	}

	return ids, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, creds domain.PlatformCredentials, adsetID string) ([]domain.PlatformAd, error) {
	ads, err := s.Client.ListAds(ctx, creds.AccessToken, adsetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Error("meta: failed to list ads")
		return nil, wrapAuthError(err)
	}

	result := make([]domain.PlatformAd, 0, len(ads))
	for _, ad := range ads {
		status := ad.EffectiveStatus
		if status == "" {
			status = ad.Status
		}
		result = append(result, domain.PlatformAd{ID: ad.ID, Name: ad.Name, Status: status})
	}

	return result, nil
}

func (s *MetaIntegrator) GetMetrics(ctx context.Context, creds domain.PlatformCredentials, objectID string, window domain.DateRange) (domain.WindowMetrics, error) {
	insight, err := s.Client.GetInsights(ctx, creds.AccessToken, objectID, window.Since, window.Until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"since":     window.Since.Format(time.DateOnly),
			"until":     window.Until.Format(time.DateOnly),
			"error":     err.Error(),
		}).Warn("meta: failed to get insights")
		return domain.WindowMetrics{}, wrapAuthError(err)
	}

	return FactoryWindowMetrics(insight), nil
}

// FactoryWindowMetrics converte a linha de insights; campos ausentes ou não numéricos viram zero.
// A API entrega CTR em porcentagem, aqui ele é normalizado para fração.
func FactoryWindowMetrics(insight *metadomain.Insight) domain.WindowMetrics {
	if insight == nil {
		return domain.WindowMetrics{}
	}

	metrics := domain.WindowMetrics{
		Impressions: utils.ParseIntOrZero(insight.Impressions),
		Clicks:      utils.ParseIntOrZero(insight.Clicks),
		Spend:       utils.ParseFloatOrZero(insight.Spend),
		CTR:         utils.ParseFloatOrZero(insight.CTR) / 100,
		CPC:         utils.ParseFloatOrZero(insight.CPC),
		CPM:         utils.ParseFloatOrZero(insight.CPM),
		Frequency:   utils.ParseFloatOrZero(insight.Frequency),
	}

	if metrics.CTR == 0 && metrics.Impressions > 0 {
		metrics.CTR = float64(metrics.Clicks) / float64(metrics.Impressions)
	}

	return metrics
}

// PublishAd cria o criativo e o anúncio ativo no conjunto informado
func (s *MetaIntegrator) PublishAd(ctx context.Context, creds domain.PlatformCredentials, in domain.PublishAdInput) (string, error) {
	spec, err := buildObjectStorySpec(in)
	if err != nil {
		return "", err
	}

	creativeID, err := s.Client.CreateAdCreative(ctx, creds.AccessToken, metadomain.CreateCreativeParams{
		AccountID:       in.AccountID,
		Name:            in.Variant.ID,
		ObjectStorySpec: spec,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao criar criativo %s: %w", in.Variant.ID, wrapAuthError(err))
	}

	adID, err := s.Client.CreateAd(ctx, creds.AccessToken, metadomain.CreateAdParams{
		AccountID:  in.AccountID,
		AdsetID:    in.AdsetID,
		CreativeID: creativeID,
		Name:       fmt.Sprintf("%s_%s", in.Variant.ID, in.AdsetID),
		Status:     metaclient.AdStatusActive,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao criar anúncio para a variante %s: %w", in.Variant.ID, wrapAuthError(err))
	}

	logrus.WithFields(logrus.Fields{
		"adset_id":    in.AdsetID,
		"variant_id":  in.Variant.ID,
		"creative_id": creativeID,
		"ad_id":       adID,
	}).Debug("meta: ad published")

	return adID, nil
}

func (s *MetaIntegrator) PauseAd(ctx context.Context, creds domain.PlatformCredentials, adID string) error {
	return wrapAuthError(s.Client.UpdateAdStatus(ctx, creds.AccessToken, adID, metaclient.AdStatusPaused))
}

// wrapAuthError anexa domain.ErrPlatformAuth às falhas de token, mantendo o erro original na cadeia
func wrapAuthError(err error) error {
	if err == nil || !metaclient.IsAuthError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrPlatformAuth, err)
}

func buildObjectStorySpec(in domain.PublishAdInput) (metadomain.ObjectStorySpec, error) {
	cta := in.Variant.CallToAction
	if cta == "" {
		cta = defaultCallToAction
	}
	callToAction := &metadomain.CallToAction{
		Type:  cta,
		Value: metadomain.CallToActionValue{Link: in.DestinationURL},
	}

	spec := metadomain.ObjectStorySpec{PageID: in.PageID}

	switch in.Variant.Kind {
	case domain.VariantKindVideo:
		if in.Variant.VideoID == "" {
			return spec, fmt.Errorf("variante %s sem video_id", in.Variant.ID)
		}
		spec.VideoData = &metadomain.VideoData{
			VideoID:      in.Variant.VideoID,
			Title:        in.Variant.Headline,
			Message:      in.Variant.PrimaryText,
			ImageURL:     in.Variant.ThumbnailURL,
			CallToAction: callToAction,
		}
	default:
		if in.Variant.ImageHash == "" && in.Variant.ImageURL == "" {
			return spec, fmt.Errorf("variante %s sem imagem", in.Variant.ID)
		}
		spec.LinkData = &metadomain.LinkData{
			Link:         in.DestinationURL,
			Message:      in.Variant.PrimaryText,
			Name:         in.Variant.Headline,
			ImageHash:    in.Variant.ImageHash,
			Picture:      in.Variant.ImageURL,
			CallToAction: callToAction,
		}
	}

	return spec, nil
}
