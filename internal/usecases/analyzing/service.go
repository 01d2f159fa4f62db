package analyzing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/policy"
	"github.com/vfg2006/creative-rotation-api/pkg/utils"
)

const DefaultWindowDays = 3

type AnalyzerService interface {
	AnalyzeCampaign(ctx context.Context, req domain.AnalyzeRequest) (*domain.Analysis, error)
}

type Service struct {
	reader     MetricsReader
	windowDays int
	now        func() time.Time
}

func NewService(reader MetricsReader, windowDays int) *Service {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	return &Service{
		reader:     reader,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Windows calcula as janelas recente e anterior a partir de um único instante, sem incluir o dia corrente
func Windows(now time.Time, days int) (recent, prior domain.DateRange) {
	recent = domain.DateRange{
		Since: utils.DaysAgo(now, days),
		Until: utils.DaysAgo(now, 1),
	}
	prior = domain.DateRange{
		Since: utils.DaysAgo(now, 2*days),
		Until: utils.DaysAgo(now, days+1),
	}
	return recent, prior
}

// AnalyzeCampaign busca as métricas de cada conjunto e anúncio da campanha e calcula platô, vencedor e perdedor.
// Falhas de leitura por entidade viram métricas zeradas; falha de autenticação ou na listagem de conjuntos aborta.
func (s *Service) AnalyzeCampaign(ctx context.Context, req domain.AnalyzeRequest) (*domain.Analysis, error) {
	now := s.now().UTC()
	recentWindow, priorWindow := Windows(now, s.windowDays)

	adsetIDs, err := s.reader.ListAdsets(ctx, req.Credentials, req.CampaignID)
	if err != nil {
		if errors.Is(err, domain.ErrPlatformAuth) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrListAdsets, err)
	}

	analysis := &domain.Analysis{
		CampaignID:     req.CampaignID,
		EvaluatedAt:    now,
		RecentWindow:   recentWindow,
		PriorWindow:    priorWindow,
		AdsetIDs:       adsetIDs,
		AdsetMetrics:   make(map[string]domain.AdsetMetrics, len(adsetIDs)),
		AdsByAdset:     make(map[string][]domain.AdMetrics, len(adsetIDs)),
		PlateauByAdset: make(map[string]bool, len(adsetIDs)),
		WinnerByAdset:  make(map[string]string),
		LoserByAdset:   make(map[string]string),
	}

	for _, adsetID := range adsetIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		degraded, err := s.analyzeAdset(ctx, req, adsetID, analysis)
		if err != nil {
			return nil, err
		}
		if degraded {
			analysis.DegradedAdsets = append(analysis.DegradedAdsets, adsetID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": req.CampaignID,
		"adsets":      len(adsetIDs),
		"plateaued":   len(analysis.PlateauedAdsets()),
		"degraded":    len(analysis.DegradedAdsets),
	}).Info("Análise da campanha concluída")

	return analysis, nil
}

func (s *Service) analyzeAdset(ctx context.Context, req domain.AnalyzeRequest, adsetID string, analysis *domain.Analysis) (bool, error) {
	recent, recentErr := s.reader.GetMetrics(ctx, req.Credentials, adsetID, analysis.RecentWindow)
	prior, priorErr := s.reader.GetMetrics(ctx, req.Credentials, adsetID, analysis.PriorWindow)
	if err := authError(recentErr, priorErr); err != nil {
		return false, err
	}

	if recentErr != nil || priorErr != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": req.CampaignID,
			"adset_id":    adsetID,
		}).Warn("Métricas do conjunto indisponíveis, conjunto tratado como sem platô")

		analysis.AdsetMetrics[adsetID] = domain.AdsetMetrics{}
		analysis.PlateauByAdset[adsetID] = false
		analysis.AdsByAdset[adsetID] = []domain.AdMetrics{}
		return true, nil
	}

	analysis.AdsetMetrics[adsetID] = domain.AdsetMetrics{Recent: recent, Prior: prior}
	analysis.PlateauByAdset[adsetID] = policy.IsPlateau(recent, prior, req.Thresholds)

	ads, err := s.reader.ListAds(ctx, req.Credentials, adsetID)
	if err != nil {
		if errors.Is(err, domain.ErrPlatformAuth) {
			return false, err
		}
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Warn("Falha ao listar anúncios do conjunto, ranking vazio")
		analysis.AdsByAdset[adsetID] = []domain.AdMetrics{}
		return true, nil
	}

	degraded := false
	adMetrics := make([]domain.AdMetrics, 0, len(ads))
	for _, ad := range ads {
		adRecent, adRecentErr := s.reader.GetMetrics(ctx, req.Credentials, ad.ID, analysis.RecentWindow)
		adPrior, adPriorErr := s.reader.GetMetrics(ctx, req.Credentials, ad.ID, analysis.PriorWindow)
		if err := authError(adRecentErr, adPriorErr); err != nil {
			return false, err
		}
		if adRecentErr != nil {
			adRecent = domain.WindowMetrics{}
			degraded = true
		}
		if adPriorErr != nil {
			adPrior = domain.WindowMetrics{}
			degraded = true
		}

		adMetrics = append(adMetrics, domain.AdMetrics{
			AdID:   ad.ID,
			Name:   ad.Name,
			Status: ad.Status,
			Recent: adRecent,
			Prior:  adPrior,
		})
	}

	RankAds(adMetrics, req.KPI)
	analysis.AdsByAdset[adsetID] = adMetrics

	if len(adMetrics) > 0 {
		analysis.WinnerByAdset[adsetID] = adMetrics[0].AdID
		analysis.LoserByAdset[adsetID] = adMetrics[len(adMetrics)-1].AdID
	}

	return degraded, nil
}

// RankAds ordena os anúncios do melhor para o pior pelo valor recente do KPI, preservando a ordem da plataforma nos empates.
// Em KPIs de custo o menor valor vence e custo zero, que indica ausência de entrega, vai para o fim.
func RankAds(ads []domain.AdMetrics, kpi domain.KPI) {
	sort.SliceStable(ads, func(i, j int) bool {
		return score(ads[i].Recent, kpi) > score(ads[j].Recent, kpi)
	})
}

func score(m domain.WindowMetrics, kpi domain.KPI) float64 {
	v := m.KPIValue(kpi)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	if kpi.LowerIsBetter() {
		if v <= 0 {
			return math.Inf(-1)
		}
		return -v
	}

	return v
}

func authError(errs ...error) error {
	for _, err := range errs {
		if err != nil && errors.Is(err, domain.ErrPlatformAuth) {
			return err
		}
	}
	return nil
}
