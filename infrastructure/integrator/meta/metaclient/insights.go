package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/domain"
)

const insightFields = "impressions,clicks,spend,ctr,cpc,cpm,frequency"

// GetInsights retorna as métricas agregadas de um conjunto ou anúncio no intervalo de datas.
// Sem entrega no período a resposta vem vazia e o retorno é nil.
func (c *MetaClient) GetInsights(ctx context.Context, token, objectID string, since, until time.Time) (*metadomain.Insight, error) {
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("time_range", timeRange)

	var response metadomain.ResponseInsights
	if err := c.get(ctx, token, fmt.Sprintf("%s/insights", objectID), params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
