package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/domain"
)

// ListAdSets retorna todos os conjuntos de anúncios ativos da campanha, seguindo a paginação
func (c *MetaClient) ListAdSets(ctx context.Context, token, campaignID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,daily_budget")
	params.Add("effective_status", `["ACTIVE"]`)
	params.Add("limit", "100")

	var page metadomain.ResponseAdSets
	if err := c.get(ctx, token, fmt.Sprintf("%s/adsets", campaignID), params, &page); err != nil {
		return nil, err
	}

	adsets := append([]metadomain.AdSet{}, page.Data...)
	for i := 0; page.Paging.Next != "" && i < maxPages; i++ {
		next := page.Paging.Next
		page = metadomain.ResponseAdSets{}
		if err := c.fetch(ctx, next, &page); err != nil {
			return nil, err
		}
		adsets = append(adsets, page.Data...)
	}

	return adsets, nil
}

// ListAds retorna os anúncios ativos de um conjunto, seguindo a paginação
func (c *MetaClient) ListAds(ctx context.Context, token, adsetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status")
	params.Add("effective_status", `["ACTIVE"]`)
	params.Add("limit", "100")

	var page metadomain.ResponseAds
	if err := c.get(ctx, token, fmt.Sprintf("%s/ads", adsetID), params, &page); err != nil {
		return nil, err
	}

	ads := append([]metadomain.Ad{}, page.Data...)
	for i := 0; page.Paging.Next != "" && i < maxPages; i++ {
		next := page.Paging.Next
		page = metadomain.ResponseAds{}
		if err := c.fetch(ctx, next, &page); err != nil {
			return nil, err
		}
		ads = append(ads, page.Data...)
	}

	return ads, nil
}
