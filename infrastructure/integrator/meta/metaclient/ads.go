package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/domain"
)

const (
	AdStatusActive = "ACTIVE"
	AdStatusPaused = "PAUSED"
)

// CreateAdCreative cria o criativo na conta de anúncios e retorna seu ID
func (c *MetaClient) CreateAdCreative(ctx context.Context, token string, params metadomain.CreateCreativeParams) (string, error) {
	spec, err := json.Marshal(params.ObjectStorySpec)
	if err != nil {
		return "", fmt.Errorf("meta: erro ao serializar object_story_spec: %w", err)
	}

	form := url.Values{}
	form.Add("name", params.Name)
	form.Add("object_story_spec", string(spec))

	var response metadomain.ResponseCreated
	if err := c.post(ctx, token, fmt.Sprintf("act_%s/adcreatives", params.AccountID), form, &response); err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", errors.New("meta: criativo criado sem ID na resposta")
	}

	return response.ID, nil
}

// CreateAd cria um anúncio no conjunto usando um criativo existente
func (c *MetaClient) CreateAd(ctx context.Context, token string, params metadomain.CreateAdParams) (string, error) {
	creative, err := json.Marshal(map[string]string{"creative_id": params.CreativeID})
	if err != nil {
		return "", err
	}

	status := params.Status
	if status == "" {
		status = AdStatusActive
	}

	form := url.Values{}
	form.Add("name", params.Name)
	form.Add("adset_id", params.AdsetID)
	form.Add("creative", string(creative))
	form.Add("status", status)

	var response metadomain.ResponseCreated
	if err := c.post(ctx, token, fmt.Sprintf("act_%s/ads", params.AccountID), form, &response); err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", errors.New("meta: anúncio criado sem ID na resposta")
	}

	return response.ID, nil
}

// UpdateAdStatus altera o status de um anúncio, por exemplo para PAUSED
func (c *MetaClient) UpdateAdStatus(ctx context.Context, token, adID, status string) error {
	form := url.Values{}
	form.Add("status", status)

	var response metadomain.ResponseSuccess
	if err := c.post(ctx, token, adID, form, &response); err != nil {
		return err
	}

	if !response.Success {
		return fmt.Errorf("meta: a plataforma não confirmou a alteração de status do anúncio %s", adID)
	}

	return nil
}
