package creativeclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	creativedomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/creative/domain"
	"github.com/vfg2006/creative-rotation-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrServiceNotConfigured = errors.New("creative: serviço de renderização não configurado")

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	RenderVariants(ctx context.Context, params creativedomain.RenderVariantsRequest) ([]creativedomain.Variant, error)
}

type CreativeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Creative.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &CreativeClient{
		baseURL:    cfg.Creative.ServiceURL,
		apiKey:     cfg.Creative.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RenderVariants pede ao serviço a quantidade informada de variantes de um tipo
func (c *CreativeClient) RenderVariants(ctx context.Context, params creativedomain.RenderVariantsRequest) ([]creativedomain.Variant, error) {
	if c.baseURL == "" {
		return nil, ErrServiceNotConfigured
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/variants")

	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp creativedomain.ErrorResponse
		if json.Unmarshal(body, &errorResp) == nil && errorResp.Message != "" {
			return nil, fmt.Errorf("requisição falhou com status %d: %s", resp.StatusCode, errorResp.Message)
		}
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response creativedomain.RenderVariantsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": params.CampaignID,
		"kind":        params.Kind,
		"requested":   params.Count,
		"received":    len(response.Variants),
	}).Debug("creative: variants rendered")

	return response.Variants, nil
}
