package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const renderAPIURL = "https://api.render.com/v1"

// MetaAccessTokenSecret é o nome do segredo que guarda o token de longa duração do Meta
const MetaAccessTokenSecret = "meta_access_token"

// SecretStorage persiste segredos da aplicação, como o token renovado do Meta
type SecretStorage interface {
	ListSecrets(ctx context.Context) (map[string]string, error)
	AddOrUpdateSecret(ctx context.Context, secretName, secretContent string) error
}

type addOrUpdateSecretRequest struct {
	Content string `json:"content"`
}

type RenderClient struct {
	APIKey     string
	ServiceID  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		ServiceID:  config.Render.ServiceID,
		BaseURL:    renderAPIURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled indica se há um serviço configurado para guardar segredos
func (c *RenderClient) Enabled() bool {
	return c.APIKey != "" && c.ServiceID != ""
}

func (c *RenderClient) ListSecrets(ctx context.Context) (map[string]string, error) {
	if !c.Enabled() {
		return map[string]string{}, nil
	}

	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, c.ServiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string, len(response))
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}

func (c *RenderClient) AddOrUpdateSecret(ctx context.Context, secretName, secretContent string) error {
	if !c.Enabled() {
		return nil
	}

	url := fmt.Sprintf("%s/services/%s/secret-files/%s", c.BaseURL, c.ServiceID, secretName)

	jsonData, err := json.Marshal(addOrUpdateSecretRequest{Content: secretContent})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("config: error add or update secret: %s", body)
	}
	return nil
}
