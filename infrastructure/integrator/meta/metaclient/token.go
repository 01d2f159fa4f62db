package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type debugTokenResponse struct {
	Data struct {
		IsValid   bool  `json:"is_valid"`
		ExpiresAt int64 `json:"expires_at"`
	} `json:"data"`
}

// tokenAPI agrupa as chamadas de ciclo de vida do token na Graph API
type tokenAPI struct {
	baseURL    string
	version    string
	appID      string
	appSecret  string
	httpClient *http.Client
}

// exchangeLongLived troca um token (curto ou longo) por um novo token de longa duração
func (a *tokenAPI) exchangeLongLived(ctx context.Context, currentToken string) (*TokenResponse, error) {
	if currentToken == "" {
		return nil, ErrMissingToken
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", a.appID)
	params.Add("client_secret", a.appSecret)
	params.Add("fb_exchange_token", currentToken)

	requestURL := fmt.Sprintf("%s/%s/oauth/access_token?%s", a.baseURL, a.version, params.Encode())

	body, err := a.get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// debugToken consulta a validade e a expiração de um token
func (a *tokenAPI) debugToken(ctx context.Context, token string) (bool, time.Time, error) {
	params := url.Values{}
	params.Add("input_token", token)
	params.Add("access_token", a.appID+"|"+a.appSecret)

	requestURL := fmt.Sprintf("%s/%s/debug_token?%s", a.baseURL, a.version, params.Encode())

	body, err := a.get(ctx, requestURL)
	if err != nil {
		return false, time.Time{}, fmt.Errorf("erro ao obter informações de debug do token: %w", err)
	}

	var response debugTokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return false, time.Time{}, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	var expiresAt time.Time
	if response.Data.ExpiresAt > 0 {
		expiresAt = time.Unix(response.Data.ExpiresAt, 0)
	}

	return response.Data.IsValid, expiresAt, nil
}

func (a *tokenAPI) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HandleResponse(resp)
	}

	return io.ReadAll(resp.Body)
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula a data de expiração do token com base no tempo de expiração em segundos
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	// Subtraímos 1 dia para renovar antes da expiração real
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
