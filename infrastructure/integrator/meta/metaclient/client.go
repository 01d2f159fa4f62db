package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-rotation-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrTokenExpired     = errors.New("meta: token de acesso expirado ou inválido")
	ErrPermissionDenied = errors.New("meta: permissão negada")
	ErrRateLimited      = errors.New("meta: limite de requisições atingido")
	ErrMissingToken     = errors.New("meta: token de acesso não informado")
)

// maxPages limita a paginação para evitar laços infinitos com cursores inconsistentes
const maxPages = 50

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	ListAdSets(ctx context.Context, token, campaignID string) ([]metadomain.AdSet, error)
	ListAds(ctx context.Context, token, adsetID string) ([]metadomain.Ad, error)
	GetInsights(ctx context.Context, token, objectID string, since, until time.Time) (*metadomain.Insight, error)
	CreateAdCreative(ctx context.Context, token string, params metadomain.CreateCreativeParams) (string, error)
	CreateAd(ctx context.Context, token string, params metadomain.CreateAdParams) (string, error)
	UpdateAdStatus(ctx context.Context, token, adID, status string) error
}

type MetaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &MetaClient{
		baseURL:    cfg.Meta.URL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError carrega o erro estruturado devolvido pela Graph API
type APIError struct {
	StatusCode int
	Response   *metadomain.ErrorResponse
	Body       string
}

func (e *APIError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("%s (status: %d)", e.Response.String(), e.StatusCode)
	}
	return fmt.Sprintf("meta: erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrTokenExpired
	case e.Response == nil:
		if containsTokenExpirationMessage(e.Body) {
			return ErrTokenExpired
		}
		return nil
	case e.Response.IsTokenExpired():
		return ErrTokenExpired
	case e.Response.IsPermissionDenied():
		return ErrPermissionDenied
	case e.Response.IsRateLimited():
		return ErrRateLimited
	}
	return nil
}

// IsAuthError indica falhas do token de acesso (código 190, HTTP 401 ou token ausente).
// Permissão negada em um objeto específico não entra aqui.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrMissingToken)
}

func (c *MetaClient) get(ctx context.Context, token, path string, params url.Values, out any) error {
	if token == "" {
		return ErrMissingToken
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	return c.fetch(ctx, fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode()), out)
}

func (c *MetaClient) fetch(ctx context.Context, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	return c.do(req, out)
}

func (c *MetaClient) post(ctx context.Context, token, path string, form url.Values, out any) error {
	if token == "" {
		return ErrMissingToken
	}

	form.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.baseURL, path), strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

func (c *MetaClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// HandleResponse lê o corpo da resposta e converte respostas de erro em *APIError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	if errorResp, parseErr := ParseErrorResponse(body); parseErr == nil && errorResp.Error.Code != 0 {
		apiErr.Response = errorResp
	}

	if errors.Is(apiErr, ErrTokenExpired) {
		logrus.WithField("status", resp.StatusCode).Warn("Token expirado detectado pela API Meta")
	}

	return nil, apiErr
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
