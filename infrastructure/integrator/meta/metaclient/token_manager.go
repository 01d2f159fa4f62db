package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

const (
	refreshInterval      = 23 * time.Hour
	refreshRetryInterval = time.Hour
	refreshThreshold     = 24 * time.Hour
)

// TokenManager gerencia o token de acesso da API do Meta e o entrega ao motor como credencial explícita
type TokenManager struct {
	api       *tokenAPI
	storage   config.SecretStorage
	mu        sync.Mutex
	token     string
	longLived bool
	expiresAt time.Time
	now       func() time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, storage config.SecretStorage) *TokenManager {
	token := cfg.Meta.AccessToken
	if cfg.Meta.LongLivedToken != "" {
		token = cfg.Meta.LongLivedToken
	}

	return &TokenManager{
		api: &tokenAPI{
			baseURL:    cfg.Meta.BaseURL,
			version:    cfg.Meta.Version,
			appID:      cfg.Meta.AppID,
			appSecret:  cfg.Meta.AppSecret,
			httpClient: &http.Client{Timeout: 30 * time.Second},
		},
		storage:   storage,
		token:     token,
		longLived: cfg.Meta.LongLivedToken != "",
		expiresAt: cfg.Meta.TokenExpiresAt,
		now:       time.Now,
	}
}

// Credentials devolve um token válido para as chamadas do ciclo, renovando-o quando necessário
func (tm *TokenManager) Credentials(ctx context.Context) (domain.PlatformCredentials, error) {
	if err := tm.EnsureValidToken(ctx); err != nil {
		return domain.PlatformCredentials{}, err
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	return domain.PlatformCredentials{AccessToken: tm.token}, nil
}

// InvalidateCredentials força a revalidação do token na próxima chamada de Credentials
func (tm *TokenManager) InvalidateCredentials() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	logrus.Warn("Credenciais do Meta invalidadas após falha de autenticação")
	tm.expiresAt = time.Time{}
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token == "" {
		return ErrMissingToken
	}

	if !tm.longLived {
		logrus.Info("Token de curta duração. Obtendo token de longa duração...")
		return tm.refreshLocked(ctx)
	}

	if tm.expiresAt.IsZero() {
		return tm.validateLocked(ctx)
	}

	if tm.expiresAt.Sub(tm.now()) < refreshThreshold {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.refreshLocked(ctx)
	}

	return nil
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.refreshLocked(ctx)
}

// StartAutoRefresh renova o token periodicamente até o contexto ser cancelado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(refreshRetryInterval)
				continue
			}
			ticker.Reset(refreshInterval)
		case <-ctx.Done():
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

func (tm *TokenManager) validateLocked(ctx context.Context) error {
	isValid, expiresAt, err := tm.api.debugToken(ctx, tm.token)
	if err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if !isValid {
		logrus.Warn("Token inválido. Tentando renovar...")
		return tm.refreshLocked(ctx)
	}

	if expiresAt.IsZero() {
		// Tokens de sistema não expiram
		tm.expiresAt = tm.now().Add(365 * 24 * time.Hour)
	} else {
		tm.expiresAt = expiresAt.Add(-refreshThreshold)
	}

	logrus.Infof("Token de longa duração é válido. Expira em: %s", tm.expiresAt.Format(time.RFC3339))
	return nil
}

func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	tokenResponse, err := tm.api.exchangeLongLived(ctx, tm.token)
	if err != nil {
		if IsAuthError(err) {
			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
			return fmt.Errorf("o token de acesso expirou e requer reautorização manual: %w", err)
		}
		return err
	}

	tm.token = tokenResponse.AccessToken
	tm.longLived = true
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResponse.ExpiresIn)

	if err := tm.storage.AddOrUpdateSecret(ctx, config.MetaAccessTokenSecret, tm.token); err != nil {
		logrus.WithError(err).Warn("Não foi possível persistir o token renovado")
	}

	logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s", tm.expiresAt.Format(time.RFC3339))
	return nil
}
