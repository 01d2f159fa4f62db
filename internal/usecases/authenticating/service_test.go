package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-rotation-api/internal/config"
	"github.com/vfg2006/creative-rotation-api/pkg/middleware"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh@forte"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(config.Auth{
		Secret:               "test-secret",
		OperatorEmail:        "Ops@Loja.com",
		OperatorPasswordHash: string(hash),
	})
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		validate func(t *testing.T, s *Service, token string, err error)
	}{
		{
			name:     "Login do operador gera token válido",
			email:    " ops@loja.com",
			password: "s3nh@forte",
			validate: func(t *testing.T, s *Service, token string, err error) {
				require.NoError(t, err)
				claims, err := s.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "ops@loja.com", claims.UserEmail)
				assert.Equal(t, middleware.RoleAdmin, claims.UserRoleID)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ops@loja.com",
			password: "errada",
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Outro email",
			email:    "intruso@loja.com",
			password: "s3nh@forte",
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:  "Campos obrigatórios",
			email: "ops@loja.com",
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(t)
			token, err := s.LoginUser(tt.email, tt.password)
			tt.validate(t, s, token, err)
		})
	}
}

func TestService_LoginUser_OperatorNotConfigured(t *testing.T) {
	s := NewService(config.Auth{Secret: "x"})

	_, err := s.LoginUser("ops@loja.com", "qualquer")
	assert.ErrorIs(t, err, ErrOperatorNotSet)
	assert.True(t, IsCredentialsError(err))
}

func TestService_ValidateToken(t *testing.T) {
	s := newService(t)
	token, err := s.LoginUser("ops@loja.com", "s3nh@forte")
	require.NoError(t, err)

	t.Run("Token expirado", func(t *testing.T) {
		s.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
		defer func() { s.now = time.Now }()

		_, err := s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		other := NewService(config.Auth{Secret: "outro"})
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Algoritmo inesperado", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
