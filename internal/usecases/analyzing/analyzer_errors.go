package analyzing

import (
	"errors"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

var (
	ErrListAdsets = errors.New("error listing campaign adsets")
	// ErrPlatformAuth é o mesmo sentinela do domínio, exposto aqui para os chamadores da análise
	ErrPlatformAuth = domain.ErrPlatformAuth
)
