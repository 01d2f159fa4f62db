package optimizing

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrCampaignIDRequired  = errors.New("campaign ID is required")
	ErrAccountIDRequired   = errors.New("account ID is required")
	ErrPageIDRequired      = errors.New("page ID is required")
	ErrDestinationRequired = errors.New("destination URL is required")
	ErrInvalidKPI          = errors.New("invalid KPI")
	ErrInvalidAssetTypes   = errors.New("invalid asset types")

	ErrCampaignNotFound = errors.New("campaign config not found")
	ErrCampaignBusy     = errors.New("campaign cycle already in progress")

	// Erros de infraestrutura
	ErrStore       = errors.New("store operation error")
	ErrLock        = errors.New("error acquiring campaign lock")
	ErrCredentials = errors.New("error resolving platform credentials")
	ErrAnalysis    = errors.New("error analyzing campaign")
)

// OptimizerError é um erro com contexto adicional para o ciclo de otimização
type OptimizerError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // Campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *OptimizerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OptimizerError) Unwrap() error {
	return e.Err
}

func NewOptimizerError(err error, code string, details string) *OptimizerError {
	return &OptimizerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewOptimizerErrorWithID(err error, code string, campaignID string, details string) *OptimizerError {
	return &OptimizerError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
