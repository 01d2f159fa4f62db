package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/optimizing"
	"github.com/vfg2006/creative-rotation-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleOptimizerError traduz os erros do motor de otimização para o envelope da API
func handleOptimizerError(w http.ResponseWriter, err error) {
	var optErr *optimizing.OptimizerError
	if errors.As(err, &optErr) {
		details := map[string]any{}
		if optErr.CampaignID != "" {
			details["campaign_id"] = optErr.CampaignID
		}
		if optErr.Details != "" {
			details["details"] = optErr.Details
		}
		apiErrors.WriteError(w, optErr.Code, optErr.Err.Error(), details)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no motor de otimização")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
