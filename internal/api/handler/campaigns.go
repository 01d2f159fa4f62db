package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/internal/domain"
	"github.com/vfg2006/creative-rotation-api/internal/usecases/optimizing"
	"github.com/vfg2006/creative-rotation-api/pkg/apiErrors"
)

// EnableCampaign cria ou atualiza a configuração de otimização da campanha
func EnableCampaign(service optimizing.OptimizerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.EnableCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.CampaignID = campaignID

		cfg, err := service.EnableCampaign(r.Context(), &req)
		if err != nil {
			handleOptimizerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func DisableCampaign(service optimizing.OptimizerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DisableCampaign(r.Context(), campaignID); err != nil {
			handleOptimizerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RunCampaign dispara um ciclo imediato; o corpo é opcional
func RunCampaign(service optimizing.OptimizerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var opts domain.RunOptions
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		opts.Trigger = domain.RunTriggerManual

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"force":       opts.Force,
		}).Info("Ciclo manual solicitado")

		result, err := service.RunOnce(r.Context(), campaignID, opts)
		if err != nil {
			handleOptimizerError(w, err)
			return
		}

		switch result.Status {
		case domain.RunResultBusy:
			apiErrors.WriteError(w, apiErrors.ErrCampaignBusy, optimizing.ErrCampaignBusy.Error(), result)
		case domain.RunResultGenerationFailed:
			apiErrors.WriteError(w, apiErrors.ErrGenerationFailed, result.Reason, result)
		default:
			writeJSON(w, http.StatusOK, result)
		}
	}
}

// GetCampaign retorna a configuração e as execuções mais recentes
func GetCampaign(service optimizing.OptimizerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		status, err := service.GetCampaignStatus(r.Context(), campaignID, limit)
		if err != nil {
			handleOptimizerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func ListCampaigns(service optimizing.OptimizerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs, err := service.ListCampaigns(r.Context())
		if err != nil {
			handleOptimizerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, configs)
	}
}
