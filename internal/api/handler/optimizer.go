package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-rotation-api/pkg/apiErrors"
)

// SweepController expõe a varredura periódica para acionamento manual
type SweepController interface {
	TriggerSweep() bool
	GetStatus() map[string]any
}

func TriggerSweep(sweeper SweepController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSweep")

		if !sweeper.TriggerSweep() {
			apiErrors.WriteError(w, apiErrors.ErrCampaignBusy, "Varredura já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Varredura iniciada com sucesso",
		})
	}
}

func GetOptimizerStatus(sweeper SweepController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sweeper.GetStatus())
	}
}
