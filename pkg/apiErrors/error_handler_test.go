package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Ciclo em andamento",
			code:       ErrCampaignBusy,
			details:    map[string]string{"campaign_id": "c1"},
			wantStatus: http.StatusConflict,
			wantBody:   `{"code":"OPT_002","message":"msg","details":{"campaign_id":"c1"}}`,
		},
		{
			name:       "Falha de geração",
			code:       ErrGenerationFailed,
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"code":"OPT_003","message":"msg"}`,
		},
		{
			name:       "Código desconhecido vira 500",
			code:       "XYZ_999",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"XYZ_999","message":"msg"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "msg", tt.details)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
