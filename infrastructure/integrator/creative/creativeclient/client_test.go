package creativeclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	creativedomain "github.com/vfg2006/creative-rotation-api/infrastructure/integrator/creative/domain"
)

func TestCreativeClient_RenderVariants(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, variants []creativedomain.Variant, err error)
	}{
		{
			name: "Envia o pedido e decodifica as variantes",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/variants", r.URL.Path)
				assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

				body, _ := io.ReadAll(r.Body)
				var req creativedomain.RenderVariantsRequest
				require.NoError(t, json.Unmarshal(body, &req))
				assert.Equal(t, "image", req.Kind)
				assert.Equal(t, 2, req.Count)
				assert.Equal(t, "c1", req.CampaignID)

				_, _ = w.Write([]byte(`{"variants":[{"id":"a1","image_hash":"h1"},{"id":"a2","image_hash":"h2"}]}`))
			},
			validate: func(t *testing.T, variants []creativedomain.Variant, err error) {
				require.NoError(t, err)
				require.Len(t, variants, 2)
				assert.Equal(t, "h2", variants[1].ImageHash)
			},
		},
		{
			name: "Erro do serviço é propagado com a mensagem",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"error":"upstream","message":"fila cheia"}`))
			},
			validate: func(t *testing.T, variants []creativedomain.Variant, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "fila cheia")
				assert.Nil(t, variants)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := &CreativeClient{baseURL: server.URL, apiKey: "key", httpClient: server.Client()}

			variants, err := client.RenderVariants(context.Background(), creativedomain.RenderVariantsRequest{
				CampaignID: "c1",
				Kind:       "image",
				Count:      2,
			})
			tt.validate(t, variants, err)
		})
	}
}

func TestCreativeClient_NotConfigured(t *testing.T) {
	client := &CreativeClient{httpClient: http.DefaultClient}

	_, err := client.RenderVariants(context.Background(), creativedomain.RenderVariantsRequest{Kind: "video", Count: 1})
	assert.ErrorIs(t, err, ErrServiceNotConfigured)
}
