package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_integrada/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Store.Retry.BaseDelay = 0
	router, err := NewRouter(context.Background(), cfg)
	require.NoError(t, err)

	w := serve(t, router, http.MethodGet, "/v1/ping", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(t, router, http.MethodPost, "/v1/quotes",
		`{"client_name":"Acme","issue_date":"2024-03-10","service_type":"Installation","description":"Install panel"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var quote struct {
		VisualID string `json:"visual_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	require.Equal(t, "45361-1-10032024", quote.VisualID)

	w = serve(t, router, http.MethodGet, "/v1/quotes/preview?issue_date=2024-03-10", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"visual_id":"45361-2-10032024"`)

	w = serve(t, router, http.MethodPatch, "/v1/quotes/"+quote.VisualID+"/approve", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(t, router, http.MethodPost, "/v1/work-orders",
		`{"quote_visual_id":"45361-1-10032024","art_region":"RJ","art_number":"55555"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"art_code":"RJ-55555"`)

	w = serve(t, router, http.MethodPost, "/v1/work-orders", `{"quote_visual_id":"45361-1-10032024","art_pending":true}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = serve(t, router, http.MethodGet, "/v1/quotes?status=CONVERTED", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), quote.VisualID)

	w = serve(t, router, http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_work_orders":1`)

	w = serve(t, router, http.MethodPut, "/v1/registry/clients", `{"rows":[{"name":"Acme","city":"Campinas"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = serve(t, router, http.MethodGet, "/v1/registry/clients", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"city":"Campinas"`)
}
