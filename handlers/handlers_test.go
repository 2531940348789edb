package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsight/intent"
)

func testApp() *fiber.App {
	h := New(nil, intent.NewParser("", ""), intent.NewInsightGenerator("", ""))
	app := fiber.New()
	app.Get("/health", h.HandleHealth)
	app.Post("/api/search", h.HandleSearch)
	app.Get("/api/products/:articleId", h.HandleGetProduct)
	return app
}

func postSearch(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleSearchRejectsInvalidBody(t *testing.T) {
	resp := postSearch(t, testApp(), "{not json")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearchRejectsMissingQuery(t *testing.T) {
	resp := postSearch(t, testApp(), `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearchRejectsOversizedPage(t *testing.T) {
	resp := postSearch(t, testApp(), `{"query":"nike shoes","page_size":500}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearchRejectsOutOfRangeConfidence(t *testing.T) {
	resp := postSearch(t, testApp(), `{"query":"nike shoes","min_confidence":1.5}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearchRejectsUnknownGranularity(t *testing.T) {
	resp := postSearch(t, testApp(), `{"query":"nike shoes","granularity":"hour"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearchRejectsBadDateRange(t *testing.T) {
	resp := postSearch(t, testApp(), `{"query":"nike shoes","date_range":{"start":"15/09/2020"}}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "date_range.start")
}

func TestHandleGetProductRejectsBadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-number", nil)
	resp, err := testApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleHealthDegradedWithoutStore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := testApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Status   string `json:"status"`
		Services struct {
			Database string `json:"database"`
			LLM      string `json:"llm"`
			Model    string `json:"model"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "disconnected", body.Services.Database)
	assert.Equal(t, "unconfigured", body.Services.LLM)
	assert.Equal(t, "gemini-2.5-flash-lite", body.Services.Model)
}
