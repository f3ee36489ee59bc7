package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taxpro/taxpro-api/internal/middleware"
	"github.com/taxpro/taxpro-api/internal/mocks"
	"github.com/taxpro/taxpro-api/internal/taxengine"
	"go.uber.org/zap"
)

type testEnv struct {
	router   *gin.Engine
	taxSvc   *mocks.MockTaxService
	docSvc   *mocks.MockDocumentService
	pingErr  error
	pingHits int
}

func (e *testEnv) Ping(context.Context) error {
	e.pingHits++
	return e.pingErr
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		taxSvc: mocks.NewMockTaxServiceForTest(t),
		docSvc: mocks.NewMockDocumentServiceForTest(t),
	}
	common := NewCommonServices(CommonServicesConfig{
		TaxService:      env.taxSvc,
		DocumentService: env.docSvc,
		Logger:          zap.NewNop(),
	})
	tax := NewTaxHandler(common, env.taxSvc)
	docs := NewDocumentHandler(common, env.docSvc)
	health := NewHealthHandler("local", taxengine.MustDefaultTables(), env)

	r := gin.New()
	r.Use(middleware.CorrelationIDMiddleware())
	r.GET("/health", health.Health)
	api := r.Group("/api")
	api.POST("/calculate-tax", tax.CalculateTax)
	api.GET("/tax-brackets/:filingStatus", tax.GetTaxBrackets)
	api.GET("/state-rates", tax.ListStateRates)
	api.GET("/state-rates/:state", tax.GetStateRate)
	api.GET("/tax-history", tax.GetTaxHistory)
	api.GET("/tax-history/:id", tax.GetTaxCalculation)
	api.POST("/documents", docs.UploadDocument)
	api.GET("/documents", docs.ListDocuments)
	api.GET("/documents/:id", docs.GetDocument)
	env.router = r
	return env
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

var errStorage = errors.New("connection refused")
