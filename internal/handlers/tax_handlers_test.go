package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxpro/taxpro-api/internal/services"
	"github.com/taxpro/taxpro-api/internal/taxengine"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"go.uber.org/mock/gomock"
)

func TestTaxHandler_CalculateTax(t *testing.T) {
	t.Run("passes coerced amounts to the service", func(t *testing.T) {
		env := newTestEnv(t)
		id := uuid.New()
		env.taxSvc.EXPECT().
			CalculateTax(gomock.Any(), params.CalculateTaxParams{
				Income:               50000,
				FilingStatus:         "single",
				State:                "CA",
				AdditionalDeductions: 0,
			}).
			Return(&TaxCalculationResponse{
				ID:            id.String(),
				Income:        50000,
				FilingStatus:  "single",
				State:         "CA",
				FederalTax:    4118,
				StateTax:      3361.95,
				EffectiveRate: 14.9599,
				TaxableIncome: 36150,
				CalculatedAt:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			}, nil)

		w := env.do(http.MethodPost, "/api/calculate-tax",
			`{"income":"50000","filingStatus":"single","state":"CA","additionalDeductions":""}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 4118.0, got["federalTax"])
		assert.Equal(t, 3361.95, got["stateTax"])
		assert.Equal(t, id.String(), got["id"])
	})

	t.Run("explicit standard deduction is forwarded", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().
			CalculateTax(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.CalculateTaxParams) (*TaxCalculationResponse, error) {
				require.NotNil(t, p.StandardDeduction)
				assert.Equal(t, 20000.0, *p.StandardDeduction)
				assert.Equal(t, 1500.0, p.AdditionalDeductions)
				return &TaxCalculationResponse{}, nil
			})

		w := env.do(http.MethodPost, "/api/calculate-tax", map[string]interface{}{
			"income":               80000,
			"filingStatus":         "married",
			"state":                "NY",
			"standardDeduction":    20000,
			"additionalDeductions": 1500,
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	badBodies := map[string]string{
		"invalid json":     `{"income":`,
		"missing income":   `{"filingStatus":"single","state":"CA"}`,
		"negative income":  `{"income":-1,"filingStatus":"single","state":"CA"}`,
		"non-numeric":      `{"income":"abc","filingStatus":"single","state":"CA"}`,
		"long state code":  `{"income":1,"filingStatus":"single","state":"CAL"}`,
		"missing status":   `{"income":1,"state":"CA"}`,
	}
	for name, body := range badBodies {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do(http.MethodPost, "/api/calculate-tax", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w).Error, "Invalid request body")
		})
	}

	t.Run("service validation error is a 400", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().CalculateTax(gomock.Any(), gomock.Any()).
			Return(nil, &services.ValidationError{Field: "state", Message: `unknown state code "ZZ"`})

		w := env.do(http.MethodPost, "/api/calculate-tax", `{"income":1,"filingStatus":"single","state":"ZZ"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, `state: unknown state code "ZZ"`, resp.Error)
		assert.NotEmpty(t, resp.CorrelationID)
	})

	t.Run("recording failure is a 500", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().CalculateTax(gomock.Any(), gomock.Any()).
			Return(nil, errors.Wrap(errStorage, "failed to save tax calculation"))

		w := env.do(http.MethodPost, "/api/calculate-tax", `{"income":1,"filingStatus":"single","state":"CA"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w).Error)
	})
}

func TestTaxHandler_GetTaxBrackets(t *testing.T) {
	env := newTestEnv(t)
	tables := taxengine.MustDefaultTables()
	env.taxSvc.EXPECT().GetTaxBrackets("single").Return(tables.BracketsFor("single"))
	env.taxSvc.EXPECT().GetTaxBrackets("widowed").Return(taxengine.BracketTable{})

	w := env.do(http.MethodGet, "/api/tax-brackets/single", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var brackets []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &brackets))
	require.Len(t, brackets, 7)
	assert.Equal(t, 0.0, brackets[0]["min"])
	assert.Nil(t, brackets[6]["max"])

	w = env.do(http.MethodGet, "/api/tax-brackets/widowed", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTaxHandler_StateRates(t *testing.T) {
	env := newTestEnv(t)
	env.taxSvc.EXPECT().GetStateRate("ca").Return(StateRateResponse{State: "CA", Rate: 0.093, Known: true})
	env.taxSvc.EXPECT().GetStateRate("ZZ").Return(StateRateResponse{State: "ZZ", Rate: 0})
	env.taxSvc.EXPECT().ListStateRates().Return([]StateRateResponse{{State: "AK", Rate: 0, Known: true}})

	w := env.do(http.MethodGet, "/api/state-rates/ca", nil)
	assert.JSONEq(t, `{"state":"CA","rate":0.093,"known":true}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/state-rates/ZZ", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"ZZ","rate":0,"known":false}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/state-rates", nil)
	assert.JSONEq(t, `[{"state":"AK","rate":0,"known":true}]`, w.Body.String())
}

func TestTaxHandler_GetTaxHistory(t *testing.T) {
	t.Run("returns records with limit", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().ListCalculationHistory(gomock.Any(), int32(5)).
			Return([]TaxCalculationResponse{{ID: "a"}, {ID: "b"}}, nil)

		w := env.do(http.MethodGet, "/api/tax-history?limit=5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got []TaxCalculationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("invalid limit falls back to default", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().ListCalculationHistory(gomock.Any(), int32(0)).Return(nil, nil)

		w := env.do(http.MethodGet, "/api/tax-history?limit=lots", nil)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("storage failure returns empty list", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().ListCalculationHistory(gomock.Any(), gomock.Any()).Return(nil, errStorage)

		w := env.do(http.MethodGet, "/api/tax-history", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestTaxHandler_GetTaxCalculation(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().GetCalculation(gomock.Any(), id).Return(&TaxCalculationResponse{ID: id.String()}, nil)

		w := env.do(http.MethodGet, "/api/tax-history/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.taxSvc.EXPECT().GetCalculation(gomock.Any(), id).
			Return(nil, errors.Wrapf(services.ErrNotFound, "tax calculation %s", id))

		w := env.do(http.MethodGet, "/api/tax-history/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Tax calculation not found", decodeError(t, w).Error)
	})

	t.Run("bad id", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodGet, "/api/tax-history/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
