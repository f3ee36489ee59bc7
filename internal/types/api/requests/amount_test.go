package requests_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxpro/taxpro-api/internal/types/api/requests"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr bool
	}{
		{name: "number", body: `{"income": 50000}`, want: 50000},
		{name: "fractional number", body: `{"income": 1234.56}`, want: 1234.56},
		{name: "numeric string", body: `{"income": "50000"}`, want: 50000},
		{name: "padded string", body: `{"income": " 75.5 "}`, want: 75.5},
		{name: "empty string", body: `{"income": ""}`, want: 0},
		{name: "word", body: `{"income": "lots"}`, wantErr: true},
		{name: "boolean", body: `{"income": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req requests.CalculateTaxRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req.Income)
			assert.Equal(t, tt.want, req.Income.Float64())
		})
	}
}

func TestAmount_NilIsZero(t *testing.T) {
	var req requests.CalculateTaxRequest
	require.NoError(t, json.Unmarshal([]byte(`{"income": 1}`), &req))

	assert.Nil(t, req.AdditionalDeductions)
	assert.Equal(t, 0.0, req.AdditionalDeductions.Float64())
}
