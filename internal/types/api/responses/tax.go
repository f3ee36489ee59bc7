package responses

import (
	"time"

	"github.com/taxpro/taxpro-api/internal/taxengine"
)

// TaxCalculationResponse echoes the inputs of an estimate together with the
// computed amounts.
type TaxCalculationResponse struct {
	ID                   string                 `json:"id"`
	Income               float64                `json:"income"`
	FilingStatus         string                 `json:"filingStatus"`
	State                string                 `json:"state"`
	StandardDeduction    float64                `json:"standardDeduction"`
	AdditionalDeductions float64                `json:"additionalDeductions"`
	FederalTax           float64                `json:"federalTax"`
	StateTax             float64                `json:"stateTax"`
	EffectiveRate        float64                `json:"effectiveRate"`
	TaxableIncome        float64                `json:"taxableIncome"`
	StateRate            float64                `json:"stateRate"`
	MarginalRate         float64                `json:"marginalRate"`
	Breakdown            []taxengine.BracketTax `json:"breakdown,omitempty"`
	TablesVersion        string                 `json:"tablesVersion,omitempty"`
	CalculatedAt         time.Time              `json:"calculatedAt"`
}

// StateRateResponse is a single entry of the state rate table.
type StateRateResponse struct {
	State string  `json:"state"`
	Rate  float64 `json:"rate"`
	Known bool    `json:"known"`
}
