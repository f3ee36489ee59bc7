package business

import (
	"time"

	"github.com/google/uuid"
)

// TaxCalculationRecord is the snapshot of one estimate that is written to
// history, either directly or through the history queue.
type TaxCalculationRecord struct {
	ID                   uuid.UUID `json:"id"`
	Income               float64   `json:"income"`
	FilingStatus         string    `json:"filingStatus"`
	State                string    `json:"state"`
	StandardDeduction    float64   `json:"standardDeduction"`
	AdditionalDeductions float64   `json:"additionalDeductions"`
	FederalTax           float64   `json:"federalTax"`
	StateTax             float64   `json:"stateTax"`
	EffectiveRate        float64   `json:"effectiveRate"`
	TaxableIncome        float64   `json:"taxableIncome"`
	TablesVersion        string    `json:"tablesVersion,omitempty"`
	CalculatedAt         time.Time `json:"calculatedAt"`
}
