package params

// CalculateTaxParams contains the inputs for a single estimate.
// StandardDeduction nil means use the default for the filing status.
type CalculateTaxParams struct {
	Income               float64
	FilingStatus         string
	State                string
	StandardDeduction    *float64
	AdditionalDeductions float64
}
