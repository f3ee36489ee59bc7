// Package taxengine computes progressive federal income tax and flat state
// income tax from immutable bracket and rate tables.
package taxengine

import "math"

// ComputeTax applies brackets to the taxable portion of input.Income and a
// flat stateRate to the same base.
//
// The caller must pass validated input: non-negative finite amounts, a table
// that passed Validate and a stateRate in [0,1]. ComputeTax holds no state
// and may be called concurrently.
func ComputeTax(input TaxInput, brackets BracketTable, stateRate float64) TaxResult {
	taxable := math.Max(0, input.Income-input.StandardDeduction-input.AdditionalDeductions)

	result := TaxResult{
		TaxableIncome: taxable,
		Breakdown:     make([]BracketTax, 0, len(brackets)),
	}

	remaining := taxable
	for _, b := range brackets {
		// Width is +Inf for the top bracket, so remaining always wins there.
		taxed := math.Min(math.Max(0, remaining), b.Width())
		tax := taxed * b.Rate

		result.FederalTax += tax
		result.Breakdown = append(result.Breakdown, BracketTax{
			Bracket:     b,
			TaxedAmount: taxed,
			Tax:         tax,
		})

		remaining -= taxed
		if remaining <= 0 {
			break
		}
	}

	result.StateTax = taxable * stateRate

	if input.Income > 0 {
		result.EffectiveRate = (result.FederalTax + result.StateTax) / input.Income * 100
	}

	return result
}

// MarginalRate returns the rate of the bracket containing amount, or 0 for
// an empty table.
func MarginalRate(brackets BracketTable, amount float64) float64 {
	rate := 0.0
	for _, b := range brackets {
		if amount < b.Min {
			break
		}
		rate = b.Rate
	}
	return rate
}
