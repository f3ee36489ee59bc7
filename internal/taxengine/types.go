package taxengine

import (
	"encoding/json"
	"math"
)

// FilingStatus selects which federal bracket table applies.
type FilingStatus string

const (
	FilingStatusSingle          FilingStatus = "single"
	FilingStatusMarried         FilingStatus = "married"
	FilingStatusHeadOfHousehold FilingStatus = "headOfHousehold"
)

// FilingStatuses lists the supported statuses in display order.
var FilingStatuses = []FilingStatus{
	FilingStatusSingle,
	FilingStatusMarried,
	FilingStatusHeadOfHousehold,
}

// ParseFilingStatus returns the status matching s exactly.
func ParseFilingStatus(s string) (FilingStatus, bool) {
	for _, fs := range FilingStatuses {
		if string(fs) == s {
			return fs, true
		}
	}
	return "", false
}

// Bracket is a single income band taxed at Rate. Min is inclusive. An
// unbounded top bracket has Max set to +Inf.
type Bracket struct {
	Min  float64
	Max  float64
	Rate float64
}

// Unbounded reports whether the bracket has no upper limit.
func (b Bracket) Unbounded() bool {
	return math.IsInf(b.Max, 1)
}

// Width is Max - Min, +Inf for the top bracket.
func (b Bracket) Width() float64 {
	return b.Max - b.Min
}

type bracketJSON struct {
	Min  float64  `json:"min"`
	Max  *float64 `json:"max"`
	Rate float64  `json:"rate"`
}

// MarshalJSON encodes an unbounded Max as null.
func (b Bracket) MarshalJSON() ([]byte, error) {
	out := bracketJSON{Min: b.Min, Rate: b.Rate}
	if !b.Unbounded() {
		upper := b.Max
		out.Max = &upper
	}
	return json.Marshal(out)
}

// UnmarshalJSON treats a null or missing max as unbounded.
func (b *Bracket) UnmarshalJSON(data []byte) error {
	var in bracketJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	b.Min = in.Min
	b.Rate = in.Rate
	b.Max = math.Inf(1)
	if in.Max != nil {
		b.Max = *in.Max
	}
	return nil
}

// BracketTable is an ascending, contiguous sequence of brackets covering
// [0, +Inf).
type BracketTable []Bracket

// TaxInput holds already validated, non-negative amounts.
type TaxInput struct {
	Income               float64      `json:"income"`
	FilingStatus         FilingStatus `json:"filingStatus"`
	State                string       `json:"state"`
	StandardDeduction    float64      `json:"standardDeduction"`
	AdditionalDeductions float64      `json:"additionalDeductions"`
}

// BracketTax is the slice of taxable income that fell into one bracket.
type BracketTax struct {
	Bracket     Bracket `json:"bracket"`
	TaxedAmount float64 `json:"taxedAmount"`
	Tax         float64 `json:"tax"`
}

// TaxResult is the output of ComputeTax. EffectiveRate is a percentage.
type TaxResult struct {
	FederalTax    float64      `json:"federalTax"`
	StateTax      float64      `json:"stateTax"`
	EffectiveRate float64      `json:"effectiveRate"`
	TaxableIncome float64      `json:"taxableIncome"`
	Breakdown     []BracketTax `json:"breakdown"`
}

// TotalTax is federal plus state tax.
func (r TaxResult) TotalTax() float64 {
	return r.FederalTax + r.StateTax
}
