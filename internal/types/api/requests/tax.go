package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary input that accepts either a JSON number or a numeric
// string such as "50000". An empty string decodes as 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q is not a number", s)
		}
		*a = Amount(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("amount must be a number: %w", err)
	}
	*a = Amount(f)
	return nil
}

// Float64 returns the amount, treating nil as 0.
func (a *Amount) Float64() float64 {
	if a == nil {
		return 0
	}
	return float64(*a)
}

// CalculateTaxRequest represents the request body for a tax estimate.
// StandardDeduction falls back to the default for the filing status when
// omitted.
type CalculateTaxRequest struct {
	Income               *Amount `json:"income" binding:"required,min=0"`
	FilingStatus         string  `json:"filingStatus" binding:"required"`
	State                string  `json:"state" binding:"required,len=2"`
	StandardDeduction    *Amount `json:"standardDeduction,omitempty" binding:"omitempty,min=0"`
	AdditionalDeductions *Amount `json:"additionalDeductions,omitempty" binding:"omitempty,min=0"`
}
