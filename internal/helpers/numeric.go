package helpers

import (
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Money and rate precisions used for NUMERIC columns.
const (
	MoneyPlaces int32 = 2
	RatePlaces  int32 = 4
)

var ErrInvalidNumeric = errors.New("invalid numeric value")

// Float64ToNumeric rounds v half away from zero to places and converts it to
// a pgtype.Numeric.
func Float64ToNumeric(v float64, places int32) (pgtype.Numeric, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return pgtype.Numeric{}, fmt.Errorf("%w: %v", ErrInvalidNumeric, v)
	}
	return DecimalToNumeric(decimal.NewFromFloat(v).Round(places)), nil
}

// DecimalToNumeric converts without rounding.
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

// NumericToDecimal returns zero for a NULL numeric.
func NumericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, ErrInvalidNumeric
	}
	if n.Int == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

// NumericToFloat64 returns zero for a NULL numeric.
func NumericToFloat64(n pgtype.Numeric) (float64, error) {
	d, err := NumericToDecimal(n)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(MoneyPlaces)
}

// FormatRate renders a rate or percentage with four decimal places.
func FormatRate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(RatePlaces)
}
