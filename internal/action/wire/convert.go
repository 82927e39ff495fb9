// Package wire builds exchange actions in the field order the venue hashes
// them and converts floats into their wire representation.
package wire

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	wireDecimals = 8
	usdDecimals  = 6

	perpMaxDecimals = 6
	spotMaxDecimals = 8
	priceSigFigs    = 5

	// Integer prices at or above this bound skip significant figure rounding.
	integerPriceBound = 100_000
)

const wireTolerance = 1e-12

var intTolerance = decimal.New(1, -3)

func checkFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errors.Wrapf(ErrRounding, "%v is not finite", x)
	}
	return nil
}

// FloatToWire formats x with at most eight decimals and no trailing zeros.
// It fails when eight decimals are not enough to represent x.
func FloatToWire(x float64) (string, error) {
	if err := checkFinite(x); err != nil {
		return "", err
	}

	rounded := decimal.NewFromFloat(x).Round(wireDecimals)
	if math.Abs(rounded.InexactFloat64()-x) >= wireTolerance {
		return "", errors.Wrapf(ErrRounding, "%v needs more than %d decimals", x, wireDecimals)
	}
	if rounded.IsZero() {
		return "0", nil
	}

	return rounded.String(), nil
}

// FloatToInt scales x by 10^decimals and returns the nearest integer.
func FloatToInt(x float64, decimals int) (int64, error) {
	if err := checkFinite(x); err != nil {
		return 0, err
	}

	scaled := decimal.NewFromFloat(x).Shift(int32(decimals))
	rounded := scaled.Round(0)
	if rounded.Sub(scaled).Abs().GreaterThanOrEqual(intTolerance) {
		return 0, errors.Wrapf(ErrRounding, "%v has more than %d decimals", x, decimals)
	}

	return rounded.IntPart(), nil
}

// FloatToUSDInt converts a USD amount to its six-decimal integer form.
func FloatToUSDInt(x float64) (int64, error) {
	return FloatToInt(x, usdDecimals)
}

// RoundPrice rounds px to five significant figures and to no more than
// the asset's price decimals (6 for perps, 8 for spot, minus szDecimals).
func RoundPrice(px float64, szDecimals int, isSpot bool) float64 {
	if px >= integerPriceBound && px == math.Trunc(px) {
		return px
	}

	d := decimal.NewFromFloat(px)
	if px != 0 {
		magnitude := int32(math.Floor(math.Log10(math.Abs(px))))
		d = d.Round(priceSigFigs - 1 - magnitude)
	}

	maxDecimals := perpMaxDecimals
	if isSpot {
		maxDecimals = spotMaxDecimals
	}

	return d.Round(int32(maxDecimals - szDecimals)).InexactFloat64()
}

// RoundSize rounds sz to the asset's size decimals.
func RoundSize(sz float64, szDecimals int) float64 {
	return decimal.NewFromFloat(sz).Round(int32(szDecimals)).InexactFloat64()
}
