package extract

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// SplitVAT derives the exclusive amount and VAT portion from an
// inclusive amount. Pure function: excl = incl / (1 + rate/100) rounded
// to 2 places, vat = incl - excl, so excl + vat always reproduces incl.
func SplitVAT(incl, rate decimal.Decimal) (excl, vat decimal.Decimal) {
	excl = incl.Div(one.Add(rate.Div(hundred))).Round(2)
	vat = incl.Sub(excl)
	return excl, vat
}

// AddVAT derives the VAT portion and inclusive amount from an exclusive
// amount.
func AddVAT(excl, rate decimal.Decimal) (incl, vat decimal.Decimal) {
	vat = excl.Mul(rate.Div(hundred)).Round(2)
	incl = excl.Add(vat)
	return incl, vat
}
