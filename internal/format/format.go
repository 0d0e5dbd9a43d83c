// Package format renders money, percentages and asset quantities for display.
package format

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the fiat currency every amount in the service is expressed in
const Currency = money.USD

// Money renders amount in Currency, e.g. "$45,750.00"
func Money(amount float64) string {
	return newMoney(amount).Display()
}

// SignedMoney is Money with an explicit "+" on positive amounts
func SignedMoney(amount float64) string {
	m := newMoney(amount)
	if m.IsPositive() {
		return "+" + m.Display()
	}
	return m.Display()
}

// Percent renders p with one decimal, e.g. "8.9%"
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// SignedPercent is Percent with an explicit sign, e.g. "+8.9%"
func SignedPercent(p float64) string {
	return fmt.Sprintf("%+.1f%%", p)
}

// BTC renders a bitcoin quantity with four decimals
func BTC(quantity float64) string {
	return fmt.Sprintf("%.4f BTC", quantity)
}

func newMoney(amount float64) *money.Money {
	cur := money.GetCurrency(Currency)
	factor := decimal.New(1, int32(cur.Fraction))
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	minor := decimal.NewFromFloat(amount).Mul(factor).Round(0)
	return money.New(minor.IntPart(), Currency)
}
