package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// All ledger arithmetic is integer cents. Callers speak decimal strings at
// the API boundary; this package is the only place the two meet.

var ErrBadAmount = errors.New("amount must be a non-negative value with at most two decimal places")

var hundred = decimal.NewFromInt(100)

// FeeBreakdown is the result of splitting an amount into platform fee and
// the net payable to the influencer.
type FeeBreakdown struct {
	AmountCents      int64
	PlatformFeeCents int64
	NetAmountCents   int64
	RateBps          int64
}

// CalculateFees splits amountCents at rateBps basis points (1000 = 10%).
// Fee truncates toward zero, so PlatformFeeCents + NetAmountCents always
// equals AmountCents exactly. Holds for rate 0 (zero fee, full net) and
// amount 0 (all zero).
func CalculateFees(amountCents, rateBps int64) FeeBreakdown {
	fee := amountCents * rateBps / 10000
	return FeeBreakdown{
		AmountCents:      amountCents,
		PlatformFeeCents: fee,
		NetAmountCents:   amountCents - fee,
		RateBps:          rateBps,
	}
}

// ParseAmount converts a caller-facing decimal string ("1500.00") to cents.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrBadAmount
	}
	return ToCents(d)
}

// ToCents converts a decimal amount to cents, rejecting sub-cent precision
// and negative values.
func ToCents(d decimal.Decimal) (int64, error) {
	c := d.Mul(hundred)
	if !c.IsInteger() || c.IsNegative() {
		return 0, ErrBadAmount
	}
	return c.IntPart(), nil
}

// Format renders cents as a two-decimal string ("1500.00").
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
