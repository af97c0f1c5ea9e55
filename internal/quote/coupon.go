package quote

import (
	"errors"
	"math"
	"strings"
)

// ErrCouponNotFound is returned for codes absent from the policy table.
// An unknown code is a rejection, never a zero discount.
var ErrCouponNotFound = errors.New("invalid coupon code")

type DiscountType string

const (
	DiscountTypeFixed   DiscountType = "FIXED"
	DiscountTypePercent DiscountType = "PERCENT"
)

// CouponPolicy maps a code to a discount rule. Amount is used for FIXED
// policies, Fraction for PERCENT policies.
type CouponPolicy struct {
	Code        string       `json:"code"`
	Type        DiscountType `json:"type"`
	Amount      int64        `json:"amount,omitempty"`
	Fraction    float64      `json:"fraction,omitempty"`
	Description string       `json:"description"`
}

var couponPolicies = map[string]CouponPolicy{
	"FIRST50":   {Code: "FIRST50", Type: DiscountTypeFixed, Amount: 50, Description: "First booking discount"},
	"SAVE100":   {Code: "SAVE100", Type: DiscountTypeFixed, Amount: 100, Description: "₹100 off on bookings"},
	"WEEKEND20": {Code: "WEEKEND20", Type: DiscountTypePercent, Fraction: 0.20, Description: "20% off"},
}

// ResolveCoupon looks up a code in the policy table. Codes are normalized to
// upper case, so matching is case-insensitive.
func ResolveCoupon(code string) (CouponPolicy, error) {
	policy, ok := couponPolicies[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return CouponPolicy{}, ErrCouponNotFound
	}
	return policy, nil
}

// DiscountFor evaluates the policy against a subtotal. The result is clamped
// to the subtotal so a discount can never push the rental negative.
func (p CouponPolicy) DiscountFor(subtotal int64) int64 {
	if subtotal < 0 {
		return 0
	}
	var discount int64
	switch p.Type {
	case DiscountTypePercent:
		discount = int64(math.Round(p.Fraction * float64(subtotal)))
	default:
		discount = p.Amount
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// ApplyCoupon resolves a code and returns the discount it grants on the given
// subtotal. Only one coupon is ever active: callers replace, never stack, a
// previously applied discount with the returned value.
func ApplyCoupon(code string, subtotal int64) (int64, error) {
	policy, err := ResolveCoupon(code)
	if err != nil {
		return 0, err
	}
	return policy.DiscountFor(subtotal), nil
}
