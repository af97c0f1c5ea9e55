// Package quote computes itemized rental price breakdowns. Everything here is
// a pure function over its inputs: no I/O, no hidden state, and every call
// recomputes the full quote from scratch rather than patching a prior one.
package quote

import "math"

const (
	// DeliveryFee is the flat charge for home delivery and pick-up, in rupees.
	DeliveryFee int64 = 200

	// DefaultTaxRate is the GST fraction applied to the rental and delivery
	// charges. The security deposit is refundable and stays outside the tax
	// base.
	DefaultTaxRate = 0.05
)

// Input carries everything needed to price a rental. All amounts are whole
// rupees. A zero TaxRate or DeliveryFee selects the package default; the
// pricing policy has no tax-free or free-delivery tier, so zero is never a
// meaningful rate of its own.
type Input struct {
	RatePerDay       int64
	Dates            DateRange
	SecurityDeposit  int64
	DeliveryRequired bool
	DeliveryFee      int64
	TaxRate          float64
	Discount         int64
}

// Quote is an itemized price breakdown. It is transient: callers own it and
// recompute it whenever any input changes.
type Quote struct {
	PricePerDay     int64 `json:"pricePerDay"`
	NumberOfDays    int64 `json:"numberOfDays"`
	TotalAmount     int64 `json:"totalAmount"`
	SecurityDeposit int64 `json:"securityDeposit"`
	DeliveryCharge  int64 `json:"deliveryCharges"`
	TaxAmount       int64 `json:"taxes"`
	Discount        int64 `json:"discount"`
	FinalAmount     int64 `json:"finalAmount"`
}

// Compute prices a rental:
//
//	total    = rate * days
//	delivery = the delivery fee if requested, else 0
//	tax      = round((total + delivery) * taxRate)
//	final    = total + deposit + delivery + tax - discount
//
// The discount is clamped to the rental subtotal so the rental contribution
// never goes negative; the deposit, delivery charge, and tax always survive
// in the final amount.
func Compute(in Input) (Quote, error) {
	if err := in.Dates.Validate(); err != nil {
		return Quote{}, err
	}

	days := in.Dates.Days()
	total := in.RatePerDay * days

	var delivery int64
	if in.DeliveryRequired {
		delivery = in.DeliveryFee
		if delivery == 0 {
			delivery = DeliveryFee
		}
	}

	taxRate := in.TaxRate
	if taxRate == 0 {
		taxRate = DefaultTaxRate
	}
	tax := int64(math.Round(float64(total+delivery) * taxRate))

	discount := in.Discount
	if discount < 0 {
		discount = 0
	}
	if discount > total {
		discount = total
	}

	return Quote{
		PricePerDay:     in.RatePerDay,
		NumberOfDays:    days,
		TotalAmount:     total,
		SecurityDeposit: in.SecurityDeposit,
		DeliveryCharge:  delivery,
		TaxAmount:       tax,
		Discount:        discount,
		FinalAmount:     total + in.SecurityDeposit + delivery + tax - discount,
	}, nil
}
