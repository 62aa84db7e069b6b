package reservation

import (
	"errors"
	"math"
)

var (
	ErrNegativeNights   = errors.New("nights cannot be negative")
	ErrNegativeRate     = errors.New("price per night cannot be negative")
	ErrNegativeDiscount = errors.New("discount cannot be negative")
)

// PriceQuote itemizes the amounts for a stay. The service charge is folded
// into Final and not persisted separately.
type PriceQuote struct {
	Total    Money
	Discount Money
	Tax      Money
	Service  Money
	Final    Money
}

// Rates are supplied per call from configuration; they are not an attribute
// of the room or the reservation.
type Rates struct {
	TaxPercent           float64
	ServiceChargePercent float64
}

type PriceCalculator interface {
	Quote(rateCentsPerNight int64, nights int, discountCents int64, rates Rates) (PriceQuote, error)
}

// StandardPriceCalculator computes, in order:
//
//	total        = rate * nights
//	afterDiscount = total - discount
//	tax          = afterDiscount * taxPercent/100
//	service      = afterDiscount * servicePercent/100
//	final        = afterDiscount + tax + service
//
// Percent amounts are rounded half-up to the cent. The discount is
// deliberately not clamped to the total: a discount larger than the total
// yields a negative base for tax and service, reproducing the billing
// behavior this engine replaced.
type StandardPriceCalculator struct{}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{}
}

func (c *StandardPriceCalculator) Quote(rateCentsPerNight int64, nights int, discountCents int64, rates Rates) (PriceQuote, error) {
	if nights < 0 {
		return PriceQuote{}, ErrNegativeNights
	}
	if rateCentsPerNight < 0 {
		return PriceQuote{}, ErrNegativeRate
	}
	if discountCents < 0 {
		return PriceQuote{}, ErrNegativeDiscount
	}

	totalCents := rateCentsPerNight * int64(nights)
	afterDiscount := totalCents - discountCents

	taxCents := percentOf(afterDiscount, rates.TaxPercent)
	serviceCents := percentOf(afterDiscount, rates.ServiceChargePercent)
	finalCents := afterDiscount + taxCents + serviceCents

	return PriceQuote{
		Total:    NewMoney(totalCents),
		Discount: NewMoney(discountCents),
		Tax:      NewMoney(taxCents),
		Service:  NewMoney(serviceCents),
		Final:    NewMoney(finalCents),
	}, nil
}

// percentOf rounds half-up, away from zero for negative bases, matching
// decimal HALF_UP semantics.
func percentOf(cents int64, percent float64) int64 {
	raw := float64(cents) * percent / 100.0
	if raw >= 0 {
		return int64(math.Floor(raw + 0.5))
	}
	return int64(math.Ceil(raw - 0.5))
}
