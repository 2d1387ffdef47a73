// Package pricing holds the pure rental math: duration between calendar
// dates, the tiered discount schedule, and the date-range overlap test.
// Nothing here touches storage; callers resolve vehicles and rentals first.
package pricing

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// Discount schedule. The day tiers are exclusive of each other; the
// bicycle bonus stacks on top of whichever tier fired (or none).
const (
	weeklyDiscountRate   = 0.15
	threeDayDiscountRate = 0.05
	bicycleDiscountRate  = 0.10

	weeklyDiscountReason   = "weekly discount (15%)"
	threeDayDiscountReason = "3+ day discount (5%)"
	bicycleDiscountReason  = "bicycle 5+ day discount (10%)"
)

// ParseDate parses a yyyy-mm-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return t, nil
}

// RentalDays returns the rental duration in whole days: start day
// included, end day excluded. The end date must be strictly after the
// start date.
func RentalDays(startDate, endDate string) (int32, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	if !end.After(start) {
		return 0, domain.ErrInvalidDateRange
	}
	return int32(end.Sub(start).Hours() / 24), nil
}

// Quote is a priced rental duration. DiscountAmount and DiscountReason
// are nil when no discount applies.
type Quote struct {
	BasePrice      float64
	TotalPrice     float64
	DiscountAmount *float64
	DiscountReason *string
}

// PriceRental computes the total price for renting a vehicle of the given
// type for the given number of days. Discounts: 5% at 3+ days, 15% at 7+
// days, plus an extra 10% for bicycles rented 5+ days, stacked on top of
// the day tier. Amounts are raw products; no rounding is applied.
func PriceRental(pricePerDay float64, vehicleType domain.VehicleType, days int32) Quote {
	base := pricePerDay * float64(days)

	rate := 0.0
	reason := ""
	if days >= 7 {
		rate = weeklyDiscountRate
		reason = weeklyDiscountReason
	} else if days >= 3 {
		rate = threeDayDiscountRate
		reason = threeDayDiscountReason
	}

	if vehicleType == domain.VehicleTypeBicycle && days >= 5 {
		rate += bicycleDiscountRate
		if reason != "" {
			reason += " + " + bicycleDiscountReason
		} else {
			reason = bicycleDiscountReason
		}
	}

	q := Quote{BasePrice: base, TotalPrice: base}
	if rate > 0 {
		discount := base * rate
		q.TotalPrice = base - discount
		q.DiscountAmount = &discount
		q.DiscountReason = &reason
	}
	return q
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A rental ending exactly the day another
// starts does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !aStart.Before(bEnd))
}
