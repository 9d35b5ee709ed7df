package service

import (
	"errors"
	"time"

	"rentacar/internal/entities"
)

// ErrInvalidDateRange is returned when the return instant is not strictly
// after pickup. Callers must surface it before any booking or email goes out.
var ErrInvalidDateRange = errors.New("return time must be after pickup time")

// RentalDays counts chargeable days as the ceiling of the wall-clock
// difference over 24h: any partial day past a full boundary is charged.
func RentalDays(pickup, ret time.Time) (int, error) {
	if !ret.After(pickup) {
		return 0, ErrInvalidDateRange
	}
	d := ret.Sub(pickup)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days, nil
}

// BestDiscount picks the applicable tier with the highest percentage. When
// two applicable tiers share the percentage the one with the smaller day
// threshold wins, so the choice is deterministic regardless of tier order.
func BestDiscount(tiers []entities.DiscountTier, days int) (entities.DiscountTier, bool) {
	var best entities.DiscountTier
	found := false
	for _, t := range tiers {
		if days < t.MinDays {
			continue
		}
		if !found || t.Percentage > best.Percentage ||
			(t.Percentage == best.Percentage && t.MinDays < best.MinDays) {
			best = t
			found = true
		}
	}
	return best, found
}

// ComputeQuote prices a rental of the given daily rate between pickup and
// ret. Totals keep full precision; formatting to two decimals is left to
// the boundary that renders them.
func ComputeQuote(pricePerDay float64, tiers []entities.DiscountTier, pickup, ret time.Time) (entities.RentalQuote, error) {
	days, err := RentalDays(pickup, ret)
	if err != nil {
		return entities.RentalQuote{}, err
	}

	subtotal := float64(days) * pricePerDay
	total := subtotal
	var pct float64
	if tier, ok := BestDiscount(tiers, days); ok {
		pct = tier.Percentage
		total = subtotal * (1 - pct/100)
	}

	return entities.RentalQuote{
		Days:        days,
		Subtotal:    subtotal,
		DiscountPct: pct,
		Total:       total,
		Savings:     subtotal - total,
	}, nil
}
