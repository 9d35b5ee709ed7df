package entities

// RentalQuote is the computed price breakdown for a prospective rental.
// Values keep full precision; rounding happens only when formatting for
// display or the notification payload.
type RentalQuote struct {
	Days        int     `json:"days"`
	Subtotal    float64 `json:"subtotal"`
	DiscountPct float64 `json:"discount_percentage"`
	Total       float64 `json:"total"`
	Savings     float64 `json:"savings"`
}
