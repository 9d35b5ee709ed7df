package entities

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// DiscountTier qualifies rentals of MinDays or more for Percentage off.
type DiscountTier struct {
	MinDays    int     `json:"days"`
	Percentage float64 `json:"percentage"`
}

// Vehicle is one car in the fleet. The catalog is loaded once at startup and
// never mutated afterwards.
type Vehicle struct {
	ID           int            `json:"id"`
	Slug         string         `json:"slug"`
	Name         string         `json:"name"`
	Brand        string         `json:"brand"`
	Type         string         `json:"type"`
	Year         int            `json:"year"`
	Seats        int            `json:"seats"`
	Luggage      int            `json:"luggage"`
	Fuel         FuelType       `json:"fuel"`
	Transmission Transmission   `json:"transmission"`
	PricePerDay  float64        `json:"price_per_day"`
	Discounts    []DiscountTier `json:"discounts,omitempty"`
	Location     string         `json:"location"`
	Rating       float64        `json:"rating"`
	Images       []string       `json:"images"`
	Description  string         `json:"description"`
	Features     []string       `json:"features"`
	Mileage      string         `json:"mileage"`
}
