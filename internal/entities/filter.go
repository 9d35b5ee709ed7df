package entities

// DefaultMaxDailyRate is the upper bound of the price slider on the cars page.
const DefaultMaxDailyRate = 30000

// FilterSpec narrows the catalog. An empty slice means no constraint on that
// dimension; the price range is always applied, bounds inclusive.
type FilterSpec struct {
	Types         []string
	Fuels         []FuelType
	Transmissions []Transmission
	Seats         []int
	Locations     []string
	PriceMin      float64
	PriceMax      float64
	Search        string
}

// DefaultFilterSpec returns the spec a fresh cars page starts with.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{PriceMin: 0, PriceMax: DefaultMaxDailyRate}
}

type SortKey string

const (
	SortFeatured     SortKey = "featured"
	SortPriceLowHigh SortKey = "price-low"
	SortPriceHighLow SortKey = "price-high"
	SortRating       SortKey = "rating"
	SortNewest       SortKey = "newest"
)

// ParseSortKey maps a query-string value to a SortKey, falling back to
// SortFeatured for anything unknown.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLowHigh, SortPriceHighLow, SortRating, SortNewest:
		return SortKey(s)
	default:
		return SortFeatured
	}
}
