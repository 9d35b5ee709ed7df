package service

import (
	"fmt"
	"sort"
	"strings"

	"rentacar/internal/entities"
)

// CatalogService holds the fleet loaded at startup. The slice is never
// mutated after construction, so Query is safe to call from any number of
// requests without coordination.
type CatalogService struct {
	vehicles []entities.Vehicle
	bySlug   map[string]entities.Vehicle
}

func NewCatalogService(vehicles []entities.Vehicle) (*CatalogService, error) {
	bySlug := make(map[string]entities.Vehicle, len(vehicles))
	for _, v := range vehicles {
		if v.PricePerDay <= 0 {
			return nil, fmt.Errorf("vehicle %q: price per day must be positive", v.Slug)
		}
		if v.Rating < 0 || v.Rating > 5 {
			return nil, fmt.Errorf("vehicle %q: rating %v out of range", v.Slug, v.Rating)
		}
		if _, dup := bySlug[v.Slug]; dup {
			return nil, fmt.Errorf("duplicate vehicle slug %q", v.Slug)
		}
		seen := make(map[int]bool, len(v.Discounts))
		for _, t := range v.Discounts {
			if seen[t.MinDays] {
				return nil, fmt.Errorf("vehicle %q: duplicate discount tier for %d days", v.Slug, t.MinDays)
			}
			seen[t.MinDays] = true
		}
		bySlug[v.Slug] = v
	}
	return &CatalogService{vehicles: vehicles, bySlug: bySlug}, nil
}

func (s *CatalogService) VehicleBySlug(slug string) (entities.Vehicle, bool) {
	v, ok := s.bySlug[slug]
	return v, ok
}

func (s *CatalogService) Query(filters entities.FilterSpec, key entities.SortKey) []entities.Vehicle {
	return QueryVehicles(s.vehicles, filters, key)
}

// QueryVehicles returns the vehicles matching filters, ordered by key.
// Predicates AND across dimensions; within a dimension a non-empty set means
// any-of. The price range is always applied, bounds inclusive. The input
// slice is left untouched and the sort is stable, so ties keep their
// catalog order.
func QueryVehicles(inventory []entities.Vehicle, filters entities.FilterSpec, key entities.SortKey) []entities.Vehicle {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	result := make([]entities.Vehicle, 0, len(inventory))
	for _, v := range inventory {
		if !matchesFilters(v, filters, search) {
			continue
		}
		result = append(result, v)
	}

	switch key {
	case entities.SortPriceLowHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].PricePerDay < result[j].PricePerDay })
	case entities.SortPriceHighLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].PricePerDay > result[j].PricePerDay })
	case entities.SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	default:
		// featured and rating both rank by rating
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}

	return result
}

func matchesFilters(v entities.Vehicle, f entities.FilterSpec, search string) bool {
	if len(f.Types) > 0 && !containsString(f.Types, v.Type) {
		return false
	}
	if len(f.Fuels) > 0 && !containsFuel(f.Fuels, v.Fuel) {
		return false
	}
	if len(f.Transmissions) > 0 && !containsTransmission(f.Transmissions, v.Transmission) {
		return false
	}
	if len(f.Seats) > 0 && !containsInt(f.Seats, v.Seats) {
		return false
	}
	if len(f.Locations) > 0 && !containsString(f.Locations, v.Location) {
		return false
	}
	if v.PricePerDay < f.PriceMin || v.PricePerDay > f.PriceMax {
		return false
	}
	if search != "" {
		if !strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Brand), search) &&
			!strings.Contains(strings.ToLower(v.Type), search) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, n int) bool {
	for _, item := range list {
		if item == n {
			return true
		}
	}
	return false
}

func containsFuel(list []entities.FuelType, f entities.FuelType) bool {
	for _, item := range list {
		if item == f {
			return true
		}
	}
	return false
}

func containsTransmission(list []entities.Transmission, t entities.Transmission) bool {
	for _, item := range list {
		if item == t {
			return true
		}
	}
	return false
}
