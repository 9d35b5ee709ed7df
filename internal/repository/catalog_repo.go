package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"rentacar/internal/entities"
)

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// LoadVehicles reads the whole fleet with its discount tiers. Called once at
// startup; the result becomes the process-wide read-only catalog.
func (r *CatalogRepository) LoadVehicles() ([]entities.Vehicle, error) {
	query := `
		SELECT id, slug, name, brand, type, year, seats, luggage, fuel, transmission,
		       price_per_day, location, rating, images, description, features, mileage
		FROM vehicles
		ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []entities.Vehicle
	index := map[int]int{}
	for rows.Next() {
		var v entities.Vehicle
		err := rows.Scan(
			&v.ID, &v.Slug, &v.Name, &v.Brand, &v.Type, &v.Year, &v.Seats, &v.Luggage,
			&v.Fuel, &v.Transmission, &v.PricePerDay, &v.Location, &v.Rating,
			pq.Array(&v.Images), &v.Description, pq.Array(&v.Features), &v.Mileage,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		index[v.ID] = len(vehicles)
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicle rows: %w", err)
	}

	tierRows, err := r.DB.Query(`
		SELECT vehicle_id, min_days, percentage
		FROM vehicle_discounts
		ORDER BY vehicle_id, min_days`)
	if err != nil {
		return nil, fmt.Errorf("error querying discount tiers: %w", err)
	}
	defer tierRows.Close()

	for tierRows.Next() {
		var vehicleID int
		var tier entities.DiscountTier
		if err := tierRows.Scan(&vehicleID, &tier.MinDays, &tier.Percentage); err != nil {
			return nil, fmt.Errorf("error scanning discount tier: %w", err)
		}
		i, ok := index[vehicleID]
		if !ok {
			return nil, fmt.Errorf("discount tier references unknown vehicle %d", vehicleID)
		}
		vehicles[i].Discounts = append(vehicles[i].Discounts, tier)
	}
	if err = tierRows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating tier rows: %w", err)
	}

	return vehicles, nil
}
