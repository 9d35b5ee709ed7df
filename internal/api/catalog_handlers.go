package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	httperrors "rentacar/internal/errors"

	"rentacar/internal/entities"
	"rentacar/internal/service"
)

type CatalogHandler struct {
	Catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListCars handles GET /api/cars. Filter dimensions arrive as repeated or
// comma-separated query params; absent params leave the dimension
// unconstrained.
func (h *CatalogHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	filters, err := filterSpecFromQuery(r)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(err.Error()))
		return
	}
	sortKey := entities.ParseSortKey(r.URL.Query().Get("sort"))

	vehicles := h.Catalog.Query(filters, sortKey)
	writeJSON(w, http.StatusOK, CarsResponse{Total: len(vehicles), Vehicles: vehicles})
}

// GetCar handles GET /api/cars/{slug}.
func (h *CatalogHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	vehicle, ok := h.Catalog.VehicleBySlug(slug)
	if !ok {
		httperrors.WriteJSON(w, httperrors.NotFound("vehicle not found"))
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// GetQuote handles GET /api/cars/{slug}/quote?pickup=...&return=... with
// RFC 3339 instants. Recomputed on every call; nothing is stored.
func (h *CatalogHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	vehicle, ok := h.Catalog.VehicleBySlug(slug)
	if !ok {
		httperrors.WriteJSON(w, httperrors.NotFound("vehicle not found"))
		return
	}

	pickup, err := time.Parse(time.RFC3339, r.URL.Query().Get("pickup"))
	if err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid pickup time, want RFC 3339"))
		return
	}
	ret, err := time.Parse(time.RFC3339, r.URL.Query().Get("return"))
	if err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid return time, want RFC 3339"))
		return
	}

	quote, err := service.ComputeQuote(vehicle.PricePerDay, vehicle.Discounts, pickup, ret)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func filterSpecFromQuery(r *http.Request) (entities.FilterSpec, error) {
	q := r.URL.Query()
	filters := entities.DefaultFilterSpec()

	filters.Types = queryList(q["type"])
	filters.Locations = queryList(q["location"])
	filters.Search = q.Get("search")

	for _, fuel := range queryList(q["fuel"]) {
		filters.Fuels = append(filters.Fuels, entities.FuelType(fuel))
	}
	for _, trans := range queryList(q["transmission"]) {
		filters.Transmissions = append(filters.Transmissions, entities.Transmission(trans))
	}
	for _, seats := range queryList(q["seats"]) {
		n, err := strconv.Atoi(seats)
		if err != nil {
			return filters, err
		}
		filters.Seats = append(filters.Seats, n)
	}

	if raw := q.Get("min_price"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, err
		}
		filters.PriceMin = min
	}
	if raw := q.Get("max_price"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, err
		}
		filters.PriceMax = max
	}

	return filters, nil
}

// queryList flattens repeated params and comma-separated values into one
// list, dropping empties.
func queryList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
