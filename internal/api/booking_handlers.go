package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"rentacar/internal/auth"
	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/service"
	"rentacar/internal/utils"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings. All field and date validation
// happens here and in the service before anything is stored or emailed.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	req.CNIC = utils.FormatCNIC(req.CNIC)
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}

	pickup, err := utils.CombineDateTime(req.PickupDate, req.PickupTime)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid pickup date/time"))
		return
	}
	ret, err := utils.CombineDateTime(req.ReturnDate, req.ReturnTime)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid return date/time"))
		return
	}

	booking := entities.BookingRequest{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CNIC:            req.CNIC,
		CarSlug:         req.CarSlug,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupTime:      pickup,
		ReturnTime:      ret,
	}

	var userID *int
	if id, ok := auth.UserIDFromContext(r.Context()); ok {
		userID = &id
	}

	resp, err := h.Service.CreateBooking(r.Context(), booking, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			httperrors.WriteJSON(w, httperrors.BadRequest("Return date must be after pickup date"))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			httperrors.WriteJSON(w, httperrors.NotFound(err.Error()))
			return
		}
		httperrors.WriteJSON(w, httperrors.Internal("could not create booking"))
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ListMyBookings handles GET /api/my/bookings (authenticated).
func (h *BookingHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperrors.WriteJSON(w, httperrors.Unauthorized("Unauthorized"))
		return
	}
	grouped, err := h.Service.ListMyBookings(userID)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not list bookings"))
		return
	}
	writeJSON(w, http.StatusOK, grouped)
}

// CancelBooking handles PUT /api/my/bookings/{code}/cancel. Only scheduled
// bookings can be cancelled.
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperrors.WriteJSON(w, httperrors.Unauthorized("Unauthorized"))
		return
	}
	code := mux.Vars(r)["code"]
	if err := h.Service.CancelBooking(code, userID); err != nil {
		httperrors.WriteJSON(w, httperrors.NotFound(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking cancelled"})
}

func validationMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "'cnic'"):
		return "Please enter a valid CNIC in format: 42101-1234567-8"
	case strings.Contains(msg, "'phone'"):
		return "Please enter a valid phone number"
	case strings.Contains(msg, "'email'"):
		return "Please enter a valid email address"
	default:
		return "Please fill in all fields"
	}
}
