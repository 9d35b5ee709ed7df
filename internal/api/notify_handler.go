package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/service"
)

type NotifyHandler struct {
	Service *service.NotifyService
}

func NewNotifyHandler(svc *service.NotifyService) *NotifyHandler {
	return &NotifyHandler{Service: svc}
}

// SendBookingEmail handles POST /api/send-booking-email, the dispatch
// endpoint the site's forms post to. Any 2xx means the email went out.
func (h *NotifyHandler) SendBookingEmail(w http.ResponseWriter, r *http.Request) {
	var req entities.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}

	if err := h.Service.Dispatch(req); err != nil {
		if strings.Contains(err.Error(), "unknown notification type") ||
			strings.Contains(err.Error(), "invalid") {
			httperrors.WriteJSON(w, httperrors.BadRequest(err.Error()))
			return
		}
		httperrors.WriteJSON(w, httperrors.NewHTTPError(http.StatusBadGateway, "failed to send email"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Email sent"})
}

// SendTestEmail handles POST /api/test-email.
func (h *NotifyHandler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.SendTestEmail(); err != nil {
		httperrors.WriteJSON(w, httperrors.NewHTTPError(http.StatusBadGateway, "failed to send email"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Test email sent"})
}
