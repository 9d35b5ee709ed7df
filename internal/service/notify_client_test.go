package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/entities"
)

func TestNotifyClientPostsPayload(t *testing.T) {
	var got entities.NotificationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/send-booking-email", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewNotifyClient(srv.URL)
	err := client.SendBookingEmail(context.Background(), entities.NotificationBooking,
		entities.BookingEmailData{Name: "John Doe", CarName: "BMW X5", TotalPrice: "8000.00"})
	require.NoError(t, err)

	assert.Equal(t, "booking", got.Type)
	var data entities.BookingEmailData
	require.NoError(t, json.Unmarshal(got.Data, &data))
	assert.Equal(t, "BMW X5", data.CarName)
	assert.Equal(t, "8000.00", data.TotalPrice)
}

func TestNotifyClientSurfacesNon2xxAsNotifyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sendgrid down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNotifyClient(srv.URL)
	err := client.SendBookingEmail(context.Background(), entities.NotificationContact, entities.ContactEmailData{})
	assert.ErrorIs(t, err, ErrNotifyFailed)
}

func TestNotifyClientSurfacesNetworkErrorAsNotifyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewNotifyClient(srv.URL)
	err := client.SendBookingEmail(context.Background(), entities.NotificationContact, entities.ContactEmailData{})
	assert.ErrorIs(t, err, ErrNotifyFailed)
}

func TestNotifyClientDefaultBaseURL(t *testing.T) {
	client := NewNotifyClient("")
	assert.Equal(t, defaultNotifyBaseURL, client.baseURL)
}
