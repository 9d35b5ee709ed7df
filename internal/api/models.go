package api

import "rentacar/internal/entities"

// Catalog

type CarsResponse struct {
	Total    int                `json:"total"`
	Vehicles []entities.Vehicle `json:"vehicles"`
}

// Booking

type CreateBookingRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone"`
	CNIC            string `json:"cnic" validate:"required,cnic"`
	CarSlug         string `json:"car_slug" validate:"required"`
	PickupLocation  string `json:"pickup_location" validate:"required"`
	DropoffLocation string `json:"dropoff_location"`
	PickupDate      string `json:"pickup_date" validate:"required"`
	PickupTime      string `json:"pickup_time" validate:"required"`
	ReturnDate      string `json:"return_date" validate:"required"`
	ReturnTime      string `json:"return_time" validate:"required"`
}

// Auth

type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	DOB             string `json:"dob" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleSignInRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Profile

type ProfileUpdateRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Address string `json:"address"`
	Gender  string `json:"gender"`
	DOB     string `json:"dob"`
}

type AddressRequest struct {
	Type      string `json:"type" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	IsDefault bool   `json:"is_default"`
}

type DocumentUpdateRequest struct {
	Type   string `json:"type" validate:"required"`
	Number string `json:"number" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
