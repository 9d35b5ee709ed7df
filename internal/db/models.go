package db

import (
	"database/sql"
	"time"
)

type User struct {
	ID                int
	Name              string
	Email             string
	PasswordHash      sql.NullString
	Provider          string
	Phone             sql.NullString
	Address           sql.NullString
	Gender            sql.NullString
	DOB               sql.NullString
	EmailVerified     bool
	VerificationToken sql.NullString
	ResetToken        sql.NullString
	ResetTokenExpiry  sql.NullTime
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Booking struct {
	ID              int
	Code            string
	UserID          sql.NullInt64
	Name            string
	Email           string
	Phone           string
	CNIC            string
	CarSlug         string
	CarName         string
	PickupLocation  string
	DropoffLocation string
	PickupTime      time.Time
	ReturnTime      time.Time
	TotalDays       int
	PricePerDay     float64
	TotalPrice      float64
	Savings         float64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
