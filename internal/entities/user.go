package entities

import "time"

// UserProfile is the customer-facing view of an account.
type UserProfile struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	DOB       string    `json:"dob,omitempty"`
	Provider  string    `json:"provider"`
	CreatedOn time.Time `json:"created_on"`
}

// AddressItem is one saved address. At most one per user is the default.
type AddressItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	City      string `json:"city"`
	IsDefault bool   `json:"is_default"`
}

// DocumentItem is an uploaded identity document with its stored image URLs.
type DocumentItem struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Number        string    `json:"number"`
	FrontImageURL string    `json:"front_image_url"`
	BackImageURL  string    `json:"back_image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResetOutcome classifies a password-reset request. The handler maps each
// class to its own user-facing message; none of them is a server error.
type ResetOutcome int

const (
	ResetUnknown ResetOutcome = iota
	ResetNoAccount
	ResetPasswordAccount
	ResetFederatedAccount
)
