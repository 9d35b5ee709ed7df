package service

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"rentacar/internal/db"
	"rentacar/internal/entities"
)

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google.com"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUnderage           = errors.New("you must be at least 18 years old to sign up")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// UserStore is the slice of the user repository the auth service needs.
// GetUserByEmail returns (nil, nil) when no account exists.
type UserStore interface {
	CreateUser(u *db.User) error
	GetUserByEmail(email string) (*db.User, error)
	MarkEmailVerified(token string) (bool, error)
	SetResetToken(userID int, token string, expiry time.Time) error
	ResetPassword(token, newHash string) (bool, error)
	UpsertFederatedUser(email, name, provider string) (*db.User, error)
}

type AuthService struct {
	Repo UserStore
}

func NewAuthService(repo UserStore) *AuthService {
	return &AuthService{Repo: repo}
}

// SignUp creates a password account. The account stays unverified until the
// emailed verification link is followed; login is gated on that.
func (s *AuthService) SignUp(name, email, password, dob string) error {
	if underage, err := isUnder18(dob, time.Now()); err != nil {
		return fmt.Errorf("invalid date of birth: %w", err)
	} else if underage {
		return ErrUnderage
	}

	existing, err := s.Repo.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	now := time.Now().UTC()
	user := &db.User{
		Name:      name,
		Email:     email,
		Provider:  ProviderPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.PasswordHash.String = string(hash)
	user.PasswordHash.Valid = true
	user.DOB.String = dob
	user.DOB.Valid = true
	user.VerificationToken.String = token
	user.VerificationToken.Valid = true

	if err := s.Repo.CreateUser(user); err != nil {
		return err
	}

	go func() {
		subject := "Verify your Car Rental account"
		body := fmt.Sprintf(
			"Hello %s,\n\nPlease verify your email address by opening the link below:\n\n%s/api/auth/verify?token=%s\n\n"+
				"If you did not create this account you can ignore this message.\n",
			name, publicBaseURL(), token)
		if err := SendEmailWithSendGrid(email, name, subject, body, ""); err != nil {
			log.Printf("Failed to send verification email to %s: %v", email, err)
		}
	}()

	return nil
}

// Login checks the password and the verification gate, then issues a JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.Repo.GetUserByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil || !user.PasswordHash.Valid {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return "", ErrEmailNotVerified
	}
	return s.issueToken(user)
}

// GoogleSignIn upserts a federated account (already verified by the
// provider) and issues a JWT.
func (s *AuthService) GoogleSignIn(email, name string) (string, error) {
	user, err := s.Repo.UpsertFederatedUser(email, name, ProviderGoogle)
	if err != nil {
		return "", err
	}
	return s.issueToken(user)
}

func (s *AuthService) VerifyEmail(token string) error {
	ok, err := s.Repo.MarkEmailVerified(token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}

// RequestPasswordReset classifies the account behind the email and, for
// password accounts, sends the reset link. The classification is the return
// value, not an error chain: every outcome is a normal response.
func (s *AuthService) RequestPasswordReset(email string) (entities.ResetOutcome, error) {
	user, err := s.Repo.GetUserByEmail(email)
	if err != nil {
		return entities.ResetUnknown, err
	}
	if user == nil {
		return entities.ResetNoAccount, nil
	}
	if user.Provider != ProviderPassword {
		return entities.ResetFederatedAccount, nil
	}

	token := uuid.NewString()
	if err := s.Repo.SetResetToken(user.ID, token, time.Now().UTC().Add(time.Hour)); err != nil {
		return entities.ResetUnknown, err
	}

	go func(name, email, token string) {
		subject := "Reset your Car Rental password"
		body := fmt.Sprintf(
			"Hello %s,\n\nA password reset was requested for your account. Open the link below to choose a new password:\n\n"+
				"%s/reset-password?token=%s\n\nThe link expires in one hour.\n",
			name, publicBaseURL(), token)
		if err := SendEmailWithSendGrid(email, name, subject, body, ""); err != nil {
			log.Printf("Failed to send password reset email to %s: %v", email, err)
		}
	}(user.Name, user.Email, token)

	return entities.ResetPasswordAccount, nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ok, err := s.Repo.ResetPassword(token, string(hash))
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}

func (s *AuthService) issueToken(user *db.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// isUnder18 reports whether someone born on dob (2006-01-02) is under 18 at
// the given instant.
func isUnder18(dob string, now time.Time) (bool, error) {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return false, err
	}
	return birth.AddDate(18, 0, 0).After(now), nil
}

func publicBaseURL() string {
	if url := os.Getenv("PUBLIC_BASE_URL"); url != "" {
		return url
	}
	return defaultNotifyBaseURL
}
