package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentacar/internal/db"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

const userColumns = `id, name, email, password_hash, provider, phone, address, gender, dob,
	email_verified, verification_token, reset_token, reset_token_expiry, created_at, updated_at`

func scanUser(row *sql.Row) (*db.User, error) {
	var u db.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Provider, &u.Phone, &u.Address,
		&u.Gender, &u.DOB, &u.EmailVerified, &u.VerificationToken,
		&u.ResetToken, &u.ResetTokenExpiry, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(u *db.User) error {
	query := `
		INSERT INTO users
		(name, email, password_hash, provider, dob, email_verified, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	return r.DB.QueryRow(query,
		u.Name, u.Email, u.PasswordHash, u.Provider, u.DOB,
		u.EmailVerified, u.VerificationToken, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
}

func (r *UserRepository) GetUserByEmail(email string) (*db.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.DB.QueryRow(query, email))
}

// MarkEmailVerified consumes the verification token. Returns false when no
// account holds that token.
func (r *UserRepository) MarkEmailVerified(token string) (bool, error) {
	query := `
		UPDATE users SET email_verified = TRUE, verification_token = NULL, updated_at = NOW()
		WHERE verification_token = $1`
	result, err := r.DB.Exec(query, token)
	if err != nil {
		return false, fmt.Errorf("error verifying email: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *UserRepository) SetResetToken(userID int, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = $1, reset_token_expiry = $2, updated_at = NOW() WHERE id = $3`
	if _, err := r.DB.Exec(query, token, expiry, userID); err != nil {
		return fmt.Errorf("error setting reset token: %w", err)
	}
	return nil
}

// ResetPassword consumes an unexpired reset token. Returns false when the
// token is unknown or expired.
func (r *UserRepository) ResetPassword(token, newHash string) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
		WHERE reset_token = $2 AND reset_token_expiry > NOW()`
	result, err := r.DB.Exec(query, newHash, token)
	if err != nil {
		return false, fmt.Errorf("error resetting password: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpsertFederatedUser creates or returns the account behind a federated
// sign-in. Provider accounts arrive with the email already verified.
func (r *UserRepository) UpsertFederatedUser(email, name, provider string) (*db.User, error) {
	existing, err := r.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := `
		INSERT INTO users (name, email, provider, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING ` + userColumns
	return scanUser(r.DB.QueryRow(query, name, email, provider))
}
