package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentacar/internal/entities"
)

type ProfileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(database *sql.DB) *ProfileRepository {
	return &ProfileRepository{DB: database}
}

func (r *ProfileRepository) GetProfile(userID int) (*entities.UserProfile, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(address, ''),
		       COALESCE(gender, ''), COALESCE(dob, ''), provider, created_at
		FROM users WHERE id = $1`
	var p entities.UserProfile
	err := r.DB.QueryRow(query, userID).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.Gender, &p.DOB, &p.Provider, &p.CreatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile for user %d not found: %w", userID, err)
		}
		return nil, fmt.Errorf("error querying profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpdateProfile(userID int, name, phone, address, gender, dob string) (*entities.UserProfile, error) {
	query := `
		UPDATE users
		SET name = $1, phone = $2, address = $3, gender = $4, dob = $5, updated_at = NOW()
		WHERE id = $6`
	if _, err := r.DB.Exec(query, name, phone, address, gender, dob, userID); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return r.GetProfile(userID)
}

// Addresses

func (r *ProfileRepository) ListAddresses(userID int) ([]entities.AddressItem, error) {
	query := `SELECT id, type, address, city, is_default FROM addresses WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying addresses: %w", err)
	}
	defer rows.Close()

	var items []entities.AddressItem
	for rows.Next() {
		var a entities.AddressItem
		if err := rows.Scan(&a.ID, &a.Type, &a.Address, &a.City, &a.IsDefault); err != nil {
			return nil, fmt.Errorf("error scanning address: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// AddAddress inserts an address; when it is marked default, every other
// address of the user loses the flag in the same transaction.
func (r *ProfileRepository) AddAddress(userID int, item entities.AddressItem) (*entities.AddressItem, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if item.IsDefault {
		if _, err := tx.Exec(`UPDATE addresses SET is_default = FALSE WHERE user_id = $1`, userID); err != nil {
			return nil, fmt.Errorf("error clearing default addresses: %w", err)
		}
	}

	item.ID = uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO addresses (id, user_id, type, address, city, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, userID, item.Type, item.Address, item.City, item.IsDefault, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error inserting address: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ProfileRepository) SetDefaultAddress(userID int, id string) error {
	query := `UPDATE addresses SET is_default = (id = $1) WHERE user_id = $2`
	result, err := r.DB.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("error setting default address: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("address not found")
	}
	return nil
}

func (r *ProfileRepository) DeleteAddress(userID int, id string) error {
	if _, err := r.DB.Exec(`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("error deleting address: %w", err)
	}
	return nil
}

// Identity documents

func (r *ProfileRepository) ListDocuments(userID int) ([]entities.DocumentItem, error) {
	query := `
		SELECT id, type, number, front_image_url, back_image_url, created_at
		FROM documents WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	var items []entities.DocumentItem
	for rows.Next() {
		var d entities.DocumentItem
		if err := rows.Scan(&d.ID, &d.Type, &d.Number, &d.FrontImageURL, &d.BackImageURL, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning document: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *ProfileRepository) AddDocument(userID int, d entities.DocumentItem) (*entities.DocumentItem, error) {
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()
	_, err := r.DB.Exec(`
		INSERT INTO documents (id, user_id, type, number, front_image_url, back_image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, userID, d.Type, d.Number, d.FrontImageURL, d.BackImageURL, d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting document: %w", err)
	}
	return &d, nil
}

func (r *ProfileRepository) UpdateDocumentImages(userID int, id, frontURL, backURL string) error {
	query := `UPDATE documents SET front_image_url = $1, back_image_url = $2 WHERE id = $3 AND user_id = $4`
	if _, err := r.DB.Exec(query, frontURL, backURL, id, userID); err != nil {
		return fmt.Errorf("error updating document images: %w", err)
	}
	return nil
}

func (r *ProfileRepository) UpdateDocument(userID int, id, docType, number string) (*entities.DocumentItem, error) {
	query := `UPDATE documents SET type = $1, number = $2 WHERE id = $3 AND user_id = $4`
	result, err := r.DB.Exec(query, docType, number, id, userID)
	if err != nil {
		return nil, fmt.Errorf("error updating document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errors.New("document not found")
	}

	var d entities.DocumentItem
	err = r.DB.QueryRow(`
		SELECT id, type, number, front_image_url, back_image_url, created_at
		FROM documents WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&d.ID, &d.Type, &d.Number, &d.FrontImageURL, &d.BackImageURL, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error reloading document: %w", err)
	}
	return &d, nil
}

func (r *ProfileRepository) DeleteDocument(userID int, id string) error {
	if _, err := r.DB.Exec(`DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	return nil
}
