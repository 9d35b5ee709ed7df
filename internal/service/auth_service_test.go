package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/db"
	"rentacar/internal/entities"
)

type fakeUserStore struct {
	users  map[string]*db.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*db.User{}, nextID: 1}
}

func (f *fakeUserStore) CreateUser(u *db.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserStore) GetUserByEmail(email string) (*db.User, error) {
	return f.users[email], nil
}

func (f *fakeUserStore) MarkEmailVerified(token string) (bool, error) {
	for _, u := range f.users {
		if u.VerificationToken.Valid && u.VerificationToken.String == token {
			u.EmailVerified = true
			u.VerificationToken.Valid = false
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) SetResetToken(userID int, token string, expiry time.Time) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.ResetToken.String = token
			u.ResetToken.Valid = true
			u.ResetTokenExpiry.Time = expiry
			u.ResetTokenExpiry.Valid = true
		}
	}
	return nil
}

func (f *fakeUserStore) ResetPassword(token, newHash string) (bool, error) {
	for _, u := range f.users {
		if u.ResetToken.Valid && u.ResetToken.String == token && u.ResetTokenExpiry.Time.After(time.Now()) {
			u.PasswordHash.String = newHash
			u.PasswordHash.Valid = true
			u.ResetToken.Valid = false
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpsertFederatedUser(email, name, provider string) (*db.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	u := &db.User{Name: name, Email: email, Provider: provider, EmailVerified: true}
	if err := f.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

const adultDOB = "1990-05-14"

func TestSignUpAndVerifiedLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)

	require.NoError(t, svc.SignUp("John Doe", "john@example.com", "hunter22", adultDOB))
	user := store.users["john@example.com"]
	require.NotNil(t, user)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, ProviderPassword, user.Provider)

	// unverified accounts cannot log in
	_, err := svc.Login("john@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	require.NoError(t, svc.VerifyEmail(user.VerificationToken.String))
	token, err := svc.Login("john@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsWrongPasswordAndUnknownAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)

	require.NoError(t, svc.SignUp("John Doe", "john@example.com", "hunter22", adultDOB))
	_, _ = store.MarkEmailVerified(store.users["john@example.com"].VerificationToken.String)

	_, err := svc.Login("john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpRejectsUnder18(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	dob := time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	err := svc.SignUp("Kid", "kid@example.com", "password1", dob)
	assert.ErrorIs(t, err, ErrUnderage)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	require.NoError(t, svc.SignUp("John Doe", "john@example.com", "hunter22", adultDOB))
	err := svc.SignUp("Other", "john@example.com", "different", adultDOB)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyEmailRejectsUnknownToken(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	assert.ErrorIs(t, svc.VerifyEmail("bogus"), ErrInvalidToken)
}

func TestRequestPasswordResetClassification(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)

	outcome, err := svc.RequestPasswordReset("nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.ResetNoAccount, outcome)

	require.NoError(t, svc.SignUp("John Doe", "john@example.com", "hunter22", adultDOB))
	outcome, err = svc.RequestPasswordReset("john@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.ResetPasswordAccount, outcome)
	assert.True(t, store.users["john@example.com"].ResetToken.Valid)

	_, err = svc.GoogleSignIn("jane@example.com", "Jane Doe")
	require.NoError(t, err)
	outcome, err = svc.RequestPasswordReset("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.ResetFederatedAccount, outcome)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)

	require.NoError(t, svc.SignUp("John Doe", "john@example.com", "hunter22", adultDOB))
	user := store.users["john@example.com"]
	_, _ = store.MarkEmailVerified(user.VerificationToken.String)

	_, err := svc.RequestPasswordReset("john@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(user.ResetToken.String, "newpassword1"))

	_, err = svc.Login("john@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	token, err := svc.Login("john@example.com", "newpassword1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.ErrorIs(t, svc.ResetPassword("bogus", "whatever"), ErrInvalidToken)
}

func TestGoogleSignInIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)

	token, err := svc.GoogleSignIn("jane@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, ProviderGoogle, store.users["jane@example.com"].Provider)

	// second sign-in reuses the account
	before := store.nextID
	_, err = svc.GoogleSignIn("jane@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, before, store.nextID)
}
