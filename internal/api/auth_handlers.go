package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}
	if req.Password != req.ConfirmPassword {
		httperrors.WriteJSON(w, httperrors.BadRequest("Passwords do not match"))
		return
	}

	err := h.Service.SignUp(req.Name, req.Email, req.Password, req.DOB)
	switch {
	case errors.Is(err, service.ErrUnderage):
		httperrors.WriteJSON(w, httperrors.BadRequest("You must be at least 18 years old to sign up"))
	case errors.Is(err, service.ErrEmailTaken):
		httperrors.WriteJSON(w, httperrors.Conflict(err.Error()))
	case err != nil:
		httperrors.WriteJSON(w, httperrors.Internal("could not create account"))
	default:
		writeJSON(w, http.StatusCreated, MessageResponse{
			Message: "Account created! Please check your email and verify your account before logging in.",
		})
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}

	token, err := h.Service.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailNotVerified):
		httperrors.WriteJSON(w, httperrors.Unauthorized(
			"Please verify your email before logging in. Check your inbox for the verification email."))
	case errors.Is(err, service.ErrInvalidCredentials):
		httperrors.WriteJSON(w, httperrors.Unauthorized("Invalid credentials"))
	case err != nil:
		httperrors.WriteJSON(w, httperrors.Internal("could not log in"))
	default:
		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}

func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req GoogleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}

	token, err := h.Service.GoogleSignIn(req.Email, req.Name)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not sign in with Google"))
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Logout is stateless: the client discards its token. The endpoint exists
// so the frontend has something to call.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httperrors.WriteJSON(w, httperrors.BadRequest("missing token"))
		return
	}
	if err := h.Service.VerifyEmail(token); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("Invalid or expired verification link"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Email verified. You can now log in."})
}

// ForgotPassword maps each reset classification to its own message, exactly
// one per outcome. None of them is an error status except unknown.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("Please enter a valid email address"))
		return
	}

	outcome, err := h.Service.RequestPasswordReset(req.Email)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not process request"))
		return
	}

	switch outcome {
	case entities.ResetPasswordAccount:
		writeJSON(w, http.StatusOK, MessageResponse{Message: "A password reset link has been sent to your email."})
	case entities.ResetNoAccount:
		httperrors.WriteJSON(w, httperrors.NotFound("No account found with this email address."))
	case entities.ResetFederatedAccount:
		httperrors.WriteJSON(w, httperrors.BadRequest(
			"This account was created using Google Sign-In. Please sign in with Google instead."))
	default:
		httperrors.WriteJSON(w, httperrors.Internal("could not process request"))
	}
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}
	if req.Password != req.ConfirmPassword {
		httperrors.WriteJSON(w, httperrors.BadRequest("Passwords do not match"))
		return
	}

	if err := h.Service.ResetPassword(req.Token, req.Password); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("Invalid or expired reset link"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated. You can now log in."})
}
