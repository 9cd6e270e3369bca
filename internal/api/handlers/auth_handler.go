package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/auth"
	"github.com/nutrilens/nutrilens-be/internal/models"
	"github.com/nutrilens/nutrilens-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles signup, signin and logout.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// SigninPayload defines the structure for signin requests.
type SigninPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input services.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.Signup(input)
	if err != nil {
		log.Warn().Err(err).Str("email", input.Email).Msg("Signup rejected")
		writeError(w, err)
		return
	}

	h.sendToken(w, user, http.StatusCreated)
}

// Signin handles authentication. Unknown email and wrong password get
// the same response body.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload SigninPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	h.sendToken(w, user, http.StatusOK)
}

// Logout overwrites the auth cookie with a short-lived dummy value.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.ClearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Me returns the authenticated user derived from the token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		writeError(w, apperr.Authentication("could not retrieve user from token"))
		return
	}

	user, err := h.service.GetUserByID(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"user": user})
}

// sendToken issues the signed token, sets the auth cookie and writes
// the success envelope with the scrubbed user.
func (h *AuthHandler) sendToken(w http.ResponseWriter, user models.User, status int) {
	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		writeError(w, err)
		return
	}

	h.tokens.SetAuthCookie(w, token)

	writeJSON(w, status, map[string]any{
		"status": "success",
		"token":  token,
		"data":   map[string]any{"user": user},
	})
}
