package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"campusbook/internal/api"
	"campusbook/internal/user"
	"campusbook/pkg/config"
	"campusbook/pkg/token"
)

type Handlers struct {
	Cfg   config.Config
	Users *user.Repository
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SessionResponse struct {
	Token token.Pair `json:"token"`
	User  *user.User `json:"user"`
}

func (h Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid json")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "name, email, and password are required")
		return
	}
	if len(req.Password) < minPasswordLength {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "password must be at least 6 characters")
		return
	}

	if _, err := h.Users.FindByEmail(r.Context(), req.Email); err == nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "user with this email already exists")
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}

	u, err := h.Users.Create(r.Context(), req.Name, req.Email, user.NormalizeSignupRole(req.Role), hash)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "failed to create user")
		return
	}

	h.writeSession(w, http.StatusCreated, u)
}

func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid json")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "email and password are required")
		return
	}

	u, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err != nil || !CheckPassword(u.PasswordHash, req.Password) {
		// Same answer for unknown email and bad password.
		api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid credentials")
		return
	}

	h.writeSession(w, http.StatusOK, u)
}

// Refresh exchanges a valid refresh token for a new token pair. This is the
// server-side half of the client's refresh-and-retry-on-401 behavior.
func (h Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "refresh_token is required")
		return
	}

	claims, err := token.Parse(strings.TrimSpace(req.RefreshToken), h.Cfg.JWT.SigningKey, h.Cfg.JWT.Issuer)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid refresh token")
		return
	}

	// Re-read the user so a role change since issuance is reflected.
	u, err := h.Users.FindByID(r.Context(), claims.Subject)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "unknown identity")
		return
	}

	h.writeSession(w, http.StatusOK, u)
}

func (h Handlers) writeSession(w http.ResponseWriter, status int, u *user.User) {
	pair, err := token.Issue(u.ID, string(u.Role), u.Email, u.Name, h.Cfg.JWT.Issuer, h.Cfg.JWT.SigningKey, h.Cfg.JWT.AccessTTL, h.Cfg.JWT.RefreshTTL)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "token issue failed")
		return
	}
	api.WriteJSON(w, status, SessionResponse{Token: pair, User: u})
}
