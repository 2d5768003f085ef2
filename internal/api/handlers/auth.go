package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/api/dto"
	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/auth"
	"github.com/fitplanhub/fitplanhub/internal/config"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/utils"
	"github.com/fitplanhub/fitplanhub/internal/pkg/validator"
)

// AuthHandler handles signup, login and identity lookups
type AuthHandler struct {
	users     user.Service
	authCfg   config.AuthConfig
	validator *validator.Validator
}

func NewAuthHandler(users user.Service, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		users:     users,
		authCfg:   authCfg,
		validator: validator.New(),
	}
}

// Signup registers a new account and returns a signed token alongside the
// created user. The role chosen here is permanent.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); errs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Role must be either user or trainer"))
		return
	}

	u, err := h.users.Signup(r.Context(), req.Name, req.Email, req.Password, role, req.Bio)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	token, err := auth.MintToken(u.ID, u.Role, h.authCfg.JWTSecret, h.authCfg.TokenExpiry)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserDTO(u),
	})
}

// Login verifies credentials and returns a fresh token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); errs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	token, err := auth.MintToken(u.ID, u.Role, h.authCfg.JWTSecret, h.authCfg.TokenExpiry)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserDTO(u),
	})
}

// Me returns the authenticated caller's account
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.NewUserDTO(u))
}
