package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/debtwise/payoff/internal/adapter/http/dto"
	"github.com/debtwise/payoff/internal/adapter/http/middleware"
	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/infrastructure/auth"
	"github.com/debtwise/payoff/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	CreateUser(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	userUC     UserService
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.CreateUser(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register user", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwtManager == nil {
		writeError(w, http.StatusServiceUnavailable, "authentication is disabled", "")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
