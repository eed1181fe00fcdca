package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 auth routes
type HandlerV1 struct {
	authService port.AuthService
	logger      *slog.Logger
}

// NewAuthHandlerV1 creates HandlerV1
func NewAuthHandlerV1(service port.AuthService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		authService: service,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", h.RegisterV1)
	router.Post("/login", h.LoginV1)

	return router
}

// V1RegisterRequest is the body for creating an account
type V1RegisterRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

// V1RegisterResponse is the created account
type V1RegisterResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// V1LoginRequest is the body for logging in
type V1LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// V1LoginResponse carries the access token
type V1LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// RegisterV1 is the function that handles account creation
func (h *HandlerV1) RegisterV1(w http.ResponseWriter, r *http.Request) {

	var req V1RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password, req.Roles)
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "username already taken", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error registering user", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, http.StatusCreated, V1RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	})
}

// LoginV1 is the function that handles credential checks and token minting
func (h *HandlerV1) LoginV1(w http.ResponseWriter, r *http.Request) {

	var req V1LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.authService.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error logging in", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, http.StatusOK, V1LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
