package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"petstore/internal/models"
	"petstore/internal/services"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, h.logger, err, "Error registering user")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		respondWithError(w, h.logger, err, "Error registering user")
		return
	}

	respondWithJSON(w, http.StatusCreated, user.Public())
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, h.logger, err, "Login error")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), &req)
	if err != nil {
		respondWithError(w, h.logger, err, "Login error")
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		respondWithError(w, h.logger, err, "Token generation failed")
		return
	}

	respondWithJSON(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user.Public(),
	})
}
