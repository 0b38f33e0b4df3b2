package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatter/app/services"
)

// AuthController handles user registration and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles creating a new user account.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ac.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ac.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayload), errors.Is(err, services.ErrEmailTaken):
			ac.sendError(w, err.Error(), http.StatusBadRequest)
		default:
			ac.sendError(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	ac.sendJSON(w, http.StatusCreated, map[string]string{"userId": user.ID})
}

// Login handles credential verification and token issuance.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ac.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := ac.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			ac.sendError(w, err.Error(), http.StatusBadRequest)
		} else {
			ac.sendError(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("auth-token", token)
	ac.sendJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (ac *AuthController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (ac *AuthController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
