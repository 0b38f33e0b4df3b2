package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"chatter/app/repositories/mock"
	"chatter/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestAuthController(t *testing.T) (*mux.Router, *services.AuthService) {
	authService := services.NewAuthService(mock.NewUserRepository(), []byte("test-secret"), time.Hour)
	controller := NewAuthController(authService)

	router := mux.NewRouter()
	router.HandleFunc("/api/user/register", controller.Register).Methods("POST")
	router.HandleFunc("/api/user/login", controller.Login).Methods("POST")
	return router, authService
}

func TestAuthController(t *testing.T) {
	router, authService := setupTestAuthController(t)

	t.Run("register", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/user/register",
			`{"username":"alice","email":"alice@example.com","password":"hunter22"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["userId"])
	})

	t.Run("register duplicate email", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/user/register",
			`{"username":"alice2","email":"alice@example.com","password":"hunter22"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("register invalid payload", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/user/register",
			`{"username":"al","email":"alice3@example.com","password":"hunter22"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login issues a verifiable token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/user/login",
			`{"email":"alice@example.com","password":"hunter22"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("auth-token"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		_, err := authService.VerifyToken(body["token"])
		assert.NoError(t, err)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/user/login",
			`{"email":"alice@example.com","password":"wrong"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
