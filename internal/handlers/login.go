package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username string) (string, *models.Profile, error)
}

const maxUsernameLength = 50

// NewLoginHandler returns an HTTP handler for signing a player in.
// A first login creates the account; later logins reuse it.
// @Summary Login or register
// @Description Sign in by username only. Creates the account and an empty profile on first use and returns a JWT token with the profile snapshot.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token and profile returned"
// @Failure 400 {object} models.LoginErrorResponse "Invalid username"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.LoginErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		username := strings.TrimSpace(req.Username)
		if username == "" || len(username) > maxUsernameLength {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.LoginErrorResponse{
				Error: "Invalid username",
			})
			return
		}

		token, profile, err := svc.Login(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("login failed", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.LoginErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.LoginResponse{
			Token:   token,
			Profile: *profile,
		})
	}
}
