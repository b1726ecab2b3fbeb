package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaimin018/ClickFast/internal/jwt"
	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
)

// ProfileTokener defines only the methods needed by this handler.
type ProfileTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error)
}

// NewProfileHandler returns an HTTP handler for the full profile view.
// @Summary Get profile
// @Description Return the caller's counters, owned upgrades keyed by item type, unlocked achievements, and selected badges.
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileResponse "Profile returned"
// @Failure 401 {object} models.ProfileErrorResponse "Unauthorized"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(
	svc ProfileGetter,
	tokenGetter ProfileTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		resp, err := svc.GetProfile(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get profile", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
