package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaimin018/ClickFast/internal/jwt"
	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/Kaimin018/ClickFast/internal/services"
)

// BadgesTokener defines only the methods needed by this handler.
type BadgesTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BadgeUpdater defines the interface that the profile service must implement.
type BadgeUpdater interface {
	UpdateBadges(ctx context.Context, userID uuid.UUID, badge1, badge2, badge3 *int64) ([]*models.Badge, error)
}

// NewBadgesHandler returns an HTTP handler for badge selection.
// @Summary Update badges
// @Description Replace the caller's three badge slots. Every non-empty slot must reference an achievement the caller has unlocked; a null slot clears the badge.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.UpdateBadgesRequest true "Badge Selection"
// @Success 200 {object} models.BadgesResponse "Badges updated"
// @Failure 400 {object} models.BadgesErrorResponse "Achievement locked or unknown"
// @Failure 401 {object} models.BadgesErrorResponse "Unauthorized"
// @Router /profile/badges [post]
// @Security BearerAuth
func NewBadgesHandler(
	svc BadgeUpdater,
	tokenGetter BadgesTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.BadgesErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.BadgesErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.UpdateBadgesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode badge selection", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.BadgesErrorResponse{Error: "Invalid request body"})
			return
		}

		badges, err := svc.UpdateBadges(ctx, claims.UserID, req.Badge1ID, req.Badge2ID, req.Badge3ID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAchievementLocked):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.BadgesErrorResponse{Error: "Achievement not unlocked"})
			case errors.Is(err, services.ErrAchievementNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.BadgesErrorResponse{Error: "Achievement not found"})
			default:
				logger.Log.Errorw("failed to update badges", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.BadgesErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.BadgesResponse{Badges: badges})
	}
}
