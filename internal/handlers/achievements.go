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

// AchievementsTokener defines only the methods needed by this handler.
type AchievementsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AchievementLister defines the interface that the profile service must implement.
type AchievementLister interface {
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]models.AchievementInfo, error)
}

// NewAchievementsHandler returns an HTTP handler for the achievements listing.
// @Summary List achievements
// @Description Return every achievement definition with the caller's unlock state.
// @Tags achievements
// @Produce json
// @Success 200 {object} models.AchievementsResponse "Achievements returned"
// @Failure 401 {object} models.AchievementsErrorResponse "Unauthorized"
// @Router /achievements [get]
// @Security BearerAuth
func NewAchievementsHandler(
	svc AchievementLister,
	tokenGetter AchievementsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.AchievementsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.AchievementsErrorResponse{Error: "Unauthorized"})
			return
		}

		infos, err := svc.ListAchievements(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list achievements", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.AchievementsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.AchievementsResponse{Achievements: infos})
	}
}
