package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Kaimin018/ClickFast/internal/jwt"
	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
)

// HistoryTokener defines only the methods needed by this handler.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// HistoryReader defines the round history read operation.
type HistoryReader interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.GameSessionDB, error)
}

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// NewHistoryHandler returns an HTTP handler for the round history listing.
// @Summary List round history
// @Description Return the caller's most recent rounds, newest first. The limit query parameter defaults to 10 and may not exceed 100.
// @Tags game
// @Produce json
// @Param limit query int false "Number of rounds to return" default(10) maximum(100)
// @Success 200 {object} models.HistoryResponse "History returned"
// @Failure 400 {object} models.HistoryErrorResponse "Invalid limit"
// @Failure 401 {object} models.HistoryErrorResponse "Unauthorized"
// @Router /history [get]
// @Security BearerAuth
func NewHistoryHandler(
	reader HistoryReader,
	tokenGetter HistoryTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxHistoryLimit {
				logger.Log.Warnw("invalid history limit", "limit", raw)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.HistoryErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = parsed
		}

		sessions, err := reader.ListRecent(ctx, claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to read round history", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		history := make([]models.RoundRecord, 0, len(sessions))
		for i := range sessions {
			history = append(history, models.NewRoundRecord(&sessions[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.HistoryResponse{History: history})
	}
}
