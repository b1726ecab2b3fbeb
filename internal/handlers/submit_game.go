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

// SubmitGameTokener defines only the methods needed by this handler.
type SubmitGameTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RoundSubmitter defines the interface that the game service must implement.
type RoundSubmitter interface {
	SubmitRound(ctx context.Context, userID uuid.UUID, username string, clicks int64, duration float64) (*models.SubmitGameResponse, error)
}

// NewSubmitGameHandler returns an HTTP handler for submitting a completed round.
// @Summary Submit a round
// @Description Record a completed round: credit the coin reward, update profile counters, unlock any qualifying achievements, and append to the round history. The whole operation is atomic.
// @Tags game
// @Accept json
// @Produce json
// @Param request body models.SubmitGameRequest true "Round Submission"
// @Success 200 {object} models.SubmitGameResponse "Round recorded"
// @Failure 400 {object} models.SubmitGameErrorResponse "Invalid clicks or duration"
// @Failure 401 {object} models.SubmitGameErrorResponse "Unauthorized"
// @Router /game/submit [post]
// @Security BearerAuth
func NewSubmitGameHandler(
	svc RoundSubmitter,
	tokenGetter SubmitGameTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.SubmitGameErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.SubmitGameErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.SubmitGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode round submission", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.SubmitGameErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Clicks == nil || *req.Clicks < 0 {
			logger.Log.Warnw("invalid round clicks", "userID", claims.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.SubmitGameErrorResponse{Error: "Invalid clicks or duration"})
			return
		}
		if req.GameDuration == nil || *req.GameDuration <= 0 {
			logger.Log.Warnw("invalid round duration", "userID", claims.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.SubmitGameErrorResponse{Error: "Invalid clicks or duration"})
			return
		}

		resp, err := svc.SubmitRound(ctx, claims.UserID, claims.Username, *req.Clicks, *req.GameDuration)
		if err != nil {
			logger.Log.Errorw("failed to submit round", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.SubmitGameErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
