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

// ShopTokener defines only the methods needed by this handler.
type ShopTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ShopLister defines the interface that the shop service must implement.
type ShopLister interface {
	ListItems(ctx context.Context, userID *uuid.UUID) ([]models.ShopListItem, error)
}

// NewShopHandler returns an HTTP handler for the shop catalog listing.
// The route is public; a valid bearer token personalizes levels and prices.
// @Summary List shop items
// @Description Return the shop catalog. With a valid bearer token the per-player fields (current level, next price, upgradability) reflect the caller's ledger; without one they describe a fresh player.
// @Tags shop
// @Produce json
// @Success 200 {object} models.ShopResponse "Catalog returned"
// @Failure 401 {object} models.ShopErrorResponse "Invalid token"
// @Router /shop [get]
func NewShopHandler(
	svc ShopLister,
	tokenGetter ShopTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// No token means an anonymous listing; a present but invalid token
		// is rejected rather than silently downgraded.
		var userID *uuid.UUID
		if tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r); err == nil {
			claims, err := tokenGetter.GetClaims(ctx, tokenStr)
			if err != nil {
				logger.Log.Errorw("failed to get claims from token", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.ShopErrorResponse{Error: "Unauthorized"})
				return
			}
			userID = &claims.UserID
		}

		items, err := svc.ListItems(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list shop items", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ShopErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.ShopResponse{Items: items})
	}
}
