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

// PurchaseTokener defines only the methods needed by this handler.
type PurchaseTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Purchaser defines the interface that the shop service must implement.
type Purchaser interface {
	Purchase(ctx context.Context, userID uuid.UUID, itemID int64) (*models.PurchaseResponse, error)
}

// NewPurchaseHandler returns an HTTP handler for buying the next level of a
// shop item.
// @Summary Purchase an upgrade
// @Description Buy the next level of a shop item. The price is base_price times the level being bought. The first extra-button purchase also attaches a level-1 auto clicker for free.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body models.PurchaseRequest true "Purchase Request"
// @Success 200 {object} models.PurchaseResponse "Purchase applied"
// @Failure 400 {object} models.PurchaseErrorResponse "Purchase rejected"
// @Failure 401 {object} models.PurchaseErrorResponse "Unauthorized"
// @Failure 404 {object} models.PurchaseErrorResponse "Item not found"
// @Router /shop/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(
	svc Purchaser,
	tokenGetter PurchaseTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode purchase request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.ItemID == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Missing item_id"})
			return
		}

		resp, err := svc.Purchase(ctx, claims.UserID, *req.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Item not found"})
			case errors.Is(err, services.ErrAlreadyMaxLevel):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Max level reached"})
			case errors.Is(err, services.ErrMissingPrerequisite):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Extra click button required"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to purchase item", "userID", claims.UserID, "itemID", *req.ItemID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.PurchaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
