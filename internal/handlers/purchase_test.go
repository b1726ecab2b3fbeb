package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaimin018/ClickFast/internal/jwt"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/Kaimin018/ClickFast/internal/services"
)

func TestPurchaseHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful purchase",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(1)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Purchase(gomock.Any(), userID, int64(1)).Return(&models.PurchaseResponse{
					NewLevel:       1,
					CoinsRemaining: 50,
					ItemName:       "Extra Click Button",
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "new_level",
		},
		{
			name:        "unauthorized missing token",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(1)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "invalid request body",
			requestBody: "invalid-json",
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "missing item id",
			requestBody: models.PurchaseRequest{},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "item not found",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(99)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Purchase(gomock.Any(), userID, int64(99)).Return(nil, services.ErrItemNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:        "max level reached",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(1)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Purchase(gomock.Any(), userID, int64(1)).Return(nil, services.ErrAlreadyMaxLevel)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "missing prerequisite",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(3)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Purchase(gomock.Any(), userID, int64(3)).Return(nil, services.ErrMissingPrerequisite)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "insufficient funds",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(1)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Purchase(gomock.Any(), userID, int64(1)).Return(nil, services.ErrInsufficientFunds)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "internal server error",
			requestBody: models.PurchaseRequest{ItemID: int64Ptr(1)},
			setupMocks: func(mockSvc *MockPurchaser, mockTokener *MockPurchaseTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Purchase(gomock.Any(), userID, int64(1)).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockPurchaseTokener(ctrl)
			mockSvc := NewMockPurchaser(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/shop/purchase", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewPurchaseHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
