package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaimin018/ClickFast/internal/jwt"
	"github.com/Kaimin018/ClickFast/internal/models"
)

func TestShopHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockShopLister, mockTokener *MockShopTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "anonymous listing without token",
			setupMocks: func(mockSvc *MockShopLister, mockTokener *MockShopTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockSvc.EXPECT().ListItems(gomock.Any(), gomock.Nil()).Return([]models.ShopListItem{
					{ID: 1, Name: "Time Extension", Type: models.ItemTypeTimeExtension},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "items",
		},
		{
			name: "personalized listing with token",
			setupMocks: func(mockSvc *MockShopLister, mockTokener *MockShopTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListItems(gomock.Any(), &userID).Return([]models.ShopListItem{
					{ID: 1, Name: "Time Extension", Type: models.ItemTypeTimeExtension, CurrentLevel: 3},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "items",
		},
		{
			name: "invalid token is rejected",
			setupMocks: func(mockSvc *MockShopLister, mockTokener *MockShopTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			setupMocks: func(mockSvc *MockShopLister, mockTokener *MockShopTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockSvc.EXPECT().ListItems(gomock.Any(), gomock.Nil()).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockShopTokener(ctrl)
			mockSvc := NewMockShopLister(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/shop", nil)
			rr := httptest.NewRecorder()

			handler := NewShopHandler(mockSvc, mockTokener)
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
