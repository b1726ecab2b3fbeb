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

func TestAchievementsHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockAchievementLister, mockTokener *MockAchievementsTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful listing",
			setupMocks: func(mockSvc *MockAchievementLister, mockTokener *MockAchievementsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListAchievements(gomock.Any(), userID).Return([]models.AchievementInfo{
					{ID: 1, Name: "First Steps", Type: models.AchievementTotalClicks, TargetValue: 100, Unlocked: true},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "achievements",
		},
		{
			name: "unauthorized",
			setupMocks: func(mockSvc *MockAchievementLister, mockTokener *MockAchievementsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			setupMocks: func(mockSvc *MockAchievementLister, mockTokener *MockAchievementsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListAchievements(gomock.Any(), userID).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockAchievementsTokener(ctrl)
			mockSvc := NewMockAchievementLister(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/achievements", nil)
			rr := httptest.NewRecorder()

			handler := NewAchievementsHandler(mockSvc, mockTokener)
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
