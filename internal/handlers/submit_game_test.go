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
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestSubmitGameHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful submission",
			requestBody: models.SubmitGameRequest{
				Clicks:       int64Ptr(87),
				GameDuration: float64Ptr(12.0),
			},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID, Username: "john_doe"}, nil)
				mockSvc.EXPECT().SubmitRound(gomock.Any(), userID, "john_doe", int64(87), 12.0).Return(&models.SubmitGameResponse{
					CoinsEarned:     101,
					NewAchievements: []models.UnlockedAchievement{},
					History:         []models.RoundRecord{},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "coins_earned",
		},
		{
			name:        "unauthorized missing token",
			requestBody: models.SubmitGameRequest{Clicks: int64Ptr(87), GameDuration: float64Ptr(12.0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "unauthorized invalid token",
			requestBody: models.SubmitGameRequest{Clicks: int64Ptr(87), GameDuration: float64Ptr(12.0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "invalid request body",
			requestBody: "invalid-json",
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "missing clicks",
			requestBody: models.SubmitGameRequest{GameDuration: float64Ptr(12.0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "negative clicks",
			requestBody: models.SubmitGameRequest{Clicks: int64Ptr(-1), GameDuration: float64Ptr(12.0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "zero duration",
			requestBody: models.SubmitGameRequest{Clicks: int64Ptr(10), GameDuration: float64Ptr(0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			// Extended rounds have no upper bound; only the sign is validated.
			name:        "long duration accepted",
			requestBody: models.SubmitGameRequest{Clicks: int64Ptr(10), GameDuration: float64Ptr(150.0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID, Username: "john_doe"}, nil)
				mockSvc.EXPECT().SubmitRound(gomock.Any(), userID, "john_doe", int64(10), 150.0).Return(&models.SubmitGameResponse{
					CoinsEarned:     20,
					NewAchievements: []models.UnlockedAchievement{},
					History:         []models.RoundRecord{},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "coins_earned",
		},
		{
			name:        "internal server error",
			requestBody: models.SubmitGameRequest{Clicks: int64Ptr(87), GameDuration: float64Ptr(12.0)},
			setupMocks: func(mockSvc *MockRoundSubmitter, mockTokener *MockSubmitGameTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID, Username: "john_doe"}, nil)
				mockSvc.EXPECT().SubmitRound(gomock.Any(), userID, "john_doe", int64(87), 12.0).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockSubmitGameTokener(ctrl)
			mockSvc := NewMockRoundSubmitter(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/game/submit", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewSubmitGameHandler(mockSvc, mockTokener)
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
