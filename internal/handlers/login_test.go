package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Kaimin018/ClickFast/internal/models"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockLoginer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful login",
			requestBody: models.LoginRequest{Username: "john_doe"},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().Login(gomock.Any(), "john_doe").Return("token-123", &models.Profile{Username: "john_doe"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name:        "username is trimmed",
			requestBody: models.LoginRequest{Username: "  john_doe  "},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().Login(gomock.Any(), "john_doe").Return("token-123", &models.Profile{Username: "john_doe"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "empty username",
			requestBody:        models.LoginRequest{Username: "   "},
			setupMocks:         func(mockSvc *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "username too long",
			requestBody:        models.LoginRequest{Username: strings.Repeat("a", 51)},
			setupMocks:         func(mockSvc *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "internal server error",
			requestBody: models.LoginRequest{Username: "john_doe"},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().Login(gomock.Any(), "john_doe").Return("", nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
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
