package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaimin018/ClickFast/internal/models"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userWriter := NewMockUserWriter(ctrl)
	profileReader := NewMockProfileReader(ctrl)
	profileWriter := NewMockProfileWriter(ctrl)
	jwtGen := NewMockJWTGenerator(ctrl)

	userWriter.EXPECT().Save(ctx, "john_doe").Return(userID, nil)
	profileWriter.EXPECT().SaveIfAbsent(ctx, userID).Return(nil)
	profileReader.EXPECT().GetByUserID(ctx, userID).Return(&models.ProfileDB{
		UserID: userID,
		Coins:  1250,
	}, nil)
	jwtGen.EXPECT().Generate(ctx, userID, "john_doe").Return("token-123", nil)

	svc := NewAuthService(userWriter, profileReader, profileWriter, jwtGen)
	token, profile, err := svc.Login(ctx, "john_doe")

	assert.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, "john_doe", profile.Username)
	assert.Equal(t, int64(1250), profile.Coins)
}

func TestAuthService_Login_SaveUserError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userWriter := NewMockUserWriter(ctrl)
	userWriter.EXPECT().Save(ctx, "john_doe").Return(uuid.Nil, errors.New("db down"))

	svc := NewAuthService(userWriter, nil, nil, nil)
	token, profile, err := svc.Login(ctx, "john_doe")

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, profile)
}

func TestAuthService_Login_ProfileMissing(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userWriter := NewMockUserWriter(ctrl)
	profileReader := NewMockProfileReader(ctrl)
	profileWriter := NewMockProfileWriter(ctrl)

	userWriter.EXPECT().Save(ctx, "john_doe").Return(userID, nil)
	profileWriter.EXPECT().SaveIfAbsent(ctx, userID).Return(nil)
	profileReader.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)

	svc := NewAuthService(userWriter, profileReader, profileWriter, nil)
	_, _, err := svc.Login(ctx, "john_doe")

	assert.ErrorIs(t, err, ErrProfileNotFound)
}
