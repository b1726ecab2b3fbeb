package services

import (
	"context"
	"errors"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile that was just ensured cannot
// be read back; it indicates a broken store, not a caller error.
var ErrProfileNotFound = errors.New("profile not found")

// ErrUserDoesNotExist is returned when a token carries an id with no user row.
var ErrUserDoesNotExist = errors.New("user does not exist")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles the username-only login-or-register flow: a first login
// creates the user and an all-zero profile, later logins reuse them.
type AuthService struct {
	userWriter    UserWriter
	profileReader ProfileReader
	profileWriter ProfileWriter
	jwt           JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userWriter UserWriter, profileReader ProfileReader, profileWriter ProfileWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		userWriter:    userWriter,
		profileReader: profileReader,
		profileWriter: profileWriter,
		jwt:           jwt,
	}
}

// Login signs the player in, creating the account and profile on first use,
// and returns a token plus the profile snapshot.
func (svc *AuthService) Login(ctx context.Context, username string) (string, *models.Profile, error) {
	userID, err := svc.userWriter.Save(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return "", nil, err
	}

	if err := svc.profileWriter.SaveIfAbsent(ctx, userID); err != nil {
		logger.Log.Errorw("failed to ensure profile", "userID", userID, "err", err)
		return "", nil, err
	}

	profileRow, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read profile", "userID", userID, "err", err)
		return "", nil, err
	}
	if profileRow == nil {
		logger.Log.Errorw("profile missing after ensure", "userID", userID)
		return "", nil, ErrProfileNotFound
	}

	token, err := svc.jwt.Generate(ctx, userID, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", userID, "err", err)
		return "", nil, err
	}

	profile := models.NewProfile(username, profileRow)
	return token, &profile, nil
}
