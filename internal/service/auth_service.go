package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"expenso/internal/dto"
	"expenso/internal/models"
	"expenso/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrStore = errors.New("store operation failed")

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
}

type AuthService struct {
	userRepo    UserStore
	jwtManager  *auth.JWTManager
	adminEmails map[string]struct{}
	logger      *zap.Logger
}

func NewAuthService(userRepo UserStore, jwtManager *auth.JWTManager, adminEmails []string, logger *zap.Logger) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(e)] = struct{}{}
	}

	return &AuthService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		adminEmails: admins,
		logger:      logger,
	}
}

// Signup registers a fresh identity and issues a token for it. A token is
// never issued when the store write fails.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := models.RoleUser
	if _, ok := s.adminEmails[email]; ok {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to register user", zap.Error(err))
		return nil, ErrStore
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Token:  token,
		UserID: user.ID.String(),
	}, nil
}
