package service

import (
	"context"
	"errors"
	"time"

	"tube-go/internal/api/dto"
	"tube-go/internal/model"
	"tube-go/internal/repository"
	"tube-go/pkg/auth"
	"tube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService 外部身份交换：Google ID Token 验证通过后按邮箱查找用户，
// 首次登录时创建用户，随后签发本服务的会话令牌。
type AuthService struct {
	userRepo *repository.UserRepository
	verifier auth.IdentityVerifier
	tokens   *auth.TokenManager
	denylist *auth.Denylist
}

func NewAuthService(
	userRepo *repository.UserRepository,
	verifier auth.IdentityVerifier,
	tokens *auth.TokenManager,
	denylist *auth.Denylist,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		denylist: denylist,
	}
}

// GoogleLogin 验证 Google ID Token，必要时创建用户，返回会话令牌
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*dto.TokenData, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, auth.ErrIdentityRejected
	}

	user, err := s.userRepo.GetByEmail(identity.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user = &model.User{
			Email:    identity.Email,
			Username: identity.Name,
			Avatar:   identity.Avatar,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		logger.Info("User created on first login",
			zap.Int64("user_id", user.ID),
			zap.String("email", user.Email),
		)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(s.tokens.Expire() / time.Second),
		User:      *toUserInfo(user),
	}, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// Signout 吊销当前令牌（写入 Redis 名单，TTL 对齐剩余有效期）
func (s *AuthService) Signout(ctx context.Context, claims *auth.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
