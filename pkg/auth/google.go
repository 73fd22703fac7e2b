package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

var ErrIdentityRejected = errors.New("身份令牌验证失败")

// Identity 外部身份提供方返回的用户信息
type Identity struct {
	Email  string
	Name   string
	Avatar string
}

// IdentityVerifier 验证外部身份令牌。测试中以假实现替换。
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// GoogleVerifier 通过 Google 校验 ID Token
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier 创建 GoogleVerifier
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify 校验 Google ID Token 并提取用户信息
func (g *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, token, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityRejected, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrIdentityRejected
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &Identity{
		Email:  email,
		Name:   name,
		Avatar: picture,
	}, nil
}
