package middleware

import (
	"strings"

	"tube-go/internal/api/response"
	"tube-go/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID = "currentUserID"
	ContextKeyClaims = "currentClaims"

	cookieName = "token"
)

// AuthRequired JWT 认证中间件，要求请求必须携带有效且未吊销的令牌
func AuthRequired(tokens *auth.TokenManager, denylist *auth.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, tokens, denylist)
		if !ok {
			response.Unauthorized(c, "缺少或无效的认证令牌")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// AuthOptional 可选认证中间件：令牌有效则注入用户身份，无令牌或令牌
// 无效都直接放行为匿名请求，绝不中断。
func AuthOptional(tokens *auth.TokenManager, denylist *auth.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := authenticate(c, tokens, denylist); ok {
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyClaims, claims)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens *auth.TokenManager, denylist *auth.Denylist) (*auth.Claims, bool) {
	token := extractToken(c)
	if token == "" {
		return nil, false
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		return nil, false
	}

	if denylist.IsRevoked(c.Request.Context(), claims.ID) {
		return nil, false
	}

	return claims, true
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// GetViewerID 以可空形式返回当前用户 ID，匿名请求返回 nil
func GetViewerID(c *gin.Context) *int64 {
	userID, ok := GetCurrentUserID(c)
	if !ok {
		return nil
	}
	return &userID
}

// GetClaims 从 Gin Context 中获取令牌 Claims
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}

// extractToken 依次尝试 Authorization 头和 cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}

	return ""
}
