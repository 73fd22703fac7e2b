package dto

// GoogleLoginRequest Google 登录请求
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// TokenData 登录成功后的令牌数据
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}

// MeData 当前用户及其订阅的频道
type MeData struct {
	UserInfo
	Channels []UserInfo `json:"channels"`
}
