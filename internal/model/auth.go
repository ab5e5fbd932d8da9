package model

// LoginRequest は /token のリクエスト (OAuth2 password flow と同じ形)
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse はトークン発行成功時のレスポンス
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

const TokenTypeBearer = "bearer"
