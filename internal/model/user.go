package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const DefaultAvatar = "User"

// DefaultThemeColors は登録時にテーマカラーが指定されなかった場合のパレット
var DefaultThemeColors = []string{"#F7CFD8", "#F4F8D3", "#A6D6D6", "#8E7DBE"}

// ユーザーの基本情報
type User struct {
	UserID       uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string                      `gorm:"uniqueIndex;not null" json:"username"`
	Email        string                      `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string                      `gorm:"not null" json:"display_name"`
	PasswordHash string                      `gorm:"not null" json:"-"`
	Avatar       string                      `gorm:"not null;default:'User'" json:"avatar"`
	ThemeColors  datatypes.JSONSlice[string] `json:"theme_colors"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Username    string   `json:"username" validate:"required,min=1,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	DisplayName string   `json:"display_name" validate:"required,min=1,max=100"`
	Password    string   `json:"password" validate:"required,min=8,max=72"`
	Avatar      string   `json:"avatar,omitempty" validate:"omitempty,max=50"`
	ThemeColors []string `json:"theme_colors,omitempty" validate:"omitempty,dive,required"`
}

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID      uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar"`
	ThemeColors []string  `json:"theme_colors"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	colors := []string(u.ThemeColors)
	if colors == nil {
		colors = []string{}
	}
	return &UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
		ThemeColors: colors,
		CreatedAt:   u.CreatedAt,
	}
}
