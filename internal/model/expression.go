package model

import (
	"time"

	"github.com/google/uuid"
)

// Expression は慣用句・挨拶などの決まった言い回し
type Expression struct {
	ExpressionID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text               string    `gorm:"not null;index" json:"text"`
	NativeTranslation  string    `gorm:"not null" json:"native_translation"`
	EnglishTranslation *string   `json:"english_translation"`
	UsageDescription   *string   `gorm:"type:text" json:"usage_description"`
	LanguageCode       string    `gorm:"not null;index" json:"language_code"`
	IsPublic           bool      `gorm:"not null;default:true" json:"is_public"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Expression) TableName() string {
	return "expressions"
}

type ExpressionRequest struct {
	Text               string  `json:"text" validate:"required"`
	NativeTranslation  string  `json:"native_translation" validate:"required"`
	EnglishTranslation *string `json:"english_translation,omitempty"`
	UsageDescription   *string `json:"usage_description,omitempty"`
	LanguageCode       string  `json:"language_code" validate:"required,max=10"`
	IsPublic           *bool   `json:"is_public,omitempty"`
}

func (r *ExpressionRequest) Public() bool {
	return r.IsPublic == nil || *r.IsPublic
}
