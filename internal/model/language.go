package model

import (
	"time"

	"github.com/google/uuid"
)

// Language は学習対象言語のカタログ (例: "Korean" / "ko")
type Language struct {
	LanguageID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	Code       string    `gorm:"uniqueIndex;not null" json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}

type LanguageRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Code string `json:"code" validate:"required,max=10"`
}
