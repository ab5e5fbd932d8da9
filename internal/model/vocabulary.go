// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry は特定の言語で書かれた単語そのもの (意味は Sense が持つ)
type VocabularyEntry struct {
	EntryID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SurfaceForm  string    `gorm:"not null;index" json:"surface_form"` // 학생
	Reading      *string   `json:"reading"`                            // hak-saeng
	LanguageCode string    `gorm:"not null;index" json:"language_code"`
	IsPublic     bool      `gorm:"not null;default:true" json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Senses []Sense `gorm:"foreignKey:EntryID;references:EntryID;constraint:OnDelete:CASCADE" json:"senses"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}

// Sense は単語の意味のひとつ。NativeTranslation がグローバル辞書のキーになる。
type Sense struct {
	SenseID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EntryID            uuid.UUID `gorm:"type:uuid;not null;index" json:"entry_id"`
	NativeTranslation  string    `gorm:"not null;index" json:"native_translation"`
	EnglishTranslation *string   `json:"english_translation"`
	Definition         *string   `gorm:"type:text" json:"definition"`
	Position           int       `gorm:"not null;default:0" json:"-"`
	CreatedAt          time.Time `json:"-"`
}

func (Sense) TableName() string {
	return "senses"
}

// 意味の作成リクエストDTO
type SenseRequest struct {
	NativeTranslation  string  `json:"native_translation" validate:"required"`
	EnglishTranslation *string `json:"english_translation,omitempty"`
	Definition         *string `json:"definition,omitempty"`
}

// 単語の作成・更新（全体）リクエストDTO。更新時は senses が全件置き換えになる。
type VocabularyEntryRequest struct {
	SurfaceForm  string         `json:"surface_form" validate:"required"`
	Reading      *string        `json:"reading,omitempty"`
	LanguageCode string         `json:"language_code" validate:"required,max=10"`
	IsPublic     *bool          `json:"is_public,omitempty"`
	Senses       []SenseRequest `json:"senses" validate:"dive"`
}

// Public は is_public が省略された場合 true を返す
func (r *VocabularyEntryRequest) Public() bool {
	return r.IsPublic == nil || *r.IsPublic
}
