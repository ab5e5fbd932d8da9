package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GrammarRule は文法ルール。Examples は順序付きの文字列リストとしてJSONカラムに保存する。
type GrammarRule struct {
	GrammarID    uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string                      `gorm:"not null;index" json:"name"` // 主格助詞 -이/-가
	Structure    string                      `gorm:"not null" json:"structure"`  // N + 이/가
	Explanation  string                      `gorm:"type:text;not null" json:"explanation"`
	Examples     datatypes.JSONSlice[string] `json:"examples"`
	LanguageCode string                      `gorm:"not null;index" json:"language_code"`
	IsPublic     bool                        `gorm:"not null;default:true" json:"is_public"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (GrammarRule) TableName() string {
	return "grammar_rules"
}

type GrammarRuleRequest struct {
	Name         string   `json:"name" validate:"required"`
	Structure    string   `json:"structure" validate:"required"`
	Explanation  string   `json:"explanation" validate:"required"`
	Examples     []string `json:"examples"`
	LanguageCode string   `json:"language_code" validate:"required,max=10"`
	IsPublic     *bool    `json:"is_public,omitempty"`
}

func (r *GrammarRuleRequest) Public() bool {
	return r.IsPublic == nil || *r.IsPublic
}

// ExampleList は nil を空リストに揃えてから JSONSlice に変換する
func (r *GrammarRuleRequest) ExampleList() datatypes.JSONSlice[string] {
	if r.Examples == nil {
		return datatypes.JSONSlice[string]{}
	}
	out := make([]string, len(r.Examples))
	copy(out, r.Examples)
	return datatypes.JSONSlice[string](out)
}
