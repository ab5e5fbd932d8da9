package model

import (
	"time"

	"github.com/google/uuid"
)

const DefaultNoteTopic = "General"

// Note は個人の学習メモ。単語・文法・表現との関連は結合テーブルの (note_id, 相手のid) 行で持つ。
type Note struct {
	NoteID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Topic     string    `gorm:"not null;default:'General'" json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vocabulary  []VocabularyEntry `gorm:"many2many:note_vocabulary;joinForeignKey:NoteID;joinReferences:EntryID" json:"vocab_rel"`
	Grammar     []GrammarRule     `gorm:"many2many:note_grammar;joinForeignKey:NoteID;joinReferences:GrammarID" json:"grammar_rel"`
	Expressions []Expression      `gorm:"many2many:note_expressions;joinForeignKey:NoteID;joinReferences:ExpressionID" json:"expression_rel"`
}

func (Note) TableName() string {
	return "notes"
}

// 結合テーブル名
const (
	NoteVocabularyTable  = "note_vocabulary"
	NoteGrammarTable     = "note_grammar"
	NoteExpressionsTable = "note_expressions"
)

// ノート作成リクエストDTO。存在しないIDは無視される。
type NoteRequest struct {
	Title         string      `json:"title" validate:"required"`
	Content       string      `json:"content"`
	Topic         string      `json:"topic,omitempty"`
	VocabIDs      []uuid.UUID `json:"vocab_ids"`
	GrammarIDs    []uuid.UUID `json:"grammar_ids"`
	ExpressionIDs []uuid.UUID `json:"expression_ids"`
}

// ノート更新リクエストDTO。関連の付け替えはできない。
type NoteUpdateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Topic   string `json:"topic,omitempty"`
}

func TopicOrDefault(topic string) string {
	if topic == "" {
		return DefaultNoteTopic
	}
	return topic
}
