package model

// GlobalDictionaryGroup は同じ母語訳を持つ単語を言語横断でまとめたもの
type GlobalDictionaryGroup struct {
	NativeTranslation string            `json:"native_translation"`
	RelatedEntries    []VocabularyEntry `json:"related_entries"`
}

// HealthResponse はヘルスチェックの固定レスポンス
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}
