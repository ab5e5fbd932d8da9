package model

// DefaultListLimit は limit が指定されなかった場合の件数
const DefaultListLimit = 100

// ListParams は一覧取得のフィルタとページング。
// Skip/Limit の範囲チェックは行わず、そのままクエリに渡す。
type ListParams struct {
	LanguageCode string
	Skip         int
	Limit        int
}
