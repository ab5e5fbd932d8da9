package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"darae_api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// URLParamUUID は chi のパスパラメータを UUID として取り出します
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}

// ParseListParams は language_code / skip / limit クエリを読み取ります。
// 数値として解釈できない値だけを弾き、負数や巨大な値はそのまま通します。
func ParseListParams(r *http.Request, defaultLimit int) (model.ListParams, error) {
	q := r.URL.Query()
	params := model.ListParams{
		LanguageCode: q.Get("language_code"),
		Skip:         0,
		Limit:        defaultLimit,
	}

	if raw := q.Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, model.NewAppError("INVALID_QUERY_PARAM", "skipは整数で指定してください。", "skip", model.ErrInvalidInput)
		}
		params.Skip = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, model.NewAppError("INVALID_QUERY_PARAM", "limitは整数で指定してください。", "limit", model.ErrInvalidInput)
		}
		params.Limit = v
	}
	return params, nil
}
