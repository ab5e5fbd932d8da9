package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"darae_api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNoteHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("作成: 関連IDを渡す", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)
		vocabID := uuid.New()
		note := &model.Note{
			NoteID: uuid.New(), UserID: userID, Title: "Day 1", Content: "학생", Topic: model.DefaultNoteTopic,
			Vocabulary: []model.VocabularyEntry{*sampleEntry(userID)},
		}
		s.note.On("CreateNote", mock.Anything, userID, mock.MatchedBy(func(req *model.NoteRequest) bool {
			return req.Title == "Day 1" && len(req.VocabIDs) == 1 && req.VocabIDs[0] == vocabID
		})).Return(note, nil).Once()

		body := map[string]interface{}{"title": "Day 1", "content": "학생", "vocab_ids": []string{vocabID.String()}}
		rr := doRequest(t, router, http.MethodPost, "/notes/", body, auth)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp model.Note
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "General", resp.Topic)
		assert.Len(t, resp.Vocabulary, 1)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.Contains(t, raw, "vocab_rel")
		assert.Contains(t, raw, "grammar_rel")
		assert.Contains(t, raw, "expression_rel")
	})

	t.Run("作成: タイトル必須", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)

		rr := doRequest(t, router, http.MethodPost, "/notes/", map[string]string{"content": "x"}, auth)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("一覧: 空でも配列", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)
		s.note.On("ListNotes", mock.Anything, userID).Return(nil, nil).Once()

		rr := doRequest(t, router, http.MethodGet, "/notes/", nil, auth)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("取得: 他人のノートは 404", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)
		noteID := uuid.New()
		s.note.On("GetNote", mock.Anything, userID, noteID).
			Return(nil, model.NewAppError("NOTE_NOT_FOUND", "not found", "", model.ErrNotFound)).Once()

		rr := doRequest(t, router, http.MethodGet, "/notes/"+noteID.String(), nil, auth)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("更新", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)
		noteID := uuid.New()
		s.note.On("UpdateNote", mock.Anything, userID, noteID, &model.NoteUpdateRequest{Title: "Day 2", Content: "c", Topic: "Verbs"}).
			Return(&model.Note{NoteID: noteID, UserID: userID, Title: "Day 2", Content: "c", Topic: "Verbs"}, nil).Once()

		body := map[string]string{"title": "Day 2", "content": "c", "topic": "Verbs"}
		rr := doRequest(t, router, http.MethodPut, "/notes/"+noteID.String(), body, auth)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("更新: 関連IDは受け付けない", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)

		body := map[string]interface{}{"title": "Day 2", "vocab_ids": []string{uuid.NewString()}}
		rr := doRequest(t, router, http.MethodPut, "/notes/"+uuid.NewString(), body, auth)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("削除", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)
		noteID := uuid.New()
		s.note.On("DeleteNote", mock.Anything, userID, noteID).Return(nil).Once()

		rr := doRequest(t, router, http.MethodDelete, "/notes/"+noteID.String(), nil, auth)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("認証なしは 401", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rr := doRequest(t, router, http.MethodGet, "/notes/", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
