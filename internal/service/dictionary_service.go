//go:generate mockery --name DictionaryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sort"

	"darae_api/internal/middleware"
	"darae_api/internal/model"
	"darae_api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DictionaryService interface {
	GetGlobalDictionary(ctx context.Context) ([]model.GlobalDictionaryGroup, error)
}

type dictionaryService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
}

func NewDictionaryService(db *gorm.DB, vocabRepo repository.VocabularyRepository) DictionaryService {
	return &dictionaryService{db: db, vocabRepo: vocabRepo}
}

// GetGlobalDictionary は全ユーザーの意味を母語訳ごとにまとめて返します
func (s *dictionaryService) GetGlobalDictionary(ctx context.Context) ([]model.GlobalDictionaryGroup, error) {
	logger := middleware.GetLogger(ctx)

	senses, err := s.vocabRepo.FindAllSenses(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}

	entries, err := s.vocabRepo.FindAllWithSenses(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}
	byID := attachSenses(entries, senses)

	groups := GroupByNativeTranslation(senses, byID)
	logger.Debug("Global dictionary built", "senses", len(senses), "groups", len(groups))
	return groups, nil
}

// attachSenses は読み込み済みの意味を position 順で各単語に割り当てます
func attachSenses(entries []*model.VocabularyEntry, senses []model.Sense) map[uuid.UUID]*model.VocabularyEntry {
	byID := make(map[uuid.UUID]*model.VocabularyEntry, len(entries))
	for _, entry := range entries {
		entry.Senses = []model.Sense{}
		byID[entry.EntryID] = entry
	}
	for _, sense := range senses {
		if entry, ok := byID[sense.EntryID]; ok {
			entry.Senses = append(entry.Senses, sense)
		}
	}
	for _, entry := range entries {
		sort.SliceStable(entry.Senses, func(i, j int) bool {
			return entry.Senses[i].Position < entry.Senses[j].Position
		})
	}
	return byID
}

// GroupByNativeTranslation は意味を母語訳の完全一致でまとめます。
// グループも、グループ内の単語も最初に現れた順。同じ単語は一度だけ入る。
func GroupByNativeTranslation(senses []model.Sense, entries map[uuid.UUID]*model.VocabularyEntry) []model.GlobalDictionaryGroup {
	groups := []model.GlobalDictionaryGroup{}
	index := make(map[string]int)
	members := make(map[string]map[uuid.UUID]struct{})

	for _, sense := range senses {
		entry, ok := entries[sense.EntryID]
		if !ok {
			continue
		}

		key := sense.NativeTranslation
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			members[key] = make(map[uuid.UUID]struct{})
			groups = append(groups, model.GlobalDictionaryGroup{
				NativeTranslation: key,
				RelatedEntries:    []model.VocabularyEntry{},
			})
		}

		if _, dup := members[key][entry.EntryID]; dup {
			continue
		}
		members[key][entry.EntryID] = struct{}{}
		groups[i].RelatedEntries = append(groups[i].RelatedEntries, *entry)
	}
	return groups
}
