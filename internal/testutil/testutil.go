package testutil

import (
	"math/rand"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTestEntry creates a test entry
func NewTestEntry(word, translation string) domain.Entry {
	return domain.Entry{
		Word:        word,
		Translation: translation,
	}
}

// NewTestVocabulary returns the cat/dog/sun vocabulary used across tests
func NewTestVocabulary() map[string]string {
	return map[string]string{
		"cat": "кот",
		"dog": "собака",
		"sun": "солнце",
	}
}

// MemoryVocabularyRepository keeps the vocabulary in memory and counts saves
type MemoryVocabularyRepository struct {
	Words map[string]string
	Saves int
}

// NewMemoryVocabularyRepository creates an in-memory repository seeded with words
func NewMemoryVocabularyRepository(words map[string]string) *MemoryVocabularyRepository {
	copied := make(map[string]string, len(words))
	for k, v := range words {
		copied[k] = v
	}
	return &MemoryVocabularyRepository{Words: copied}
}

func (r *MemoryVocabularyRepository) Load() (map[string]string, error) {
	copied := make(map[string]string, len(r.Words))
	for k, v := range r.Words {
		copied[k] = v
	}
	return copied, nil
}

func (r *MemoryVocabularyRepository) Save(words map[string]string) error {
	copied := make(map[string]string, len(words))
	for k, v := range words {
		copied[k] = v
	}
	r.Words = copied
	r.Saves++
	return nil
}
