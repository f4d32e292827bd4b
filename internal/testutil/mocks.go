package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Load() (map[string]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockVocabularyRepository) Save(words map[string]string) error {
	args := m.Called(words)
	return args.Error(0)
}
