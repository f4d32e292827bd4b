package service

import (
	"fmt"
	"sort"

	"wordquiz/internal/domain"
	"wordquiz/internal/repository"

	"go.uber.org/zap"
)

// VocabularyService owns the english word -> translation mapping
type VocabularyService struct {
	repo   repository.VocabularyRepository
	words  map[string]string
	logger *zap.Logger
}

// NewVocabularyService creates a new vocabulary service with an empty mapping
func NewVocabularyService(repo repository.VocabularyRepository, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		repo:   repo,
		words:  make(map[string]string),
		logger: logger,
	}
}

// Load replaces the in-memory mapping with the persisted one.
// Keys and values are normalized; blank entries are dropped. When several keys
// normalize to the same word, an already normalized key wins, otherwise the
// first key in sorted order.
func (s *VocabularyService) Load() error {
	words, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	keys := make([]string, 0, len(words))
	for key := range words {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s.words = make(map[string]string, len(words))
	source := make(map[string]string, len(words))
	for _, key := range keys {
		word := domain.Normalize(key)
		translation := domain.Normalize(words[key])
		if word == "" || translation == "" {
			s.logger.Warn("Skipping blank vocabulary entry", zap.String("word", key))
			continue
		}

		if prev, dup := source[word]; dup {
			if prev == word || key != word {
				s.logger.Warn("Duplicate vocabulary entry ignored",
					zap.String("word", word),
					zap.String("kept", prev),
					zap.String("ignored", key),
				)
				continue
			}
			s.logger.Warn("Duplicate vocabulary entry ignored",
				zap.String("word", word),
				zap.String("kept", key),
				zap.String("ignored", prev),
			)
		}

		source[word] = key
		s.words[word] = translation
	}

	s.logger.Info("Vocabulary loaded", zap.Int("entries", len(s.words)))
	return nil
}

// Add normalizes the pair, inserts or overwrites it and persists the whole mapping
func (s *VocabularyService) Add(word, translation string) error {
	word = domain.Normalize(word)
	translation = domain.Normalize(translation)

	if word == "" {
		return fmt.Errorf("%w: english word cannot be empty", domain.ErrValidation)
	}
	if translation == "" {
		return fmt.Errorf("%w: translation cannot be empty", domain.ErrValidation)
	}

	previous, existed := s.words[word]
	s.words[word] = translation

	if err := s.repo.Save(s.words); err != nil {
		// keep memory in line with what is on disk
		if existed {
			s.words[word] = previous
		} else {
			delete(s.words, word)
		}
		s.logger.Error("Failed to save vocabulary",
			zap.Error(err),
			zap.String("word", word),
		)
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}

	s.logger.Info("Word pair saved",
		zap.String("word", word),
		zap.String("translation", translation),
		zap.Bool("overwritten", existed),
	)
	return nil
}

// Save persists the current mapping
func (s *VocabularyService) Save() error {
	if err := s.repo.Save(s.words); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}
	return nil
}

// List returns all entries sorted by english word
func (s *VocabularyService) List() []domain.Entry {
	entries := make([]domain.Entry, 0, len(s.words))
	for word, translation := range s.words {
		entries = append(entries, domain.Entry{Word: word, Translation: translation})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Translation returns the translation of an already normalized word
func (s *VocabularyService) Translation(word string) (string, bool) {
	translation, ok := s.words[word]
	return translation, ok
}

// Contains reports whether word is in the vocabulary
func (s *VocabularyService) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of entries
func (s *VocabularyService) Len() int {
	return len(s.words)
}

// distractors returns the distinct translations of every word other than word,
// excluding any translation equal to correct. A translation shared by several
// words enters the pool once, so it is no more likely to be drawn than any other.
func (s *VocabularyService) distractors(word, correct string) []string {
	seen := make(map[string]struct{}, len(s.words))
	pool := make([]string, 0, len(s.words))
	for key, translation := range s.words {
		if key == word || translation == correct {
			continue
		}
		if _, dup := seen[translation]; dup {
			continue
		}
		seen[translation] = struct{}{}
		pool = append(pool, translation)
	}
	// map order is random; sort so a seeded shuffle is reproducible
	sort.Strings(pool)
	return pool
}
