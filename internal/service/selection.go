package service

import (
	"fmt"
	"math/rand"
	"sort"

	"wordquiz/internal/domain"
)

// Selection is the set of words queued for the current learning session
type Selection struct {
	words map[string]struct{}
	rng   *rand.Rand
}

// NewSelection creates an empty selection drawing from rng
func NewSelection(rng *rand.Rand) *Selection {
	return &Selection{
		words: make(map[string]struct{}),
		rng:   rng,
	}
}

// Set replaces the selection with the normalized, de-duplicated words
func (s *Selection) Set(words []string) {
	s.words = make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = domain.Normalize(w); w != "" {
			s.words[w] = struct{}{}
		}
	}
}

// IsEmpty reports whether nothing is selected
func (s *Selection) IsEmpty() bool {
	return len(s.words) == 0
}

// Len returns the number of selected words
func (s *Selection) Len() int {
	return len(s.words)
}

// Contains reports whether word is selected
func (s *Selection) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Remove drops word from the selection. Removing an absent word is a no-op.
func (s *Selection) Remove(word string) {
	delete(s.words, word)
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.words = make(map[string]struct{})
}

// Words returns the selected words sorted
func (s *Selection) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// PickRandom returns a uniformly chosen selected word without removing it
func (s *Selection) PickRandom() (string, error) {
	if s.IsEmpty() {
		return "", fmt.Errorf("cannot pick a word: %w", domain.ErrEmptySelection)
	}
	words := s.Words()
	return words[s.rng.Intn(len(words))], nil
}
