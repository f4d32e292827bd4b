package service

import (
	"errors"
	"fmt"
	"math/rand"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// DefaultMinVocabulary is the smallest vocabulary a session can start with
const DefaultMinVocabulary = 2

// SessionOptions tunes a Session
type SessionOptions struct {
	MinVocabulary int
	MaxOptions    int
	Rand          *rand.Rand
}

// Session owns the vocabulary, the selection and the quiz engine for one user
type Session struct {
	vocabulary *VocabularyService
	selection  *Selection
	quiz       *QuizEngine
	stats      *StatsService
	minVocab   int
	logger     *zap.Logger
}

// NewSession creates a new session around an already constructed vocabulary service
func NewSession(vocabulary *VocabularyService, opts SessionOptions, logger *zap.Logger) *Session {
	if opts.MinVocabulary < 1 {
		opts.MinVocabulary = DefaultMinVocabulary
	}
	if opts.MaxOptions < 2 {
		opts.MaxOptions = DefaultMaxOptions
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}

	selection := NewSelection(opts.Rand)
	return &Session{
		vocabulary: vocabulary,
		selection:  selection,
		quiz:       NewQuizEngine(vocabulary, selection, opts.Rand, opts.MaxOptions, logger),
		stats:      NewStatsService(logger),
		minVocab:   opts.MinVocabulary,
		logger:     logger,
	}
}

// AddWord adds or overwrites a vocabulary entry
func (s *Session) AddWord(word, translation string) error {
	return s.vocabulary.Add(word, translation)
}

// Words returns every vocabulary entry sorted by english word
func (s *Session) Words() []domain.Entry {
	return s.vocabulary.List()
}

// Select replaces the selection. Every word must exist in the vocabulary.
// Selecting ends any running quiz.
func (s *Session) Select(words []string) error {
	for _, w := range words {
		if !s.vocabulary.Contains(domain.Normalize(w)) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownWord, w)
		}
	}

	s.selection.Set(words)
	s.quiz.Reset()
	s.stats.Reset()

	s.logger.Info("Selection saved", zap.Int("words", s.selection.Len()))
	return nil
}

// Selected returns the words still waiting to be answered
func (s *Session) Selected() []string {
	return s.selection.Words()
}

// Start checks that a quiz can begin and draws the first question
func (s *Session) Start() (domain.Question, error) {
	if s.selection.IsEmpty() {
		return domain.Question{}, domain.ErrEmptySelection
	}
	if n := s.vocabulary.Len(); n < s.minVocab {
		return domain.Question{}, fmt.Errorf("%w: %d entries, need at least %d", domain.ErrVocabularyTooSmall, n, s.minVocab)
	}

	s.quiz.Reset()
	s.stats.Reset()
	return s.Next()
}

// Next returns the pending question or draws a new one.
// ErrSessionFinished is returned exactly when the selection has been learned.
func (s *Session) Next() (domain.Question, error) {
	wasFinished := s.quiz.State() == domain.QuizFinished
	q, err := s.quiz.Next()
	if errors.Is(err, domain.ErrSessionFinished) && !wasFinished {
		s.logger.Info("All selected words learned",
			zap.Int("correct", s.stats.Stats().Correct),
			zap.Int("mistakes", s.stats.Stats().Mistakes),
		)
	}
	return q, err
}

// Check evaluates an answer to the pending question
func (s *Session) Check(answerIndex int) (domain.Outcome, error) {
	outcome, err := s.quiz.Check(answerIndex)
	if err != nil {
		return outcome, err
	}
	s.stats.Record(outcome)
	return outcome, nil
}

// State returns the quiz engine state
func (s *Session) State() domain.QuizState {
	return s.quiz.State()
}

// Stats returns the answer tallies of the running session
func (s *Session) Stats() domain.SessionStats {
	return s.stats.Stats()
}

// Remaining returns how many selected words are still unanswered
func (s *Session) Remaining() int {
	return s.selection.Len()
}
