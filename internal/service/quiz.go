package service

import (
	"errors"
	"fmt"
	"math/rand"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// DefaultMaxOptions is one correct answer plus five distractors
const DefaultMaxOptions = 6

// QuizEngine produces multiple-choice questions over the selection and checks answers
type QuizEngine struct {
	vocabulary *VocabularyService
	selection  *Selection
	rng        *rand.Rand
	maxOptions int
	logger     *zap.Logger

	state        domain.QuizState
	current      domain.Question
	correctIndex int
}

// NewQuizEngine creates a new quiz engine in the idle state
func NewQuizEngine(
	vocabulary *VocabularyService,
	selection *Selection,
	rng *rand.Rand,
	maxOptions int,
	logger *zap.Logger,
) *QuizEngine {
	if maxOptions < 2 {
		maxOptions = DefaultMaxOptions
	}
	return &QuizEngine{
		vocabulary: vocabulary,
		selection:  selection,
		rng:        rng,
		maxOptions: maxOptions,
		logger:     logger,
		state:      domain.QuizIdle,
	}
}

// State returns the current engine state
func (e *QuizEngine) State() domain.QuizState {
	return e.state
}

// Current returns the pending question, if any
func (e *QuizEngine) Current() (domain.Question, bool) {
	if e.state != domain.QuizAwaitingAnswer {
		return domain.Question{}, false
	}
	return e.current, true
}

// Reset returns the engine to idle and forgets the pending question
func (e *QuizEngine) Reset() {
	e.state = domain.QuizIdle
	e.current = domain.Question{}
	e.correctIndex = 0
}

// Next draws a new question. While an answer is pending the same question is returned.
// ErrSessionFinished is returned once the selection is exhausted.
func (e *QuizEngine) Next() (domain.Question, error) {
	switch e.state {
	case domain.QuizAwaitingAnswer:
		return e.current, nil
	case domain.QuizFinished:
		return domain.Question{}, domain.ErrSessionFinished
	}

	for {
		word, err := e.selection.PickRandom()
		if errors.Is(err, domain.ErrEmptySelection) {
			e.state = domain.QuizFinished
			e.logger.Info("Quiz session finished")
			return domain.Question{}, domain.ErrSessionFinished
		}
		if err != nil {
			return domain.Question{}, err
		}

		correct, ok := e.vocabulary.Translation(word)
		if !ok {
			e.logger.Warn("Selected word no longer in vocabulary, skipping", zap.String("word", word))
			e.selection.Remove(word)
			continue
		}

		e.current, e.correctIndex = e.buildQuestion(word, correct)
		e.state = domain.QuizAwaitingAnswer

		e.logger.Debug("Question generated",
			zap.String("word", word),
			zap.Int("options", len(e.current.Options)),
		)
		return e.current, nil
	}
}

func (e *QuizEngine) buildQuestion(word, correct string) (domain.Question, int) {
	pool := e.vocabulary.distractors(word, correct)
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if limit := e.maxOptions - 1; len(pool) > limit {
		pool = pool[:limit]
	}

	options := make([]string, 0, len(pool)+1)
	options = append(options, correct)
	options = append(options, pool...)
	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, option := range options {
		if option == correct {
			correctIndex = i
			break
		}
	}

	return domain.Question{Word: word, Options: options}, correctIndex
}

// Check evaluates an answer to the pending question.
// A correct answer removes the word from the selection and returns the engine to idle;
// an incorrect one leaves the question pending.
func (e *QuizEngine) Check(answerIndex int) (domain.Outcome, error) {
	if e.state != domain.QuizAwaitingAnswer {
		return domain.Incorrect, domain.ErrNoActiveQuestion
	}
	if answerIndex < 0 || answerIndex >= len(e.current.Options) {
		return domain.Incorrect, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrInvalidOption, answerIndex, len(e.current.Options))
	}

	if answerIndex != e.correctIndex {
		e.logger.Debug("Incorrect answer",
			zap.String("word", e.current.Word),
			zap.Int("answer", answerIndex),
		)
		return domain.Incorrect, nil
	}

	e.selection.Remove(e.current.Word)
	e.logger.Debug("Correct answer",
		zap.String("word", e.current.Word),
		zap.Int("remaining", e.selection.Len()),
	)
	e.Reset()
	return domain.Correct, nil
}
