package domain

import "errors"

var (
	// ErrValidation is returned when a word or translation is empty after normalization
	ErrValidation = errors.New("validation failed")

	// ErrEmptySelection is returned when a session is started or a question is drawn with nothing selected
	ErrEmptySelection = errors.New("no words selected")

	// ErrStorageUnavailable is returned when the persisted vocabulary exists but cannot be read
	ErrStorageUnavailable = errors.New("vocabulary storage unavailable")

	// ErrSessionFinished signals that every selected word was answered correctly
	ErrSessionFinished = errors.New("session finished")

	// ErrNoActiveQuestion is returned when an answer is checked with no question pending
	ErrNoActiveQuestion = errors.New("no active question")

	// ErrInvalidOption is returned when an answer index is outside the option list
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnknownWord is returned when a selected word is not in the vocabulary
	ErrUnknownWord = errors.New("unknown word")

	// ErrVocabularyTooSmall is returned when there are too few entries to build a question
	ErrVocabularyTooSmall = errors.New("vocabulary too small")
)
