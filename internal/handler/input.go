package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"wordquiz/internal/domain"
)

var errInvalidInput = errors.New("invalid input")

// cleanInput removes all non-printable characters and surrounding whitespace
func cleanInput(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseSelection turns "1 3 dog" or "all" into english words.
// Numbers refer to positions in entries, starting at 1.
func parseSelection(input string, entries []domain.Entry) ([]string, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing selected", errInvalidInput)
	}

	if len(fields) == 1 && strings.EqualFold(fields[0], "all") {
		words := make([]string, 0, len(entries))
		for _, e := range entries {
			words = append(words, e.Word)
		}
		return words, nil
	}

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			words = append(words, domain.Normalize(f))
			continue
		}
		if n < 1 || n > len(entries) {
			return nil, fmt.Errorf("%w: number %d out of range", errInvalidInput, n)
		}
		words = append(words, entries[n-1].Word)
	}
	return words, nil
}

// parseAnswer converts a 1-based option number into an option index
func parseAnswer(input string, options int) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalidInput, input)
	}
	if n < 1 || n > options {
		return 0, fmt.Errorf("%w: option %d out of range", errInvalidInput, n)
	}
	return n - 1, nil
}

// maskTranslation hides a translation while keeping its length visible
func maskTranslation(translation string) string {
	return strings.Repeat("*", len([]rune(translation)))
}
