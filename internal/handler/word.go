package handler

import (
	"context"
	"errors"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// AddWord asks for an english word and its translation and stores the pair
func (h *Handler) AddWord(ctx context.Context) error {
	word, err := h.readLine(ctx, "Английское слово: ")
	if err != nil {
		return err
	}
	translation, err := h.readLine(ctx, "Русский перевод: ")
	if err != nil {
		return err
	}

	h.SaveWord(word, translation)
	return nil
}

// SaveWord stores a pair and reports the result to the user.
// It returns false when the pair was not saved.
func (h *Handler) SaveWord(word, translation string) bool {
	err := h.session.AddWord(word, translation)
	switch {
	case err == nil:
		h.println("✅ Слово добавлено!")
		return true
	case errors.Is(err, domain.ErrValidation):
		h.println("❌ Заполните оба поля!")
	default:
		h.logger.Error("Failed to save word pair",
			zap.Error(err),
			zap.String("word", word),
		)
		h.println("Не удалось сохранить слово. Попробуйте ещё раз.")
	}
	return false
}

// ShowWords prints the numbered vocabulary and returns the entries in display order
func (h *Handler) ShowWords() []domain.Entry {
	entries := h.session.Words()
	if len(entries) == 0 {
		h.println("У тебя пока нет сохранённых слов")
		return entries
	}

	selected := make(map[string]bool)
	for _, w := range h.session.Selected() {
		selected[w] = true
	}

	h.printf("📝 Слова (%d):\n", len(entries))
	for i, e := range entries {
		translation := e.Translation
		if h.mask {
			translation = maskTranslation(translation)
		}
		mark := " "
		if selected[e.Word] {
			mark = "x"
		}
		h.printf("[%s] %d. %s - %s\n", mark, i+1, e.Word, translation)
	}
	return entries
}

// SelectWords shows the vocabulary and lets the user choose words to learn
func (h *Handler) SelectWords(ctx context.Context) error {
	for {
		entries := h.ShowWords()
		if len(entries) == 0 {
			return nil
		}

		input, err := h.readLine(ctx, "Номера или слова через пробел, all - все, m - скрыть/показать перевод, пусто - назад: ")
		if err != nil {
			return err
		}

		switch input {
		case "":
			return nil
		case "m", "M":
			h.mask = !h.mask
			continue
		}

		words, err := parseSelection(input, entries)
		if err != nil {
			h.printf("❌ Неверный ввод: %v\n", err)
			continue
		}

		if err := h.session.Select(words); err != nil {
			if errors.Is(err, domain.ErrUnknownWord) {
				h.printf("❌ Нет такого слова: %v\n", err)
				continue
			}
			return err
		}

		h.printf("Выбор сохранен. Выбрано слов: %d\n", h.session.Remaining())
		return nil
	}
}
