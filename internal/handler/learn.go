package handler

import (
	"context"
	"errors"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// Learn runs the quiz over the current selection.
// Correct answers are acknowledged, then after the configured delay the next question is drawn.
func (h *Handler) Learn(ctx context.Context) error {
	q, err := h.session.Start()
	switch {
	case errors.Is(err, domain.ErrEmptySelection):
		h.println("❌ Сначала выберите слова для изучения!")
		return nil
	case errors.Is(err, domain.ErrVocabularyTooSmall):
		h.println("❌ В словаре слишком мало слов, добавьте ещё")
		return nil
	case errors.Is(err, domain.ErrSessionFinished):
		h.finish()
		return nil
	case err != nil:
		return err
	}

	h.logger.Info("Learning started", zap.Int("words", h.session.Remaining()))

	for {
		h.printQuestion(q)

		input, err := h.readLine(ctx, "Ваш ответ (номер, пусто - выход): ")
		if err != nil {
			return err
		}
		if input == "" {
			h.println("Обучение прервано")
			return nil
		}

		index, err := parseAnswer(input, len(q.Options))
		if err != nil {
			h.printf("Введите номер от 1 до %d\n", len(q.Options))
			continue
		}

		outcome, err := h.session.Check(index)
		if err != nil {
			return err
		}

		if outcome == domain.Incorrect {
			h.println("❌ Неверно, попробуйте ещё раз")
			continue
		}

		h.println("✅ Верно!")
		if err := pause(ctx, h.delay); err != nil {
			return err
		}

		q, err = h.session.Next()
		if errors.Is(err, domain.ErrSessionFinished) {
			h.finish()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (h *Handler) printQuestion(q domain.Question) {
	h.printf("\n%s  (осталось: %d)\n", q.Word, h.session.Remaining())
	for i, option := range q.Options {
		h.printf("  %d) %s\n", i+1, option)
	}
}

func (h *Handler) finish() {
	stats := h.session.Stats()
	h.println("🎉 Вы изучили все выбранные слова!")
	h.printf("Правильных ответов: %d, ошибок: %d\n", stats.Correct, stats.Mistakes)
}
