package handler

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"wordquiz/internal/service"
	"wordquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, words map[string]string, input string) (*Handler, *service.Session, *bytes.Buffer) {
	t.Helper()

	logger := testutil.NewTestLogger()
	vocabulary := service.NewVocabularyService(testutil.NewMemoryVocabularyRepository(words), logger)
	require.NoError(t, vocabulary.Load())

	session := service.NewSession(vocabulary, service.SessionOptions{
		MinVocabulary: 2,
		Rand:          testutil.NewTestRand(3),
	}, logger)

	out := &bytes.Buffer{}
	return NewHandler(session, strings.NewReader(input), out, 0, logger), session, out
}

func TestHandler_AddWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		saved    int
	}{
		{
			name:     "valid pair",
			input:    "Cat\nКот\n",
			expected: "Слово добавлено",
			saved:    1,
		},
		{
			name:     "empty translation",
			input:    "cat\n   \n",
			expected: "Заполните оба поля",
			saved:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, session, out := newTestHandler(t, nil, tt.input)

			err := h.AddWord(context.Background())

			assert.NoError(t, err)
			assert.Contains(t, out.String(), tt.expected)
			assert.Len(t, session.Words(), tt.saved)
		})
	}
}

func TestHandler_AddWord_EOF(t *testing.T) {
	h, _, _ := newTestHandler(t, nil, "cat\n")

	err := h.AddWord(context.Background())

	assert.ErrorIs(t, err, io.EOF)
}

func TestHandler_SelectWords(t *testing.T) {
	h, session, out := newTestHandler(t, testutil.NewTestVocabulary(), "9\nunicorn\n1 sun\n")

	err := h.SelectWords(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "sun"}, session.Selected())
	assert.Contains(t, out.String(), "Неверный ввод")
	assert.Contains(t, out.String(), "Нет такого слова")
	assert.Contains(t, out.String(), "Выбрано слов: 2")
}

func TestHandler_SelectWords_MaskToggle(t *testing.T) {
	h, session, out := newTestHandler(t, testutil.NewTestVocabulary(), "m\n\n")

	err := h.SelectWords(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, session.Selected())

	listings := strings.Split(out.String(), "📝")
	require.Len(t, listings, 3)
	assert.Contains(t, listings[1], "cat - кот")
	assert.Contains(t, listings[2], "cat - ***")
	assert.NotContains(t, listings[2], "кот")
}

func TestHandler_SelectWords_EmptyVocabulary(t *testing.T) {
	h, _, out := newTestHandler(t, nil, "")

	err := h.SelectWords(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "нет сохранённых слов")
}

func TestHandler_Learn_NoSelection(t *testing.T) {
	h, _, out := newTestHandler(t, testutil.NewTestVocabulary(), "")

	err := h.Learn(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Сначала выберите слова")
}

func TestHandler_Learn_VocabularyTooSmall(t *testing.T) {
	h, session, out := newTestHandler(t, map[string]string{"cat": "кот"}, "")
	require.NoError(t, session.Select([]string{"cat"}))

	err := h.Learn(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "слишком мало слов")
}

func TestHandler_Learn_Completes(t *testing.T) {
	// Two options: one of "1" and "2" is correct, the other is at most one mistake.
	h, session, out := newTestHandler(t, map[string]string{"cat": "кот", "dog": "собака"}, "x\n1\n2\n")
	require.NoError(t, session.Select([]string{"cat"}))

	err := h.Learn(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Введите номер от 1 до 2")
	assert.Contains(t, out.String(), "✅ Верно!")
	assert.Contains(t, out.String(), "Вы изучили все выбранные слова")
	assert.Equal(t, 0, session.Remaining())
	assert.Equal(t, 1, session.Stats().Correct)
	assert.LessOrEqual(t, session.Stats().Mistakes, 1)
}

func TestHandler_Learn_Interrupted(t *testing.T) {
	h, session, out := newTestHandler(t, testutil.NewTestVocabulary(), "\n")
	require.NoError(t, session.Select([]string{"cat", "dog"}))

	err := h.Learn(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Обучение прервано")
	assert.Equal(t, 2, session.Remaining())
}

func TestHandler_Learn_Cancelled(t *testing.T) {
	h, session, _ := newTestHandler(t, testutil.NewTestVocabulary(), "1\n")
	require.NoError(t, session.Select([]string{"cat"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Learn(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandler_Run(t *testing.T) {
	input := strings.Join([]string{
		"5",                // unknown menu item
		"1", "cat", "кот", // add
		"1", "dog", "собака",
		"2", "1", // select cat
		"3", "1", "2", // learn
	}, "\n") + "\n"

	h, session, out := newTestHandler(t, nil, input)

	err := h.Run(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Выберите пункт меню")
	assert.Equal(t, 2, strings.Count(out.String(), "Слово добавлено"))
	assert.Contains(t, out.String(), "Выбрано слов: 1")
	assert.Contains(t, out.String(), "Вы изучили все выбранные слова")
	assert.Len(t, session.Words(), 2)
}

func TestHandler_Run_Exit(t *testing.T) {
	h, _, out := newTestHandler(t, nil, "0\n1\n")

	err := h.Run(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "До встречи!")
	assert.NotContains(t, out.String(), "Английское слово")
}

func TestHandler_ReadLine_CancelWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	logger := testutil.NewTestLogger()
	vocabulary := service.NewVocabularyService(testutil.NewMemoryVocabularyRepository(nil), logger)
	session := service.NewSession(vocabulary, service.SessionOptions{}, logger)
	h := NewHandler(session, pr, &bytes.Buffer{}, 0, logger)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := h.readLine(ctx, "> ")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("readLine did not return after cancellation")
	}
}

func TestHandler_ReadLine_ReadsInOrder(t *testing.T) {
	h, _, _ := newTestHandler(t, nil, "first\n second \n")
	ctx := context.Background()

	first, err := h.readLine(ctx, "")
	require.NoError(t, err)
	second, err := h.readLine(ctx, "")
	require.NoError(t, err)
	_, err = h.readLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)
	_, err = h.readLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)
}
