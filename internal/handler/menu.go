package handler

import (
	"context"
	"errors"
	"io"
)

const mainMenu = `
🏠 Главное меню
1. Добавить слово
2. Просмотр слов
3. Учить слова
0. Выход
`

// Run shows the main menu until the user exits or input ends
func (h *Handler) Run(ctx context.Context) error {
	for {
		h.printf("%s\n", mainMenu)
		choice, err := h.readLine(ctx, "> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = h.AddWord(ctx)
		case "2":
			err = h.SelectWords(ctx)
		case "3":
			err = h.Learn(ctx)
		case "0", "q", "exit":
			h.println("До встречи!")
			return nil
		default:
			h.println("Выберите пункт меню")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
