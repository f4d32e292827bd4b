package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"wordquiz/internal/service"

	"go.uber.org/zap"
)

// Handler drives a session from a line-oriented terminal
type Handler struct {
	session *service.Session
	in      *bufio.Scanner
	lines   chan inputLine
	start   sync.Once
	out     io.Writer
	delay   time.Duration
	logger  *zap.Logger

	// translations hidden in the word list
	mask bool
}

// NewHandler creates a new handler instance
func NewHandler(
	session *service.Session,
	in io.Reader,
	out io.Writer,
	delay time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		session: session,
		in:      bufio.NewScanner(in),
		lines:   make(chan inputLine),
		out:     out,
		delay:   delay,
		logger:  logger,
	}
}

// SetMask hides or shows translations in the word list
func (h *Handler) SetMask(mask bool) {
	h.mask = mask
}

type inputLine struct {
	text string
	err  error
}

// scan feeds input lines to readLine until input ends
func (h *Handler) scan() {
	defer close(h.lines)
	for h.in.Scan() {
		h.lines <- inputLine{text: h.in.Text()}
	}
	err := h.in.Err()
	if err == nil {
		err = io.EOF
	}
	h.lines <- inputLine{err: err}
}

// readLine prints prompt and returns the next cleaned input line.
// io.EOF is returned when input is exhausted; ctx cancellation interrupts the wait.
func (h *Handler) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(h.out, prompt)
	}

	h.start.Do(func() { go h.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", line.err
		}
		return cleanInput(line.text), nil
	}
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (h *Handler) println(a ...any) {
	fmt.Fprintln(h.out, a...)
}

func (h *Handler) printf(format string, a ...any) {
	fmt.Fprintf(h.out, format, a...)
}
