package domain

// QuizState represents where the quiz engine is in its question cycle
type QuizState string

const (
	QuizIdle           QuizState = "idle"
	QuizAwaitingAnswer QuizState = "awaiting_answer"
	QuizFinished       QuizState = "finished"
)

// Outcome is the result of checking an answer
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

// String returns a readable outcome name
func (o Outcome) String() string {
	if o == Correct {
		return "correct"
	}
	return "incorrect"
}

// Question is a multiple-choice question shown to the user.
// The index of the correct option stays inside the engine.
type Question struct {
	Word    string
	Options []string
}

// SessionStats holds answer tallies for one learning session
type SessionStats struct {
	Correct  int
	Mistakes int
}

// Attempts returns the total number of answers given
func (s SessionStats) Attempts() int {
	return s.Correct + s.Mistakes
}
