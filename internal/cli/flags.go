package cli

// Flags holds all command-line flag values
type Flags struct {
	// WordsFile overrides WORDS_FILE when set
	WordsFile string
	Mask      bool
	All       bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{}
}
