package repository

// VocabularyRepository defines vocabulary persistence operations
type VocabularyRepository interface {
	// Load returns the persisted mapping, or an empty one if nothing was stored yet
	Load() (map[string]string, error)
	// Save replaces the persisted mapping with words
	Save(words map[string]string) error
}
