package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"wordquiz/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository on a single JSON file
type VocabularyRepo struct {
	path string
}

// NewVocabularyRepo creates a new file-backed vocabulary repository
func NewVocabularyRepo(path string) *VocabularyRepo {
	return &VocabularyRepo{path: path}
}

// Path returns the file the repository reads and writes
func (r *VocabularyRepo) Path() string {
	return r.path
}

// Load reads the vocabulary file.
// A missing or blank file yields an empty mapping; malformed content or invalid UTF-8 is ErrStorageUnavailable.
func (r *VocabularyRepo) Load() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}, nil
	}

	// encoding/json would replace invalid bytes with U+FFFD and the next save would persist that
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrStorageUnavailable, r.path)
	}

	var words map[string]string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}
	if words == nil {
		// literal "null"
		words = map[string]string{}
	}

	return words, nil
}

// Save rewrites the whole file. The new content is written to a temporary
// file in the same directory and renamed over the old one.
func (r *VocabularyRepo) Save(words map[string]string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if words == nil {
		words = map[string]string{}
	}
	if err := enc.Encode(words); err != nil {
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write vocabulary: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}

	return nil
}
