package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/merge2048/internal/session"
)

// FileStore keeps a single high score as a decimal integer in a text file,
// shared by every game ID.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// OpenFile returns a FileStore for path. The file is created on the first
// saved record, not here.
func OpenFile(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("storage: empty high score file path")
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// HighScore returns the stored score, or 0 when the file does not exist.
func (f *FileStore) HighScore(string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score file %s: %w", f.path, err)
	}
	return score, nil
}

// SaveResult overwrites the stored score when res beats it.
func (f *FileStore) SaveResult(_ string, res session.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.read()
	if err != nil {
		return err
	}
	if res.Score <= current {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(res.Score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("storage: cannot replace high score: %w", err)
	}
	return nil
}

var _ session.ScoreKeeper = (*FileStore)(nil)
