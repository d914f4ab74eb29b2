package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"service-gestor/internal/domain"
)

// PrefsFile keeps gestor preferences in a YAML file.
type PrefsFile struct {
	path string
	mu   sync.Mutex
}

// NewPrefsFile creates a PrefsFile at path.
func NewPrefsFile(path string) *PrefsFile {
	return &PrefsFile{path: path}
}

// Load reads the file. A missing file yields the defaults.
func (f *PrefsFile) Load() (domain.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := domain.DefaultPreferences()
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return domain.Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return domain.Preferences{}, fmt.Errorf("parse preferences: %w", err)
	}
	return p, nil
}

// Save replaces the file atomically.
func (f *PrefsFile) Save(p domain.Preferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
