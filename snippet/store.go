package snippet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/zhubert/snipdeck-core/logger"
)

// Store reads and writes one snippet library file.
// All methods are safe for concurrent use. Saves go through a temp file
// and rename so a crash cannot leave a half-written library behind.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store bound to the given file path. The file need not
// exist yet; Load treats a missing file as an empty library and Save
// creates it along with any missing parent directories.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store reads and writes.
func (st *Store) Path() string {
	return st.path
}

// Exists reports whether the library file is present on disk.
func (st *Store) Exists() bool {
	info, err := os.Stat(st.path)
	return err == nil && !info.IsDir()
}

// Load reads the library file. A missing file yields an empty list; a
// malformed file or read failure is logged and likewise yields an empty
// list, so the host always starts with a usable library. Legacy-format
// rows are upgraded to full snippets with fresh IDs.
func (st *Store) Load() []Snippet {
	st.mu.Lock()
	defer st.mu.Unlock()

	log := logger.WithComponent("store")

	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return []Snippet{}
	}
	if err != nil {
		log.Error("failed to read snippet file", "path", st.path, "error", err)
		return []Snippet{}
	}

	snippets, err := decodeLibrary(data)
	if err != nil {
		log.Error("failed to parse snippet file", "path", st.path, "error", err)
		return []Snippet{}
	}

	// Repair rows that lost their ID to hand edits or sync conflicts
	for i := range snippets {
		if snippets[i].ID == "" {
			snippets[i].ID = uuid.New().String()
		}
	}

	log.Debug("snippets loaded", "path", st.path, "count", len(snippets))
	return snippets
}

// Save writes the library in the canonical pretty-printed shape, creating
// the parent directory if needed.
func (st *Store) Save(snippets []Snippet) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if snippets == nil {
		snippets = []Snippet{}
	}

	data, err := json.MarshalIndent(snippets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snippets: %w", err)
	}

	if err := st.writeAtomic(data); err != nil {
		return fmt.Errorf("failed to write snippet file %s: %w", st.path, err)
	}

	logger.WithComponent("store").Debug("snippets saved", "path", st.path, "count", len(snippets))
	return nil
}

// writeAtomic writes data to a temp file next to the library file and
// renames it into place. Caller must hold mu.
func (st *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(st.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, st.path)
}

// Import reads a snippet file in either format and returns its rows as
// snippets ready to append to a library. Every imported row gets a fresh
// ID so repeated imports of the same file cannot collide; timestamps and
// order of canonical rows are kept as read. Unlike Load, read and parse
// errors are returned: imports are user-initiated and the host reports
// the failure.
func (st *Store) Import(path string) ([]Snippet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	snippets, err := decodeLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import file %s: %w", path, err)
	}

	for i := range snippets {
		snippets[i].ID = uuid.New().String()
	}

	logger.WithComponent("store").Info("snippets imported", "path", path, "count", len(snippets))
	return snippets, nil
}

// Export writes the given snippets to path in the legacy interchange
// shape, preserving list order.
func (st *Store) Export(snippets []Snippet, path string) error {
	data, err := encodeLegacy(snippets)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}

	logger.WithComponent("store").Info("snippets exported", "path", path, "count", len(snippets))
	return nil
}
