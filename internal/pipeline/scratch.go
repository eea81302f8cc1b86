// scratch.go provides write-then-delete scratch storage for uploads.
//
// Every uploaded file gets a uuid-prefixed scratch copy for the duration
// of one request and is deleted on every exit path — success or failure
// — so the scratch directory never accumulates files.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ScratchStore manages request-scoped files in a scratch directory.
type ScratchStore struct {
	dir string
}

// NewScratchStore creates the scratch directory if needed.
func NewScratchStore(dir string) (*ScratchStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory %s: %w", dir, err)
	}
	return &ScratchStore{dir: dir}, nil
}

// Dir returns the scratch directory path.
func (s *ScratchStore) Dir() string {
	return s.dir
}

// Writable reports whether the scratch directory accepts writes.
// Used by the health endpoint.
func (s *ScratchStore) Writable() bool {
	probe := filepath.Join(s.dir, ".probe-"+uuid.New().String())
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return false
	}
	os.Remove(probe)
	return true
}

// Save writes data under a unique sanitized name and returns the path
// plus a cleanup func. The caller MUST defer cleanup so the file is
// removed on every exit path.
func (s *ScratchStore) Save(originalName string, data []byte) (string, func(), error) {
	name := uuid.New().String() + "_" + sanitizeFilename(originalName)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️  Failed to clean up scratch file %s: %v", path, err)
		}
	}

	return path, cleanup, nil
}

// sanitizeFilename strips path components and anything outside a safe
// character set, so a hostile filename can't escape the scratch dir.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	cleaned := b.String()
	if cleaned == "" || strings.Trim(cleaned, ".-_") == "" {
		cleaned = "upload"
	}
	return cleaned
}
