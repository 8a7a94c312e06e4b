package source

import (
	"context"
	"fmt"
	"os"

	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.DatasetSource = (*FileSource)(nil)

// FileSource reads the dataset from a local file. It backs the
// manual-input fallback: when the network source is unreachable the
// user points the tool at a file of the same line/column format.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read dataset file: %w", err)
	}
	return string(raw), nil
}

// Name returns the path prefixed with the file scheme.
func (s *FileSource) Name() string {
	return "file:" + s.path
}
