package fsx

import (
	"context"
	"io"
	"path"
)

// FileReader reads files from a storage backend.
type FileReader interface {
	// ReadFile reads the whole file at path.
	ReadFile(ctx context.Context, filePath string) ([]byte, error)

	// ReadFileStream opens the file at path for streaming reads. The
	// caller must close the returned reader.
	ReadFileStream(ctx context.Context, filePath string) (io.ReadCloser, error)
}

// FileWriter writes files to a storage backend.
type FileWriter interface {
	// WriteFile writes data to path, overwriting any existing file.
	WriteFile(ctx context.Context, filePath string, data []byte) error

	// WriteFileStream writes the contents of r to path.
	WriteFileStream(ctx context.Context, filePath string, r io.Reader) error
}

// FileSystem is the full storage contract.
type FileSystem interface {
	FileReader
	FileWriter

	// DeleteFile removes the file at path. Deleting a missing file is not
	// an error.
	DeleteFile(ctx context.Context, filePath string) error

	// FileExists reports whether a file exists at path.
	FileExists(ctx context.Context, filePath string) (bool, error)

	// Join builds a backend-appropriate path from segments.
	Join(parts ...string) string
}

// Join is the default slash-separated path join used by backends that key
// objects by slash-delimited names.
func Join(parts ...string) string {
	return path.Join(parts...)
}
