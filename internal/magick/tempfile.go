package magick

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// TempFile is a managed on-disk artifact with a unique path and an idempotent
// Release. It backs images created from in-memory blobs: the external tools
// need a file path, and a failed operation must not leave the file behind.
//
// Release may be called any number of times; only the first call removes the
// file. TempFile satisfies Releaser.
type TempFile struct {
	path string

	once       sync.Once
	releaseErr error
}

// NewTempFile creates an empty file in the system temp directory. The name
// embeds a UUID so concurrent invocations never collide; ext (without a dot,
// may be empty) becomes the file extension so ImageMagick's extension-based
// format detection works on the path.
func NewTempFile(ext string) (*TempFile, error) {
	name := "magick-" + uuid.NewString()
	if ext != "" {
		name += "." + ext
	}
	path := filepath.Join(os.TempDir(), name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}
	return &TempFile{path: path}, nil
}

// WriteTempFile creates a temp file and writes data to it in one step,
// releasing the file if the write fails.
func WriteTempFile(data []byte, ext string) (*TempFile, error) {
	tf, err := NewTempFile(ext)
	if err != nil {
		return nil, err
	}
	if err := tf.Write(data); err != nil {
		tf.Release()
		return nil, err
	}
	return tf, nil
}

// Path returns the file's absolute path. The path stays valid after Release
// as a string, though the file no longer exists.
func (t *TempFile) Path() string { return t.path }

// Write replaces the file's contents. Binary-safe.
func (t *TempFile) Write(data []byte) error {
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	return nil
}

// Release deletes the file. The first call performs the removal; every later
// call is a no-op returning the first call's result. A file already gone at
// release time is not an error.
func (t *TempFile) Release() error {
	t.once.Do(func() {
		if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
			t.releaseErr = fmt.Errorf("failed to remove temp file: %w", err)
		}
	})
	return t.releaseErr
}
