package magick

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Image wraps one image file on disk and provides the operations that need
// more than a single rendered command: metadata lookups through identify,
// validated mogrify edits, and format conversion with its file-rename
// bookkeeping.
//
// An Image opened from an existing path does not own the file. An Image
// created from a blob owns a temporary file that is released by Destroy and
// by the Runner on any failed operation. Do not share one Image across
// concurrent operations.
type Image struct {
	path   string
	runner *Runner
	temp   *TempFile
}

// ImageInfo contains metadata about an image as reported by identify.
type ImageInfo struct {
	// Format is the format name identify reports, e.g. "JPEG" or "PNG".
	Format string `json:"format"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// OpenImage wraps an existing image file. The file stays caller-owned; Destroy
// on the returned Image is a no-op.
func OpenImage(path string, runner *Runner) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return &Image{path: path, runner: runner}, nil
}

// ImageFromBlob writes data to a new temporary file and wraps it. ext (without
// a dot, may be empty) is used as the file extension so the tools can detect
// the format from the path. The Image owns the temp file.
func ImageFromBlob(data []byte, ext string, runner *Runner) (*Image, error) {
	tf, err := WriteTempFile(data, ext)
	if err != nil {
		return nil, err
	}
	return &Image{path: tf.Path(), runner: runner, temp: tf}, nil
}

// Path returns the image's current file path. SetFormat changes it.
func (im *Image) Path() string { return im.path }

// Destroy releases the backing temp file if the Image owns one. Safe to call
// more than once.
func (im *Image) Destroy() error {
	if im.temp == nil {
		return nil
	}
	return im.temp.Release()
}

// run executes cmd, attaching the owned temp file (if any) for cleanup on
// failure.
func (im *Image) run(ctx context.Context, cmd *Command) (string, error) {
	if im.temp != nil {
		return im.runner.Run(ctx, cmd, WithCleanup(im.temp))
	}
	return im.runner.Run(ctx, cmd)
}

// Identify runs identify on the image and returns its output verbatim.
func (im *Image) Identify(ctx context.Context) (string, error) {
	return im.run(ctx, NewCommand("identify", im.path))
}

// IdentifyFormat runs identify with a -format spec (e.g. "%w %h") and returns
// the output with surrounding whitespace trimmed.
func (im *Image) IdentifyFormat(ctx context.Context, spec string) (string, error) {
	cmd := NewCommand("identify")
	// -format here is identify's read-only output template, not the file
	// format change AddOption guards against, so it bypasses the whitelist.
	cmd.Push("-format")
	cmd.Push(`"` + spec + `"`)
	cmd.Push(im.path)

	out, err := im.run(ctx, cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// EXIF returns the value of one EXIF field (e.g. "DateTimeOriginal"), or the
// empty string when the image carries no such tag.
func (im *Image) EXIF(ctx context.Context, field string) (string, error) {
	return im.IdentifyFormat(ctx, "%[EXIF:"+field+"]")
}

// Info returns the image's format, dimensions, and on-disk size.
func (im *Image) Info(ctx context.Context) (*ImageInfo, error) {
	out, err := im.IdentifyFormat(ctx, "%m %w %h")
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(out)
	if len(fields) < 3 {
		return nil, fmt.Errorf("unexpected identify output %q", out)
	}
	width, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("unexpected identify width %q", fields[1])
	}
	height, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("unexpected identify height %q", fields[2])
	}

	stat, err := os.Stat(im.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Format:        fields[0],
		Width:         width,
		Height:        height,
		FileSizeBytes: stat.Size(),
	}, nil
}

// Mogrify edits the image in place. The build function adds options to a
// mogrify Tool; the image path is appended last. Option names go through the
// usual whitelist, so an unknown name fails the whole call without running
// anything.
func (im *Image) Mogrify(ctx context.Context, build func(*Tool)) error {
	tool := NewTool("mogrify", im.runner)
	build(tool)
	tool.Args(im.path)

	var err error
	if im.temp != nil {
		_, err = tool.Run(ctx, WithCleanup(im.temp))
	} else {
		_, err = tool.Run(ctx)
	}
	return err
}

// SetFormat converts the image to another format, named by extension without
// a dot (e.g. "png"). This is the only path that may change an image's
// format: mogrify -format writes a sibling file with the new extension, so
// the old file must be removed and the Image re-pointed. The command builder
// cannot perform that bookkeeping, which is why AddOption("format") is
// rejected.
//
// Converting to the format the path already has is a no-op rewrite; the path
// is unchanged.
func (im *Image) SetFormat(ctx context.Context, ext string) error {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return fmt.Errorf("format extension cannot be empty")
	}

	cmd := NewCommand("mogrify")
	cmd.Push("-format")
	cmd.Push(ext)
	cmd.Push(im.path)

	if _, err := im.run(ctx, cmd); err != nil {
		return err
	}

	newPath := strings.TrimSuffix(im.path, filepath.Ext(im.path)) + "." + ext
	if newPath == im.path {
		return nil
	}
	if _, err := os.Stat(newPath); err != nil {
		return fmt.Errorf("format change did not produce %s: %w", newPath, err)
	}
	if err := os.Remove(im.path); err != nil {
		return fmt.Errorf("failed to remove pre-conversion file: %w", err)
	}
	im.path = newPath

	// The old temp file is gone; track the converted file so Destroy and
	// failure cleanup keep working.
	if im.temp != nil {
		im.temp = &TempFile{path: newPath}
	}
	return nil
}

// Write copies the image's current contents to dst.
func (im *Image) Write(dst string) error {
	data, err := im.ToBlob()
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// ToBlob reads the image's current contents.
func (im *Image) ToBlob() ([]byte, error) {
	data, err := os.ReadFile(im.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

// Composite layers overlay onto the image and writes the result to dst,
// leaving the receiver untouched. The build function, when non-nil, adds
// options (e.g. gravity, dissolve) before the file arguments.
func (im *Image) Composite(ctx context.Context, overlay *Image, dst string, build func(*Tool)) error {
	tool := NewTool("composite", im.runner)
	if build != nil {
		build(tool)
	}
	tool.Args(overlay.Path(), im.path, dst)

	_, err := tool.Run(ctx)
	return err
}
