// Package preview generates and stores local preview thumbnails for images
// pending upload. Previews exist only between file selection and submission;
// they are removed with their batch and never uploaded.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the allowed formats.
	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/nmil1484-source/the-wild-share/internal/config"
)

// Precondition failures. These short-circuit before any file is written.
var (
	ErrUnsupportedType = fmt.Errorf("invalid file type, allowed: png, jpg, jpeg, gif, webp")
	ErrTooLarge        = fmt.Errorf("file too large")
)

// allowedMIMETypes is the client-side allow-list for image selection.
var allowedMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImage checks the MIME type and size ceiling for a selected file.
// Rejections happen before any network call or local write.
func ValidateImage(mimeType string, size int64, maxSizeMB int) error {
	if !allowedMIMETypes[strings.ToLower(mimeType)] {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if size > maxBytes {
		return fmt.Errorf("%w: maximum size is %dMB", ErrTooLarge, maxSizeMB)
	}
	return nil
}

// IStore defines the interface for preview thumbnail storage.
type IStore interface {
	Create(filename, mimeType string, content []byte) (string, error)
	Remove(handle string) error
}

// fileStore implements IStore on a local directory.
type fileStore struct {
	cfg *config.Config
	dir string
}

// NewStore creates a preview store rooted at the configured directory.
func NewStore(cfg *config.Config) (IStore, error) {
	if err := os.MkdirAll(cfg.PreviewDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preview directory '%s': %w", cfg.PreviewDir, err)
	}
	return &fileStore{cfg: cfg, dir: cfg.PreviewDir}, nil
}

// Create validates the file, writes a downscaled thumbnail and returns its
// path as the preview handle. Formats the standard decoders cannot handle
// (webp) are stored unscaled.
func (s *fileStore) Create(filename, mimeType string, content []byte) (string, error) {
	if err := ValidateImage(mimeType, int64(len(content)), s.cfg.MaxImageSizeMB); err != nil {
		return "", err
	}

	data := content
	if img, _, err := image.Decode(bytes.NewReader(content)); err == nil {
		maxDim := uint(s.cfg.PreviewMaxDimension)
		thumb := resize.Thumbnail(maxDim, maxDim, img, resize.Lanczos3)
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, thumb, nil); err != nil {
			return "", fmt.Errorf("failed to encode preview for %s: %w", filename, err)
		}
		data = buf.Bytes()
	}

	handle := filepath.Join(s.dir, fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename)))
	if err := os.WriteFile(handle, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write preview file: %w", err)
	}
	return handle, nil
}

// Remove deletes one preview file. A missing file is not an error.
func (s *fileStore) Remove(handle string) error {
	if err := os.Remove(handle); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove preview file '%s': %w", handle, err)
	}
	return nil
}
