package listing

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/preview"
)

// ErrBatchFull is returned when an add would exceed the image cap. The
// wrapping error names the exact remaining capacity.
var ErrBatchFull = errors.New("image batch full")

// SelectedFile is one file picked by the user, held in memory until upload.
type SelectedFile struct {
	Filename string
	MIMEType string
	Content  []byte
}

// PendingImage pairs a selected file with its local preview handle. The two
// lists inside a batch stay in lockstep: removing index i removes both.
type PendingImage struct {
	File          SelectedFile
	PreviewHandle string
}

// Batch is the ephemeral set of images attached to a listing form. It exists
// only between selection and successful submission, capped at maxImages, and
// is discarded wholesale on cancel, success or teardown.
type Batch struct {
	id        string
	previews  preview.IStore
	maxImages int
	maxSizeMB int

	mu     sync.Mutex
	images []PendingImage
}

// NewBatch creates an empty batch backed by the given preview store.
func NewBatch(previews preview.IStore, maxImages, maxSizeMB int) *Batch {
	return &Batch{
		id:        uuid.NewString(),
		previews:  previews,
		maxImages: maxImages,
		maxSizeMB: maxSizeMB,
	}
}

// ID identifies this batch across its lifecycle.
func (b *Batch) ID() string {
	return b.id
}

// Add appends files to the batch. Adds are all-or-nothing: exceeding the cap
// or any validation/preview failure adds zero files, and a cap rejection
// reports the exact remaining capacity.
func (b *Batch) Add(files []SelectedFile) error {
	if len(files) == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := b.maxImages - len(b.images)
	if len(files) > remaining {
		return fmt.Errorf("%w: maximum %d images allowed, you can add %d more", ErrBatchFull, b.maxImages, remaining)
	}

	// Validate everything before creating any preview so a rejected file
	// leaves no partial state.
	for _, file := range files {
		if err := preview.ValidateImage(file.MIMEType, int64(len(file.Content)), b.maxSizeMB); err != nil {
			return fmt.Errorf("rejected %s: %w", file.Filename, err)
		}
	}

	added := make([]PendingImage, 0, len(files))
	for _, file := range files {
		handle, err := b.previews.Create(file.Filename, file.MIMEType, file.Content)
		if err != nil {
			for _, img := range added {
				if rmErr := b.previews.Remove(img.PreviewHandle); rmErr != nil {
					log.Printf("Failed to roll back preview %s: %v", img.PreviewHandle, rmErr)
				}
			}
			return fmt.Errorf("failed to create preview for %s: %w", file.Filename, err)
		}
		added = append(added, PendingImage{File: file, PreviewHandle: handle})
	}

	b.images = append(b.images, added...)
	return nil
}

// Remove drops the image at index i together with its preview.
func (b *Batch) Remove(index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.images) {
		return fmt.Errorf("image index %d out of range", index)
	}

	if err := b.previews.Remove(b.images[index].PreviewHandle); err != nil {
		log.Printf("Failed to remove preview: %v", err)
	}
	b.images = append(b.images[:index], b.images[index+1:]...)
	return nil
}

// Len returns the number of pending images.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.images)
}

// PreviewHandles returns the preview handles in batch order.
func (b *Batch) PreviewHandles() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	handles := make([]string, len(b.images))
	for i, img := range b.images {
		handles[i] = img.PreviewHandle
	}
	return handles
}

// UploadFiles returns the batch contents ready for the multipart upload.
func (b *Batch) UploadFiles() []api.UploadFile {
	b.mu.Lock()
	defer b.mu.Unlock()
	files := make([]api.UploadFile, len(b.images))
	for i, img := range b.images {
		files[i] = api.UploadFile{
			Filename: img.File.Filename,
			Content:  bytes.NewReader(img.File.Content),
		}
	}
	return files
}

// Discard drops all pending images and their previews.
func (b *Batch) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, img := range b.images {
		if err := b.previews.Remove(img.PreviewHandle); err != nil {
			log.Printf("Failed to remove preview: %v", err)
		}
	}
	b.images = nil
}
