package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmil1484-source/the-wild-share/internal/preview"
)

func jpeg(name string) SelectedFile {
	return SelectedFile{Filename: name, MIMEType: "image/jpeg", Content: []byte("jpeg-bytes")}
}

func TestBatch_AddIsAdditive(t *testing.T) {
	previews := newMemPreviews()
	batch := NewBatch(previews, 5, 5)

	require.NoError(t, batch.Add([]SelectedFile{jpeg("a.jpg"), jpeg("b.jpg")}))
	require.NoError(t, batch.Add([]SelectedFile{jpeg("c.jpg")}))
	assert.Equal(t, 3, batch.Len())
	assert.Equal(t, 3, previews.live())
}

func TestBatch_CapRejectionReportsRemaining(t *testing.T) {
	previews := newMemPreviews()
	batch := NewBatch(previews, 5, 5)
	require.NoError(t, batch.Add([]SelectedFile{jpeg("a.jpg"), jpeg("b.jpg"), jpeg("c.jpg")}))

	err := batch.Add([]SelectedFile{jpeg("d.jpg"), jpeg("e.jpg"), jpeg("f.jpg")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchFull)
	assert.Contains(t, err.Error(), "you can add 2 more")
	// Nothing from the oversized add went in.
	assert.Equal(t, 3, batch.Len())
}

func TestBatch_RejectedTypeAddsNothing(t *testing.T) {
	previews := newMemPreviews()
	batch := NewBatch(previews, 5, 5)

	err := batch.Add([]SelectedFile{
		jpeg("good.jpg"),
		{Filename: "doc.pdf", MIMEType: "application/pdf", Content: []byte("%PDF")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, preview.ErrUnsupportedType)
	assert.Equal(t, 0, batch.Len())
	assert.Equal(t, 0, previews.live())
}

func TestBatch_OversizedFileAddsNothing(t *testing.T) {
	previews := newMemPreviews()
	batch := NewBatch(previews, 5, 1)

	big := SelectedFile{Filename: "big.jpg", MIMEType: "image/jpeg", Content: make([]byte, 2<<20)}
	err := batch.Add([]SelectedFile{big})
	require.Error(t, err)
	assert.ErrorIs(t, err, preview.ErrTooLarge)
	assert.Equal(t, 0, batch.Len())
}

func TestBatch_PreviewFailureRollsBack(t *testing.T) {
	previews := newMemPreviews()
	previews.failAt = 2
	batch := NewBatch(previews, 5, 5)

	err := batch.Add([]SelectedFile{jpeg("a.jpg"), jpeg("b.jpg")})
	require.Error(t, err)
	assert.Equal(t, 0, batch.Len())
	// The first preview was created then rolled back.
	assert.Equal(t, 0, previews.live())
}

func TestBatch_RemoveKeepsListsInLockstep(t *testing.T) {
	previews := newMemPreviews()
	batch := NewBatch(previews, 5, 5)
	require.NoError(t, batch.Add([]SelectedFile{jpeg("a.jpg"), jpeg("b.jpg"), jpeg("c.jpg")}))

	require.NoError(t, batch.Remove(1))
	assert.Equal(t, 2, batch.Len())
	assert.Equal(t, 2, previews.live())

	handles := batch.PreviewHandles()
	require.Len(t, handles, 2)
	assert.True(t, strings.HasSuffix(handles[0], "a.jpg"))
	assert.True(t, strings.HasSuffix(handles[1], "c.jpg"))

	files := batch.UploadFiles()
	require.Len(t, files, 2)
	assert.Equal(t, "a.jpg", files[0].Filename)
	assert.Equal(t, "c.jpg", files[1].Filename)
}

func TestBatch_RemoveOutOfRange(t *testing.T) {
	batch := NewBatch(newMemPreviews(), 5, 5)
	assert.Error(t, batch.Remove(0))
	assert.Error(t, batch.Remove(-1))
}

func TestBatch_DiscardDropsEverything(t *testing.T) {
	previews := newMemPreviews()
	batch := NewBatch(previews, 5, 5)
	require.NoError(t, batch.Add([]SelectedFile{jpeg("a.jpg"), jpeg("b.jpg")}))

	batch.Discard()
	assert.Equal(t, 0, batch.Len())
	assert.Equal(t, 0, previews.live())
}
