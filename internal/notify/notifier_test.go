package notify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalNotifier_Formats(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifierTo(&buf)

	n.Info("Equipment created successfully!")
	n.Error("Failed to upload images")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Equipment created successfully!", lines[0])
	assert.Equal(t, "ERROR: Failed to upload images", lines[1])
}

func TestFileNotifier_AppendsWithLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notifications.log")
	n, err := NewFileNotifier(path)
	require.NoError(t, err)

	n.Info("first")
	n.Error("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO] first")
	assert.Contains(t, lines[1], "[ERROR] second")
}

func TestFileNotifier_RejectsEmptyPath(t *testing.T) {
	_, err := NewFileNotifier("   ")
	assert.Error(t, err)
}

type recordingNotifier struct {
	infos  []string
	errors []string
}

func (r *recordingNotifier) Info(message string)  { r.infos = append(r.infos, message) }
func (r *recordingNotifier) Error(message string) { r.errors = append(r.errors, message) }

func TestCompositeNotifier_FansOut(t *testing.T) {
	first := &recordingNotifier{}
	second := &recordingNotifier{}
	composite := NewCompositeNotifier(first)
	composite.AddNotifier(second)

	composite.Info("hello")
	composite.Error("oops")

	assert.Equal(t, []string{"hello"}, first.infos)
	assert.Equal(t, []string{"hello"}, second.infos)
	assert.Equal(t, []string{"oops"}, first.errors)
	assert.Equal(t, []string{"oops"}, second.errors)
}
