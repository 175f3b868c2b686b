package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileNotifier implements the Notifier interface by appending notifications
// to a log file. Useful alongside the terminal notifier when diagnosing flows
// after the fact.
type FileNotifier struct {
	filePath string
}

// NewFileNotifier creates a new FileNotifier.
// It ensures the directory for the log file exists.
func NewFileNotifier(filePath string) (*FileNotifier, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("notification log file path cannot be empty")
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for notification log file '%s': %w", dir, err)
	}

	return &FileNotifier{filePath: filePath}, nil
}

func (n *FileNotifier) Info(message string) {
	n.append("INFO", message)
}

func (n *FileNotifier) Error(message string) {
	n.append("ERROR", message)
}

func (n *FileNotifier) append(level, message string) {
	file, err := os.OpenFile(n.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("FileNotifier: Failed to open log file '%s': %v", n.filePath, err)
		return
	}
	defer file.Close()

	timestamp := time.Now().Format(time.RFC3339)
	if _, err := fmt.Fprintf(file, "%s [%s] %s\n", timestamp, level, message); err != nil {
		log.Printf("FileNotifier: Failed to write to log file '%s': %v", n.filePath, err)
	}
}
