package sink

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/internal/utils"
)

// FileWriter appends one line per Funded entry to a text file.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
}

// OpenFileWriter opens path for appending, creating it if needed.
func OpenFileWriter(path string) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &FileWriter{file: f}, nil
}

func (w *FileWriter) Name() string {
	return "file"
}

// WriteFunded appends "<address> => <btc> BTC" and syncs it to disk.
func (w *FileWriter) WriteFunded(_ context.Context, entry model.ResultEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.WriteString(FormatLine(entry) + "\n"); err != nil {
		return fmt.Errorf("append %s: %w", entry.Task.Address, err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("sync output: %w", err)
	}
	return nil
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// FormatLine renders the output line for a Funded entry.
func FormatLine(entry model.ResultEntry) string {
	return fmt.Sprintf("%s => %s BTC", entry.Task.Address, utils.FormatBTC(entry.Record.CurrentSatoshi))
}
