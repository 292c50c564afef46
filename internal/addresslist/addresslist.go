// Package addresslist reads the newline-delimited address input.
package addresslist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

// ErrSourceUnavailable is returned when the address source cannot be read.
var ErrSourceUnavailable = errors.New("address source unavailable")

const maxLineBytes = 1 << 16

// Load reads addresses from path, one per line. Surrounding whitespace is
// trimmed and blank lines are skipped.
func Load(path string) ([]model.Address, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	addresses, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	return addresses, nil
}

// Read parses addresses from r.
func Read(r io.Reader) ([]model.Address, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var addresses []model.Address
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addresses = append(addresses, model.Address(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}

// Tasks numbers addresses from offset onward.
func Tasks(addresses []model.Address, offset int) []model.ResolutionTask {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(addresses) {
		return nil
	}
	tasks := make([]model.ResolutionTask, 0, len(addresses)-offset)
	for i := offset; i < len(addresses); i++ {
		tasks = append(tasks, model.ResolutionTask{Index: i, Address: addresses[i]})
	}
	return tasks
}
