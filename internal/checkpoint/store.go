// Package checkpoint persists how far a run has progressed so that it can resume.
package checkpoint

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrCheckpointWrite wraps failures to persist the cursor.
var ErrCheckpointWrite = errors.New("checkpoint write failed")

// ErrCorrupt is returned by ReadCursor when the file does not hold an integer.
var ErrCorrupt = errors.New("checkpoint file is corrupt")

// Store tracks completed task indices and persists the contiguous frontier:
// the highest index at or below which every task has completed. The file
// therefore never claims work that has not finished.
//
// A Store is not safe for concurrent use; a single goroutine owns it.
type Store struct {
	path string
	// base is the first index of this run; everything below it was done by an earlier run.
	base int
	// next is the lowest index not yet known to be complete.
	next int
	// done holds completed indices >= next.
	done map[int]struct{}
	// persisted is the cursor last written to disk, -1 when nothing was written.
	persisted int
}

// Open loads path and returns a Store positioned at its resume offset.
// A missing, empty or corrupt file starts from zero; the read error is
// returned alongside a usable Store so callers can log it.
func Open(path string) (*Store, error) {
	offset, err := ReadResumeOffset(path)
	return &Store{
		path:      path,
		base:      offset,
		next:      offset,
		done:      make(map[int]struct{}),
		persisted: offset - 1,
	}, err
}

// ReadResumeOffset returns the index of the first task still to be done:
// cursor+1, or 0 when there is no usable checkpoint. A missing file is not an
// error; a corrupt or unreadable file yields 0 together with the reason.
func ReadResumeOffset(path string) (int, error) {
	cursor, err := ReadCursor(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	return cursor + 1, nil
}

// ReadCursor returns the persisted cursor.
func ReadCursor(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read checkpoint %s: %w", path, err)
	}
	text := strings.TrimSpace(string(raw))
	cursor, err := strconv.Atoi(text)
	// MaxInt has no successor to resume from
	if err != nil || cursor < 0 || cursor == math.MaxInt {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, text)
	}
	return cursor, nil
}

// ResumeOffset is the first index this run has to process.
func (s *Store) ResumeOffset() int {
	return s.base
}

// Cursor is the last persisted cursor, -1 when none.
func (s *Store) Cursor() int {
	return s.persisted
}

// Pending reports whether the in-memory frontier is ahead of the file.
func (s *Store) Pending() bool {
	return s.next-1 > s.persisted
}

// RecordCompletion marks index complete and persists the frontier when it
// advances. It reports whether the persisted cursor moved. Indices below the
// resume offset, or already recorded, are ignored.
func (s *Store) RecordCompletion(index int) (bool, error) {
	if index < s.next {
		return false, nil
	}
	s.done[index] = struct{}{}
	for {
		if _, ok := s.done[s.next]; !ok {
			break
		}
		delete(s.done, s.next)
		s.next++
	}
	if !s.Pending() {
		return false, nil
	}
	if err := s.flush(); err != nil {
		return false, err
	}
	return true, nil
}

// Close persists a frontier left pending by an earlier failed write.
func (s *Store) Close() error {
	if !s.Pending() {
		return nil
	}
	return s.flush()
}

func (s *Store) flush() error {
	cursor := s.next - 1
	if err := writeAtomic(s.path, strconv.Itoa(cursor)); err != nil {
		return fmt.Errorf("%w: %w", ErrCheckpointWrite, err)
	}
	s.persisted = cursor
	return nil
}

func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
