// Package taskstore persists pet checklists in a flat CSV table.
//
// Each row is (pet_id, task_id, description, status) with no header. Every
// operation reads or rewrites the whole file; there is no index.
package taskstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"daycare/internal/task"
)

// columns is the fixed arity of a store row.
const columns = 4

var (
	// ErrCorruptStore is returned when a row cannot be parsed.
	ErrCorruptStore = errors.New("corrupt store")

	// ErrInvalidInput is returned when a task is rejected before writing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO is returned when the store file cannot be read or written.
	ErrIO = errors.New("store io failure")
)

// Store is a handle to a task table on disk.
type Store struct {
	path   string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New returns a Store backed by the file at path. The file is not touched
// until the first operation.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the tasks of petID in file order.
// A missing store file is created empty.
func (s *Store) Load(petID string) ([]task.Task, error) {
	rows, err := s.readAll()
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	for _, r := range rows {
		if r.PetID == petID {
			tasks = append(tasks, r)
		}
	}
	s.logger.Debug("loaded tasks", "pet", petID, "count", len(tasks), "rows", len(rows))
	return tasks, nil
}

// Append adds one row. The caller guarantees t.ID is unused for t.PetID.
func (s *Store) Append(t task.Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description required", ErrInvalidInput)
	}
	if t.PetID == "" || t.ID == "" {
		return fmt.Errorf("%w: pet id and task id required", ErrInvalidInput)
	}
	if t.Status != task.Complete {
		t.Status = task.Incomplete
	}

	if err := s.ensureFile(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(encodeRow(t)); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.logger.Debug("appended task", "pet", t.PetID, "task", t.ID)
	return nil
}

// Save rewrites the rows of petID from tasks. Stored rows of petID whose
// task ID is absent from tasks are dropped. Rows of other pets pass through.
func (s *Store) Save(petID string, tasks []task.Task) error {
	rows, err := s.readAll()
	if err != nil {
		return err
	}

	byID := make(map[string]task.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	kept := rows[:0]
	dropped := 0
	for _, r := range rows {
		if r.PetID != petID {
			kept = append(kept, r)
			continue
		}
		t, ok := byID[r.ID]
		if !ok {
			dropped++
			continue
		}
		r.Status = t.Status
		if t.Description != "" {
			r.Description = t.Description
		}
		kept = append(kept, r)
	}

	if err := s.writeAll(kept); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "pet", petID, "rows", len(kept), "dropped", dropped)
	return nil
}

// Delete removes the rows of petID whose task ID is in ids.
func (s *Store) Delete(petID string, ids []string) error {
	remove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}

	return s.rewrite(func(r task.Task) bool {
		if r.PetID != petID {
			return true
		}
		_, gone := remove[r.ID]
		return !gone
	})
}

// WipePet removes every row of petID.
func (s *Store) WipePet(petID string) error {
	return s.rewrite(func(r task.Task) bool {
		return r.PetID != petID
	})
}

// rewrite keeps the rows for which keep returns true.
func (s *Store) rewrite(keep func(task.Task) bool) error {
	rows, err := s.readAll()
	if err != nil {
		return err
	}

	kept := rows[:0]
	for _, r := range rows {
		if keep(r) {
			kept = append(kept, r)
		}
	}

	if err := s.writeAll(kept); err != nil {
		return err
	}
	s.logger.Debug("rewrote store", "before", len(rows), "after", len(kept))
	return nil
}

func (s *Store) readAll() ([]task.Task, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.ensureFile(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Arity is checked by decodeRow so the error carries ErrCorruptStore.
	r.FieldsPerRecord = -1

	var rows []task.Task
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		line, _ := r.FieldPos(0)
		t, err := decodeRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptStore, line, err)
		}
		rows = append(rows, t)
	}
	return rows, nil
}

// writeAll replaces the store with rows through a temp file and rename.
func (s *Store) writeAll(rows []task.Task) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	for _, r := range rows {
		if err := w.Write(encodeRow(r)); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// ensureFile creates an empty store (and its directory) if none exists.
func (s *Store) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
