package taskstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// ErrMalformedFile is returned by Load when the persisted file cannot be
// parsed or contains invalid records.
var ErrMalformedFile = errors.New("malformed tasks file")

// MalformedFileError wraps ErrMalformedFile with the file path and cause.
type MalformedFileError struct {
	Path  string
	Cause error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed tasks file %s: %v", e.Path, e.Cause)
}

func (e *MalformedFileError) Unwrap() error {
	return ErrMalformedFile
}

// CompleteOutcome describes the result of a Complete call. Not-found and
// already-completed are normal outcomes, not errors.
type CompleteOutcome int

const (
	// Completed means the task was pending and is now completed.
	Completed CompleteOutcome = iota

	// NotFound means no task with the given ID exists.
	NotFound

	// AlreadyCompleted means the task was already completed; nothing changed.
	AlreadyCompleted
)

// Stats summarizes task counts.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// Store holds the in-memory task list and next-ID counter, backed by a
// single JSON file that is rewritten on every mutation. Tasks keep their
// insertion order; IDs increase monotonically and are never reused, even
// after deletion.
type Store struct {
	path   string
	tasks  []*Task
	nextID int
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for task timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store that persists to the given file path.
// Call Load to read any existing state.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fileState is the on-disk representation of the full store state.
type fileState struct {
	Tasks  []*Task `json:"tasks"`
	NextID int     `json:"next_id"`
}

// Load reads the persisted file into the store. A missing file leaves the
// store empty with the counter at 1 and is not an error. An unreadable or
// malformed file resets the store the same way and returns the problem as
// an advisory error: the store is usable either way, and callers are
// expected to report the message and continue.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.reset()
			return nil
		}
		s.reset()
		return fmt.Errorf("failed to read tasks file: %w", err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		s.reset()
		return &MalformedFileError{Path: s.path, Cause: err}
	}

	for _, task := range state.Tasks {
		if task == nil {
			s.reset()
			return &MalformedFileError{Path: s.path, Cause: errors.New("null task record")}
		}
		if err := task.Validate(); err != nil {
			s.reset()
			return &MalformedFileError{Path: s.path, Cause: err}
		}
	}

	s.tasks = state.Tasks
	s.nextID = state.NextID
	// next_id defaults to 1 when the field is absent
	if s.nextID < 1 {
		s.nextID = 1
	}

	return nil
}

// reset returns the store to the empty state with the counter at 1.
func (s *Store) reset() {
	s.tasks = nil
	s.nextID = 1
}

// Save writes the full store state to the file using atomic write: the
// state goes to a uniquely named temp file which is then renamed into
// place, so a racing invocation cannot clobber a half-written file.
// On failure the in-memory state is left as-is, including any mutation
// that triggered the save.
func (s *Store) Save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []*Task{}
	}

	data, err := json.MarshalIndent(fileState{Tasks: tasks, NextID: s.nextID}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpFile := fmt.Sprintf("%s.tmp-%s", s.path, uuid.NewString()[:8])
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		// Clean up temp file on rename failure
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Add creates a pending task with the next identifier, appends it, and
// persists the store. The new task is returned even when persistence
// fails; the caller decides what to do with the error.
func (s *Store) Add(title, description string) (*Task, error) {
	task := &Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}

	s.tasks = append(s.tasks, task)
	s.nextID++

	if err := s.Save(); err != nil {
		return task, err
	}
	return task, nil
}

// List returns tasks in insertion order. An empty filter returns all
// tasks; otherwise only tasks whose status equals the filter are
// returned. An empty result is not an error.
func (s *Store) List(filter Status) []*Task {
	if filter == "" {
		return s.tasks
	}

	var tasks []*Task
	for _, task := range s.tasks {
		if task.Status == filter {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Get returns the task with the given ID by linear scan.
// The second return value reports whether the task exists.
func (s *Store) Get(id int) (*Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return nil, false
}

// Complete marks the task with the given ID as completed and persists the
// store. Completing an already-completed task is a no-op: the existing
// CompletedAt is kept and the file is not rewritten.
func (s *Store) Complete(id int) (CompleteOutcome, error) {
	task, ok := s.Get(id)
	if !ok {
		return NotFound, nil
	}

	if task.Status == StatusCompleted {
		return AlreadyCompleted, nil
	}

	task.Complete(s.now())

	if err := s.Save(); err != nil {
		return Completed, err
	}
	return Completed, nil
}

// Delete removes the task with the given ID and persists the store.
// The remaining tasks keep their IDs and order; deleted IDs are never
// reused. Returns false when no task has the given ID.
func (s *Store) Delete(id int) (bool, error) {
	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, s.Save()
		}
	}
	return false, nil
}

// Stats counts tasks by a fresh scan; no counters are cached.
func (s *Store) Stats() Stats {
	stats := Stats{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Status == StatusCompleted {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
