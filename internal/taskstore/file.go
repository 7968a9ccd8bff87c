package taskstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/yarlson/go-todo/internal/logging"
)

// DefaultFileName is the storage file used when no path is given.
const DefaultFileName = ".todo_data.json"

// Option configures a FileStore.
type Option func(*options)

type options struct {
	format string
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// WithFormat forces a storage format instead of inferring it from the file extension.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithLogger sets the logger that receives load and save warnings.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces GenerateID.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// FileStore implements the Store interface on top of a single file.
// The whole collection is held in memory and rewritten to disk after every mutation.
// A FileStore is not safe for concurrent use.
type FileStore struct {
	path   string
	codec  codec
	lock   *flock.Flock
	logger *log.Logger
	now    func() time.Time
	newID  func() string

	tasks map[string]*Task
	order []string

	loadErr error
	saveErr error
}

var _ Store = (*FileStore)(nil)

// DefaultPath returns DefaultFileName in the current working directory.
func DefaultPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(wd, DefaultFileName)
}

// Open creates a FileStore backed by path (DefaultPath when empty) and loads
// any existing tasks. A missing file yields an empty store. An unreadable or
// invalid file is logged, reported by LoadErr and also yields an empty store.
// The only error returned is for an unsupported format option.
func Open(path string, opts ...Option) (*FileStore, error) {
	o := options{
		now:   time.Now,
		newID: GenerateID,
	}
	for _, opt := range opts {
		opt(&o)
	}

	format, err := ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultPath()
	}
	if format == "" {
		format = FormatForPath(path)
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}

	s := &FileStore{
		path:   path,
		codec:  codecFor(format),
		lock:   flock.New(path + ".lock"),
		logger: o.logger,
		now:    o.now,
		newID:  o.newID,
		tasks:  make(map[string]*Task),
	}
	s.load()
	return s, nil
}

// Path returns the storage file path.
func (s *FileStore) Path() string {
	return s.path
}

// Format returns the storage format in use.
func (s *FileStore) Format() string {
	return s.codec.format()
}

// LoadErr returns the error that caused existing state to be discarded at Open, if any.
func (s *FileStore) LoadErr() error {
	return s.loadErr
}

// LastSaveErr returns the error from the most recent save, or nil if it succeeded.
// A failed save never rolls back the in-memory change.
func (s *FileStore) LastSaveErr() error {
	return s.saveErr
}

// Add creates a new PENDING task and persists the collection.
func (s *FileStore) Add(title, description string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, errEmptyTitle()
	}
	if err := checkUTF8("title", title); err != nil {
		return Task{}, err
	}
	if err := checkUTF8("description", description); err != nil {
		return Task{}, err
	}

	now := s.clock()
	task := &Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.save()

	return *task, nil
}

// List returns copies of all tasks in insertion order.
func (s *FileStore) List() []Task {
	tasks := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, *s.tasks[id])
	}
	return tasks
}

// Get retrieves a copy of the task with the given ID.
func (s *FileStore) Get(id string) (Task, bool) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

// Update applies upd to the task and persists the collection.
// The title is validated before anything is changed.
func (s *FileStore) Update(id string, upd TaskUpdate) (Task, bool, error) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false, nil
	}

	var title string
	if upd.Title != nil {
		title = strings.TrimSpace(*upd.Title)
		if title == "" {
			return Task{}, true, errEmptyTitle()
		}
		if err := checkUTF8("title", title); err != nil {
			return Task{}, true, err
		}
	}
	if upd.Description != nil {
		if err := checkUTF8("description", *upd.Description); err != nil {
			return Task{}, true, err
		}
	}

	if upd.Title != nil {
		task.Title = title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	s.touch(task)
	s.save()

	return *task, true, nil
}

// Delete removes the task with the given ID and persists the collection.
func (s *FileStore) Delete(id string) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}

	delete(s.tasks, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.save()

	return true
}

// SetComplete marks the task COMPLETE. Calling it on a completed task
// still refreshes UpdatedAt.
func (s *FileStore) SetComplete(id string) bool {
	_, ok := s.setStatus(id, func(TaskStatus) TaskStatus { return StatusComplete })
	return ok
}

// SetIncomplete marks the task PENDING.
func (s *FileStore) SetIncomplete(id string) bool {
	_, ok := s.setStatus(id, func(TaskStatus) TaskStatus { return StatusPending })
	return ok
}

// ToggleStatus flips the task between PENDING and COMPLETE.
func (s *FileStore) ToggleStatus(id string) (TaskStatus, bool) {
	return s.setStatus(id, TaskStatus.Toggled)
}

func (s *FileStore) setStatus(id string, next func(TaskStatus) TaskStatus) (TaskStatus, bool) {
	task, ok := s.tasks[id]
	if !ok {
		return "", false
	}

	task.Status = next(task.Status)
	s.touch(task)
	s.save()

	return task.Status, true
}

// clock returns the current time without its monotonic reading, so that
// in-memory values compare equal to values read back from disk.
func (s *FileStore) clock() time.Time {
	return s.now().Round(0)
}

// touch refreshes UpdatedAt, keeping it strictly increasing.
func (s *FileStore) touch(task *Task) {
	now := s.clock()
	if !now.After(task.UpdatedAt) {
		now = task.UpdatedAt.Add(time.Nanosecond)
	}
	task.UpdatedAt = now
}

// load reads the storage file into memory.
func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("No task file yet, starting empty", "path", s.path)
			return
		}
		s.discard(fmt.Errorf("failed to read task file: %w", err))
		return
	}

	tasks, err := decodeTasks(s.codec, data)
	if err != nil {
		s.discard(err)
		return
	}

	for _, t := range tasks {
		if _, dup := s.tasks[t.ID]; dup {
			s.discard(fmt.Errorf("duplicate task id %q", t.ID))
			return
		}
		task := t
		s.tasks[task.ID] = &task
		s.order = append(s.order, task.ID)
	}

	s.logger.Debug("Loaded tasks", "path", s.path, "count", len(s.order))
}

// discard drops partially loaded state after a load failure.
func (s *FileStore) discard(err error) {
	s.tasks = make(map[string]*Task)
	s.order = nil
	s.loadErr = err
	s.logger.Warn("Could not load tasks, starting with an empty list", "path", s.path, "err", err)
}

// save writes the full collection to disk. Failures are logged and
// recorded in saveErr; the in-memory state is kept either way.
func (s *FileStore) save() {
	s.saveErr = s.writeAll()
	if s.saveErr != nil {
		s.logger.Warn("Could not save tasks", "path", s.path, "err", s.saveErr)
		return
	}
	s.logger.Debug("Saved tasks", "path", s.path, "count", len(s.order))
}

func (s *FileStore) writeAll() error {
	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock task file: %w", err)
	}
	if !locked {
		return fmt.Errorf("task file is locked by another process: %s", s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := encodeTasks(s.codec, s.List())
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
