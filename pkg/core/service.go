package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Service handles the note and category operations on top of a FileClient.
// It holds no note state of its own; every call goes to the remote store.
type Service struct {
	client  FileClient
	logger  *slog.Logger
	tempDir string

	mu       sync.RWMutex
	calls    map[string]int
	failures int
	lastErr  string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used for remote calls.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTempDir sets the directory used for transfer files. Defaults to os.TempDir.
func WithTempDir(dir string) ServiceOption {
	return func(s *Service) {
		s.tempDir = dir
	}
}

// NewService creates a new Service.
func NewService(client FileClient, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		logger: slog.New(slog.DiscardHandler),
		calls:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Client returns the underlying file client.
func (s *Service) Client() FileClient {
	return s.client
}

// finish records the outcome of op and normalizes err into an *Error.
func (s *Service) finish(op, p string, err error) error {
	err = wrap(op, p, err)

	s.mu.Lock()
	s.calls[op]++
	if err != nil {
		s.failures++
		s.lastErr = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("operation failed", "op", op, "path", p, "kind", KindOf(err), "error", err)
		return err
	}
	s.logger.Debug("operation done", "op", op, "path", p)
	return nil
}

// ensureDir creates p, treating an existing directory as success.
func (s *Service) ensureDir(ctx context.Context, p string) error {
	err := s.client.Mkdir(ctx, p)
	if err != nil && errors.Is(err, ErrExists) {
		s.logger.Debug("directory already exists", "path", p)
		return nil
	}
	return err
}

// requireExists reports not_found when p is missing.
func (s *Service) requireExists(ctx context.Context, p string) error {
	exists, err := s.client.Exists(ctx, p)
	if err != nil {
		return err
	}
	if !exists {
		return NewError(KindNotFound, "exists", p, ErrNotFound)
	}
	return nil
}

// CheckConnection verifies that the store accepts the configured credentials.
func (s *Service) CheckConnection(ctx context.Context) (string, error) {
	if err := s.finish("check_connection", "", s.client.Check(ctx)); err != nil {
		return "", err
	}
	return "WebDAV login successful!", nil
}

// EnsureRoot creates the notes root if it is missing.
func (s *Service) EnsureRoot(ctx context.Context) (string, error) {
	if err := s.finish("ensure_notes_root", RootDir, s.ensureDir(ctx, RootDir)); err != nil {
		return "", err
	}
	return RootDir + " folder exists or created successfully.", nil
}

// list returns the sorted names of entries under dir accepted by keep.
func (s *Service) list(ctx context.Context, op, dir string, keep func(Entry) bool) ([]string, error) {
	entries, err := s.client.List(ctx, dir)
	if err := s.finish(op, dir, err); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListUncategorized lists the notes directly under the root.
func (s *Service) ListUncategorized(ctx context.Context) ([]string, error) {
	return s.list(ctx, "list_uncategorized_notes", RootDir, Entry.IsNote)
}

// ListCategories lists the directories under the root.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.list(ctx, "list_categories", RootDir, Entry.IsCategory)
}

// ListNotes lists the notes in a category.
func (s *Service) ListNotes(ctx context.Context, category string) ([]string, error) {
	const op = "list_notes_in_category"
	if err := ValidateCategory(category); err != nil {
		return nil, s.finish(op, "", err)
	}
	return s.list(ctx, op, CategoryPath(category), Entry.IsNote)
}

// ReadNote returns the full content of a note.
func (s *Service) ReadNote(ctx context.Context, filename, category string) (string, error) {
	const op = "read_note"
	if err := validateNote(filename, category); err != nil {
		return "", s.finish(op, "", err)
	}
	p := NotePath(category, filename)
	content, err := s.download(ctx, op, p)
	if err := s.finish(op, p, err); err != nil {
		return "", err
	}
	return content, nil
}

// CreateNote uploads a new note, creating its category directory when needed.
func (s *Service) CreateNote(ctx context.Context, filename, content, category string) (string, error) {
	const op = "create_note"
	if err := validateNote(filename, category); err != nil {
		return "", s.finish(op, "", err)
	}
	if category != "" {
		dir := CategoryPath(category)
		if err := s.ensureDir(ctx, dir); err != nil {
			return "", s.finish(op, dir, err)
		}
	}
	p := NotePath(category, filename)
	if err := s.finish(op, p, s.upload(ctx, op, p, content)); err != nil {
		return "", err
	}
	return "Note created successfully: " + p, nil
}

// EditNote replaces the content of a note. An existing file is removed before
// the upload so the result is a full overwrite.
func (s *Service) EditNote(ctx context.Context, filename, content, category string) (string, error) {
	const op = "edit_note"
	if err := validateNote(filename, category); err != nil {
		return "", s.finish(op, "", err)
	}
	p := NotePath(category, filename)
	exists, err := s.client.Exists(ctx, p)
	if err != nil {
		return "", s.finish(op, p, err)
	}
	if exists {
		if err := s.client.Delete(ctx, p); err != nil {
			return "", s.finish(op, p, err)
		}
	}
	if err := s.finish(op, p, s.upload(ctx, op, p, content)); err != nil {
		return "", err
	}
	return "Note updated successfully: " + p, nil
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, filename, category string) (string, error) {
	const op = "delete_note"
	if err := validateNote(filename, category); err != nil {
		return "", s.finish(op, "", err)
	}
	p := NotePath(category, filename)
	if err := s.finish(op, p, s.client.Delete(ctx, p)); err != nil {
		return "", err
	}
	return "Note deleted successfully: " + p, nil
}

// RenameNote moves a note to a new filename within the same category,
// replacing any note already using that name.
func (s *Service) RenameNote(ctx context.Context, filename, newFilename, category string) (string, error) {
	const op = "rename_note"
	if err := validateNote(filename, category); err != nil {
		return "", s.finish(op, "", err)
	}
	if err := ValidateFilename(newFilename); err != nil {
		return "", s.finish(op, "", err)
	}
	src := NotePath(category, filename)
	dst := NotePath(category, newFilename)
	if src == dst {
		// Servers refuse a MOVE onto itself; an existing note is already in place.
		if err := s.finish(op, src, s.requireExists(ctx, src)); err != nil {
			return "", err
		}
		return fmt.Sprintf("Note renamed successfully: %s → %s", src, dst), nil
	}
	if err := s.finish(op, src, s.client.Move(ctx, src, dst, true)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note renamed successfully: %s → %s", src, dst), nil
}

// CreateCategory creates a category directory. An existing category is left untouched.
func (s *Service) CreateCategory(ctx context.Context, name string) (string, error) {
	const op = "create_category"
	if err := ValidateCategory(name); err != nil {
		return "", s.finish(op, "", err)
	}
	p := CategoryPath(name)
	if err := s.finish(op, p, s.ensureDir(ctx, p)); err != nil {
		return "", err
	}
	return "Category created successfully: " + p, nil
}

// RenameCategory moves a category directory. The target must not exist.
func (s *Service) RenameCategory(ctx context.Context, oldName, newName string) (string, error) {
	const op = "edit_category"
	if err := ValidateCategory(oldName); err != nil {
		return "", s.finish(op, "", err)
	}
	if err := ValidateCategory(newName); err != nil {
		return "", s.finish(op, "", err)
	}
	src := CategoryPath(oldName)
	dst := CategoryPath(newName)
	if src == dst {
		err := s.requireExists(ctx, src)
		if err == nil {
			err = NewError(KindExists, op, dst, ErrExists)
		}
		return "", s.finish(op, src, err)
	}
	if err := s.finish(op, src, s.client.Move(ctx, src, dst, false)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Category renamed successfully: %s → %s", src, dst), nil
}

// DeleteCategory removes a category and every note in it.
func (s *Service) DeleteCategory(ctx context.Context, name string) (string, error) {
	const op = "delete_category"
	if err := ValidateCategory(name); err != nil {
		return "", s.finish(op, "", err)
	}
	p := CategoryPath(name)
	if err := s.finish(op, p, s.client.Delete(ctx, p)); err != nil {
		return "", err
	}
	return "Category deleted successfully: " + p, nil
}

// SearchNotes returns the notes whose relative path ("note.md" or
// "category/note.md") matches the doublestar pattern.
func (s *Service) SearchNotes(ctx context.Context, pattern string) ([]string, error) {
	const op = "search_notes"
	if !doublestar.ValidatePattern(pattern) {
		return nil, s.finish(op, "", invalidf(op, "bad pattern %q", pattern))
	}

	entries, err := s.client.List(ctx, RootDir)
	if err != nil {
		return nil, s.finish(op, RootDir, err)
	}

	matches := []string{}
	match := func(rel string) {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			matches = append(matches, rel)
		}
	}
	for _, e := range entries {
		switch {
		case e.IsNote():
			match(e.Name)
		case e.IsCategory():
			dir := CategoryPath(e.Name)
			children, err := s.client.List(ctx, dir)
			if err != nil {
				return nil, s.finish(op, dir, err)
			}
			for _, c := range children {
				if c.IsNote() {
					match(e.Name + "/" + c.Name)
				}
			}
		}
	}
	sort.Strings(matches)
	return matches, s.finish(op, RootDir, nil)
}
