// Package mirror pushes a local directory of Markdown files into the note store.
//
// The local layout mirrors the remote one: files directly under the root are
// uncategorized notes and files one directory down belong to the category named
// after that directory. Anything deeper is skipped.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/davnotes/pkg/core"
)

// DefaultIgnore skips hidden files and directories.
var DefaultIgnore = []string{".*", "**/.*"}

// Mirror copies notes from Root to the Service.
type Mirror struct {
	svc    *core.Service
	root   string
	ignore []string
	logger *slog.Logger
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mirror) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithIgnore replaces the doublestar patterns (relative, slash separated) that are skipped.
func WithIgnore(patterns ...string) Option {
	return func(m *Mirror) {
		m.ignore = patterns
	}
}

// New creates a Mirror of root.
func New(svc *core.Service, root string, opts ...Option) (*Mirror, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("mirror source not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("mirror source is not a directory: %s", abs)
	}

	m := &Mirror{
		svc:    svc,
		root:   abs,
		ignore: DefaultIgnore,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, p := range m.ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return m, nil
}

// Root returns the absolute local directory being mirrored.
func (m *Mirror) Root() string {
	return m.root
}

func (m *Mirror) ignored(rel string) bool {
	for _, p := range m.ignore {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// resolve maps a local path to its note coordinates.
func (m *Mirror) resolve(localPath string) (category, filename string, ok bool) {
	rel, err := filepath.Rel(m.root, localPath)
	if err != nil {
		return "", "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") || m.ignored(rel) {
		return "", "", false
	}

	parts := strings.Split(rel, "/")
	name := parts[len(parts)-1]
	if !strings.HasSuffix(name, core.NoteExt) {
		return "", "", false
	}
	switch len(parts) {
	case 1:
		return "", name, true
	case 2:
		return parts[0], name, true
	}
	return "", "", false
}

// Report summarizes an Import run.
type Report struct {
	Uploaded []string
	Skipped  []string
}

// Import uploads every note below the root, replacing remote copies.
// It keeps going past individual failures and returns them joined.
func (m *Mirror) Import(ctx context.Context) (Report, error) {
	var report Report
	var errs []error

	if _, err := m.svc.EnsureRoot(ctx); err != nil {
		return report, err
	}

	err := filepath.WalkDir(m.root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if p == m.root {
			return nil
		}
		rel, _ := filepath.Rel(m.root, p)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if m.ignored(rel) || strings.Count(rel, "/") >= 1 {
				return filepath.SkipDir
			}
			return nil
		}

		category, filename, ok := m.resolve(p)
		if !ok {
			report.Skipped = append(report.Skipped, rel)
			return nil
		}
		if err := m.push(ctx, p, category, filename); err != nil {
			errs = append(errs, err)
			return nil
		}
		report.Uploaded = append(report.Uploaded, rel)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}

	m.logger.Info("import finished", "root", m.root, "uploaded", len(report.Uploaded), "skipped", len(report.Skipped), "failed", len(errs))
	return report, errors.Join(errs...)
}

// push uploads one local file as a note.
func (m *Mirror) push(ctx context.Context, localPath, category, filename string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return core.NewError(core.KindLocalIO, "mirror", localPath, err)
	}
	if _, err := m.svc.CreateNote(ctx, filename, string(data), category); err != nil {
		return err
	}
	m.logger.Debug("note pushed", "category", category, "filename", filename)
	return nil
}

// remove deletes the remote copy of a note. A note that is already gone is not an error.
func (m *Mirror) remove(ctx context.Context, category, filename string) error {
	_, err := m.svc.DeleteNote(ctx, filename, category)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return err
	}
	m.logger.Debug("note removed", "category", category, "filename", filename)
	return nil
}
