package core

import (
	"path"
	"strings"
)

// Note is a Markdown document stored as a single remote file.
// An empty Category means the note sits directly under RootDir.
type Note struct {
	Category string
	Filename string
	Content  string
}

// Path returns the canonical remote path of the note.
func (n Note) Path() string {
	return NotePath(n.Category, n.Filename)
}

// NotePath builds /Notes/{category}/{filename}, or /Notes/{filename} without a category.
func NotePath(category, filename string) string {
	if category == "" {
		return path.Join(RootDir, filename)
	}
	return path.Join(RootDir, category, filename)
}

// CategoryPath builds /Notes/{name}.
func CategoryPath(name string) string {
	return path.Join(RootDir, name)
}

func hasNoteExt(name string) bool {
	return strings.HasSuffix(strings.TrimSuffix(name, "/"), NoteExt)
}

// validSegment reports whether s can be used as a single path segment.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\")
}

// ValidateCategory checks that name is a single-level category.
func ValidateCategory(name string) error {
	if !validSegment(name) {
		return invalidf("validate", "category %q must be a single non-empty path segment", name)
	}
	if hasNoteExt(name) {
		return invalidf("validate", "category %q must not end in %s", name, NoteExt)
	}
	return nil
}

// ValidateFilename checks that name is a single segment ending in .md.
func ValidateFilename(name string) error {
	if !validSegment(name) {
		return invalidf("validate", "filename %q must be a single non-empty path segment", name)
	}
	if !strings.HasSuffix(name, NoteExt) {
		return invalidf("validate", "filename %q must end in %s", name, NoteExt)
	}
	return nil
}

// validateNote checks the filename and, when set, the category.
func validateNote(filename, category string) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}
	if category != "" {
		return ValidateCategory(category)
	}
	return nil
}
