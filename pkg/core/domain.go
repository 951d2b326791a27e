// Package core holds the note store domain: paths, the remote file port and the Service.
package core

import "time"

// RootDir is the remote directory every note and category lives under.
const RootDir = "/Notes"

// NoteExt is the suffix that marks an entry as a note.
const NoteExt = ".md"

// Entry is a single row of a remote directory listing.
type Entry struct {
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// IsNote reports whether the entry is a Markdown file.
func (e Entry) IsNote() bool {
	return !e.IsDir && hasNoteExt(e.Name)
}

// IsCategory reports whether the entry is a directory usable as a category.
func (e Entry) IsCategory() bool {
	return e.IsDir && !hasNoteExt(e.Name)
}
