package core

import "context"

// FileClient defines the contract for the remote hierarchical file store.
// Adhering to this interface keeps the Service independent of the transport
// (WebDAV, in-memory, etc). Paths are absolute and slash separated.
//
// Implementations should report classified failures as *Error so that
// not_found, exists and auth conditions survive the trip through the Service.
type FileClient interface {
	// Check verifies that the store is reachable and the credentials are accepted.
	Check(ctx context.Context) error

	// List returns the direct children of dir.
	List(ctx context.Context, dir string) ([]Entry, error)

	// Exists reports whether a file or directory exists at p.
	Exists(ctx context.Context, p string) (bool, error)

	// Mkdir creates a single directory. An existing p is either reported as a
	// KindExists error or treated as success, depending on the store.
	Mkdir(ctx context.Context, p string) error

	// Download copies the remote file to localPath.
	Download(ctx context.Context, remote, localPath string) error

	// Upload copies localPath to the remote path, replacing any existing file.
	Upload(ctx context.Context, remote, localPath string) error

	// Delete removes a file, or a directory and everything below it.
	Delete(ctx context.Context, p string) error

	// Move renames src to dst. Without overwrite an existing dst is a KindExists error.
	Move(ctx context.Context, src, dst string, overwrite bool) error
}
