package core

import (
	"context"
	"os"
)

// withTempFile creates a private temporary file, passes its path to fn and
// removes the file on every exit path.
func (s *Service) withTempFile(op string, fn func(localPath string) error) error {
	f, err := os.CreateTemp(s.tempDir, "davnotes-*.tmp")
	if err != nil {
		return &Error{Kind: KindLocalIO, Op: op, Err: err}
	}
	name := f.Name()
	defer os.Remove(name)

	if err := f.Close(); err != nil {
		return &Error{Kind: KindLocalIO, Op: op, Path: name, Err: err}
	}
	return fn(name)
}

// upload stages content in a temporary file and sends it to remote.
func (s *Service) upload(ctx context.Context, op, remote, content string) error {
	return s.withTempFile(op, func(localPath string) error {
		if err := os.WriteFile(localPath, []byte(content), 0600); err != nil {
			return &Error{Kind: KindLocalIO, Op: op, Path: localPath, Err: err}
		}
		return s.client.Upload(ctx, remote, localPath)
	})
}

// download fetches remote into a temporary file and returns its text.
func (s *Service) download(ctx context.Context, op, remote string) (string, error) {
	var content string
	err := s.withTempFile(op, func(localPath string) error {
		if err := s.client.Download(ctx, remote, localPath); err != nil {
			return err
		}
		data, err := os.ReadFile(localPath)
		if err != nil {
			return &Error{Kind: KindLocalIO, Op: op, Path: localPath, Err: err}
		}
		content = string(data)
		return nil
	})
	return content, err
}
