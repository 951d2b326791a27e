// Package webdav implements core.FileClient against a WebDAV server
// (Nextcloud, ownCloud, Apache mod_dav, ...) using gowebdav.
package webdav

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/studio-b12/gowebdav"

	"github.com/aretw0/davnotes/pkg/core"
)

// Config holds the configuration for the WebDAV client.
type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration // Zero keeps the transport default.
	Logger   *slog.Logger
}

// Client implements core.FileClient over WebDAV.
type Client struct {
	dav    *gowebdav.Client
	config Config
}

// NewClient creates a WebDAV-backed file client. No request is made until the first call.
func NewClient(config Config) *Client {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	dav := gowebdav.NewClient(config.URL, config.Username, config.Password)
	if config.Timeout > 0 {
		dav.SetTimeout(config.Timeout)
	}
	return &Client{dav: dav, config: config}
}

func (c *Client) begin(ctx context.Context, op, p string) error {
	if err := ctx.Err(); err != nil {
		return core.NewError(core.KindConnection, op, p, err)
	}
	c.config.Logger.Debug("webdav request", "op", op, "path", p)
	return nil
}

// Check implements core.FileClient.
func (c *Client) Check(ctx context.Context) error {
	if err := c.begin(ctx, "check", "/"); err != nil {
		return err
	}
	return classify("check", "/", c.dav.Connect())
}

// List implements core.FileClient.
func (c *Client) List(ctx context.Context, dir string) ([]core.Entry, error) {
	if err := c.begin(ctx, "list", dir); err != nil {
		return nil, err
	}
	infos, err := c.dav.ReadDir(dir)
	if err != nil {
		return nil, classify("list", dir, err)
	}
	entries := make([]core.Entry, 0, len(infos))
	for _, fi := range infos {
		entries = append(entries, core.Entry{
			Name:    fi.Name(),
			IsDir:   fi.IsDir(),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}
	return entries, nil
}

// Exists implements core.FileClient.
func (c *Client) Exists(ctx context.Context, p string) (bool, error) {
	if err := c.begin(ctx, "exists", p); err != nil {
		return false, err
	}
	if _, err := c.dav.Stat(p); err != nil {
		if gowebdav.IsErrNotFound(err) {
			return false, nil
		}
		return false, classify("exists", p, err)
	}
	return true, nil
}

// Mkdir implements core.FileClient.
// Servers answer MKCOL on an existing collection with 405, which gowebdav
// already folds into success, so an existing directory may not be reported.
func (c *Client) Mkdir(ctx context.Context, p string) error {
	if err := c.begin(ctx, "mkdir", p); err != nil {
		return err
	}
	return classify("mkdir", p, c.dav.Mkdir(p, 0755))
}

// Download implements core.FileClient.
func (c *Client) Download(ctx context.Context, remote, localPath string) error {
	if err := c.begin(ctx, "download", remote); err != nil {
		return err
	}
	stream, err := c.dav.ReadStream(remote)
	if err != nil {
		return classify("download", remote, err)
	}
	defer stream.Close()

	f, err := os.OpenFile(localPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return core.NewError(core.KindLocalIO, "download", localPath, err)
	}
	if _, err := io.Copy(f, stream); err != nil {
		_ = f.Close()
		return core.NewError(core.KindConnection, "download", remote, err)
	}
	if err := f.Close(); err != nil {
		return core.NewError(core.KindLocalIO, "download", localPath, err)
	}
	return nil
}

// Upload implements core.FileClient.
func (c *Client) Upload(ctx context.Context, remote, localPath string) error {
	if err := c.begin(ctx, "upload", remote); err != nil {
		return err
	}
	f, err := os.Open(localPath)
	if err != nil {
		return core.NewError(core.KindLocalIO, "upload", localPath, err)
	}
	defer f.Close()

	return classify("upload", remote, c.dav.WriteStream(remote, f, 0644))
}

// Delete implements core.FileClient.
// DELETE on a missing resource is reported as success by gowebdav, so the
// resource is looked up first to surface not_found.
func (c *Client) Delete(ctx context.Context, p string) error {
	if err := c.begin(ctx, "delete", p); err != nil {
		return err
	}
	if _, err := c.dav.Stat(p); err != nil {
		return classify("delete", p, err)
	}
	return classify("delete", p, c.dav.RemoveAll(p))
}

// Move implements core.FileClient.
func (c *Client) Move(ctx context.Context, src, dst string, overwrite bool) error {
	if err := c.begin(ctx, "move", src); err != nil {
		return err
	}
	if !overwrite {
		// Some servers ignore "Overwrite: F" on collections.
		if _, err := c.dav.Stat(dst); err == nil {
			return core.NewError(core.KindExists, "move", dst, core.ErrExists)
		} else if !gowebdav.IsErrNotFound(err) {
			return classify("move", dst, err)
		}
	}
	return classify("move", src, c.dav.Rename(src, dst, overwrite))
}

var _ core.FileClient = (*Client)(nil)
