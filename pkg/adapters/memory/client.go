// Package memory implements core.FileClient in process memory.
// It follows WebDAV semantics closely enough to stand in for a real server
// in tests and offline dry runs.
package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/davnotes/pkg/core"
)

type node struct {
	dir     bool
	data    []byte
	modTime time.Time
}

// Client is an in-memory file tree.
type Client struct {
	mu      sync.RWMutex
	nodes   map[string]*node
	offline bool
}

// NewClient creates an empty tree containing only "/".
func NewClient() *Client {
	return &Client{
		nodes: map[string]*node{"/": {dir: true, modTime: time.Now()}},
	}
}

// SetOffline makes every call fail with a connection error until reset.
func (c *Client) SetOffline(offline bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offline = offline
}

func clean(p string) string {
	return path.Clean("/" + p)
}

func (c *Client) guard(ctx context.Context, op, p string) error {
	if err := ctx.Err(); err != nil {
		return core.NewError(core.KindConnection, op, p, err)
	}
	if c.offline {
		return core.NewError(core.KindConnection, op, p, errors.New("store is offline"))
	}
	return nil
}

func notFound(op, p string) error {
	return core.NewError(core.KindNotFound, op, p, core.ErrNotFound)
}

func conflict(op, p string) error {
	return core.NewError(core.KindRemote, op, p, fmt.Errorf("parent of %s does not exist", p))
}

func (c *Client) parentIsDir(p string) bool {
	n, ok := c.nodes[path.Dir(p)]
	return ok && n.dir
}

// Check implements core.FileClient.
func (c *Client) Check(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guard(ctx, "check", "/")
}

// List implements core.FileClient.
func (c *Client) List(ctx context.Context, dir string) ([]core.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir = clean(dir)
	if err := c.guard(ctx, "list", dir); err != nil {
		return nil, err
	}
	n, ok := c.nodes[dir]
	if !ok || !n.dir {
		return nil, notFound("list", dir)
	}

	var entries []core.Entry
	for p, child := range c.nodes {
		if p == dir || path.Dir(p) != dir {
			continue
		}
		entries = append(entries, core.Entry{
			Name:    path.Base(p),
			IsDir:   child.dir,
			Size:    int64(len(child.data)),
			ModTime: child.modTime,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Exists implements core.FileClient.
func (c *Client) Exists(ctx context.Context, p string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p = clean(p)
	if err := c.guard(ctx, "exists", p); err != nil {
		return false, err
	}
	_, ok := c.nodes[p]
	return ok, nil
}

// Mkdir implements core.FileClient.
func (c *Client) Mkdir(ctx context.Context, p string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p = clean(p)
	if err := c.guard(ctx, "mkdir", p); err != nil {
		return err
	}
	if _, ok := c.nodes[p]; ok {
		return core.NewError(core.KindExists, "mkdir", p, core.ErrExists)
	}
	if !c.parentIsDir(p) {
		return conflict("mkdir", p)
	}
	c.nodes[p] = &node{dir: true, modTime: time.Now()}
	return nil
}

// Download implements core.FileClient.
func (c *Client) Download(ctx context.Context, remote, localPath string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	remote = clean(remote)
	if err := c.guard(ctx, "download", remote); err != nil {
		return err
	}
	n, ok := c.nodes[remote]
	if !ok || n.dir {
		return notFound("download", remote)
	}
	if err := os.WriteFile(localPath, n.data, 0600); err != nil {
		return core.NewError(core.KindLocalIO, "download", localPath, err)
	}
	return nil
}

// Upload implements core.FileClient.
func (c *Client) Upload(ctx context.Context, remote, localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return core.NewError(core.KindLocalIO, "upload", localPath, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	remote = clean(remote)
	if err := c.guard(ctx, "upload", remote); err != nil {
		return err
	}
	if n, ok := c.nodes[remote]; ok && n.dir {
		return core.NewError(core.KindRemote, "upload", remote, errors.New("target is a directory"))
	}
	if !c.parentIsDir(remote) {
		return conflict("upload", remote)
	}
	c.nodes[remote] = &node{data: data, modTime: time.Now()}
	return nil
}

// Delete implements core.FileClient.
func (c *Client) Delete(ctx context.Context, p string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p = clean(p)
	if err := c.guard(ctx, "delete", p); err != nil {
		return err
	}
	if _, ok := c.nodes[p]; !ok || p == "/" {
		return notFound("delete", p)
	}
	for k := range c.nodes {
		if k == p || strings.HasPrefix(k, p+"/") {
			delete(c.nodes, k)
		}
	}
	return nil
}

// Move implements core.FileClient.
func (c *Client) Move(ctx context.Context, src, dst string, overwrite bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, dst = clean(src), clean(dst)
	if err := c.guard(ctx, "move", src); err != nil {
		return err
	}
	if _, ok := c.nodes[src]; !ok {
		return notFound("move", src)
	}
	if src == dst {
		return nil
	}
	if strings.HasPrefix(dst, src+"/") || strings.HasPrefix(src, dst+"/") {
		return core.NewError(core.KindRemote, "move", dst, errors.New("source and target overlap"))
	}
	if _, ok := c.nodes[dst]; ok {
		if !overwrite {
			return core.NewError(core.KindExists, "move", dst, core.ErrExists)
		}
		for k := range c.nodes {
			if k == dst || strings.HasPrefix(k, dst+"/") {
				delete(c.nodes, k)
			}
		}
	}
	if !c.parentIsDir(dst) {
		return conflict("move", dst)
	}

	moved := make(map[string]*node)
	for k, n := range c.nodes {
		if k == src || strings.HasPrefix(k, src+"/") {
			moved[dst+strings.TrimPrefix(k, src)] = n
			delete(c.nodes, k)
		}
	}
	for k, n := range moved {
		c.nodes[k] = n
	}
	return nil
}

// ClientState exposes internal state for observability.
type ClientState struct {
	Nodes   int  `json:"nodes"`
	Offline bool `json:"offline"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ClientState{Nodes: len(c.nodes), Offline: c.offline}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "memory"
}

var _ core.FileClient = (*Client)(nil)
var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
