package mirror_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/davnotes/pkg/adapters/memory"
	"github.com/aretw0/davnotes/pkg/core"
	"github.com/aretw0/davnotes/pkg/mirror"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func newService(t *testing.T) *core.Service {
	t.Helper()
	return core.NewService(memory.NewClient(), core.WithTempDir(t.TempDir()))
}

func TestNew(t *testing.T) {
	svc := newService(t)

	_, err := mirror.New(svc, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "f.md")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = mirror.New(svc, file)
	assert.Error(t, err)

	_, err = mirror.New(svc, t.TempDir(), mirror.WithIgnore("["))
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	root := t.TempDir()

	write(t, root, "a.md", "top level")
	write(t, root, "Work/b.md", "in work")
	write(t, root, "Work/deep/c.md", "too deep")
	write(t, root, "readme.txt", "not a note")
	write(t, root, ".hidden/x.md", "hidden")
	write(t, root, "Work/.draft.md", "hidden file")

	m, err := mirror.New(svc, root)
	require.NoError(t, err)

	report, err := m.Import(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.md", "Work/b.md"}, report.Uploaded)
	assert.Contains(t, report.Skipped, "readme.txt")

	content, err := svc.ReadNote(ctx, "a.md", "")
	require.NoError(t, err)
	assert.Equal(t, "top level", content)

	content, err = svc.ReadNote(ctx, "b.md", "Work")
	require.NoError(t, err)
	assert.Equal(t, "in work", content)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work"}, cats)

	t.Run("Reimport Overwrites", func(t *testing.T) {
		write(t, root, "a.md", "changed")
		_, err := m.Import(ctx)
		require.NoError(t, err)

		content, err := svc.ReadNote(ctx, "a.md", "")
		require.NoError(t, err)
		assert.Equal(t, "changed", content)
	})
}

func waitEvent(t *testing.T, events <-chan mirror.Event, want mirror.EventType) mirror.Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newService(t)
	root := t.TempDir()
	write(t, root, "Work/existing.md", "x")

	m, err := mirror.New(svc, root)
	require.NoError(t, err)
	_, err = m.Import(ctx)
	require.NoError(t, err)

	events, err := m.Watch(ctx, 20*time.Millisecond)
	require.NoError(t, err)

	write(t, root, "Work/new.md", "fresh")
	ev := waitEvent(t, events, mirror.EventPush)
	require.NoError(t, ev.Err)
	assert.Equal(t, "Work", ev.Category)
	assert.Equal(t, "new.md", ev.Filename)
	assert.Equal(t, "PUSH Work/new.md", ev.String())

	content, err := svc.ReadNote(ctx, "new.md", "Work")
	require.NoError(t, err)
	assert.Equal(t, "fresh", content)

	require.NoError(t, os.Remove(filepath.Join(root, "Work", "existing.md")))
	ev = waitEvent(t, events, mirror.EventDelete)
	require.NoError(t, ev.Err)
	assert.Equal(t, "existing.md", ev.Filename)

	notes, err := svc.ListNotes(ctx, "Work")
	require.NoError(t, err)
	assert.Equal(t, []string{"new.md"}, notes)

	// A category created with a note already inside it.
	write(t, root, "Ideas/first.md", "seed")
	ev = waitEvent(t, events, mirror.EventPush)
	require.NoError(t, ev.Err)
	assert.Equal(t, "Ideas", ev.Category)
	assert.Equal(t, "first.md", ev.Filename)

	content, err = svc.ReadNote(ctx, "first.md", "Ideas")
	require.NoError(t, err)
	assert.Equal(t, "seed", content)

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not stop")
		}
	}
}
