package watch

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

func writeDefinition(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newWatcher(t *testing.T, path string) (*Watcher, chan *site.Site, chan error) {
	t.Helper()
	reloads := make(chan *site.Site, 4)
	errs := make(chan error, 4)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	w, err := New(path,
		WithDebounce(20*time.Millisecond),
		WithLogger(logger),
		OnReload(func(s *site.Site) { reloads <- s }),
		OnError(func(err error) { errs <- err }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w, reloads, errs
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	writeDefinition(t, path, "title: First\nurl: https://example.com\nbaseUrl: /\n")

	w, reloads, errs := newWatcher(t, path)
	require.NoError(t, w.Start(context.Background()))

	writeDefinition(t, path, "title: Second\nurl: https://example.com\nbaseUrl: /\n")
	select {
	case s := <-reloads:
		assert.Equal(t, "Second", s.Config.Title)
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	writeDefinition(t, path, "title: Third\nurl: https://example.com\nbaseUrl: docs\n")
	select {
	case err := <-errs:
		assert.True(t, ferrors.IsConfigError(err))
	case <-reloads:
		t.Fatal("invalid definition must not reload")
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error observed")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docsite.yaml")
	writeDefinition(t, path, "title: First\nurl: https://example.com\nbaseUrl: /\n")

	w, reloads, _ := newWatcher(t, path)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	select {
	case <-reloads:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReloadNow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	writeDefinition(t, path, "title: Now\nurl: https://example.com\nbaseUrl: /\n")

	w, reloads, _ := newWatcher(t, path)
	s, err := w.Reload()
	require.NoError(t, err)
	assert.Equal(t, "Now", s.Config.Title)
	assert.Len(t, reloads, 1)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_StopReleasesGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "docsite.yaml")
	writeDefinition(t, path, "title: Docs\nurl: https://example.com\nbaseUrl: /\n")

	w, _, _ := newWatcher(t, path)
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_EnvFileEditTakesEffect(t *testing.T) {
	const key = "DOCSITE_WATCH_TITLE"
	require.NoError(t, os.Unsetenv(key))

	dir := t.TempDir()
	path := filepath.Join(dir, "docsite.yaml")
	envPath := filepath.Join(dir, ".env")
	writeDefinition(t, path, "title: ${"+key+"}\nurl: https://example.com\nbaseUrl: /\n")
	writeDefinition(t, envPath, key+"=first\n")

	w, reloads, errs := newWatcher(t, path)
	s, err := w.Reload()
	require.NoError(t, err)
	assert.Equal(t, "first", s.Config.Title)
	<-reloads

	require.NoError(t, w.Start(context.Background()))
	writeDefinition(t, envPath, key+"=second\n")
	select {
	case s := <-reloads:
		assert.Equal(t, "second", s.Config.Title)
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
	_, set := os.LookupEnv(key)
	assert.False(t, set)
}
