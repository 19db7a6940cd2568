package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sigreg/internal/store"
)

func TestAccountDataStore_Find_MarkerInSecondDir(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()
	first := filepath.Join(root, "first")
	second := filepath.Join(root, "second")
	req.NoError(os.MkdirAll(first, 0o700))
	req.NoError(os.MkdirAll(filepath.Join(second, "identity"), 0o700))

	s := store.NewAccountDataStore([]string{first, second}, nil, nil)

	p, ok := s.Find(context.Background())
	req.True(ok)
	req.Equal("identity", p.Marker)
	req.Equal(filepath.Join(second, "identity"), p.Path)
}

func TestAccountDataStore_Find_FirstMatchWins(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "accounts.json"), []byte(`{}`), 0o600))
	req.NoError(os.MkdirAll(filepath.Join(dir, "profiles"), 0o700))

	s := store.NewAccountDataStore([]string{dir}, nil, nil)

	p, ok := s.Find(context.Background())
	req.True(ok)
	req.Equal("accounts.json", p.Marker)
}

func TestAccountDataStore_Find_MissingDirsAreNotFound(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()

	s := store.NewAccountDataStore([]string{
		filepath.Join(root, "nope"),
		filepath.Join(root, "also-nope"),
	}, nil, nil)

	_, ok := s.Find(context.Background())
	req.False(ok)
}

func TestAccountDataStore_Find_UnrelatedFilesIgnored(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "attachments"), nil, 0o600))

	s := store.NewAccountDataStore([]string{dir}, nil, nil)

	_, ok := s.Find(context.Background())
	req.False(ok)
}

func TestAccountDataStore_Dirs_DedupesAndDropsBlanks(t *testing.T) {
	req := require.New(t)

	s := store.NewAccountDataStore([]string{"/a/b", " ", "/a/b/", "/c"}, nil, nil)

	req.Equal([]string{"/a/b", "/c"}, s.Dirs())
}

func TestAccountDataStore_Inspect_ReportsEveryMarker(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.MkdirAll(filepath.Join(dir, "profiles"), 0o700))

	s := store.NewAccountDataStore([]string{dir}, nil, nil)

	probes := s.Inspect(context.Background())
	req.Len(probes, len(store.DefaultMarkers))
	found := 0
	for _, p := range probes {
		req.NoError(p.Err)
		if p.Found {
			found++
			req.Equal("profiles", p.Marker)
		}
	}
	req.Equal(1, found)
}

func TestDefaultDataDirs(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{
		"/home/sig/.local/share/signal-cli/data",
		"/home/sig/.config/signal-cli/data",
		"/root/.local/share/signal-cli/data",
		"/root/.config/signal-cli/data",
	}, store.DefaultDataDirs("/home/sig"))

	req.Len(store.DefaultDataDirs(""), 2)
}
