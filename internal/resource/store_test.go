package resource

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded_AllNamesPresent(t *testing.T) {
	store := Embedded()
	for _, name := range Names() {
		text, err := store.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, text, name)
	}
}

func TestEmbedded_NotFound(t *testing.T) {
	_, err := Embedded().Load("template/tile/destroy_explode.mcfunction")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "destroy_explode")
}

// writeTemplateTree 在 root 下写入一个最小模板树
func writeTemplateTree(t *testing.T, root string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(TileTick))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("# custom <id>\n"), 0o600))
}

func writeTemplateZip(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create(TileTick)
	require.NoError(t, err)
	_, err = w.Write([]byte("# zipped <id>\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestDirStore(t *testing.T) {
	root := t.TempDir()
	writeTemplateTree(t, root)

	store, err := NewDirStore(root)
	require.NoError(t, err)

	text, err := store.Load(TileTick)
	require.NoError(t, err)
	assert.Equal(t, "# custom <id>\n", text)

	_, err = store.Load(GameTick)
	assert.True(t, IsNotFound(err))
}

func TestDirStore_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := NewDirStore(path)
	require.Error(t, err)
}

func TestZipStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.zip")
	writeTemplateZip(t, path)

	store, err := OpenZip(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	text, err := store.Load(TileTick)
	require.NoError(t, err)
	assert.Equal(t, "# zipped <id>\n", text)

	_, err = store.Load(GameLoad)
	assert.True(t, IsNotFound(err))
}

type countingStore struct {
	loads map[string]int
}

func (s *countingStore) Load(name string) (string, error) {
	s.loads[name]++
	if name == "missing" {
		return "", os.ErrNotExist
	}

	return "text of " + name, nil
}

func TestCachedStore(t *testing.T) {
	next := &countingStore{loads: map[string]int{}}
	store, err := NewCachedStore(next, 8)
	require.NoError(t, err)

	first, err := store.Load(TileTick)
	require.NoError(t, err)
	second, err := store.Load(TileTick)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.loads[TileTick], "重复读取应命中缓存")

	_, err = store.Load("missing")
	require.Error(t, err)
	_, err = store.Load("missing")
	require.Error(t, err)
	assert.Equal(t, 2, next.loads["missing"], "失败不缓存")
}

func TestNewCachedStore_InvalidSize(t *testing.T) {
	_, err := NewCachedStore(Embedded(), 0)
	require.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeTemplateTree(t, dir)
	zipPath := filepath.Join(t.TempDir(), "pack.zip")
	writeTemplateZip(t, zipPath)

	tests := []struct {
		name     string
		location string
		want     string
	}{
		{name: "embedded", location: "", want: "# tile <id>\n"},
		{name: "directory", location: dir, want: "# custom <id>\n"},
		{name: "zip", location: zipPath, want: "# zipped <id>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closer, err := Open(ctx, Source{Location: tt.location, CacheSize: 4})
			require.NoError(t, err)
			defer func() { _ = closer.Close() }()

			text, err := store.Load(TileTick)
			require.NoError(t, err)
			assert.Contains(t, text, tt.want)
		})
	}
}

func TestOpen_UnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.tar")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, _, err := Open(context.Background(), Source{Location: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported template source")
}

func TestFetch_LocalDirectory(t *testing.T) {
	src := t.TempDir()
	writeTemplateTree(t, src)
	dst := filepath.Join(t.TempDir(), "fetched")

	store, err := Fetch(context.Background(), src, dst)
	require.NoError(t, err)

	text, err := store.Load(TileTick)
	require.NoError(t, err)
	assert.Equal(t, "# custom <id>\n", text)
}

func TestFetch_UnsafeDir(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	meta := filepath.Join(wd, "pack.mcmeta")
	require.NoError(t, os.WriteFile(meta, []byte("{}"), 0o600))

	src := t.TempDir()
	writeTemplateTree(t, src)
	out := filepath.Join(t.TempDir(), "out")

	tests := []struct {
		name    string
		dst     string
		protect []string
	}{
		{name: "empty", dst: ""},
		{name: "dot", dst: "."},
		{name: "working dir", dst: wd},
		{name: "parent of working dir", dst: filepath.Dir(wd)},
		{name: "output dir", dst: out, protect: []string{out}},
		{name: "parent of output dir", dst: filepath.Dir(out), protect: []string{out}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fetch(context.Background(), src, tt.dst, tt.protect...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsafeFetchDir)
			assert.FileExists(t, meta, "工作目录内容不受影响")
		})
	}
}

func TestFetch_ForeignDirectory(t *testing.T) {
	src := t.TempDir()
	writeTemplateTree(t, src)
	dst := t.TempDir()
	notes := filepath.Join(dst, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("keep"), 0o600))

	_, err := Fetch(context.Background(), src, dst)
	assert.ErrorIs(t, err, ErrUnsafeFetchDir)
	assert.FileExists(t, notes)
}

func TestFetch_ReplacesPreviousPack(t *testing.T) {
	first := t.TempDir()
	writeTemplateTree(t, first)
	second := t.TempDir()
	path := filepath.Join(second, filepath.FromSlash(TileTick))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("# second <id>\n"), 0o600))
	dst := filepath.Join(t.TempDir(), "fetched")

	_, err := Fetch(context.Background(), first, dst)
	require.NoError(t, err)
	store, err := Fetch(context.Background(), second, dst)
	require.NoError(t, err)

	text, err := store.Load(TileTick)
	require.NoError(t, err)
	assert.Equal(t, "# second <id>\n", text)
	assert.FileExists(t, filepath.Join(first, filepath.FromSlash(TileTick)), "来源目录不受影响")

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{fetchPackDir, fetchMarker}, names, "临时目录已清理")
}

func TestFetch_FailureKeepsPreviousPack(t *testing.T) {
	src := t.TempDir()
	writeTemplateTree(t, src)
	dst := filepath.Join(t.TempDir(), "fetched")

	_, err := Fetch(context.Background(), src, dst)
	require.NoError(t, err)

	_, err = Fetch(context.Background(), filepath.Join(t.TempDir(), "missing"), dst)
	require.Error(t, err)

	store, err := NewDirStore(filepath.Join(dst, fetchPackDir))
	require.NoError(t, err)
	text, err := store.Load(TileTick)
	require.NoError(t, err)
	assert.Equal(t, "# custom <id>\n", text)
}

func TestOpen_MissingLocalSource(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	meta := filepath.Join(wd, "pack.mcmeta")
	require.NoError(t, os.WriteFile(meta, []byte("{}"), 0o600))

	for _, location := range []string{"./my-templtes", "my-templtes", "../my-templtes", filepath.Join(wd, "nope")} {
		t.Run(location, func(t *testing.T) {
			_, _, err := Open(context.Background(), Source{Location: location, FetchDir: "", CacheSize: 4})
			require.Error(t, err)
			assert.True(t, IsNotFound(err), err.Error())
			assert.FileExists(t, meta)
		})
	}
}

func TestOpen_RemoteWithEmptyFetchDir(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := Open(context.Background(), Source{Location: "git::https://example.invalid/templates.git", FetchDir: ""})
	assert.ErrorIs(t, err, ErrUnsafeFetchDir)
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"git::https://github.com/user/templates.git", true},
		{"https://example.com/templates.zip", true},
		{"s3::https://s3.amazonaws.com/bucket/templates", true},
		{"./templates", false},
		{"../templates", false},
		{"/srv/templates", false},
		{"templates", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRemote(tt.location))
		})
	}
}
