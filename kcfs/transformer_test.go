package kcfs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-dev/keyforge/common/paths"
)

func TestTransformTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/a.txt", []byte("aaa"), 0644))
	require.NoError(t, afero.WriteFile(fs, "src/sub/b.txt", []byte("bbb"), 0644))
	require.NoError(t, afero.WriteFile(fs, "src/sub/secret.txt", []byte("x"), 0644))

	err := TransformTree(fs, "src", "dst", func(path string, content []byte) (TransformAction, []byte, error) {
		switch {
		case string(content) == "x":
			return Skip, nil, nil
		case string(content) == "bbb":
			return Replace, []byte("BBB"), nil
		default:
			return Passthrough, nil, nil
		}
	})
	require.NoError(t, err)

	a, err := afero.ReadFile(fs, "dst/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "aaa", string(a))

	b, err := afero.ReadFile(fs, "dst/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "BBB", string(b))

	exists, err := afero.Exists(fs, "dst/sub/secret.txt")
	require.NoError(t, err)
	assert.False(t, exists, "skipped files must not be written")
}

func TestTransformTreeToSeparateFilesystems(t *testing.T) {
	src := afero.NewMemMapFs()
	dst := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(src, "in/f.txt", []byte("f"), 0644))

	err := TransformTreeTo(src, dst, "in", "out", func(string, []byte) (TransformAction, []byte, error) {
		return Passthrough, nil, nil
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(dst, "out/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "f", string(got))

	exists, _ := afero.Exists(src, "out/f.txt")
	assert.False(t, exists)
}

func TestTransformTreeDestNestedInSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/a.txt", []byte("aaa"), 0644))
	require.NoError(t, afero.WriteFile(fs, "src/out/old.txt", []byte("old"), 0644))

	err := TransformTree(fs, "src", "src/out", func(path string, _ []byte) (TransformAction, []byte, error) {
		if paths.IsSubdir("out", path) {
			return Skip, nil, nil
		}
		return Passthrough, nil, nil
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "src/out/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "aaa", string(got))

	exists, _ := afero.Exists(fs, "src/out/out/old.txt")
	assert.False(t, exists, "the destination subtree must not be copied into itself")
}

func TestWriteFileCreatesParents(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFile(fs, "a/b/c/d.txt", []byte("deep")))

	got, err := afero.ReadFile(fs, "a/b/c/d.txt")
	require.NoError(t, err)
	assert.Equal(t, "deep", string(got))
}
