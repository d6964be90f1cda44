package kcfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// TransformAction tells TransformTree what to do with one visited file.
type TransformAction int

const (
	// Passthrough copies the file bytes unchanged.
	Passthrough TransformAction = iota
	// Replace writes the bytes returned by the callback instead.
	Replace
	// Skip writes nothing for this file.
	Skip
)

// TransformFunc decides the fate of a single source file. path is relative to
// the tree root being transformed; content is the full file content. The
// returned bytes are only looked at for Replace.
type TransformFunc func(path string, content []byte) (TransformAction, []byte, error)

// TransformTree materializes srcDir under dstDir on fs, visiting every file
// and applying fn. Intermediate destination directories are created as
// needed; directories whose every file is skipped are not created at all.
//
// dstDir may live outside srcDir or next to it. If dstDir is nested inside
// srcDir the caller must exclude it via fn so previously written output is
// not walked and copied into itself.
func TransformTree(fs afero.Fs, srcDir, dstDir string, fn TransformFunc) error {
	return TransformTreeTo(fs, fs, srcDir, dstDir, fn)
}

// TransformTreeTo is TransformTree reading from srcFs and writing to dstFs.
// Used when the source side is an overlay that must not receive writes.
func TransformTreeTo(srcFs, dstFs afero.Fs, srcDir, dstDir string, fn TransformFunc) error {
	srcDir = filepath.Clean(srcDir)
	dstDir = filepath.Clean(dstDir)

	walker := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		content, err := afero.ReadFile(srcFs, path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}

		action, replacement, err := fn(rel, content)
		if err != nil {
			return fmt.Errorf("transform %q: %w", path, err)
		}

		switch action {
		case Skip:
			return nil
		case Replace:
			content = replacement
		}

		return WriteFile(dstFs, filepath.Join(dstDir, rel), content)
	}

	return afero.Walk(srcFs, srcDir, walker)
}
