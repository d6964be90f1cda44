// Package kcfs provides the file systems used by keyforge.
package kcfs

import (
	"os"
	"path/filepath"

	"github.com/bep/overlayfs"
	"github.com/spf13/afero"

	"github.com/keyforge-dev/keyforge/common/paths"
	"github.com/keyforge-dev/keyforge/log"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// PrepareBuildDir makes sure the build output dir exists before a build
// starts writing below it.
func PrepareBuildDir(fs afero.Fs, workingDir, buildDir string) error {
	absBuildDir := paths.AbsPathify(workingDir, buildDir)

	if err := fs.MkdirAll(absBuildDir, 0777); err != nil && !os.IsExist(err) {
		return err
	}
	log.Process("prepare", "create build folder "+absBuildDir)
	return nil
}

// NewOverlay stacks top over base, top winning for files present in both.
// Used to let a theme's resources-override directory shadow bundle files.
func NewOverlay(top, base afero.Fs) afero.Fs {
	return overlayfs.New(overlayfs.Options{
		Fss: []afero.Fs{top, base},
	})
}

// OpenFileForWriting opens or creates the given file. If the target directory
// does not exist, it gets created.
func OpenFileForWriting(fs afero.Fs, filename string) (afero.File, error) {
	filename = filepath.Clean(filename)
	// Create will truncate if file already exists.
	f, err := fs.Create(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err = fs.MkdirAll(filepath.Dir(filename), 0777); err != nil {
			return nil, err
		}
		f, err = fs.Create(filename)
	}

	return f, err
}

// WriteFile writes content to filename, creating parent directories as needed.
func WriteFile(fs afero.Fs, filename string, content []byte) error {
	f, err := OpenFileForWriting(fs, filename)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(content)
	return err
}
