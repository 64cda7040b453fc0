package packager

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Workspace is the scratch directory one packaging run works in. It
// holds the staged function tree, the finished artifact and its
// metadata.
type Workspace struct {
	root string
}

// NewWorkspace creates package-<environment> under baseDir. An existing
// directory aborts the run rather than silently reusing stale content.
func NewWorkspace(baseDir, environmentName string) (*Workspace, error) {
	root := filepath.Join(baseDir, "package-"+environmentName)

	_, err := os.Stat(root)
	if err == nil {
		return nil, fmt.Errorf("workspace directory '%s' already exists", root)
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "could not stat workspace directory '%s'", root)
	}

	if err := os.MkdirAll(filepath.Join(root, "staging"), 0700); err != nil {
		return nil, errors.Wrapf(err, "could not create workspace directory '%s'", root)
	}

	return &Workspace{root: root}, nil
}

func (w *Workspace) Path() string {
	return w.root
}

func (w *Workspace) StagingDir() string {
	return filepath.Join(w.root, "staging")
}

func (w *Workspace) ArtifactPath(name string) string {
	return filepath.Join(w.root, filepath.Base(name))
}

func (w *Workspace) MetadataPath() string {
	return filepath.Join(w.root, "metadata.yml")
}

// Stage copies the configured source paths into the staging directory.
// Files keep their names, directories keep their name and tree.
func (w *Workspace) Stage(sourcePaths []string) error {
	for _, sourcePath := range sourcePaths {
		info, err := os.Stat(sourcePath)
		if err != nil {
			return errors.Wrapf(err, "could not stage '%s'", sourcePath)
		}

		destination := filepath.Join(w.StagingDir(), filepath.Base(sourcePath))

		if info.IsDir() {
			err = copyTree(sourcePath, destination)
		} else {
			err = copyFile(sourcePath, destination, info.Mode())
		}
		if err != nil {
			return errors.Wrapf(err, "could not stage '%s'", sourcePath)
		}
	}

	return nil
}

func (w *Workspace) Cleanup() error {
	if err := os.RemoveAll(w.root); err != nil {
		return errors.Wrapf(err, "could not clean up workspace '%s'", w.root)
	}
	return nil
}

func copyTree(source, destination string) error {
	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relativePath, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		target := filepath.Join(destination, relativePath)

		if entry.IsDir() {
			return os.MkdirAll(target, 0700)
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		return copyFile(path, target, info.Mode())
	})
}

func copyFile(source, destination string, mode os.FileMode) error {
	sourceFile, err := os.Open(source)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destinationFile, sourceFile); err != nil {
		destinationFile.Close()
		return err
	}

	return destinationFile.Close()
}
