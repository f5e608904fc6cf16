package pathutils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FindModuleRoot returns the absolute path of the enclosing Go module by
// walking from the current working directory towards the filesystem root
// until a go.mod file is found. Package loading patterns are resolved
// relative to this directory.
func FindModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current working directory")
	}
	dir = filepath.Clean(dir)
	for {
		goModPath := filepath.Join(dir, "go.mod")
		fi, err := os.Stat(goModPath)
		switch {
		case err == nil && !fi.IsDir():
			return dir, nil
		case err != nil && !os.IsNotExist(err):
			return "", errors.Wrapf(err, "failed to stat %s", goModPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New("go.mod not found in directory tree")
}
