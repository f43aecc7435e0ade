package dassemble

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type ErrOutputAlreadyExists struct {
	Path string
}

func (r ErrOutputAlreadyExists) Error() string {
	return fmt.Sprintf(`output file "%s" already exists`, r.Path)
}

func CheckExistence(path string) (bool, error) {
	_, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "dassemble.CheckExistence error")
	}
	return true, nil
}

// WriteFile stores bs at path, refusing to replace anything already there.
// The data goes to a temporary file in the same directory first and is only
// linked into place once it is complete, so path never holds a partial
// file. The temporary file is removed on every return.
func WriteFile(path string, bs []byte) error {
	existed, err := CheckExistence(path)
	if err != nil {
		return errors.Wrap(err, "dassemble.WriteFile error")
	}
	if existed {
		return errors.Wrap(&ErrOutputAlreadyExists{Path: path}, "dassemble.WriteFile error")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "dassemble.WriteFile error creating temporary file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(bs); err != nil {
		tmp.Close()
		return errors.Wrapf(err, `dassemble.WriteFile error writing "%s"`, tmpName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, `dassemble.WriteFile error syncing "%s"`, tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, `dassemble.WriteFile error closing "%s"`, tmpName)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrapf(err, `dassemble.WriteFile error setting mode of "%s"`, tmpName)
	}

	// unlike rename, link fails instead of replacing a file that appeared
	// at path after the existence check
	if err := os.Link(tmpName, path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.Wrap(&ErrOutputAlreadyExists{Path: path}, "dassemble.WriteFile error")
		}
		return errors.Wrapf(err, `dassemble.WriteFile error linking "%s"`, path)
	}
	return nil
}
