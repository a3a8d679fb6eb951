package file

import (
	"os"

	"github.com/spf13/afero"
)

// Exists reports whether the given path exists and is a regular file (not a directory).
func Exists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
