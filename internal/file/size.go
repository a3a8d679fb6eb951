package file

import (
	"os"

	"github.com/spf13/afero"
)

// DirSize sums the size of all regular files beneath the given directory. A missing directory has a size of 0.
func DirSize(fs afero.Fs, dir string) (int64, error) {
	var total int64
	err := afero.Walk(fs, dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}
