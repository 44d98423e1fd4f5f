package misc

import "os"

// IsFileExists reports whether path exists on disk.
func IsFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}
