// Package textfile reads and writes plain-text files for the shell.
package textfile

import (
	"os"
	"unicode/utf8"

	"github.com/kyudori/appbridge/internal/apperr"
)

// Save writes content to path, creating or truncating it. The parent
// directory must already exist.
func Save(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "write file ["+path+"] failed")
	}
	return nil
}

// Read returns the contents of path as text. Binary content is not
// supported: non-UTF-8 bytes fail the read. A missing file is an error
// and is never created.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", apperr.Wrap(apperr.KindFilesystem, err, "read file ["+path+"] failed")
	}
	if !utf8.Valid(b) {
		return "", apperr.New(apperr.KindFilesystem, "file [%s] is not valid UTF-8 text", path)
	}
	return string(b), nil
}
