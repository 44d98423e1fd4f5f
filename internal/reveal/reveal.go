// Package reveal opens a filesystem path in the platform's file browser.
package reveal

import (
	"os/exec"

	"github.com/kyudori/appbridge/internal/apperr"
)

// Launcher starts the platform file manager for a path. Exactly one
// implementation is compiled per target OS.
type Launcher interface {
	Reveal(path string) error
}

var launcher Launcher = fileManager{}

// Open reveals path in the file manager. The viewer process is spawned
// and not waited on; only the spawn itself can fail.
func Open(path string) error {
	if err := launcher.Reveal(path); err != nil {
		return apperr.Wrap(apperr.KindLaunch, err, "open folder ["+path+"] failed")
	}
	return nil
}

func spawn(name string, arg ...string) error {
	return exec.Command(name, arg...).Start()
}
