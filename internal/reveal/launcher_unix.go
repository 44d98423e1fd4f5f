//go:build !windows && !darwin

package reveal

type fileManager struct{}

func (fileManager) Reveal(path string) error {
	return spawn("xdg-open", path)
}
