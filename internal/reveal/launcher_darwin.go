package reveal

type fileManager struct{}

func (fileManager) Reveal(path string) error {
	return spawn("open", path)
}
