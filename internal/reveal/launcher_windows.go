package reveal

type fileManager struct{}

func (fileManager) Reveal(path string) error {
	return spawn("explorer", path)
}
