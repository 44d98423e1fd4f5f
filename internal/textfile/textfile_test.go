package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyudori/appbridge/internal/apperr"
	"github.com/kyudori/appbridge/internal/misc"
)

func TestRoundTrip(t *testing.T) {
	cases := map[string]string{
		"plain":     "hello, world",
		"empty":     "",
		"multibyte": "안녕하세요, 世界 🌏",
		"newlines":  "line one\nline two\r\nline three\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "note.txt")

			require.NoError(t, Save(path, content))
			got, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, content, got)
		})
	}
}

func TestSaveTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, Save(path, "a much longer original content"))
	require.NoError(t, Save(path, "short"))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Read(path)
	require.Error(t, err)
	assert.Equal(t, apperr.KindFilesystem, apperr.KindOf(err))
	assert.False(t, misc.IsFileExists(path), "read must not create the file")
}

func TestReadRejectsNonUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd, 0x00}, 0666))

	_, err := Read(path)
	require.Error(t, err)
	assert.Equal(t, apperr.KindFilesystem, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestSaveIntoMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "note.txt")

	err := Save(path, "content")
	require.Error(t, err)
	assert.Equal(t, apperr.KindFilesystem, apperr.KindOf(err))
}
