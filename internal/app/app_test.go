package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionRejectsUnknownMode(t *testing.T) {
	_, err := ParseOption(ArgsList{Mode: "upload"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestParseOptionDownload(t *testing.T) {
	opt, err := ParseOption(ArgsList{
		Mode:   "download",
		URL:    "https://example.com/files",
		Method: "post",
		IDs:    "3, 1,2",
		Output: "/tmp/out.bin",
	})

	require.NoError(t, err)
	assert.Equal(t, "download", opt.Mode)
	assert.Equal(t, []int{3, 1, 2}, opt.FileIDs)
}

func TestParseOptionDownloadMissingInputs(t *testing.T) {
	_, err := ParseOption(ArgsList{Mode: "download", Output: "/tmp/out.bin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url")

	_, err = ParseOption(ArgsList{Mode: "download", URL: "https://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestParseOptionRejectsBadIDs(t *testing.T) {
	_, err := ParseOption(ArgsList{
		Mode:   "download",
		URL:    "https://example.com",
		Output: "/tmp/out.bin",
		IDs:    "1,x,3",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ids parameter")
}

func TestParseOptionPathModes(t *testing.T) {
	for _, mode := range []string{"open", "read", "write"} {
		_, err := ParseOption(ArgsList{Mode: mode})
		require.Errorf(t, err, "mode %s must require a path", mode)
	}

	opt, err := ParseOption(ArgsList{Mode: "WRITE", Path: "/tmp/note.txt", Content: ""})
	require.NoError(t, err)
	assert.Equal(t, "write", opt.Mode)
}

func TestParseOptionVersionNeedsNothing(t *testing.T) {
	opt, err := ParseOption(ArgsList{Mode: "version"})
	require.NoError(t, err)
	assert.Equal(t, "version", opt.Mode)
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	ids, err = parseIDs("42")
	require.NoError(t, err)
	assert.Equal(t, []int{42}, ids)
}
