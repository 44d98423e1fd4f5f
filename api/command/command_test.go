package command

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyudori/appbridge/internal/version"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, version.Get(), GetVersion())
	assert.Equal(t, GetVersion(), GetVersion())
}

func TestFileContentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	require.NoError(t, SaveFileContent(path, `{"theme":"dark"}`))
	got, err := ReadFileContent(path)
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, got)
}

func TestDownloadAndSaveFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("document body"))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "document.pdf")
	saved, err := DownloadAndSaveFile(context.Background(), srv.URL, dest, nil, "GET")

	require.NoError(t, err)
	assert.Equal(t, dest, saved)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("document body"), got)
}
