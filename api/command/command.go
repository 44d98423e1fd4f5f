// Package command is the operation surface the desktop shell invokes.
// Function names mirror the shell-side command registrations. Errors stay
// typed here; the transport layer collapses them to message strings.
package command

import (
	"context"

	"github.com/kyudori/appbridge/internal/fetch"
	"github.com/kyudori/appbridge/internal/reveal"
	"github.com/kyudori/appbridge/internal/textfile"
	"github.com/kyudori/appbridge/internal/version"
)

// DownloadAndSaveFile fetches url and writes the response body to
// savePath, returning savePath on success. fileIDs are sent as the POST
// body and ignored for every other method.
func DownloadAndSaveFile(ctx context.Context, url, savePath string, fileIDs []int, method string) (string, error) {
	return fetch.New().FetchAndSave(ctx, fetch.Request{
		URL:         url,
		Method:      method,
		FileIDs:     fileIDs,
		Destination: savePath,
	})
}

// OpenFolder reveals path in the platform file browser.
func OpenFolder(path string) error {
	return reveal.Open(path)
}

// GetVersion returns the build's version string. Never fails.
func GetVersion() string {
	return version.Get()
}

// SaveFileContent writes content to path as plain text.
func SaveFileContent(path, content string) error {
	return textfile.Save(path, content)
}

// ReadFileContent returns the text content of path.
func ReadFileContent(path string) (string, error) {
	return textfile.Read(path)
}
