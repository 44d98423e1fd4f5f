// Package fetch downloads a remote resource and persists it to disk.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/kyudori/appbridge/internal/apperr"
	"github.com/kyudori/appbridge/internal/misc"
)

var log = misc.NewLogger("Fetch", 2)

// Request describes a single download. Constructed fresh per call;
// nothing is shared between invocations.
type Request struct {
	URL    string
	Method string
	// FileIDs ride along as the POST body; ignored for every other method.
	FileIDs []int
	// Destination is where the response body lands. Its parent directory
	// must already exist.
	Destination string
}

type idsPayload struct {
	FileIDs []int `json:"file_ids"`
}

// Fetcher is a stateless request/response pipeline: build, send,
// validate, buffer, write.
type Fetcher struct {
	client *resty.Client
}

func New() *Fetcher {
	return &Fetcher{client: resty.New()}
}

// FetchAndSave downloads req.URL and writes the full response body to
// req.Destination, returning the destination on success.
//
// Only a method case-insensitively equal to POST carries a body
// ({"file_ids": [...]}); every other value falls back to a bodyless GET.
// A non-2xx status fails the call without reading the body. The body is
// staged in a temp file and renamed into place, so the destination either
// holds the complete response bytes or is untouched. Single attempt, no
// retries.
func (f *Fetcher) FetchAndSave(ctx context.Context, req Request) (string, error) {
	r := f.client.R().SetContext(ctx).SetDoNotParseResponse(true)

	var resp *resty.Response
	var err error
	if strings.EqualFold(req.Method, http.MethodPost) {
		ids := req.FileIDs
		if ids == nil {
			ids = []int{}
		}
		resp, err = r.SetBody(idsPayload{FileIDs: ids}).Post(req.URL)
	} else {
		resp, err = r.Get(req.URL)
	}
	if err != nil {
		return "", apperr.Wrap(apperr.KindTransport, err, "request to ["+req.URL+"] failed")
	}

	body := resp.RawBody()
	defer func() {
		_ = body.Close()
	}()

	if !resp.IsSuccess() {
		log.Warn("Download %s failed: %s.", req.URL, resp.Status())
		return "", apperr.New(apperr.KindStatus, "server responded %s", resp.Status())
	}

	content, readErr := io.ReadAll(body)
	if readErr != nil {
		return "", apperr.Wrap(apperr.KindBodyRead, readErr, "reading response body from ["+req.URL+"] failed")
	}

	if err = saveAtomic(req.Destination, content); err != nil {
		return "", err
	}

	log.Trace("Saved %d bytes to %s.", len(content), req.Destination)
	return req.Destination, nil
}

// saveAtomic stages content in a temp sibling and renames it over path,
// so path never holds a truncated body.
func saveAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "create file ["+path+"] failed")
	}

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return apperr.Wrap(apperr.KindFilesystem, err, "write file ["+path+"] failed")
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return apperr.Wrap(apperr.KindFilesystem, err, "write file ["+path+"] failed")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return apperr.Wrap(apperr.KindFilesystem, err, "replace file ["+path+"] failed")
	}

	return nil
}
