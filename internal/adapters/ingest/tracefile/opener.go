package tracefile

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	perr "gasanalysis/internal/platform/errors"
)

// SourceOpener opens local paths from disk and http(s) URLs over HTTP
type SourceOpener struct {
	Client *http.Client
}

// NewSourceOpener builds an opener whose HTTP fetches time out after d (0 disables)
func NewSourceOpener(d time.Duration) *SourceOpener {
	return &SourceOpener{Client: &http.Client{Timeout: d}}
}

// IsURL reports whether location should be fetched over HTTP
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns a reader for the compressed trace at location
func (o *SourceOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsURL(location) {
		return o.fetch(ctx, location)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", location)
	}
	return f, nil
}

func (o *SourceOpener) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "build request for %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "fetch %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		if cerr := resp.Body.Close(); cerr != nil {
			return nil, perr.Wrapf(cerr, perr.ErrorCodeIO, "unexpected status %d for %s; error closing body", resp.StatusCode, url)
		}
		return nil, perr.IOf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}
