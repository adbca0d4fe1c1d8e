package fontface

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DefaultMaxBytes caps the size of fetched font data.
const DefaultMaxBytes = 32 << 20

// Fetcher retrieves the raw bytes behind a url() font source.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, path string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// ResourceFetcher resolves http(s) URLs, data: URLs, file:// URLs and
// plain paths.
//
// The zero value uses http.DefaultClient, reads plain paths from the
// operating system and limits data to DefaultMaxBytes.
type ResourceFetcher struct {
	// Client performs remote requests. Nil means http.DefaultClient.
	Client *http.Client

	// FS, when set, serves plain paths and file:// URLs instead of the
	// operating system. Leading slashes are stripped to form fs.FS names.
	FS fs.FS

	// MaxBytes limits the size of fetched data. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// Fetch implements Fetcher.
func (f *ResourceFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scheme, rest, hasScheme := strings.Cut(path, ":")
	if !hasScheme || len(scheme) == 1 { // no scheme, or a Windows drive letter
		return f.readFile(path)
	}

	switch strings.ToLower(scheme) {
	case "http", "https":
		return f.get(ctx, path)
	case "data":
		return f.decodeData(rest)
	case "file":
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("fontface: invalid file URL %q: %w", path, err)
		}
		return f.readFile(u.Path)
	}

	if strings.HasPrefix(rest, "//") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	// A colon inside a relative path, such as "fonts/a:b.ttf".
	return f.readFile(path)
}

func (f *ResourceFetcher) limit() int64 {
	if f.MaxBytes > 0 {
		return f.MaxBytes
	}
	return DefaultMaxBytes
}

func (f *ResourceFetcher) readFile(path string) ([]byte, error) {
	var (
		file fs.File
		err  error
	)
	if f.FS != nil {
		file, err = f.FS.Open(strings.TrimLeft(path, "/"))
	} else {
		// #nosec G304 -- font path is provided by the caller
		file, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to open font: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return f.readLimited(file)
}

func (f *ResourceFetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("fontface: invalid font URL %q: %w", rawURL, err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to fetch font: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	return f.readLimited(resp.Body)
}

func (f *ResourceFetcher) readLimited(r io.Reader) ([]byte, error) {
	limit := f.limit()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to read font: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrResponseTooLarge
	}
	return data, nil
}

// decodeData decodes the part of a data: URL after the scheme,
// "[<mediatype>][;base64],<data>".
func (f *ResourceFetcher) decodeData(rest string) ([]byte, error) {
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidDataURL
	}

	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
	} else {
		var s string
		s, err = url.PathUnescape(payload)
		data = []byte(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if int64(len(data)) > f.limit() {
		return nil, ErrResponseTooLarge
	}
	return data, nil
}
