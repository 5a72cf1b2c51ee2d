package slidez

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLimit is how many leading bytes are inspected to detect the media type.
const sniffLimit = 3072

// Media describes a successfully loaded resource.
type Media struct {
	ContentType string
	Size        int64
}

// Loader fetches a media URL far enough to know it is displayable.
type Loader interface {
	Load(ctx context.Context, url string) (Media, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, url string) (Media, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, url string) (Media, error) {
	return f(ctx, url)
}

// HTTPLoader loads http and https URLs.
type HTTPLoader struct {
	client *http.Client
}

// NewHTTPLoader creates an HTTPLoader. A nil client uses http.DefaultClient.
func NewHTTPLoader(client *http.Client) *HTTPLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLoader{client: client}
}

// Load GETs rawURL, requires a 2xx status and image or video content.
func (l *HTTPLoader) Load(ctx context.Context, rawURL string) (Media, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return Media{}, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return Media{}, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Media{}, fmt.Errorf("%w: %s returned %d", ErrBadStatus, rawURL, resp.StatusCode)
	}
	return sniff(resp.Body)
}

// FileLoader loads files below a root directory. Paths cannot escape root.
type FileLoader struct {
	root string
}

// NewFileLoader creates a FileLoader rooted at root.
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{root: root}
}

// Load opens the file named by rawURL, a file:// URL or a plain path.
func (l *FileLoader) Load(_ context.Context, rawURL string) (Media, error) {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Scheme == "file" {
		p = u.Path
	}
	full := filepath.Join(l.root, filepath.Clean("/"+filepath.FromSlash(p)))

	f, err := os.Open(full)
	if err != nil {
		return Media{}, fmt.Errorf("failed to open %s: %w", full, err)
	}
	defer f.Close()
	return sniff(f)
}

// SchemeLoader dispatches on the URL scheme. The empty scheme key handles
// bare paths.
type SchemeLoader map[string]Loader

// Load routes rawURL to the loader registered for its scheme.
func (s SchemeLoader) Load(ctx context.Context, rawURL string) (Media, error) {
	scheme := ""
	if u, err := url.Parse(rawURL); err == nil {
		scheme = strings.ToLower(u.Scheme)
	}
	l, ok := s[scheme]
	if !ok {
		return Media{}, fmt.Errorf("no loader for scheme %q in %s", scheme, rawURL)
	}
	return l.Load(ctx, rawURL)
}

// DefaultLoader loads http(s) URLs over the network and everything else from
// files below root.
func DefaultLoader(root string) SchemeLoader {
	web := NewHTTPLoader(nil)
	files := NewFileLoader(root)
	return SchemeLoader{
		"http":  web,
		"https": web,
		"file":  files,
		"":      files,
	}
}

// sniff detects the media type of r and drains it to count its size.
func sniff(r io.Reader) (Media, error) {
	head := make([]byte, sniffLimit)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Media{}, fmt.Errorf("failed to read media: %w", err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head).String()
	if !strings.HasPrefix(mtype, "image/") && !strings.HasPrefix(mtype, "video/") {
		return Media{}, fmt.Errorf("%w: detected %s", ErrNotMedia, mtype)
	}

	rest, err := io.Copy(io.Discard, r)
	if err != nil {
		return Media{}, fmt.Errorf("failed to read media: %w", err)
	}
	return Media{ContentType: mtype, Size: int64(n) + rest}, nil
}
