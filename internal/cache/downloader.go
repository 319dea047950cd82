package cache

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/iTrooz/cached-downloader/internal/job"
)

// DefaultBufferSize is the chunk size used when copying a download to disk
const DefaultBufferSize = 8192

// Downloader downloads URLs into a flat cache directory and serves them from
// there afterwards. Entries are never expired or replaced, except empty ones.
type Downloader struct {
	cacheDir   string
	client     *http.Client
	bufferSize int
	userAgent  string
}

// Option configures a Downloader
type Option func(*Downloader)

// WithClient sets the HTTP client used for downloads
func WithClient(client *http.Client) Option {
	return func(d *Downloader) {
		d.client = client
	}
}

// WithBufferSize sets the copy chunk size
func WithBufferSize(size int) Option {
	return func(d *Downloader) {
		if size > 0 {
			d.bufferSize = size
		}
	}
}

// WithUserAgent sets the User-Agent header sent upstream
func WithUserAgent(userAgent string) Option {
	return func(d *Downloader) {
		d.userAgent = userAgent
	}
}

// New creates a downloader storing its files in cacheDir
func New(cacheDir string, opts ...Option) *Downloader {
	d := &Downloader{
		cacheDir:   cacheDir,
		client:     http.DefaultClient,
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dir returns the cache directory
func (d *Downloader) Dir() string {
	return d.cacheDir
}

// Init ensures the cache directory exists
func (d *Downloader) Init() error {
	return os.MkdirAll(d.cacheDir, 0755)
}

// FilePath returns the cache file used for url.
// ok is false when url cannot be cached.
func (d *Downloader) FilePath(url string) (path string, ok bool) {
	name, ok := Normalize(url)
	if !ok {
		return "", false
	}
	return filepath.Join(d.cacheDir, name), true
}

// Download returns the cache file holding the content of url, downloading it
// first if it is missing or empty.
// Returns "", nil when url cannot be cached.
// jc may be nil; a cancelled jc aborts the download with ErrInterrupted, and
// already written bytes stay in the cache file.
func (d *Downloader) Download(jc job.Context, url string) (string, error) {
	path, ok := d.FilePath(url)
	if !ok {
		logrus.Debugf("Not caching %q: no cache file for this URL", url)
		return "", nil
	}

	if isCached(path) {
		logrus.Debugf("Cache hit for %s", url)
		return path, nil
	}

	if jc == nil {
		jc = neverCancelled{}
	}

	logrus.Debugf("Cache miss for %s, downloading to %s", url, path)
	written, err := d.fetch(jc, url, path)
	if err != nil {
		return "", err
	}

	logrus.Debugf("Cached %s (%d bytes)", url, written)
	return path, nil
}

// isCached reports whether path is a non-empty regular file
func isCached(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

func (d *Downloader) fetch(jc job.Context, url, path string) (int64, error) {
	// the listener aborts the request, which unblocks a pending read
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jc.SetCancelListener(job.CancelListener(cancel))
	defer jc.SetCancelListener(nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &IOError{Op: "open", URL: url, Err: err}
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		if jc.IsCancelled() {
			err = ErrInterrupted
		}
		return 0, &IOError{Op: "open", URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &IOError{Op: "open", URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, &IOError{Op: "open", URL: url, Err: err}
	}

	written, err := dump(jc, resp.Body, file, make([]byte, d.bufferSize))
	closeErr := file.Close()
	if err != nil {
		return written, &IOError{Op: "copy", URL: url, Err: err}
	}
	if closeErr != nil {
		return written, &IOError{Op: "close", URL: url, Err: closeErr}
	}

	return written, nil
}

type neverCancelled struct{}

func (neverCancelled) IsCancelled() bool { return false }
func (neverCancelled) SetCancelListener(job.CancelListener) {}
