//go:generate mockgen -destination=./mocks/dirs.go . Resolver

// Picks the directory downloaded files are stored in
package dirs

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DefaultDirName is the name of the cache directory created under a cache base
const DefaultDirName = "cached_images"

// Resolver provides the base directories a cache can live in
type Resolver interface {
	// preferred (e.g. external or removable) cache base, if there is one
	PreferredCacheBase() (string, bool)
	// base that is always usable
	FallbackCacheBase() string
}

// ResolveRoot returns the cache root: name under the preferred base when it is
// a usable directory, name under the fallback base otherwise.
// The fallback is returned as-is, without checking it exists.
func ResolveRoot(r Resolver, name string) string {
	if base, ok := r.PreferredCacheBase(); ok && isDir(base) {
		dir := filepath.Join(base, name)
		if isDir(dir) {
			return dir
		}
		err := os.MkdirAll(dir, 0755)
		if err == nil {
			return dir
		}
		logrus.Debugf("Cannot use preferred cache directory %s: %v", dir, err)
	}
	return filepath.Join(r.FallbackCacheBase(), name)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ConfigResolver resolves cache bases from configured paths
type ConfigResolver struct {
	External string
	Internal string
}

// PreferredCacheBase returns the external directory, if configured
func (c ConfigResolver) PreferredCacheBase() (string, bool) {
	return c.External, c.External != ""
}

// FallbackCacheBase returns the internal directory, or the user cache
// directory when none is configured
func (c ConfigResolver) FallbackCacheBase() string {
	if c.Internal != "" {
		return c.Internal
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "cachedl")
	}
	return filepath.Join(os.TempDir(), "cachedl")
}
