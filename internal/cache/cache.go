// Handles downloading remote files into a disk cache
package cache

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIO matches every failure returned by Download
	ErrIO = errors.New("input/output failure")
	// ErrInterrupted means the download was cancelled through its job context
	ErrInterrupted = errors.New("download interrupted")
)

// IOError describes a failed download
type IOError struct {
	Op  string // "open", "copy" or "close"
	URL string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes every IOError match ErrIO
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// Normalize turns url into a file name: a leading http:// or https:// is
// removed and every character other than [A-Za-z0-9_] becomes '_'.
// An empty url, or a bare scheme, has no file name.
func Normalize(url string) (string, bool) {
	if url == "" {
		return "", false
	}

	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		url = rest
	} else if rest, ok := strings.CutPrefix(url, "https://"); ok {
		url = rest
	}

	// a bare scheme would map to the cache root itself
	if url == "" {
		return "", false
	}

	return strings.Map(func(r rune) rune {
		if r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, url), true
}
