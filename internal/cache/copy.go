package cache

import (
	"errors"
	"fmt"
	"io"

	"github.com/iTrooz/cached-downloader/internal/job"
)

// dump copies src into dst using buf, checking jc before every write.
// Bytes read after cancellation are never written.
func dump(jc job.Context, src io.Reader, dst io.Writer, buf []byte) (int64, error) {
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if jc.IsCancelled() {
				return written, ErrInterrupted
			}
			w, err := dst.Write(buf[:n])
			written += int64(w)
			if err != nil {
				return written, fmt.Errorf("write: %w", err)
			}
			if w < n {
				return written, io.ErrShortWrite
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return written, nil
			}
			if jc.IsCancelled() {
				return written, ErrInterrupted
			}
			return written, fmt.Errorf("read: %w", readErr)
		}
	}
}
