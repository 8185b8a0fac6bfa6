package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every Write out to all attached writers. Used to tee
// logs to a file and stdout at the same time.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

// Write writes p to every attached writer. The returned n is the sum of
// bytes written across all of them; failures are collected per writer and
// do not stop the fan-out.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, writeErr := w.Write(p)
		if writeErr != nil {
			err = multierr.Append(err, writeErr)
			continue
		}
		n += written
	}
	return n, err
}
