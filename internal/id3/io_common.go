package id3

import (
	"bufio"
	"io"
)

// newBufWriter wraps w in a bufio.Writer sized for the small, fully
// in-memory trees and example sets this tool operates on.
func newBufWriter(w io.Writer) *bufio.Writer {
	return bufio.NewWriterSize(w, 32*1024)
}
