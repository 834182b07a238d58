package mcp

import "bytes"

// LineFramer splits an incoming byte stream into newline-delimited frames.
// Partial lines are buffered across Feed calls, so a message split over
// multiple reads is reassembled before being handed to the dispatcher.
type LineFramer struct {
	buf []byte
}

// Feed appends chunk to the internal buffer and returns every complete line
// that is now available, in arrival order. Trailing carriage returns are
// stripped. Bytes after the last newline stay buffered for the next call.
func (f *LineFramer) Feed(chunk []byte) []string {
	f.buf = append(f.buf, chunk...)

	var lines []string
	for {
		idx := bytes.IndexByte(f.buf, '\n')
		if idx < 0 {
			break
		}
		line := f.buf[:idx]
		f.buf = f.buf[idx+1:]
		line = bytes.TrimSuffix(line, []byte("\r"))
		lines = append(lines, string(line))
	}
	return lines
}

// Pending reports whether an incomplete line is still buffered.
func (f *LineFramer) Pending() bool {
	return len(f.buf) > 0
}
