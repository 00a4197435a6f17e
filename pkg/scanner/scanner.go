// Package scanner implements the streaming header-block scanner. It consumes
// the transport's byte stream one read chunk at a time and splits it into
// discrete header lines, regardless of how the peer's bytes are chunked —
// a single read may carry several lines, one line may span several reads, and
// the CRLF terminator itself may be split across two reads.
package scanner

import "bytes"

var crlf = []byte("\r\n")

// Scanner accumulates transport reads and extracts complete header lines.
// The zero value is ready to use; one Scanner serves exactly one response.
type Scanner struct {
	// acc holds bytes not yet classified as a complete line. It never
	// contains a full CRLF-terminated line between Feed calls, so each Feed
	// only has to scan the combined view of acc and the fresh chunk.
	acc   []byte
	lines []string
	rest  []byte
	done  bool
}

// Feed consumes one transport read chunk and reports whether the header block
// is now complete. Once complete, further chunks are appended to the body
// remainder untouched.
func (s *Scanner) Feed(chunk []byte) bool {
	if s.done {
		s.rest = append(s.rest, chunk...)
		return true
	}

	// A CRLF may straddle the previous chunk and this one, so scan the
	// carried tail and the fresh bytes as one view.
	buf := append(s.acc, chunk...)
	s.acc = nil

	for {
		idx := bytes.Index(buf, crlf)
		if idx < 0 {
			s.acc = buf
			return false
		}
		if idx == 0 {
			// Blank line: end of the header block. Everything after it
			// already belongs to the body.
			s.done = true
			s.rest = append(s.rest, buf[2:]...)
			return true
		}
		s.lines = append(s.lines, string(buf[:idx]))
		buf = buf[idx+2:]
	}
}

// Done reports whether the terminating blank line has been seen.
func (s *Scanner) Done() bool {
	return s.done
}

// Lines returns the completed header lines in wire order. The first line is
// the status line.
func (s *Scanner) Lines() []string {
	return s.lines
}

// Rest returns the bytes received after the header block, i.e. the start of
// the response body.
func (s *Scanner) Rest() []byte {
	return s.rest
}
