package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader reads command lines from a stream
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next reads one line and parses it. It returns io.EOF once the stream is
// exhausted and nothing was read.
func (rd *Reader) Next() ([]Action, error) {
	line, err := rd.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, err
	}
	return Parse(strings.TrimRight(line, "\r\n"))
}
