package extractor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// LineReader defines the interface for turning a source into text lines
type LineReader interface {
	ReadLines(reader io.Reader) ([]string, error)
}

// maxLineSize bounds a single line; longer lines fail the read instead of being split
const maxLineSize = 1024 * 1024

// TextReader implements line reading for plain text files.
// When Encoding is set, the input is decoded from that code page to UTF-8 first.
type TextReader struct {
	Encoding encoding.Encoding
}

func (r *TextReader) ReadLines(reader io.Reader) ([]string, error) {
	if r.Encoding != nil {
		reader = transform.NewReader(reader, r.Encoding.NewDecoder())
	}
	return scanLines(reader)
}

// scanLines splits on '\n' and drops a trailing '\r', so CRLF files read the same as LF files
func scanLines(reader io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// LookupEncoding resolves a WHATWG encoding label such as "windows-1251" or "koi8-r".
// UTF-8 (and the empty label) resolve to nil, meaning no transcoding is needed.
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return nil, nil
	}
	return enc, nil
}
