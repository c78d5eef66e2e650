package extractor

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFReader implements line reading for PDF files, page by page
type PDFReader struct{}

func (r *PDFReader) ReadLines(reader io.Reader) ([]string, error) {
	// ledongthuc/pdf needs an io.ReaderAt and the total size.
	var readerAt io.ReaderAt
	var size int64

	switch src := reader.(type) {
	case *os.File:
		stat, err := src.Stat()
		if err != nil {
			return nil, err
		}
		readerAt = src
		size = stat.Size()
	case *bytes.Reader:
		readerAt = src
		size = int64(src.Len())
	default:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		readerAt = bytes.NewReader(data)
		size = int64(len(data))
	}

	doc, err := pdf.NewReader(readerAt, size)
	if err != nil {
		return nil, err
	}

	var lines []string
	totalPages := doc.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue // Skip unreadable page
		}

		pageLines, err := scanLines(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		lines = append(lines, pageLines...)
	}

	return lines, nil
}
