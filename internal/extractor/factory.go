package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
)

// Factory handles creation of appropriate line readers
type Factory struct {
	textEncoding encoding.Encoding
}

// NewFactory creates a reader factory; textEncoding is applied to plain text sources and may be nil
func NewFactory(textEncoding encoding.Encoding) *Factory {
	return &Factory{textEncoding: textEncoding}
}

// GetReaderForFile returns the appropriate LineReader based on file extension
func (f *Factory) GetReaderForFile(path string) (LineReader, string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if !f.IsSupported(ext) {
		return nil, ext, fmt.Errorf("unsupported file extension: %s", ext)
	}

	var reader LineReader
	switch ext {
	case ".pdf":
		reader = &PDFReader{}
	case ".xlsx":
		reader = &ExcelReader{}
	default:
		// .txt, .csv, .html and anything else textual
		reader = &TextReader{Encoding: f.textEncoding}
	}

	return reader, ext, nil
}

// IsSupported checks if the file extension can be read as lines
func (f *Factory) IsSupported(ext string) bool {
	switch ext {
	case ".exe", ".dll", ".so", ".dylib", ".bin":
		return false
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp":
		return false
	case ".mp3", ".mp4", ".wav", ".avi", ".mov", ".mkv":
		return false
	case ".zip", ".tar", ".gz", ".rar", ".7z", ".iso":
		return false
	default:
		return true
	}
}
