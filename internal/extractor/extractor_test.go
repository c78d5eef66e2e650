package extractor

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func TestTextReaderLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"empty", "", nil},
	}

	r := &TextReader{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ReadLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextReaderDecodesCodePage(t *testing.T) {
	want := "Звоните 8(912)345-67-89"
	encoded, err := charmap.Windows1251.NewEncoder().String(want)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	r := &TextReader{Encoding: charmap.Windows1251}
	got, err := r.ReadLines(strings.NewReader(encoded + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want [%q]", got, want)
	}
}

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		label   string
		wantNil bool
		wantErr bool
	}{
		{"", true, false},
		{"utf-8", true, false},
		{"UTF8", true, false},
		{"windows-1251", false, false},
		{"cp1251", false, false},
		{"koi8-r", false, false},
		{"klingon", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			enc, err := LookupEncoding(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupEncoding(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (enc == nil) != tt.wantNil {
				t.Errorf("LookupEncoding(%q) = %v, wantNil %v", tt.label, enc, tt.wantNil)
			}
		})
	}
}

func TestExcelReaderJoinsRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]string{
		"A1": "a",
		"B1": "b,c",
		"C1": "d",
		"A2": "x",
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("failed to set %s: %v", cell, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}

	got, err := (&ExcelReader{}).ReadLines(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{`a,"b,c",d`, "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPDFReaderRejectsGarbage(t *testing.T) {
	if _, err := (&PDFReader{}).ReadLines(strings.NewReader("not a pdf")); err == nil {
		t.Error("expected error for non-PDF input")
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory(charmap.Windows1251)

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"phones.txt", "*extractor.TextReader", false},
		{"data.CSV", "*extractor.TextReader", false},
		{"test.html", "*extractor.TextReader", false},
		{"noext", "*extractor.TextReader", false},
		{"doc.pdf", "*extractor.PDFReader", false},
		{"book.xlsx", "*extractor.ExcelReader", false},
		{"photo.png", "", true},
		{"archive.zip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, _, err := f.GetReaderForFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := reflect.TypeOf(r).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	r, _, _ := f.GetReaderForFile("phones.txt")
	if tr := r.(*TextReader); tr.Encoding != charmap.Windows1251 {
		t.Error("expected text reader to carry the factory encoding")
	}
}
