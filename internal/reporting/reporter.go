package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/digimosa/patternlab/internal/config"
	"github.com/digimosa/patternlab/internal/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Reporter renders task results in the configured format
type Reporter struct {
	w      io.Writer
	format string
}

func NewReporter(w io.Writer, format string) *Reporter {
	return &Reporter{w: w, format: format}
}

func (r *Reporter) Write(res *models.Result) error {
	if r.format == config.FormatJSON {
		return r.writeJSON(res)
	}
	return r.writeText(res)
}

func (r *Reporter) writeJSON(res *models.Result) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

func (r *Reporter) writeText(res *models.Result) error {
	var sb strings.Builder

	switch res.Task {
	case models.TaskEmail:
		if res.Valid != nil && *res.Valid {
			sb.WriteString("Email is valid.\n")
		} else {
			sb.WriteString("Email is invalid.\n")
		}
	case models.TaskStrictPhone:
		sb.WriteString("Numbers matching the pattern:\n")
		writeEach(&sb, res)
	case models.TaskHeuristicPhone:
		sb.WriteString("Recognized phone numbers:\n")
		writeEach(&sb, res)
	case models.TaskCSV:
		// One output line per record, fields separated by a space
		for _, m := range res.Matches {
			sb.WriteString(strings.Join(m.Values, " "))
			sb.WriteByte('\n')
		}
	case models.TaskHTML:
		writeEach(&sb, res)
	default:
		return fmt.Errorf("no text rendering for %v", res.Task)
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func writeEach(sb *strings.Builder, res *models.Result) {
	for _, v := range res.Values() {
		sb.WriteString(v)
		sb.WriteByte('\n')
	}
}

// NewEncodedWriter wraps w so UTF-8 text is written in enc.
// Runes enc cannot represent are replaced instead of failing the write.
// The caller must Close the result to flush it. A nil enc passes text through.
func NewEncodedWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	if enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
