package matcher

import (
	"regexp"

	"github.com/digimosa/patternlab/internal/models"
)

// csvFieldPattern: a quoted run without inner quotes, or a run of anything but quotes and commas.
// Doubled quotes inside a quoted field are not treated as escapes.
var csvFieldPattern = regexp.MustCompile(`"[^"]*"|[^",]+`)

type CSVExtractor struct {
	BaseRegexExtractor
}

func NewCSVExtractor() *CSVExtractor {
	return &CSVExtractor{
		BaseRegexExtractor: BaseRegexExtractor{
			Pattern: csvFieldPattern,
			Label:   models.TaskCSV,
		},
	}
}

// SplitCSVFields returns the fields of line in order, quotes kept on quoted fields.
func SplitCSVFields(line string) []string {
	return csvFieldPattern.FindAllString(line, -1)
}
