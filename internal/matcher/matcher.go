package matcher

import (
	"regexp"

	"github.com/digimosa/patternlab/internal/models"
)

// Extractor defines the interface for per-line matching strategies
type Extractor interface {
	Extract(line string) []string
	Task() models.Task
}

// BaseRegexExtractor implements the common "all non-overlapping matches" scan
type BaseRegexExtractor struct {
	Pattern *regexp.Regexp
	Label   models.Task
}

func (e *BaseRegexExtractor) Extract(line string) []string {
	if e.Pattern == nil {
		return nil
	}
	return e.Pattern.FindAllString(line, -1)
}

func (e *BaseRegexExtractor) Task() models.Task {
	return e.Label
}

// ForTask returns the line extractor for a file-based task.
// TaskEmail works on a single token and has no extractor.
func ForTask(t models.Task) (Extractor, bool) {
	switch t {
	case models.TaskStrictPhone:
		return NewStrictPhoneExtractor(), true
	case models.TaskCSV:
		return NewCSVExtractor(), true
	case models.TaskHTML:
		return NewHTMLTagExtractor(), true
	case models.TaskHeuristicPhone:
		return NewHeuristicPhoneExtractor(), true
	default:
		return nil, false
	}
}
