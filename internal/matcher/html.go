package matcher

import (
	"regexp"

	"github.com/digimosa/patternlab/internal/models"
)

// htmlTagPattern: opening or closing tag whose body only holds word chars, '"', '=', whitespace, ':' or ';'
var htmlTagPattern = regexp.MustCompile(`</?[\w"=\s:;]+>`)

type HTMLTagExtractor struct {
	BaseRegexExtractor
}

func NewHTMLTagExtractor() *HTMLTagExtractor {
	return &HTMLTagExtractor{
		BaseRegexExtractor: BaseRegexExtractor{
			Pattern: htmlTagPattern,
			Label:   models.TaskHTML,
		},
	}
}

// ExtractHTMLTags returns every tag in line, in order of appearance.
// Tags with other punctuation in them (hyphens, dots, slashes in values) are skipped.
func ExtractHTMLTags(line string) []string {
	return htmlTagPattern.FindAllString(line, -1)
}
