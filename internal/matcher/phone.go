package matcher

import (
	"regexp"
	"strings"

	"github.com/digimosa/patternlab/internal/models"
)

// strictPhonePattern: 8 or +7, area code in parentheses, then NNN-NN-NN
var strictPhonePattern = regexp.MustCompile(`^(8|\+7)\(\d{3}\)\d{3}-\d{2}-\d{2}$`)

const (
	// maxCandidateLen caps how far a heuristic scan reaches from its start position
	maxCandidateLen = 25
	phoneDigits     = 11
)

// MatchStrictPhone reports whether the whole line is a phone number in the strict format.
func MatchStrictPhone(line string) bool {
	return strictPhonePattern.MatchString(line)
}

type StrictPhoneExtractor struct {
	BaseRegexExtractor
}

func NewStrictPhoneExtractor() *StrictPhoneExtractor {
	return &StrictPhoneExtractor{
		BaseRegexExtractor: BaseRegexExtractor{
			Pattern: strictPhonePattern,
			Label:   models.TaskStrictPhone,
		},
	}
}

// Extract returns the line itself when it matches, nothing otherwise
func (e *StrictPhoneExtractor) Extract(line string) []string {
	if !e.Pattern.MatchString(line) {
		return nil
	}
	return []string{line}
}

// HeuristicPhoneExtractor finds phone-like substrings in noisy text.
// It tries every '8' and "+7" in a line independently, so one line may yield several numbers.
type HeuristicPhoneExtractor struct{}

func NewHeuristicPhoneExtractor() *HeuristicPhoneExtractor {
	return &HeuristicPhoneExtractor{}
}

func (e *HeuristicPhoneExtractor) Task() models.Task {
	return models.TaskHeuristicPhone
}

func (e *HeuristicPhoneExtractor) Extract(line string) []string {
	return ExtractPhones(line)
}

// ExtractPhones runs the heuristic scan over line and returns accepted candidates in order.
func ExtractPhones(line string) []string {
	var found []string
	for i := 0; i < len(line); i++ {
		if !isPhoneStart(line, i) {
			continue
		}
		candidate := phoneCandidate(line, i)
		if acceptPhone(candidate) {
			// Acceptance counts a trailing space as a separator; it is only dropped from the output.
			found = append(found, strings.TrimRight(candidate, " "))
		}
	}
	return found
}

func isPhoneStart(line string, i int) bool {
	if line[i] == '8' {
		return true
	}
	return line[i] == '+' && i+1 < len(line) && line[i+1] == '7'
}

// phoneCandidate collects allowed characters from start, up to maxCandidateLen
func phoneCandidate(line string, start int) string {
	end := start
	for end < len(line) && end-start < maxCandidateLen && isPhoneChar(line[end]) {
		end++
	}
	return line[start:end]
}

func isPhoneChar(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == ' ' || c == '(' || c == ')'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// acceptPhone requires exactly 11 digits, both parentheses and a '-' or space separator
func acceptPhone(candidate string) bool {
	if countDigits(candidate) != phoneDigits {
		return false
	}
	return strings.Contains(candidate, "(") &&
		strings.Contains(candidate, ")") &&
		strings.ContainsAny(candidate, "- ")
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}
