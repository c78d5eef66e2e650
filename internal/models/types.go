package models

import "fmt"

// Task identifies one of the matching routines, numbered as in the menu
type Task int

const (
	TaskEmail          Task = 1
	TaskStrictPhone    Task = 2
	TaskCSV            Task = 3
	TaskHTML           Task = 4
	TaskHeuristicPhone Task = 5
)

// Tasks lists every task in menu order
var Tasks = []Task{TaskEmail, TaskStrictPhone, TaskCSV, TaskHTML, TaskHeuristicPhone}

// Valid reports whether t is one of the known tasks
func (t Task) Valid() bool {
	return t >= TaskEmail && t <= TaskHeuristicPhone
}

// String returns the short machine name used in JSON output
func (t Task) String() string {
	switch t {
	case TaskEmail:
		return "email"
	case TaskStrictPhone:
		return "phone-strict"
	case TaskCSV:
		return "csv"
	case TaskHTML:
		return "html"
	case TaskHeuristicPhone:
		return "phone-heuristic"
	default:
		return fmt.Sprintf("task(%d)", int(t))
	}
}

// Title is the menu label
func (t Task) Title() string {
	switch t {
	case TaskEmail:
		return "Validate an email address"
	case TaskStrictPhone:
		return "Check phone numbers against the strict format"
	case TaskCSV:
		return "Split a CSV document into fields"
	case TaskHTML:
		return "Find HTML tags"
	case TaskHeuristicPhone:
		return "Recognize phone numbers in free text"
	default:
		return t.String()
	}
}

// MarshalText makes tasks render by name in JSON
func (t Task) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// LineMatch holds what one source line produced
type LineMatch struct {
	Line   int      `json:"line"`   // 1-based line number in the source
	Values []string `json:"values"` // Extracted values in source order
}

// Result is the outcome of running one task
type Result struct {
	Task      Task        `json:"task"`
	Source    string      `json:"source,omitempty"` // Input file path, empty for stdin tasks
	Input     string      `json:"input,omitempty"`  // The email token for TaskEmail
	Valid     *bool       `json:"valid,omitempty"`  // Verdict for TaskEmail
	Matches   []LineMatch `json:"matches,omitempty"`
	LinesRead int         `json:"lines_read"`
}

// Values flattens all matches in order
func (r *Result) Values() []string {
	var out []string
	for _, m := range r.Matches {
		out = append(out, m.Values...)
	}
	return out
}
