package runner

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/digimosa/patternlab/internal/config"
	"github.com/digimosa/patternlab/internal/extractor"
	"github.com/digimosa/patternlab/internal/matcher"
	"github.com/digimosa/patternlab/internal/models"
)

var (
	// ErrSourceUnavailable means the input file could not be opened or read
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrUnsupportedSource means the input file has a binary extension
	ErrUnsupportedSource = errors.New("unsupported source")
	// ErrUnknownTask is returned for task numbers outside the menu
	ErrUnknownTask = errors.New("unknown task")
)

// Runner executes one task at a time against its configured source
type Runner struct {
	cfg           *config.Config
	readerFactory *extractor.Factory
	logger        *log.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(cfg *config.Config, factory *extractor.Factory, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		cfg:           cfg,
		readerFactory: factory,
		logger:        logger,
	}
}

// RunEmail validates a single token
func (r *Runner) RunEmail(token string) models.Result {
	valid := matcher.ValidEmail(token)
	if r.cfg.Verbose {
		r.logger.Printf("[RUN] email %q valid=%v", token, valid)
	}
	return models.Result{
		Task:  models.TaskEmail,
		Input: token,
		Valid: &valid,
	}
}

// Run executes a file based task against the source configured for it
func (r *Runner) Run(task models.Task) (models.Result, error) {
	return r.RunFile(task, r.cfg.SourceFor(task))
}

// RunFile executes a file based task against path.
// Lines without matches are left out of the result.
func (r *Runner) RunFile(task models.Task, path string) (models.Result, error) {
	res := models.Result{
		Task:   task,
		Source: path,
	}

	m, ok := matcher.ForTask(task)
	if !ok {
		return res, fmt.Errorf("%w: %v", ErrUnknownTask, task)
	}

	lineReader, ext, err := r.readerFactory.GetReaderForFile(path)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
	}

	if r.cfg.Verbose {
		r.logger.Printf("[SOURCE] reading %s (%s) for %v", path, ext, task)
	}

	lines, err := readSource(path, lineReader)
	if err != nil {
		if r.cfg.Verbose {
			r.logger.Printf("[ERROR] %s: %v", path, err)
		}
		return res, err
	}
	res.LinesRead = len(lines)

	for i, line := range lines {
		values := m.Extract(line)
		if len(values) == 0 {
			continue
		}
		res.Matches = append(res.Matches, models.LineMatch{
			Line:   i + 1,
			Values: values,
		})
	}

	if r.cfg.Verbose {
		r.logger.Printf("[RUN] %v: %d of %d lines matched", task, len(res.Matches), res.LinesRead)
	}

	return res, nil
}

// readSource opens path, reads it and closes it on every return path
func readSource(path string, lineReader extractor.LineReader) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	lines, err := lineReader.ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file: %w", ErrSourceUnavailable, err)
	}
	return lines, nil
}
