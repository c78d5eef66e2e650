package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/digimosa/patternlab/internal/config"
	"github.com/digimosa/patternlab/internal/extractor"
	"github.com/digimosa/patternlab/internal/models"
	"github.com/digimosa/patternlab/internal/reporting"
	"github.com/digimosa/patternlab/internal/runner"
)

// Application wires the menu, the runner and the reporter together
type Application struct {
	cfg      *config.Config
	runner   *runner.Runner
	reporter *reporting.Reporter
	input    *bufio.Scanner
	out      io.Writer
	errOut   io.Writer
	prompt   io.Writer
}

// NewApplication builds the application around the given streams.
// Stdin is read token by token: first the menu choice, then the email.
func NewApplication(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) (*Application, error) {
	inputEnc, err := extractor.LookupEncoding(cfg.InputEncoding)
	if err != nil {
		return nil, fmt.Errorf("input encoding: %w", err)
	}

	input := bufio.NewScanner(stdin)
	input.Split(bufio.ScanWords)

	prompt := stdout
	if cfg.Format == config.FormatJSON {
		prompt = io.Discard
	}

	logger := log.New(stderr, "", log.LstdFlags)

	return &Application{
		cfg:      cfg,
		runner:   runner.NewRunner(cfg, extractor.NewFactory(inputEnc), logger),
		reporter: reporting.NewReporter(stdout, cfg.Format),
		input:    input,
		out:      stdout,
		errOut:   stderr,
		prompt:   prompt,
	}, nil
}

// Run executes one task. A zero task asks for it on the menu.
// Only output write failures are returned; bad choices and unreadable sources are reported and swallowed.
func (a *Application) Run(task models.Task) error {
	if task == 0 {
		a.printMenu()
		task = a.readChoice()
	}

	if !task.Valid() {
		_, err := fmt.Fprintln(a.out, "Invalid choice.")
		return err
	}

	if task == models.TaskEmail {
		fmt.Fprint(a.prompt, "Enter email: ")
		res := a.runner.RunEmail(a.nextToken())
		return a.reporter.Write(&res)
	}

	res, err := a.runner.Run(task)
	if err != nil {
		a.reportSourceError(a.cfg.SourceFor(task), err)
		return nil
	}
	return a.reporter.Write(&res)
}

func (a *Application) printMenu() {
	fmt.Fprintln(a.prompt, "Choose a task:")
	for _, t := range models.Tasks {
		fmt.Fprintf(a.prompt, "%d. %s\n", int(t), t.Title())
	}
}

// readChoice returns 0 when the next token is missing or not a number.
// A token with trailing junk such as "5abc" is rejected as a whole, not read as 5.
func (a *Application) readChoice() models.Task {
	n, err := strconv.Atoi(a.nextToken())
	if err != nil {
		return 0
	}
	return models.Task(n)
}

func (a *Application) nextToken() string {
	if !a.input.Scan() {
		return ""
	}
	return a.input.Text()
}

func (a *Application) reportSourceError(path string, err error) {
	switch {
	case errors.Is(err, runner.ErrUnsupportedSource):
		fmt.Fprintf(a.errOut, "[ERROR] cannot read %s: %v\n", path, err)
	default:
		fmt.Fprintf(a.errOut, "[ERROR] could not open %s: %v\n", path, err)
	}
}
