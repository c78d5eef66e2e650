package main

import (
	"fmt"
	"os"

	"github.com/digimosa/patternlab/internal/config"
	"github.com/digimosa/patternlab/internal/extractor"
	"github.com/digimosa/patternlab/internal/models"
	"github.com/digimosa/patternlab/internal/reporting"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		task       int
		phonesFile string
		csvFile    string
		htmlFile   string
		format     string
		verbose    bool
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.IntVarP(&task, "task", "t", 0, "Run task N without showing the menu (1-5)")
	flag.StringVar(&phonesFile, "phones", "", "Phone source file")
	flag.StringVar(&csvFile, "csv", "", "CSV source file (.csv or .xlsx)")
	flag.StringVar(&htmlFile, "html", "", "HTML source file")
	flag.StringVarP(&format, "format", "f", "", "Output format: text or json")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Log source handling to stderr")
	flag.BoolVarP(&help, "help", "h", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] loading config: %v\n", err)
		return
	}

	// Flags override file and environment
	if phonesFile != "" {
		cfg.PhonesFile = phonesFile
	}
	if csvFile != "" {
		cfg.CSVFile = csvFile
	}
	if htmlFile != "" {
		cfg.HTMLFile = htmlFile
	}
	if format != "" {
		cfg.Format = format
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] invalid configuration: %v\n", err)
		return
	}

	outputEnc, err := extractor.LookupEncoding(cfg.OutputEncoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] output encoding: %v\n", err)
		return
	}
	stdout := reporting.NewEncodedWriter(os.Stdout, outputEnc)
	defer stdout.Close()

	app, err := NewApplication(cfg, os.Stdin, stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		return
	}

	if err := app.Run(models.Task(task)); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] writing output: %v\n", err)
	}
}

func printUsage() {
	fmt.Println("patternlab - pattern matching over input lines and small text files")
	fmt.Println()
	fmt.Println("Usage: patternlab [OPTIONS]")
	fmt.Println()
	fmt.Println("Tasks:")
	for _, t := range models.Tasks {
		fmt.Printf("  %d. %s\n", int(t), t.Title())
	}
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  PATTERNLAB_CONFIG           Path to config file (default: patternlab.yaml)")
	fmt.Println("  PATTERNLAB_PHONES_FILE      Phone source file (default: phones.txt)")
	fmt.Println("  PATTERNLAB_CSV_FILE         CSV source file (default: data.csv)")
	fmt.Println("  PATTERNLAB_HTML_FILE        HTML source file (default: test.html)")
	fmt.Println("  PATTERNLAB_INPUT_ENCODING   Code page of text sources (default: utf-8)")
	fmt.Println("  PATTERNLAB_OUTPUT_ENCODING  Code page of standard output (default: utf-8)")
	fmt.Println("  PATTERNLAB_FORMAT           text or json")
	fmt.Println("  PATTERNLAB_VERBOSE          true/false")
}
