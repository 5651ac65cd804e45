package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/readage/internal/config"
	"github.com/jeduden/readage/internal/discovery"
	"github.com/jeduden/readage/internal/document"
	"github.com/jeduden/readage/internal/engine"
	vlog "github.com/jeduden/readage/internal/log"
	"github.com/jeduden/readage/internal/output"
	"github.com/jeduden/readage/internal/readability"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: readage <command> [flags] [files...]

Commands:
  score     Estimate the reader age of documents (default when given file arguments)
  list      List the available readability algorithms
  init      Generate a default .readage.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'readage <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "score":
		return runScore(os.Args[2:])
	case "list":
		return runList(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	}

	if looksLikeFileArg(first) {
		return runScore(os.Args[1:])
	}
	fmt.Fprintf(os.Stderr, "readage: unknown command %q\n\n%s", first, usageText)
	return 2
}

// looksLikeFileArg reports whether arg should be handed to "score":
// a flag, an existing path or a glob pattern.
func looksLikeFileArg(arg string) bool {
	if strings.HasPrefix(arg, "-") || strings.ContainsAny(arg, "*?[") {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("readage %s\n", version)
}

type scoreOptions struct {
	configPath  string
	algorithms  string
	format      string
	noColor     bool
	quiet       bool
	verbose     bool
	noGitignore bool
	plain       bool
	showText    bool
	maxAge      float64

	noFollowSymlinks []string
}

// runScore implements the "score" subcommand.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var opts scoreOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.algorithms, "algorithms", "a", "", "Comma-separated algorithms to run (ari, fk, smog, cl, all)")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress report output")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config, files, and algorithms on stderr")
	fs.BoolVar(&opts.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.BoolVar(&opts.plain, "plain", false, "Score Markdown files as plain text")
	fs.BoolVar(&opts.showText, "show-text", false, "Print the scored text before its statistics")
	fs.StringSliceVar(&opts.noFollowSymlinks, "no-follow-symlinks", nil, "Skip symlinks matching these glob patterns (repeatable)")
	fs.Float64Var(&opts.maxAge, "max-age", 0, "Exit with code 1 when a document's average age exceeds this value")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readage score [flags] [files...]\n\n"+
			"Estimate the reader age of plain-text and Markdown documents.\n\n"+
			"Files can be paths, directories (walked recursively for *.txt, *.text,\n"+
			"*.md and *.markdown), or glob patterns. With no file arguments, reads\n"+
			"from stdin if piped, otherwise scores the files matched by the\n"+
			"\"files\" patterns of the config.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// --quiet suppresses verbose
	if opts.quiet {
		opts.verbose = false
	}
	if opts.format != "text" && opts.format != "json" {
		fmt.Fprintf(os.Stderr, "readage: unknown format %q (supported: text, json)\n", opts.format)
		return 2
	}

	logger := &vlog.Logger{Enabled: opts.verbose, W: os.Stderr}

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readage: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	runner := &engine.Runner{Config: cfg, Plain: opts.plain, Logger: logger}
	if fs.Changed("algorithms") {
		names := readability.SplitList(opts.algorithms)
		if names == nil {
			names = []string{}
		}
		algs, err := readability.Resolve(names)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readage: --algorithms: %v\n", err)
			return 2
		}
		runner.Algorithms = algs
	}

	walkOpts := document.WalkOpts{
		Gitignore:        !opts.noGitignore,
		NoFollowSymlinks: append(append([]string(nil), cfg.NoFollowSymlinks...), opts.noFollowSymlinks...),
		Ignore:           cfg.Ignore,
	}

	files := fs.Args()
	if len(files) == 0 {
		if isStdinPipe() {
			return scoreStdin(runner, cfg, opts)
		}
		files, err = discoverFiles(cfg, cfgPath, walkOpts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readage: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}
		return report(runner.Run(files), len(files), cfg, opts, logger)
	}

	resolved, err := document.Resolve(files, walkOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readage: %v\n", err)
		return 2
	}
	if len(resolved) == 0 {
		return 0
	}

	return report(runner.Run(resolved), len(resolved), cfg, opts, logger)
}

// scoreStdin reads a document from stdin and scores it.
func scoreStdin(runner *engine.Runner, cfg *config.Config, opts scoreOptions) int {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readage: reading stdin: %v\n", err)
		return 2
	}
	return report(runner.RunSource("<stdin>", source), 1, cfg, opts, runner.Logger)
}

// discoverFiles expands the config's "files" patterns relative to the
// directory holding the config, or the working directory.
func discoverFiles(cfg *config.Config, cfgPath string, walkOpts document.WalkOpts) ([]string, error) {
	if len(cfg.Files) == 0 {
		return nil, nil
	}
	baseDir := "."
	if cfgPath != "" {
		baseDir = filepath.Dir(cfgPath)
	}
	return discovery.Discover(discovery.Options{
		Patterns: cfg.Files,
		BaseDir:  baseDir,
		Walk:     walkOpts,
	})
}

// report prints errors and reports and returns the exit code: 2 when
// nothing could be scored because of errors, 1 when a report exceeds
// the age limit, 0 otherwise.
func report(result *engine.Result, scanned int, cfg *config.Config, opts scoreOptions, logger *vlog.Logger) int {
	printErrors(result.Errors)

	if len(result.Errors) > 0 && len(result.Reports) == 0 {
		return 2
	}
	if !opts.quiet {
		if code := formatReports(result.Reports, opts); code != 0 {
			return code
		}
	}
	logger.Printf("scored %d of %d files", len(result.Reports), scanned)

	maxAge := cfg.MaxAge
	if opts.maxAge > 0 {
		maxAge = opts.maxAge
	}
	if exceeding := result.Exceeding(maxAge); len(exceeding) > 0 {
		for _, r := range exceeding {
			fmt.Fprintf(os.Stderr, "readage: %s: average age %s exceeds %g\n",
				r.Path, r.Result.Average, maxAge)
		}
		return 1
	}
	if len(result.Errors) > 0 {
		return 2
	}
	return 0
}

// formatReports writes reports to stdout using the selected format.
// Returns a non-zero exit code on write error, or 0 on success.
func formatReports(reports []document.Report, opts scoreOptions) int {
	var formatter output.Formatter
	switch opts.format {
	case "json":
		formatter = &output.JSONFormatter{}
	default:
		formatter = &output.TextFormatter{Color: !opts.noColor && isTerminal(os.Stdout), ShowText: opts.showText}
	}
	if err := formatter.Format(os.Stdout, reports); err != nil {
		fmt.Fprintf(os.Stderr, "readage: error writing output: %v\n", err)
		return 2
	}
	return 0
}

// printErrors writes runtime errors to stderr.
func printErrors(errs []error) {
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "readage: %v\n", e)
	}
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// isTerminal returns true if f is a character device.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged config, the path that was loaded (empty if defaults only), and
// any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return config.Merge(defaults, loaded), configPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}

	return config.Merge(defaults, loaded), discovered, nil
}
