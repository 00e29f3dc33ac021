// Package main implements the qasmc front end entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/reusee/dscope"
	"github.com/you-not-fish/qasmc/internal/configs"
	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/logs"
	"github.com/you-not-fish/qasmc/internal/pipeline"
	"github.com/you-not-fish/qasmc/internal/sanity"
	"github.com/you-not-fish/qasmc/internal/syntax"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	output     = flag.String("o", "", "Output file")
	filename   = flag.String("filename", "", "Source name used in locations when reading stdin")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn or error)")
	noPrint    = flag.Bool("no-print", false, "Do not print the program on success")
	verify     = flag.Bool("verify", false, "Verify links and types after each phase")
	dumpBefore = flag.String("dump-before", "", "Dump AST before phase (name or \"*\")")
	dumpAfter  = flag.String("dump-after", "", "Dump AST after phase (name or \"*\")")
	version    = flag.Bool("version", false, "Print version")
	ruleFiles  stringList
)

func init() {
	flag.Var(&ruleFiles, "rules", "Sanity rule script (repeatable)")
}

// Version information
const Version = "0.1.0-dev"

// stdinName is the source name used for standard input.
const stdinName = "<stdin>"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "qasmc %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: qasmc [options] [file.qasm]\n\n")
		fmt.Fprintf(os.Stderr, "Reads standard input when no file is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("qasmc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	os.Exit(run(flag.Args()))
}

// run wires the modules, resolves settings and dispatches on the mode flags.
func run(args []string) int {
	code := 1
	dscope.New(new(Module)).Call(func(
		logger logs.Logger,
		loader configs.Loader,
	) {
		settings, err := resolveSettings(loader)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		code = compile(args, settings, logger)
	})
	return code
}

// resolveSettings loads the configuration files and applies the flags on top.
func resolveSettings(loader configs.Loader) (configs.Settings, error) {
	settings, err := configs.LoadSettings(loader)
	if err != nil {
		return settings, err
	}
	if *filename != "" {
		settings.Filename = *filename
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if len(ruleFiles) > 0 {
		settings.Rules = ruleFiles
	}
	if *noPrint {
		settings.Print = false
	}
	if err := logs.SetLevel(settings.LogLevel); err != nil {
		return settings, err
	}
	return settings, nil
}

// compile runs the selected mode on the input named by args.
func compile(args []string, settings configs.Settings, logger logs.Logger) int {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "error: too many input files")
		fmt.Fprintln(os.Stderr, "usage: qasmc [options] [file.qasm]")
		return 1
	}

	name, src, err := openInput(args, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer src.Close()

	out, closeOut, err := openOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	code := dispatch(name, src, out, settings, logger)
	if err := closeOut(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return code
}

func dispatch(name string, src io.Reader, out io.Writer, settings configs.Settings, logger logs.Logger) int {
	// Handle -emit-tokens
	if *emitTokens {
		return runEmitTokens(name, src, out)
	}

	// Handle -emit-ast
	if *emitAST {
		return runEmitAST(name, src, out, settings, logger)
	}

	return runCompile(name, src, out, settings, logger)
}

// openInput opens the file named by args, or standard input.
func openInput(args []string, settings configs.Settings) (string, io.ReadCloser, error) {
	if len(args) == 0 {
		name := settings.Filename
		if name == "" {
			name = stdinName
		}
		return name, io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, errors.Wrap(err, "open input")
	}
	return args[0], f, nil
}

// openOutput opens the -o file, or standard output.
func openOutput() (io.Writer, func() error, error) {
	if *output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(*output)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open output")
	}
	return f, f.Close, nil
}

// runPipeline runs every phase with the configured rules.
func runPipeline(name string, src io.Reader, settings configs.Settings, logger logs.Logger) (*pipeline.Result, error) {
	rules, err := sanity.LoadRules(settings.Rules)
	if err != nil {
		return nil, err
	}
	conf := &pipeline.Config{
		Sanity: &sanity.Config{
			Rules:  rules,
			Logger: logger,
		},
		Phases: pipeline.PhaseConfig{
			DumpBefore: *dumpBefore,
			DumpAfter:  *dumpAfter,
			Dump:       os.Stderr,
			Verify:     *verify,
		},
		Logger: logger,
	}
	return pipeline.Run(context.Background(), name, src, conf)
}

// reportDiagnostics writes the diagnostic report to stderr.
func reportDiagnostics(diags *diag.List) {
	if !diags.Empty() {
		fmt.Fprintln(os.Stderr, diags)
	}
}

// runCompile checks the input and prints the canonical program on success.
func runCompile(name string, src io.Reader, out io.Writer, settings configs.Settings, logger logs.Logger) int {
	res, err := runPipeline(name, src, settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	reportDiagnostics(res.Diagnostics)
	if res.OK() && settings.Print {
		if err := syntax.Format(out, res.Program); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	return res.ExitCode()
}

// runEmitAST checks the input and outputs the AST with resolved types.
func runEmitAST(name string, src io.Reader, out io.Writer, settings configs.Settings, logger logs.Logger) int {
	res, err := runPipeline(name, src, settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	reportDiagnostics(res.Diagnostics)
	if res.Program == nil {
		return res.ExitCode()
	}

	// Output AST
	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(out, res.Program); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(out, res.Program)
	}
	return res.ExitCode()
}

// runEmitTokens scans the input and prints all lexemes with positions.
func runEmitTokens(name string, src io.Reader, out io.Writer) int {
	s := syntax.NewScanner(name, src)

	// Print header
	fmt.Fprintf(out, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(out, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		lex, ok := s.Peek()
		if !ok {
			break
		}
		fmt.Fprintf(out, "%-20s %-12s %s\n", lex.Loc.Start(), lex.Tok, formatLiteral(lex.Lit))
		if lex.Tok.IsEOF() {
			break
		}
		s.Drop()
	}

	diags := s.Diagnostics()
	reportDiagnostics(diags)
	return diags.ExitCode()
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	return fmt.Sprintf("%q", lit)
}
