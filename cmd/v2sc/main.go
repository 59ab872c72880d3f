// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gopkg.in/urfave/cli.v1"
	"v2sc/internal/ast"
	"v2sc/internal/codegen"
	"v2sc/internal/config"
	"v2sc/internal/errors"
	"v2sc/internal/layout"
	"v2sc/internal/loader"
	"v2sc/repl"
)

const (
	appName = "v2sc"
	version = "0.3.0"
)

// errFailed is returned once the failure has been reported.
var errFailed = stderrors.New("translation failed")

var (
	includeFlag = cli.StringSliceFlag{
		Name:  "include, I",
		Usage: "add a directory to the include search path",
	}
	defineFlag = cli.StringSliceFlag{
		Name:  "define, D",
		Usage: "define a macro as NAME or NAME=VALUE",
	}
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "TOML configuration file",
	}
	indentFlag = cli.IntFlag{
		Name:  "indent",
		Usage: "spaces per indentation level",
		Value: codegen.DefaultIndentSize,
	}
	clockFlag = cli.StringFlag{
		Name:  "clock",
		Usage: "clock signal of clocked processes",
		Value: codegen.DefaultClockName,
	}
	resetFlag = cli.StringFlag{
		Name:  "reset",
		Usage: "asynchronous reset signal",
		Value: codegen.DefaultResetName,
	}
	templatesFlag = cli.StringFlag{
		Name:  "templates",
		Usage: "directory of template assets overriding the builtin ones",
	}
	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "write the SystemC source to `FILE` instead of stdout",
	}
	jobsFlag = cli.IntFlag{
		Name:  "jobs, j",
		Usage: "module definitions rendered concurrently",
		Value: 1,
	}
	showASTFlag = cli.BoolFlag{
		Name:  "show-ast",
		Usage: "print the loaded syntax tree instead of translating it",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log debug events to stderr",
	}

	commonFlags = []cli.Flag{
		includeFlag, defineFlag, configFlag, indentFlag, clockFlag, resetFlag, templatesFlag, verboseFlag,
	}
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "translate Verilog syntax trees to SystemC"
	app.UsageText = appName + " [options] file.vast..."
	app.Version = version
	cli.VersionPrinter = func(c *cli.Context) { printUsage(c) }
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = append(append([]cli.Flag{}, commonFlags...), outputFlag, jobsFlag, showASTFlag)
	app.Action = translate
	app.Commands = []cli.Command{
		{
			Name:   "repl",
			Usage:  "render nodes typed at an interactive prompt",
			Flags:  commonFlags,
			Action: startRepl,
		},
	}
	return app
}

// settings resolves the configuration: defaults, then the configuration
// file, then flags given on the command line.
func settings(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(config.Find(c.String("config")))
	if err != nil {
		return nil, err
	}

	if c.IsSet(indentFlag.Name) {
		cfg.Generator.IndentSize = c.Int(indentFlag.Name)
	}
	if c.IsSet(clockFlag.Name) {
		cfg.Generator.ClockName = c.String(clockFlag.Name)
	}
	if c.IsSet(resetFlag.Name) {
		cfg.Generator.ResetName = c.String(resetFlag.Name)
	}
	if c.IsSet(templatesFlag.Name) {
		cfg.Generator.TemplateDir = c.String(templatesFlag.Name)
	}
	if c.IsSet("jobs") {
		cfg.Generator.Workers = c.Int("jobs")
	}
	cfg.Frontend.IncludePaths = append(cfg.Frontend.IncludePaths, c.StringSlice("include")...)
	for _, d := range c.StringSlice("define") {
		name, value := loader.ParseDefine(d)
		if cfg.Frontend.Defines == nil {
			cfg.Frontend.Defines = map[string]string{}
		}
		cfg.Frontend.Defines[name] = value
	}
	if c.Bool(verboseFlag.Name) {
		cfg.Log.Verbosity = 4
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewLoadError(errors.ErrorInvalidConfig, ast.Position{}, "%v", err)
	}
	return cfg, nil
}

func configureLogging(cfg *config.Config) {
	var path *string
	if cfg.Log.Path != "" {
		path = &cfg.Log.Path
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
}

func templates(cfg *config.Config) (*layout.Set, error) {
	set, err := layout.Builtin()
	if err != nil {
		return nil, err
	}
	if cfg.Generator.TemplateDir == "" {
		return set, nil
	}
	return set.OverlayDir(cfg.Generator.TemplateDir)
}

// printUsage prints the tool name, version and usage.
func printUsage(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s version %s\n", appName, version)
	return cli.ShowAppHelp(c)
}

func translate(c *cli.Context) error {
	stdout, stderr := c.App.Writer, c.App.ErrWriter
	if c.NArg() == 0 {
		return printUsage(c)
	}

	startTime := time.Now()
	files := c.Args()
	for _, path := range files {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			report(stderr, "", "", errors.NewLoadError(errors.ErrorFileNotFound, ast.Position{}, "file not found: %s", path))
			return errFailed
		}
	}

	cfg, err := settings(c)
	if err != nil {
		report(stderr, "", "", err)
		return errFailed
	}
	configureLogging(cfg)

	set, err := templates(cfg)
	if err != nil {
		report(stderr, "", "", err)
		return errFailed
	}
	gen, err := codegen.New(cfg.GeneratorOptions(), set)
	if err != nil {
		report(stderr, "", "", err)
		return errFailed
	}
	ld, err := loader.New(cfg.LoaderOptions())
	if err != nil {
		report(stderr, "", "", err)
		return errFailed
	}

	var out strings.Builder
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			report(stderr, path, "", err)
			return errFailed
		}
		tree, err := ld.LoadString(path, string(source))
		if err == nil && !c.Bool(showASTFlag.Name) {
			var text string
			text, err = gen.Render(tree)
			out.WriteString(text)
		} else if err == nil {
			out.WriteString(loader.Encode(tree).StringWithIndent(0))
		}
		if err != nil {
			report(stderr, path, string(source), err)
			color.New(color.FgRed).Fprintf(stderr, "Translation failed after %s\n", formatDuration(time.Since(startTime)))
			return errFailed
		}
		out.WriteString("\n")
	}

	if err := write(c.String("output"), stdout, out.String()); err != nil {
		report(stderr, "", "", err)
		return errFailed
	}
	color.New(color.FgGreen).Fprintf(stderr, "Translated %d file(s) in %s\n", len(files), formatDuration(time.Since(startTime)))
	return nil
}

func write(path string, stdout io.Writer, text string) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// report prints err with the source context of the file it points into.
func report(w io.Writer, path, source string, err error) {
	var rep errors.Reportable
	if stderrors.As(err, &rep) {
		if file := rep.CompilerError().Position.Filename; file != "" && file != path {
			if data, readErr := os.ReadFile(file); readErr == nil {
				path, source = file, string(data)
			}
		}
	}
	fmt.Fprint(w, errors.NewErrorReporter(path, source).Format(err))
}

func startRepl(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		report(c.App.ErrWriter, "", "", err)
		return errFailed
	}
	configureLogging(cfg)

	set, err := templates(cfg)
	if err != nil {
		report(c.App.ErrWriter, "", "", err)
		return errFailed
	}
	ld, err := loader.New(cfg.LoaderOptions())
	if err != nil {
		report(c.App.ErrWriter, "", "", err)
		return errFailed
	}
	session, err := repl.NewSession(cfg.GeneratorOptions(), set, ld, c.App.Writer)
	if err != nil {
		report(c.App.ErrWriter, "", "", err)
		return errFailed
	}
	return repl.Start(session)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
