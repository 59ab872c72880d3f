// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"v2sc/internal/ast"
	"v2sc/internal/codegen"
	"v2sc/internal/errors"
	"v2sc/internal/layout"
	"v2sc/internal/loader"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
	sourceName   = "<repl>"
	historyFile  = ".v2sc_history"
)

const help = `Enter a node such as (Plus left=(Identifier name="a") right=(IntConst value="1")).
Commands:
  :ctx default|process|declaration|argument|parameter   select the rendering context
  :clock NAME                                          set the clock signal
  :reset NAME                                          set the reset signal
  :show                                                print the last node as a tree
  :help                                                print this text
  :quit                                                leave`

// Session renders nodes typed at the prompt.
type Session struct {
	opts      codegen.Options
	templates *layout.Set
	gen       *codegen.Generator
	loader    *loader.Loader
	ctx       codegen.Context
	last      ast.Node
	out       io.Writer
}

func NewSession(opts codegen.Options, templates *layout.Set, ld *loader.Loader, out io.Writer) (*Session, error) {
	gen, err := codegen.New(opts, templates)
	if err != nil {
		return nil, err
	}
	return &Session{opts: opts, templates: templates, gen: gen, loader: ld, out: out}, nil
}

// Eval handles one complete input: a command or the text of a node. It
// reports whether the session should end.
func (s *Session) Eval(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if strings.HasPrefix(input, ":") {
		return s.command(input)
	}

	n, err := s.loader.LoadString(sourceName, input)
	if err != nil {
		fmt.Fprint(s.out, errors.NewErrorReporter(sourceName, input).Format(err))
		return false
	}
	s.last = n

	if s.ctx == codegen.DefaultContext {
		text, err := s.gen.Render(n)
		if err != nil {
			fmt.Fprint(s.out, errors.NewErrorReporter(sourceName, input).Format(err))
			return false
		}
		fmt.Fprintln(s.out, text)
		return false
	}

	text, ok, err := s.gen.Project(n, s.ctx)
	switch {
	case err != nil:
		fmt.Fprint(s.out, errors.NewErrorReporter(sourceName, input).Format(err))
	case !ok:
		fmt.Fprintf(s.out, "%s has no %s rendering\n", ast.KindName(n), s.ctx)
	default:
		fmt.Fprintln(s.out, text)
	}
	return false
}

func (s *Session) command(input string) bool {
	fields := strings.Fields(input)
	name, args := fields[0], fields[1:]

	switch name {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(s.out, help)
	case ":ctx":
		if len(args) != 1 {
			fmt.Fprintf(s.out, "context: %s\n", s.ctx)
			return false
		}
		ctx, ok := codegen.ParseContext(args[0])
		if !ok {
			s.fail("unknown context '%s'", args[0])
			return false
		}
		s.ctx = ctx
	case ":clock", ":reset":
		if len(args) != 1 {
			s.fail("%s takes one signal name", name)
			return false
		}
		opts := s.opts
		if name == ":clock" {
			opts.ClockName = args[0]
		} else {
			opts.ResetName = args[0]
		}
		gen, err := codegen.New(opts, s.templates)
		if err != nil {
			s.fail("%v", err)
			return false
		}
		s.opts, s.gen = opts, gen
	case ":show":
		if s.last == nil {
			s.fail("nothing entered yet")
			return false
		}
		fmt.Fprintln(s.out, loader.Encode(s.last).StringWithIndent(0))
	default:
		s.fail("unknown command '%s', try :help", name)
	}
	return false
}

func (s *Session) fail(format string, args ...interface{}) {
	fmt.Fprintf(s.out, "%s: %s\n", color.RedString("error"), fmt.Sprintf(format, args...))
}

// complete reports whether the parentheses and brackets of input are
// balanced outside string literals.
func complete(input string) bool {
	depth := 0
	inString := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case inString && c == '\\':
			i++
		case c == '"':
			inString = !inString
		case inString:
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == '#':
			for i < len(input) && input[i] != '\n' {
				i++
			}
		}
	}
	return depth <= 0 && !inString
}

// Start runs the interactive loop until :quit or end of input.
func Start(s *Session) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, c := range []string{":ctx", ":clock", ":reset", ":show", ":help", ":quit"} {
			if strings.HasPrefix(c, prefix) {
				out = append(out, c)
			}
		}
		for _, k := range ast.KindNames() {
			if strings.HasPrefix("("+k, prefix) {
				out = append(out, "("+k)
			}
		}
		return out
	})

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFile)
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(s.out, "v2sc repl, :help for commands")
	var pending strings.Builder
	for {
		prompt := PROMPT
		if pending.Len() > 0 {
			prompt = CONTINUATION
		}
		text, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			pending.Reset()
			continue
		}
		if err != nil {
			break
		}

		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(text)
		input := pending.String()
		if !strings.HasPrefix(strings.TrimSpace(input), ":") && !complete(input) {
			continue
		}
		pending.Reset()

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		}
		if s.Eval(input) {
			break
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}
