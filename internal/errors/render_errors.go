package errors

import (
	"fmt"
	"strings"

	"v2sc/internal/ast"
)

// Kind classifies a rendering failure. Kind values are errors themselves,
// so errors.Is(err, UnsupportedNodeKind) matches any wrapped RenderError of
// that kind.
type Kind int

const (
	UnsupportedNodeKind Kind = iota + 1
	NonConstantWidthExpression
	NegativeWidth
	MissingTemplateAsset
	TemplateExecution
	NestingTooDeep
)

var kindNames = map[Kind]string{
	UnsupportedNodeKind:        "unsupported node kind",
	NonConstantWidthExpression: "non-constant width expression",
	NegativeWidth:              "negative width",
	MissingTemplateAsset:       "missing template asset",
	TemplateExecution:          "template execution failed",
	NestingTooDeep:             "nesting too deep",
}

var kindCodes = map[Kind]string{
	UnsupportedNodeKind:        ErrorUnsupportedNodeKind,
	NonConstantWidthExpression: ErrorNonConstantWidth,
	NegativeWidth:              ErrorNegativeWidth,
	MissingTemplateAsset:       ErrorMissingTemplateAsset,
	TemplateExecution:          ErrorTemplateExecution,
	NestingTooDeep:             ErrorNestingTooDeep,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("render error %d", int(k))
}

func (k Kind) Error() string { return k.String() }

// Code is the stable error code of the kind.
func (k Kind) Code() string { return kindCodes[k] }

// RenderError reports a failure while rendering one node.
type RenderError struct {
	Kind     Kind
	NodeType string       // class name of the offending node
	Pos      ast.Position // location in the tree file
	Line     int          // HDL source line when the parser recorded one
	Message  string
	Err      error
}

// NewRenderError creates a render error located at n.
func NewRenderError(kind Kind, n ast.Node, format string, args ...interface{}) *RenderError {
	e := &RenderError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if !ast.IsNil(n) {
		e.NodeType = ast.KindName(n)
		e.Pos = n.NodePos()
		e.Line = n.SourceLine()
	}
	return e
}

// Wrap attaches an underlying cause.
func (e *RenderError) Wrap(err error) *RenderError {
	e.Err = err
	return e
}

func (e *RenderError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		b.WriteString(fmt.Sprintf("line %d: ", e.Line))
	}
	b.WriteString(e.Kind.String())
	if e.NodeType != "" {
		b.WriteString(" " + e.NodeType)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// CompilerError converts the failure for the reporter.
func (e *RenderError) CompilerError() CompilerError {
	msg := e.Kind.String()
	if e.NodeType != "" {
		msg += " " + e.NodeType
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	builder := NewErrorBuilder(e.Kind.Code(), msg, e.Pos)
	if e.Line > 0 && e.Line != e.Pos.Line {
		builder = builder.WithNote(fmt.Sprintf("HDL source line %d", e.Line))
	}
	switch e.Kind {
	case UnsupportedNodeKind:
		builder = builder.WithHelp("remove the construct or provide a template and handler for it")
	case NonConstantWidthExpression:
		builder = builder.WithHelp("widths may only use literals, parameters and arithmetic on them")
	case MissingTemplateAsset:
		builder = builder.WithHelp("add the asset to the template directory")
	}
	return builder.Build()
}

// LoadError reports a malformed tree file or an unusable input.
type LoadError struct {
	Code        string
	Pos         ast.Position
	Message     string
	Suggestions []string
}

func (e *LoadError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s: %s", e.Pos.Filename, e.Message)
	}
	return e.Message
}

func (e *LoadError) CompilerError() CompilerError {
	builder := NewErrorBuilder(e.Code, e.Message, e.Pos)
	for _, s := range e.Suggestions {
		builder = builder.WithSuggestion(s)
	}
	return builder.Build()
}

// NewLoadError creates a load error with a formatted message.
func NewLoadError(code string, pos ast.Position, format string, args ...interface{}) *LoadError {
	return &LoadError{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// UnknownNodeKind creates an error for a kind keyword that is not part of
// the grammar, suggesting close matches.
func UnknownNodeKind(name string, pos ast.Position, known []string) *LoadError {
	e := NewLoadError(ErrorUnknownNodeKind, pos, "unknown node kind '%s'", name)
	similar := findSimilarNames(name, known)
	if len(similar) == 1 {
		e.Suggestions = append(e.Suggestions, fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(similar) > 1 {
		e.Suggestions = append(e.Suggestions, fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}
	return e
}

// UnknownAttribute creates an error for an attribute the kind does not have.
func UnknownAttribute(kind, attr string, pos ast.Position, known []string) *LoadError {
	e := NewLoadError(ErrorInvalidAttribute, pos, "%s has no attribute '%s'", kind, attr)
	if similar := findSimilarNames(attr, known); len(similar) > 0 {
		e.Suggestions = append(e.Suggestions, fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(known) > 0 {
		e.Suggestions = append(e.Suggestions, fmt.Sprintf("available attributes: %s", strings.Join(known, ", ")))
	}
	return e
}

// ErrorBuilder provides a fluent interface for creating compiler errors
type ErrorBuilder struct {
	err CompilerError
}

// NewErrorBuilder creates a new error builder
func NewErrorBuilder(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, message)
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if levenshteinDistance(strings.ToLower(target), strings.ToLower(candidate)) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
