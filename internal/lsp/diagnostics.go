package lsp

import (
	stderrors "errors"
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"v2sc/internal/errors"
)

const (
	loaderSource  = "v2sc-loader"
	codegenSource = "v2sc-codegen"
)

// ConvertError transforms a load or render failure into LSP diagnostics
// for the document at path. Failures located in another file, such as an
// included one, are reported at the start of the document.
func ConvertError(path string, err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	source := loaderSource
	var re *errors.RenderError
	if stderrors.As(err, &re) {
		source = codegenSource
	}

	var rep errors.Reportable
	if !stderrors.As(err, &rep) {
		return []protocol.Diagnostic{newDiagnostic(0, 0, 1, source, "", err.Error())}
	}

	ce := rep.CompilerError()
	message := ce.Message
	for _, s := range ce.Suggestions {
		message += "\n" + s
	}
	if ce.HelpText != "" {
		message += "\nhelp: " + ce.HelpText
	}

	pos := ce.Position
	if pos.Line <= 0 || (pos.Filename != "" && pos.Filename != path) {
		if pos.Filename != "" && pos.Filename != path {
			message = fmt.Sprintf("%s: %s", pos, message)
		}
		return []protocol.Diagnostic{newDiagnostic(0, 0, 1, source, ce.Code, message)}
	}

	line := uint32(pos.Line - 1)   // Convert to 0-based indexing
	char := uint32(pos.Column - 1) // Convert to 0-based indexing
	return []protocol.Diagnostic{newDiagnostic(line, char, max(ce.Length, 1), source, ce.Code, message)}
}

func newDiagnostic(line, char uint32, length int, source, code, message string) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: char},
			End:   protocol.Position{Line: line, Character: char + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  message,
	}
	if code != "" {
		d.Code = &protocol.IntegerOrString{Value: code}
	}
	return d
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
