package lsp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"v2sc/internal/codegen"
	"v2sc/internal/lsp"
)

const goodTree = `(ModuleDef name="top" line=1
  items=[(Decl list=[(Reg name="r" width=None)])])
`

// recorder captures published diagnostics.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{Notify: func(method string, params any) {
		if method == protocol.ServerTextDocumentPublishDiagnostics {
			r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
		}
	}}
}

func (r *recorder) last(t *testing.T) []protocol.Diagnostic {
	t.Helper()
	require.NotEmpty(t, r.published)
	return r.published[len(r.published)-1].Diagnostics
}

func newHandler() *lsp.Handler {
	return lsp.NewHandler(lsp.Options{Generator: codegen.DefaultOptions()})
}

func docURI(t *testing.T, name string) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	return path, "file://" + filepath.ToSlash(path)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	h := newHandler()
	rec := &recorder{}
	_, uri := docURI(t, "top.vast")

	err := h.TextDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: goodTree},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t))
	assert.NotNil(t, rec.last(t), "a clean document publishes an empty list")

	err = h.TextDocumentDidChange(rec.context(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "(ModuleDef\n  nmae=\"top\")"}},
	})
	require.NoError(t, err)

	diags := rec.last(t)
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(1), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(2), diags[0].Range.Start.Character)
	assert.Equal(t, "v2sc-loader", *diags[0].Source)
	assert.Equal(t, "E0102", diags[0].Code.Value)
	assert.Contains(t, diags[0].Message, "ModuleDef has no attribute 'nmae'")
	assert.Contains(t, diags[0].Message, "did you mean 'name'?")

	err = h.TextDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t))
}

func TestRenderDiagnostics(t *testing.T) {
	h := newHandler()

	diags := h.Check("top.vast", `(ModuleDef name="top"
  items=[(Decl list=[(Reg name="r" width=(Width msb=(Identifier name="n") lsb=(IntConst value="0")))])])`)
	require.Len(t, diags, 1)
	assert.Equal(t, "v2sc-codegen", *diags[0].Source)
	assert.Equal(t, "E0002", diags[0].Code.Value)
	assert.Equal(t, uint32(1), diags[0].Range.Start.Line)
}

func TestSyntaxDiagnostics(t *testing.T) {
	diags := newHandler().Check("top.vast", "(ModuleDef name=\"top\"\n\n  items=[")
	require.Len(t, diags, 1)
	assert.Equal(t, "E0100", diags[0].Code.Value)
	assert.Equal(t, uint32(2), diags[0].Range.Start.Line)
}

func TestDidSaveReadsDisk(t *testing.T) {
	h := newHandler()
	rec := &recorder{}
	path, uri := docURI(t, "saved.vast")
	require.NoError(t, os.WriteFile(path, []byte("(Bogus)"), 0o644))

	err := h.TextDocumentDidSave(rec.context(), &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	diags := rec.last(t)
	require.Len(t, diags, 1)
	assert.Equal(t, "E0101", diags[0].Code.Value)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	result, err := newHandler().Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	caps := result.(*protocol.InitializeResult).Capabilities
	require.NotNil(t, caps.SemanticTokensProvider)
	assert.Equal(t, lsp.SemanticTokenTypes, caps.SemanticTokensProvider.(*protocol.SemanticTokensOptions).Legend.TokenTypes)
}

func TestCompletionOffersKinds(t *testing.T) {
	result, err := newHandler().TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	var labels []string
	for _, item := range result.(*protocol.CompletionList).Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "ModuleDef")
	assert.Contains(t, labels, "Plus")
}

type decodedToken struct {
	Line, Char, Length uint32
	Type               string
}

func decodeSemanticTokens(t *testing.T, raw []uint32) []decodedToken {
	t.Helper()
	require.Zero(t, len(raw)%5, "raw token data length %d is not a multiple of 5", len(raw))

	var (
		decoded    []decodedToken
		line, char uint32
	)
	for i := 0; i < len(raw); i += 5 {
		if raw[i] == 0 {
			char += raw[i+1]
		} else {
			line += raw[i]
			char = raw[i+1]
		}
		decoded = append(decoded, decodedToken{
			Line:   line + 1, // LSP uses 0-based indexing
			Char:   char + 1,
			Length: raw[i+2],
			Type:   lsp.SemanticTokenTypes[raw[i+3]],
		})
	}
	return decoded
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := newHandler()
	rec := &recorder{}
	_, uri := docURI(t, "tokens.vast")

	source := "(Plus left=(Identifier name=\"a\")\n  right=(IntConst value=-3 line=None))"
	require.NoError(t, h.TextDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: source},
	}))

	tokens, err := h.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	want := []decodedToken{
		{1, 2, 4, "operator"},
		{1, 7, 4, "property"},
		{1, 13, 10, "type"},
		{1, 24, 4, "property"},
		{1, 29, 3, "string"},
		{2, 3, 5, "property"},
		{2, 10, 8, "type"},
		{2, 19, 5, "property"},
		{2, 25, 2, "number"},
		{2, 28, 4, "property"},
		{2, 33, 4, "keyword"},
	}
	assert.Equal(t, want, decodeSemanticTokens(t, tokens.Data))

	// A document that does not parse has no tokens.
	require.NoError(t, h.TextDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "(Plus"},
	}))
	tokens, err = h.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)
}
