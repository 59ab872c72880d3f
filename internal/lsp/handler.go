package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"v2sc/grammar"
	"v2sc/internal/ast"
	"v2sc/internal/codegen"
	"v2sc/internal/layout"
	"v2sc/internal/loader"
)

var log = commonlog.GetLogger("v2sc.lsp")

// Semantic token types advertised in the legend; indexes are sent on the wire
var SemanticTokenTypes = []string{
	"type",
	"operator",
	"property",
	"string",
	"number",
	"keyword",
	"variable",
}

// Define the set of supported semantic token modifiers (none are reported)
var SemanticTokenModifiers = []string{}

// Options configure the checks run on every document.
type Options struct {
	Generator codegen.Options
	Loader    loader.Options
	Templates *layout.Set // nil selects the builtin assets
}

// Handler implements the LSP server handlers for .vast files
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	opts    Options
}

// NewHandler creates and returns a new Handler instance
func NewHandler(opts Options) *Handler {
	return &Handler{
		content: make(map[string]string),
		opts:    opts,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
				Save:      &protocol.SaveOptions{IncludeText: ptrBool(true)},
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{"("},
				ResolveProvider:   ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("LSP Shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen checks the opened document
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened file: %s", params.TextDocument.URI)
	return h.update(ctx, params.TextDocument.URI, &params.TextDocument.Text)
}

// TextDocumentDidChange checks the document after every full-text change
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed file: %s", params.TextDocument.URI)

	var text *string
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			text = &whole.Text
		}
	}
	return h.update(ctx, params.TextDocument.URI, text)
}

// TextDocumentDidSave checks the saved document
func (h *Handler) TextDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	log.Debugf("saved file: %s", params.TextDocument.URI)
	return h.update(ctx, params.TextDocument.URI, params.Text)
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed file: %s", params.TextDocument.URI)

	rawURI := params.TextDocument.URI
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, rawURI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers node kinds after an opening parenthesis
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindClass
	var items []protocol.CompletionItem
	for _, name := range ast.KindNames() {
		items = append(items, protocol.CompletionItem{Label: name, Kind: &kind})
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	rawURI := params.TextDocument.URI
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	source, err := h.source(path)
	if err != nil {
		return nil, err
	}

	// A document that does not parse has no tokens.
	file, err := grammar.ParseString(path, source)
	if err != nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(collectSemanticTokens(file, source))}, nil
}

// Check loads and renders a document and returns its diagnostics. A clean
// document yields an empty list.
func (h *Handler) Check(path, source string) []protocol.Diagnostic {
	ld, err := loader.New(h.opts.Loader)
	if err != nil {
		return ConvertError(path, err)
	}
	tree, err := ld.LoadString(path, source)
	if err != nil {
		return ConvertError(path, err)
	}

	gen, err := codegen.New(h.opts.Generator, h.opts.Templates)
	if err != nil {
		return ConvertError(path, err)
	}
	if _, err := gen.Render(tree); err != nil {
		return ConvertError(path, err)
	}
	return []protocol.Diagnostic{}
}

// update stores the new text of a document, reading it from disk when the
// client sent none, and publishes its diagnostics.
func (h *Handler) update(ctx *glsp.Context, rawURI protocol.DocumentUri, text *string) error {
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	var source string
	if text != nil {
		source = *text
	} else {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		source = string(content)
	}

	h.mu.Lock()
	h.content[path] = source
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, rawURI, h.Check(path, source))
	return nil
}

func (h *Handler) source(path string) (string, error) {
	h.mu.RLock()
	source, ok := h.content[path]
	h.mu.RUnlock()
	if ok {
		return source, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
