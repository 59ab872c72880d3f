// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"v2sc/internal/config"
	"v2sc/internal/layout"
	"v2sc/internal/lsp"
)

const lsName = "v2sc" // Name identifier for the language server

var (
	version = "0.3.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
	log     = commonlog.GetLogger("v2sc.lsp")
)

func main() {
	// The project configuration applies to every document the server checks
	cfg, err := config.Load(config.Find(""))
	if err != nil {
		commonlog.Configure(1, nil)
		log.Errorf("invalid configuration, using defaults: %s", err)
		cfg = config.Default()
	} else {
		// stderr carries the log; stdout belongs to the protocol
		commonlog.Configure(max(cfg.Log.Verbosity, 1), pathOrNil(cfg.Log.Path))
	}

	opts := lsp.Options{
		Generator: cfg.GeneratorOptions(),
		Loader:    cfg.LoaderOptions(),
	}
	if cfg.Generator.TemplateDir != "" {
		templates, err := layout.MustBuiltin().OverlayDir(cfg.Generator.TemplateDir)
		if err != nil {
			log.Errorf("ignoring template directory %s: %s", cfg.Generator.TemplateDir, err)
		} else {
			opts.Templates = templates
		}
	}

	v2scHandler := lsp.NewHandler(opts)

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     v2scHandler.Initialize,
		Initialized:                    v2scHandler.Initialized,
		Shutdown:                       v2scHandler.Shutdown,
		SetTrace:                       v2scHandler.SetTrace,
		TextDocumentDidOpen:            v2scHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           v2scHandler.TextDocumentDidClose,
		TextDocumentDidChange:          v2scHandler.TextDocumentDidChange,
		TextDocumentDidSave:            v2scHandler.TextDocumentDidSave,
		TextDocumentCompletion:         v2scHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: v2scHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting v2sc LSP server %s", version)

	// Editors talk to the server over standard input/output
	if err := s.RunStdio(); err != nil {
		log.Errorf("error running v2sc LSP server: %s", err)
		os.Exit(1)
	}
}

func pathOrNil(path string) *string {
	if path == "" {
		return nil
	}
	return &path
}
