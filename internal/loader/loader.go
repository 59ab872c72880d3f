// Package loader turns .vast tree files into syntax trees.
//
// Nodes are decoded by reflection over the vast struct tags of the ast
// package. Macro references are expanded from Options.Defines and
// (Include file="…") entries of a description are replaced by the
// definitions of the named file.
package loader

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	mapset "github.com/deckarep/golang-set"
	lru "github.com/hashicorp/golang-lru"
	"github.com/tliron/commonlog"
	"v2sc/grammar"
	"v2sc/internal/ast"
	"v2sc/internal/errors"
)

var log = commonlog.GetLogger("v2sc.loader")

const DefaultCacheSize = 64

// Options configure a Loader.
type Options struct {
	IncludePaths []string          // searched after the including file's directory
	Defines      map[string]string // macro name to replacement text
	CacheSize    int               // parsed include files kept, 0 means DefaultCacheSize
}

// Loader decodes tree files. It is not safe for concurrent use.
type Loader struct {
	opts  Options
	cache *lru.ARCCache
	stack mapset.Set // absolute paths of the files being loaded
}

func New(opts Options) (*Loader, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("include cache: %w", err)
	}
	return &Loader{opts: opts, cache: cache, stack: mapset.NewSet()}, nil
}

// ParseDefine splits a NAME[=VALUE] command line define. The value
// defaults to "1".
func ParseDefine(s string) (string, string) {
	if name, value, ok := strings.Cut(s, "="); ok {
		return name, value
	}
	return s, "1"
}

// LoadFile loads a tree file holding exactly one top level node.
func (l *Loader) LoadFile(path string) (ast.Node, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.ErrorFileNotFound, ast.Position{Filename: path}, "file not found: %s", path)
	}
	return l.LoadString(path, string(source))
}

// LoadString loads tree text. filename is used for positions and to
// resolve relative includes.
func (l *Loader) LoadString(filename, source string) (ast.Node, error) {
	file, err := grammar.ParseString(filename, source)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	if len(file.Nodes) != 1 {
		return nil, errors.NewLoadError(errors.ErrorTreeSyntax, position(file.Pos),
			"expected exactly one top level node, found %d", len(file.Nodes))
	}

	if abs, err := filepath.Abs(filename); err == nil {
		l.stack.Add(abs)
		defer l.stack.Remove(abs)
	}
	return l.decoder(filename).node(file.Nodes[0])
}

// DecodeNode decodes an already parsed node. Includes resolve against the
// working directory.
func (l *Loader) DecodeNode(n *grammar.Node) (ast.Node, error) {
	return l.decoder("").node(n)
}

func (l *Loader) decoder(filename string) *decoder {
	return &decoder{loader: l, filename: filename}
}

// include returns the definitions of an included file.
func (l *Loader) include(from string, name string, pos ast.Position) ([]ast.Node, error) {
	path, err := l.resolve(from, name)
	if err != nil {
		return nil, errors.NewLoadError(errors.ErrorIncludeNotFound, pos, "include file '%s' not found", name)
	}
	if l.stack.Contains(path) {
		return nil, errors.NewLoadError(errors.ErrorIncludeCycle, pos, "include cycle through '%s'", path)
	}
	l.stack.Add(path)
	defer l.stack.Remove(path)

	file, err := l.parseCached(path)
	if err != nil {
		return nil, err
	}

	d := l.decoder(path)
	var defs []ast.Node
	for _, gn := range file.Nodes {
		n, err := d.node(gn)
		if err != nil {
			return nil, err
		}
		defs = append(defs, definitions(n)...)
	}
	log.Debugf("included %s: %d definitions", path, len(defs))
	return defs, nil
}

// definitions unwraps a Source or Description into its definitions.
func definitions(n ast.Node) []ast.Node {
	switch n := n.(type) {
	case *ast.Source:
		if n.Description == nil {
			return nil
		}
		return n.Description.Definitions
	case *ast.Description:
		return n.Definitions
	}
	return []ast.Node{n}
}

func (l *Loader) resolve(from, name string) (string, error) {
	var dirs []string
	if filepath.IsAbs(name) {
		dirs = []string{""}
	} else {
		if from != "" {
			dirs = append(dirs, filepath.Dir(from))
		} else {
			dirs = append(dirs, ".")
		}
		dirs = append(dirs, l.opts.IncludePaths...)
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", os.ErrNotExist
}

func (l *Loader) parseCached(path string) (*grammar.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.ErrorIncludeNotFound, ast.Position{Filename: path}, "include file '%s' not found", path)
	}
	key := fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano())
	if cached, ok := l.cache.Get(key); ok {
		log.Debugf("include cache hit: %s", path)
		return cached.(*grammar.File), nil
	}

	file, err := grammar.ParseFile(path)
	if err != nil {
		return nil, syntaxError(path, err)
	}
	l.cache.Add(key, file)
	return file, nil
}

func syntaxError(filename string, err error) error {
	var perr participle.Error
	if stderrors.As(err, &perr) {
		return errors.NewLoadError(errors.ErrorTreeSyntax, position(perr.Position()), "%s", perr.Message())
	}
	return errors.NewLoadError(errors.ErrorTreeSyntax, ast.Position{Filename: filename}, "%s", err.Error())
}
