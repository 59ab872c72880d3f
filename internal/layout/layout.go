// Package layout holds the template assets that decide how each node kind
// is spelled in SystemC. The code generator decides what is rendered and
// hands the pieces to an asset named after the node kind and view.
package layout

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var builtinFS embed.FS

const assetExt = ".tmpl"

// Fields are the named, already rendered pieces passed to an asset.
type Fields map[string]interface{}

// Set is an immutable collection of parsed template assets.
type Set struct {
	root   *template.Template
	origin string
}

// MissingAssetError reports that none of the requested assets exist.
type MissingAssetError struct {
	Names  []string
	Origin string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("no template asset %s in %s", strings.Join(e.Names, " or "), e.Origin)
}

// Builtin returns the assets compiled into the binary.
func Builtin() (*Set, error) {
	return Load(builtinFS, "templates/*"+assetExt)
}

// MustBuiltin is Builtin for package initialisation and tests.
func MustBuiltin() *Set {
	s, err := Builtin()
	if err != nil {
		panic(err)
	}
	return s
}

// Load parses every asset of fsys matching pattern.
func Load(fsys fs.FS, pattern string) (*Set, error) {
	root := template.New("").Funcs(funcMap).Option("missingkey=error")
	if _, err := root.ParseFS(fsys, pattern); err != nil {
		return nil, fmt.Errorf("loading template assets: %w", err)
	}
	return &Set{root: root, origin: pattern}, nil
}

// Overlay returns a new set in which the assets of fsys replace the assets
// of s with the same name. Assets missing from fsys keep their old text.
func (s *Set) Overlay(fsys fs.FS, pattern string) (*Set, error) {
	root, err := s.root.Clone()
	if err != nil {
		return nil, err
	}
	if _, err := root.ParseFS(fsys, pattern); err != nil {
		return nil, fmt.Errorf("loading template overrides: %w", err)
	}
	return &Set{root: root, origin: s.origin + " + " + pattern}, nil
}

// OverlayDir overlays the *.tmpl files of a directory.
func (s *Set) OverlayDir(dir string) (*Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return s.Overlay(os.DirFS(dir), "*"+assetExt)
}

// Has reports whether an asset exists.
func (s *Set) Has(name string) bool {
	return s.root.Lookup(name+assetExt) != nil
}

// Names lists the available assets.
func (s *Set) Names() []string {
	var names []string
	for _, t := range s.root.Templates() {
		if strings.HasSuffix(t.Name(), assetExt) {
			names = append(names, strings.TrimSuffix(t.Name(), assetExt))
		}
	}
	sort.Strings(names)
	return names
}

// Render executes the first existing asset among names. One trailing
// newline is removed from the output.
func (s *Set) Render(fields Fields, names ...string) (string, error) {
	for _, name := range names {
		t := s.root.Lookup(name + assetExt)
		if t == nil {
			continue
		}
		var buf bytes.Buffer
		if err := t.Execute(&buf, fields); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
	return "", &MissingAssetError{Names: names, Origin: s.origin}
}

// AssetName is the asset of a node kind in a view; the default view has
// an empty view name.
func AssetName(kind, view string) string {
	name := strings.ToLower(kind)
	if view != "" {
		name += "_" + view
	}
	return name
}
