package loader

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v2sc/internal/ast"
	"v2sc/internal/errors"
)

const counterTree = `# counter.v
(Source description=(Description definitions=[
  (ModuleDef name="counter" line=1
    portlist=(Portlist ports=[
      (Ioport first=(Input name="CLK" line=2))
      (Ioport first=(Output name="q" width=(Width msb=(IntConst value="7") lsb=(IntConst value="0"))))
    ])
    items=[
      (Always line=5
        sens_list=(SensList list=[(Sens sig=(Identifier name="CLK") type="posedge")])
        statement=(NonblockingSubstitution
          left=(Lvalue var=(Identifier name="q"))
          right=(Rvalue var=(Plus left=(Identifier name="q") right=(IntConst value="1")))))
      (Assign left=(Lvalue var=(Identifier name="y")) right=(Rvalue var=(Unot right=(Identifier name="q"))))
    ])
]))
`

func newLoader(t *testing.T, opts Options) *Loader {
	t.Helper()
	l, err := New(opts)
	require.NoError(t, err)
	return l
}

func loadError(t *testing.T, err error) *errors.LoadError {
	t.Helper()
	require.Error(t, err)
	var le *errors.LoadError
	require.True(t, stderrors.As(err, &le), "expected a LoadError, got %T: %v", err, err)
	return le
}

func TestLoadCounter(t *testing.T) {
	n, err := newLoader(t, Options{}).LoadString("counter.vast", counterTree)
	require.NoError(t, err)

	src, ok := n.(*ast.Source)
	require.True(t, ok)
	require.Len(t, src.Description.Definitions, 1)

	mod := src.Description.Definitions[0].(*ast.ModuleDef)
	assert.Equal(t, "counter", mod.Name)
	assert.Equal(t, 1, mod.Lineno)
	assert.Equal(t, 3, mod.Pos.Line)
	assert.Equal(t, "counter.vast", mod.Pos.Filename)
	assert.Nil(t, mod.Paramlist)

	require.Len(t, mod.Portlist.Ports, 2)
	clk := mod.Portlist.Ports[0].(*ast.Ioport).First.(*ast.Input)
	assert.Equal(t, "CLK", clk.Name)
	assert.Equal(t, 2, clk.SourceLine())

	require.Len(t, mod.Items, 2)
	always := mod.Items[0].(*ast.Always)
	assert.Equal(t, 5, always.Lineno)
	require.Len(t, always.SensList.List, 1)
	assert.Equal(t, "posedge", always.SensList.List[0].Type)

	sub := always.Statement.(*ast.NonblockingSubstitution)
	plus, ok := sub.Right.Var.(*ast.Operator)
	require.True(t, ok)
	assert.Equal(t, ast.PLUS, plus.Op)

	assign := mod.Items[1].(*ast.Assign)
	not, ok := assign.Right.Var.(*ast.UnaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.UNOT, not.Op)
	assert.Equal(t, assign.Pos.Line, assign.SourceLine())
}

func TestLoadValueWords(t *testing.T) {
	n, err := newLoader(t, Options{}).LoadString("t.vast",
		`(Reg name=r signed=true width=None lineno_ignored=0)`)
	le := loadError(t, err)
	assert.Equal(t, errors.ErrorInvalidAttribute, le.Code)
	assert.Nil(t, n)

	n, err = newLoader(t, Options{}).LoadString("t.vast", `(Reg name=r signed=1 width=None line=3)`)
	require.NoError(t, err)
	reg := n.(*ast.Reg)
	assert.Equal(t, "r", reg.Name)
	assert.True(t, reg.Signed)
	assert.Nil(t, reg.Width)
	assert.Equal(t, 3, reg.Lineno)

	n, err = newLoader(t, Options{}).LoadString("t.vast", `(IntConst value=42)`)
	require.NoError(t, err)
	assert.Equal(t, "42", n.(*ast.IntConst).Value)

	n, err = newLoader(t, Options{}).LoadString("t.vast", `(Case cond=None statement=(Disable dest="x"))`)
	require.NoError(t, err)
	assert.Nil(t, n.(*ast.Case).Cond)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		code    string
		line    int
		message string
	}{
		{"syntax", "(Identifier\n  name=)", errors.ErrorTreeSyntax, 2, ""},
		{"two roots", `(Identifier name="a") (Identifier name="b")`, errors.ErrorTreeSyntax, 0, "exactly one"},
		{"unknown kind", `(ModuleDf name="a")`, errors.ErrorUnknownNodeKind, 1, "unknown node kind 'ModuleDf'"},
		{"unknown attribute", `(Identifier nme="a")`, errors.ErrorInvalidAttribute, 1, "Identifier has no attribute 'nme'"},
		{"wrong node type", `(Always sens_list=(Identifier name="a"))`, errors.ErrorInvalidAttribute, 1, "Always.sens_list expects SensList, got Identifier"},
		{"wrong list element", `(SensList list=[(Identifier name="a")])`, errors.ErrorInvalidAttribute, 1, "expects a list of Sens"},
		{"scalar for node", `(Lvalue var="a")`, errors.ErrorInvalidAttribute, 1, `expects a node, got "a"`},
		{"node for list", `(Block statements=(Disable dest="x"))`, errors.ErrorInvalidAttribute, 1, "expects a list"},
		{"bad bool", `(Reg name="r" signed=maybe)`, errors.ErrorInvalidAttribute, 1, "true or false"},
		{"misplaced include", `(Block statements=[(Include file="x.vast")])`, errors.ErrorInvalidAttribute, 1, "Include"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t, Options{}).LoadString("bad.vast", tt.source)
			le := loadError(t, err)
			assert.Equal(t, tt.code, le.Code)
			if tt.line > 0 {
				assert.Equal(t, tt.line, le.Pos.Line)
			}
			assert.Contains(t, le.Message, tt.message)
		})
	}
}

func TestSuggestions(t *testing.T) {
	_, err := newLoader(t, Options{}).LoadString("bad.vast", `(ModuleDf name="a")`)
	le := loadError(t, err)
	assert.Contains(t, le.Suggestions, "did you mean 'ModuleDef'?")

	_, err = newLoader(t, Options{}).LoadString("bad.vast", `(Identifier nme="a")`)
	le = loadError(t, err)
	assert.Contains(t, le.Suggestions, "did you mean 'name'?")
}

func TestDefines(t *testing.T) {
	l := newLoader(t, Options{Defines: map[string]string{"WIDTH": "16", "FLAG": ""}})

	n, err := l.LoadString("d.vast", "(IntConst value=\"`WIDTH\")")
	require.NoError(t, err)
	assert.Equal(t, "16", n.(*ast.IntConst).Value)

	n, err = l.LoadString("d.vast", "(IntConst value=\"`FLAG\")")
	require.NoError(t, err)
	assert.Equal(t, "1", n.(*ast.IntConst).Value)

	// Only whole-value references are macros.
	n, err = l.LoadString("d.vast", "(StringConst value=\"a `WIDTH\")")
	require.NoError(t, err)
	assert.Equal(t, "a `WIDTH", n.(*ast.StringConst).Value)

	_, err = l.LoadString("d.vast", "(IntConst value=\"`DEPTH\")")
	le := loadError(t, err)
	assert.Equal(t, errors.ErrorUndefinedMacro, le.Code)
	assert.Contains(t, le.Message, "DEPTH")
}

func TestParseDefine(t *testing.T) {
	name, value := ParseDefine("WIDTH=8")
	assert.Equal(t, "WIDTH", name)
	assert.Equal(t, "8", value)

	name, value = ParseDefine("SIM")
	assert.Equal(t, "SIM", name)
	assert.Equal(t, "1", value)

	name, value = ParseDefine("EMPTY=")
	assert.Equal(t, "EMPTY", name)
	assert.Equal(t, "", value)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func moduleNames(t *testing.T, n ast.Node) []string {
	t.Helper()
	var names []string
	for _, def := range n.(*ast.Source).Description.Definitions {
		names = append(names, def.(*ast.ModuleDef).Name)
	}
	return names
}

func TestIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.vast"), `(Source description=(Description definitions=[
  (Include file="local.vast")
  (ModuleDef name="top")
  (Include file="lib.vast")
]))`)
	writeFile(t, filepath.Join(dir, "local.vast"), `(ModuleDef name="a") (ModuleDef name="b")`)
	writeFile(t, filepath.Join(dir, "libs", "lib.vast"), `(Source description=(Description definitions=[(ModuleDef name="c")]))`)

	_, err := newLoader(t, Options{}).LoadFile(filepath.Join(dir, "top.vast"))
	le := loadError(t, err)
	assert.Equal(t, errors.ErrorIncludeNotFound, le.Code)
	assert.Contains(t, le.Message, "lib.vast")
	assert.Equal(t, 4, le.Pos.Line)

	l := newLoader(t, Options{IncludePaths: []string{filepath.Join(dir, "libs")}})
	n, err := l.LoadFile(filepath.Join(dir, "top.vast"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "top", "c"}, moduleNames(t, n))

	// Definitions keep the position of the file they came from.
	defs := n.(*ast.Source).Description.Definitions
	assert.Equal(t, filepath.Join(dir, "local.vast"), defs[0].NodePos().Filename)

	// A second load is served from the cache.
	assert.Equal(t, 2, l.cache.Len())
	_, err = l.LoadFile(filepath.Join(dir, "top.vast"))
	require.NoError(t, err)
	assert.Equal(t, 2, l.cache.Len())
}

func TestIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.vast"), `(Description definitions=[(Include file="b.vast")])`)
	writeFile(t, filepath.Join(dir, "b.vast"), `(Description definitions=[(ModuleDef name="b") (Include file="a.vast")])`)
	writeFile(t, filepath.Join(dir, "self.vast"), `(Description definitions=[(Include file="self.vast")])`)

	for _, name := range []string{"a.vast", "self.vast"} {
		_, err := newLoader(t, Options{}).LoadFile(filepath.Join(dir, name))
		le := loadError(t, err)
		assert.Equal(t, errors.ErrorIncludeCycle, le.Code, name)
	}

	// The same file may be included twice when it is not on the stack.
	writeFile(t, filepath.Join(dir, "twice.vast"), `(Description definitions=[(Include file="leaf.vast") (Include file="leaf.vast")])`)
	writeFile(t, filepath.Join(dir, "leaf.vast"), `(ModuleDef name="leaf")`)
	n, err := newLoader(t, Options{}).LoadFile(filepath.Join(dir, "twice.vast"))
	require.NoError(t, err)
	assert.Len(t, n.(*ast.Description).Definitions, 2)
}

func TestIncludeArguments(t *testing.T) {
	for _, src := range []string{
		`(Description definitions=[(Include)])`,
		`(Description definitions=[(Include file="a" mode="b")])`,
		`(Description definitions=[(Include file=None)])`,
	} {
		_, err := newLoader(t, Options{}).LoadString("inc.vast", src)
		le := loadError(t, err)
		assert.Equal(t, errors.ErrorInvalidAttribute, le.Code, src)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := newLoader(t, Options{}).LoadFile(filepath.Join(t.TempDir(), "none.vast"))
	le := loadError(t, err)
	assert.Equal(t, errors.ErrorFileNotFound, le.Code)
	assert.Contains(t, le.Error(), "file not found")
}

func TestEncodeRoundTrip(t *testing.T) {
	l := newLoader(t, Options{})
	first, err := l.LoadString("counter.vast", counterTree)
	require.NoError(t, err)

	text := Encode(first).String()
	second, err := l.LoadString("again.vast", text)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.IgnoreTypes(ast.Position{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree changed by encode and decode (-first +second):\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	n := &ast.Reg{Name: "r", Signed: true, Lineno: 4, Width: &ast.Width{MSB: &ast.IntConst{Value: "7"}, LSB: &ast.IntConst{Value: "0"}}}
	assert.Equal(t, `(Reg line=4 name="r" width=(Width msb=(IntConst value="7") lsb=(IntConst value="0")) signed=true)`, Encode(n).String())

	op := &ast.Operator{Op: ast.MINUS, Left: &ast.Identifier{Name: "a"}, Right: &ast.IntConst{Value: "1"}}
	assert.Equal(t, `(Minus left=(Identifier name="a") right=(IntConst value="1"))`, Encode(op).String())

	assert.Nil(t, Encode(nil))
}
