package repl

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v2sc/internal/codegen"
	"v2sc/internal/loader"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	ld, err := loader.New(loader.Options{})
	require.NoError(t, err)
	var out bytes.Buffer
	s, err := NewSession(codegen.DefaultOptions(), nil, ld, &out)
	require.NoError(t, err)
	return s, &out
}

func TestEvalRendersNode(t *testing.T) {
	s, out := newSession(t)

	assert.False(t, s.Eval(`(Plus left=(Identifier name="a") right=(IntConst value="1"))`))
	assert.Equal(t, "(a + 1)\n", out.String())
}

func TestEvalContexts(t *testing.T) {
	s, out := newSession(t)
	port := `(Input name="d" width=(Width msb=(IntConst value="7") lsb=(IntConst value="0")))`

	s.Eval(":ctx argument")
	s.Eval(port)
	assert.Equal(t, "const sc_uint<8>& d\n", out.String())

	out.Reset()
	s.Eval(":ctx process")
	s.Eval(port)
	assert.Equal(t, "Input has no process rendering\n", out.String())

	out.Reset()
	s.Eval(":ctx")
	assert.Equal(t, "context: process\n", out.String())

	out.Reset()
	s.Eval(":ctx sideways")
	assert.Contains(t, out.String(), "unknown context 'sideways'")
}

func TestEvalClockAndReset(t *testing.T) {
	s, out := newSession(t)
	always := `(Always line=3 sens_list=(SensList list=[(Sens sig=(Identifier name="clk") type="posedge")])
  statement=(NonblockingSubstitution left=(Lvalue var=(Identifier name="q")) right=(Rvalue var=(Identifier name="d"))))`

	s.Eval(":ctx process")
	s.Eval(always)
	assert.Equal(t, "SC_METHOD(always_at_line_3);\nsensitive << clk.pos();\n", out.String())

	out.Reset()
	s.Eval(":clock clk")
	s.Eval(always)
	assert.Equal(t, "SC_METHOD(always_at_line_3);\nsensitive << clk.pos();\ndont_initialize();\n", out.String())

	out.Reset()
	s.Eval(":reset clk")
	assert.Contains(t, out.String(), "error:")
	assert.Equal(t, "clk", s.opts.ClockName)
	assert.Equal(t, codegen.DefaultResetName, s.opts.ResetName)
}

func TestEvalErrors(t *testing.T) {
	s, out := newSession(t)

	s.Eval(`(Identifer name="a")`)
	assert.Contains(t, out.String(), "E0101")
	assert.Contains(t, out.String(), "did you mean 'Identifier'?")

	out.Reset()
	s.Eval(`(TaskCall name=(Identifier name="t"))`)
	assert.Contains(t, out.String(), "E0001")

	out.Reset()
	s.Eval(":show")
	assert.Contains(t, out.String(), "nothing entered yet")

	out.Reset()
	s.Eval(":frobnicate")
	assert.Contains(t, out.String(), "unknown command")
}

func TestEvalShowAndQuit(t *testing.T) {
	s, out := newSession(t)

	s.Eval(`(Identifier name="a")`)
	out.Reset()
	assert.False(t, s.Eval(":show"))
	assert.Equal(t, "(Identifier name=\"a\")\n", out.String())

	assert.False(t, s.Eval("   "))
	assert.True(t, s.Eval(":quit"))
}

func TestComplete(t *testing.T) {
	assert.True(t, complete(`(Identifier name="a")`))
	assert.False(t, complete(`(Block statements=[`))
	assert.False(t, complete(`(StringConst value="(`))
	assert.True(t, complete(`(StringConst value=")(")`))
	assert.True(t, complete("(Identifier # comment (\n name=\"a\")"))
	assert.True(t, complete(""))
}
