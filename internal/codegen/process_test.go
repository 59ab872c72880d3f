package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v2sc/internal/ast"
)

func TestSplitTriggers(t *testing.T) {
	clk := sens("CLK", SensPosedge)
	rst := sens("RSTX", SensNegedge)
	a := sens("a", SensLevel)
	clk2 := sens("CLK", SensNegedge)
	scoped := &ast.Sens{Sig: &ast.Identifier{Name: "CLK", Scope: &ast.IdentifierScope{}}, Type: SensPosedge}
	ptr := &ast.Sens{Sig: &ast.Pointer{Var: id("RSTX"), Ptr: ic("0")}, Type: SensPosedge}

	got := SplitTriggers(&ast.SensList{List: []*ast.Sens{a, clk, scoped, rst, clk2, ptr}}, "CLK", "RSTX")

	assert.Same(t, clk, got.Clock)
	assert.Same(t, rst, got.Reset)
	assert.Equal(t, []*ast.Sens{a, scoped, clk2, ptr}, got.Other)
}

func TestSplitTriggersIsPartition(t *testing.T) {
	lists := [][]*ast.Sens{
		nil,
		{sens("a", SensLevel)},
		{sens("CLK", SensPosedge)},
		{sens("RSTX", SensPosedge), sens("CLK", SensPosedge), sens("b", SensLevel)},
		{sens("CLK", SensPosedge), sens("CLK", SensPosedge), sens("RSTX", SensNegedge), sens("RSTX", SensNegedge)},
	}

	for _, list := range lists {
		got := SplitTriggers(&ast.SensList{List: list}, "CLK", "RSTX")

		var joined []*ast.Sens
		for _, s := range []*ast.Sens{got.Clock, got.Reset} {
			if s != nil {
				joined = append(joined, s)
			}
		}
		joined = append(joined, got.Other...)
		require.Len(t, joined, len(list))

		seen := map[*ast.Sens]bool{}
		for _, s := range joined {
			assert.False(t, seen[s], "entry assigned twice")
			seen[s] = true
		}

		// Other keeps the original relative order.
		var want []*ast.Sens
		for _, s := range list {
			if s != got.Clock && s != got.Reset {
				want = append(want, s)
			}
		}
		if diff := cmp.Diff(want, got.Other); diff != "" {
			t.Errorf("other entries reordered (-want +got):\n%s", diff)
		}
	}

	empty := SplitTriggers(nil, "CLK", "RSTX")
	assert.Nil(t, empty.Clock)
	assert.Nil(t, empty.Reset)
	assert.Empty(t, empty.Other)
}

func TestResetActive(t *testing.T) {
	assert.False(t, ResetActive(sens("RSTX", SensNegedge)))
	assert.True(t, ResetActive(sens("RST", SensPosedge)))
	assert.True(t, ResetActive(sens("RST", SensLevel)))
}

func clockedAlways() *ast.Always {
	return &ast.Always{
		Lineno:   10,
		SensList: &ast.SensList{List: []*ast.Sens{sens("CLK", SensPosedge), sens("RSTX", SensNegedge)}},
		Statement: &ast.IfStatement{
			Cond:           un(ast.ULNOT, id("RSTX")),
			TrueStatement:  &ast.NonblockingSubstitution{Left: lv(id("q")), Right: rv(ic("0"))},
			FalseStatement: &ast.NonblockingSubstitution{Left: lv(id("q")), Right: rv(id("d"))},
		},
	}
}

func TestClockedAlways(t *testing.T) {
	n := clockedAlways()

	proc, ok := project(t, n, ProcessContext)
	require.True(t, ok)
	assert.Equal(t, "SC_METHOD(always_at_line_10);\n"+
		"sensitive << CLK.pos();\n"+
		"async_reset_signal_is(RSTX, false);\n"+
		"dont_initialize();", proc)

	decl, ok := project(t, n, DeclarationContext)
	require.True(t, ok)
	assert.Equal(t, "void always_at_line_10()\n"+
		"{\n"+
		"    if (!RSTX) q = 0;\n"+
		"    else q = d;\n"+
		"}", decl)
}

func TestClockedAlwaysWithExtraTriggers(t *testing.T) {
	n := &ast.Always{
		Lineno:    3,
		SensList:  &ast.SensList{List: []*ast.Sens{sens("CLK", SensPosedge), sens("en", SensPosedge)}},
		Statement: &ast.NonblockingSubstitution{Left: lv(id("q")), Right: rv(id("d"))},
	}

	proc, ok := project(t, n, ProcessContext)
	require.True(t, ok)
	assert.Equal(t, "SC_METHOD(always_at_line_3);\n"+
		"sensitive << CLK.pos();\n"+
		"sensitive << en.pos();\n"+
		"dont_initialize();", proc)
}

func TestCombinationalAlways(t *testing.T) {
	n := &ast.Always{
		Lineno:   20,
		SensList: &ast.SensList{List: []*ast.Sens{{Type: SensAll}}},
		Statement: &ast.Block{Statements: []ast.Node{
			&ast.BlockingSubstitution{Left: lv(id("t")), Right: rv(bin(ast.AND, id("a"), id("b")))},
			&ast.BlockingSubstitution{Left: lv(id("y")), Right: rv(bin(ast.OR, id("t"), id("a")))},
			&ast.BlockingSubstitution{Left: lv(&ast.Pointer{Var: id("mem"), Ptr: id("i")}), Right: rv(id("WIDTH"))},
		}},
	}

	g, err := New(DefaultOptions(), nil)
	require.NoError(t, err)
	w := g.newWalker().withConstants([]ast.Node{param("WIDTH", ic("8"))})

	text, ok, err := w.project(ProcessContext, n)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "SC_METHOD(always_at_line_20);\nsensitive << a << b << i;", text)
}

func TestUnclockedResetStaysInList(t *testing.T) {
	n := &ast.Always{
		Lineno:    5,
		SensList:  &ast.SensList{List: []*ast.Sens{sens("RSTX", SensLevel), sens("a", SensLevel)}},
		Statement: &ast.BlockingSubstitution{Left: lv(id("y")), Right: rv(id("a"))},
	}

	proc, ok := project(t, n, ProcessContext)
	require.True(t, ok)
	assert.Equal(t, "SC_METHOD(always_at_line_5);\nsensitive << RSTX << a;", proc)
}

func TestThreadAlways(t *testing.T) {
	n := &ast.Always{
		Lineno: 7,
		Statement: &ast.Block{Statements: []ast.Node{
			&ast.DelayStatement{Delay: ic("5")},
			&ast.BlockingSubstitution{Left: lv(id("clk")), Right: rv(un(ast.UNOT, id("clk")))},
		}},
	}

	proc, ok := project(t, n, ProcessContext)
	require.True(t, ok)
	assert.Equal(t, "SC_THREAD(always_at_line_7);", proc)

	decl, ok := project(t, n, DeclarationContext)
	require.True(t, ok)
	assert.Equal(t, "void always_at_line_7()\n"+
		"{\n"+
		"    while (true) {\n"+
		"        wait(5, SC_NS);\n"+
		"        clk = ~clk;\n"+
		"    }\n"+
		"}", decl)
}

func TestInitial(t *testing.T) {
	n := &ast.Initial{
		Lineno:    2,
		Statement: &ast.BlockingSubstitution{Left: lv(id("r")), Right: rv(ic("0"))},
	}

	proc, ok := project(t, n, ProcessContext)
	require.True(t, ok)
	assert.Equal(t, "SC_THREAD(initial_at_line_2);", proc)

	decl, ok := project(t, n, DeclarationContext)
	require.True(t, ok)
	assert.Equal(t, "void initial_at_line_2()\n{\n    r = 0;\n}", decl)
}

func TestAssignViews(t *testing.T) {
	n := &ast.Assign{
		Lineno: 4,
		Left:   lv(&ast.Partselect{Var: id("y"), MSB: ic("3"), LSB: ic("0")}),
		Right:  rv(bin(ast.PLUS, id("a"), &ast.Pointer{Var: id("b"), Ptr: id("i")})),
	}

	assert.Equal(t, "y.range(3, 0) = a + b[i];", render(t, n))

	decl, ok := project(t, n, DeclarationContext)
	require.True(t, ok)
	assert.Equal(t, "void assign_at_line_4()\n{\n    y.range(3, 0) = a + b[i];\n}", decl)

	proc, ok := project(t, n, ProcessContext)
	require.True(t, ok)
	assert.Equal(t, "SC_METHOD(assign_at_line_4);\nsensitive << a << b << i;", proc)
}

func TestReadSet(t *testing.T) {
	g := newTestGenerator(t)
	w := g.newWalker()

	body := &ast.Block{Statements: []ast.Node{
		&ast.BlockingSubstitution{
			Left:  lv(&ast.Pointer{Var: id("mem"), Ptr: id("addr")}),
			Right: rv(&ast.FunctionCall{Name: id("f"), Args: []ast.Node{id("x"), id("addr")}}),
		},
		&ast.IfStatement{Cond: id("en"), TrueStatement: &ast.BlockingSubstitution{Left: lv(id("o")), Right: rv(id("mem"))}},
	}}

	var names []string
	for _, n := range w.readSet(body) {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"addr", "x", "en"}, names)
}
