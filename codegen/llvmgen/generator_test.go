package llvmgen

import (
	"bytes"
	"strings"
	"testing"

	"xamlx/typesys"
	"xamlx/typesys/loaded"
)

func generate(t *testing.T, build func(g *Generator, ts *loaded.TypeSystem)) string {
	ts := loaded.New()
	loaded.DefineCorlib(ts)

	g := NewGenerator("test.xaml")
	build(g, ts)

	buff := &bytes.Buffer{}
	if _, err := g.WriteTo(buff); err != nil {
		t.Fatal(err)
	}

	return buff.String()
}

func TestBuilderFunction(t *testing.T) {
	out := generate(t, func(g *Generator, ts *loaded.TypeSystem) {
		g.LdcI4(123).Box(ts.Lookup(typesys.Int32Name)).Ret()
	})

	for _, want := range []string{
		"define void @xamlx.build()",
		"call void @xamlx.rt.ldc_i4(i32 123)",
		"@xamlx.rt.box",
		"ret void",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestHooksDeclaredOnce(t *testing.T) {
	out := generate(t, func(g *Generator, ts *loaded.TypeSystem) {
		g.LdNull().LdNull().Pop().Pop().Ret()
	})

	if n := strings.Count(out, "declare void @xamlx.rt.ldnull"); n != 1 {
		t.Errorf("expected a single ldnull hook declaration, got %d:\n%s", n, out)
	}
}

func TestStringsInterned(t *testing.T) {
	out := generate(t, func(g *Generator, ts *loaded.TypeSystem) {
		g.LdStr("hello").LdStr("hello").LdToken(ts.Lookup(typesys.StringName)).Ret()
	})

	if !strings.Contains(out, `c"hello\00"`) {
		t.Errorf("missing string constant:\n%s", out)
	}

	// `hello` and the type name
	if strings.Contains(out, "@.str.2") {
		t.Errorf("identical strings should share a global:\n%s", out)
	}
}

func TestMemberNames(t *testing.T) {
	ts := loaded.New()
	loaded.DefineCorlib(ts)

	gtfh := ts.Lookup("System.Type").Methods()[0]
	if got := methodName(gtfh); got != "System.Type::GetTypeFromHandle(System.RuntimeTypeHandle)" {
		t.Errorf("methodName = %s", got)
	}
}
