package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"xamlx/ast"
	"xamlx/report"
)

// findAssignment returns the first assignment of the named property in a tree
func findAssignment(root ast.Node, name string) *ast.PropertyAssignmentNode {
	var found *ast.PropertyAssignmentNode

	ast.Visit(root, func(node ast.Node) (ast.Node, error) {
		if pa, ok := node.(*ast.PropertyAssignmentNode); ok && found == nil && pa.Property.Name() == name {
			found = pa
		}

		return node, nil
	})

	return found
}

func expectParseError(t *testing.T, err error, message string) {
	t.Helper()

	var pe *report.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a parse error, got %v", err)
	}

	if pe.Message != message {
		t.Errorf("unexpected message:\n  got:  %s\n  want: %s", pe.Message, message)
	}
}

// -----------------------------------------------------------------------------

func TestDirectivesRecordPassData(t *testing.T) {
	m := newTestManager(t, nil)

	_, ctx, err := transformDocument(t, m, `<Control `+demoHeader+` x:Class="Demo.MainWindow">
		<Control.Tag><Button x:Key="first"/></Control.Tag>
		<Button x:Key="second"/>
	</Control>`, true)
	if err != nil {
		t.Fatal(err)
	}

	if ctx.PassData.ClassName != "Demo.MainWindow" {
		t.Errorf("unexpected class name: %q", ctx.PassData.ClassName)
	}

	if diff := pretty.Diff(ctx.PassData.Keys, []string{"first", "second"}); len(diff) > 0 {
		t.Errorf("unexpected keys: %v", diff)
	}
}

func TestNameDirective(t *testing.T) {
	m := newTestManager(t, nil)

	root, _, err := transformDocument(t, m, `<Control `+demoHeader+` x:Name="root" />`, true)
	if err != nil {
		t.Fatal(err)
	}

	pa := findAssignment(root, "Name")
	if pa == nil {
		t.Fatalf("x:Name was not lowered to a property assignment:\n%s", ast.Print(root))
	}

	if tn, ok := pa.Value.(*ast.TextNode); !ok || tn.Text != "root" {
		t.Errorf("unexpected name value: %s", ast.Describe(pa.Value))
	}
}

func TestDirectiveErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"unknown", `<Control ` + demoHeader + ` x:Uid="a" />`, "Unknown directive x:Uid"},
		{"class-object", `<Control ` + demoHeader + ` x:Class="{x:Null}" />`, "x:Class must be specified as text"},
		{"duplicate-class", `<Control ` + demoHeader + ` x:Class="A"><Button x:Class="B"/></Control>`, "Duplicate x:Class directive: class already set to A"},
		{"duplicate-key", `<Control ` + demoHeader + `><Button x:Key="a"/><Button x:Key="a"/></Control>`, "Duplicate x:Key a"},
		{"duplicate-arguments", `<Button ` + demoHeader + `><x:Arguments>a</x:Arguments><x:Arguments>b</x:Arguments></Button>`, "x:Arguments can only be specified once"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newTestManager(t, nil)

			_, _, err := transformDocument(t, m, test.src, true)
			expectParseError(t, err, test.message)
		})
	}
}

func TestIntrinsicErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"type-no-argument", `<Control ` + demoHeader + ` Tag="{x:Type}" />`, "x:Type extension requires exactly one text argument"},
		{"static-no-argument", `<Control ` + demoHeader + ` Tag="{x:Static}" />`, "x:Static extension requires exactly one text argument"},
		{"static-no-member", `<Control ` + demoHeader + ` Tag="{x:Static Constants}" />`, "x:Static argument must be of the form `Type.Member`: got `Constants`"},
		{"unknown-prefix", `<Control ` + demoHeader + ` Tag="{x:Type y:Button}" />`, "Unknown namespace prefix y"},
		{"unknown-type", `<Control ` + demoHeader + ` Tag="{x:Type Missing}" />`, "Unable to resolve type Missing from namespace https://xamlx.dev/demo"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newTestManager(t, nil)

			_, _, err := transformDocument(t, m, test.src, true)
			expectParseError(t, err, test.message)
		})
	}
}

func TestPropertyErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"no-content-property", `<Label ` + demoHeader + `>text</Label>`, "No content property exists for type Demo.Label"},
		{"read-only", `<Control ` + demoHeader + ` Level="3" />`, "Unable to find a suitable setter or adder for property Demo.Control.Level"},
		{"multiple-values", `<Control ` + demoHeader + `><Control.Tag><Button/><Button/></Control.Tag></Control>`, "Property Demo.Control.Tag does not support multiple values"},
		{"bad-number", `<Control ` + demoHeader + ` Index="abc" />`, "Unable to convert text `abc` to System.Int32: invalid syntax"},
		{"bad-bool", `<Control ` + demoHeader + ` IsEnabled="maybe" />`, "Unable to convert text `maybe` to System.Boolean"},
		{"bad-enum", `<Control ` + demoHeader + ` Background="Purple" />`, "Unable to find member `Purple` of enum Demo.Color"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newTestManager(t, nil)

			_, _, err := transformDocument(t, m, test.src, true)
			expectParseError(t, err, test.message)
		})
	}
}

// -----------------------------------------------------------------------------

func TestTextConversions(t *testing.T) {
	m := newTestManager(t, nil)

	root, _, err := transformDocument(t, m, `<Control `+demoHeader+`
		IsEnabled="True"
		Background="Blue"
		Index="-7"
		Width="0.25"
		Margin="1,2,3,4"
		Name="plain" />`, true)
	if err != nil {
		t.Fatal(err)
	}

	constants := map[string]interface{}{
		"IsEnabled":  true,
		"Background": int32(2),
		"Index":      int32(-7),
		"Width":      0.25,
	}

	for name, want := range constants {
		pa := findAssignment(root, name)
		if pa == nil {
			t.Errorf("missing assignment of %s", name)
			continue
		}

		cn, ok := pa.Value.(*ast.ConstantNode)
		if !ok {
			t.Errorf("%s: expected a constant, got %s", name, ast.Describe(pa.Value))
			continue
		}

		if cn.Value != want {
			t.Errorf("%s: got %# v, want %# v", name, pretty.Formatter(cn.Value), pretty.Formatter(want))
		}
	}

	if pa := findAssignment(root, "Margin"); pa == nil {
		t.Error("missing assignment of Margin")
	} else if call, ok := pa.Value.(*ast.StaticMethodCallNode); !ok || call.Method.Name() != "Parse" {
		t.Errorf("expected a call to Parse, got %s", ast.Describe(pa.Value))
	}

	if pa := findAssignment(root, "Name"); pa == nil {
		t.Error("missing assignment of Name")
	} else if _, ok := pa.Value.(*ast.TextNode); !ok {
		t.Errorf("expected a string assignment to keep its text, got %s", ast.Describe(pa.Value))
	}
}

func TestEnumNumericValue(t *testing.T) {
	m := newTestManager(t, nil)

	out := mustCompile(t, m, `<Control `+demoHeader+` Background="1" />`)
	if !strings.Contains(out, "0002  ldc.i4 1\n0003  call void Demo.Control.set_Background(Demo.Color)") {
		t.Errorf("unexpected instructions:\n%s", out)
	}
}

func TestStaticParseEmission(t *testing.T) {
	m := newTestManager(t, nil)

	out := mustCompile(t, m, `<Control `+demoHeader+` Margin="4" />`)

	want := `0000  newobj void Demo.Control..ctor()
0001  dup
0002  ldstr "4"
0003  call Demo.Thickness Demo.Thickness.Parse(System.String)
0004  call void Demo.Control.set_Margin(Demo.Thickness)
0005  ret
`

	if out != want {
		t.Errorf("unexpected instructions:\n%s", out)
	}
}

func TestPropertyElements(t *testing.T) {
	m := newTestManager(t, nil)

	out := mustCompile(t, m, `<Control `+demoHeader+`><Control.Tag><Button/></Control.Tag></Control>`)

	want := `0000  newobj void Demo.Control..ctor()
0001  dup
0002  newobj void Demo.Button..ctor()
0003  call void Demo.Control.set_Tag(System.Object)
0004  ret
`

	if out != want {
		t.Errorf("unexpected instructions:\n%s", out)
	}
}

func TestTypeResolutionIsCached(t *testing.T) {
	m := newTestManager(t, nil)

	_, ctx, err := transformDocument(t, m, `<Control `+demoHeader+`><Button/><Button/></Control>`, true)
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"{https://xamlx.dev/demo}Control", "{https://xamlx.dev/demo}Button"} {
		if _, ok := ctx.PassData.ResolvedTypes[key]; !ok {
			t.Errorf("type %s was not cached", key)
		}
	}
}

func TestClrNamespaceTypes(t *testing.T) {
	m := newTestManager(t, nil)

	out := mustCompile(t, m, `<c:Button xmlns:c="clr-namespace:Demo;assembly=Demo" />`)
	if out != "0000  newobj void Demo.Button..ctor()\n0001  ret\n" {
		t.Errorf("unexpected instructions:\n%s", out)
	}
}
