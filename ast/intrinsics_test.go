package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/report"
	"xamlx/typesys"
	"xamlx/typesys/loaded"
	"xamlx/xamlxtest"
)

func clrRef(t *testing.T, ts typesys.TypeSystem, name string) *ast.ClrTypeReference {
	typ, err := ts.FindType(name)
	if err != nil {
		t.Fatal(err)
	}

	return ast.NewClrTypeReference(nil, typ)
}

func TestNullNode(t *testing.T) {
	rec := codegen.NewRecorder()

	res, err := ast.NewNullNode(nil).Emit(nil, rec)
	if err != nil {
		t.Fatal(err)
	}

	if res.ReturnType != typesys.Null {
		t.Errorf("null result type = %s", typesys.Fqn(res.ReturnType))
	}

	if rec.Disassemble() != "0000  ldnull\n" {
		t.Errorf("unexpected instructions:\n%s", rec.Disassemble())
	}
}

func TestTypeExtension(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()
	systemType := ts.Lookup("System.Type")

	node := ast.NewTypeExtensionNode(nil, clrRef(t, ts, "Demo.Button"), systemType)

	if got := ast.TypeOf(node); !typesys.Equal(got, systemType) {
		t.Errorf("type extension type = %s", typesys.Fqn(got))
	}

	rec := codegen.NewRecorder()
	res, err := node.Emit(nil, rec)
	if err != nil {
		t.Fatal(err)
	}

	if !typesys.Equal(res.ReturnType, systemType) {
		t.Errorf("result type = %s", typesys.Fqn(res.ReturnType))
	}

	want := "0000  ldtoken Demo.Button\n0001  call System.Type System.Type.GetTypeFromHandle(System.RuntimeTypeHandle)\n"
	if got := rec.Disassemble(); got != want {
		t.Errorf("unexpected instructions:\n%s", got)
	}
}

func TestTypeExtensionMissingGetTypeFromHandle(t *testing.T) {
	ts := loaded.New()
	loaded.DefineCorlib(ts)

	brokenType := ts.Define("Demo.BrokenType").Extends(ts.Lookup(typesys.ObjectName))
	brokenType.AddMethod("GetTypeFromHandle", loaded.Public|loaded.Static, brokenType, ts.Lookup(typesys.StringName))

	node := ast.NewTypeExtensionNode(nil, clrRef(t, ts, typesys.StringName), brokenType)

	_, err := node.Emit(nil, codegen.NewRecorder())

	var tse *typesys.Error
	if !errors.As(err, &tse) {
		t.Fatalf("expected a type system error, got %v", err)
	}

	if tse.Message != "Unable to find GetTypeFromHandle(RuntimeTypeHandle) on Demo.BrokenType" {
		t.Errorf("unexpected message: %s", tse.Message)
	}
}

func TestStaticExtensionLiterals(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()
	constants := clrRef(t, ts, "Demo.Constants")

	cases := []struct {
		member     string
		want       string
		resultType string
	}{
		{"IntValue", "ldc.i4 123", typesys.Int32Name},
		{"LongValue", "ldc.i8 1099511627776", typesys.Int64Name},
		{"ULongValue", "ldc.i8 -9223372036854775808", typesys.UInt64Name},
		{"DoubleValue", "ldc.r8 2.5", typesys.DoubleName},
		{"SingleValue", "ldc.r4 1.5", typesys.SingleName},
		{"StringValue", `ldstr "hello"`, typesys.StringName},
		{"BoolValue", "ldc.i4 1", typesys.BooleanName},
		{"ColorValue", "ldc.i4 2", "Demo.Color"},
		{"SizeValue", "ldc.i8 1099511627776", "Demo.Size"},
	}

	for _, c := range cases {
		t.Run(c.member, func(t *testing.T) {
			node := ast.NewStaticExtensionNode(nil, constants, c.member)
			rec := codegen.NewRecorder()

			res, err := node.Emit(nil, rec)
			if err != nil {
				t.Fatal(err)
			}

			if got := rec.Disassemble(); got != "0000  "+c.want+"\n" {
				t.Errorf("unexpected instructions:\n%s", got)
			}

			if !typesys.IsNamed(res.ReturnType, c.resultType) {
				t.Errorf("result type = %s, want %s", typesys.Fqn(res.ReturnType), c.resultType)
			}

			if !typesys.IsNamed(ast.TypeOf(node), c.resultType) {
				t.Errorf("node type = %s, want %s", typesys.Fqn(ast.TypeOf(node)), c.resultType)
			}
		})
	}
}

func TestStaticExtensionFieldAndProperty(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()
	constants := clrRef(t, ts, "Demo.Constants")

	rec := codegen.NewRecorder()
	for _, member := range []string{"Instance", "Current"} {
		res, err := ast.NewStaticExtensionNode(nil, constants, member).Emit(nil, rec)
		if err != nil {
			t.Fatal(err)
		}

		if !typesys.IsNamed(res.ReturnType, "Demo.Constants") {
			t.Errorf("%s result type = %s", member, typesys.Fqn(res.ReturnType))
		}
	}

	want := []codegen.OpCode{codegen.OpLdsFld, codegen.OpCall}
	if diff := pretty.Diff(rec.Ops(), want); len(diff) > 0 {
		t.Errorf("unexpected ops: %v", diff)
	}

	if getter := rec.Instructions[1].Operand.(typesys.Method); getter.Name() != "get_Current" {
		t.Errorf("expected a getter call, got %s", getter.Name())
	}
}

func TestStaticExtensionUnresolvable(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()
	constants := clrRef(t, ts, "Demo.Constants")

	// private fields, instance fields and instance properties do not qualify
	for _, member := range []string{"Hidden", "Local", "Count", "Missing"} {
		t.Run(member, func(t *testing.T) {
			span := &report.TextSpan{StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 30}
			node := ast.NewStaticExtensionNode(span, constants, member)
			rec := codegen.NewRecorder()

			_, err := node.Emit(nil, rec)

			var le *report.LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected a load error, got %v", err)
			}

			if !strings.Contains(le.Message, "Unable to resolve "+member+" as static field, property, constant or enum value") {
				t.Errorf("unexpected message: %s", le.Message)
			}

			if le.Span != span || !strings.HasPrefix(le.Error(), "3:5: ") {
				t.Errorf("expected the error to point at the extension: %s", le.Error())
			}

			if len(rec.Instructions) != 0 {
				t.Error("nothing should be emitted on failure")
			}

			if ast.TypeOf(node) != typesys.Unknown {
				t.Errorf("type of an unresolvable member should be unknown")
			}
		})
	}
}

func TestStaticExtensionUnresolvedTarget(t *testing.T) {
	node := ast.NewStaticExtensionNode(nil, ast.NewXmlTypeReference(nil, xamlxtest.DemoNamespace, "Constants"), "IntValue")

	if ast.TypeOf(node) != typesys.Unknown {
		t.Error("type should be unknown before the target type is resolved")
	}
}

func TestConstantNode(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()

	rec := codegen.NewRecorder()
	node := ast.NewConstantNode(nil, ts.Lookup(typesys.Int32Name), int32(123))

	res, err := node.Emit(nil, rec)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Disassemble() != "0000  ldc.i4 123\n" || !typesys.IsNamed(res.ReturnType, typesys.Int32Name) {
		t.Errorf("unexpected emission: %s -> %s", rec.Disassemble(), typesys.Fqn(res.ReturnType))
	}
}
