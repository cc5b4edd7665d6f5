package emit_test

import (
	"errors"
	"strings"
	"testing"

	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/emit"
	"xamlx/report"
	"xamlx/typesys"
	"xamlx/xamlxtest"
)

// producerNode is a self-emitting node pushing a value of a fixed type
type producerNode struct {
	ast.NodeBase

	// produces is the type of the pushed value: nil for void
	produces typesys.Type
}

func (pn *producerNode) VisitChildren(v ast.Visitor) (ast.Node, error) {
	return pn, nil
}

func (pn *producerNode) Emit(ctx ast.EmitContext, gen codegen.Generator) (*ast.EmitResult, error) {
	if pn.produces == nil {
		return nil, nil
	}

	gen.LdNull()
	return ast.TypeResult(pn.produces), nil
}

// opaqueNode is a node no emitter handles
type opaqueNode struct {
	ast.NodeBase
}

func (on *opaqueNode) VisitChildren(v ast.Visitor) (ast.Node, error) {
	return on, nil
}

// fixedEmitter handles every node by emitting a single instruction
type fixedEmitter struct {
	op func(gen codegen.Generator)
}

func (fe fixedEmitter) Emit(ctx *emit.Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	fe.op(gen)
	return ast.VoidResult(), nil
}

// skipEmitter handles no node
type skipEmitter struct{}

func (skipEmitter) Emit(ctx *emit.Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	return nil, nil
}

func newTestContext(t *testing.T, emitters ...emit.NodeEmitter) (*emit.Context, typesys.TypeSystem) {
	ts := xamlxtest.NewLoadedTypeSystem()

	cfg, err := xamlxtest.NewConfiguration(ts)
	if err != nil {
		t.Fatal(err)
	}

	return emit.NewContext(cfg, emitters), ts
}

func mustFind(t *testing.T, ts typesys.TypeSystem, name string) typesys.Type {
	typ, err := ts.FindType(name)
	if err != nil {
		t.Fatal(err)
	}

	return typ
}

func expectLoadError(t *testing.T, err error, message string) {
	t.Helper()

	var le *report.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected a load error, got %v", err)
	}

	if le.Message != message {
		t.Errorf("unexpected message:\n  got:  %s\n  want: %s", le.Message, message)
	}
}

// -----------------------------------------------------------------------------

func TestReturnTypeContract(t *testing.T) {
	ctx, ts := newTestContext(t)
	object := mustFind(t, ts, typesys.ObjectName)
	str := mustFind(t, ts, typesys.StringName)
	i32 := mustFind(t, ts, typesys.Int32Name)

	tests := []struct {
		name     string
		produces typesys.Type
		expected typesys.Type
		message  string
	}{
		{"value-for-void", str, nil, "Emit of node producerNode resulted in System.String while caller expected void"},
		{"void-for-value", nil, object, "Emit of node producerNode resulted in void while caller expected System.Object"},
		{"not-convertible", str, i32, "Emit of node producerNode resulted in System.String which is not convertible to expected System.Int32"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ctx.Emit(&producerNode{produces: test.produces}, codegen.NewRecorder(), test.expected)
			expectLoadError(t, err, test.message)
		})
	}
}

func TestContractAccepts(t *testing.T) {
	ctx, ts := newTestContext(t)
	object := mustFind(t, ts, typesys.ObjectName)
	str := mustFind(t, ts, typesys.StringName)
	i32 := mustFind(t, ts, typesys.Int32Name)

	tests := []struct {
		name     string
		produces typesys.Type
		expected typesys.Type
		ops      []codegen.OpCode
	}{
		{"void", nil, nil, nil},
		{"same", str, str, []codegen.OpCode{codegen.OpLdNull}},
		{"reference-upcast", str, object, []codegen.OpCode{codegen.OpLdNull}},
		{"value", i32, i32, []codegen.OpCode{codegen.OpLdNull}},
		{"boxed", i32, object, []codegen.OpCode{codegen.OpLdNull, codegen.OpBox}},
		{"null", typesys.Null, object, []codegen.OpCode{codegen.OpLdNull}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := codegen.NewRecorder()

			res, err := ctx.Emit(&producerNode{produces: test.produces}, rec, test.expected)
			if err != nil {
				t.Fatal(err)
			}

			if res.ReturnType != test.produces {
				t.Errorf("result type changed: %s", typesys.Fqn(res.ReturnType))
			}

			ops := rec.Ops()
			if len(ops) != len(test.ops) {
				t.Fatalf("unexpected instructions:\n%s", rec.Disassemble())
			}

			for i, op := range ops {
				if op != test.ops[i] {
					t.Errorf("unexpected instructions:\n%s", rec.Disassemble())
					break
				}
			}
		})
	}
}

func TestBoxesWithProducedType(t *testing.T) {
	ctx, ts := newTestContext(t)
	object := mustFind(t, ts, typesys.ObjectName)
	color := mustFind(t, ts, "Demo.Color")

	rec := codegen.NewRecorder()
	if _, err := ctx.Emit(&producerNode{produces: color}, rec, object); err != nil {
		t.Fatal(err)
	}

	if out := rec.Disassemble(); out != "0000  ldnull\n0001  box Demo.Color\n" {
		t.Errorf("unexpected instructions:\n%s", out)
	}
}

func TestNoEmitter(t *testing.T) {
	ctx, _ := newTestContext(t, skipEmitter{})

	_, err := ctx.Emit(&opaqueNode{}, codegen.NewRecorder(), nil)
	expectLoadError(t, err, "Unable to find emitter for node type: opaqueNode")
}

func TestFirstEmitterWins(t *testing.T) {
	ctx, _ := newTestContext(t,
		skipEmitter{},
		fixedEmitter{op: func(gen codegen.Generator) { gen.Dup() }},
		fixedEmitter{op: func(gen codegen.Generator) { gen.Pop() }},
	)

	// emitters take precedence over self-emission
	rec := codegen.NewRecorder()
	if _, err := ctx.Emit(&producerNode{}, rec, nil); err != nil {
		t.Fatal(err)
	}

	if out := rec.Disassemble(); out != "0000  dup\n" {
		t.Errorf("unexpected instructions:\n%s", out)
	}
}

func TestSelfEmittingVoid(t *testing.T) {
	ctx, _ := newTestContext(t)

	res, err := ctx.Emit(&producerNode{}, codegen.NewRecorder(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !res.IsVoid() {
		t.Error("expected a void result")
	}
}

// -----------------------------------------------------------------------------

func TestDefaultEmitters(t *testing.T) {
	ctx, ts := newTestContext(t, emit.DefaultEmitters()...)
	control := mustFind(t, ts, "Demo.Control")
	label := mustFind(t, ts, "Demo.Label")

	level := typesys.FindProperty(control, "Level")
	if level == nil {
		t.Fatal("missing property Demo.Control.Level")
	}

	t.Run("text", func(t *testing.T) {
		rec := codegen.NewRecorder()
		res, err := ctx.Emit(ast.NewTextNode(nil, "hi"), rec, ctx.Configuration.TypeMappings.Object)
		if err != nil {
			t.Fatal(err)
		}

		if res.ReturnType != ctx.Configuration.TypeMappings.String || rec.Disassemble() != "0000  ldstr \"hi\"\n" {
			t.Errorf("unexpected emission:\n%s", rec.Disassemble())
		}
	})

	t.Run("unresolved-object", func(t *testing.T) {
		on := ast.NewObjectNode(nil, ast.NewXmlTypeReference(nil, xamlxtest.DemoNamespace, "Control"))

		_, err := ctx.Emit(on, codegen.NewRecorder(), nil)
		if err == nil || !strings.Contains(err.Error(), "unresolved type") {
			t.Errorf("expected an unresolved type error, got %v", err)
		}
	})

	t.Run("no-constructor", func(t *testing.T) {
		on := ast.NewObjectNode(nil, ast.NewClrTypeReference(nil, label))

		_, err := ctx.Emit(on, codegen.NewRecorder(), ctx.Configuration.TypeMappings.Object)
		expectLoadError(t, err, "Unable to find a public constructor of Demo.Label taking 0 argument(s)")
	})

	t.Run("read-only", func(t *testing.T) {
		pa := &ast.PropertyAssignmentNode{Property: level, Value: ast.NewTextNode(nil, "1")}

		_, err := ctx.Emit(pa, codegen.NewRecorder(), nil)
		if err == nil || !strings.Contains(err.Error(), "read-only") {
			t.Errorf("expected a read-only error, got %v", err)
		}
	})
}
