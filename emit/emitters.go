package emit

import (
	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/report"
	"xamlx/typesys"
)

// DefaultEmitters returns the emitters used by default in the order they are
// tried.
func DefaultEmitters() []NodeEmitter {
	return []NodeEmitter{
		NewObjectEmitter{},
		TextNodeEmitter{},
		MethodCallEmitter{},
		PropertyAssignmentEmitter{},
		PropertyValueManipulationEmitter{},
		ManipulationGroupEmitter{},
	}
}

// -----------------------------------------------------------------------------

// NewObjectEmitter emits the construction of an object.  The constructor
// arguments are pushed first and each child is then applied to a duplicate of
// the new object.
type NewObjectEmitter struct{}

func (NewObjectEmitter) Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	on, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, nil
	}

	t, ok := ast.ResolvedType(on.TypeRef)
	if !ok || typesys.IsPseudo(t) {
		return nil, report.RaiseLoad(on, "Unable to construct an object of unresolved type %s", ast.Describe(on.TypeRef))
	}

	ctor := findConstructor(t, on.Arguments)
	if ctor == nil {
		return nil, report.RaiseLoad(on, "Unable to find a public constructor of %s taking %d argument(s)", typesys.Fqn(t), len(on.Arguments))
	}

	for i, arg := range on.Arguments {
		if _, err := ctx.Emit(arg, gen, ctor.Parameters()[i]); err != nil {
			return nil, err
		}
	}

	gen.NewObj(ctor)

	for _, child := range on.Children {
		gen.Dup()

		if _, err := ctx.Emit(child, gen, nil); err != nil {
			return nil, err
		}
	}

	return ast.TypeResult(t), nil
}

// findConstructor finds the first public instance constructor of a type whose
// parameters accept the given arguments.  Arguments whose types are not known
// before emission match any parameter.
func findConstructor(t typesys.Type, args []ast.Node) typesys.Method {
outer:
	for _, ctor := range t.Constructors() {
		params := ctor.Parameters()
		if !ctor.IsPublic() || ctor.IsStatic() || len(params) != len(args) {
			continue
		}

		for i, arg := range args {
			vn, ok := arg.(ast.ValueNode)
			if !ok {
				continue outer
			}

			argType := ast.TypeOf(vn)
			if argType != typesys.Unknown && !typesys.IsAssignableFrom(params[i], argType) {
				continue outer
			}
		}

		return ctor
	}

	return nil
}

// -----------------------------------------------------------------------------

// TextNodeEmitter emits text as a string constant
type TextNodeEmitter struct{}

func (TextNodeEmitter) Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	tn, ok := node.(*ast.TextNode)
	if !ok {
		return nil, nil
	}

	gen.LdStr(tn.Text)
	return ast.TypeResult(ctx.Configuration.TypeMappings.String), nil
}

// -----------------------------------------------------------------------------

// MethodCallEmitter emits instance and static method calls.  Instance calls are
// applied to the value on top of the stack and produce no value.
type MethodCallEmitter struct{}

func (MethodCallEmitter) Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	switch n := node.(type) {
	case *ast.InstanceMethodCallNode:
		if err := emitArguments(ctx, gen, n, n.Method, n.Arguments); err != nil {
			return nil, err
		}

		gen.Call(n.Method)
		if n.Method.ReturnType() != nil {
			gen.Pop()
		}

		return ast.VoidResult(), nil
	case *ast.StaticMethodCallNode:
		if err := emitArguments(ctx, gen, n, n.Method, n.Arguments); err != nil {
			return nil, err
		}

		gen.Call(n.Method)
		if rt := n.Method.ReturnType(); rt != nil {
			return ast.TypeResult(rt), nil
		}

		return ast.VoidResult(), nil
	}

	return nil, nil
}

// emitArguments emits the arguments of a method call with the method's
// parameter types as the expected types.
func emitArguments(ctx *Context, gen codegen.Generator, call ast.Node, m typesys.Method, args []ast.Node) error {
	params := m.Parameters()
	if len(params) != len(args) {
		return report.RaiseLoad(call, "Method %s takes %d argument(s) but %d were given", typesys.DescribeMember(m), len(params), len(args))
	}

	for i, arg := range args {
		if _, err := ctx.Emit(arg, gen, params[i]); err != nil {
			return err
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// PropertyAssignmentEmitter emits a call to a property setter on the object on
// top of the stack.
type PropertyAssignmentEmitter struct{}

func (PropertyAssignmentEmitter) Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	pa, ok := node.(*ast.PropertyAssignmentNode)
	if !ok {
		return nil, nil
	}

	setter := pa.Property.Setter()
	if setter == nil || !setter.IsPublic() {
		return nil, report.RaiseLoad(pa, "Property %s is read-only", typesys.DescribeMember(pa.Property))
	}

	if _, err := ctx.Emit(pa.Value, gen, pa.Property.PropertyType()); err != nil {
		return nil, err
	}

	gen.Call(setter)
	return ast.VoidResult(), nil
}

// PropertyValueManipulationEmitter loads a property value of the object on
// top of the stack and applies a manipulation to it.
type PropertyValueManipulationEmitter struct{}

func (PropertyValueManipulationEmitter) Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	pm, ok := node.(*ast.PropertyValueManipulationNode)
	if !ok {
		return nil, nil
	}

	getter := pm.Property.Getter()
	if getter == nil || !getter.IsPublic() {
		return nil, report.RaiseLoad(pm, "Property %s has no public getter", typesys.DescribeMember(pm.Property))
	}

	gen.Call(getter)

	if _, err := ctx.Emit(pm.Manipulation, gen, nil); err != nil {
		return nil, err
	}

	return ast.VoidResult(), nil
}

// ManipulationGroupEmitter applies each manipulation of a group to a duplicate
// of the value on top of the stack and then discards the value.
type ManipulationGroupEmitter struct{}

func (ManipulationGroupEmitter) Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	mg, ok := node.(*ast.ManipulationGroupNode)
	if !ok {
		return nil, nil
	}

	for _, child := range mg.Children {
		gen.Dup()

		if _, err := ctx.Emit(child, gen, nil); err != nil {
			return nil, err
		}
	}

	gen.Pop()
	return ast.VoidResult(), nil
}
