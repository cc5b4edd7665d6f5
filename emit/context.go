// Package emit turns resolved AST nodes into instructions.  Emission is
// dispatched over an ordered list of emitters and every value boundary is
// checked against the type the caller expects.
package emit

import (
	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/config"
	"xamlx/report"
	"xamlx/typesys"
)

// NodeEmitter generates the instructions of one or more node shapes.  It
// returns a nil result for nodes it does not handle.
type NodeEmitter interface {
	Emit(ctx *Context, node ast.Node, gen codegen.Generator) (*ast.EmitResult, error)
}

// Context is the emission context of a single compile call.  It holds no
// state between calls.
type Context struct {
	// Configuration is the shared compiler configuration
	Configuration *config.Configuration

	// Emitters are the emitters tried in order for each node
	Emitters []NodeEmitter
}

// NewContext creates a new emit context
func NewContext(cfg *config.Configuration, emitters []NodeEmitter) *Context {
	return &Context{Configuration: cfg, Emitters: emitters}
}

// Emit emits a node and checks its result against the expected type: nil for
// void.  Value type results used where a reference is expected are boxed.
func (c *Context) Emit(node ast.Node, gen codegen.Generator, expected typesys.Type) (*ast.EmitResult, error) {
	res, err := c.emitNode(node, gen)
	if err != nil {
		return nil, err
	}

	returned := res.ReturnType
	if returned == nil && expected == nil {
		return res, nil
	}

	if returned != nil && expected == nil {
		return nil, report.RaiseLoad(node, "Emit of node %s resulted in %s while caller expected void",
			ast.Describe(node), typesys.Fqn(returned))
	}

	if returned == nil {
		return nil, report.RaiseLoad(node, "Emit of node %s resulted in void while caller expected %s",
			ast.Describe(node), typesys.Fqn(expected))
	}

	if !typesys.IsAssignableFrom(expected, returned) {
		return nil, report.RaiseLoad(node, "Emit of node %s resulted in %s which is not convertible to expected %s",
			ast.Describe(node), typesys.Fqn(returned), typesys.Fqn(expected))
	}

	if returned.IsValueType() && !expected.IsValueType() {
		gen.Box(returned)
	}

	return res, nil
}

// emitNode dispatches a node to the first emitter that handles it or to the
// node itself if it is self-emitting.
func (c *Context) emitNode(node ast.Node, gen codegen.Generator) (*ast.EmitResult, error) {
	for _, emitter := range c.Emitters {
		res, err := emitter.Emit(c, node, gen)
		if err != nil {
			return nil, err
		}

		if res != nil {
			return res, nil
		}
	}

	if en, ok := node.(ast.EmitableNode); ok {
		res, err := en.Emit(c, gen)
		if err != nil {
			return nil, err
		}

		if res == nil {
			return ast.VoidResult(), nil
		}

		return res, nil
	}

	return nil, report.RaiseLoad(node, "Unable to find emitter for node type: %s", ast.KindOf(node))
}
