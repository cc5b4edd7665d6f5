// Package transform is the semantic pipeline of the compiler: an ordered list
// of passes rewriting a raw document tree into a resolved tree, and the
// manager running them and emitting the result.
package transform

import (
	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/config"
	"xamlx/emit"
)

// Transformer is a single pass.  It is applied to every node of the tree in
// pre-order and returns the node's replacement: the node itself if nothing
// changes.
type Transformer interface {
	Transform(ctx *Context, node ast.Node) (ast.Node, error)
}

// DefaultTransformers returns the default passes in the order they run
func DefaultTransformers() []Transformer {
	return []Transformer{
		KnownDirectivesTransformer{},
		IntrinsicsTransformer{},
		ArgumentsTransformer{},
		TypeReferenceResolver{},
		PropertyReferenceResolver{},
		ContentTransformer{},
		PropertyValueTransformer{},
	}
}

// Manager runs the passes over a document and compiles the resolved tree.  A
// manager holds no per-compilation state and may be used concurrently as long
// as its passes and emitters are not modified.
type Manager struct {
	// Configuration is the shared compiler configuration
	Configuration *config.Configuration

	// Transformers are the passes run by `Transform` in order
	Transformers []Transformer

	// Emitters are the emitters used by `Compile` in order
	Emitters []emit.NodeEmitter
}

// NewManager creates a new transformation manager.  If `fillDefaults` is set,
// the manager is populated with the default passes and emitters.
func NewManager(cfg *config.Configuration, fillDefaults bool) *Manager {
	m := &Manager{Configuration: cfg}

	if fillDefaults {
		m.Transformers = DefaultTransformers()
		m.Emitters = emit.DefaultEmitters()
	}

	return m
}

// Transform runs every pass over a document and returns the resolved tree.
// `aliases` are the namespace prefixes in scope in the document.  See
// `TransformContext` to access the data the passes recorded.
func (m *Manager) Transform(root ast.Node, aliases map[string]string, strict bool) (ast.Node, error) {
	result, _, err := m.TransformContext(root, aliases, strict)
	return result, err
}

// TransformContext runs every pass over a document and returns the resolved
// tree along with the transformation context.  In strict mode, the first
// error aborts the transformation and no tree is returned.  Otherwise, the
// errors recovered from are listed in the context's diagnostics.
func (m *Manager) TransformContext(root ast.Node, aliases map[string]string, strict bool) (ast.Node, *Context, error) {
	ctx := NewContext(m.Configuration, aliases, strict)

	for _, t := range m.Transformers {
		var err error
		root, err = ast.Visit(root, func(node ast.Node) (ast.Node, error) {
			return t.Transform(ctx, node)
		})

		if err != nil {
			return nil, ctx, err
		}
	}

	return root, ctx, nil
}

// Compile emits a resolved tree producing the root object followed by a
// return.
func (m *Manager) Compile(root ast.Node, gen codegen.Generator) error {
	ectx := emit.NewContext(m.Configuration, m.Emitters)

	if _, err := ectx.Emit(root, gen, m.Configuration.TypeMappings.Object); err != nil {
		return err
	}

	gen.Ret()
	return nil
}
