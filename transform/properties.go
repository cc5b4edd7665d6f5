package transform

import (
	"xamlx/ast"
	"xamlx/typesys"
)

// PropertyReferenceResolver resolves property references by name to the
// properties of their declaring types.
type PropertyReferenceResolver struct{}

func (PropertyReferenceResolver) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	np, ok := node.(*ast.NamePropertyReference)
	if !ok {
		return node, nil
	}

	// unresolved types have already been reported
	declaringType, ok := ast.ResolvedType(np.DeclaringType)
	if !ok {
		return np, nil
	}

	prop := typesys.FindProperty(declaringType, np.Name)
	if prop == nil {
		return ctx.ParseError(np, np, "Unable to resolve property %s on type %s", np.Name, typesys.Fqn(declaringType))
	}

	return ast.NewClrPropertyReference(np.Span(), prop), nil
}
