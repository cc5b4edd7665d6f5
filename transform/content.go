package transform

import (
	"xamlx/ast"
	"xamlx/common"
	"xamlx/typesys"
)

// ContentTransformer assigns the content of an object node (its child
// objects and text) to the content property of the object's type.
type ContentTransformer struct{}

func (ContentTransformer) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	on, ok := node.(*ast.ObjectNode)
	if !ok {
		return node, nil
	}

	var (
		children []ast.Node
		content  []ast.Node
	)

	changed := false
	for _, child := range on.Children {
		if !isContent(child) {
			children = append(children, child)
			continue
		}

		changed = true
		if tn, ok := child.(*ast.TextNode); ok && common.IsWhitespace(tn.Text) {
			continue
		}

		content = append(content, child)
	}

	if !changed {
		return on, nil
	}

	c := *on
	c.Children = children

	if len(content) == 0 {
		return &c, nil
	}

	// unresolved types have already been reported
	t, ok := ast.ResolvedType(on.TypeRef)
	if !ok {
		return on, nil
	}

	prop := findContentProperty(t, ctx.Configuration.TypeMappings.ContentAttributes)
	if prop == nil {
		return ctx.ParseError(on, on, "No content property exists for type %s", typesys.Fqn(t))
	}

	pv := ast.NewPropertyValueNode(on.Span(), ast.NewClrPropertyReference(on.Span(), prop), content...)
	c.Children = append(c.Children, pv)
	return &c, nil
}

// isContent returns whether a child of an object node is part of its content
// rather than one of its property values or directives.
func isContent(node ast.Node) bool {
	_, ok := node.(ast.ValueNode)
	return ok
}

// findContentProperty finds the property carrying one of the content
// attributes on a type or one of its base types.
func findContentProperty(t typesys.Type, contentAttributes []typesys.Type) typesys.Property {
	for ; t != nil; t = t.BaseType() {
		for _, prop := range t.Properties() {
			if typesys.HasAttribute(prop.CustomAttributes(), contentAttributes) {
				return prop
			}
		}
	}

	return nil
}
