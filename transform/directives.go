package transform

import (
	"xamlx/ast"
	"xamlx/common"
)

// directiveArguments is the element-form directive holding constructor
// arguments.  It is lowered by `ArgumentsTransformer`.
const directiveArguments = "Arguments"

// KnownDirectivesTransformer handles the `x:Class`, `x:Name` and `x:Key`
// directives of object nodes.
type KnownDirectivesTransformer struct{}

func (KnownDirectivesTransformer) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	on, ok := node.(*ast.ObjectNode)
	if !ok {
		return node, nil
	}

	var children []ast.Node
	changed := false

	for _, child := range on.Children {
		directive, ok := child.(*ast.XmlDirective)
		if !ok || directive.Namespace != common.XamlNamespace || directive.Name == directiveArguments {
			children = append(children, child)
			continue
		}

		changed = true

		replacement, err := applyDirective(ctx, on, directive)
		if err != nil {
			return nil, err
		}

		if replacement != nil {
			children = append(children, replacement)
		}
	}

	if !changed {
		return on, nil
	}

	c := *on
	c.Children = children
	return &c, nil
}

// applyDirective handles a single directive.  It returns the node the
// directive is replaced with or nil if the directive is simply removed.
// Invalid directives are kept as they are.
func applyDirective(ctx *Context, on *ast.ObjectNode, directive *ast.XmlDirective) (ast.Node, error) {
	switch directive.Name {
	case "Class":
		text, ok := directiveText(directive)
		if !ok {
			return ctx.ParseError(directive, directive, "x:Class must be specified as text")
		}

		if ctx.PassData.ClassName != "" {
			return ctx.ParseError(directive, directive, "Duplicate x:Class directive: class already set to %s", ctx.PassData.ClassName)
		}

		ctx.PassData.ClassName = text
		return nil, nil
	case "Name":
		if len(directive.Values) != 1 {
			return ctx.ParseError(directive, directive, "x:Name must have exactly one value")
		}

		prop := ast.NewNamePropertyReference(directive.Span(), on.TypeRef, "Name", on.TypeRef)
		return ast.NewPropertyValueNode(directive.Span(), prop, directive.Values...), nil
	case "Key":
		text, ok := directiveText(directive)
		if !ok {
			return ctx.ParseError(directive, directive, "x:Key must be specified as text")
		}

		for _, key := range ctx.PassData.Keys {
			if key == text {
				return ctx.ParseError(directive, directive, "Duplicate x:Key %s", text)
			}
		}

		ctx.PassData.Keys = append(ctx.PassData.Keys, text)
		return nil, nil
	}

	return ctx.ParseError(directive, directive, "Unknown directive x:%s", directive.Name)
}

// directiveText returns the text value of a directive with a single text value
func directiveText(directive *ast.XmlDirective) (string, bool) {
	if len(directive.Values) != 1 {
		return "", false
	}

	if tn, ok := directive.Values[0].(*ast.TextNode); ok {
		return tn.Text, true
	}

	return "", false
}
