package transform

import (
	"xamlx/ast"
	"xamlx/common"
)

// ArgumentsTransformer moves the values of an `<x:Arguments>` element into the
// constructor arguments of its object node.
type ArgumentsTransformer struct{}

func (ArgumentsTransformer) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	on, ok := node.(*ast.ObjectNode)
	if !ok {
		return node, nil
	}

	var (
		children  []ast.Node
		arguments *ast.XmlDirective
	)

	for _, child := range on.Children {
		directive, ok := child.(*ast.XmlDirective)
		if !ok || directive.Namespace != common.XamlNamespace || directive.Name != directiveArguments {
			children = append(children, child)
			continue
		}

		if arguments != nil {
			kept, err := ctx.ParseError(directive, directive, "x:Arguments can only be specified once")
			if err != nil {
				return nil, err
			}

			children = append(children, kept)
			continue
		}

		arguments = directive
	}

	if arguments == nil {
		return on, nil
	}

	var args []ast.Node
	for _, value := range arguments.Values {
		if tn, ok := value.(*ast.TextNode); ok && common.IsWhitespace(tn.Text) {
			continue
		}

		if _, ok := value.(ast.ValueNode); !ok {
			if _, err := ctx.ParseError(value, value, "x:Arguments values must produce a value: got %s", ast.Describe(value)); err != nil {
				return nil, err
			}
		}

		args = append(args, value)
	}

	c := *on
	c.Children = children
	c.Arguments = append(append([]ast.Node(nil), on.Arguments...), args...)
	return &c, nil
}
