package transform

import (
	"strings"

	"xamlx/ast"
	"xamlx/common"
)

// IntrinsicsTransformer replaces the object nodes of the `x:Null`, `x:Type` and
// `x:Static` markup extensions with the corresponding intrinsic nodes.
type IntrinsicsTransformer struct{}

func (IntrinsicsTransformer) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	on, ok := node.(*ast.ObjectNode)
	if !ok {
		return node, nil
	}

	xr, ok := on.TypeRef.(*ast.XmlTypeReference)
	if !ok || xr.XmlNamespace != common.XamlNamespace {
		return node, nil
	}

	switch strings.TrimSuffix(xr.Name, "Extension") {
	case "Null":
		return ast.NewNullNode(on.Span()), nil
	case "Type":
		arg, ok := singleTextArgument(on)
		if !ok {
			return ctx.ParseError(on, on, "x:Type extension requires exactly one text argument")
		}

		typeRef, err := ctx.typeReferenceFromName(arg, arg.Text)
		if err != nil {
			return ctx.Fail(err, on)
		}

		return ast.NewTypeExtensionNode(on.Span(), typeRef, ctx.Configuration.TypeMappings.SystemType), nil
	case "Static":
		arg, ok := singleTextArgument(on)
		if !ok {
			return ctx.ParseError(on, on, "x:Static extension requires exactly one text argument")
		}

		ndx := strings.LastIndexByte(arg.Text, '.')
		if ndx < 1 || ndx == len(arg.Text)-1 {
			return ctx.ParseError(arg, on, "x:Static argument must be of the form `Type.Member`: got `%s`", arg.Text)
		}

		typeRef, err := ctx.typeReferenceFromName(arg, arg.Text[:ndx])
		if err != nil {
			return ctx.Fail(err, on)
		}

		return ast.NewStaticExtensionNode(on.Span(), typeRef, arg.Text[ndx+1:]), nil
	}

	return node, nil
}

// singleTextArgument returns the argument of an extension that takes exactly
// one text argument.
func singleTextArgument(on *ast.ObjectNode) (*ast.TextNode, bool) {
	if len(on.Arguments) != 1 {
		return nil, false
	}

	tn, ok := on.Arguments[0].(*ast.TextNode)
	return tn, ok
}
