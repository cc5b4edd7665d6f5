package transform

import (
	"strconv"
	"strings"

	"xamlx/ast"
	"xamlx/report"
	"xamlx/typesys"
)

// PropertyValueTransformer lowers property values to assignments through the
// property's setter or to `Add` calls on the collection its getter returns.
// Text values are converted to the type they are assigned to.
type PropertyValueTransformer struct{}

func (PropertyValueTransformer) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	pv, ok := node.(*ast.PropertyValueNode)
	if !ok {
		return node, nil
	}

	// unresolved properties have already been reported
	ref, ok := pv.Property.(*ast.ClrPropertyReference)
	if !ok {
		return pv, nil
	}

	prop := ref.Property

	if setter := prop.Setter(); len(pv.Values) == 1 && setter != nil && setter.IsPublic() {
		value, err := ctx.convertValue(pv.Values[0], prop.PropertyType())
		if err != nil {
			return ctx.Fail(err, pv)
		}

		return &ast.PropertyAssignmentNode{
			NodeBase: ast.NewNodeBase(pv.Span()),
			Property: prop,
			Value:    value,
		}, nil
	}

	if getter := prop.Getter(); getter != nil && getter.IsPublic() {
		if adder := findAdder(prop.PropertyType()); adder != nil {
			group := &ast.ManipulationGroupNode{NodeBase: ast.NewNodeBase(pv.Span())}

			for _, value := range pv.Values {
				item, err := ctx.convertValue(value, adder.Parameters()[0])
				if err != nil {
					return ctx.Fail(err, pv)
				}

				group.Children = append(group.Children, &ast.InstanceMethodCallNode{
					NodeBase:  ast.NewNodeBase(value.Span()),
					Method:    adder,
					Arguments: []ast.Node{item},
				})
			}

			return &ast.PropertyValueManipulationNode{
				NodeBase:     ast.NewNodeBase(pv.Span()),
				Property:     prop,
				Manipulation: group,
			}, nil
		}
	}

	if len(pv.Values) != 1 && prop.Setter() != nil {
		return ctx.ParseError(pv, pv, "Property %s does not support multiple values", typesys.DescribeMember(prop))
	}

	return ctx.ParseError(pv, pv, "Unable to find a suitable setter or adder for property %s", typesys.DescribeMember(prop))
}

// findAdder finds the public instance `Add` method taking a single item on a
// collection type.
func findAdder(t typesys.Type) typesys.Method {
	return typesys.FindMethod(t, func(m typesys.Method) bool {
		return m.Name() == "Add" && m.IsPublic() && !m.IsStatic() && len(m.Parameters()) == 1
	})
}

// -----------------------------------------------------------------------------

// convertValue converts a text value to the type it is assigned to.  Every
// other value is returned as is: its type is checked during emission.
func (c *Context) convertValue(value ast.Node, target typesys.Type) (ast.Node, error) {
	tn, ok := value.(*ast.TextNode)
	if !ok {
		return value, nil
	}

	if typesys.IsAssignableFrom(target, c.Configuration.TypeMappings.String) {
		return tn, nil
	}

	if target.IsEnum() {
		return convertEnum(tn, target)
	}

	if constant, ok, err := convertPrimitive(tn, target); ok || err != nil {
		return constant, err
	}

	str := c.Configuration.TypeMappings.String
	parse := typesys.FindMethod(target, func(m typesys.Method) bool {
		params := m.Parameters()
		return m.Name() == "Parse" && m.IsPublic() && m.IsStatic() && len(params) == 1 &&
			typesys.Equal(params[0], str) && typesys.IsAssignableFrom(target, m.ReturnType())
	})

	if parse != nil {
		return &ast.StaticMethodCallNode{
			NodeBase:  ast.NewNodeBase(tn.Span()),
			Method:    parse,
			Arguments: []ast.Node{tn},
		}, nil
	}

	return nil, report.RaiseParse(tn, "Unable to convert text `%s` to %s", tn.Text, typesys.Fqn(target))
}

// convertEnum converts the name of an enum member or a number to a constant of
// an enum type.
func convertEnum(tn *ast.TextNode, enumType typesys.Type) (ast.Node, error) {
	text := strings.TrimSpace(tn.Text)

	for _, f := range enumType.Fields() {
		if f.IsLiteral() && f.IsStatic() && f.Name() == text {
			return ast.NewConstantNode(tn.Span(), enumType, f.LiteralValue()), nil
		}
	}

	underlying := typesys.UnderlyingType(enumType)
	if underlying != enumType {
		if value, ok, err := parseNumber(text, underlying); ok && err == nil {
			return ast.NewConstantNode(tn.Span(), enumType, value), nil
		}
	}

	return nil, report.RaiseParse(tn, "Unable to find member `%s` of enum %s", text, typesys.Fqn(enumType))
}

// convertPrimitive converts text to a constant of a primitive type.  It returns
// false if the target type is not a primitive type.
func convertPrimitive(tn *ast.TextNode, target typesys.Type) (ast.Node, bool, error) {
	text := strings.TrimSpace(tn.Text)

	if typesys.IsNamed(target, typesys.BooleanName) {
		b, err := strconv.ParseBool(strings.ToLower(text))
		if err != nil {
			return nil, true, report.RaiseParse(tn, "Unable to convert text `%s` to %s", tn.Text, typesys.BooleanName)
		}

		return ast.NewConstantNode(tn.Span(), target, b), true, nil
	}

	if typesys.IsNamed(target, typesys.CharName) {
		runes := []rune(tn.Text)
		if len(runes) != 1 || runes[0] > 0xffff {
			return nil, true, report.RaiseParse(tn, "Unable to convert text `%s` to %s", tn.Text, typesys.CharName)
		}

		return ast.NewConstantNode(tn.Span(), target, uint16(runes[0])), true, nil
	}

	value, ok, err := parseNumber(text, target)
	if !ok {
		return nil, false, nil
	} else if err != nil {
		return nil, true, report.RaiseParse(tn, "Unable to convert text `%s` to %s: %s", tn.Text, typesys.Fqn(target), err)
	}

	return ast.NewConstantNode(tn.Span(), target, value), true, nil
}

// parseNumber parses text as a value of a numeric type.  The value is returned
// as the Go type matching the numeric type.  It returns false if the type is
// not a numeric type.
func parseNumber(text string, t typesys.Type) (interface{}, bool, error) {
	parseInt := func(bits int) (int64, error) {
		return strconv.ParseInt(text, 10, bits)
	}

	parseUint := func(bits int) (uint64, error) {
		return strconv.ParseUint(text, 10, bits)
	}

	if t == nil || typesys.IsPseudo(t) {
		return nil, false, nil
	}

	switch t.FullName() {
	case typesys.SByteName:
		v, err := parseInt(8)
		return int8(v), true, numError(err)
	case typesys.ByteName:
		v, err := parseUint(8)
		return uint8(v), true, numError(err)
	case typesys.Int16Name:
		v, err := parseInt(16)
		return int16(v), true, numError(err)
	case typesys.UInt16Name:
		v, err := parseUint(16)
		return uint16(v), true, numError(err)
	case typesys.Int32Name:
		v, err := parseInt(32)
		return int32(v), true, numError(err)
	case typesys.UInt32Name:
		v, err := parseUint(32)
		return uint32(v), true, numError(err)
	case typesys.Int64Name:
		v, err := parseInt(64)
		return v, true, numError(err)
	case typesys.UInt64Name:
		v, err := parseUint(64)
		return v, true, numError(err)
	case typesys.SingleName:
		v, err := strconv.ParseFloat(text, 32)
		return float32(v), true, numError(err)
	case typesys.DoubleName:
		v, err := strconv.ParseFloat(text, 64)
		return v, true, numError(err)
	}

	return nil, false, nil
}

// numError strips the function name and input from a strconv error
func numError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}

	return err
}
