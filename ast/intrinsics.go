package ast

import (
	"xamlx/codegen"
	"xamlx/report"
	"xamlx/typesys"
)

// NullNode is the `{x:Null}` markup extension
type NullNode struct {
	NodeBase
}

// NewNullNode creates a new null node
func NewNullNode(span *report.TextSpan) *NullNode {
	return &NullNode{NodeBase: NewNodeBase(span)}
}

func (nn *NullNode) Type() TypeReference {
	return NewClrTypeReference(nn.Span(), typesys.Null)
}

func (nn *NullNode) VisitChildren(v Visitor) (Node, error) {
	return nn, nil
}

// Emit loads a null reference.  The result is of the null pseudo-type which
// is a reference type and is therefore never boxed.
func (nn *NullNode) Emit(ctx EmitContext, gen codegen.Generator) (*EmitResult, error) {
	gen.LdNull()
	return TypeResult(typesys.Null), nil
}

// -----------------------------------------------------------------------------

// TypeExtensionNode is the `{x:Type T}` markup extension: it produces the
// runtime type object of `T`.
type TypeExtensionNode struct {
	NodeBase

	// Value is the type whose runtime type object is produced
	Value TypeReference

	// SystemType is the runtime type representation type (ie. `System.Type`)
	SystemType typesys.Type
}

// NewTypeExtensionNode creates a new type extension node
func NewTypeExtensionNode(span *report.TextSpan, value TypeReference, systemType typesys.Type) *TypeExtensionNode {
	return &TypeExtensionNode{NodeBase: NewNodeBase(span), Value: value, SystemType: systemType}
}

func (te *TypeExtensionNode) Type() TypeReference {
	return NewClrTypeReference(te.Span(), te.SystemType)
}

func (te *TypeExtensionNode) VisitChildren(v Visitor) (Node, error) {
	value, changed, err := visitTypeRef(te.Value, v)
	if err != nil || !changed {
		return te, err
	}

	c := *te
	c.Value = value
	return &c, nil
}

// Emit loads the metadata token of the type and converts it to a runtime type
// object with `GetTypeFromHandle`.
func (te *TypeExtensionNode) Emit(ctx EmitContext, gen codegen.Generator) (*EmitResult, error) {
	t, ok := ResolvedType(te.Value)
	if !ok {
		return nil, report.RaiseLoad(te, "Unable to emit unresolved type reference %s", te.Value.typeName())
	}

	method := findGetTypeFromHandle(te.SystemType)
	if method == nil {
		return nil, typesys.Errorf("Unable to find GetTypeFromHandle(RuntimeTypeHandle) on %s", typesys.Fqn(te.SystemType))
	}

	gen.LdToken(t).Call(method)
	return TypeResult(te.SystemType), nil
}

// findGetTypeFromHandle looks up the method converting a type handle into the
// runtime type object on the runtime type representation type.
func findGetTypeFromHandle(systemType typesys.Type) typesys.Method {
	for _, m := range systemType.Methods() {
		if m.Name() != "GetTypeFromHandle" {
			continue
		}

		if params := m.Parameters(); len(params) == 1 && params[0] != nil && params[0].Name() == "RuntimeTypeHandle" {
			return m
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// StaticExtensionNode is the `{x:Static T.M}` markup extension: it produces the
// value of a static field, property, constant or enum member.
type StaticExtensionNode struct {
	NodeBase

	// TargetType is the type declaring the member
	TargetType TypeReference

	// Member is the name of the member
	Member string
}

// NewStaticExtensionNode creates a new static extension node
func NewStaticExtensionNode(span *report.TextSpan, targetType TypeReference, member string) *StaticExtensionNode {
	return &StaticExtensionNode{NodeBase: NewNodeBase(span), TargetType: targetType, Member: member}
}

// Type is best effort: it is `Unknown` until the target type is resolved and
// when no member matches.
func (se *StaticExtensionNode) Type() TypeReference {
	t, ok := ResolvedType(se.TargetType)
	if !ok {
		return NewClrTypeReference(se.Span(), typesys.Unknown)
	}

	switch m := se.resolveMember(t).(type) {
	case typesys.Field:
		return NewClrTypeReference(se.Span(), m.FieldType())
	case typesys.Property:
		return NewClrTypeReference(se.Span(), m.Getter().ReturnType())
	}

	return NewClrTypeReference(se.Span(), typesys.Unknown)
}

func (se *StaticExtensionNode) VisitChildren(v Visitor) (Node, error) {
	targetType, changed, err := visitTypeRef(se.TargetType, v)
	if err != nil || !changed {
		return se, err
	}

	c := *se
	c.TargetType = targetType
	return &c, nil
}

// resolveMember finds the member of a type the node refers to: a public static
// field is preferred over a property with a public static getter.  Only the
// members declared by the type itself are considered.
func (se *StaticExtensionNode) resolveMember(t typesys.Type) typesys.Member {
	for _, f := range t.Fields() {
		if f.IsPublic() && f.IsStatic() && f.Name() == se.Member {
			return f
		}
	}

	for _, p := range t.Properties() {
		if p.Name() != se.Member {
			continue
		}

		if getter := p.Getter(); getter != nil && getter.IsPublic() && getter.IsStatic() {
			return p
		}
	}

	return nil
}

// Emit loads the member's value.  Literal fields are inlined as constants.
func (se *StaticExtensionNode) Emit(ctx EmitContext, gen codegen.Generator) (*EmitResult, error) {
	var member typesys.Member
	if t, ok := ResolvedType(se.TargetType); ok {
		member = se.resolveMember(t)
	}

	switch m := member.(type) {
	case typesys.Property:
		getter := m.Getter()
		gen.Call(getter)
		return TypeResult(getter.ReturnType()), nil
	case typesys.Field:
		if m.IsLiteral() {
			if err := EmitLiteral(gen, m.FieldType(), m.LiteralValue()); err != nil {
				return nil, err
			}
		} else {
			gen.LdsFld(m)
		}

		return TypeResult(m.FieldType()), nil
	}

	return nil, report.RaiseLoad(se, "Unable to resolve %s as static field, property, constant or enum value", se.Member)
}
