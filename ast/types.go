package ast

import (
	"xamlx/report"
	"xamlx/typesys"
)

// TypeReference is the capability of nodes that refer to a type.  After type
// resolution, every type reference is a `*ClrTypeReference`.
type TypeReference interface {
	Node

	// typeName returns the name of the referenced type for display
	typeName() string
}

// ResolvedType returns the type referred to by a resolved type reference.  It
// returns false if the reference is not resolved yet.
func ResolvedType(ref TypeReference) (typesys.Type, bool) {
	if clr, ok := ref.(*ClrTypeReference); ok && clr.Type != nil {
		return clr.Type, true
	}

	return nil, false
}

// TypeOf returns the resolved type of a value node or `typesys.Unknown` if it
// cannot be determined yet.
func TypeOf(node ValueNode) typesys.Type {
	if t, ok := ResolvedType(node.Type()); ok {
		return t
	}

	return typesys.Unknown
}

// -----------------------------------------------------------------------------

// XmlTypeReference is an unresolved reference to a type by its xml namespace
// and local name as it appears in the markup.
type XmlTypeReference struct {
	NodeBase

	XmlNamespace string
	Name         string
}

// NewXmlTypeReference creates a new xml type reference
func NewXmlTypeReference(span *report.TextSpan, xmlns, name string) *XmlTypeReference {
	return &XmlTypeReference{NodeBase: NewNodeBase(span), XmlNamespace: xmlns, Name: name}
}

func (xr *XmlTypeReference) VisitChildren(v Visitor) (Node, error) {
	return xr, nil
}

func (xr *XmlTypeReference) typeName() string {
	return "{" + xr.XmlNamespace + "}" + xr.Name
}

// -----------------------------------------------------------------------------

// ClrTypeReference is a resolved reference to a type of the type system.  The
// type may be a pseudo-type.
type ClrTypeReference struct {
	NodeBase

	Type typesys.Type
}

// NewClrTypeReference creates a new resolved type reference
func NewClrTypeReference(span *report.TextSpan, t typesys.Type) *ClrTypeReference {
	return &ClrTypeReference{NodeBase: NewNodeBase(span), Type: t}
}

func (cr *ClrTypeReference) VisitChildren(v Visitor) (Node, error) {
	return cr, nil
}

func (cr *ClrTypeReference) typeName() string {
	return typesys.Fqn(cr.Type)
}
