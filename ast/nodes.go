package ast

import (
	"xamlx/codegen"
	"xamlx/common"
	"xamlx/report"
	"xamlx/typesys"
)

// TextNode is a piece of literal text: an attribute value or element text.
type TextNode struct {
	NodeBase

	Text string

	// TextType is the type of the text: initially the xaml `String` type and
	// `System.String` once resolved.
	TextType TypeReference
}

// NewTextNode creates a new text node of the (unresolved) xaml string type
func NewTextNode(span *report.TextSpan, text string) *TextNode {
	return &TextNode{
		NodeBase: NewNodeBase(span),
		Text:     text,
		TextType: NewXmlTypeReference(span, common.XamlNamespace, "String"),
	}
}

func (tn *TextNode) Type() TypeReference {
	return tn.TextType
}

func (tn *TextNode) VisitChildren(v Visitor) (Node, error) {
	textType, changed, err := visitTypeRef(tn.TextType, v)
	if err != nil || !changed {
		return tn, err
	}

	c := *tn
	c.TextType = textType
	return &c, nil
}

// -----------------------------------------------------------------------------

// ObjectNode is the construction of an object: an element in the markup or a
// markup extension.
type ObjectNode struct {
	NodeBase

	// TypeRef is the type of the constructed object
	TypeRef TypeReference

	// Children are the property values, directives and content of the object
	Children []Node

	// Arguments are the constructor arguments of the object
	Arguments []Node
}

// NewObjectNode creates a new object node with no children or arguments
func NewObjectNode(span *report.TextSpan, typeRef TypeReference) *ObjectNode {
	return &ObjectNode{NodeBase: NewNodeBase(span), TypeRef: typeRef}
}

func (on *ObjectNode) Type() TypeReference {
	return on.TypeRef
}

func (on *ObjectNode) VisitChildren(v Visitor) (Node, error) {
	typeRef, typeChanged, err := visitTypeRef(on.TypeRef, v)
	if err != nil {
		return nil, err
	}

	args, argsChanged, err := visitList(on.Arguments, v)
	if err != nil {
		return nil, err
	}

	children, childrenChanged, err := visitList(on.Children, v)
	if err != nil {
		return nil, err
	}

	if !typeChanged && !argsChanged && !childrenChanged {
		return on, nil
	}

	c := *on
	c.TypeRef, c.Arguments, c.Children = typeRef, args, children
	return &c, nil
}

// -----------------------------------------------------------------------------

// XmlDirective is an attribute or element in the xaml language namespace (or
// another directive namespace) that is not a property: eg. `x:Class`.
type XmlDirective struct {
	NodeBase

	Namespace string
	Name      string
	Values    []Node
}

// NewXmlDirective creates a new directive node
func NewXmlDirective(span *report.TextSpan, xmlns, name string, values ...Node) *XmlDirective {
	return &XmlDirective{NodeBase: NewNodeBase(span), Namespace: xmlns, Name: name, Values: values}
}

func (xd *XmlDirective) VisitChildren(v Visitor) (Node, error) {
	values, changed, err := visitList(xd.Values, v)
	if err != nil || !changed {
		return xd, err
	}

	c := *xd
	c.Values = values
	return &c, nil
}

// -----------------------------------------------------------------------------

// PropertyReference is the capability of nodes that refer to a property
type PropertyReference interface {
	Node

	// propertyName returns the name of the referenced property for display
	propertyName() string
}

// NamePropertyReference is an unresolved reference to a property by name.  The
// declaring type is the type named by the markup (eg. `Grid` in `Grid.Row`)
// and the target type is the type of the object the property is set on.
type NamePropertyReference struct {
	NodeBase

	DeclaringType TypeReference
	Name          string
	TargetType    TypeReference
}

// NewNamePropertyReference creates a new unresolved property reference
func NewNamePropertyReference(span *report.TextSpan, declaringType TypeReference, name string, targetType TypeReference) *NamePropertyReference {
	return &NamePropertyReference{
		NodeBase:      NewNodeBase(span),
		DeclaringType: declaringType,
		Name:          name,
		TargetType:    targetType,
	}
}

func (np *NamePropertyReference) VisitChildren(v Visitor) (Node, error) {
	declaringType, declChanged, err := visitTypeRef(np.DeclaringType, v)
	if err != nil {
		return nil, err
	}

	targetType, targetChanged, err := visitTypeRef(np.TargetType, v)
	if err != nil {
		return nil, err
	}

	if !declChanged && !targetChanged {
		return np, nil
	}

	c := *np
	c.DeclaringType, c.TargetType = declaringType, targetType
	return &c, nil
}

func (np *NamePropertyReference) propertyName() string {
	return np.DeclaringType.typeName() + "." + np.Name
}

// ClrPropertyReference is a resolved reference to a property
type ClrPropertyReference struct {
	NodeBase

	Property typesys.Property
}

// NewClrPropertyReference creates a new resolved property reference
func NewClrPropertyReference(span *report.TextSpan, prop typesys.Property) *ClrPropertyReference {
	return &ClrPropertyReference{NodeBase: NewNodeBase(span), Property: prop}
}

func (cp *ClrPropertyReference) VisitChildren(v Visitor) (Node, error) {
	return cp, nil
}

func (cp *ClrPropertyReference) propertyName() string {
	return typesys.DescribeMember(cp.Property)
}

// -----------------------------------------------------------------------------

// PropertyValueNode is the assignment of one or more values to a property as
// written in the markup.  It is lowered to an assignment or a manipulation once
// the property is resolved.
type PropertyValueNode struct {
	NodeBase

	Property PropertyReference
	Values   []Node
}

// NewPropertyValueNode creates a new property value node
func NewPropertyValueNode(span *report.TextSpan, prop PropertyReference, values ...Node) *PropertyValueNode {
	return &PropertyValueNode{NodeBase: NewNodeBase(span), Property: prop, Values: values}
}

func (pv *PropertyValueNode) VisitChildren(v Visitor) (Node, error) {
	prop, propChanged, err := visitNode(pv.Property, v)
	if err != nil {
		return nil, err
	}

	newProp, ok := prop.(PropertyReference)
	if !ok {
		return nil, invalidReplacement(pv.Property, prop, "property reference")
	}

	values, valuesChanged, err := visitList(pv.Values, v)
	if err != nil {
		return nil, err
	}

	if !propChanged && !valuesChanged {
		return pv, nil
	}

	c := *pv
	c.Property, c.Values = newProp, values
	return &c, nil
}

// PropertyAssignmentNode assigns a single value to a property of the object on
// top of the stack by calling the property's setter.
type PropertyAssignmentNode struct {
	NodeBase

	Property typesys.Property
	Value    Node
}

func (pa *PropertyAssignmentNode) VisitChildren(v Visitor) (Node, error) {
	value, changed, err := visitNode(pa.Value, v)
	if err != nil || !changed {
		return pa, err
	}

	c := *pa
	c.Value = value
	return &c, nil
}

// PropertyValueManipulationNode loads the value of a property of the object on
// top of the stack and applies a manipulation to it: eg. adding items to a
// collection property.
type PropertyValueManipulationNode struct {
	NodeBase

	Property     typesys.Property
	Manipulation Node
}

func (pm *PropertyValueManipulationNode) VisitChildren(v Visitor) (Node, error) {
	manip, changed, err := visitNode(pm.Manipulation, v)
	if err != nil || !changed {
		return pm, err
	}

	c := *pm
	c.Manipulation = manip
	return &c, nil
}

// ManipulationGroupNode applies each of its children to the value on top of
// the stack in order.
type ManipulationGroupNode struct {
	NodeBase

	Children []Node
}

func (mg *ManipulationGroupNode) VisitChildren(v Visitor) (Node, error) {
	children, changed, err := visitList(mg.Children, v)
	if err != nil || !changed {
		return mg, err
	}

	c := *mg
	c.Children = children
	return &c, nil
}

// -----------------------------------------------------------------------------

// InstanceMethodCallNode calls a method on the value on top of the stack.  It
// produces no value: any returned value is discarded.
type InstanceMethodCallNode struct {
	NodeBase

	Method    typesys.Method
	Arguments []Node
}

func (im *InstanceMethodCallNode) VisitChildren(v Visitor) (Node, error) {
	args, changed, err := visitList(im.Arguments, v)
	if err != nil || !changed {
		return im, err
	}

	c := *im
	c.Arguments = args
	return &c, nil
}

// StaticMethodCallNode calls a static method and produces its return value:
// eg. a `Parse` method converting text to a property type.
type StaticMethodCallNode struct {
	NodeBase

	Method    typesys.Method
	Arguments []Node
}

func (sm *StaticMethodCallNode) Type() TypeReference {
	if rt := sm.Method.ReturnType(); rt != nil {
		return NewClrTypeReference(sm.Span(), rt)
	}

	return NewClrTypeReference(sm.Span(), typesys.Unknown)
}

func (sm *StaticMethodCallNode) VisitChildren(v Visitor) (Node, error) {
	args, changed, err := visitList(sm.Arguments, v)
	if err != nil || !changed {
		return sm, err
	}

	c := *sm
	c.Arguments = args
	return &c, nil
}

// -----------------------------------------------------------------------------

// ConstantNode is a literal value of a primitive or enum type: it is produced
// by converting text to a property type.
type ConstantNode struct {
	NodeBase

	ConstType typesys.Type
	Value     interface{}
}

// NewConstantNode creates a new constant node.  The value must be stored as the
// Go type matching the underlying type of the constant type.
func NewConstantNode(span *report.TextSpan, t typesys.Type, value interface{}) *ConstantNode {
	return &ConstantNode{NodeBase: NewNodeBase(span), ConstType: t, Value: value}
}

func (cn *ConstantNode) Type() TypeReference {
	return NewClrTypeReference(cn.Span(), cn.ConstType)
}

func (cn *ConstantNode) VisitChildren(v Visitor) (Node, error) {
	return cn, nil
}

func (cn *ConstantNode) Emit(ctx EmitContext, gen codegen.Generator) (*EmitResult, error) {
	if err := EmitLiteral(gen, cn.ConstType, cn.Value); err != nil {
		return nil, err
	}

	return TypeResult(cn.ConstType), nil
}
