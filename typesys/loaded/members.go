package loaded

import "xamlx/typesys"

// Flags is the set of modifiers applied to a member
type Flags uint

// Enumeration of member flags
const (
	Public Flags = 1 << iota
	Static
	Literal

	// Get and Set select property accessors in `AddProperty`
	Get
	Set
)

// member is the common base of all members
type member struct {
	name      string
	declaring *Type
}

func (m *member) Name() string { return m.name }

func (m *member) DeclaringType() typesys.Type { return m.declaring }

// toType converts a possibly nil type into its interface form
func toType(t *Type) typesys.Type {
	if t == nil {
		return nil
	}

	return t
}

// -----------------------------------------------------------------------------

// Field is a field of a live type
type Field struct {
	member

	fieldType *Type
	flags     Flags
	value     interface{}
}

func (f *Field) FieldType() typesys.Type   { return toType(f.fieldType) }
func (f *Field) IsPublic() bool            { return f.flags&Public != 0 }
func (f *Field) IsStatic() bool            { return f.flags&Static != 0 }
func (f *Field) IsLiteral() bool           { return f.flags&Literal != 0 }
func (f *Field) LiteralValue() interface{} { return f.value }

// -----------------------------------------------------------------------------

// Method is a method or constructor of a live type
type Method struct {
	member

	flags      Flags
	returnType *Type
	params     []*Type
}

func (m *Method) IsPublic() bool { return m.flags&Public != 0 }
func (m *Method) IsStatic() bool { return m.flags&Static != 0 }

func (m *Method) ReturnType() typesys.Type { return toType(m.returnType) }

func (m *Method) Parameters() []typesys.Type {
	params := make([]typesys.Type, len(m.params))
	for i, p := range m.params {
		params[i] = p
	}

	return params
}

// -----------------------------------------------------------------------------

// Property is a property of a live type
type Property struct {
	member

	propType       *Type
	getter, setter *Method
	attrs          []*Attribute
}

func (p *Property) PropertyType() typesys.Type { return toType(p.propType) }

func (p *Property) Getter() typesys.Method {
	if p.getter == nil {
		return nil
	}

	return p.getter
}

func (p *Property) Setter() typesys.Method {
	if p.setter == nil {
		return nil
	}

	return p.setter
}

func (p *Property) CustomAttributes() []typesys.CustomAttribute {
	return attributeList(p.attrs)
}

// Attribute applies a custom attribute to the property
func (p *Property) Attribute(attrType *Type, args ...interface{}) *Property {
	p.attrs = append(p.attrs, &Attribute{typ: attrType, args: args})
	return p
}

// -----------------------------------------------------------------------------

// Attribute is a custom attribute applied to a live type or member
type Attribute struct {
	typ  *Type
	args []interface{}
}

func (a *Attribute) Type() typesys.Type        { return toType(a.typ) }
func (a *Attribute) Arguments() []interface{} { return a.args }
