package offline

import "xamlx/typesys"

// member is the common base of all offline members
type member struct {
	name      string
	declaring *Type
}

func (m *member) Name() string                { return m.name }
func (m *member) DeclaringType() typesys.Type { return m.declaring }

// Field is a field read from offline metadata
type Field struct {
	member

	fieldType               typesys.Type
	public, static, literal bool
	value                   interface{}
}

func (f *Field) FieldType() typesys.Type   { return f.fieldType }
func (f *Field) IsPublic() bool            { return f.public }
func (f *Field) IsStatic() bool            { return f.static }
func (f *Field) IsLiteral() bool           { return f.literal }
func (f *Field) LiteralValue() interface{} { return f.value }

// Method is a method or constructor read from offline metadata
type Method struct {
	member

	public, static bool
	returnType     typesys.Type
	params         []typesys.Type
}

func (m *Method) IsPublic() bool             { return m.public }
func (m *Method) IsStatic() bool             { return m.static }
func (m *Method) ReturnType() typesys.Type   { return m.returnType }
func (m *Method) Parameters() []typesys.Type { return m.params }

// Property is a property read from offline metadata
type Property struct {
	member

	propType       typesys.Type
	getter, setter *Method
	attrs          []typesys.CustomAttribute
}

func (p *Property) PropertyType() typesys.Type { return p.propType }

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

func (p *Property) CustomAttributes() []typesys.CustomAttribute { return p.attrs }

// Attribute is a custom attribute read from offline metadata
type Attribute struct {
	typ  typesys.Type
	args []interface{}
}

func (a *Attribute) Type() typesys.Type        { return a.typ }
func (a *Attribute) Arguments() []interface{} { return a.args }
