package loaded

import "xamlx/typesys"

// Type is a type defined in a live type system.  Its builder methods return
// the type so that definitions can be chained.
type Type struct {
	fullName, namespace, name string

	valueType      bool
	enumUnderlying *Type

	base       *Type
	interfaces []*Type

	fields     []*Field
	properties []*Property
	methods    []*Method
	ctors      []*Method

	// accessors are the property accessors in property order.  They are listed
	// after the declared methods.
	accessors []*Method

	attrs []*Attribute
}

func (t *Type) Name() string      { return t.name }
func (t *Type) Namespace() string { return t.namespace }
func (t *Type) FullName() string  { return t.fullName }
func (t *Type) IsValueType() bool { return t.valueType }
func (t *Type) IsEnum() bool      { return t.enumUnderlying != nil }

func (t *Type) EnumUnderlyingType() typesys.Type {
	if t.enumUnderlying == nil {
		return nil
	}

	return t.enumUnderlying
}

func (t *Type) BaseType() typesys.Type {
	if t.base == nil {
		return nil
	}

	return t.base
}

func (t *Type) Interfaces() []typesys.Type {
	ifaces := make([]typesys.Type, len(t.interfaces))
	for i, iface := range t.interfaces {
		ifaces[i] = iface
	}

	return ifaces
}

func (t *Type) Fields() []typesys.Field {
	fields := make([]typesys.Field, len(t.fields))
	for i, f := range t.fields {
		fields[i] = f
	}

	return fields
}

func (t *Type) Properties() []typesys.Property {
	props := make([]typesys.Property, len(t.properties))
	for i, p := range t.properties {
		props[i] = p
	}

	return props
}

func (t *Type) Methods() []typesys.Method {
	return append(methodList(t.methods), methodList(t.accessors)...)
}

func (t *Type) Constructors() []typesys.Method {
	return methodList(t.ctors)
}

func (t *Type) CustomAttributes() []typesys.CustomAttribute {
	return attributeList(t.attrs)
}

// -----------------------------------------------------------------------------

// ValueType marks the type as a value type
func (t *Type) ValueType() *Type {
	t.valueType = true
	return t
}

// Enum marks the type as an enum with the given underlying type.  Enums are
// always value types.
func (t *Type) Enum(underlying *Type) *Type {
	t.valueType = true
	t.enumUnderlying = underlying
	return t
}

// Extends sets the base type of the type
func (t *Type) Extends(base *Type) *Type {
	t.base = base
	return t
}

// Implements adds interfaces to the type
func (t *Type) Implements(ifaces ...*Type) *Type {
	t.interfaces = append(t.interfaces, ifaces...)
	return t
}

// Attribute applies a custom attribute to the type
func (t *Type) Attribute(attrType *Type, args ...interface{}) *Type {
	t.attrs = append(t.attrs, &Attribute{typ: attrType, args: args})
	return t
}

// AddField adds a (non-literal) field to the type
func (t *Type) AddField(name string, fieldType *Type, flags Flags) *Field {
	f := &Field{member: member{name: name, declaring: t}, fieldType: fieldType, flags: flags &^ Literal}
	t.fields = append(t.fields, f)
	return f
}

// AddLiteral adds a public static literal (constant) field to the type. The
// value must be stored as the Go type matching the field's underlying type.
func (t *Type) AddLiteral(name string, fieldType *Type, value interface{}) *Field {
	f := &Field{
		member:    member{name: name, declaring: t},
		fieldType: fieldType,
		flags:     Public | Static | Literal,
		value:     value,
	}

	t.fields = append(t.fields, f)
	return f
}

// AddMethod adds a method to the type.  A nil return type denotes void.
func (t *Type) AddMethod(name string, flags Flags, returnType *Type, params ...*Type) *Method {
	m := &Method{member: member{name: name, declaring: t}, flags: flags, returnType: returnType, params: params}
	t.methods = append(t.methods, m)
	return m
}

// AddConstructor adds a constructor to the type
func (t *Type) AddConstructor(flags Flags, params ...*Type) *Method {
	m := &Method{member: member{name: ".ctor", declaring: t}, flags: flags &^ Static, params: params}
	t.ctors = append(t.ctors, m)
	return m
}

// AddProperty adds a property to the type along with its accessors. The
// accessors are also listed in the type's methods as `get_Name` and
// `set_Name`.  The flags select which accessors exist and apply to both of
// them.
func (t *Type) AddProperty(name string, propType *Type, flags Flags) *Property {
	p := &Property{member: member{name: name, declaring: t}, propType: propType}

	accFlags := flags &^ (Get | Set)
	if flags&Get != 0 {
		p.getter = &Method{member: member{name: "get_" + name, declaring: t}, flags: accFlags, returnType: propType}
		t.accessors = append(t.accessors, p.getter)
	}

	if flags&Set != 0 {
		p.setter = &Method{member: member{name: "set_" + name, declaring: t}, flags: accFlags, params: []*Type{propType}}
		t.accessors = append(t.accessors, p.setter)
	}

	t.properties = append(t.properties, p)
	return p
}

// -----------------------------------------------------------------------------

// methodList converts a method slice into its interface form
func methodList(methods []*Method) []typesys.Method {
	list := make([]typesys.Method, len(methods))
	for i, m := range methods {
		list[i] = m
	}

	return list
}

// attributeList converts an attribute slice into its interface form
func attributeList(attrs []*Attribute) []typesys.CustomAttribute {
	list := make([]typesys.CustomAttribute, len(attrs))
	for i, a := range attrs {
		list[i] = a
	}

	return list
}
