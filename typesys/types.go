// Package typesys is the uniform query surface the compiler uses over types,
// members and constant values.  It is implemented by interchangeable backends
// (see `typesys/loaded` and `typesys/offline`): no compiler logic may depend on
// which backend is active.
package typesys

// TypeSystem is the root of a type system backend.  All implementations must
// support concurrent read-only queries.
type TypeSystem interface {
	// FindType looks up a type by its fully qualified name (eg.
	// `System.String`).  It fails with a `*Error` if no such type exists.
	FindType(fullName string) (Type, error)
}

// Type is a type known to a type system: a concrete type or a pseudo-type.
type Type interface {
	// Name is the unqualified name of the type
	Name() string

	// Namespace is the namespace the type is declared in.  It may be empty.
	Namespace() string

	// FullName is the fully qualified name of the type. This is the identity of
	// the type: two types are equal if their full names are equal.
	FullName() string

	// IsValueType indicates whether values of this type are represented by
	// value (ie. they need to be boxed to be used as a reference).
	IsValueType() bool

	// IsEnum indicates whether this type is an enumeration
	IsEnum() bool

	// EnumUnderlyingType returns the underlying numeric type of an enum. It
	// returns nil for types that are not enums.
	EnumUnderlyingType() Type

	// BaseType is the direct base type.  It is nil for root types.
	BaseType() Type

	// Interfaces is the list of interfaces directly declared by the type
	Interfaces() []Type

	// The members declared on this type (not including inherited members).
	Fields() []Field
	Properties() []Property

	// Methods lists the declared methods in declaration order followed by the
	// property accessors in property order.
	Methods() []Method
	Constructors() []Method

	// CustomAttributes are the attributes applied to the type
	CustomAttributes() []CustomAttribute
}

// Member is the common interface of all type members
type Member interface {
	// Name is the name of the member
	Name() string

	// DeclaringType is the type that declares this member
	DeclaringType() Type
}

// Field is a field of a type
type Field interface {
	Member

	FieldType() Type
	IsPublic() bool
	IsStatic() bool

	// IsLiteral indicates whether the field is a compile-time constant whose
	// value is embedded rather than loaded from storage.
	IsLiteral() bool

	// LiteralValue returns the constant value of a literal field.  Values are
	// stored as the Go type corresponding to the field's (underlying) type:
	// `int32` for `System.Int32`, `string` for `System.String`, etc.
	LiteralValue() interface{}
}

// Property is a property of a type
type Property interface {
	Member

	PropertyType() Type

	// Getter and Setter are the property's accessor methods; either may be
	// nil if the property has no such accessor.
	Getter() Method
	Setter() Method

	CustomAttributes() []CustomAttribute
}

// Method is a method or constructor of a type
type Method interface {
	Member

	IsPublic() bool
	IsStatic() bool

	// ReturnType is the return type of the method: nil for void methods and
	// constructors.
	ReturnType() Type

	// Parameters is the list of parameter types of the method
	Parameters() []Type
}

// CustomAttribute is an attribute applied to a type or member
type CustomAttribute interface {
	// Type is the attribute's type
	Type() Type

	// Arguments are the constant positional arguments of the attribute
	Arguments() []interface{}
}
