package typesys

import (
	"fmt"
	"math"
)

// Full names of the primitive types the compiler treats specially.
const (
	ObjectName  = "System.Object"
	StringName  = "System.String"
	BooleanName = "System.Boolean"
	CharName    = "System.Char"
	SByteName   = "System.SByte"
	ByteName    = "System.Byte"
	Int16Name   = "System.Int16"
	UInt16Name  = "System.UInt16"
	Int32Name   = "System.Int32"
	UInt32Name  = "System.UInt32"
	Int64Name   = "System.Int64"
	UInt64Name  = "System.UInt64"
	SingleName  = "System.Single"
	DoubleName  = "System.Double"
)

// Fqn returns the display name of a type: its full name or `void` for nil.
func Fqn(t Type) string {
	if t == nil {
		return "void"
	}

	return t.FullName()
}

// IsNamed returns whether a (non-nil) type has the given full name
func IsNamed(t Type, fullName string) bool {
	return t != nil && !IsPseudo(t) && t.FullName() == fullName
}

// UnderlyingType returns the enum underlying type of enums and the type itself
// for every other type.
func UnderlyingType(t Type) Type {
	if t.IsEnum() {
		if ut := t.EnumUnderlyingType(); ut != nil {
			return ut
		}
	}

	return t
}

// -----------------------------------------------------------------------------

// FindProperty finds a property by name on a type or one of its base types.
func FindProperty(t Type, name string) Property {
	for ; t != nil; t = t.BaseType() {
		for _, prop := range t.Properties() {
			if prop.Name() == name {
				return prop
			}
		}
	}

	return nil
}

// FindMethod finds the first method on a type or one of its base types that
// satisfies the given predicate.
func FindMethod(t Type, pred func(Method) bool) Method {
	for ; t != nil; t = t.BaseType() {
		for _, method := range t.Methods() {
			if pred(method) {
				return method
			}
		}
	}

	return nil
}

// HasAttribute returns whether an attribute list contains an attribute whose
// type is any of the given types.
func HasAttribute(attrs []CustomAttribute, types []Type) bool {
	for _, attr := range attrs {
		for _, t := range types {
			if Equal(attr.Type(), t) {
				return true
			}
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// ConvertLiteralToLong converts the value of a literal field to an int64 for
// emission as an 8-byte integer constant.  Unsigned 64-bit values are
// reinterpreted, not range checked.
func ConvertLiteralToLong(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}

		return 0, nil
	}

	return 0, Errorf("unable to convert literal value %v (%T) to an integer", value, value)
}

// ConvertLiteralToInt converts the value of a literal field to an int32 for
// emission as a 4-byte integer constant.  Unsigned 32-bit values are
// reinterpreted the same way the runtime does.
func ConvertLiteralToInt(value interface{}) (int32, error) {
	switch v := value.(type) {
	case uint32:
		return int32(v), nil
	case rune:
		return v, nil
	}

	lv, err := ConvertLiteralToLong(value)
	if err != nil {
		return 0, err
	}

	if lv < math.MinInt32 || lv > math.MaxUint32 {
		return 0, Errorf("literal value %d does not fit in 4 bytes", lv)
	}

	return int32(lv), nil
}

// ConvertLiteralToDouble converts a literal value to a float64
func ConvertLiteralToDouble(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}

	lv, err := ConvertLiteralToLong(value)
	if err != nil {
		return 0, Errorf("unable to convert literal value %v (%T) to a float", value, value)
	}

	return float64(lv), nil
}

// DescribeMember returns a human readable `Type.Member` string
func DescribeMember(m Member) string {
	return fmt.Sprintf("%s.%s", Fqn(m.DeclaringType()), m.Name())
}
