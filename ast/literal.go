package ast

import (
	"xamlx/codegen"
	"xamlx/typesys"
)

// EmitLiteral emits the instruction loading a constant of the given declared
// type.  The instruction is chosen by the name of the underlying type: 8-byte
// integers, doubles, singles and strings have dedicated instructions and every
// other type is loaded as a 4-byte integer.
func EmitLiteral(gen codegen.Generator, declaredType typesys.Type, value interface{}) error {
	switch typesys.UnderlyingType(declaredType).Name() {
	case "Int64", "UInt64":
		lv, err := typesys.ConvertLiteralToLong(value)
		if err != nil {
			return err
		}

		gen.LdcI8(lv)
	case "Double":
		dv, err := typesys.ConvertLiteralToDouble(value)
		if err != nil {
			return err
		}

		gen.LdcR8(dv)
	case "Single":
		fv, err := typesys.ConvertLiteralToDouble(value)
		if err != nil {
			return err
		}

		gen.LdcR4(float32(fv))
	case "String":
		sv, ok := value.(string)
		if !ok {
			return typesys.Errorf("literal value %v (%T) of %s is not a string", value, value, typesys.Fqn(declaredType))
		}

		gen.LdStr(sv)
	default:
		iv, err := typesys.ConvertLiteralToInt(value)
		if err != nil {
			return err
		}

		gen.LdcI4(iv)
	}

	return nil
}
