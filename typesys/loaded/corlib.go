package loaded

import "xamlx/typesys"

// corlibValueTypes are the primitive value types defined by `DefineCorlib`
var corlibValueTypes = []string{
	typesys.BooleanName,
	typesys.CharName,
	typesys.SByteName,
	typesys.ByteName,
	typesys.Int16Name,
	typesys.UInt16Name,
	typesys.Int32Name,
	typesys.UInt32Name,
	typesys.Int64Name,
	typesys.UInt64Name,
	typesys.SingleName,
	typesys.DoubleName,
	"System.RuntimeTypeHandle",
}

// DefineCorlib defines the core library types the compiler depends on: the
// root object type, the primitives, `System.String` and `System.Type` along
// with its `GetTypeFromHandle` method.
func DefineCorlib(ts *TypeSystem) {
	object := ts.Define(typesys.ObjectName)
	object.AddConstructor(Public)

	valueType := ts.Define("System.ValueType").Extends(object)
	ts.Define("System.Enum").Extends(valueType)

	for _, name := range corlibValueTypes {
		ts.Define(name).Extends(valueType).ValueType()
	}

	ts.Define(typesys.StringName).Extends(object)

	systemType := ts.Define("System.Type").Extends(object)
	systemType.AddMethod("GetTypeFromHandle", Public|Static, systemType, ts.Define("System.RuntimeTypeHandle"))
}
