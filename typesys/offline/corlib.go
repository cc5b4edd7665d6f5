package offline

// Corlib is the metadata of the core library types the compiler depends on.
// It doubles as the reference for the metadata format.  Pass it to `Parse`
// along with the documents describing the user types.
var Corlib = []byte(`
[[type]]
name = "System.Object"

  [[type.constructor]]
  params = []

[[type]]
name = "System.ValueType"
base = "System.Object"

[[type]]
name = "System.Enum"
base = "System.ValueType"

[[type]]
name = "System.Boolean"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Char"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.SByte"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Byte"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Int16"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.UInt16"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Int32"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.UInt32"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Int64"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.UInt64"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Single"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.Double"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.RuntimeTypeHandle"
base = "System.ValueType"
value-type = true

[[type]]
name = "System.String"
base = "System.Object"

[[type]]
name = "System.Type"
base = "System.Object"

  [[type.method]]
  name = "GetTypeFromHandle"
  return = "System.Type"
  static = true
  params = ["System.RuntimeTypeHandle"]
`)
