package xamlxtest

// DemoMetadata is the demo library in the offline metadata format.  It
// describes the same types as `NewLoadedTypeSystem`.
const DemoMetadata = `
[[type]]
name = "XamlX.ContentAttribute"
base = "System.Object"

[[type]]
name = "Demo.Color"
base = "System.Enum"
enum = "System.Int32"

  [[type.field]]
  name = "Red"
  type = "Demo.Color"
  static = true
  literal = true
  value = 0

  [[type.field]]
  name = "Green"
  type = "Demo.Color"
  static = true
  literal = true
  value = 1

  [[type.field]]
  name = "Blue"
  type = "Demo.Color"
  static = true
  literal = true
  value = 2

[[type]]
name = "Demo.Size"
base = "System.Enum"
enum = "System.Int64"

  [[type.field]]
  name = "Huge"
  type = "Demo.Size"
  static = true
  literal = true
  value = 1099511627776

[[type]]
name = "Demo.Thickness"
base = "System.ValueType"
value-type = true

  [[type.method]]
  name = "Parse"
  return = "Demo.Thickness"
  static = true
  params = ["System.String"]

[[type]]
name = "Demo.ItemCollection"
base = "System.Object"

  [[type.constructor]]
  params = []

  [[type.method]]
  name = "Add"
  params = ["System.Object"]

[[type]]
name = "Demo.Constants"
base = "System.Object"

  [[type.field]]
  name = "IntValue"
  type = "System.Int32"
  static = true
  literal = true
  value = 123

  [[type.field]]
  name = "LongValue"
  type = "System.Int64"
  static = true
  literal = true
  value = 1099511627776

  [[type.field]]
  name = "ULongValue"
  type = "System.UInt64"
  static = true
  literal = true
  value = "9223372036854775808"

  [[type.field]]
  name = "DoubleValue"
  type = "System.Double"
  static = true
  literal = true
  value = 2.5

  [[type.field]]
  name = "SingleValue"
  type = "System.Single"
  static = true
  literal = true
  value = 1.5

  [[type.field]]
  name = "StringValue"
  type = "System.String"
  static = true
  literal = true
  value = "hello"

  [[type.field]]
  name = "BoolValue"
  type = "System.Boolean"
  static = true
  literal = true
  value = true

  [[type.field]]
  name = "ColorValue"
  type = "Demo.Color"
  static = true
  literal = true
  value = 2

  [[type.field]]
  name = "SizeValue"
  type = "Demo.Size"
  static = true
  literal = true
  value = 1099511627776

  [[type.field]]
  name = "Instance"
  type = "Demo.Constants"
  static = true

  [[type.field]]
  name = "Hidden"
  type = "Demo.Constants"
  static = true
  non-public = true

  [[type.field]]
  name = "Local"
  type = "System.Int32"

  [[type.property]]
  name = "Current"
  type = "Demo.Constants"
  get = true
  static = true

  [[type.property]]
  name = "Count"
  type = "System.Int32"
  get = true

[[type]]
name = "Demo.Control"
base = "System.Object"

  [[type.constructor]]
  params = []

  [[type.property]]
  name = "Name"
  type = "System.String"
  get = true
  set = true

  [[type.property]]
  name = "Width"
  type = "System.Double"
  get = true
  set = true

  [[type.property]]
  name = "IsEnabled"
  type = "System.Boolean"
  get = true
  set = true

  [[type.property]]
  name = "Background"
  type = "Demo.Color"
  get = true
  set = true

  [[type.property]]
  name = "Margin"
  type = "Demo.Thickness"
  get = true
  set = true

  [[type.property]]
  name = "Tag"
  type = "System.Object"
  get = true
  set = true

  [[type.property]]
  name = "Index"
  type = "System.Int32"
  get = true
  set = true

  [[type.property]]
  name = "Items"
  type = "Demo.ItemCollection"
  get = true
  attributes = ["XamlX.ContentAttribute"]

  [[type.property]]
  name = "Level"
  type = "System.Int32"
  get = true

[[type]]
name = "Demo.Button"
base = "Demo.Control"

  [[type.constructor]]
  params = []

  [[type.constructor]]
  params = ["System.String"]

  [[type.property]]
  name = "Content"
  type = "System.Object"
  get = true
  set = true
  attributes = ["XamlX.ContentAttribute"]

[[type]]
name = "Demo.Label"
base = "System.Object"

  [[type.constructor]]
  params = ["System.Int32"]
`
