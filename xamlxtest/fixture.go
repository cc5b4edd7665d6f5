// Package xamlxtest provides the demo type library and configuration shared by
// the compiler's tests.  The library is available from both type system
// backends so that the same tests can be run against either.
package xamlxtest

import (
	"xamlx/config"
	"xamlx/typesys"
	"xamlx/typesys/loaded"
	"xamlx/typesys/offline"
)

// DemoNamespace is the xml namespace mapped to the `Demo` CLR namespace
const DemoNamespace = "https://xamlx.dev/demo"

// NewLoadedTypeSystem returns the demo library as a live type system
func NewLoadedTypeSystem() *loaded.TypeSystem {
	ts := loaded.New()
	loaded.DefineCorlib(ts)

	object := ts.Lookup(typesys.ObjectName)
	str := ts.Lookup(typesys.StringName)
	i32 := ts.Lookup(typesys.Int32Name)
	i64 := ts.Lookup(typesys.Int64Name)
	u64 := ts.Lookup(typesys.UInt64Name)
	f32 := ts.Lookup(typesys.SingleName)
	f64 := ts.Lookup(typesys.DoubleName)
	boolean := ts.Lookup(typesys.BooleanName)
	enum := ts.Lookup("System.Enum")

	contentAttr := ts.Define(config.DefaultContentAttribute).Extends(object)

	color := ts.Define("Demo.Color").Extends(enum).Enum(i32)
	color.AddLiteral("Red", color, int32(0))
	color.AddLiteral("Green", color, int32(1))
	color.AddLiteral("Blue", color, int32(2))

	size := ts.Define("Demo.Size").Extends(enum).Enum(i64)
	size.AddLiteral("Huge", size, int64(1)<<40)

	thickness := ts.Define("Demo.Thickness").Extends(ts.Lookup("System.ValueType")).ValueType()
	thickness.AddMethod("Parse", loaded.Public|loaded.Static, thickness, str)

	items := ts.Define("Demo.ItemCollection").Extends(object)
	items.AddConstructor(loaded.Public)
	items.AddMethod("Add", loaded.Public, nil, object)

	constants := ts.Define("Demo.Constants").Extends(object)
	constants.AddLiteral("IntValue", i32, int32(123))
	constants.AddLiteral("LongValue", i64, int64(1)<<40)
	constants.AddLiteral("ULongValue", u64, uint64(1)<<63)
	constants.AddLiteral("DoubleValue", f64, 2.5)
	constants.AddLiteral("SingleValue", f32, float32(1.5))
	constants.AddLiteral("StringValue", str, "hello")
	constants.AddLiteral("BoolValue", boolean, true)
	constants.AddLiteral("ColorValue", color, int32(2))
	constants.AddLiteral("SizeValue", size, int64(1)<<40)
	constants.AddField("Instance", constants, loaded.Public|loaded.Static)
	constants.AddField("Hidden", constants, loaded.Static)
	constants.AddField("Local", i32, loaded.Public)
	constants.AddProperty("Current", constants, loaded.Public|loaded.Static|loaded.Get)
	constants.AddProperty("Count", i32, loaded.Public|loaded.Get)

	control := ts.Define("Demo.Control").Extends(object)
	control.AddConstructor(loaded.Public)
	control.AddProperty("Name", str, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("Width", f64, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("IsEnabled", boolean, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("Background", color, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("Margin", thickness, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("Tag", object, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("Index", i32, loaded.Public|loaded.Get|loaded.Set)
	control.AddProperty("Items", items, loaded.Public|loaded.Get).Attribute(contentAttr)
	control.AddProperty("Level", i32, loaded.Public|loaded.Get)

	button := ts.Define("Demo.Button").Extends(control)
	button.AddConstructor(loaded.Public)
	button.AddConstructor(loaded.Public, str)
	button.AddProperty("Content", object, loaded.Public|loaded.Get|loaded.Set).Attribute(contentAttr)

	label := ts.Define("Demo.Label").Extends(object)
	label.AddConstructor(loaded.Public, i32)

	return ts
}

// NewOfflineTypeSystem returns the demo library read from metadata
func NewOfflineTypeSystem() (*offline.TypeSystem, error) {
	return offline.Parse(offline.Corlib, []byte(DemoMetadata))
}

// NewConfiguration returns the configuration of the demo library: the demo
// namespace is mapped to the `Demo` CLR namespace.
func NewConfiguration(ts typesys.TypeSystem) (*config.Configuration, error) {
	file := config.Default()
	file.Xmlns = append(file.Xmlns, config.XmlnsMapping{Uri: DemoNamespace, ClrNamespaces: []string{"Demo"}})

	return config.New(ts, file)
}

// Aliases returns the namespace aliases of a typical demo document: the demo
// namespace is the default namespace and the xaml namespace is `x`.
func Aliases() map[string]string {
	return map[string]string{
		"":  DemoNamespace,
		"x": "http://schemas.microsoft.com/winfx/2006/xaml",
	}
}
