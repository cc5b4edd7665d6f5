package common

const (
	SrcFileExtension = ".xaml"
	ConfigFileName   = "xamlx.toml"
	XamlxVersion     = "0.1.0"
)

// XamlNamespace is the xml namespace of the xaml language itself: directives
// (`x:Class`, `x:Arguments`) and intrinsics (`x:Null`, `x:Static`) live here.
const XamlNamespace = "http://schemas.microsoft.com/winfx/2006/xaml"

// ClrNamespacePrefix prefixes xml namespaces that name a CLR namespace directly
// (eg. `clr-namespace:Demo.Controls;assembly=Demo`).
const ClrNamespacePrefix = "clr-namespace:"
