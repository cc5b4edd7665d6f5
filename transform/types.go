package transform

import (
	"errors"
	"strings"

	"github.com/dlclark/regexp2"

	"xamlx/ast"
	"xamlx/common"
	"xamlx/report"
	"xamlx/typesys"
)

// clrNamespacePattern matches xml namespaces of the form
// `clr-namespace:NS;assembly=A` where the assembly is optional.
var clrNamespacePattern = regexp2.MustCompile(`^clr-namespace:(?<ns>[^;]+)(?:;assembly=(?<asm>.+))?$`, regexp2.None)

// xamlTypes are the types of the xaml language namespace: their CLR names are
// the same names in the `System` namespace.
var xamlTypes = map[string]struct{}{
	"Object": {}, "String": {}, "Boolean": {}, "Char": {}, "SByte": {},
	"Byte": {}, "Int16": {}, "UInt16": {}, "Int32": {}, "UInt32": {},
	"Int64": {}, "UInt64": {}, "Single": {}, "Double": {}, "Type": {},
}

// TypeReferenceResolver resolves xml type references to types of the type
// system.
type TypeReferenceResolver struct{}

func (TypeReferenceResolver) Transform(ctx *Context, node ast.Node) (ast.Node, error) {
	xr, ok := node.(*ast.XmlTypeReference)
	if !ok {
		return node, nil
	}

	t, err := ctx.resolveType(xr)
	if err != nil {
		return ctx.Fail(err, xr)
	}

	return ast.NewClrTypeReference(xr.Span(), t), nil
}

// resolveType resolves an xml type reference using the resolution cache
func (c *Context) resolveType(xr *ast.XmlTypeReference) (typesys.Type, error) {
	key := "{" + xr.XmlNamespace + "}" + xr.Name
	if t, ok := c.PassData.ResolvedTypes[key]; ok {
		return t, nil
	}

	for _, fullName := range c.candidateNames(xr) {
		t, err := c.Configuration.TypeSystem.FindType(fullName)
		if err == nil {
			c.PassData.ResolvedTypes[key] = t
			return t, nil
		}

		// anything other than a missing type is a backend failure
		var tse *typesys.Error
		if !errors.As(err, &tse) {
			return nil, err
		}
	}

	return nil, report.RaiseParse(xr, "Unable to resolve type %s from namespace %s", xr.Name, xr.XmlNamespace)
}

// candidateNames returns the full names an xml type reference may refer to in
// the order they are tried.
func (c *Context) candidateNames(xr *ast.XmlTypeReference) []string {
	if xr.XmlNamespace == common.XamlNamespace {
		if _, ok := xamlTypes[xr.Name]; ok {
			return []string{"System." + xr.Name}
		}

		return nil
	}

	if strings.HasPrefix(xr.XmlNamespace, common.ClrNamespacePrefix) {
		if m, err := clrNamespacePattern.FindStringMatch(xr.XmlNamespace); err == nil && m != nil {
			return []string{m.GroupByName("ns").String() + "." + xr.Name}
		}

		return nil
	}

	var names []string
	for _, clrNamespace := range c.Configuration.XmlnsMappings[xr.XmlNamespace] {
		names = append(names, clrNamespace+"."+xr.Name)
	}

	return names
}

// typeReferenceFromName creates an unresolved type reference from a qualified
// name in the markup (eg. `local:Button`) using the namespace aliases.
func (c *Context) typeReferenceFromName(node ast.Node, qname string) (ast.TypeReference, error) {
	prefix, name := common.SplitQualifiedName(qname)

	xmlns, ok := c.Aliases[prefix]
	if !ok {
		if prefix == "" {
			return nil, report.RaiseParse(node, "No default namespace is declared for type %s", name)
		}

		return nil, report.RaiseParse(node, "Unknown namespace prefix %s", prefix)
	}

	return ast.NewXmlTypeReference(node.Span(), xmlns, name), nil
}
