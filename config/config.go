// Package config holds the compiler configuration: the well-known types the
// compiler depends on, the xml namespace mappings and the options read from a
// project's `xamlx.toml`.
package config

import (
	"xamlx/typesys"
)

// TypeMappings are the well-known types the compiler needs from the active type
// system.  They are resolved once per configuration.
type TypeMappings struct {
	// Object is the root object type: the type a compiled document produces.
	Object typesys.Type

	// String is the type of text values
	String typesys.Type

	// SystemType is the runtime type representation type: the type produced by
	// `{x:Type}` extensions.
	SystemType typesys.Type

	// ContentAttributes are the attribute types that mark the content property
	// of a type.
	ContentAttributes []typesys.Type
}

// Configuration is the read-only configuration of a compiler.  It may be
// shared by concurrent compilations.
type Configuration struct {
	// TypeSystem is the type system backend types are resolved in
	TypeSystem typesys.TypeSystem

	// TypeMappings are the resolved well-known types
	TypeMappings *TypeMappings

	// XmlnsMappings maps xml namespace uris to the CLR namespaces searched for
	// types in that namespace, in order.
	XmlnsMappings map[string][]string
}

// New creates a new configuration from a type system and an options file.  It
// fails with a `*typesys.Error` if one of the well-known types is missing.
func New(ts typesys.TypeSystem, file *File) (*Configuration, error) {
	mappings := &TypeMappings{}

	var err error
	if mappings.Object, err = ts.FindType(file.TypeMappings.Object); err != nil {
		return nil, err
	}

	if mappings.String, err = ts.FindType(file.TypeMappings.String); err != nil {
		return nil, err
	}

	if mappings.SystemType, err = ts.FindType(file.TypeMappings.SystemType); err != nil {
		return nil, err
	}

	for _, name := range file.TypeMappings.ContentAttributes {
		attr, err := ts.FindType(name)
		if err != nil {
			// the default content attribute is only used if it is defined
			if name == DefaultContentAttribute && !file.explicitContentAttributes {
				continue
			}

			return nil, err
		}

		mappings.ContentAttributes = append(mappings.ContentAttributes, attr)
	}

	xmlns := make(map[string][]string)
	for _, mapping := range file.Xmlns {
		xmlns[mapping.Uri] = append(xmlns[mapping.Uri], mapping.ClrNamespaces...)
	}

	return &Configuration{
		TypeSystem:    ts,
		TypeMappings:  mappings,
		XmlnsMappings: xmlns,
	}, nil
}
