package transform

import (
	"errors"

	"xamlx/ast"
	"xamlx/config"
	"xamlx/report"
	"xamlx/typesys"
)

// Context is the state of a single transformation: it is created once per
// compilation and shared by all the passes.
type Context struct {
	// Configuration is the shared, read-only compiler configuration
	Configuration *config.Configuration

	// Aliases maps the namespace prefixes in scope to xml namespace uris.  The
	// empty prefix is the default namespace.
	Aliases map[string]string

	// StrictMode indicates whether the first pass error aborts the
	// transformation.  Otherwise, errors are collected in `Diagnostics`.
	StrictMode bool

	// PassData is the data passes record about the document
	PassData *PassData

	// Diagnostics are the errors recovered from in non-strict mode in the
	// order they occurred.
	Diagnostics []*report.ParseError
}

// PassData is the data recorded by passes for the rest of the compilation.
// Each field is written by exactly one pass.
type PassData struct {
	// ClassName is the value of the `x:Class` directive if there is one
	ClassName string

	// Keys are the `x:Key` values of the document in document order
	Keys []string

	// ResolvedTypes caches the types resolved from xml type references keyed
	// by `{namespace}name`.
	ResolvedTypes map[string]typesys.Type
}

// NewContext creates a new transformation context
func NewContext(cfg *config.Configuration, aliases map[string]string, strict bool) *Context {
	if aliases == nil {
		aliases = make(map[string]string)
	}

	return &Context{
		Configuration: cfg,
		Aliases:       aliases,
		StrictMode:    strict,
		PassData: &PassData{
			ResolvedTypes: make(map[string]typesys.Type),
		},
	}
}

// Fail handles an error raised by a pass.  Parse errors abort the
// transformation in strict mode and are otherwise recorded, in which case the
// fallback node is kept.  Every other error is always returned.
func (c *Context) Fail(err error, fallback ast.Node) (ast.Node, error) {
	var pe *report.ParseError
	if !errors.As(err, &pe) || c.StrictMode {
		return nil, err
	}

	c.Diagnostics = append(c.Diagnostics, pe)
	return fallback, nil
}

// ParseError raises a parse error for an offending node and applies the error
// policy: see `Fail`.
func (c *Context) ParseError(node, fallback ast.Node, msg string, args ...interface{}) (ast.Node, error) {
	return c.Fail(report.RaiseParse(node, msg, args...), fallback)
}

// HasErrors returns whether any error was recovered from
func (c *Context) HasErrors() bool {
	return len(c.Diagnostics) > 0
}
