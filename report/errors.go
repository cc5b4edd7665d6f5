package report

import (
	"fmt"
)

// ParseError is a semantic error raised by a transformer pass: an unresolved
// type, an unknown directive, a bad intrinsic, etc.  Whether or not it stops
// compilation is decided by the transformation context's strict mode.
type ParseError struct {
	// The error message.
	Message string

	// The span of the offending node.  This may be nil.
	Span *TextSpan

	// Node is the offending AST node.
	Node Positioned
}

func (pe *ParseError) Error() string {
	return formatWithSpan(pe.Span, pe.Message)
}

// RaiseParse creates a new parse error for the given offending node.
func RaiseParse(node Positioned, msg string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(msg, args...), Span: spanOf(node), Node: node}
}

// -----------------------------------------------------------------------------

// LoadError is an error raised during emission.  Emission always runs over an
// already resolved tree so these errors are never suppressed.
type LoadError struct {
	// The error message.
	Message string

	// The span of the offending node.  This may be nil.
	Span *TextSpan

	// Node is the node that failed to emit.
	Node Positioned
}

func (le *LoadError) Error() string {
	return formatWithSpan(le.Span, le.Message)
}

// RaiseLoad creates a new load error for the given node.
func RaiseLoad(node Positioned, msg string, args ...interface{}) *LoadError {
	return &LoadError{Message: fmt.Sprintf(msg, args...), Span: spanOf(node), Node: node}
}

// -----------------------------------------------------------------------------

// spanOf returns the span of a node that may itself be nil.
func spanOf(node Positioned) *TextSpan {
	if node == nil {
		return nil
	}

	return node.Span()
}

// formatWithSpan prefixes a message with the one-indexed line and column of the
// span if there is one.
func formatWithSpan(span *TextSpan, msg string) string {
	if span == nil {
		return msg
	}

	return fmt.Sprintf("%d:%d: %s", span.StartLine+1, span.StartCol+1, msg)
}
