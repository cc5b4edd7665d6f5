// Package ast is the node model of the compiler.  Nodes are polymorphic over a
// set of optional capabilities (value-producing, self-emitting) and all of them
// support a uniform, persistent "rewrite children" operation that passes use to
// traverse and transform the tree.
package ast

import (
	"fmt"

	"xamlx/codegen"
	"xamlx/report"
	"xamlx/typesys"
)

// Node is the interface implemented by all AST nodes
type Node interface {
	// Span returns the span of the markup the node was produced from.  It may
	// be nil for synthesized nodes.
	Span() *report.TextSpan

	// VisitChildren applies the visitor to each direct child of the node and
	// returns a node holding the rewritten children.  The receiver is never
	// modified: if any child changes, a shallow copy is returned.
	VisitChildren(v Visitor) (Node, error)
}

// Visitor is a function applied to nodes during a rewrite.  It returns the
// replacement node, which is the node itself if nothing changes.
type Visitor func(Node) (Node, error)

// Visit rewrites a whole tree in pre-order: the visitor is applied to the node
// and then, recursively, to the children of the node it returned.  A nil
// replacement removes the node from its parent's child list.
func Visit(node Node, v Visitor) (Node, error) {
	replacement, err := v(node)
	if err != nil || replacement == nil {
		return nil, err
	}

	return replacement.VisitChildren(func(child Node) (Node, error) {
		return Visit(child, v)
	})
}

// -----------------------------------------------------------------------------

// ValueNode is the capability of nodes that produce a value
type ValueNode interface {
	Node

	// Type returns a reference to the type of the produced value.  Before
	// type resolution this may be unresolved or refer to `typesys.Unknown`.
	Type() TypeReference
}

// EmitableNode is the capability of nodes that can generate their own
// instructions.
type EmitableNode interface {
	Node

	Emit(ctx EmitContext, gen codegen.Generator) (*EmitResult, error)
}

// EmitContext is the emission context as seen by self-emitting nodes: it is
// used to emit child nodes with the usual return type checks.
type EmitContext interface {
	Emit(node Node, gen codegen.Generator, expected typesys.Type) (*EmitResult, error)
}

// EmitResult is the result of emitting a node: either void or a produced value
// of a given type.  Emitters return a nil result to indicate that they do not
// handle a node.
type EmitResult struct {
	// ReturnType is the type of the produced value: nil for void.
	ReturnType typesys.Type
}

// VoidResult returns an emission result producing no value
func VoidResult() *EmitResult {
	return &EmitResult{}
}

// TypeResult returns an emission result producing a value of the given type
func TypeResult(t typesys.Type) *EmitResult {
	return &EmitResult{ReturnType: t}
}

// IsVoid returns whether the result produces no value
func (er *EmitResult) IsVoid() bool {
	return er.ReturnType == nil
}

// -----------------------------------------------------------------------------

// NodeBase is the base struct for all nodes
type NodeBase struct {
	span *report.TextSpan
}

// NewNodeBase creates a new node base at the given span
func NewNodeBase(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

func (nb *NodeBase) Span() *report.TextSpan {
	return nb.span
}

// -----------------------------------------------------------------------------

// visitList visits each node of a list.  The original list is returned if no
// node changes so that unchanged subtrees stay shared.  Nodes replaced by nil
// are removed.
func visitList(nodes []Node, v Visitor) ([]Node, bool, error) {
	var result []Node

	for i, node := range nodes {
		replacement, err := v(node)
		if err != nil {
			return nil, false, err
		}

		if result == nil && replacement != node {
			result = make([]Node, i, len(nodes))
			copy(result, nodes[:i])
		}

		if result != nil && replacement != nil {
			result = append(result, replacement)
		}
	}

	if result == nil {
		return nodes, false, nil
	}

	return result, true, nil
}

// visitTypeRef visits a type reference child which must remain a type
// reference after rewriting.
func visitTypeRef(ref TypeReference, v Visitor) (TypeReference, bool, error) {
	if ref == nil {
		return nil, false, nil
	}

	replacement, err := v(ref)
	if err != nil {
		return nil, false, err
	}

	newRef, ok := replacement.(TypeReference)
	if !ok {
		return nil, false, invalidReplacement(ref, replacement, "type reference")
	}

	return newRef, newRef != ref, nil
}

// visitNode visits a single child node
func visitNode(node Node, v Visitor) (Node, bool, error) {
	if node == nil {
		return nil, false, nil
	}

	replacement, err := v(node)
	if err != nil {
		return nil, false, err
	}

	return replacement, replacement != node, nil
}

// invalidReplacement is the error produced when a visitor replaces a child
// with a node of the wrong shape
func invalidReplacement(original, replacement Node, want string) error {
	return fmt.Errorf("visitor replaced %s %s with %s", want, Describe(original), Describe(replacement))
}
