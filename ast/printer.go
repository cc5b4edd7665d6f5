package ast

import (
	"fmt"
	"reflect"
	"strings"

	"xamlx/typesys"
)

// KindOf returns the name of the shape of a node: eg. `ObjectNode`.
func KindOf(node Node) string {
	if node == nil {
		return "<nil>"
	}

	t := reflect.TypeOf(node)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Name()
}

// Describe returns a short single-line description of a node for messages
func Describe(node Node) string {
	switch n := node.(type) {
	case nil:
		return "<nil>"
	case *XmlTypeReference:
		return fmt.Sprintf("XmlTypeReference(%s)", n.typeName())
	case *ClrTypeReference:
		return fmt.Sprintf("ClrTypeReference(%s)", n.typeName())
	case *TextNode:
		return fmt.Sprintf("TextNode(%q)", n.Text)
	case *ObjectNode:
		return fmt.Sprintf("ObjectNode(%s)", n.TypeRef.typeName())
	case *XmlDirective:
		return fmt.Sprintf("XmlDirective({%s}%s)", n.Namespace, n.Name)
	case PropertyReference:
		return fmt.Sprintf("%s(%s)", KindOf(n), n.propertyName())
	case *PropertyValueNode:
		return fmt.Sprintf("PropertyValueNode(%s)", n.Property.propertyName())
	case *PropertyAssignmentNode:
		return fmt.Sprintf("PropertyAssignmentNode(%s)", typesys.DescribeMember(n.Property))
	case *PropertyValueManipulationNode:
		return fmt.Sprintf("PropertyValueManipulationNode(%s)", typesys.DescribeMember(n.Property))
	case *InstanceMethodCallNode:
		return fmt.Sprintf("InstanceMethodCallNode(%s)", typesys.DescribeMember(n.Method))
	case *StaticMethodCallNode:
		return fmt.Sprintf("StaticMethodCallNode(%s)", typesys.DescribeMember(n.Method))
	case *ConstantNode:
		return fmt.Sprintf("ConstantNode(%s %v)", typesys.Fqn(n.ConstType), n.Value)
	case *TypeExtensionNode:
		return fmt.Sprintf("TypeExtensionNode(%s)", n.Value.typeName())
	case *StaticExtensionNode:
		return fmt.Sprintf("StaticExtensionNode(%s.%s)", n.TargetType.typeName(), n.Member)
	}

	return KindOf(node)
}

// Print returns a tree-like string representation of a node for debugging.
// Children are listed in the order `VisitChildren` visits them.
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

func printNode(sb *strings.Builder, node Node, indent int) {
	if node == nil {
		return
	}

	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(Describe(node))
	sb.WriteRune('\n')

	// the visitor only observes: the rewritten node is discarded
	node.VisitChildren(func(child Node) (Node, error) {
		// type references are already part of the description
		if _, ok := child.(TypeReference); !ok {
			printNode(sb, child, indent+1)
		}

		return child, nil
	})
}
