// Package markup reads xaml documents into the raw AST consumed by the
// transformation passes.
package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"xamlx/ast"
	"xamlx/common"
	"xamlx/report"
)

// Document is a parsed xaml document
type Document struct {
	// Root is the root object of the document
	Root ast.Node

	// Namespaces are the namespace prefixes declared on the root element
	// mapped to their uris.  The empty prefix is the default namespace.
	Namespaces map[string]string
}

// parser holds the state of reading a single document
type parser struct {
	decoder *xml.Decoder
	lines   *lineIndex

	// scopes is the stack of namespace declarations of the open elements
	scopes []map[string]string
}

// ParseFile reads and parses a xaml file
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(src)
}

// Parse parses the source text of a xaml document
func Parse(src []byte) (*Document, error) {
	p := &parser{
		decoder: xml.NewDecoder(bytes.NewReader(src)),
		lines:   newLineIndex(src),
	}

	for {
		offset := p.offset()

		tok, err := p.decoder.Token()
		if err == io.EOF {
			return nil, errors.New("document has no root element")
		} else if err != nil {
			return nil, p.syntaxError(err)
		}

		if start, ok := tok.(xml.StartElement); ok {
			root, err := p.parseElement(start, offset, nil)
			if err != nil {
				return nil, err
			}

			on, ok := root.(*ast.ObjectNode)
			if !ok {
				return nil, report.RaiseParse(root, "root element must be an object")
			}

			return &Document{Root: on, Namespaces: p.rootScope()}, nil
		}
	}
}

// -----------------------------------------------------------------------------

// parseElement parses an element whose start tag has already been read.  The
// parent is the object node enclosing the element, if any.
func (p *parser) parseElement(start xml.StartElement, offset int, parent *ast.ObjectNode) (ast.Node, error) {
	span := p.lines.span(offset, p.offset())
	p.pushScope(start.Attr)
	defer p.popScope()

	if start.Name.Space == common.XamlNamespace && start.Name.Local == "Arguments" {
		values, err := p.parseContent(parent)
		if err != nil {
			return nil, err
		}

		return ast.NewXmlDirective(span, start.Name.Space, start.Name.Local, values...), nil
	}

	// property elements: `<Button.Content>`
	if ndx := strings.IndexByte(start.Name.Local, '.'); ndx > -1 {
		if parent == nil {
			return nil, &report.ParseError{Message: "property element " + start.Name.Local + " must be enclosed in an object", Span: span}
		}

		declaringType := ast.NewXmlTypeReference(span, start.Name.Space, start.Name.Local[:ndx])
		prop := ast.NewNamePropertyReference(span, declaringType, start.Name.Local[ndx+1:], parent.TypeRef)

		values, err := p.parseContent(parent)
		if err != nil {
			return nil, err
		}

		return ast.NewPropertyValueNode(span, prop, values...), nil
	}

	on := ast.NewObjectNode(span, ast.NewXmlTypeReference(span, start.Name.Space, start.Name.Local))

	for _, attr := range start.Attr {
		child, err := p.parseAttribute(on, attr, span)
		if err != nil {
			return nil, err
		}

		if child != nil {
			on.Children = append(on.Children, child)
		}
	}

	children, err := p.parseContent(on)
	if err != nil {
		return nil, err
	}

	on.Children = append(on.Children, children...)
	return on, nil
}

// parseContent parses the content of an element up to and including its end
// tag.  Elements are parsed with the given enclosing object.
func (p *parser) parseContent(enclosing *ast.ObjectNode) ([]ast.Node, error) {
	var nodes []ast.Node

	for {
		offset := p.offset()

		tok, err := p.decoder.Token()
		if err != nil {
			return nil, p.syntaxError(err)
		}

		switch v := tok.(type) {
		case xml.StartElement:
			node, err := p.parseElement(v.Copy(), offset, enclosing)
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, node)
		case xml.CharData:
			text := string(v)
			if !common.IsWhitespace(text) {
				nodes = append(nodes, ast.NewTextNode(p.lines.span(offset, p.offset()), strings.TrimSpace(text)))
			}
		case xml.EndElement:
			return nodes, nil
		}
	}
}

// parseAttribute parses an attribute of an object element.  It returns nil for
// namespace declarations and attributes of foreign namespaces.
func (p *parser) parseAttribute(on *ast.ObjectNode, attr xml.Attr, span *report.TextSpan) (ast.Node, error) {
	if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
		return nil, nil
	}

	value, err := p.parseValue(attr.Value, span)
	if err != nil {
		return nil, err
	}

	if attr.Name.Space == common.XamlNamespace {
		return ast.NewXmlDirective(span, attr.Name.Space, attr.Name.Local, value), nil
	}

	// attached properties: `Grid.Row="1"`
	if ndx := strings.IndexByte(attr.Name.Local, '.'); ndx > -1 {
		xmlns := attr.Name.Space
		if xmlns == "" {
			xmlns = p.lookupPrefix("")
		}

		declaringType := ast.NewXmlTypeReference(span, xmlns, attr.Name.Local[:ndx])
		prop := ast.NewNamePropertyReference(span, declaringType, attr.Name.Local[ndx+1:], on.TypeRef)
		return ast.NewPropertyValueNode(span, prop, value), nil
	}

	if attr.Name.Space != "" {
		return nil, nil
	}

	prop := ast.NewNamePropertyReference(span, on.TypeRef, attr.Name.Local, on.TypeRef)
	return ast.NewPropertyValueNode(span, prop, value), nil
}

// parseValue parses an attribute value: either text or a markup extension of
// the form `{prefix:Name argument}`.  A leading `{}` escapes the braces.
func (p *parser) parseValue(text string, span *report.TextSpan) (ast.Node, error) {
	if strings.HasPrefix(text, "{}") {
		return ast.NewTextNode(span, text[2:]), nil
	}

	if !strings.HasPrefix(text, "{") {
		return ast.NewTextNode(span, text), nil
	}

	if !strings.HasSuffix(text, "}") {
		return nil, &report.ParseError{Message: "unterminated markup extension: " + text, Span: span}
	}

	inner := strings.TrimSpace(text[1 : len(text)-1])
	if inner == "" {
		return nil, &report.ParseError{Message: "empty markup extension", Span: span}
	}

	qname, arg := inner, ""
	if ndx := strings.IndexAny(inner, " \t\r\n"); ndx > -1 {
		qname, arg = inner[:ndx], strings.TrimSpace(inner[ndx:])
	}

	prefix, name := common.SplitQualifiedName(qname)

	xmlns, ok := p.lookupPrefixOk(prefix)
	if !ok {
		return nil, &report.ParseError{Message: "unknown namespace prefix in markup extension: " + prefix, Span: span}
	}

	ext := ast.NewObjectNode(span, ast.NewXmlTypeReference(span, xmlns, name))
	if arg != "" {
		ext.Arguments = []ast.Node{ast.NewTextNode(span, arg)}
	}

	return ext, nil
}

// -----------------------------------------------------------------------------

// pushScope opens the namespace scope of an element
func (p *parser) pushScope(attrs []xml.Attr) {
	scope := make(map[string]string)

	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			scope[attr.Name.Local] = attr.Value
		} else if attr.Name.Space == "" && attr.Name.Local == "xmlns" {
			scope[""] = attr.Value
		}
	}

	p.scopes = append(p.scopes, scope)
}

func (p *parser) popScope() {
	// the root scope is kept so it can be returned with the document
	if len(p.scopes) > 1 {
		p.scopes = p.scopes[:len(p.scopes)-1]
	}
}

// lookupPrefixOk resolves a namespace prefix in the innermost scope declaring
// it.  The `xml` prefix is always declared.
func (p *parser) lookupPrefixOk(prefix string) (string, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if uri, ok := p.scopes[i][prefix]; ok {
			return uri, true
		}
	}

	if prefix == "xml" {
		return "http://www.w3.org/XML/1998/namespace", true
	}

	return "", false
}

func (p *parser) lookupPrefix(prefix string) string {
	uri, _ := p.lookupPrefixOk(prefix)
	return uri
}

// rootScope returns the namespaces declared on the root element
func (p *parser) rootScope() map[string]string {
	if len(p.scopes) == 0 {
		return make(map[string]string)
	}

	return p.scopes[0]
}

// offset returns the current byte offset of the decoder
func (p *parser) offset() int {
	return int(p.decoder.InputOffset())
}

// syntaxError converts an xml syntax error into a parse error
func (p *parser) syntaxError(err error) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &report.ParseError{
			Message: se.Msg,
			Span:    &report.TextSpan{StartLine: se.Line - 1, EndLine: se.Line - 1},
		}
	}

	if err == io.EOF {
		return errors.New("unexpected end of document")
	}

	return err
}
