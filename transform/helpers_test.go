package transform

import (
	"testing"

	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/markup"
	"xamlx/typesys"
	"xamlx/xamlxtest"
)

// demoHeader declares the namespaces of the test documents
const demoHeader = `xmlns="https://xamlx.dev/demo" xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml"`

func newTestManager(t *testing.T, ts typesys.TypeSystem) *Manager {
	if ts == nil {
		ts = xamlxtest.NewLoadedTypeSystem()
	}

	cfg, err := xamlxtest.NewConfiguration(ts)
	if err != nil {
		t.Fatal(err)
	}

	return NewManager(cfg, true)
}

func parseDocument(t *testing.T, src string) *markup.Document {
	doc, err := markup.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	return doc
}

func transformDocument(t *testing.T, m *Manager, src string, strict bool) (ast.Node, *Context, error) {
	doc := parseDocument(t, src)
	return m.TransformContext(doc.Root, doc.Namespaces, strict)
}

// compileDocument transforms and compiles a document in strict mode and
// returns the disassembled instructions.
func compileDocument(t *testing.T, m *Manager, src string) (string, error) {
	root, _, err := transformDocument(t, m, src, true)
	if err != nil {
		return "", err
	}

	rec := codegen.NewRecorder()
	if err := m.Compile(root, rec); err != nil {
		return "", err
	}

	return rec.Disassemble(), nil
}

func mustCompile(t *testing.T, m *Manager, src string) string {
	t.Helper()

	out, err := compileDocument(t, m, src)
	if err != nil {
		t.Fatalf("compile error: %s", err)
	}

	return out
}
