package build

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xamlx/config"
	"xamlx/report"
	"xamlx/xamlxtest"
)

const buttonDocument = `<Button xmlns="https://xamlx.dev/demo" xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml" Index="5">Click</Button>`

// newTestCompiler creates a compiler over the demo library in a temporary
// directory.  It returns the directory the documents are written to.
func newTestCompiler(t *testing.T) (*Compiler, string) {
	report.InitReporter(report.LogLevelSilent)

	dir := t.TempDir()

	metadataPath := filepath.Join(dir, "demo.toml")
	if err := ioutil.WriteFile(metadataPath, []byte(xamlxtest.DemoMetadata), 0644); err != nil {
		t.Fatal(err)
	}

	file := config.Default()
	file.Xmlns = append(file.Xmlns, config.XmlnsMapping{Uri: xamlxtest.DemoNamespace, ClrNamespaces: []string{"Demo"}})

	c, err := NewCompiler(file, []string{metadataPath})
	if err != nil {
		t.Fatal(err)
	}

	srcDir := filepath.Join(dir, "src")
	if err := os.Mkdir(srcDir, 0755); err != nil {
		t.Fatal(err)
	}

	return c, srcDir
}

func writeDocument(t *testing.T, dir, name, src string) string {
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func readOutput(t *testing.T, path string) string {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(buff)
}

// -----------------------------------------------------------------------------

func TestCompileDocument(t *testing.T) {
	c, dir := newTestCompiler(t)
	path := writeDocument(t, dir, "main.xaml", buttonDocument)

	if !c.Compile(path, "") {
		t.Fatal("compilation failed")
	}

	want := `0000  newobj void Demo.Button..ctor()
0001  dup
0002  ldc.i4 5
0003  call void Demo.Control.set_Index(System.Int32)
0004  dup
0005  ldstr "Click"
0006  call void Demo.Button.set_Content(System.Object)
0007  ret
`

	if out := readOutput(t, filepath.Join(dir, "main.il")); out != want {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompileDirectoryToLLVM(t *testing.T) {
	c, dir := newTestCompiler(t)
	c.SetOutputFormat(config.FormatLLVM)

	writeDocument(t, dir, "a.xaml", buttonDocument)
	writeDocument(t, dir, "b.xaml", `<Control xmlns="https://xamlx.dev/demo" Width="2" />`)
	writeDocument(t, dir, "notes.txt", "not a document")

	if !c.Compile(dir, "") {
		t.Fatal("compilation failed")
	}

	for _, name := range []string{"a.ll", "b.ll"} {
		out := readOutput(t, filepath.Join(dir, name))
		if !strings.Contains(out, "define void @xamlx.build()") {
			t.Errorf("%s: unexpected output:\n%s", name, out)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "notes.ll")); err == nil {
		t.Error("only xaml documents should be compiled")
	}
}

func TestCompileStrictFailure(t *testing.T) {
	c, dir := newTestCompiler(t)
	path := writeDocument(t, dir, "main.xaml", `<Control xmlns="https://xamlx.dev/demo" Missing="1" />`)

	if c.Compile(path, "") {
		t.Error("compilation should fail in strict mode")
	}

	if _, err := os.Stat(filepath.Join(dir, "main.il")); err == nil {
		t.Error("no output should be written")
	}
}

func TestCompileLax(t *testing.T) {
	c, dir := newTestCompiler(t)
	c.SetStrict(false)

	good := writeDocument(t, dir, "good.xaml", `<Control xmlns="https://xamlx.dev/demo" Index="1" />`)
	if !c.Compile(good, "") {
		t.Fatal("a valid document should compile in lax mode")
	}

	if out := readOutput(t, filepath.Join(dir, "good.il")); !strings.Contains(out, "set_Index") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompileLaxKeepsErrors(t *testing.T) {
	c, dir := newTestCompiler(t)
	c.SetStrict(false)

	// the invalid directive survives transformation and cannot be emitted
	bad := writeDocument(t, dir, "bad.xaml", `<Control xmlns="https://xamlx.dev/demo" xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml" x:Uid="a" Index="1" />`)
	if c.Compile(bad, "") {
		t.Error("a document with errors should not produce output")
	}

	if _, err := os.Stat(filepath.Join(dir, "bad.il")); err == nil {
		t.Error("no output should be written")
	}
}

func TestCompileMissingPath(t *testing.T) {
	c, dir := newTestCompiler(t)

	if c.Compile(filepath.Join(dir, "missing.xaml"), "") {
		t.Error("compilation of a missing document should fail")
	}
}

func TestCompileEmptyDirectory(t *testing.T) {
	c, dir := newTestCompiler(t)

	if _, err := c.collectDocuments(dir, ""); err == nil || !strings.Contains(err.Error(), "no xaml documents") {
		t.Errorf("expected an empty directory error, got %v", err)
	}
}
