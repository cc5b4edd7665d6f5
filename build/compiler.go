// Package build drives the compilation of xaml documents: it loads the type
// system and configuration, runs the manager over each document and writes
// the generated code.
package build

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"xamlx/ast"
	"xamlx/codegen"
	"xamlx/codegen/llvmgen"
	"xamlx/common"
	"xamlx/config"
	"xamlx/markup"
	"xamlx/report"
	"xamlx/transform"
	"xamlx/typesys/offline"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a build: it is shared by the documents compiled concurrently.
type Compiler struct {
	// file is the configuration file the build was started with
	file *config.File

	// manager runs the passes and emitters over each document
	manager *transform.Manager

	// strict indicates whether pass errors stop compilation
	strict bool

	// outputFormat is one of the output formats enumerated in `config`
	outputFormat string
}

// document is the state of a single document being compiled
type document struct {
	// absPath is the absolute path to the source file
	absPath string

	// reprPath is the path displayed to the user
	reprPath string

	// outputPath is the path the generated code is written to
	outputPath string

	// root is the document tree: raw then resolved
	root ast.Node

	// namespaces are the namespace prefixes declared by the document
	namespaces map[string]string

	// output is the generated code
	output []byte
}

// NewCompiler creates a new compiler.  The type system is read from the given
// metadata files in addition to the core library.
func NewCompiler(file *config.File, metadataPaths []string) (*Compiler, error) {
	docs := [][]byte{offline.Corlib}
	for _, path := range metadataPaths {
		buff, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}

		docs = append(docs, buff)
	}

	ts, err := offline.Parse(docs...)
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(ts, file)
	if err != nil {
		return nil, err
	}

	return &Compiler{
		file:         file,
		manager:      transform.NewManager(cfg, true),
		strict:       file.Compiler.Strict,
		outputFormat: file.Compiler.OutputFormat,
	}, nil
}

// SetStrict overrides the strict mode of the configuration file
func (c *Compiler) SetStrict(strict bool) {
	c.strict = strict
}

// SetOutputFormat overrides the output format of the configuration file
func (c *Compiler) SetOutputFormat(format string) {
	c.outputFormat = format
}

// Compile compiles a single document or every xaml document in a directory.
// If `outputPath` is empty, the generated code is written next to the source
// documents.  It returns whether compilation succeeded.  All errors are
// reported.
func (c *Compiler) Compile(path, outputPath string) bool {
	docs, err := c.collectDocuments(path, outputPath)
	if err != nil {
		report.ReportStdError("Path Error", err)
		return false
	}

	report.ReportCompileHeader(c.outputFormat, c.strict)

	report.ReportBeginPhase("Transforming")
	c.eachDocument(docs, c.transformDocument)
	report.ReportEndPhase()
	if !report.ShouldProceed() {
		return false
	}

	report.ReportBeginPhase("Emitting")
	c.eachDocument(docs, c.emitDocument)
	report.ReportEndPhase()
	if !report.ShouldProceed() {
		return false
	}

	report.ReportBeginPhase("Writing")
	for _, doc := range docs {
		if err := ioutil.WriteFile(doc.outputPath, doc.output, 0644); err != nil {
			report.ReportStdError("Output Error", err)
		}
	}
	report.ReportEndPhase()

	if len(docs) == 1 {
		report.ReportCompilationFinished(docs[0].outputPath)
	} else {
		report.ReportCompilationFinished(filepath.Dir(docs[0].outputPath))
	}

	return report.ShouldProceed()
}

// eachDocument runs a compilation step over all the documents concurrently
func (c *Compiler) eachDocument(docs []*document, step func(*document) error) {
	wg := &sync.WaitGroup{}

	for _, doc := range docs {
		wg.Add(1)
		go func(doc *document) {
			defer wg.Done()

			if err := step(doc); err != nil {
				report.ReportCompileError(doc.absPath, doc.reprPath, err)
			}
		}(doc)
	}

	wg.Wait()
}

// transformDocument parses a document and runs the passes over it
func (c *Compiler) transformDocument(doc *document) error {
	parsed, err := markup.ParseFile(doc.absPath)
	if err != nil {
		return err
	}

	aliases := make(map[string]string)
	for prefix, uri := range c.file.Aliases {
		aliases[prefix] = uri
	}

	for prefix, uri := range parsed.Namespaces {
		aliases[prefix] = uri
	}

	root, ctx, err := c.manager.TransformContext(parsed.Root, aliases, c.strict)
	for _, diag := range ctx.Diagnostics {
		report.ReportCompileWarning(doc.absPath, doc.reprPath, diag)
	}

	if err != nil {
		return err
	}

	doc.root = root
	return nil
}

// emitDocument generates the code of a transformed document
func (c *Compiler) emitDocument(doc *document) error {
	switch c.outputFormat {
	case config.FormatLLVM:
		gen := llvmgen.NewGenerator(doc.reprPath)
		if err := c.manager.Compile(doc.root, gen); err != nil {
			return err
		}

		buff := &bytes.Buffer{}
		if _, err := gen.WriteTo(buff); err != nil {
			return err
		}

		doc.output = buff.Bytes()
	default:
		rec := codegen.NewRecorder()
		if err := c.manager.Compile(doc.root, rec); err != nil {
			return err
		}

		doc.output = []byte(rec.Disassemble())
	}

	return nil
}

// -----------------------------------------------------------------------------

// collectDocuments lists the documents to compile at a path
func (c *Compiler) collectDocuments(path, outputPath string) ([]*document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	finfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}

	if !finfo.IsDir() {
		if outputPath == "" {
			outputPath = c.defaultOutputPath(absPath)
		}

		return []*document{{absPath: absPath, reprPath: path, outputPath: outputPath}}, nil
	}

	entries, err := ioutil.ReadDir(absPath)
	if err != nil {
		return nil, err
	}

	var docs []*document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != common.SrcFileExtension {
			continue
		}

		docPath := filepath.Join(absPath, entry.Name())
		docOutput := c.defaultOutputPath(docPath)
		if outputPath != "" {
			docOutput = filepath.Join(outputPath, filepath.Base(docOutput))
		}

		docs = append(docs, &document{
			absPath:    docPath,
			reprPath:   filepath.Join(path, entry.Name()),
			outputPath: docOutput,
		})
	}

	if len(docs) == 0 {
		return nil, errors.New("no xaml documents found in " + path)
	}

	return docs, nil
}

// defaultOutputPath returns the output path next to a source document
func (c *Compiler) defaultOutputPath(srcPath string) string {
	base := strings.TrimSuffix(srcPath, filepath.Ext(srcPath))

	if c.outputFormat == config.FormatLLVM {
		return base + ".ll"
	}

	return base + ".il"
}
