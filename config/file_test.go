package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"xamlx/config"
	"xamlx/typesys"
	"xamlx/xamlxtest"
)

const sampleConfig = `
[compiler]
strict = false
log-level = "warn"
output-format = "llvm"

[type-mappings]
content-attributes = ["XamlX.ContentAttribute"]

[[xmlns]]
uri = "https://xamlx.dev/demo"
clr-namespaces = ["Demo", "Demo.Controls"]

[[alias]]
prefix = "d"
uri = "https://xamlx.dev/demo"
`

func TestParseFile(t *testing.T) {
	file, err := config.ParseFile([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	want := config.CompilerOptions{Strict: false, LogLevel: "warn", OutputFormat: config.FormatLLVM}
	if diff := pretty.Diff(file.Compiler, want); len(diff) > 0 {
		t.Errorf("unexpected compiler options: %v", diff)
	}

	if file.TypeMappings.Object != typesys.ObjectName || file.TypeMappings.SystemType != "System.Type" {
		t.Errorf("type mappings should default: %# v", pretty.Formatter(file.TypeMappings))
	}

	if len(file.Xmlns) != 1 || len(file.Xmlns[0].ClrNamespaces) != 2 {
		t.Errorf("unexpected xmlns mappings: %# v", pretty.Formatter(file.Xmlns))
	}

	if file.Aliases["d"] != xamlxtest.DemoNamespace {
		t.Errorf("unexpected aliases: %v", file.Aliases)
	}
}

func TestParseFileDefaults(t *testing.T) {
	file, err := config.ParseFile(nil)
	if err != nil {
		t.Fatal(err)
	}

	if diff := pretty.Diff(file, config.Default()); len(diff) > 0 {
		t.Errorf("an empty file should produce the defaults: %v", diff)
	}
}

func TestParseFileErrors(t *testing.T) {
	cases := map[string]string{
		"log level":       "[compiler]\nlog-level = \"loud\"",
		"format":          "[compiler]\noutput-format = \"pdf\"",
		"xmlns uri":       "[[xmlns]]\nclr-namespaces = [\"Demo\"]",
		"xmlns clr":       "[[xmlns]]\nuri = \"urn:a\"",
		"alias uri":       "[[alias]]\nprefix = \"a\"",
		"duplicate alias": "[[alias]]\nprefix = \"a\"\nuri = \"urn:a\"\n[[alias]]\nprefix = \"a\"\nuri = \"urn:b\"",
		"syntax":          "[compiler",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.ParseFile([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewConfiguration(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()

	file, err := config.ParseFile([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(ts, file)
	if err != nil {
		t.Fatal(err)
	}

	if !typesys.IsNamed(cfg.TypeMappings.String, typesys.StringName) || len(cfg.TypeMappings.ContentAttributes) != 1 {
		t.Errorf("unexpected type mappings: %# v", pretty.Formatter(cfg.TypeMappings))
	}

	if got := strings.Join(cfg.XmlnsMappings[xamlxtest.DemoNamespace], ","); got != "Demo,Demo.Controls" {
		t.Errorf("unexpected xmlns mapping: %s", got)
	}
}

func TestNewConfigurationMissingTypes(t *testing.T) {
	ts := xamlxtest.NewLoadedTypeSystem()

	file := config.Default()
	file.TypeMappings.SystemType = "Demo.MissingType"

	_, err := config.New(ts, file)

	var tse *typesys.Error
	if !errors.As(err, &tse) {
		t.Errorf("expected a type system error, got %v", err)
	}

	// the default content attribute is optional
	file, err = config.ParseFile(nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := config.New(typeSystemWithoutContent(), file); err != nil {
		t.Errorf("a missing default content attribute should be ignored: %s", err)
	}

	// but an explicit one is not
	file, err = config.ParseFile([]byte("[type-mappings]\ncontent-attributes = [\"Demo.Missing\"]"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := config.New(ts, file); err == nil {
		t.Error("expected an error for a missing explicit content attribute")
	}
}
