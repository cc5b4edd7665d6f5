package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"

	"xamlx/report"
	"xamlx/typesys"
)

// DefaultContentAttribute is the content attribute used when a configuration
// file does not name any.
const DefaultContentAttribute = "XamlX.ContentAttribute"

// The supported output formats.
const (
	FormatText = "text"
	FormatLLVM = "llvm"
)

// File is a decoded and validated configuration file
type File struct {
	Compiler     CompilerOptions
	TypeMappings TypeMappingNames
	Xmlns        []XmlnsMapping

	// Aliases are the default namespace aliases (prefix -> uri) applied to
	// every document in addition to the ones it declares.
	Aliases map[string]string

	// explicitContentAttributes indicates whether the content attributes were
	// named in the file or defaulted.
	explicitContentAttributes bool
}

// CompilerOptions are the settings of the `[compiler]` section
type CompilerOptions struct {
	Strict       bool
	LogLevel     string
	OutputFormat string
}

// TypeMappingNames are the full names of the well-known types
type TypeMappingNames struct {
	Object            string
	String            string
	SystemType        string
	ContentAttributes []string
}

// XmlnsMapping maps an xml namespace to one or more CLR namespaces
type XmlnsMapping struct {
	Uri           string
	ClrNamespaces []string
}

// -----------------------------------------------------------------------------

// tomlConfigFile represents the configuration file as it is encoded in TOML
type tomlConfigFile struct {
	Compiler     *tomlCompiler     `toml:"compiler"`
	TypeMappings *tomlTypeMappings `toml:"type-mappings"`
	Xmlns        []*tomlXmlns      `toml:"xmlns"`
	Aliases      []*tomlAlias      `toml:"alias"`
}

// tomlCompiler represents the compiler options as they are encoded in TOML
type tomlCompiler struct {
	// Strict defaults to true so it is a pointer to detect omission
	Strict       *bool  `toml:"strict"`
	LogLevel     string `toml:"log-level,omitempty"`
	OutputFormat string `toml:"output-format,omitempty"`
}

// tomlTypeMappings represents the well-known type names as encoded in TOML
type tomlTypeMappings struct {
	Object            string   `toml:"object,omitempty"`
	String            string   `toml:"string,omitempty"`
	SystemType        string   `toml:"system-type,omitempty"`
	ContentAttributes []string `toml:"content-attributes,omitempty"`
}

// tomlXmlns represents an xml namespace mapping as it is encoded in TOML
type tomlXmlns struct {
	Uri           string   `toml:"uri"`
	ClrNamespaces []string `toml:"clr-namespaces"`
}

// tomlAlias represents a namespace alias as it is encoded in TOML
type tomlAlias struct {
	Prefix string `toml:"prefix"`
	Uri    string `toml:"uri"`
}

// -----------------------------------------------------------------------------

// Default returns the configuration used in the absence of a file
func Default() *File {
	return &File{
		Compiler: CompilerOptions{
			Strict:       true,
			LogLevel:     "verbose",
			OutputFormat: FormatText,
		},
		TypeMappings: TypeMappingNames{
			Object:            typesys.ObjectName,
			String:            typesys.StringName,
			SystemType:        "System.Type",
			ContentAttributes: []string{DefaultContentAttribute},
		},
		Aliases: make(map[string]string),
	}
}

// LoadFile loads and validates a configuration file
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return ParseFile(buff)
}

// ParseFile decodes and validates the contents of a configuration file.
// Omitted settings take the values of `Default`.
func ParseFile(buff []byte) (*File, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, err
	}

	file := Default()

	if tc := tcf.Compiler; tc != nil {
		if tc.Strict != nil {
			file.Compiler.Strict = *tc.Strict
		}

		if tc.LogLevel != "" {
			if !report.IsLogLevelName(tc.LogLevel) {
				return nil, fmt.Errorf("invalid log level: `%s`", tc.LogLevel)
			}

			file.Compiler.LogLevel = tc.LogLevel
		}

		switch tc.OutputFormat {
		case "":
		case FormatText, FormatLLVM:
			file.Compiler.OutputFormat = tc.OutputFormat
		default:
			return nil, fmt.Errorf("invalid output format: `%s`", tc.OutputFormat)
		}
	}

	if tm := tcf.TypeMappings; tm != nil {
		overrideName(&file.TypeMappings.Object, tm.Object)
		overrideName(&file.TypeMappings.String, tm.String)
		overrideName(&file.TypeMappings.SystemType, tm.SystemType)

		if tm.ContentAttributes != nil {
			file.TypeMappings.ContentAttributes = tm.ContentAttributes
			file.explicitContentAttributes = true
		}
	}

	for _, tx := range tcf.Xmlns {
		if tx.Uri == "" {
			return nil, fmt.Errorf("xmlns mapping is missing a uri")
		}

		if len(tx.ClrNamespaces) == 0 {
			return nil, fmt.Errorf("xmlns mapping for `%s` must name at least one clr namespace", tx.Uri)
		}

		file.Xmlns = append(file.Xmlns, XmlnsMapping{Uri: tx.Uri, ClrNamespaces: tx.ClrNamespaces})
	}

	for _, ta := range tcf.Aliases {
		if ta.Uri == "" {
			return nil, fmt.Errorf("alias `%s` is missing a uri", ta.Prefix)
		}

		if _, ok := file.Aliases[ta.Prefix]; ok {
			return nil, fmt.Errorf("multiple aliases for prefix `%s`", ta.Prefix)
		}

		file.Aliases[ta.Prefix] = ta.Uri
	}

	return file, nil
}

// overrideName replaces a default type name if a new one is given
func overrideName(name *string, override string) {
	if override != "" {
		*name = override
	}
}
