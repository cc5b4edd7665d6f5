// Package offline implements the type system over metadata files read ahead of
// time.  Metadata is written in TOML: see `Corlib` for the format.  Members are
// materialized lazily, on first query, and memoized.
package offline

import (
	"fmt"
	"io/ioutil"
	"math"
	"strconv"

	"xamlx/typesys"

	"github.com/pelletier/go-toml"
)

// tomlMetadataFile represents a metadata file as it is encoded in TOML
type tomlMetadataFile struct {
	Types []*tomlType `toml:"type"`
}

// tomlType represents a type as it is encoded in TOML
type tomlType struct {
	Name         string             `toml:"name"`
	Base         string             `toml:"base"`
	ValueType    bool               `toml:"value-type"`
	Enum         string             `toml:"enum"`
	Interfaces   []string           `toml:"interfaces"`
	Attributes   []*tomlAttribute   `toml:"attribute"`
	Fields       []*tomlField       `toml:"field"`
	Properties   []*tomlProperty    `toml:"property"`
	Methods      []*tomlMethod      `toml:"method"`
	Constructors []*tomlConstructor `toml:"constructor"`
}

// tomlAttribute represents a custom attribute as it is encoded in TOML
type tomlAttribute struct {
	Type string        `toml:"type"`
	Args []interface{} `toml:"args"`
}

// tomlField represents a field as it is encoded in TOML
type tomlField struct {
	Name      string      `toml:"name"`
	Type      string      `toml:"type"`
	NonPublic bool        `toml:"non-public"`
	Static    bool        `toml:"static"`
	Literal   bool        `toml:"literal"`
	Value     interface{} `toml:"value"`
}

// tomlProperty represents a property as it is encoded in TOML.  The accessors
// are implied by the `get` and `set` flags.
type tomlProperty struct {
	Name       string   `toml:"name"`
	Type       string   `toml:"type"`
	Get        bool     `toml:"get"`
	Set        bool     `toml:"set"`
	NonPublic  bool     `toml:"non-public"`
	Static     bool     `toml:"static"`
	Attributes []string `toml:"attributes"`
}

// tomlMethod represents a method as it is encoded in TOML.  An empty return
// type denotes void.
type tomlMethod struct {
	Name      string   `toml:"name"`
	Return    string   `toml:"return"`
	NonPublic bool     `toml:"non-public"`
	Static    bool     `toml:"static"`
	Params    []string `toml:"params"`
}

// tomlConstructor represents a constructor as it is encoded in TOML
type tomlConstructor struct {
	NonPublic bool     `toml:"non-public"`
	Params    []string `toml:"params"`
}

// -----------------------------------------------------------------------------

// Load reads and parses the metadata files at the given paths into a single
// type system.
func Load(paths ...string) (*TypeSystem, error) {
	docs := make([][]byte, len(paths))
	for i, path := range paths {
		buff, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}

		docs[i] = buff
	}

	return Parse(docs...)
}

// Parse parses metadata documents into a single type system. All type names
// referenced by the documents must be defined by one of them.
func Parse(docs ...[]byte) (*TypeSystem, error) {
	ts := newTypeSystem()

	for _, doc := range docs {
		tmf := &tomlMetadataFile{}
		if err := toml.Unmarshal(doc, tmf); err != nil {
			return nil, fmt.Errorf("error parsing metadata: %s", err.Error())
		}

		for _, tt := range tmf.Types {
			if tt.Name == "" {
				return nil, typesys.Errorf("metadata type is missing a name")
			}

			if _, ok := ts.types[tt.Name]; ok {
				return nil, typesys.Errorf("type `%s` is defined more than once", tt.Name)
			}

			ts.types[tt.Name] = newType(ts, tt)
		}
	}

	if err := ts.validate(); err != nil {
		return nil, err
	}

	return ts, nil
}

// validate checks that every type name referenced by the metadata resolves and
// that all literal values can be represented by their field types.
func (ts *TypeSystem) validate() error {
	for _, t := range ts.types {
		tt := t.record

		refs := append([]string{tt.Base, tt.Enum}, tt.Interfaces...)
		for _, attr := range tt.Attributes {
			refs = append(refs, attr.Type)
		}

		for _, tf := range tt.Fields {
			refs = append(refs, tf.Type)

			if tf.Literal {
				if _, err := ts.convertLiteral(tf); err != nil {
					return err
				}
			}
		}

		for _, tp := range tt.Properties {
			refs = append(refs, tp.Type)
			refs = append(refs, tp.Attributes...)
		}

		for _, tm := range tt.Methods {
			refs = append(refs, tm.Return)
			refs = append(refs, tm.Params...)
		}

		for _, tc := range tt.Constructors {
			refs = append(refs, tc.Params...)
		}

		for _, ref := range refs {
			if ref == "" {
				continue
			}

			if _, ok := ts.types[ref]; !ok {
				return typesys.Errorf("type `%s` referenced by `%s` is not defined", ref, tt.Name)
			}
		}
	}

	return nil
}

// convertLiteral converts the TOML value of a literal field into the Go
// representation matching the field's underlying type.  Integers outside the
// range of the underlying type are rejected.
func (ts *TypeSystem) convertLiteral(tf *tomlField) (interface{}, error) {
	ft, ok := ts.types[tf.Type]
	if !ok {
		return nil, typesys.Errorf("type `%s` of literal `%s` is not defined", tf.Type, tf.Name)
	}

	underlying := tf.Type
	if ft.record.Enum != "" {
		underlying = ft.record.Enum
	}

	bad := typesys.Errorf("value %v of literal `%s` is not a valid %s", tf.Value, tf.Name, underlying)

	switch v := tf.Value.(type) {
	case int64:
		fits := func(min, max int64) bool { return v >= min && v <= max }

		switch underlying {
		case typesys.SByteName:
			if fits(math.MinInt8, math.MaxInt8) {
				return int8(v), nil
			}
		case typesys.ByteName:
			if fits(0, math.MaxUint8) {
				return uint8(v), nil
			}
		case typesys.Int16Name:
			if fits(math.MinInt16, math.MaxInt16) {
				return int16(v), nil
			}
		case typesys.UInt16Name, typesys.CharName:
			if fits(0, math.MaxUint16) {
				return uint16(v), nil
			}
		case typesys.Int32Name:
			if fits(math.MinInt32, math.MaxInt32) {
				return int32(v), nil
			}
		case typesys.UInt32Name:
			if fits(0, math.MaxUint32) {
				return uint32(v), nil
			}
		case typesys.Int64Name:
			return v, nil
		case typesys.UInt64Name:
			if v >= 0 {
				return uint64(v), nil
			}
		case typesys.SingleName:
			return float32(v), nil
		case typesys.DoubleName:
			return float64(v), nil
		}
	case float64:
		switch underlying {
		case typesys.SingleName:
			return float32(v), nil
		case typesys.DoubleName:
			return v, nil
		}
	case string:
		switch underlying {
		case typesys.StringName:
			return v, nil
		case typesys.UInt64Name:
			// values above the TOML integer range are written as strings
			if u, err := strconv.ParseUint(v, 10, 64); err == nil {
				return u, nil
			}
		}
	case bool:
		if underlying == typesys.BooleanName {
			return v, nil
		}
	}

	return nil, bad
}
