package offline

import (
	"sort"
	"strings"
	"sync"

	"xamlx/typesys"
)

// TypeSystem is an offline type system.  The type table is immutable once
// parsing completes so it can be queried concurrently without locking; member
// materialization is memoized per type (see `Type.resolve`).
type TypeSystem struct {
	types map[string]*Type
}

// newTypeSystem creates a new, empty offline type system
func newTypeSystem() *TypeSystem {
	return &TypeSystem{types: make(map[string]*Type)}
}

// FindType implements typesys.TypeSystem
func (ts *TypeSystem) FindType(fullName string) (typesys.Type, error) {
	if t, ok := ts.types[fullName]; ok {
		return t, nil
	}

	return nil, typesys.TypeNotFound(fullName)
}

// TypeNames returns the sorted full names of all the types in the type system
func (ts *TypeSystem) TypeNames() []string {
	names := make([]string, 0, len(ts.types))
	for name := range ts.types {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// lookup returns the named type or nil for the empty name.  All other names
// were validated during parsing.
func (ts *TypeSystem) lookup(name string) typesys.Type {
	if t, ok := ts.types[name]; ok {
		return t
	}

	return nil
}

// lookupAll looks up a list of type names
func (ts *TypeSystem) lookupAll(names []string) []typesys.Type {
	types := make([]typesys.Type, len(names))
	for i, name := range names {
		types[i] = ts.lookup(name)
	}

	return types
}

// -----------------------------------------------------------------------------

// Type is a type read from offline metadata
type Type struct {
	// ts is the type system this type belongs to: it is used to resolve the
	// type names stored in the record.
	ts *TypeSystem

	// record is the type as it was decoded from the metadata
	record *tomlType

	namespace, name string

	// once guards the materialization of the members below.  The first query
	// for any member resolves all of them.
	once sync.Once

	fields       []typesys.Field
	properties   []typesys.Property
	methods      []typesys.Method
	constructors []typesys.Method
	attrs        []typesys.CustomAttribute
}

// newType creates a new unresolved type for a metadata record
func newType(ts *TypeSystem, tt *tomlType) *Type {
	t := &Type{ts: ts, record: tt, name: tt.Name}
	if ndx := strings.LastIndexByte(tt.Name, '.'); ndx > -1 {
		t.namespace, t.name = tt.Name[:ndx], tt.Name[ndx+1:]
	}

	return t
}

func (t *Type) Name() string      { return t.name }
func (t *Type) Namespace() string { return t.namespace }
func (t *Type) FullName() string  { return t.record.Name }
func (t *Type) IsValueType() bool { return t.record.ValueType || t.record.Enum != "" }
func (t *Type) IsEnum() bool      { return t.record.Enum != "" }

func (t *Type) EnumUnderlyingType() typesys.Type { return t.ts.lookup(t.record.Enum) }
func (t *Type) BaseType() typesys.Type           { return t.ts.lookup(t.record.Base) }
func (t *Type) Interfaces() []typesys.Type       { return t.ts.lookupAll(t.record.Interfaces) }

func (t *Type) Fields() []typesys.Field {
	t.once.Do(t.resolve)
	return t.fields
}

func (t *Type) Properties() []typesys.Property {
	t.once.Do(t.resolve)
	return t.properties
}

func (t *Type) Methods() []typesys.Method {
	t.once.Do(t.resolve)
	return t.methods
}

func (t *Type) Constructors() []typesys.Method {
	t.once.Do(t.resolve)
	return t.constructors
}

func (t *Type) CustomAttributes() []typesys.CustomAttribute {
	t.once.Do(t.resolve)
	return t.attrs
}

// resolve materializes all the members of the type from its record.
func (t *Type) resolve() {
	tt := t.record

	for _, ta := range tt.Attributes {
		t.attrs = append(t.attrs, &Attribute{typ: t.ts.lookup(ta.Type), args: ta.Args})
	}

	for _, tf := range tt.Fields {
		f := &Field{
			member:    member{name: tf.Name, declaring: t},
			fieldType: t.ts.lookup(tf.Type),
			public:    !tf.NonPublic,
			static:    tf.Static || tf.Literal,
			literal:   tf.Literal,
		}

		if tf.Literal {
			// already validated during parsing
			f.value, _ = t.ts.convertLiteral(tf)
		}

		t.fields = append(t.fields, f)
	}

	for _, tm := range tt.Methods {
		t.methods = append(t.methods, &Method{
			member:     member{name: tm.Name, declaring: t},
			public:     !tm.NonPublic,
			static:     tm.Static,
			returnType: t.ts.lookup(tm.Return),
			params:     t.ts.lookupAll(tm.Params),
		})
	}

	for _, tc := range tt.Constructors {
		t.constructors = append(t.constructors, &Method{
			member: member{name: ".ctor", declaring: t},
			public: !tc.NonPublic,
			params: t.ts.lookupAll(tc.Params),
		})
	}

	// properties come last: their accessors are appended to the methods
	for _, tp := range tt.Properties {
		propType := t.ts.lookup(tp.Type)
		p := &Property{member: member{name: tp.Name, declaring: t}, propType: propType}

		if tp.Get {
			p.getter = &Method{
				member:     member{name: "get_" + tp.Name, declaring: t},
				public:     !tp.NonPublic,
				static:     tp.Static,
				returnType: propType,
			}

			t.methods = append(t.methods, p.getter)
		}

		if tp.Set {
			p.setter = &Method{
				member: member{name: "set_" + tp.Name, declaring: t},
				public: !tp.NonPublic,
				static: tp.Static,
				params: []typesys.Type{propType},
			}

			t.methods = append(t.methods, p.setter)
		}

		for _, attrName := range tp.Attributes {
			p.attrs = append(p.attrs, &Attribute{typ: t.ts.lookup(attrName)})
		}

		t.properties = append(t.properties, p)
	}
}
