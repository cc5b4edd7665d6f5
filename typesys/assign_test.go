package typesys_test

import (
	"testing"

	"xamlx/typesys"
	"xamlx/typesys/loaded"
)

func newHierarchy() *loaded.TypeSystem {
	ts := loaded.New()
	loaded.DefineCorlib(ts)

	object := ts.Lookup(typesys.ObjectName)
	disposable := ts.Define("Demo.IDisposable")
	closer := ts.Define("Demo.ICloser").Implements(disposable)
	base := ts.Define("Demo.Base").Extends(object).Implements(closer)
	ts.Define("Demo.Derived").Extends(base)
	ts.Define("Demo.Other").Extends(object)

	return ts
}

func TestIsAssignableFrom(t *testing.T) {
	ts := newHierarchy()
	find := func(name string) typesys.Type {
		typ, err := ts.FindType(name)
		if err != nil {
			t.Fatal(err)
		}

		return typ
	}

	cases := []struct {
		target, source string
		want           bool
	}{
		{"Demo.Base", "Demo.Base", true},
		{"Demo.Base", "Demo.Derived", true},
		{typesys.ObjectName, "Demo.Derived", true},
		{"Demo.Derived", "Demo.Base", false},
		{"Demo.Other", "Demo.Base", false},
		{"Demo.ICloser", "Demo.Derived", true},
		{"Demo.IDisposable", "Demo.Derived", true},
		{"Demo.IDisposable", "Demo.Other", false},
		{typesys.ObjectName, typesys.Int32Name, true},
		{typesys.Int64Name, typesys.Int32Name, false},
		{typesys.DoubleName, typesys.SingleName, false},
	}

	for _, c := range cases {
		t.Run(c.target+" <- "+c.source, func(t *testing.T) {
			if got := typesys.IsAssignableFrom(find(c.target), find(c.source)); got != c.want {
				t.Errorf("IsAssignableFrom(%s, %s) = %v, want %v", c.target, c.source, got, c.want)
			}
		})
	}
}

func TestNullAssignability(t *testing.T) {
	ts := newHierarchy()

	str, _ := ts.FindType(typesys.StringName)
	i32, _ := ts.FindType(typesys.Int32Name)

	if !typesys.IsAssignableFrom(str, typesys.Null) {
		t.Error("null should be assignable to System.String")
	}

	if typesys.IsAssignableFrom(i32, typesys.Null) {
		t.Error("null should not be assignable to System.Int32")
	}

	if typesys.IsAssignableFrom(typesys.Unknown, typesys.Null) {
		t.Error("null should not be assignable to a pseudo-type")
	}

	if typesys.IsAssignableFrom(str, typesys.Unknown) {
		t.Error("unknown should not be assignable to System.String")
	}
}

func TestEqualAcrossLookups(t *testing.T) {
	a := newHierarchy()
	b := newHierarchy()

	ta, _ := a.FindType("Demo.Base")
	tb, _ := b.FindType("Demo.Base")

	if !typesys.Equal(ta, tb) {
		t.Error("types with the same full name should be equal")
	}

	if typesys.Equal(typesys.Null, typesys.Unknown) {
		t.Error("distinct pseudo-types should not be equal")
	}

	if !typesys.Equal(nil, nil) || typesys.Equal(ta, nil) {
		t.Error("nil types only equal each other")
	}
}
