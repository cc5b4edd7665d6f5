package loaded

import (
	"errors"
	"sync"
	"testing"

	"xamlx/typesys"
)

func TestFindType(t *testing.T) {
	ts := New()
	DefineCorlib(ts)

	typ, err := ts.FindType("System.Type")
	if err != nil {
		t.Fatal(err)
	}

	if typ.Name() != "Type" || typ.Namespace() != "System" {
		t.Errorf("unexpected name split: %s / %s", typ.Namespace(), typ.Name())
	}

	_, err = ts.FindType("Demo.Missing")

	var tse *typesys.Error
	if !errors.As(err, &tse) {
		t.Fatalf("expected a type system error, got %v", err)
	}

	if tse.Message != "type not found: Demo.Missing" {
		t.Errorf("unexpected message: %s", tse.Message)
	}
}

func TestDefineIsIdempotent(t *testing.T) {
	ts := New()

	a := ts.Define("Demo.Thing")
	b := ts.Define("Demo.Thing")

	if a != b {
		t.Error("defining a type twice should return the same type")
	}

	if len(ts.Types()) != 1 {
		t.Errorf("expected one type, got %d", len(ts.Types()))
	}
}

func TestNilMembersAreUntyped(t *testing.T) {
	ts := New()
	DefineCorlib(ts)

	object, _ := ts.FindType(typesys.ObjectName)
	if object.BaseType() != nil {
		t.Error("the base type of the root should be an untyped nil")
	}

	str := ts.Lookup(typesys.StringName)
	prop := ts.Define("Demo.Thing").AddProperty("Name", str, Public|Get)

	if prop.Setter() != nil {
		t.Error("a get-only property should have an untyped nil setter")
	}

	if prop.Getter().ReturnType().FullName() != typesys.StringName {
		t.Error("the getter should return the property type")
	}
}

func TestConcurrentQueries(t *testing.T) {
	ts := New()
	DefineCorlib(ts)

	wg := &sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				if _, err := ts.FindType("System.Type"); err != nil {
					t.Error(err)
					return
				}

				ts.Define("Demo.Shared")
			}
		}()
	}

	wg.Wait()
}
