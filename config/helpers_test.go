package config_test

import (
	"xamlx/typesys/loaded"
)

func typeSystemWithoutContent() *loaded.TypeSystem {
	ts := loaded.New()
	loaded.DefineCorlib(ts)
	return ts
}
