package codegen

import "xamlx/typesys"

// Generator is a code-generation sink.  Every method appends exactly one
// instruction and returns the generator so that emission can be chained:
//
//	gen.LdToken(t).Call(getTypeFromHandle)
type Generator interface {
	LdNull() Generator
	LdToken(t typesys.Type) Generator
	Call(m typesys.Method) Generator
	NewObj(ctor typesys.Method) Generator
	LdsFld(f typesys.Field) Generator
	LdcI8(v int64) Generator
	LdcR8(v float64) Generator
	LdcR4(v float32) Generator
	LdStr(v string) Generator
	LdcI4(v int32) Generator
	Box(t typesys.Type) Generator
	Dup() Generator
	Pop() Generator
	Ret() Generator
}
