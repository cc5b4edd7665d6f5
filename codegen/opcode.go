// Package codegen defines the code-generation sink the emitters write to.  The
// encoding of the instructions is the sink's concern: the compiler only relies
// on the named operations of `Generator`.
package codegen

// OpCode identifies an instruction operation
type OpCode uint8

// Enumeration of the operations the compiler emits
const (
	OpLdNull    OpCode = iota // push null
	OpLdToken                 // Type: push the runtime handle of a type
	OpCall                    // Method: call a method (static or on the value on the stack)
	OpNewObj                  // Method: allocate an object and call the constructor
	OpLdsFld                  // Field: push the value of a static field
	OpLdcI8                   // int64: push an 8-byte integer constant
	OpLdcR8                   // float64: push an 8-byte float constant
	OpLdcR4                   // float32: push a 4-byte float constant
	OpLdStr                   // string: push a string constant
	OpLdcI4                   // int32: push a 4-byte integer constant
	OpBox                     // Type: box the value type on top of the stack
	OpDup                     // duplicate the top of the stack
	OpPop                     // discard the top of the stack
	OpRet                     // return from the builder
)

var opNames = map[OpCode]string{
	OpLdNull:  "ldnull",
	OpLdToken: "ldtoken",
	OpCall:    "call",
	OpNewObj:  "newobj",
	OpLdsFld:  "ldsfld",
	OpLdcI8:   "ldc.i8",
	OpLdcR8:   "ldc.r8",
	OpLdcR4:   "ldc.r4",
	OpLdStr:   "ldstr",
	OpLdcI4:   "ldc.i4",
	OpBox:     "box",
	OpDup:     "dup",
	OpPop:     "pop",
	OpRet:     "ret",
}

// String returns the mnemonic of the operation
func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}

	return "unknown"
}
