package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"xamlx/typesys"
)

// Instruction is a single recorded instruction
type Instruction struct {
	Op OpCode

	// Operand is the operand of the instruction: a `typesys.Type`,
	// `typesys.Method` or `typesys.Field` for member operations, the constant
	// for constant loads and nil otherwise.
	Operand interface{}
}

// String returns the disassembled form of the instruction
func (ins Instruction) String() string {
	switch v := ins.Operand.(type) {
	case nil:
		return ins.Op.String()
	case typesys.Type:
		return ins.Op.String() + " " + typesys.Fqn(v)
	case typesys.Method:
		return fmt.Sprintf("%s %s", ins.Op, describeMethod(v))
	case typesys.Field:
		return fmt.Sprintf("%s %s", ins.Op, typesys.DescribeMember(v))
	case string:
		return ins.Op.String() + " " + strconv.Quote(v)
	default:
		return fmt.Sprintf("%s %v", ins.Op, v)
	}
}

// describeMethod returns a signature-like description of a method
func describeMethod(m typesys.Method) string {
	params := make([]string, len(m.Parameters()))
	for i, p := range m.Parameters() {
		params[i] = typesys.Fqn(p)
	}

	return fmt.Sprintf("%s %s(%s)", typesys.Fqn(m.ReturnType()), typesys.DescribeMember(m), strings.Join(params, ", "))
}

// -----------------------------------------------------------------------------

// Recorder is a generator that records the instructions it is given.  It is
// the sink used for the textual output format and by tests.
type Recorder struct {
	Instructions []Instruction
}

// NewRecorder creates a new empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// emit records an instruction
func (r *Recorder) emit(op OpCode, operand interface{}) Generator {
	r.Instructions = append(r.Instructions, Instruction{Op: op, Operand: operand})
	return r
}

func (r *Recorder) LdNull() Generator                    { return r.emit(OpLdNull, nil) }
func (r *Recorder) LdToken(t typesys.Type) Generator     { return r.emit(OpLdToken, t) }
func (r *Recorder) Call(m typesys.Method) Generator      { return r.emit(OpCall, m) }
func (r *Recorder) NewObj(ctor typesys.Method) Generator { return r.emit(OpNewObj, ctor) }
func (r *Recorder) LdsFld(f typesys.Field) Generator     { return r.emit(OpLdsFld, f) }
func (r *Recorder) LdcI8(v int64) Generator              { return r.emit(OpLdcI8, v) }
func (r *Recorder) LdcR8(v float64) Generator            { return r.emit(OpLdcR8, v) }
func (r *Recorder) LdcR4(v float32) Generator            { return r.emit(OpLdcR4, v) }
func (r *Recorder) LdStr(v string) Generator             { return r.emit(OpLdStr, v) }
func (r *Recorder) LdcI4(v int32) Generator              { return r.emit(OpLdcI4, v) }
func (r *Recorder) Box(t typesys.Type) Generator         { return r.emit(OpBox, t) }
func (r *Recorder) Dup() Generator                       { return r.emit(OpDup, nil) }
func (r *Recorder) Pop() Generator                       { return r.emit(OpPop, nil) }
func (r *Recorder) Ret() Generator                       { return r.emit(OpRet, nil) }

// Ops returns just the operations of the recorded instructions
func (r *Recorder) Ops() []OpCode {
	ops := make([]OpCode, len(r.Instructions))
	for i, ins := range r.Instructions {
		ops[i] = ins.Op
	}

	return ops
}

// Disassemble returns the textual listing of the recorded instructions, one
// instruction per line prefixed by its offset.
func (r *Recorder) Disassemble() string {
	var sb strings.Builder
	for i, ins := range r.Instructions {
		fmt.Fprintf(&sb, "%04d  %s\n", i, ins)
	}

	return sb.String()
}
