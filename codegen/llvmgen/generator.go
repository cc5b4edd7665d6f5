// Package llvmgen is a code-generation sink producing LLVM IR source text.
// The builder becomes a single function, `void @xamlx.build()`, in which each
// instruction is a call to an external runtime hook (eg. `@xamlx.rt.ldstr`).
// Member operands are passed as their qualified names so that the runtime can
// bind them at load time.
package llvmgen

import (
	"fmt"
	"io"
	"strings"

	"xamlx/codegen"
	"xamlx/typesys"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// BuilderFuncName is the name of the generated builder function
const BuilderFuncName = "xamlx.build"

// hookPrefix prefixes the names of all the runtime hooks
const hookPrefix = "xamlx.rt."

// Generator converts the instruction stream into an LLVM module.  A generator
// builds a single module and is not safe for concurrent use.
type Generator struct {
	// llModule is the LLVM module being built by this generator
	llModule *ir.Module

	// block is the (only) block of the builder function
	block *ir.Block

	// hooks is the table of declared runtime hooks organized by operation
	hooks map[codegen.OpCode]*ir.Func

	// strings interns the global string constants by content
	strings map[string]constant.Constant
}

// NewGenerator creates a new generator for the given source document
func NewGenerator(sourceName string) *Generator {
	llModule := ir.NewModule()
	llModule.SourceFilename = sourceName

	buildFunc := llModule.NewFunc(BuilderFuncName, types.Void)

	return &Generator{
		llModule: llModule,
		block:    buildFunc.NewBlock("entry"),
		hooks:    make(map[codegen.OpCode]*ir.Func),
		strings:  make(map[string]constant.Constant),
	}
}

// Module returns the LLVM module being built
func (g *Generator) Module() *ir.Module {
	return g.llModule
}

// WriteTo writes the LLVM source text of the module
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	return g.llModule.WriteTo(w)
}

// -----------------------------------------------------------------------------

// hookParamTypes is the parameter list of each runtime hook.  Operations that
// are not listed take no parameters.
var hookParamTypes = map[codegen.OpCode]types.Type{
	codegen.OpLdToken: types.I8Ptr,
	codegen.OpCall:    types.I8Ptr,
	codegen.OpNewObj:  types.I8Ptr,
	codegen.OpLdsFld:  types.I8Ptr,
	codegen.OpLdcI8:   types.I64,
	codegen.OpLdcR8:   types.Double,
	codegen.OpLdcR4:   types.Float,
	codegen.OpLdStr:   types.I8Ptr,
	codegen.OpLdcI4:   types.I32,
	codegen.OpBox:     types.I8Ptr,
}

// hook returns the runtime hook for an operation, declaring it on first use.
func (g *Generator) hook(op codegen.OpCode) *ir.Func {
	if fn, ok := g.hooks[op]; ok {
		return fn
	}

	var params []*ir.Param
	if pt, ok := hookParamTypes[op]; ok {
		params = append(params, ir.NewParam("operand", pt))
	}

	fn := g.llModule.NewFunc(hookPrefix+strings.ReplaceAll(op.String(), ".", "_"), types.Void, params...)
	g.hooks[op] = fn
	return fn
}

// callHook emits a call to the runtime hook of an operation
func (g *Generator) callHook(op codegen.OpCode, args ...value.Value) codegen.Generator {
	g.block.NewCall(g.hook(op), args...)
	return g
}

// stringConst returns an `i8*` pointing to a global, null-terminated copy of
// the given string.
func (g *Generator) stringConst(s string) constant.Constant {
	if c, ok := g.strings[s]; ok {
		return c
	}

	glob := g.llModule.NewGlobalDef(fmt.Sprintf(".str.%d", len(g.strings)), constant.NewCharArrayFromString(s+"\x00"))
	glob.Immutable = true

	c := constant.NewBitCast(glob, types.I8Ptr)
	g.strings[s] = c
	return c
}

// memberName returns the qualified name passed to the runtime for a member
func memberName(m typesys.Member) string {
	return typesys.Fqn(m.DeclaringType()) + "::" + m.Name()
}

// methodName returns the qualified name of a method including its parameter
// list so that overloads can be told apart.
func methodName(m typesys.Method) string {
	params := make([]string, len(m.Parameters()))
	for i, p := range m.Parameters() {
		params[i] = typesys.Fqn(p)
	}

	return memberName(m) + "(" + strings.Join(params, ",") + ")"
}

// -----------------------------------------------------------------------------

func (g *Generator) LdNull() codegen.Generator {
	return g.callHook(codegen.OpLdNull)
}

func (g *Generator) LdToken(t typesys.Type) codegen.Generator {
	return g.callHook(codegen.OpLdToken, g.stringConst(typesys.Fqn(t)))
}

func (g *Generator) Call(m typesys.Method) codegen.Generator {
	return g.callHook(codegen.OpCall, g.stringConst(methodName(m)))
}

func (g *Generator) NewObj(ctor typesys.Method) codegen.Generator {
	return g.callHook(codegen.OpNewObj, g.stringConst(methodName(ctor)))
}

func (g *Generator) LdsFld(f typesys.Field) codegen.Generator {
	return g.callHook(codegen.OpLdsFld, g.stringConst(memberName(f)))
}

func (g *Generator) LdcI8(v int64) codegen.Generator {
	return g.callHook(codegen.OpLdcI8, constant.NewInt(types.I64, v))
}

func (g *Generator) LdcR8(v float64) codegen.Generator {
	return g.callHook(codegen.OpLdcR8, constant.NewFloat(types.Double, v))
}

func (g *Generator) LdcR4(v float32) codegen.Generator {
	return g.callHook(codegen.OpLdcR4, constant.NewFloat(types.Float, float64(v)))
}

func (g *Generator) LdStr(v string) codegen.Generator {
	return g.callHook(codegen.OpLdStr, g.stringConst(v))
}

func (g *Generator) LdcI4(v int32) codegen.Generator {
	return g.callHook(codegen.OpLdcI4, constant.NewInt(types.I32, int64(v)))
}

func (g *Generator) Box(t typesys.Type) codegen.Generator {
	return g.callHook(codegen.OpBox, g.stringConst(typesys.Fqn(t)))
}

func (g *Generator) Dup() codegen.Generator {
	return g.callHook(codegen.OpDup)
}

func (g *Generator) Pop() codegen.Generator {
	return g.callHook(codegen.OpPop)
}

// Ret terminates the builder function.
func (g *Generator) Ret() codegen.Generator {
	g.block.NewRet(nil)
	return g
}
