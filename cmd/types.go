package cmd

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ComedicChimera/olive"

	"xamlx/report"
	"xamlx/typesys"
	"xamlx/typesys/offline"
)

// execTypesCommand executes the types subcommand: it lists the types of a
// metadata file along with their members.
func execTypesCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		report.ReportStdError("Path Error", err)
		return
	}

	ts, err := offline.Parse(offline.Corlib, buff)
	if err != nil {
		report.ReportStdError("Metadata Error", err)
		return
	}

	names := ts.TypeNames()
	if name, ok := stringArg(result, "name"); ok {
		names = []string{name}
	}

	for _, name := range names {
		t, err := ts.FindType(name)
		if err != nil {
			report.ReportStdError("Type Error", err)
			return
		}

		report.ReportTypeListing(describeType(t), describeMembers(t))
	}
}

// describeType returns the header line of a type listing
func describeType(t typesys.Type) string {
	sb := &strings.Builder{}

	switch {
	case t.IsEnum():
		sb.WriteString("enum ")
	case t.IsValueType():
		sb.WriteString("struct ")
	default:
		sb.WriteString("class ")
	}

	sb.WriteString(t.FullName())

	var bases []string
	if base := t.BaseType(); base != nil {
		bases = append(bases, base.FullName())
	}

	for _, iface := range t.Interfaces() {
		bases = append(bases, iface.FullName())
	}

	if len(bases) > 0 {
		sb.WriteString(" : " + strings.Join(bases, ", "))
	}

	return sb.String()
}

// describeMembers returns one line per member of a type
func describeMembers(t typesys.Type) []string {
	var lines []string

	for _, f := range t.Fields() {
		line := modifiers(f.IsPublic(), f.IsStatic()) + typesys.Fqn(f.FieldType()) + " " + f.Name()
		if f.IsLiteral() {
			line += fmt.Sprintf(" = %v", f.LiteralValue())
		}

		lines = append(lines, line)
	}

	for _, p := range t.Properties() {
		var accessors []string
		if p.Getter() != nil {
			accessors = append(accessors, "get;")
		}

		if p.Setter() != nil {
			accessors = append(accessors, "set;")
		}

		lines = append(lines, fmt.Sprintf("%s %s { %s }", typesys.Fqn(p.PropertyType()), p.Name(), strings.Join(accessors, " ")))
	}

	for _, ctor := range t.Constructors() {
		lines = append(lines, modifiers(ctor.IsPublic(), false)+".ctor("+paramList(ctor)+")")
	}

	for _, m := range t.Methods() {
		lines = append(lines, modifiers(m.IsPublic(), m.IsStatic())+typesys.Fqn(m.ReturnType())+" "+m.Name()+"("+paramList(m)+")")
	}

	return lines
}

func modifiers(public, static bool) string {
	s := "private "
	if public {
		s = "public "
	}

	if static {
		s += "static "
	}

	return s
}

func paramList(m typesys.Method) string {
	var params []string
	for _, param := range m.Parameters() {
		params = append(params, typesys.Fqn(param))
	}

	return strings.Join(params, ", ")
}
