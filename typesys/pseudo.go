package typesys

// PseudoType is a sentinel type used before resolution or in the absence of a
// backing type.  Pseudo-types have no members and must never reach emission
// unresolved.
type PseudoType struct {
	name string
}

// The enumerated pseudo-types.
var (
	// Null is the type of a null value: it is assignable to every reference
	// type.
	Null Type = &PseudoType{name: "{x:Null}"}

	// Unknown is the type of a value whose type cannot (yet) be determined.
	Unknown Type = &PseudoType{name: "{Unknown}"}
)

// IsPseudo returns whether or not a type is one of the pseudo-types
func IsPseudo(t Type) bool {
	_, ok := t.(*PseudoType)
	return ok
}

func (pt *PseudoType) Name() string                        { return pt.name }
func (pt *PseudoType) Namespace() string                   { return "" }
func (pt *PseudoType) FullName() string                    { return pt.name }
func (pt *PseudoType) IsValueType() bool                   { return false }
func (pt *PseudoType) IsEnum() bool                        { return false }
func (pt *PseudoType) EnumUnderlyingType() Type            { return nil }
func (pt *PseudoType) BaseType() Type                      { return nil }
func (pt *PseudoType) Interfaces() []Type                  { return nil }
func (pt *PseudoType) Fields() []Field                     { return nil }
func (pt *PseudoType) Properties() []Property              { return nil }
func (pt *PseudoType) Methods() []Method                   { return nil }
func (pt *PseudoType) Constructors() []Method              { return nil }
func (pt *PseudoType) CustomAttributes() []CustomAttribute { return nil }
