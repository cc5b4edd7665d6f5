package typesys

// Equal returns whether two types are the same type.  Types are identified by
// their full names so that equal types from different lookups (or different
// backend instances over the same metadata) compare equal.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if IsPseudo(a) || IsPseudo(b) {
		return a == b
	}

	return a.FullName() == b.FullName()
}

// IsAssignableFrom returns whether a value of type `source` can be used where a
// value of type `target` is expected.  Assignability is nominal: the source must
// be the target, derive from it or (transitively) implement it.  There is no
// implicit numeric widening.  The null pseudo-type is assignable to every
// reference type.
func IsAssignableFrom(target, source Type) bool {
	if target == nil || source == nil {
		return false
	}

	if Equal(target, source) {
		return true
	}

	if source == Null {
		return !IsPseudo(target) && !target.IsValueType()
	}

	if IsPseudo(target) || IsPseudo(source) {
		return false
	}

	// walk the base chain checking both the bases and their interfaces
	for t := source; t != nil; t = t.BaseType() {
		if Equal(target, t) || implements(t, target) {
			return true
		}
	}

	return false
}

// implements checks whether `t` declares `iface` as one of its interfaces or as
// an interface of one of its interfaces.
func implements(t, iface Type) bool {
	for _, declared := range t.Interfaces() {
		if Equal(declared, iface) || implements(declared, iface) {
			return true
		}
	}

	return false
}
