package common

import "strings"

// SplitQualifiedName splits a `prefix:Name` string into its prefix and local
// name.  If there is no prefix, the returned prefix is empty.
func SplitQualifiedName(qname string) (string, string) {
	if ndx := strings.IndexByte(qname, ':'); ndx > -1 {
		return qname[:ndx], qname[ndx+1:]
	}

	return "", qname
}

// IsWhitespace returns whether or not a piece of text consists only of xml
// whitespace characters
func IsWhitespace(text string) bool {
	return strings.TrimSpace(text) == ""
}
