package report

// TextSpan represents a range or "span" of source markup.  It is used to point
// at the element or attribute that produced an erroneous node.  Text spans are
// inclusive on both sides and the line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// Positioned is anything that can be located in the source markup: every AST
// node is positioned.  The span may be nil for synthesized nodes.
type Positioned interface {
	Span() *TextSpan
}
