package markup

import (
	"sort"

	"xamlx/report"
)

// lineIndex converts byte offsets in a source file to line and column
// positions.
type lineIndex struct {
	// lineStarts are the offsets of the first byte of every line
	lineStarts []int
}

func newLineIndex(src []byte) *lineIndex {
	li := &lineIndex{lineStarts: []int{0}}

	for i, b := range src {
		if b == '\n' {
			li.lineStarts = append(li.lineStarts, i+1)
		}
	}

	return li
}

// position returns the zero-indexed line and column of an offset
func (li *lineIndex) position(offset int) (int, int) {
	line := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1

	return line, offset - li.lineStarts[line]
}

// span returns the text span between two offsets.  The end offset is
// exclusive.
func (li *lineIndex) span(start, end int) *report.TextSpan {
	if end > start {
		end--
	}

	startLine, startCol := li.position(start)
	endLine, endCol := li.position(end)

	return &report.TextSpan{
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   endLine,
		EndCol:    endCol,
	}
}
