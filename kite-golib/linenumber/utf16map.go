package linenumber

import (
	"sort"
	"unicode/utf16"
)

// UTF16Map converts utf16 code-unit offsets to and from (line number, column) pairs, treating
// \n, \r, \r\n, U+2028 and U+2029 as line terminators the way ECMAScript source does.
// Code-unit offsets, line numbers, and columns are all zero-based.
type UTF16Map struct {
	CodeUnits   []uint16
	LineOffsets []int // code-unit offset of the first char of each line
	lineEnds    []int // code-unit offset of the terminator ending each line
}

// NewUTF16Map creates a map for the given string.
func NewUTF16Map(s string) *UTF16Map {
	return NewUTF16MapFromUnits(utf16.Encode([]rune(s)))
}

// NewUTF16MapFromUnits creates a map for already encoded source.
func NewUTF16MapFromUnits(units []uint16) *UTF16Map {
	m := UTF16Map{
		CodeUnits:   units,
		LineOffsets: []int{0},
	}
	for i := 0; i < len(units); i++ {
		switch units[i] {
		case '\r':
			m.lineEnds = append(m.lineEnds, i)
			if i+1 < len(units) && units[i+1] == '\n' {
				i++
			}
		case '\n', 0x2028, 0x2029:
			m.lineEnds = append(m.lineEnds, i)
		default:
			continue
		}
		m.LineOffsets = append(m.LineOffsets, i+1)
	}
	m.lineEnds = append(m.lineEnds, len(units))
	return &m
}

// CodeUnitCount is the number of utf16 code-units in the buffer
func (m *UTF16Map) CodeUnitCount() int {
	return len(m.CodeUnits)
}

// Offset converts a line number and column (both zero-based) to a code-unit offset.
func (m *UTF16Map) Offset(line, column int) int {
	return m.LineOffsets[line] + column
}

// LineCol converts a code-unit offset to a line number and column (both zero based).
func (m *UTF16Map) LineCol(offset int) (line, column int) {
	line = sort.Search(len(m.LineOffsets)-1, func(i int) bool { return offset < m.LineOffsets[i+1] })
	return line, offset - m.LineOffsets[line]
}

// LineBounds gets the begin and end of the given line, such that CodeUnits[begin:end] holds the
// line without its terminator.
func (m *UTF16Map) LineBounds(line int) (begin, end int) {
	return m.LineOffsets[line], m.lineEnds[line]
}

// LineText returns the contents of the given zero-based line, without its terminator.
func (m *UTF16Map) LineText(line int) string {
	if line < 0 || line >= len(m.LineOffsets) {
		return ""
	}
	begin, end := m.LineBounds(line)
	return string(utf16.Decode(m.CodeUnits[begin:end]))
}

// LineCount gets the number of lines (the number of line terminators plus one)
func (m *UTF16Map) LineCount() int {
	return len(m.LineOffsets)
}
