package linenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16Map(t *testing.T) {
	for _, s := range []string{"abc", "abc\ndef", "", "\n", "a\na\na\n"} {
		m := NewUTF16Map(s)
		assert.Equal(t, len(s), m.CodeUnitCount())
		var curline, curcol int
		for i := 0; i <= len(s); i++ {
			line, col := m.LineCol(i)
			assert.Equal(t, curline, line, "%q offset %d", s, i)
			assert.Equal(t, curcol, col, "%q offset %d", s, i)
			assert.Equal(t, i, m.Offset(curline, curcol))
			if i < len(s) && s[i] == '\n' {
				curline++
				curcol = 0
			} else {
				curcol++
			}
		}
	}
}

func TestUTF16Map_Terminators(t *testing.T) {
	m := NewUTF16Map("a\r\nb\rc d e")
	assert.Equal(t, 5, m.LineCount())
	assert.Equal(t, "a", m.LineText(0))
	assert.Equal(t, "b", m.LineText(1))
	assert.Equal(t, "c", m.LineText(2))
	assert.Equal(t, "d", m.LineText(3))
	assert.Equal(t, "e", m.LineText(4))
	assert.Equal(t, "", m.LineText(5))
}

func TestUTF16Map_SurrogatePairs(t *testing.T) {
	m := NewUTF16Map("\U0001F600x\ny")
	line, col := m.LineCol(2)
	assert.Equal(t, 0, line)
	assert.Equal(t, 2, col)
	assert.Equal(t, "y", m.LineText(1))
}

func TestUTF16Map_LineBounds(t *testing.T) {
	m := NewUTF16Map("...\n...\n...\n")
	a, b := m.LineBounds(0)
	assert.Equal(t, 0, a)
	assert.Equal(t, 3, b)
	e, f := m.LineBounds(2)
	assert.Equal(t, 8, e)
	assert.Equal(t, 11, f)
	g, h := m.LineBounds(3)
	assert.Equal(t, m.CodeUnitCount(), g)
	assert.Equal(t, m.CodeUnitCount(), h)
}
