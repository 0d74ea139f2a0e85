package ast

import "fmt"

// Location is a point in the source. Line is 1-based, Column is 0-based and
// Offset counts UTF-16 code units from the start of the source.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span is the half-open source range covered by a node.
type Span struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// IsZero reports whether the span was never filled in.
func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d...%d]", s.Start.Offset, s.End.Offset)
}

// CommentKind tells the four comment syntaxes apart.
type CommentKind int

const (
	// SingleLine is a `//` comment.
	SingleLine CommentKind = iota
	// MultiLine is a `/* */` comment.
	MultiLine
	// HTMLOpen is a `<!--` comment, only recognized in scripts.
	HTMLOpen
	// HTMLClose is a `-->` comment at the start of a line, only recognized in scripts.
	HTMLClose
)

var commentKindNames = [...]string{"SingleLine", "MultiLine", "HTMLOpen", "HTMLClose"}

func (k CommentKind) String() string {
	if int(k) < len(commentKindNames) {
		return commentKindNames[k]
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k CommentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Comment is a comment found between tokens. Text excludes the comment delimiters.
type Comment struct {
	Kind CommentKind `json:"kind"`
	Text string      `json:"text"`
	Span Span        `json:"span"`
}
