package ast

import (
	"sort"

	"github.com/golang-collections/go-datastructures/augmentedtree"
)

// CommentIndex answers which comments fall inside a source range.
type CommentIndex struct {
	comments  []Comment
	intervals augmentedtree.Tree
}

// NewCommentIndex indexes comments by their spans. The comments must carry
// locations.
func NewCommentIndex(comments []Comment) *CommentIndex {
	idx := &CommentIndex{
		comments:  comments,
		intervals: augmentedtree.New(1),
	}
	for i, c := range comments {
		idx.intervals.Add(&interval{
			begin: int64(c.Span.Start.Offset),
			end:   int64(c.Span.End.Offset),
			id:    uint64(i),
		})
	}
	return idx
}

// Len is the number of indexed comments.
func (idx *CommentIndex) Len() int {
	return len(idx.comments)
}

// Within returns the comments lying entirely inside span, in source order.
func (idx *CommentIndex) Within(span Span) []Comment {
	q := &interval{begin: int64(span.Start.Offset), end: int64(span.End.Offset)}

	var ids []int
	for _, iv := range idx.intervals.Query(q) {
		c := iv.(*interval)
		if c.begin >= q.begin && c.end <= q.end {
			ids = append(ids, int(c.id))
		}
	}
	sort.Ints(ids)

	var out []Comment
	for _, i := range ids {
		out = append(out, idx.comments[i])
	}
	return out
}

// InNode returns the comments inside the span of n.
func (idx *CommentIndex) InNode(n Node) []Comment {
	return idx.Within(n.Span())
}

type interval struct {
	begin int64
	end   int64
	id    uint64
}

func (i *interval) LowAtDimension(uint64) int64 {
	return i.begin
}

func (i *interval) HighAtDimension(uint64) int64 {
	return i.end
}

func (i *interval) OverlapsAtDimension(ii augmentedtree.Interval, d uint64) bool {
	return ii.LowAtDimension(d) <= i.end && i.begin <= ii.HighAtDimension(d)
}

func (i *interval) ID() uint64 {
	return i.id
}
