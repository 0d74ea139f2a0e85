package parser

import (
	"strings"

	"github.com/kiteco/esparse/kite-golib/status"
)

var (
	section = status.NewSection("lang/javascript (parser)")

	parseDuration = section.SampleDuration("Parse duration")
	cacheHitRatio = section.Ratio("Parse cache hits")
	failures      = section.Breakdown("Parse failures")
)

const (
	failureUnexpected = "unexpected token"
	failureRegExp     = "regular expression"
	failureDepth      = "nesting depth"
	failureGrammar    = "grammar"
)

func init() {
	failures.AddCategories(failureUnexpected, failureRegExp, failureDepth, failureGrammar)
}

func recordFailure(err error) {
	failures.HitAndAdd(failureCategory(err))
}

func failureCategory(err error) string {
	serr, ok := err.(*SyntaxError)
	if !ok {
		return failureGrammar
	}
	switch msg := serr.Message; {
	case msg == msgMaxDepth:
		return failureDepth
	case strings.HasPrefix(msg, "Invalid regular expression"), strings.HasPrefix(msg, "Duplicate regular expression"):
		return failureRegExp
	case strings.HasPrefix(msg, "Unexpected"):
		return failureUnexpected
	}
	return failureGrammar
}
