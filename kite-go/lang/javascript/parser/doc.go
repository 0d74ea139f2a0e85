// Package parser implements a recursive descent parser for ECMAScript 2017
// scripts and modules.
//
// The parser is driven by the scanner one token of lookahead at a time.
// Productions that cannot tell an expression from a destructuring target
// until later in the input (`[a, b] = c`, `(a, b) => c`) parse a cover that
// carries both readings, see cover.go.
//
//   - All offsets and columns count UTF-16 code units.
//   - The first syntax error aborts the parse; there is no recovery.
//   - Early errors that need scope analysis are reported by the earlyerrors
//     package, not here.
//   - Regular expression bodies are checked by jspattern unless
//     Options.SkipPatternValidation is set.
package parser
