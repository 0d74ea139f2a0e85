// Package earlyerrors finds the static semantics errors of ECMAScript 2017
// programs that the parser accepts: duplicate and conflicting declarations,
// misplaced break, continue, super and new.target, malformed exports, and the
// additional restrictions of strict mode code.
//
// The checker reduces the tree bottom-up into a state per subtree. Errors that
// only apply in strict mode are carried separately and promoted once the
// enclosing script, module, class or function is known to be strict.
package earlyerrors
