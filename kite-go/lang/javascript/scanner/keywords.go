package scanner

// keywords maps reserved words to their kinds. Words reserved only in strict mode
// (implements, static, ...) are scanned as identifiers and rejected later by the
// early error checker.
var keywords = map[string]Kind{
	"if": If, "in": In, "do": Do,
	"var": Var, "for": For, "new": New, "try": Try, "let": Let,
	"this": This, "true": TrueLiteral, "null": NullLiteral, "else": Else, "enum": FutureReservedWord,
	"case": Case, "void": Void, "with": With,
	"await": Await, "async": Async, "while": While, "break": Break, "catch": Catch, "const": Const,
	"class": Class, "throw": Throw, "yield": Yield, "super": Super, "false": FalseLiteral,
	"return": Return, "typeof": Typeof, "delete": Delete, "switch": Switch, "export": Export,
	"import":  Import,
	"default": Default, "finally": Finally, "extends": Extends,
	"function": Function, "continue": Continue, "debugger": Debugger,
	"instanceof": Instanceof,
}

func keywordKind(id string) Kind {
	if len(id) < 2 || len(id) > 10 {
		return Identifier
	}
	if k, ok := keywords[id]; ok {
		return k
	}
	return Identifier
}

// IsRestrictedWord reports whether name is eval or arguments.
func IsRestrictedWord(name string) bool {
	return name == "eval" || name == "arguments"
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true, "continue": true,
	"debugger": true, "default": true, "delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true, "with": true, "yield": true,
}

// IsReservedWord reports whether word is reserved in sloppy mode code.
func IsReservedWord(word string) bool {
	return reservedWords[word]
}

// IsStrictModeReservedWord reports whether word may not be an identifier in strict mode code.
func IsStrictModeReservedWord(word string) bool {
	switch word {
	case "implements", "interface", "let", "package", "private", "protected", "public", "static":
		return true
	}
	return IsReservedWord(word)
}
