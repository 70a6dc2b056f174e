// File: lookup.go
// Title: Spelling Tables
// Description: Fixed spellings of operators and keywords with lookup
//              helpers used by the tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package token

var spellings = map[Type]string{
	Plus: "+", Minus: "-", Slash: "/", Star: "*", Caret: "^", Percent: "%",
	Greater: ">", Less: "<", Ampersand: "&", Pipe: "|", Tilde: "~",
	Assign: "=", Bang: "!", Colon: ":", Dot: ".", LParen: "(", RParen: ")",
	Comma: ",", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",

	Power: "**", Equal: "==", NotEqual: "!=", FloorDiv: "//",
	GreaterEqual: ">=", LessEqual: "<=", Increment: "++", Decrement: "--",
	Arrow: "->", ShiftRight: ">>", ShiftLeft: "<<",
	FloorDivAssign: "//=", PlusAssign: "+=", MinusAssign: "-=",
	StarAssign: "*=", SlashAssign: "/=", PercentAssign: "%=",
	ShiftRightAssign: ">>=", ShiftLeftAssign: "<<=",
	AmpersandAssign: "&=", PipeAssign: "|=", CaretAssign: "^=",

	True: "true", False: "false", None: "none", Const: "const",
	Import: "import", CppImport: "cppimport", HImport: "himport",
	If: "if", Else: "else", Elif: "elif", While: "while", For: "for",
	Break: "break", Continue: "continue", Match: "match", Extern: "extern",
	Case: "case", Default: "default", Def: "def", Pass: "pass",
	Return: "return", And: "and", Or: "or", Not: "not", Is: "is", In: "in",
	CppCode: "Cppcode", Class: "class", Struct: "struct",

	Str: "str", Bool: "bool", Char: "char", Float: "float",
	Float32: "float32", Void: "void", Int: "int", Int32: "int32",
	Int16: "int16", Int8: "int8", Uint32: "uint32", Uint16: "uint16",
	Uint8: "uint8", Uint: "uint",
}

var (
	keywords  map[string]Type
	operators map[string]Type
)

func init() {
	keywords = make(map[string]Type)
	operators = make(map[string]Type)
	for t, s := range spellings {
		switch {
		case t.IsKeyword(), t.IsTypeKeyword():
			keywords[s] = t
		case t.IsOperator():
			operators[s] = t
		}
	}
}

// MaxOperatorLen is the length of the longest operator spelling
const MaxOperatorLen = 3

// Lookup maps an identifier-shaped word to its keyword type, or Identifier.
// Keywords are case-sensitive.
func Lookup(word string) Type {
	if t, ok := keywords[word]; ok {
		return t
	}
	return Identifier
}

// LookupOperator returns the operator spelled exactly s
func LookupOperator(s string) (Type, bool) {
	t, ok := operators[s]
	return t, ok
}
