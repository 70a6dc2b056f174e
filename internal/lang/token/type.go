// File: type.go
// Title: Token Types
// Description: The closed set of token tags produced by the tokenizer:
//              operators and punctuation, identifiers, keywords, primitive
//              type keywords, literal kinds and the structural markers
//              INDENT, DEDENT and NEWLINE.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package token

// Type is the tag of a token
type Type int

const (
	// Illegal is the zero value and never produced by the tokenizer
	Illegal Type = iota

	operatorBeg
	// single-character operators and punctuation
	Plus      // +
	Minus     // -
	Slash     // /
	Star      // *
	Caret     // ^
	Percent   // %
	Greater   // >
	Less      // <
	Ampersand // &
	Pipe      // |
	Tilde     // ~
	Assign    // =
	Bang      // !
	Colon     // :
	Dot       // .
	LParen    // (
	RParen    // )
	Comma     // ,
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }

	// compound operators
	Power            // **
	Equal            // ==
	NotEqual         // !=
	FloorDiv         // //
	GreaterEqual     // >=
	LessEqual        // <=
	Increment        // ++
	Decrement        // --
	Arrow            // ->
	ShiftRight       // >>
	ShiftLeft        // <<
	FloorDivAssign   // //=
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	ShiftRightAssign // >>=
	ShiftLeftAssign  // <<=
	AmpersandAssign  // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	operatorEnd

	Identifier

	keywordBeg
	True
	False
	None
	Const
	Import
	CppImport
	HImport
	If
	Else
	Elif
	While
	For
	Break
	Continue
	Match
	Extern
	Case
	Default
	Def
	Pass
	Return
	And
	Or
	Not
	Is
	In
	CppCode
	Class
	Struct
	keywordEnd

	typeBeg
	Str
	Bool
	Char
	Float
	Float32
	Void
	Int
	Int32
	Int16
	Int8
	Uint32
	Uint16
	Uint8
	Uint
	typeEnd

	// literal kinds; Array, Dictionary and Cpp are reserved for later phases
	Integer
	Decimal
	String
	Array
	Dictionary
	Cpp
	Raw    // r"..." prefix marker
	Format // f"..." prefix marker

	Indent
	Dedent
	Newline
)

var names = [...]string{
	Illegal: "ILLEGAL",

	Plus:      "PLUS",
	Minus:     "MINUS",
	Slash:     "SLASH",
	Star:      "STAR",
	Caret:     "CARET",
	Percent:   "PERCENT",
	Greater:   "GREATER",
	Less:      "LESS",
	Ampersand: "AMPERSAND",
	Pipe:      "PIPE",
	Tilde:     "TILDE",
	Assign:    "ASSIGN",
	Bang:      "BANG",
	Colon:     "COLON",
	Dot:       "DOT",
	LParen:    "LPAREN",
	RParen:    "RPAREN",
	Comma:     "COMMA",
	LBracket:  "LBRACKET",
	RBracket:  "RBRACKET",
	LBrace:    "LBRACE",
	RBrace:    "RBRACE",

	Power:            "POWER",
	Equal:            "EQUAL",
	NotEqual:         "NOT_EQUAL",
	FloorDiv:         "FLOOR_DIV",
	GreaterEqual:     "GREATER_EQUAL",
	LessEqual:        "LESS_EQUAL",
	Increment:        "INCREMENT",
	Decrement:        "DECREMENT",
	Arrow:            "ARROW",
	ShiftRight:       "SHIFT_RIGHT",
	ShiftLeft:        "SHIFT_LEFT",
	FloorDivAssign:   "FLOOR_DIV_ASSIGN",
	PlusAssign:       "PLUS_ASSIGN",
	MinusAssign:      "MINUS_ASSIGN",
	StarAssign:       "STAR_ASSIGN",
	SlashAssign:      "SLASH_ASSIGN",
	PercentAssign:    "PERCENT_ASSIGN",
	ShiftRightAssign: "SHIFT_RIGHT_ASSIGN",
	ShiftLeftAssign:  "SHIFT_LEFT_ASSIGN",
	AmpersandAssign:  "AMPERSAND_ASSIGN",
	PipeAssign:       "PIPE_ASSIGN",
	CaretAssign:      "CARET_ASSIGN",

	Identifier: "IDENTIFIER",

	True:      "TRUE",
	False:     "FALSE",
	None:      "NONE",
	Const:     "CONST",
	Import:    "IMPORT",
	CppImport: "CPPIMPORT",
	HImport:   "HIMPORT",
	If:        "IF",
	Else:      "ELSE",
	Elif:      "ELIF",
	While:     "WHILE",
	For:       "FOR",
	Break:     "BREAK",
	Continue:  "CONTINUE",
	Match:     "MATCH",
	Extern:    "EXTERN",
	Case:      "CASE",
	Default:   "DEFAULT",
	Def:       "DEF",
	Pass:      "PASS",
	Return:    "RETURN",
	And:       "AND",
	Or:        "OR",
	Not:       "NOT",
	Is:        "IS",
	In:        "IN",
	CppCode:   "CPPCODE",
	Class:     "CLASS",
	Struct:    "STRUCT",

	Str:     "STR",
	Bool:    "BOOL",
	Char:    "CHAR",
	Float:   "FLOAT",
	Float32: "FLOAT32",
	Void:    "VOID",
	Int:     "INT",
	Int32:   "INT32",
	Int16:   "INT16",
	Int8:    "INT8",
	Uint32:  "UINT32",
	Uint16:  "UINT16",
	Uint8:   "UINT8",
	Uint:    "UINT",

	Integer:    "INTEGER",
	Decimal:    "DECIMAL",
	String:     "STRING",
	Array:      "ARRAY",
	Dictionary: "DICTIONARY",
	Cpp:        "CPP",
	Raw:        "RAW",
	Format:     "FORMAT",

	Indent:  "INDENT",
	Dedent:  "DEDENT",
	Newline: "NEWLINE",
}

// String returns the stable display name of the type
func (t Type) String() string {
	if t >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "ILLEGAL"
}

// Text returns the fixed spelling of operators and keywords and an empty
// string for types whose text varies (identifiers, literals, markers).
func (t Type) Text() string {
	if s, ok := spellings[t]; ok {
		return s
	}
	return ""
}

// IsOperator reports whether t is an operator or punctuation token
func (t Type) IsOperator() bool {
	return t > operatorBeg && t < operatorEnd
}

// IsKeyword reports whether t is a language keyword (not a type keyword)
func (t Type) IsKeyword() bool {
	return t > keywordBeg && t < keywordEnd
}

// IsTypeKeyword reports whether t names a primitive type
func (t Type) IsTypeKeyword() bool {
	return t > typeBeg && t < typeEnd
}

// IsAssignment reports whether t is = or a compound assignment operator
func (t Type) IsAssignment() bool {
	switch t {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, FloorDivAssign,
		PercentAssign, ShiftLeftAssign, ShiftRightAssign, AmpersandAssign,
		PipeAssign, CaretAssign:
		return true
	default:
		return false
	}
}

// IsReserved reports whether t starts a construct that has grammar space
// reserved but is not parsed yet (control flow, definitions, imports).
func (t Type) IsReserved() bool {
	switch t {
	case If, Elif, Else, While, For, Match, Case, Default, Def, Class, Struct,
		Import, CppImport, HImport, Extern, CppCode, Return, Break, Continue,
		Pass, Const:
		return true
	default:
		return false
	}
}

// IsStructural reports whether t is INDENT, DEDENT or NEWLINE
func (t Type) IsStructural() bool {
	return t == Indent || t == Dedent || t == Newline
}
