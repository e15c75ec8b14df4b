package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the category of a lexed token.
type Kind int

const (
	EOF Kind = iota // sentinel: end of input
	Newline
	Ident
	IntLit
	StringLit
	Hash // '#', the directive marker

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Semicolon
	Colon
	Question
	Dot
	Arrow
	Ellipsis
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde
	Not
	Assign
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	AndAnd
	OrOr
	Shl
	Shr
	Inc
	Dec
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AmpAssign
	PipeAssign
	CaretAssign
	ShlAssign
	ShrAssign

	// Keywords
	KwInt
	KwChar
	KwVoid
	KwStruct
	KwUnion
	KwEnum
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwReturn
	KwBreak
	KwContinue
	KwSwitch
	KwCase
	KwDefault
	KwGoto
	KwSizeof
	KwTypedef
	KwExtern
	KwStatic
	KwConst

	numKinds
)

var kindNames = [...]string{
	EOF:           "EOF",
	Newline:       "newline",
	Ident:         "identifier",
	IntLit:        "integer",
	StringLit:     "string literal",
	Hash:          "'#'",
	LParen:        "'('",
	RParen:        "')'",
	LBrace:        "'{'",
	RBrace:        "'}'",
	LBracket:      "'['",
	RBracket:      "']'",
	Comma:         "','",
	Semicolon:     "';'",
	Colon:         "':'",
	Question:      "'?'",
	Dot:           "'.'",
	Arrow:         "'->'",
	Ellipsis:      "'...'",
	Plus:          "'+'",
	Minus:         "'-'",
	Star:          "'*'",
	Slash:         "'/'",
	Percent:       "'%'",
	Amp:           "'&'",
	Pipe:          "'|'",
	Caret:         "'^'",
	Tilde:         "'~'",
	Not:           "'!'",
	Assign:        "'='",
	Lt:            "'<'",
	Gt:            "'>'",
	Le:            "'<='",
	Ge:            "'>='",
	Eq:            "'=='",
	Ne:            "'!='",
	AndAnd:        "'&&'",
	OrOr:          "'||'",
	Shl:           "'<<'",
	Shr:           "'>>'",
	Inc:           "'++'",
	Dec:           "'--'",
	PlusAssign:    "'+='",
	MinusAssign:   "'-='",
	StarAssign:    "'*='",
	SlashAssign:   "'/='",
	PercentAssign: "'%='",
	AmpAssign:     "'&='",
	PipeAssign:    "'|='",
	CaretAssign:   "'^='",
	ShlAssign:     "'<<='",
	ShrAssign:     "'>>='",
	KwInt:         "'int'",
	KwChar:        "'char'",
	KwVoid:        "'void'",
	KwStruct:      "'struct'",
	KwUnion:       "'union'",
	KwEnum:        "'enum'",
	KwIf:          "'if'",
	KwElse:        "'else'",
	KwWhile:       "'while'",
	KwDo:          "'do'",
	KwFor:         "'for'",
	KwReturn:      "'return'",
	KwBreak:       "'break'",
	KwContinue:    "'continue'",
	KwSwitch:      "'switch'",
	KwCase:        "'case'",
	KwDefault:     "'default'",
	KwGoto:        "'goto'",
	KwSizeof:      "'sizeof'",
	KwTypedef:     "'typedef'",
	KwExtern:      "'extern'",
	KwStatic:      "'static'",
	KwConst:       "'const'",
}

// the array literal above must cover every kind
var _ = kindNames[numKinds-1]

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Text returns the source spelling of punctuation and keyword kinds, or ""
// for kinds whose spelling depends on the token value.
func (k Kind) Text() string {
	switch k {
	case EOF, Newline, Ident, IntLit, StringLit:
		return ""
	}
	s := k.String()
	if len(s) >= 2 && s[0] == '\'' {
		return s[1 : len(s)-1]
	}
	return ""
}

// Keywords maps reserved words to their kinds.
var Keywords = map[string]Kind{}

// Puncts lists every punctuator spelling, longest first, so a scanner can
// take the first prefix match.
var Puncts []string

var punctKinds = map[string]Kind{}

func init() {
	for k := Hash; k < numKinds; k++ {
		text := k.Text()
		if k >= KwInt {
			Keywords[text] = k
			continue
		}
		punctKinds[text] = k
		Puncts = append(Puncts, text)
	}
	sort.SliceStable(Puncts, func(i, j int) bool { return len(Puncts[i]) > len(Puncts[j]) })
}

// Punct returns the kind spelled by s.
func Punct(s string) (Kind, bool) {
	k, ok := punctKinds[s]
	return k, ok
}

// Source is the location a token was read from. Cwd is the directory of
// Path, used to resolve includes relative to the including file.
type Source struct {
	Path   string
	Cwd    string
	Line   int
	Column int
}

func (s Source) String() string {
	return fmt.Sprintf("%s:%d:%d", s.Path, s.Line, s.Column)
}

// Token is a single lexical unit.
type Token struct {
	Kind Kind
	Sval string // identifiers and string literals
	Ival int    // integer and character literals
	Src  Source
}

// Clone returns a copy of t that can be modified freely.
func (t *Token) Clone() *Token {
	c := *t
	return &c
}

// Is reports whether t is an identifier spelled name.
func (t *Token) Is(name string) bool {
	return t.Kind == Ident && t.Sval == name
}

// String returns the source spelling of the token.
func (t *Token) String() string {
	switch t.Kind {
	case EOF:
		return ""
	case Newline:
		return "\n"
	case Ident:
		return t.Sval
	case IntLit:
		return strconv.Itoa(t.Ival)
	case StringLit:
		return strconv.Quote(t.Sval)
	}
	return t.Kind.Text()
}
