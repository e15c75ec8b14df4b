// Package lexer turns C source text into the token sequence consumed by the
// preprocessor. Newlines are kept as tokens because directives are line
// oriented.
package lexer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"modernc.org/mathutil"
	mtoken "modernc.org/token"

	"github.com/fwessels/aqcc/internal/token"
)

// FileReadError is returned when a source or include file cannot be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("no such file: '%s'", e.Path)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ReadFile lexes the file at path.
func ReadFile(path string) ([]*token.Token, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return nil, &FileReadError{Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}
	if fi.Size() > mathutil.MaxInt {
		return nil, &FileReadError{Path: path, Err: fmt.Errorf("%s: file too big", path)}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	return Lex(string(src), path)
}

type lexer struct {
	src  string
	pos  int
	file *mtoken.File
	cwd  string
	path string
	toks []*token.Token
}

// Lex tokenizes src. The result always ends with a newline token followed by
// a single EOF token.
func Lex(src, path string) ([]*token.Token, error) {
	l := &lexer{
		src:  src,
		file: mtoken.NewFile(path, len(src)+1),
		cwd:  filepath.Dir(path),
		path: path,
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

func (l *lexer) source(off int) token.Source {
	p := l.file.Position(l.file.Pos(off))
	return token.Source{Path: l.path, Cwd: l.cwd, Line: p.Line, Column: p.Column}
}

func (l *lexer) emit(kind token.Kind, off int) *token.Token {
	tok := &token.Token{Kind: kind, Src: l.source(off)}
	l.toks = append(l.toks, tok)
	return tok
}

func (l *lexer) errorf(off int, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", l.source(off), fmt.Sprintf(format, args...))
}

func (l *lexer) newline(off int) {
	l.emit(token.Newline, off)
	l.file.AddLine(off + 1)
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		start := l.pos
		switch {
		case ch == '\n':
			l.pos++
			l.newline(start)

		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v':
			l.pos++

		case ch == '\\' && strings.HasPrefix(l.src[l.pos:], "\\\n"):
			// line continuation
			l.pos += 2
			l.file.AddLine(l.pos)

		case strings.HasPrefix(l.src[l.pos:], "//"):
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}

		case strings.HasPrefix(l.src[l.pos:], "/*"):
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return l.errorf(start, "unterminated comment")
			}
			stop := l.pos + 2 + end + 2
			for i := l.pos; i < stop; i++ {
				if l.src[i] == '\n' {
					l.file.AddLine(i + 1)
				}
			}
			l.pos = stop

		case isIdentStart(ch):
			for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
				l.pos++
			}
			word := l.src[start:l.pos]
			if kind, ok := token.Keywords[word]; ok {
				l.emit(kind, start)
			} else {
				l.emit(token.Ident, start).Sval = word
			}

		case isDigit(ch):
			if err := l.number(); err != nil {
				return err
			}

		case ch == '\'':
			if err := l.char(); err != nil {
				return err
			}

		case ch == '"':
			if err := l.str(); err != nil {
				return err
			}

		default:
			if !l.punct() {
				return l.errorf(start, "unexpected character %q", ch)
			}
		}
	}
	if n := len(l.toks); n == 0 || l.toks[n-1].Kind != token.Newline {
		l.emit(token.Newline, len(l.src))
	}
	l.emit(token.EOF, len(l.src))
	return nil
}

func (l *lexer) number() error {
	start := l.pos
	base := 10
	if strings.HasPrefix(l.src[l.pos:], "0x") || strings.HasPrefix(l.src[l.pos:], "0X") {
		base = 16
		l.pos += 2
	} else if l.src[l.pos] == '0' {
		base = 8
	}
	val := 0
	digits := l.pos
	for l.pos < len(l.src) {
		d := digitValue(l.src[l.pos])
		if d < 0 || d >= base {
			break
		}
		if val > (mathutil.MaxInt-d)/base {
			return l.errorf(start, "integer literal out of range")
		}
		val = val*base + d
		l.pos++
	}
	if base == 16 && l.pos == digits {
		return l.errorf(start, "invalid hexadecimal literal")
	}
	if l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		return l.errorf(start, "invalid digit %q in integer literal", l.src[l.pos])
	}
	l.emit(token.IntLit, start).Ival = val
	return nil
}

func (l *lexer) char() error {
	start := l.pos
	l.pos++ // opening '
	if l.pos >= len(l.src) || l.src[l.pos] == '\n' || l.src[l.pos] == '\'' {
		return l.errorf(start, "invalid character literal")
	}
	ch := l.src[l.pos]
	l.pos++
	if ch == '\\' {
		if l.pos >= len(l.src) {
			return l.errorf(start, "unterminated character literal")
		}
		ch = UnescapeChar(l.src[l.pos])
		l.pos++
	}
	if l.pos >= len(l.src) || l.src[l.pos] != '\'' {
		return l.errorf(start, "unterminated character literal")
	}
	l.pos++
	l.emit(token.IntLit, start).Ival = int(ch)
	return nil
}

func (l *lexer) str() error {
	start := l.pos
	l.pos++ // opening "
	var b strings.Builder
	for {
		if l.pos >= len(l.src) || l.src[l.pos] == '\n' {
			return l.errorf(start, "unterminated string literal")
		}
		ch := l.src[l.pos]
		l.pos++
		if ch == '"' {
			break
		}
		if ch == '\\' {
			if l.pos >= len(l.src) {
				return l.errorf(start, "unterminated string literal")
			}
			ch = UnescapeChar(l.src[l.pos])
			l.pos++
		}
		b.WriteByte(ch)
	}
	l.emit(token.StringLit, start).Sval = b.String()
	return nil
}

func (l *lexer) punct() bool {
	rest := l.src[l.pos:]
	for _, p := range token.Puncts {
		if strings.HasPrefix(rest, p) {
			kind, _ := token.Punct(p)
			l.emit(kind, l.pos)
			l.pos += len(p)
			return true
		}
	}
	return false
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
