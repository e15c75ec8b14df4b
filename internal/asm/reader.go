// Package asm reads and writes AT&T syntax x86-64 assembly listings in the
// subset produced by the code generator.
package asm

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwessels/aqcc/internal/code"
	"github.com/fwessels/aqcc/internal/lexer"
)

// SyntaxError reports a line that could not be read.
type SyntaxError struct {
	Path string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// ReadFile reads the listing at path.
func ReadFile(path string) (code.Sequence, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &lexer.FileReadError{Path: path, Err: err}
	}
	return Read(string(buf), path)
}

// Read parses src, one label, instruction or directive per line.
func Read(src, path string) (code.Sequence, error) {
	var seq code.Sequence
	scanner := bufio.NewScanner(strings.NewReader(src))
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}
		in, err := parseLine(line)
		if err != nil {
			return nil, &SyntaxError{Path: path, Line: lineno, Msg: err.Error()}
		}
		seq = append(seq, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

func stripComment(line string) string {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case '#':
			if !quoted {
				return line[:i]
			}
		}
	}
	return line
}

func parseLine(line string) (*code.Inst, error) {
	if strings.HasSuffix(line, ":") && strings.IndexFunc(line, unicode.IsSpace) < 0 {
		return code.NewLabel(strings.TrimSuffix(line, ":")), nil
	}

	mnemonic, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		mnemonic, rest = line[:i], strings.TrimSpace(line[i:])
	}
	op, suffix, ok := code.ParseMnemonic(mnemonic)
	if !ok {
		return nil, fmt.Errorf("unknown mnemonic '%s'", mnemonic)
	}

	if op == code.ASCII {
		s, err := unquote(rest)
		if err != nil {
			return nil, err
		}
		return &code.Inst{Op: op, Sval: s}, nil
	}

	in := code.New(op)
	if rest != "" {
		for _, field := range splitOperands(rest) {
			arg, err := parseOperand(strings.TrimSpace(field), op.IsDirective())
			if err != nil {
				return nil, err
			}
			in.Args = append(in.Args, arg)
		}
	}
	sizeMemory(in, suffix)
	return in, nil
}

// sizeMemory gives untyped memory operands the width of the mnemonic
// suffix, or failing that of the first register operand.
func sizeMemory(in *code.Inst, suffix code.Width) {
	w := suffix
	if w == 0 {
		for _, a := range in.Args {
			if r, ok := a.(code.Reg); ok {
				w = r.Width
				break
			}
		}
	}
	for i, a := range in.Args {
		if m, ok := a.(code.Mem); ok && m.Width == 0 {
			m.Width = w
			in.Args[i] = m
		}
	}
}

func splitOperands(s string) []string {
	var fields []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				fields = append(fields, s[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, s[start:])
}

func parseOperand(s string, directive bool) (code.Code, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing operand")
	case s[0] == '%':
		r, ok := code.Lookup(s)
		if !ok {
			return nil, fmt.Errorf("unknown register '%s'", s)
		}
		return r, nil
	case s[0] == '$':
		v, err := strconv.ParseInt(s[1:], 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid immediate '%s'", s)
		}
		return code.Imm{Value: v}, nil
	case strings.HasSuffix(s, ")"):
		return parseMemory(s)
	}
	if directive {
		if v, err := strconv.ParseInt(s, 0, 64); err == nil {
			return code.Imm{Value: v}, nil
		}
	}
	if !isSymbol(s) {
		return nil, fmt.Errorf("invalid operand '%s'", s)
	}
	return code.Label{Name: s}, nil
}

func parseMemory(s string) (code.Code, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil, fmt.Errorf("invalid memory operand '%s'", s)
	}
	base, ok := code.Lookup(s[open+1 : len(s)-1])
	if !ok {
		return nil, fmt.Errorf("unknown register '%s'", s[open+1:len(s)-1])
	}
	m := code.Mem{Base: base}
	prefix := s[:open]
	if prefix == "" {
		return m, nil
	}
	if d, err := strconv.Atoi(prefix); err == nil {
		m.Disp = d
		return m, nil
	}
	sym := prefix
	if i := strings.LastIndexAny(prefix, "+-"); i > 0 {
		d, err := strconv.Atoi(prefix[i:])
		if err != nil {
			return nil, fmt.Errorf("invalid displacement in '%s'", s)
		}
		sym, m.Disp = prefix[:i], d
	}
	if !isSymbol(sym) {
		return nil, fmt.Errorf("invalid memory operand '%s'", s)
	}
	m.Sym = sym
	return m, nil
}

func isSymbol(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == '_' || c == '.' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got '%s'", s)
	}
	s = s[1 : len(s)-1]
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			if isOctal(s[i]) {
				v, n := 0, 0
				for ; n < 3 && i+n < len(s) && isOctal(s[i+n]); n++ {
					v = v*8 + int(s[i+n]-'0')
				}
				if v > 0xff {
					return "", fmt.Errorf("octal escape out of range in '\"%s\"'", s)
				}
				sb.WriteByte(byte(v))
				i += n - 1
				continue
			}
			sb.WriteByte(lexer.UnescapeChar(s[i]))
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String(), nil
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }
