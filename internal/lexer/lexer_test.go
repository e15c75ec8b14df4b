package lexer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fwessels/aqcc/internal/token"
)

func kinds(toks []*token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"empty", "", []token.Kind{token.Newline, token.EOF}},
		{"directive", "#define A 1\n", []token.Kind{token.Hash, token.Ident, token.Ident, token.IntLit, token.Newline, token.EOF}},
		{"missing final newline", "x", []token.Kind{token.Ident, token.Newline, token.EOF}},
		{"keywords", "int char else", []token.Kind{token.KwInt, token.KwChar, token.KwElse, token.Newline, token.EOF}},
		{"longest punct", "a<<=b->c...", []token.Kind{token.Ident, token.ShlAssign, token.Ident, token.Arrow, token.Ident, token.Ellipsis, token.Newline, token.EOF}},
		{"comments", "a // x\n/* y\n z */ b", []token.Kind{token.Ident, token.Newline, token.Ident, token.Newline, token.EOF}},
		{"continuation", "#define A 1 \\\n 2\n", []token.Kind{token.Hash, token.Ident, token.Ident, token.IntLit, token.IntLit, token.Newline, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Lex(tt.input, "test.c")
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}
			if diff := cmp.Diff(tt.want, kinds(toks)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexValues(t *testing.T) {
	toks, err := Lex(`x 42 0x1f 017 'a' '\n' "hi\t\"there\""`, "test.c")
	require.NoError(t, err)
	require.Len(t, toks, 9)
	require.Equal(t, "x", toks[0].Sval)
	require.Equal(t, 42, toks[1].Ival)
	require.Equal(t, 31, toks[2].Ival)
	require.Equal(t, 15, toks[3].Ival)
	require.Equal(t, int('a'), toks[4].Ival)
	require.Equal(t, int('\n'), toks[5].Ival)
	require.Equal(t, token.StringLit, toks[6].Kind)
	require.Equal(t, "hi\t\"there\"", toks[6].Sval)
}

func TestLexPositions(t *testing.T) {
	toks, err := Lex("int\n  foo;\n", "dir/test.c")
	require.NoError(t, err)
	require.Equal(t, token.Source{Path: "dir/test.c", Cwd: "dir", Line: 1, Column: 1}, toks[0].Src)
	require.Equal(t, token.Source{Path: "dir/test.c", Cwd: "dir", Line: 2, Column: 3}, toks[2].Src)
	require.Equal(t, 2, toks[3].Src.Line)
	require.Equal(t, 6, toks[3].Src.Column)
}

func TestBadLex(t *testing.T) {
	tests := []struct {
		input string
		error string
	}{
		{`"abc`, "test.c:1:1: unterminated string literal"},
		{"/* abc", "test.c:1:1: unterminated comment"},
		{"''", "test.c:1:1: invalid character literal"},
		{"a @", "test.c:1:3: unexpected character '@'"},
		{"0x", "test.c:1:1: invalid hexadecimal literal"},
		{"09", "test.c:1:1: invalid digit '9' in integer literal"},
		{"x = 99999999999999999999;", "test.c:1:5: integer literal out of range"},
		{"0x10000000000000000", "test.c:1:1: integer literal out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.error, func(t *testing.T) {
			_, err := Lex(tt.input, "test.c")
			if err == nil {
				t.Fatalf("expected error %q", tt.error)
			}
			if diff := cmp.Diff(tt.error, err.Error()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0644))

	toks, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, dir, toks[0].Src.Cwd)

	_, err = ReadFile(filepath.Join(dir, "missing.c"))
	var rerr *FileReadError
	require.True(t, errors.As(err, &rerr))
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.True(t, strings.HasPrefix(err.Error(), "no such file: '"))
}
