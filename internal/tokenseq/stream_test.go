package tokenseq

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fwessels/aqcc/internal/token"
)

func idents(names ...string) []*token.Token {
	toks := make([]*token.Token, len(names))
	for i, n := range names {
		toks[i] = &token.Token{Kind: token.Ident, Sval: n}
	}
	return toks
}

func drainNames(s *Stream) []string {
	var names []string
	for !s.Match(token.EOF) {
		names = append(names, s.Pop().Sval)
	}
	return names
}

func TestEOFForever(t *testing.T) {
	s := New(Origin{}, append(idents("a"), &token.Token{Kind: token.EOF}))
	require.Equal(t, token.Ident, s.PeekKind())
	require.Equal(t, "a", s.Pop().Sval)
	eof := s.Pop()
	require.Equal(t, token.EOF, eof.Kind)
	for i := 0; i < 3; i++ {
		require.Same(t, eof, s.Pop())
		require.Equal(t, token.EOF, s.PeekKind())
	}
}

func TestEOFWithoutSentinel(t *testing.T) {
	s := New(Origin{}, nil)
	require.Equal(t, token.EOF, s.Pop().Kind)
	require.Equal(t, token.EOF, s.PeekKind())
}

func TestZeroStreamPanics(t *testing.T) {
	var s Stream
	require.Panics(t, func() { s.Pop() })
}

func TestPopIfAndExpect(t *testing.T) {
	s := New(Origin{}, []*token.Token{
		{Kind: token.Ident, Sval: "x"},
		{Kind: token.Comma, Src: token.Source{Path: "f.c", Line: 3, Column: 7}},
	})
	_, ok := s.PopIf(token.Comma)
	require.False(t, ok)
	require.True(t, s.Match(token.Ident))

	tok, ok := s.PopIf(token.Ident)
	require.True(t, ok)
	require.Equal(t, "x", tok.Sval)

	_, err := s.Expect(token.RParen)
	var unexp *token.UnexpectedTokenError
	require.True(t, errors.As(err, &unexp))
	require.Equal(t, "f.c:3:7: unexpected token: expect ')', got ','", err.Error())
	require.Equal(t, token.EOF, s.PeekKind())
}

func TestSpliceOrder(t *testing.T) {
	s := New(Origin{}, idents("a", "b"))
	require.Equal(t, "a", s.Pop().Sval)
	s.SpliceFront(idents("x", "y"))
	require.Equal(t, "x", s.Pop().Sval)
	// nested splice, read before the rest of the outer one
	s.SpliceFront(idents("p", "q"))

	want := []string{"p", "q", "y", "b"}
	if diff := cmp.Diff(want, drainNames(s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSpliceEmpty(t *testing.T) {
	s := New(Origin{}, idents("a", "b"))
	s.Pop()
	s.SpliceFront(nil)
	require.Equal(t, "b", s.Pop().Sval)
}

func TestWithin(t *testing.T) {
	s := New(File("main.c"), idents("A", "z"))
	require.True(t, s.Within(File("main.c")))
	require.False(t, s.Within(Macro("main.c")))
	require.False(t, s.Within(Origin{}))

	s.Pop()
	s.Splice(Macro("A"), idents("B"))
	s.Pop()
	// exhausted, but still the frame that produced the last token
	require.True(t, s.Within(Macro("A")))
	require.Equal(t, 2, s.Depth())

	s.Splice(Macro("B"), idents("C"))
	s.Pop()
	require.True(t, s.Within(Macro("A")))
	require.True(t, s.Within(Macro("B")))

	require.Equal(t, "z", s.Pop().Sval)
	require.False(t, s.Within(Macro("A")))
	require.False(t, s.Within(Macro("B")))
	require.Equal(t, 1, s.Depth())
}

func TestFiles(t *testing.T) {
	s := New(File("main.c"), idents("a", "b"))
	require.Equal(t, 1, s.Files())
	s.Pop()
	s.Splice(Macro("M"), idents("m"))
	s.Splice(File("a.h"), idents("x"))
	require.Equal(t, 2, s.Files())
	require.Equal(t, 3, s.Depth())

	require.Equal(t, "x", s.Pop().Sval)
	require.Equal(t, 2, s.Files())
	require.Equal(t, "m", s.Pop().Sval)
	require.Equal(t, 1, s.Files())
	require.Equal(t, []string{"b"}, drainNames(s))
	require.Equal(t, 0, s.Files())
}
