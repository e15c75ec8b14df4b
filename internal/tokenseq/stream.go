// Package tokenseq provides a pull-based cursor over token sequences that
// supports splicing new sequences in front of the pending input.
package tokenseq

import "github.com/fwessels/aqcc/internal/token"

type originKind int

const (
	noOrigin originKind = iota
	macroOrigin
	fileOrigin
)

// Origin names where a spliced sequence came from.
type Origin struct {
	kind originKind
	name string
}

// Macro is the origin of a macro's replacement tokens.
func Macro(name string) Origin { return Origin{kind: macroOrigin, name: name} }

// File is the origin of the tokens of an included file.
func File(path string) Origin { return Origin{kind: fileOrigin, name: path} }

func (o Origin) String() string {
	switch o.kind {
	case macroOrigin:
		return "macro " + o.name
	case fileOrigin:
		return "file " + o.name
	}
	return "input"
}

type frame struct {
	toks   []*token.Token
	pos    int
	origin Origin
}

// Stream is a stack of frames. The top frame is read first; a frame is
// discarded once it is exhausted and the next token is requested, so the
// frame that produced the most recently popped token is still on the stack.
type Stream struct {
	frames []*frame
	eof    *token.Token
}

// New returns a stream reading toks. Once every token is consumed the stream
// keeps returning an EOF token.
func New(origin Origin, toks []*token.Token) *Stream {
	s := &Stream{eof: &token.Token{Kind: token.EOF}}
	if n := len(toks); n > 0 {
		if last := toks[n-1]; last.Kind == token.EOF {
			s.eof = last
		} else {
			s.eof.Src = last.Src
		}
	}
	s.frames = []*frame{{toks: toks, origin: origin}}
	return s
}

func (s *Stream) top() *frame {
	if s.eof == nil {
		panic("tokenseq: use of a stream without a token sequence")
	}
	for n := len(s.frames); n > 0; n = len(s.frames) {
		f := s.frames[n-1]
		if f.pos < len(f.toks) {
			return f
		}
		s.frames = s.frames[:n-1]
	}
	return nil
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() *token.Token {
	f := s.top()
	if f == nil {
		return s.eof
	}
	return f.toks[f.pos]
}

// PeekKind returns the kind of the next token.
func (s *Stream) PeekKind() token.Kind {
	return s.Peek().Kind
}

// Pop consumes and returns the next token.
func (s *Stream) Pop() *token.Token {
	f := s.top()
	if f == nil {
		return s.eof
	}
	tok := f.toks[f.pos]
	f.pos++
	return tok
}

// Match reports whether the next token has the given kind.
func (s *Stream) Match(kind token.Kind) bool {
	return s.PeekKind() == kind
}

// PopIf consumes the next token only if it has the given kind.
func (s *Stream) PopIf(kind token.Kind) (*token.Token, bool) {
	if !s.Match(kind) {
		return nil, false
	}
	return s.Pop(), true
}

// Expect consumes the next token and fails if it is not of the given kind.
func (s *Stream) Expect(kind token.Kind) (*token.Token, error) {
	tok := s.Pop()
	if tok.Kind != kind {
		return nil, token.Unexpected(kind, tok)
	}
	return tok, nil
}

// SpliceFront makes toks the next tokens to be read, ahead of everything
// still pending.
func (s *Stream) SpliceFront(toks []*token.Token) {
	s.Splice(Origin{}, toks)
}

// Splice is SpliceFront with the origin recorded for Within.
func (s *Stream) Splice(origin Origin, toks []*token.Token) {
	if s.eof == nil {
		panic("tokenseq: use of a stream without a token sequence")
	}
	s.frames = append(s.frames, &frame{toks: toks, origin: origin})
}

// Within reports whether a sequence spliced with origin is still being read.
func (s *Stream) Within(origin Origin) bool {
	if origin.kind == noOrigin {
		return false
	}
	for _, f := range s.frames {
		if f.origin == origin {
			return true
		}
	}
	return false
}

// Files returns the number of frames on the stack that were spliced with a
// File origin.
func (s *Stream) Files() int {
	n := 0
	for _, f := range s.frames {
		if f.origin.kind == fileOrigin {
			n++
		}
	}
	return n
}

// Depth returns the number of frames on the stack.
func (s *Stream) Depth() int {
	return len(s.frames)
}
