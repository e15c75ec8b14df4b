// Package preprocessor expands #define macros, splices #include files and
// drops the inactive branches of #ifdef/#ifndef, producing a flat token
// sequence without directives or newlines.
package preprocessor

import (
	"fmt"
	"path/filepath"

	"github.com/fwessels/aqcc/internal/lexer"
	"github.com/fwessels/aqcc/internal/token"
	"github.com/fwessels/aqcc/internal/tokenseq"
)

// FileReader returns the tokens of the file at path, ending in EOF.
type FileReader func(path string) ([]*token.Token, error)

// ---------------- Preprocessor ----------------

type Preprocessor struct {
	defines *Defines
	read    FileReader
	in      *tokenseq.Stream
}

// NewPreprocessor returns a preprocessor that records macros in defines and
// reads included files with read. A nil read uses lexer.ReadFile.
func NewPreprocessor(defines *Defines, read FileReader) *Preprocessor {
	if defines == nil {
		defines = NewDefines()
	}
	if read == nil {
		read = lexer.ReadFile
	}
	return &Preprocessor{defines: defines, read: read}
}

func (p *Preprocessor) Defines() *Defines { return p.defines }

// Process preprocesses toks. The output ends with exactly one EOF token.
func (p *Preprocessor) Process(toks []*token.Token) ([]*token.Token, error) {
	var origin tokenseq.Origin
	if len(toks) > 0 && toks[0].Src.Path != "" {
		origin = tokenseq.File(filepath.Clean(toks[0].Src.Path))
	}
	p.in = tokenseq.New(origin, toks)

	out := make([]*token.Token, 0, len(toks))
	for {
		tok := p.in.Pop()
		switch tok.Kind {
		case token.EOF:
			return append(out, tok), nil

		case token.Newline:
			continue

		case token.Hash:
			if err := p.handleDirective(); err != nil {
				return nil, err
			}
			continue

		case token.Ident:
			if tok.Is(vaArgName) {
				call, err := p.rewriteVaArg(tok)
				if err != nil {
					return nil, err
				}
				out = append(out, call...)
				continue
			}
			if body, ok := p.defines.Lookup(tok.Sval); ok {
				if err := p.pushExpansion(tok, body); err != nil {
					return nil, err
				}
				continue
			}
		}
		out = append(out, tok)
	}
}

// pushExpansion splices the replacement of the macro named by tok so that it
// is rescanned before the rest of the input.
func (p *Preprocessor) pushExpansion(tok *token.Token, body []*token.Token) error {
	origin := tokenseq.Macro(tok.Sval)
	if p.in.Within(origin) {
		return &RecursiveMacroError{Name: tok.Sval, Src: tok.Src}
	}
	p.in.Splice(origin, body)
	return nil
}

// handleDirective runs the directive following a '#'.
func (p *Preprocessor) handleDirective() error {
	tok := p.in.Peek()
	switch tok.Kind {
	case token.KwElse:
		// end of a taken branch: drop the #else part
		p.in.Pop()
		return p.skipUntilElseOrEndif()
	case token.Ident:
		p.in.Pop()
	default:
		// null directive
		return nil
	}

	switch tok.Sval {
	case "define":
		return p.define()
	case "include":
		return p.include()
	case "ifdef", "ifndef":
		return p.ifdef(tok.Sval)
	case "endif":
		return nil
	default:
		return &InvalidDirectiveError{Name: tok.Sval, Src: tok.Src}
	}
}

func (p *Preprocessor) define() error {
	name, err := p.in.Expect(token.Ident)
	if err != nil {
		return err
	}
	var body []*token.Token
	for !p.in.Match(token.Newline) && !p.in.Match(token.EOF) {
		body = append(body, p.in.Pop())
	}
	if _, err := p.in.Expect(token.Newline); err != nil {
		return err
	}
	return p.defines.Define(name.Sval, body)
}

// maxIncludeDepth bounds the files being read at once, including the main
// file. Headers may include each other when guarded.
const maxIncludeDepth = 200

func (p *Preprocessor) include() error {
	tok, err := p.in.Expect(token.StringLit)
	if err != nil {
		return err
	}
	if _, err := p.in.Expect(token.Newline); err != nil {
		return err
	}

	path := filepath.Join(tok.Src.Cwd, tok.Sval)
	if p.in.Files() >= maxIncludeDepth {
		return fmt.Errorf("%s: #include nested too deeply at %q", tok.Src, path)
	}
	toks, err := p.read(path)
	if err != nil {
		return err
	}
	if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
		toks = toks[:n-1]
	}
	p.in.Splice(tokenseq.File(path), toks)
	return nil
}

func (p *Preprocessor) ifdef(keyword string) error {
	name, err := p.in.Expect(token.Ident)
	if err != nil {
		return err
	}
	if _, err := p.in.Expect(token.Newline); err != nil {
		return err
	}
	if p.defines.Defined(name.Sval) == (keyword == "ifdef") {
		return nil
	}
	return p.skipUntilElseOrEndif()
}

// skipUntilElseOrEndif discards tokens up to the #endif closing the current
// conditional, or up to its #else. Nested conditionals are skipped whole;
// an #else only matches at depth 1.
func (p *Preprocessor) skipUntilElseOrEndif() error {
	depth := 1
	for {
		tok := p.in.Pop()
		if tok.Kind == token.EOF {
			return &token.UnexpectedTokenError{Expected: "#endif or #else", Got: tok}
		}
		if tok.Kind != token.Hash {
			continue
		}

		if ident, ok := p.in.PopIf(token.Ident); ok {
			switch ident.Sval {
			case "ifdef", "ifndef":
				depth++
			case "endif":
				depth--
				if depth == 0 {
					_, err := p.in.Expect(token.Newline)
					return err
				}
			}
		} else if _, ok := p.in.PopIf(token.KwElse); ok && depth == 1 {
			return nil
		}
	}
}

func (p *Preprocessor) skipNewlines() {
	for p.in.Match(token.Newline) {
		p.in.Pop()
	}
}
