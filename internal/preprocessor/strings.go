package preprocessor

import "github.com/fwessels/aqcc/internal/token"

// ConcatStringLiterals joins runs of adjacent string literals, as in
// "foo" "bar". The joined token keeps the location of the first literal.
func ConcatStringLiterals(toks []*token.Token) []*token.Token {
	out := make([]*token.Token, 0, len(toks))
	for _, tok := range toks {
		n := len(out)
		if tok.Kind == token.StringLit && n > 0 && out[n-1].Kind == token.StringLit {
			joined := out[n-1].Clone()
			joined.Sval += tok.Sval
			out[n-1] = joined
			continue
		}
		out = append(out, tok)
	}
	return out
}
