package preprocessor

import "github.com/fwessels/aqcc/internal/token"

const vaArgName = "__builtin_va_arg"

// rewriteVaArg turns `__builtin_va_arg(expr, int)` into
// `__builtin_va_arg_int(expr)` and `__builtin_va_arg(expr, char *)` into
// `__builtin_va_arg_charp(expr)`. No other argument type is accepted.
func (p *Preprocessor) rewriteVaArg(tok *token.Token) ([]*token.Token, error) {
	call := tok.Clone()
	call.Sval = vaArgName + "_int"
	out := []*token.Token{call}

	p.skipNewlines()
	lparen, err := p.in.Expect(token.LParen)
	if err != nil {
		return nil, err
	}
	out = append(out, lparen)

	p.skipNewlines()
	for !p.in.Match(token.Comma) {
		arg := p.in.Pop()
		switch arg.Kind {
		case token.EOF:
			return nil, token.Unexpected(token.Comma, arg)
		case token.Newline:
			continue
		}
		out = append(out, arg)
	}
	p.in.Pop()

	p.skipNewlines()
	if _, ok := p.in.PopIf(token.KwChar); ok {
		p.skipNewlines()
		if _, err := p.in.Expect(token.Star); err != nil {
			return nil, err
		}
		call.Sval = vaArgName + "_charp"
	} else if _, err := p.in.Expect(token.KwInt); err != nil {
		return nil, err
	}

	p.skipNewlines()
	rparen, err := p.in.Expect(token.RParen)
	if err != nil {
		return nil, err
	}
	return append(out, rparen), nil
}
