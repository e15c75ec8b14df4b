package lexer

var unescapes = map[byte]byte{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'0': 0,
	'a': '\a',
	'b': '\b',
	'v': '\v',
	'f': '\f',
}

// UnescapeChar returns the byte written as `\c` in a literal. Characters
// without a special meaning stand for themselves, so `\\` and `\"` work.
func UnescapeChar(c byte) byte {
	if u, ok := unescapes[c]; ok {
		return u
	}
	return c
}
