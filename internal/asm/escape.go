package asm

import "strings"

var escapes = map[byte]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	0:    `\000`,
	'\a': `\a`,
	'\b': `\b`,
	'\v': `\v`,
	'\f': `\f`,
	'"':  `\"`,
	'\\': `\\`,
}

// EscapeString quotes the bytes of s for an .ascii directive.
func EscapeString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if e, ok := escapes[s[i]]; ok {
			sb.WriteString(e)
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
