package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/fwessels/aqcc/internal/code"
)

// Dump writes seq as a listing that Read accepts.
func Dump(w io.Writer, seq code.Sequence) error {
	bw := bufio.NewWriter(w)
	for _, in := range seq {
		bw.WriteString(Format(in))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Format renders one listing line. Labels are flush left, everything else
// is indented by a tab.
func Format(in *code.Inst) string {
	switch {
	case in.Op == code.LABEL:
		return in.Sval + ":"
	case in.Op == code.ASCII:
		return "\t.ascii \"" + EscapeString(in.Sval) + "\""
	}

	mnemonic := in.Op.String()
	if in.Op.Sized() {
		mnemonic += in.Width().Suffix()
	}
	if len(in.Args) == 0 {
		return "\t" + mnemonic
	}
	args := make([]string, len(in.Args))
	for i, a := range in.Args {
		if imm, ok := a.(code.Imm); ok && in.Op.IsDirective() {
			args[i] = strconv.FormatInt(imm.Value, 10)
		} else {
			args[i] = a.String()
		}
	}
	return "\t" + mnemonic + " " + strings.Join(args, ", ")
}
