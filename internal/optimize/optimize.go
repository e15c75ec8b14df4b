// Package optimize implements a peephole pass over generated code.
package optimize

import "github.com/fwessels/aqcc/internal/code"

// Run applies the peephole rules to seq until none of them fires and returns
// the result. seq itself is not modified.
func Run(seq code.Sequence) code.Sequence {
	out := append(code.Sequence(nil), seq...)
	for {
		next, changed := pass(out)
		if !changed {
			return next
		}
		out = next
	}
}

func pass(seq code.Sequence) (code.Sequence, bool) {
	out := make(code.Sequence, 0, len(seq))
	changed := false
	for i := 0; i < len(seq); i++ {
		in := seq[i]
		var next *code.Inst
		if i+1 < len(seq) {
			next = seq[i+1]
		}

		switch {
		case isSelfMove(in):
			changed = true
			continue

		case in.Op == code.PUSH && next != nil && next.Op == code.POP &&
			oneReg(in) && oneReg(next):
			changed = true
			i++
			if src, dst := in.Args[0].(code.Reg), next.Args[0].(code.Reg); src != dst {
				out = append(out, code.New(code.MOV, src, dst))
			}
			continue

		case in.Op == code.JMP && next != nil && next.Op == code.LABEL && jumpsTo(in, next.Sval):
			changed = true
			continue
		}

		out = append(out, in)

		if in.Op == code.JMP || in.Op == code.RET {
			j := i + 1
			for j < len(seq) && seq[j].Op != code.LABEL && !seq[j].Op.IsDirective() {
				j++
			}
			if j > i+1 {
				changed = true
				i = j - 1
			}
		}
	}
	return out, changed
}

// isSelfMove matches mov R, R. A 32-bit move is kept because it clears the
// upper half of the register.
func isSelfMove(in *code.Inst) bool {
	if in.Op != code.MOV || len(in.Args) != 2 {
		return false
	}
	src, ok := in.Args[0].(code.Reg)
	if !ok {
		return false
	}
	dst, ok := in.Args[1].(code.Reg)
	return ok && code.SameRegister(src, dst) && src.Width == dst.Width && src.Width != 4
}

func oneReg(in *code.Inst) bool {
	return len(in.Args) == 1 && code.IsRegister(in.Args[0])
}

func jumpsTo(in *code.Inst, name string) bool {
	if !in.Op.IsJump() || len(in.Args) != 1 {
		return false
	}
	l, ok := in.Args[0].(code.Label)
	return ok && l.Name == name
}
