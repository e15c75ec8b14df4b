package code

import "fmt"

// Op is an instruction opcode or assembler directive.
type Op int

const (
	invalidOp Op = iota

	MOV
	MOVSBL
	MOVSLQ
	MOVZBL
	LEA
	PUSH
	POP
	ADD
	SUB
	IMUL
	IDIV
	CLTD
	CQTO
	NEG
	NOT
	AND
	OR
	XOR
	SAL
	SAR
	CMP
	SETE
	SETNE
	SETL
	SETLE
	SETG
	SETGE
	JMP
	JE
	JNE
	CALL
	RET
	LEAVE
	NOP

	LABEL

	// Directives
	TEXT
	DATA
	GLOBL
	ZERO
	ASCII
	BYTE
	LONG
	QUAD

	numOps
)

var opNames = [...]string{
	invalidOp: "<invalid>",
	MOV:       "mov",
	MOVSBL:    "movsbl",
	MOVSLQ:    "movslq",
	MOVZBL:    "movzbl",
	LEA:       "lea",
	PUSH:      "push",
	POP:       "pop",
	ADD:       "add",
	SUB:       "sub",
	IMUL:      "imul",
	IDIV:      "idiv",
	CLTD:      "cltd",
	CQTO:      "cqto",
	NEG:       "neg",
	NOT:       "not",
	AND:       "and",
	OR:        "or",
	XOR:       "xor",
	SAL:       "sal",
	SAR:       "sar",
	CMP:       "cmp",
	SETE:      "sete",
	SETNE:     "setne",
	SETL:      "setl",
	SETLE:     "setle",
	SETG:      "setg",
	SETGE:     "setge",
	JMP:       "jmp",
	JE:        "je",
	JNE:       "jne",
	CALL:      "call",
	RET:       "ret",
	LEAVE:     "leave",
	NOP:       "nop",
	LABEL:     "<label>",
	TEXT:      ".text",
	DATA:      ".data",
	GLOBL:     ".globl",
	ZERO:      ".zero",
	ASCII:     ".ascii",
	BYTE:      ".byte",
	LONG:      ".long",
	QUAD:      ".quad",
}

var _ = opNames[numOps-1]

func (op Op) String() string {
	if op >= 0 && op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Sized reports whether the mnemonic takes a b/w/l/q size suffix.
func (op Op) Sized() bool {
	switch op {
	case MOV, LEA, PUSH, POP, ADD, SUB, IMUL, IDIV, NEG, NOT, AND, OR, XOR, SAL, SAR, CMP:
		return true
	}
	return false
}

// IsDirective reports whether op is an assembler directive.
func (op Op) IsDirective() bool {
	return op >= TEXT && op < numOps
}

// IsJump reports whether op transfers control to a label operand.
func (op Op) IsJump() bool {
	return op == JMP || op == JE || op == JNE
}

var mnemonics = map[string]Op{}

func init() {
	for op := MOV; op < numOps; op++ {
		if op == LABEL {
			continue
		}
		mnemonics[opNames[op]] = op
	}
}

// ParseMnemonic resolves an AT&T mnemonic such as "movq" or ".globl". For a
// suffixed mnemonic the suffix width is returned as well.
func ParseMnemonic(s string) (Op, Width, bool) {
	if op, ok := mnemonics[s]; ok {
		return op, 0, true
	}
	if n := len(s); n > 1 {
		var w Width
		switch s[n-1] {
		case 'b':
			w = 1
		case 'w':
			w = 2
		case 'l':
			w = 4
		case 'q':
			w = 8
		default:
			return invalidOp, 0, false
		}
		if op, ok := mnemonics[s[:n-1]]; ok && op.Sized() {
			return op, w, true
		}
	}
	return invalidOp, 0, false
}
