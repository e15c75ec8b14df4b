// Package code is the x86-64 instruction model shared by the code
// generator, the optimizer and the emitter. A Code is either an instruction
// (*Inst) or one of its operands: a register, a memory reference, an
// immediate or a label.
package code

import (
	"fmt"
	"strings"
)

// Class is the storage class of a Code.
type Class int

const (
	ClassInst Class = iota
	ClassReg
	ClassMem
	ClassImm
	ClassLabel
)

func (c Class) String() string {
	switch c {
	case ClassInst:
		return "instruction"
	case ClassReg:
		return "register"
	case ClassMem:
		return "memory"
	case ClassImm:
		return "immediate"
	case ClassLabel:
		return "label"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Code is implemented by *Inst, Reg, Mem, Imm and Label only.
type Code interface {
	Class() Class
	String() string
}

// Inst is an instruction, a label definition (Op == LABEL, name in Sval) or
// an assembler directive.
type Inst struct {
	Op   Op
	Args []Code
	Sval string // label name, or .ascii payload
}

func (*Inst) Class() Class { return ClassInst }

// New builds an instruction.
func New(op Op, args ...Code) *Inst {
	return &Inst{Op: op, Args: args}
}

// NewLabel builds the definition of label name.
func NewLabel(name string) *Inst {
	return &Inst{Op: LABEL, Sval: name}
}

// Width is the size of the data written by the instruction: the width of
// its last register or memory operand, or 0 when it has none.
func (in *Inst) Width() Width {
	for i := len(in.Args) - 1; i >= 0; i-- {
		switch a := in.Args[i].(type) {
		case Reg:
			return a.Width
		case Mem:
			if a.Width != 0 {
				return a.Width
			}
		}
	}
	return 0
}

// String renders the instruction without its suffix or indentation; see
// package asm for the listing format.
func (in *Inst) String() string {
	if in.Op == LABEL {
		return in.Sval + ":"
	}
	args := make([]string, len(in.Args))
	for i, a := range in.Args {
		args[i] = a.String()
	}
	if len(args) == 0 {
		return in.Op.String()
	}
	return in.Op.String() + " " + strings.Join(args, ", ")
}

// Mem is the memory operand Disp(Base) or Sym(Base).
type Mem struct {
	Width Width
	Disp  int
	Sym   string
	Base  Reg
}

func (Mem) Class() Class { return ClassMem }

func (m Mem) String() string {
	switch {
	case m.Sym != "" && m.Disp != 0:
		return fmt.Sprintf("%s%+d(%s)", m.Sym, m.Disp, m.Base)
	case m.Sym != "":
		return fmt.Sprintf("%s(%s)", m.Sym, m.Base)
	case m.Disp != 0:
		return fmt.Sprintf("%d(%s)", m.Disp, m.Base)
	}
	return fmt.Sprintf("(%s)", m.Base)
}

// Imm is an immediate operand.
type Imm struct {
	Value int64
}

func (Imm) Class() Class { return ClassImm }

func (i Imm) String() string { return fmt.Sprintf("$%d", i.Value) }

// Label is a reference to a label, as used by jumps, calls and .globl.
type Label struct {
	Name string
}

func (Label) Class() Class { return ClassLabel }

func (l Label) String() string { return l.Name }

// Sequence is an ordered instruction list.
type Sequence []*Inst
