package code

import "fmt"

// Width is an operand size in bytes: 1, 2, 4 or 8.
type Width int

// Suffix returns the AT&T mnemonic suffix for w, or "" for an unknown width.
func (w Width) Suffix() string {
	switch w {
	case 1:
		return "b"
	case 2:
		return "w"
	case 4:
		return "l"
	case 8:
		return "q"
	}
	return ""
}

// RegIndex selects a physical register independent of width.
type RegIndex int

// General registers in allocation order, followed by the three special
// pointer registers which only exist at 64 bits here.
const (
	RAX RegIndex = iota
	RDI
	RSI
	RDX
	RCX
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	RIPIndex
	RBPIndex
	RSPIndex
)

// NumGeneral is the number of general registers available to RegisterOfWidth.
const NumGeneral = int(R15) + 1

// Reg is a register operand. Width and Index together name one physical
// register, e.g. {4, RAX} is %eax and {8, RAX} is %rax.
type Reg struct {
	Width Width
	Index RegIndex
}

func (Reg) Class() Class { return ClassReg }

// RegisterOfWidth returns general register index at the given width. It
// panics on any width other than 1, 2, 4, 8 or on an index outside RAX..R15.
func RegisterOfWidth(width Width, index RegIndex) Reg {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("code: invalid register width %d", width))
	}
	if index < RAX || index > R15 {
		panic(fmt.Sprintf("code: invalid register index %d", index))
	}
	return Reg{Width: width, Index: index}
}

func RIP() Reg { return Reg{Width: 8, Index: RIPIndex} }
func RBP() Reg { return Reg{Width: 8, Index: RBPIndex} }
func RSP() Reg { return Reg{Width: 8, Index: RSPIndex} }

// IsRegister reports whether c is a register operand. It is false for nil
// and for instructions.
func IsRegister(c Code) bool {
	_, ok := c.(Reg)
	return ok
}

// SameRegister reports whether a and b name the same physical register,
// ignoring width.
func SameRegister(a, b Code) bool {
	ra, ok := a.(Reg)
	if !ok {
		return false
	}
	rb, ok := b.(Reg)
	return ok && ra.Index == rb.Index
}

var generalNames = [NumGeneral][4]string{
	RAX: {"%al", "%ax", "%eax", "%rax"},
	RDI: {"%dil", "%di", "%edi", "%rdi"},
	RSI: {"%sil", "%si", "%esi", "%rsi"},
	RDX: {"%dl", "%dx", "%edx", "%rdx"},
	RCX: {"%cl", "%cx", "%ecx", "%rcx"},
	R8:  {"%r8b", "%r8w", "%r8d", "%r8"},
	R9:  {"%r9b", "%r9w", "%r9d", "%r9"},
	R10: {"%r10b", "%r10w", "%r10d", "%r10"},
	R11: {"%r11b", "%r11w", "%r11d", "%r11"},
	R12: {"%r12b", "%r12w", "%r12d", "%r12"},
	R13: {"%r13b", "%r13w", "%r13d", "%r13"},
	R14: {"%r14b", "%r14w", "%r14d", "%r14"},
	R15: {"%r15b", "%r15w", "%r15d", "%r15"},
}

var specialNames = map[RegIndex]string{
	RIPIndex: "%rip",
	RBPIndex: "%rbp",
	RSPIndex: "%rsp",
}

func widthSlot(w Width) int {
	switch w {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	}
	return -1
}

func (r Reg) String() string {
	if name, ok := specialNames[r.Index]; ok && r.Width == 8 {
		return name
	}
	slot := widthSlot(r.Width)
	if slot < 0 || r.Index < RAX || r.Index > R15 {
		return fmt.Sprintf("%%reg(%d,%d)", r.Width, r.Index)
	}
	return generalNames[r.Index][slot]
}

var registers = map[string]Reg{}

func init() {
	for idx, names := range generalNames {
		for slot, name := range names {
			registers[name] = RegisterOfWidth(Width(1)<<slot, RegIndex(idx))
		}
	}
	registers["%rip"] = RIP()
	registers["%rbp"] = RBP()
	registers["%rsp"] = RSP()
}

// Lookup returns the register spelled name, including the leading '%'.
func Lookup(name string) (Reg, bool) {
	r, ok := registers[name]
	return r, ok
}

// MustLookup is Lookup for names known to be valid; it panics otherwise.
func MustLookup(name string) Reg {
	r, ok := registers[name]
	if !ok {
		panic(fmt.Sprintf("code: unknown register %q", name))
	}
	return r
}
