package optimize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fwessels/aqcc/internal/asm"
)

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

var optTests = []struct {
	name string
	in   string
	want string
}{
	{
		"self move",
		lines("\tmovq %rax, %rax", "\tmovb %cl, %cl", "\tret"),
		lines("\tret"),
	},
	{
		"32-bit self move kept",
		lines("\tmovl %eax, %eax", "\tret"),
		lines("\tmovl %eax, %eax", "\tret"),
	},
	{
		"push pop same register",
		lines("\tpushq %rax", "\tpopq %rax", "\tret"),
		lines("\tret"),
	},
	{
		"push pop to move",
		lines("\tpushq %rax", "\tpopq %rdi", "\tcall f"),
		lines("\tmovq %rax, %rdi", "\tcall f"),
	},
	{
		"jump to next label",
		lines("\tjmp .L0", ".L0:", "\tret"),
		lines(".L0:", "\tret"),
	},
	{
		"jump elsewhere kept",
		lines("\tjmp .L1", ".L0:", "\tret"),
		lines("\tjmp .L1", ".L0:", "\tret"),
	},
	{
		"dead code after ret",
		lines("\tret", "\tmovl $1, %eax", "\tret", "\t.data", "\t.zero 4"),
		lines("\tret", "\t.data", "\t.zero 4"),
	},
	{
		"dead code after jmp",
		lines("\tjmp .L2", "\taddq $8, %rsp", ".L2:", "\tleave"),
		// the second pass drops the jump that now precedes its label
		lines(".L2:", "\tleave"),
	},
	{
		"fixpoint",
		lines("\tpushq %rax", "\tpopq %rax", "\tmovq %rdi, %rdi", "\tret", "\tnop"),
		lines("\tret"),
	},
	{
		"conditional jump kept",
		lines("\tje .L3", "\tmovl $0, %eax", ".L3:", "\tret"),
		lines("\tje .L3", "\tmovl $0, %eax", ".L3:", "\tret"),
	},
}

func TestRun(t *testing.T) {
	for _, tt := range optTests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := asm.Read(tt.in, tt.name)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := asm.Dump(&buf, Run(seq)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDoesNotModifyInput(t *testing.T) {
	in := lines("\tpushq %rax", "\tpopq %rax", "\tret")
	seq, err := asm.Read(in, "x.s")
	if err != nil {
		t.Fatal(err)
	}
	Run(seq)
	var buf bytes.Buffer
	if err := asm.Dump(&buf, seq); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
