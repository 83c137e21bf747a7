package lendis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode64(t *testing.T, code []byte, pos uint64) *X64 {
	t.Helper()
	d := NewX64(code, pos)
	if !d.Decode() {
		t.Fatal("expected an instruction")
	}
	return d
}

func TestX64MovDisp8(t *testing.T) {
	d := decode64(t, []byte{0x48, 0x8b, 0x45, 0x08}, 0)
	assert.True(t, d.HasREX)
	assert.True(t, d.REXW)
	assert.Equal(t, byte(0x8b), d.Opcode1)
	assert.Equal(t, byte(1), d.ModRMMod)
	assert.Equal(t, byte(0), d.ModRMReg)
	assert.Equal(t, byte(5), d.ModRMRM)
	assert.Equal(t, 1, d.DispSize)
	assert.Equal(t, 4, d.Length)
	assert.False(t, d.Error)
}

func TestX64REXRegExtension(t *testing.T) {
	// mov %rdx, %r9
	d := decode64(t, []byte{0x49, 0x89, 0xd1}, 0)
	assert.True(t, d.REXW)
	assert.True(t, d.REXB)
	assert.Equal(t, byte(2), d.ModRMReg)
	assert.Equal(t, byte(9), d.ModRMRM)
	assert.Equal(t, 3, d.Length)

	// mov %r10, %rdx
	d = decode64(t, []byte{0x4c, 0x89, 0xd2}, 0)
	assert.True(t, d.REXR)
	assert.Equal(t, byte(10), d.ModRMReg)
	assert.Equal(t, byte(2), d.ModRMRM)
}

func TestX64REXSIBExtension(t *testing.T) {
	// mov (%r8,%r9,2), %eax with REX.X and REX.B
	d := decode64(t, []byte{0x43, 0x8b, 0x04, 0x48}, 0)
	assert.True(t, d.HasSIB)
	assert.Equal(t, byte(2), d.SIBScale)
	assert.Equal(t, byte(9), d.SIBIndex)
	assert.Equal(t, byte(8), d.SIBBase)
	assert.Equal(t, 4, d.Length)
	assert.False(t, d.Error)
}

func TestX64OXExtension(t *testing.T) {
	// group opcodes extend reg through REX.B
	d := decode64(t, []byte{0x41, 0xff, 0xc7}, 0)
	assert.Equal(t, byte(8), d.ModRMReg)
	assert.Equal(t, byte(7), d.ModRMRM)
	assert.Equal(t, 3, d.Length)
}

func TestX64REXDroppedByLegacyPrefix(t *testing.T) {
	d := decode64(t, []byte{0x48, 0x66, 0x90}, 0)
	assert.False(t, d.HasREX)
	assert.False(t, d.REXW)
	assert.Equal(t, Prefix66, d.Group3)
	assert.Equal(t, 3, d.Length)
}

func TestX64LastREXWins(t *testing.T) {
	d := decode64(t, []byte{0x48, 0x41, 0x89, 0xd1}, 0)
	assert.True(t, d.HasREX)
	assert.False(t, d.REXW)
	assert.True(t, d.REXB)
	assert.Equal(t, 4, d.Length)
}

func TestX64ImmWidening(t *testing.T) {
	// mov $imm32, %eax
	d := decode64(t, []byte{0xb8, 0x44, 0x33, 0x22, 0x11}, 0)
	assert.Equal(t, 4, d.ImmSize)
	assert.Equal(t, uint64(0x11223344), d.Imm)
	assert.Equal(t, 5, d.Length)

	// movabs $imm64, %rax
	d = decode64(t, []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, 0)
	assert.Equal(t, 8, d.ImmSize)
	assert.Equal(t, uint64(0x1122334455667788), d.Imm)
	assert.Equal(t, 10, d.Length)

	// mov $imm16, %ax
	d = decode64(t, []byte{0x66, 0xb8, 0x34, 0x12}, 0)
	assert.Equal(t, 2, d.ImmSize)
	assert.Equal(t, 4, d.Length)
}

func TestX64GroupF7Widening(t *testing.T) {
	d := decode64(t, []byte{0xf7, 0xc0, 0x01, 0x00, 0x00, 0x00}, 0)
	assert.Equal(t, 4, d.ImmSize)
	assert.Equal(t, 6, d.Length)

	d = decode64(t, []byte{0x48, 0xf7, 0xc0, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 0)
	assert.Equal(t, 8, d.ImmSize)
	assert.Equal(t, 11, d.Length)

	// no REX.W widening without the sub-opcode that takes an imm
	d = decode64(t, []byte{0x48, 0xf7, 0xd8}, 0)
	assert.False(t, d.HasImm)
	assert.Equal(t, 3, d.Length)
}

func TestX64Moffs(t *testing.T) {
	d := decode64(t, []byte{0xa1, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, 0)
	assert.Equal(t, 8, d.ImmSize)
	assert.Equal(t, uint64(0x1122334455667788), d.Imm)
	assert.Equal(t, 9, d.Length)

	d = decode64(t, []byte{0x67, 0xa1, 0x44, 0x33, 0x22, 0x11}, 0)
	assert.Equal(t, 4, d.ImmSize)
	assert.Equal(t, 6, d.Length)
}

func TestX64Rel32(t *testing.T) {
	d := decode64(t, []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, 0)
	assert.True(t, d.HasRel)
	assert.Equal(t, 4, d.RelSize)
	assert.Equal(t, int32(0), d.Rel)
	assert.Equal(t, uint64(5), d.Abs)
	assert.Equal(t, 5, d.Length)
}

func TestX64RelNegativeWraps(t *testing.T) {
	d := decode64(t, []byte{0xe9, 0xfb, 0xff, 0xff, 0xff}, 0)
	assert.Equal(t, int32(-5), d.Rel)
	assert.Equal(t, uint64(0), d.Abs)

	d = decode64(t, []byte{0xeb, 0xf0}, 0)
	assert.Equal(t, 1, d.RelSize)
	assert.Equal(t, int32(-16), d.Rel)
	assert.Equal(t, uint64(0xfffffffffffffff2), d.Abs)
}

func TestX64RIPRelative(t *testing.T) {
	// mod 0 rm 5 is RIP relative, still a disp32 to the length decoder
	d := decode64(t, []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}, 0)
	assert.True(t, d.HasDisp)
	assert.Equal(t, 4, d.DispSize)
	assert.Equal(t, uint32(0x10), d.Disp)
	assert.Equal(t, 7, d.Length)
}

func TestX64InvalidOpcode(t *testing.T) {
	// 0x06 (push %es) does not exist in 64 bit mode
	d := decode64(t, []byte{0x06}, 0)
	assert.True(t, d.Error)
	assert.True(t, d.ErrorOpcode)
	assert.False(t, d.ErrorNoVEX)
	assert.Equal(t, 1, d.Length)
}

func TestX64VEX2(t *testing.T) {
	d := decode64(t, []byte{0xc5, 0xe9, 0xd4, 0xd9}, 0)
	assert.True(t, d.HasVEX)
	assert.Equal(t, 2, d.VEXSize)
	assert.Equal(t, byte(0x0f), d.Opcode1)
	assert.Equal(t, byte(0xd4), d.Opcode2)
	assert.Equal(t, byte(2), d.VEXReg)
	assert.Equal(t, Prefix66, d.Group3)
	assert.Equal(t, 4, d.Length)
	assert.False(t, d.Error)
}

func TestX64VEX3Fields(t *testing.T) {
	// vperm2f128 $1, %ymm2, %ymm3, %ymm4 (0F 3A 06, needs an imm8)
	d := decode64(t, []byte{0xc4, 0xe3, 0x65, 0x06, 0xe2, 0x01}, 0)
	assert.Equal(t, 3, d.VEXSize)
	assert.Equal(t, byte(0x0f), d.Opcode1)
	assert.Equal(t, byte(0x3a), d.Opcode2)
	assert.Equal(t, byte(0x06), d.Opcode3)
	assert.Equal(t, byte(3), d.VEXReg)
	assert.Equal(t, byte(1), d.VEXL)
	assert.True(t, d.HasImm)
	assert.Equal(t, 1, d.ImmSize)
	assert.Equal(t, 6, d.Length)
	assert.False(t, d.Error)
}

func TestX64VEXAfterREX(t *testing.T) {
	d := decode64(t, []byte{0x48, 0xc5, 0xf1, 0xd4, 0xd9}, 0)
	assert.True(t, d.HasVEX)
	assert.True(t, d.ErrorOpcode)
	assert.Equal(t, 5, d.Length)
}

func TestX64EVEX(t *testing.T) {
	// 62 always starts an EVEX payload in 64 bit mode
	d := decode64(t, []byte{0x62, 0xf1, 0x7c, 0x48, 0x58, 0xc2}, 0)
	assert.True(t, d.HasVEX)
	assert.Equal(t, 4, d.VEXSize)
	assert.True(t, d.ErrorOpcode)
	assert.Equal(t, 1, d.Length)
}

func TestX64NoVEX(t *testing.T) {
	d := decode64(t, []byte{0x0f, 0x38, 0x18, 0xc0}, 0)
	assert.True(t, d.ErrorNoVEX)
	assert.Equal(t, 4, d.Length)
}

func TestX64Movsxd(t *testing.T) {
	d := decode64(t, []byte{0x48, 0x63, 0xc8}, 0)
	assert.Equal(t, byte(0x63), d.Opcode1)
	assert.True(t, d.HasModRM)
	assert.Equal(t, 3, d.Length)
	assert.False(t, d.Error)
}

func TestX64LockRegisterForm(t *testing.T) {
	d := decode64(t, []byte{0xf0, 0x48, 0x01, 0xc8}, 0)
	assert.True(t, d.ErrorLock)
	assert.Equal(t, 4, d.Length)
}

func TestX64Truncated(t *testing.T) {
	d := decode64(t, []byte{0x48, 0x8b}, 0)
	assert.True(t, d.ErrorTruncated)
	assert.Equal(t, 2, d.Length)

	assert.False(t, NewX64(nil, 0).Decode())
}

func TestX64DemoWalk(t *testing.T) {
	code := []byte{
		0x55,                                     // push %rbp
		0x48, 0x89, 0xe5,                         // mov %rsp, %rbp
		0xb8, 0x47, 0xf4, 0x10, 0x00,             // mov $0x10f447, %eax
		0xe8, 0x00, 0x00, 0x00, 0x00,             // call .+0
		0x48, 0x83, 0xec, 0x20,                   // sub $0x20, %rsp
		0x4c, 0x8b, 0x6d, 0x08,                   // mov 0x8(%rbp), %r13
		0x5d,                                     // pop %rbp
		0xc3,                                     // ret
	}
	want := []int{1, 3, 5, 5, 4, 4, 1, 1}

	var got []int
	for d := NewX64(code, 0); d.Decode(); d.Next() {
		assert.False(t, d.Error)
		got = append(got, d.Length)
	}
	assert.Equal(t, want, got)
}
