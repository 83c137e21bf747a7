package goasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstRawBytes(t *testing.T) {
	txt := ArchAMD64.Inst([]byte{0x48, 0x8b, 0x45, 0x08}, "mov 0x8(%rbp), %rax")
	assert.Equal(t, "LONG $0x8458b48\t// mov 0x8(%rbp), %rax", txt.String())

	txt = Arch386.Inst([]byte{0x55}, "")
	assert.Equal(t, "BYTE $0x55", txt.String())

	txt = ArchAMD64.Inst([]byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33}, "")
	assert.Equal(t, "QUAD $0x334455667788b848", txt.String())
}

func TestEncodeRawBytes(t *testing.T) {
	ret := ArchAMD64.EncodeRawBytes([]byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a,
	})
	if assert.Len(t, ret, 2) {
		assert.Equal(t, "QUAD $0x807060504030201", ret[0].Asm)
		assert.Equal(t, "WORD $0xa09", ret[1].Asm)
	}

	assert.Empty(t, ArchAMD64.EncodeRawBytes(nil))
}
