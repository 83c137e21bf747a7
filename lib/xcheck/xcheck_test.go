package xcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBlockAMD64(t *testing.T) {
	codes := [][]byte{
		{ // subr
			0x55, 0x48, 0x89, 0xe5, 0xb8, 0x47, 0xf4, 0x10, 0x0, 0x5d, 0xc3,
		},
		{
			// vpaddq %xmm1, %xmm2, %xmm3
			0xc5, 0xe9, 0xd4, 0xd9,
		},
	}

	for i, code := range codes {
		insts, err := ArchAMD64.DecodeBlock(code)
		if err != nil {
			t.Fatal(i, err)
		}
		var total int
		for _, inst := range insts {
			total += inst.Len
		}
		assert.Equal(t, len(code), total, i)
	}
}

func TestLength386(t *testing.T) {
	n, err := Arch386.Length([]byte{0x8b, 0x45, 0x08})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSyntaxAMD64(t *testing.T) {
	s := ArchAMD64.Syntax([]byte{0xc3}, 0, nil)
	assert.Equal(t, "RET", s)
}
