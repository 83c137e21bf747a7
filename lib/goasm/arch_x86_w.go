package goasm

import (
	"strings"

	"github.com/twitchyliquid64/golang-asm/asm/arch"

	"github.com/ii64/lendis/lib/util"
)

var Arch386 = archX86{mode: 32}.init()
var ArchAMD64 = archX86{mode: 64}.init()

type archX86 struct {
	mode int
	_AC  *arch.Arch
}

func (m archX86) init() archX86 {
	m = archX86{mode: m.mode}
	switch m.mode {
	case 32:
		m._AC = arch.Set("386")
	case 64:
		m._AC = arch.Set("amd64")
	default:
		panic("unknown x86 mode")
	}
	return m
}

// Inst renders the bytes of a single instruction as one line of raw byte
// directives, with an optional trailing comment.
func (m archX86) Inst(b []byte, comment string) Text {
	var res Text
	if comment != "" {
		res.Comments = append(res.Comments, comment)
	}
	res.Asm = strings.Join(
		instEncodeRawBytes(m._AC.ByteOrder, b), "; ")
	return res
}

// EncodeRawBytes renders an undecoded byte block, at most 8 bytes per line.
func (m archX86) EncodeRawBytes(b []byte) (ret []Text) {
	for _, part := range util.Chunk(b, 8) {
		for _, f := range instEncodeRawBytes(m._AC.ByteOrder, part) {
			ret = append(ret, Text{
				Asm: f,
			})
		}
	}
	return
}
