// Package xcheck wraps the reference x86 decoders used to cross-check
// lendis results: x/arch x86asm first, with capstone as a fallback engine
// for encodings x86asm refuses.
package xcheck

import (
	"fmt"

	"golang.org/x/arch/x86/x86asm"
)

type SymLookup func(addr uint64) (name string, base uint64)

func GoSyntax(inst x86asm.Inst, pc uint64, symname SymLookup) string {
	if symname == nil {
		symname = func(addr uint64) (name string, base uint64) {
			return "", 0
		}
	}
	return x86asm.GoSyntax(inst, pc, x86asm.SymLookup(symname))
}

// Mode returns the engine for an x86 decode mode.
func Mode(mode int) (archX86, error) {
	switch mode {
	case 32:
		return Arch386, nil
	case 64:
		return ArchAMD64, nil
	}
	return archX86{}, fmt.Errorf("unknown x86 mode: %d", mode)
}
