package obj

import (
	"debug/elf"
	"fmt"

	"golang.org/x/exp/slices"
)

// Note: ELF only.

type Object struct {
	Elf *elf.File
}

func ReadFile(path string) (obj *Object, err error) {
	var e *elf.File
	e, err = elf.Open(path)
	if err != nil {
		return
	}
	obj = &Object{
		Elf: e,
	}
	return
}

func (o *Object) Close() error {
	return o.Elf.Close()
}

// Mode returns the x86 decode mode of the object, 32 or 64.
func (o *Object) Mode() (int, error) {
	switch o.Elf.Machine {
	case elf.EM_386:
		return 32, nil
	case elf.EM_X86_64:
		return 64, nil
	}
	return 0, fmt.Errorf("unsupported machine: %s", o.Elf.Machine)
}

// Text returns the contents and virtual address of the lowest mapped
// executable section of the object.
func (o *Object) Text() (code []byte, addr uint64, err error) {
	var secs []*elf.Section
	for _, s := range o.Elf.Sections {
		if s.Type == elf.SHT_PROGBITS && s.Flags&elf.SHF_EXECINSTR != 0 {
			secs = append(secs, s)
		}
	}
	if len(secs) == 0 {
		err = fmt.Errorf("no executable section")
		return
	}
	slices.SortStableFunc(secs, func(a, b *elf.Section) bool {
		return a.Addr < b.Addr
	})

	s := secs[0]
	code, err = s.Data()
	if err != nil {
		return
	}
	addr = s.Addr
	return
}
