package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ii64/lendis/conf"
	"github.com/ii64/lendis/lib/goasm"
	"github.com/ii64/lendis/lib/lendis"
	"github.com/ii64/lendis/lib/obj"
	"github.com/ii64/lendis/lib/xcheck"
)

// demoCode is decoded when no input is given: a strlen-style loop.
var demoCode = []byte{
	0x55,
	0x31, 0xd2,
	0x89, 0xe5,
	0x8b, 0x45, 0x08,
	0x56,
	0x8b, 0x75, 0x0c,
	0x53,
	0x8d, 0x58, 0xff,
	0x0f, 0xb6, 0x0c, 0x16,
	0x88, 0x4c, 0x13, 0x01,
	0x83, 0xc2, 0x01,
	0x84, 0xc9,
	0x75, 0xf1,
	0x5b,
	0x5e,
	0x5d,
	0xc3,
}

func Main(cfg *conf.Config) (err error) {
	var code []byte
	var mode int
	code, mode, err = loadInput(cfg)
	if err != nil {
		return
	}

	if mode == 32 {
		return run32(cfg, code)
	}
	return run64(cfg, code)
}

func loadInput(cfg *conf.Config) (code []byte, mode int, err error) {
	mode = 64
	if cfg.Mode32 {
		mode = 32
	}

	switch {
	case len(cfg.Code) > 0:
		code = cfg.Code

	case cfg.InputFile != "" && cfg.ELF:
		var o *obj.Object
		o, err = obj.ReadFile(cfg.InputFile)
		if err != nil {
			return
		}
		defer o.Close()

		if !cfg.Mode32 {
			mode, err = o.Mode()
			if err != nil {
				return
			}
		}
		code, _, err = o.Text()
		if err != nil {
			return
		}

	case cfg.InputFile != "":
		code, err = os.ReadFile(cfg.InputFile)
		if err != nil {
			return
		}

	default:
		code = demoCode
		mode = 32
	}
	return
}

func run32(cfg *conf.Config, code []byte) error {
	for dis := lendis.NewX86(code, uint32(cfg.Base)); dis.Decode(); dis.Next() {
		emit(cfg, code, uint64(dis.IP), &dis.Inst, 32)
	}
	return nil
}

func run64(cfg *conf.Config, code []byte) error {
	for dis := lendis.NewX64(code, cfg.Base); dis.Decode(); dis.Next() {
		emit(cfg, code, dis.IP, &dis.Inst, 64)
	}
	return nil
}

func emit(cfg *conf.Config, code []byte, ip uint64, in *lendis.Inst, mode int) {
	raw := code[ip : ip+uint64(in.Length)]

	if cfg.RawBytes {
		m := goasm.ArchAMD64
		if mode == 32 {
			m = goasm.Arch386
		}
		var comment string
		if cfg.Verify {
			eng, _ := xcheck.Mode(mode)
			comment = eng.Syntax(code[ip:], ip, nil)
		}
		fmt.Println(m.Inst(raw, comment).String())
	} else {
		fmt.Printf("%08x: %s", ip, hex.EncodeToString(raw))

		if in.HasRel {
			// print where the relative address points to
			fmt.Printf(" ; -> %08x", in.Abs)
		}
		if in.Error {
			fmt.Printf(" ; !%s", errString(in))
		}
		if cfg.Verify {
			verify(code, ip, in, mode)
		}
		fmt.Println()
	}

	if cfg.Dump {
		spew.Fdump(os.Stdout, in)
	}
}

func verify(code []byte, ip uint64, in *lendis.Inst, mode int) {
	eng, err := xcheck.Mode(mode)
	if err != nil {
		return
	}
	want, err := eng.Length(code[ip:])
	switch {
	case err != nil:
		if !in.Error {
			fmt.Printf(" ; verify: reference refused: %v", err)
		}
	case want != in.Length && !in.Error:
		fmt.Printf(" ; verify: reference length %d", want)
	default:
		if s := eng.Syntax(code[ip:], ip, nil); s != "" {
			fmt.Printf("\t%s", s)
		}
	}
}

func errString(in *lendis.Inst) (s string) {
	add := func(name string, set bool) {
		if !set {
			return
		}
		if s != "" {
			s += ","
		}
		s += name
	}
	add("opcode", in.ErrorOpcode)
	add("operand", in.ErrorOperand)
	add("length", in.ErrorLength)
	add("lock", in.ErrorLock)
	add("novex", in.ErrorNoVEX)
	add("truncated", in.ErrorTruncated)
	return
}
