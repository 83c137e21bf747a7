package conf

import (
	"flag"
	"fmt"
	"os"
)

func (c *Config) FlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet(name, errorHandling)
	c.fs = fs

	fs.StringVar(&c.Hex, "x", "", "Inline machine code as a hex string")
	fs.BoolVar(&c.ELF, "elf", false, "Treat the input file as an ELF object")
	fs.BoolVar(&c.Mode32, "m32", false, "Decode as 32 bit code")
	fs.Uint64Var(&c.Base, "base", 0, "Start offset of the cursor")

	fs.BoolVar(&c.Verify, "verify", false, "Cross-check lengths against reference decoders")
	fs.BoolVar(&c.RawBytes, "rawbytes", false, "Emit Go asm raw byte directives per instruction")
	fs.BoolVar(&c.Dump, "dump", false, "Dump all decoded instruction fields")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\n", name)
	}
	return fs
}
