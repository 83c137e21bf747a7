package conf

import (
	"flag"
	"fmt"
	"os"

	"github.com/ii64/lendis/lib/util"
)

type Config struct {
	// Hex is inline machine code given as a hex string, decoded into Code
	// by Validate.
	Hex  string
	Code []byte

	// InputFile is a raw code dump, or an ELF object when ELF is set.
	InputFile string
	ELF       bool

	Mode32 bool
	Base   uint64

	Verify   bool
	RawBytes bool
	Dump     bool

	fs *flag.FlagSet
}

func Default() *Config {
	return &Config{}
}

func (cfg *Config) Validate() error {
	if cfg.Hex != "" {
		code, err := util.HexToBytes(cfg.Hex)
		if err != nil {
			return fmt.Errorf("bad -x hex string: %w", err)
		}
		cfg.Code = code
	}

	args := cfg.fs.Args()
	if len(args) > 1 {
		return fmt.Errorf("expected a single input file")
	}
	if len(args) == 1 {
		if cfg.Hex != "" {
			return fmt.Errorf("either -x or an input file, not both")
		}
		inp := mustAbs(args[0])
		if err := statInputFile(inp); err != nil {
			fmt.Fprintf(os.Stderr, "error: file %q: %v\n", args[0], err)
			return fmt.Errorf("invalid input")
		}
		cfg.InputFile = inp
	}

	if cfg.ELF && cfg.InputFile == "" {
		return fmt.Errorf("-elf needs an input file")
	}

	return nil
}
