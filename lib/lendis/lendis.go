// Package lendis is a streaming length disassembler for the X86 and X86-64
// instruction sets. It walks a borrowed code buffer one instruction at a
// time and reports, for each instruction, its length in bytes and the raw
// encoding fields (prefixes, REX/VEX, opcode bytes, Mod R/M, SIB,
// displacement, immediates, relative target). It does not name registers or
// render mnemonics.
//
// Sample usage:
//
//	for dis := lendis.NewX86(code, 0); dis.Decode(); dis.Next() {
//		...
//	}
//
// Major amounts of information this code was based on were taken from the
// "Intel(R) 64 and IA-32 Architectures Software Developer's Manual":
//
//	https://www.intel.com/content/www/us/en/developer/articles/technical/intel-sdm.html
package lendis

// Legacy X86 prefixes.
const (
	PrefixNone byte = 0

	PrefixSegCS byte = 0x2e // CS segment prefix.
	PrefixSegSS byte = 0x36 // SS segment prefix.
	PrefixSegDS byte = 0x3e // DS segment prefix.
	PrefixSegES byte = 0x26 // ES segment prefix.
	PrefixSegFS byte = 0x64 // FS segment prefix.
	PrefixSegGS byte = 0x65 // GS segment prefix.
	PrefixLOCK  byte = 0xf0 // LOCK prefix.
	PrefixREPNZ byte = 0xf2 // REPNZ prefix.
	PrefixREPZ  byte = 0xf3 // REPZ prefix.
	Prefix66    byte = 0x66 // Operand size override prefix.
	Prefix67    byte = 0x67 // Address size override prefix.

	PrefixBranchNotTaken byte = 0x2e // Branch not taken hint.
	PrefixBranchTaken    byte = 0x3e // Branch taken hint.
)

// MaxLength is the architectural instruction length limit, in bytes.
const MaxLength = 15

// opFlags is a bitset of decode directives attached to an opcode byte.
// Both architecture tables share the same bit layout; opOX and opRW are
// only ever set by the X86-64 tables.
type opFlags uint16

const (
	opRM  opFlags = 1 << iota // expect Mod byte
	opOX                      // expect Mod opcode extension + change behaviour of REX.B
	opREL                     // instruction's imm is a relative address
	opI8                      // has 8 bit imm
	opI16                     // has 16 bit imm
	opI32                     // has 32 bit imm, which can be turned to 16 with 66 prefix
	opRW                      // imm can be widened to 64 bit with REX.W
	opAM                      // instruction uses address mode, imm is a memory address
	opVX                      // instruction requires a VEX prefix
	opMP                      // instruction has a mandatory 66 prefix
)

const (
	opNone opFlags = 0

	opEX  = opRM | opOX
	opR8  = opI8 | opREL
	opR32 = opI32 | opREL

	opError opFlags = 0xffff
)

func (f opFlags) has(bit opFlags) bool {
	return f&bit != 0
}

// Inst holds the encoding fields of a single decoded instruction. All
// fields are reset on each Decode; they are only meaningful until the next
// one. REX and VEX fields are kept separate, they never describe the same
// instruction.
type Inst struct {
	Length int // Instruction length, in bytes.

	Error          bool // Decoding error.
	ErrorOpcode    bool // Bad opcode.
	ErrorOperand   bool // Bad operand(s). Reserved, never raised.
	ErrorLength    bool // Instruction exceeds 15 bytes.
	ErrorLock      bool // LOCK prefix is not allowed.
	ErrorNoVEX     bool // Instruction is only allowed to be VEX encoded.
	ErrorTruncated bool // Instruction is cut short by the end of the buffer.

	Group1 byte // Prefix in 1st group (LOCK, REPNZ, REPZ), 0 if none.
	Group2 byte // Prefix in 2nd group (segment overrides, branch hints), 0 if none.
	Group3 byte // Prefix in 3rd group (operand size override), 0 if none.
	Group4 byte // Prefix in 4th group (address size override), 0 if none.

	HasREX bool // Has REX prefix. X86-64 only.
	REXW   bool // REX.W field.
	REXR   bool // REX.R field.
	REXX   bool // REX.X field.
	REXB   bool // REX.B field.

	HasVEX    bool // Has VEX prefix.
	VEXSize   int  // Size of the VEX prefix: 2, 3 or 4 bytes.
	VEXReg    byte // VEX register specifier (inverted vvvv).
	VEXL      byte // VEX L field.
	VEXW      bool // VEX W field.
	VEXR      bool // VEX R field (inverted).
	VEXX      bool // VEX X field (inverted).
	VEXB      bool // VEX B field (inverted).
	VEXOpmask byte // EVEX opmask register specifier. Left unfilled.
	VEXZero   bool // EVEX zero/merge field. Left unfilled.
	VEXSAE    bool // EVEX broadcast/RC/SAE context. Left unfilled.
	VEXRR     bool // EVEX R' field. Left unfilled.

	Opcode1 byte // 1st opcode byte.
	Opcode2 byte // 2nd opcode byte.
	Opcode3 byte // 3rd opcode byte.

	HasModRM bool // Has Mod R/M byte.
	ModRMMod byte // Mod R/M address mode.
	ModRMReg byte // Register number or opcode information.
	ModRMRM  byte // Operand register.

	HasSIB   bool // Has SIB byte.
	SIBScale byte // Decoded index scale factor: 1, 2, 4 or 8.
	SIBIndex byte // Index register.
	SIBBase  byte // Base register.

	HasDisp  bool   // Has address displacement.
	DispSize int    // Size of address displacement, in bytes.
	Disp     uint32 // Displacement value.

	HasImm   bool   // Has immediate value.
	HasImm2  bool   // Has 2 immediate values.
	ImmSize  int    // Size of the first immediate value, in bytes.
	Imm2Size int    // Size of the second immediate value, in bytes.
	Imm      uint64 // First immediate value.
	Imm2     uint64 // Second immediate value.

	HasRel  bool   // Has relative address.
	RelSize int    // Size of relative address, in bytes.
	Rel     int32  // Relative address value.
	Abs     uint64 // Absolute address value.
}
