package lendis

// X86 is a decoding cursor over 32 bit machine code. The buffer is borrowed
// and never written to. Copying an X86 by value yields an independent cursor
// over the same buffer. Not safe for concurrent use.
type X86 struct {
	Inst

	// IP is the offset of the instruction being decoded. Assign it
	// directly to reposition the cursor.
	IP uint32

	buf []byte

	flags     opFlags
	threeDNow bool
}

// NewX86 returns a cursor over code positioned at pos.
func NewX86(code []byte, pos uint32) *X86 {
	return &X86{buf: code, IP: pos}
}

// Next advances the cursor past the last decoded instruction.
func (d *X86) Next() {
	d.IP += uint32(d.Length)
}

// Decode decodes the instruction at IP. It reports false once IP has
// reached the end of the buffer; otherwise the Inst fields describe the
// instruction just decoded. Decoding errors are diagnostic flags on Inst,
// not a reason to stop.
func (d *X86) Decode() bool {
	if uint64(d.IP) >= uint64(len(d.buf)) {
		return false
	}

	d.Inst = Inst{}
	d.flags = opError
	d.threeDNow = false

	d.decodePrefixes()
	d.decodeOpcode()

	if d.flags != opError {
		if d.flags.has(opMP) && d.Group3 != Prefix66 {
			// lacks its mandatory 66 prefix
			d.Error = true
			d.ErrorOpcode = true
		}

		if d.flags.has(opRM) {
			d.decodeModRM()

			if d.HasSIB {
				d.decodeSIB()
			}

			if d.HasDisp {
				d.Disp = uint32(d.readLittle(d.DispSize))
			}
		} else if d.Group1 == PrefixLOCK {
			// LOCK prefix only makes sense for Mod M
			d.Error = true
			d.ErrorLock = true
		}

		d.decodeImm()

		if d.threeDNow {
			// the trailing byte is the opcode selector, not an imm
			d.Opcode3 = byte(d.Imm)
			d.HasImm = false
			d.Imm = 0
			d.ImmSize = 0
		}

		if d.Length > MaxLength {
			d.Length = MaxLength

			d.Error = true
			d.ErrorLength = true
		}
	} else {
		d.Error = true
		d.ErrorOpcode = true

		d.Length = 1
	}

	return true
}

func (d *X86) peek(off int) (byte, bool) {
	i := uint64(d.IP) + uint64(d.Length) + uint64(off)
	if i >= uint64(len(d.buf)) {
		return 0, false
	}
	return d.buf[i], true
}

// take consumes the next byte. Reading past the end of the buffer raises
// ErrorTruncated and consumes nothing, so Length only ever counts bytes
// that are actually present.
func (d *X86) take() byte {
	b, ok := d.peek(0)
	if !ok {
		d.Error = true
		d.ErrorTruncated = true
		return 0
	}
	d.Length++
	return b
}

func (d *X86) readLittle(size int) uint64 {
	var v uint64
	for i := 0; i < size; i++ {
		v |= uint64(d.take()) << (i * 8)
	}
	return v
}

// decodePrefixes scans legacy prefixes the same way a real CPU does: the
// first prefix seen from each group sticks, later ones from the same group
// are ignored.
func (d *X86) decodePrefixes() {
	for x := 0; x < MaxLength; x++ {
		prefix, ok := d.peek(0)
		if !ok {
			break
		}

		switch prefix {
		case PrefixLOCK, PrefixREPNZ, PrefixREPZ:
			if d.Group1 == PrefixNone {
				d.Group1 = prefix
			}

		case PrefixSegCS, PrefixSegSS, PrefixSegDS,
			PrefixSegES, PrefixSegFS, PrefixSegGS:
			if d.Group2 == PrefixNone {
				d.Group2 = prefix
			}

		case Prefix66:
			if d.Group3 == PrefixNone {
				d.Group3 = prefix
			}

		case Prefix67:
			if d.Group4 == PrefixNone {
				d.Group4 = prefix
			}

		default:
			return
		}

		d.Length++
	}
}

func (d *X86) decodeOpcode() {
	b0, _ := d.peek(0)
	b1, ok := d.peek(1)

	if (b0 == 0xc4 || b0 == 0xc5 || b0 == 0x62) && ok && b1&0x80 != 0 {
		d.decodeVEX()
		return
	}

	d.Opcode1 = d.take()

	switch {
	case d.Opcode1 == 0x0f:
		d.Opcode2 = d.take()

		switch d.Opcode2 {
		case 0x38:
			d.Opcode3 = d.take()
			d.flags = x86OpTable38[d.Opcode3]

		case 0x3a:
			d.Opcode3 = d.take()
			d.flags = x86OpTable3A[d.Opcode3]

		case 0x0f:
			// 3DNow!: Mod R/M and displacement come first, the opcode
			// selector trails the instruction in the imm slot
			d.flags = opRM | opI8
			d.threeDNow = true

		default:
			d.flags = x86OpTable0F[d.Opcode2]
		}

	case d.Opcode1 == 0xf6 || d.Opcode1 == 0xf7:
		// These two opcodes extend using 3 bits of the Mod R/M byte and
		// their sub-opcodes lack consistent flags.
		modrm, _ := d.peek(0)

		switch modrm >> 3 & 0x07 {
		case 0x00, 0x01:
			if d.Opcode1 == 0xf6 {
				d.flags = opRM | opI8
			} else {
				d.flags = opRM | opI32
			}

		default:
			d.flags = opRM
		}

	default:
		d.flags = x86OpTable[d.Opcode1]
	}

	if d.flags != opError && d.flags.has(opVX) {
		// this instruction can only be VEX encoded
		d.Error = true
		d.ErrorNoVEX = true
	}
}

func (d *X86) decodeVEX() {
	d.HasVEX = true

	if d.Group1 != 0 || d.Group2 != 0 ||
		d.Group3 != 0 || d.Group4 != 0 {
		// VEX must not be preceded by legacy prefixes
		d.Error = true
		d.ErrorOpcode = true
	}

	prefix := d.take()

	if prefix == 0x62 {
		// 4 byte EVEX; recognized structurally, field decoding is not
		// implemented and the opcode stays unmapped
		d.VEXSize = 4
		return
	}

	if prefix == 0xc4 {
		d.VEXSize = 3

		vex1 := d.take()

		d.VEXR = vex1&0x80 == 0
		d.VEXX = vex1&0x40 == 0
		d.VEXB = vex1&0x20 == 0

		switch vex1 & 0x1f {
		case 0x01:
			d.Opcode1 = 0x0f
		case 0x02:
			d.Opcode1 = 0x0f
			d.Opcode2 = 0x38
		case 0x03:
			d.Opcode1 = 0x0f
			d.Opcode2 = 0x3a
		default:
			d.Error = true
			d.ErrorOpcode = true
			d.ErrorNoVEX = true
		}
	} else {
		d.VEXSize = 2
		d.Opcode1 = 0x0f
	}

	vex2 := d.take()

	if prefix == 0xc4 {
		d.VEXW = vex2&0x80 != 0
	} else {
		d.VEXR = vex2&0x80 == 0
	}

	d.VEXL = vex2 >> 2 & 0x01
	d.VEXReg = ^vex2 >> 3 & 0x0f

	switch vex2 & 0x03 {
	case 0x01:
		d.Group3 = Prefix66
	case 0x02:
		d.Group1 = PrefixREPZ
	case 0x03:
		d.Group1 = PrefixREPNZ
	}

	if d.Opcode1 == 0x0f {
		switch d.Opcode2 {
		case 0x38:
			d.Opcode3 = d.take()
			d.flags = x86OpTable38[d.Opcode3]

		case 0x3a:
			d.Opcode3 = d.take()
			d.flags = x86OpTable3A[d.Opcode3]

		default:
			d.Opcode2 = d.take()
			d.flags = x86OpTable0F[d.Opcode2]
		}
	}
}

func (d *X86) decodeModRM() {
	modrm := d.take()

	d.HasModRM = true
	d.ModRMMod = modrm >> 6 & 0x03
	d.ModRMReg = modrm >> 3 & 0x07
	d.ModRMRM = modrm & 0x07

	switch d.ModRMMod {
	case 0x00:
		if d.Group4 == Prefix67 {
			if d.ModRMRM == 0x06 {
				d.HasDisp = true
				d.DispSize = 2
			}
		} else {
			if d.ModRMRM == 0x04 {
				d.HasSIB = true
			}

			if d.ModRMRM == 0x05 {
				d.HasDisp = true
				d.DispSize = 4
			}
		}

	case 0x01:
		if d.Group4 != Prefix67 && d.ModRMRM == 0x04 {
			d.HasSIB = true
		}

		d.HasDisp = true
		d.DispSize = 1

	case 0x02:
		if d.Group4 != Prefix67 && d.ModRMRM == 0x04 {
			d.HasSIB = true
		}

		d.HasDisp = true
		if d.Group4 == Prefix67 {
			d.DispSize = 2
		} else {
			d.DispSize = 4
		}

	case 0x03:
		if d.Group1 == PrefixLOCK {
			// LOCK is not allowed with Mod R
			d.Error = true
			d.ErrorLock = true
		}
	}
}

func (d *X86) decodeSIB() {
	sib := d.take()

	d.SIBScale = 1 << (sib >> 6 & 0x03)
	d.SIBIndex = sib >> 3 & 0x07
	d.SIBBase = sib & 0x07

	if d.SIBIndex == 0x04 {
		// index register can't be ESP
		d.Error = true
		d.ErrorOpcode = true
	}
}

func (d *X86) decodeImm() {
	if d.flags.has(opAM) {
		// address mode, imm is a direct memory offset
		d.HasImm = true
		if d.Group4 == Prefix67 {
			d.ImmSize = 2
		} else {
			d.ImmSize = 4
		}
	} else {
		if d.flags.has(opI32) {
			d.HasImm = true
			if d.Group3 == Prefix66 {
				d.ImmSize = 2
			} else {
				d.ImmSize = 4
			}
		}

		if d.flags.has(opI16) {
			if d.HasImm {
				d.HasImm2 = true
				d.Imm2Size = 2
			} else {
				d.HasImm = true
				d.ImmSize = 2
			}
		}

		if d.flags.has(opI8) {
			if d.HasImm {
				d.HasImm2 = true
				d.Imm2Size = 1
			} else {
				d.HasImm = true
				d.ImmSize = 1
			}
		}
	}

	if d.HasImm {
		d.Imm = d.readLittle(d.ImmSize)

		if d.HasImm2 {
			d.Imm2 = d.readLittle(d.Imm2Size)
		}
	}

	if d.flags.has(opREL) {
		// imm is a relative address, move it to rel
		d.HasImm = false

		d.RelSize = d.ImmSize
		rel := uint32(d.Imm)

		if rel&(1<<(uint(d.RelSize)*8-1)) != 0 {
			switch d.RelSize {
			case 1:
				rel |= 0xffffff00
			case 2:
				rel |= 0xffff0000
			}
		}

		d.Rel = int32(rel)
		d.Abs = uint64(d.IP + uint32(d.Length) + rel)
		d.HasRel = true
	}
}
