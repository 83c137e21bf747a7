package lendis

import (
	"math/rand"
	"testing"
)

func checkInvariants(t *testing.T, in *Inst) {
	t.Helper()

	if in.Length < 1 || in.Length > MaxLength {
		t.Fatalf("length out of range: %d", in.Length)
	}
	if in.HasSIB && !in.HasModRM {
		t.Fatal("SIB without Mod R/M")
	}
	if in.HasImm2 && !in.HasImm {
		t.Fatal("second imm without first")
	}
	if in.HasRel && in.HasImm {
		t.Fatal("rel and imm at once")
	}

	sub := in.ErrorOpcode || in.ErrorOperand || in.ErrorLength ||
		in.ErrorLock || in.ErrorNoVEX || in.ErrorTruncated
	if in.Error != sub {
		t.Fatalf("error flag inconsistent: %+v", in)
	}
}

// Decoding never reads outside the buffer, always makes progress and the
// instruction lengths tile the consumed prefix of the buffer exactly.
func TestX86RandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	code := make([]byte, 64<<10)
	rng.Read(code)

	var ip uint32
	d := NewX86(code, 0)
	for d.Decode() {
		if d.IP != ip {
			t.Fatalf("cursor skew: ip=%#x want %#x", d.IP, ip)
		}
		checkInvariants(t, &d.Inst)

		if d.HasRel {
			want := uint64(d.IP + uint32(d.Length) + uint32(d.Rel))
			if d.Abs != want {
				t.Fatalf("abs=%#x want %#x at ip=%#x", d.Abs, want, d.IP)
			}
		}
		if uint64(d.IP)+uint64(d.Length) > uint64(len(code)) {
			t.Fatalf("overran buffer at ip=%#x len=%d", d.IP, d.Length)
		}

		ip += uint32(d.Length)
		d.Next()
	}
	if uint64(ip) < uint64(len(code)) {
		t.Fatalf("walk stopped early at %#x of %#x", ip, len(code))
	}
}

func TestX64RandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	code := make([]byte, 64<<10)
	rng.Read(code)

	var ip uint64
	d := NewX64(code, 0)
	for d.Decode() {
		if d.IP != ip {
			t.Fatalf("cursor skew: ip=%#x want %#x", d.IP, ip)
		}
		checkInvariants(t, &d.Inst)

		if d.HasRel {
			want := d.IP + uint64(d.Length) + uint64(int64(d.Rel))
			if d.Abs != want {
				t.Fatalf("abs=%#x want %#x at ip=%#x", d.Abs, want, d.IP)
			}
		}
		if d.IP+uint64(d.Length) > uint64(len(code)) {
			t.Fatalf("overran buffer at ip=%#x len=%d", d.IP, d.Length)
		}

		ip += uint64(d.Length)
		d.Next()
	}
	if ip < uint64(len(code)) {
		t.Fatalf("walk stopped early at %#x of %#x", ip, len(code))
	}
}

// Every opcode byte with an unmapped table entry decodes to a one byte
// instruction flagged ErrorOpcode, so callers can resync by skipping.
func TestX64InvalidOpcodesSkipOneByte(t *testing.T) {
	for b := 0; b < 256; b++ {
		if x64OpTable[b] != opError {
			continue
		}
		// skip prefix bytes, they never reach the table
		switch byte(b) {
		case PrefixLOCK, PrefixREPNZ, PrefixREPZ,
			PrefixSegCS, PrefixSegSS, PrefixSegDS,
			PrefixSegES, PrefixSegFS, PrefixSegGS,
			Prefix66, Prefix67, 0x62:
			continue
		}
		if b&0xf0 == 0x40 { // REX
			continue
		}
		if b == 0xf6 || b == 0xf7 { // group sub-dispatch overrides
			continue
		}
		if b == 0x0f || b == 0xc4 || b == 0xc5 { // opcode escapes, never looked up here
			continue
		}

		d := NewX64([]byte{byte(b)}, 0)
		if !d.Decode() {
			t.Fatalf("%#02x: expected an instruction", b)
		}
		if !d.ErrorOpcode || d.Length != 1 {
			t.Fatalf("%#02x: error=%v length=%d", b, d.ErrorOpcode, d.Length)
		}
	}
}

func TestX86LockOnRegisterFormAlwaysFlagged(t *testing.T) {
	for b := 0; b < 256; b++ {
		f := x86OpTable[b]
		if f == opError || !f.has(opRM) {
			continue
		}
		switch byte(b) {
		case 0x62, 0xc4, 0xc5: // VEX escapes, the 0xC0 byte below reroutes them
			continue
		}

		d := NewX86([]byte{PrefixLOCK, byte(b), 0xc0}, 0)
		if !d.Decode() {
			t.Fatalf("%#02x: expected an instruction", b)
		}
		if !d.ErrorLock {
			t.Fatalf("%#02x: LOCK on mod 3 not flagged", b)
		}
	}
}

func BenchmarkX64Decode(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	code := make([]byte, 1<<20)
	rng.Read(code)

	b.SetBytes(int64(len(code)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for d := NewX64(code, 0); d.Decode(); d.Next() {
		}
	}
}
