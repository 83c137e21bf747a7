package lendis

// Short aliases so the flag tables stay reviewable column by column
// against the Intel SDM opcode maps.
const (
	none = opNone
	er   = opError
	rm   = opRM
	ex   = opEX
	r8   = opR8
	r32  = opR32
	i8   = opI8
	i16  = opI16
	i32  = opI32
	rw   = opRW
	am   = opAM
	vx   = opVX
	mp   = opMP
)

// 1st opcode flag table.
var x86OpTable = [256]opFlags{
	/*        x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7,      x8,      x9,      xA,      xB,      xC,      xD,      xE,      xF */
	/* 0x */ rm, rm, rm, rm, i8, i32, none, none, rm, rm, rm, rm, i8, i32, none, er,
	/* 1x */ rm, rm, rm, rm, i8, i32, none, none, rm, rm, rm, rm, i8, i32, none, none,
	/* 2x */ rm, rm, rm, rm, i8, i32, er, none, rm, rm, rm, rm, i8, i32, er, none,
	/* 3x */ rm, rm, rm, rm, i8, i32, er, none, rm, rm, rm, rm, i8, i32, er, none,
	/* 4x */ none, none, none, none, none, none, none, none, none, none, none, none, none, none, none, none,
	/* 5x */ none, none, none, none, none, none, none, none, none, none, none, none, none, none, none, none,
	/* 6x */ none, none, rm, rm, er, er, er, er, i32, rm | i32, i8, rm | i8, none, none, none, none,
	/* 7x */ r8, r8, r8, r8, r8, r8, r8, r8, r8, r8, r8, r8, r8, r8, r8, r8,
	/* 8x */ rm | i8, rm | i32, rm | i8, rm | i8, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* 9x */ none, none, none, none, none, none, none, none, none, none, i32 | i16, none, none, none, none, none,
	/* Ax */ i32 | am, i32 | am, i32 | am, i32 | am, none, none, none, none, i8, i32, none, none, none, none, none, none,
	/* Bx */ i8, i8, i8, i8, i8, i8, i8, i8, i32, i32, i32, i32, i32, i32, i32, i32,
	/* Cx */ rm | i8, rm | i8, i16, none, rm, rm, rm | i8, rm | i32, i16 | i8, none, i16, none, none, i8, none, none,
	/* Dx */ rm, rm, rm, rm, i8, i8, none, none, rm, rm, rm, rm, rm, rm, rm, rm,
	/* Ex */ r8, r8, r8, r8, i8, i8, i8, i8, r32, r32, i32 | i16, r8, none, none, none, none,
	/* Fx */ er, none, er, er, none, none, er, er, none, none, none, none, none, none, rm, rm,
}

// 2nd opcode flag table, 0F xx.
var x86OpTable0F = [256]opFlags{
	/*        x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7,      x8,      x9,      xA,      xB,      xC,      xD,      xE,      xF */
	/* 0x */ rm, rm, rm, rm, er, er, none, er, none, none, er, none, er, rm, none, er,
	/* 1x */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* 2x */ rm, rm, rm, rm, rm, er, rm, er, rm, rm, rm, rm, rm, rm, rm, rm,
	/* 3x */ none, none, none, none, none, none, er, none, er, er, er, er, er, er, er, er,
	/* 4x */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* 5x */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* 6x */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* 7x */ rm | i8, rm | i8, rm | i8, rm | i8, rm, rm, rm, none, rm, rm, er, er, rm, rm, rm, rm,
	/* 8x */ r32, r32, r32, r32, r32, r32, r32, r32, r32, r32, r32, r32, r32, r32, r32, r32,
	/* 9x */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* Ax */ none, none, none, rm, rm | i8, rm, er, er, none, none, none, rm, rm | i8, rm, rm, rm,
	/* Bx */ rm, rm, rm, rm, rm, rm, rm, rm, rm, none, i8, rm, rm, rm, rm, rm,
	/* Cx */ rm, rm, rm | i8, rm, rm | i8, rm | i8, rm | i8, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* Dx */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* Ex */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
	/* Fx */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm,
}

// 3rd opcode flag table, 0F 38 xx.
var x86OpTable38 = [256]opFlags{
	/*        x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7,      x8,      x9,      xA,      xB,      xC,      xD,      xE,      xF */
	/* 0x */ rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, rm, vx | rm, vx | rm, er, er,
	/* 1x */ mp | rm, er, er, er, mp | rm, mp | rm, er, mp | rm, vx | rm, er, vx | rm, er, rm, rm, rm, er,
	/* 2x */ mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, er, er, mp | rm, mp | rm, mp | rm, mp | rm, vx | rm, vx | rm, er, er,
	/* 3x */ mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, er, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm,
	/* 4x */ mp | rm, mp | rm, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 5x */ er, er, er, er, er, er, er, er, vx | rm, vx | rm, er, er, er, er, er, er,
	/* 6x */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 7x */ er, er, er, er, er, er, er, er, vx | rm, vx | rm, er, er, er, er, er, er,
	/* 8x */ mp | rm, mp | rm, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 9x */ er, er, er, er, er, er, vx | rm, vx | rm, vx | rm, er, vx | rm, er, vx | rm, er, vx | rm, er,
	/* Ax */ er, er, er, er, er, er, vx | rm, vx | rm, vx | rm, er, vx | rm, er, vx | rm, er, vx | rm, er,
	/* Bx */ er, er, er, er, er, er, vx | rm, vx | rm, vx | rm, er, vx | rm, er, vx | rm, er, vx | rm, er,
	/* Cx */ er, er, er, er, er, er, er, er, rm, rm, rm, rm, rm, rm, er, er,
	/* Dx */ er, er, er, er, er, er, er, er, er, er, er, rm, rm, rm, rm, rm,
	/* Ex */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* Fx */ rm, rm, er, er, er, er, rm, er, er, er, er, er, er, er, er, er,
}

// 3rd opcode flag table, 0F 3A xx.
var x86OpTable3A = [256]opFlags{
	/*        x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7,      x8,      x9,      xA,      xB,      xC,      xD,      xE,      xF */
	/* 0x */ er, er, er, er, er, er, vx | rm | i8, er, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, rm,
	/* 1x */ er, er, er, er, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, vx | rm | i8, vx | rm | i8, er, er, er, er, er, er,
	/* 2x */ mp | rm | i8, mp | rm | i8, mp | rm | i8, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 3x */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 4x */ mp | rm, mp | rm, mp | rm | i8, er, er, er, er, er, er, er, vx | rm | i8, vx | rm | i8, vx | rm | i8, er, er, er,
	/* 5x */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 6x */ mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, er, er, er, er, vx | rm | i8, er, er, er, er, er, er, er,
	/* 7x */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 8x */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* 9x */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* Ax */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* Bx */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* Cx */ er, er, er, er, er, er, er, er, er, er, er, er, mp | rm | i8, er, er, er,
	/* Dx */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* Ex */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
	/* Fx */ er, er, er, er, er, er, er, er, er, er, er, er, er, er, er, er,
}
