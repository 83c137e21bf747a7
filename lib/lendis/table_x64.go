package lendis

// 1st opcode flag table.
var x64OpTable = [256]opFlags{
	/*         x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7 */
	/* 00x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 01x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 02x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 03x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 04x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 05x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 06x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 07x */ rm, rm, rm, rm, i8, i32, er, er,
	/* 10x */ er, er, er, er, er, er, er, er,
	/* 11x */ er, er, er, er, er, er, er, er,
	/* 12x */ none, none, none, none, none, none, none, none,
	/* 13x */ none, none, none, none, none, none, none, none,
	/* 14x */ er, er, er, rm, er, er, er, er,
	/* 15x */ i32, rm | i32, i8, rm | i8, none, none, none, none,
	/* 16x */ r8, r8, r8, r8, r8, r8, r8, r8,
	/* 17x */ r8, r8, r8, r8, r8, r8, r8, r8,
	/* 20x */ ex | i8, ex | i32, er, ex | i8, rm, rm, rm, rm,
	/* 21x */ rm, rm, rm, rm, rm, rm, rm, ex,
	/* 22x */ none, none, none, none, none, none, none, none,
	/* 23x */ none, none, er, er, none, none, none, none,
	/* 24x */ am, am, am, am, none, none, none, none,
	/* 25x */ i8, i32, none, none, none, none, none, none,
	/* 26x */ i8, i8, i8, i8, i8, i8, i8, i8,
	/* 27x */ rw | i32, rw | i32, rw | i32, rw | i32, rw | i32, rw | i32, rw | i32, rw | i32,
	/* 30x */ ex | i8, ex | i8, i16, none, er, er, ex | i8, ex | i32,
	/* 31x */ i16 | i8, none, i16, none, none, i8, none, none,
	/* 32x */ ex, ex, ex, ex, er, er, er, none,
	/* 33x */ ex, ex, ex, ex, ex, ex, ex, ex,
	/* 34x */ r8, r8, r8, r8, i8, i8, i8, i8,
	/* 35x */ r32, r32, er, r8, none, none, none, none,
	/* 36x */ er, none, er, er, none, none, er, er,
	/* 37x */ none, none, none, none, none, none, rm, ex,
}

// 2nd opcode flag table, 0F xx.
var x64OpTable0F = [256]opFlags{
	/*         x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7 */
	/* 00x */ ex, ex, rm, rm, er, er, none, er,
	/* 01x */ none, none, er, none, er, rm, none, er,
	/* 02x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 03x */ ex, rm, rm, rm, rm, rm, rm, ex,
	/* 04x */ rm, rm, rm, rm, rm, er, rm, er,
	/* 05x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 06x */ none, none, none, none, none, none, er, none,
	/* 07x */ er, er, er, er, er, er, er, er,
	/* 10x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 11x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 12x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 13x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 14x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 15x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 16x */ rm | i8, ex | i8, ex | i8, ex | i8, rm, rm, rm, none,
	/* 17x */ rm, rm, er, er, rm, rm, rm, rm,
	/* 20x */ r32, r32, r32, r32, r32, r32, r32, r32,
	/* 21x */ r32, r32, r32, r32, r32, r32, r32, r32,
	/* 22x */ ex, ex, ex, ex, ex, ex, ex, ex,
	/* 23x */ ex, ex, ex, ex, ex, ex, ex, ex,
	/* 24x */ none, none, none, rm, rm | i8, rm, er, er,
	/* 25x */ none, none, none, rm, rm | i8, rm, ex, rm,
	/* 26x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 27x */ rm, none, ex | i8, rm, rm, rm, rm, rm,
	/* 30x */ rm, rm, rm | i8, rm, rm | i8, rm | i8, rm | i8, ex,
	/* 31x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 32x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 33x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 34x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 35x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 36x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 37x */ rm, rm, rm, rm, rm, rm, rm, rm,
}

// 3rd opcode flag table, 0F 38 xx.
var x64OpTable38 = [256]opFlags{
	/*         x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7 */
	/* 00x */ rm, rm, rm, rm, rm, rm, rm, rm,
	/* 01x */ rm, rm, rm, rm, vx | rm, vx | rm, er, er,
	/* 02x */ mp | rm, er, er, er, mp | rm, mp | rm, er, mp | rm,
	/* 03x */ vx | rm, er, vx | rm, er, rm, rm, rm, er,
	/* 04x */ mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, er, er,
	/* 05x */ mp | rm, mp | rm, mp | rm, mp | rm, vx | rm, vx | rm, er, er,
	/* 06x */ mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, er, mp | rm,
	/* 07x */ mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm, mp | rm,
	/* 10x */ mp | rm, mp | rm, er, er, er, er, er, er,
	/* 11x */ er, er, er, er, er, er, er, er,
	/* 12x */ er, er, er, er, er, er, er, er,
	/* 13x */ vx | rm, vx | rm, er, er, er, er, er, er,
	/* 14x */ er, er, er, er, er, er, er, er,
	/* 15x */ er, er, er, er, er, er, er, er,
	/* 16x */ er, er, er, er, er, er, er, er,
	/* 17x */ vx | rm, vx | rm, er, er, er, er, er, er,
	/* 20x */ mp | rm, mp | rm, er, er, er, er, er, er,
	/* 21x */ er, er, er, er, er, er, er, er,
	/* 22x */ er, er, er, er, er, er, vx | rm, vx | rm,
	/* 23x */ vx | rm, er, vx | rm, er, vx | rm, er, vx | rm, er,
	/* 24x */ er, er, er, er, er, er, vx | rm, vx | rm,
	/* 25x */ vx | rm, er, vx | rm, er, vx | rm, er, vx | rm, er,
	/* 26x */ er, er, er, er, er, er, vx | rm, vx | rm,
	/* 27x */ vx | rm, er, vx | rm, er, vx | rm, er, vx | rm, er,
	/* 30x */ er, er, er, er, er, er, er, er,
	/* 31x */ rm, rm, rm, rm, rm, rm, er, er,
	/* 32x */ er, er, er, er, er, er, er, er,
	/* 33x */ er, er, er, rm, rm, rm, rm, rm,
	/* 34x */ er, er, er, er, er, er, er, er,
	/* 35x */ er, er, er, er, er, er, er, er,
	/* 36x */ rm, rm, er, er, er, er, rm, er,
	/* 37x */ er, er, er, er, er, er, er, er,
}

// 3rd opcode flag table, 0F 3A xx.
var x64OpTable3A = [256]opFlags{
	/*         x0,      x1,      x2,      x3,      x4,      x5,      x6,      x7 */
	/* 00x */ er, er, er, er, er, er, vx | rm | i8, er,
	/* 01x */ mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, rm,
	/* 02x */ er, er, er, er, mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8,
	/* 03x */ vx | rm | i8, vx | rm | i8, er, er, er, er, er, er,
	/* 04x */ mp | rm | i8, mp | rm | i8, mp | rm | i8, er, er, er, er, er,
	/* 05x */ er, er, er, er, er, er, er, er,
	/* 06x */ er, er, er, er, er, er, er, er,
	/* 07x */ er, er, er, er, er, er, er, er,
	/* 10x */ mp | rm, mp | rm, mp | rm | i8, er, er, er, er, er,
	/* 11x */ er, er, vx | rm | i8, vx | rm | i8, vx | rm | i8, er, er, er,
	/* 12x */ er, er, er, er, er, er, er, er,
	/* 13x */ er, er, er, er, er, er, er, er,
	/* 14x */ mp | rm | i8, mp | rm | i8, mp | rm | i8, mp | rm | i8, er, er, er, er,
	/* 15x */ vx | rm | i8, er, er, er, er, er, er, er,
	/* 16x */ er, er, er, er, er, er, er, er,
	/* 17x */ er, er, er, er, er, er, er, er,
	/* 20x */ er, er, er, er, er, er, er, er,
	/* 21x */ er, er, er, er, er, er, er, er,
	/* 22x */ er, er, er, er, er, er, er, er,
	/* 23x */ er, er, er, er, er, er, er, er,
	/* 24x */ er, er, er, er, er, er, er, er,
	/* 25x */ er, er, er, er, er, er, er, er,
	/* 26x */ er, er, er, er, er, er, er, er,
	/* 27x */ er, er, er, er, er, er, er, er,
	/* 30x */ er, er, er, er, er, er, er, er,
	/* 31x */ er, er, er, er, mp | rm | i8, er, er, er,
	/* 32x */ er, er, er, er, er, er, er, er,
	/* 33x */ er, er, er, er, er, er, er, er,
	/* 34x */ er, er, er, er, er, er, er, er,
	/* 35x */ er, er, er, er, er, er, er, er,
	/* 36x */ er, er, er, er, er, er, er, er,
	/* 37x */ er, er, er, er, er, er, er, er,
}
