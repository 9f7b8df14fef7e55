package drawroutine

// Repeat decodes an object's size byte into an iteration count.
//
// Count is size&0x0F + Plus, except that a zero size nibble means ZeroAs
// when ZeroAs is set. Only the "1to15or32" and "1to15or26" routines have a
// ZeroAs; that quirk comes from the ROM format and is kept as is.
type Repeat struct {
	Plus   int
	ZeroAs int
}

func (r Repeat) Count(size uint8) int {
	s := int(size & 0x0F)
	if s == 0 && r.ZeroAs != 0 {
		return r.ZeroAs
	}
	return s + r.Plus
}

var (
	rep1to15or32 = Repeat{ZeroAs: 32}
	rep1to15or26 = Repeat{ZeroAs: 26}
	rep1to16     = Repeat{Plus: 1}
	repPlus2     = Repeat{Plus: 2}
	repPlus3     = Repeat{Plus: 3}
	repPlus4     = Repeat{Plus: 4}
	repDiagBoth  = Repeat{Plus: 6}
	repPlus7     = Repeat{Plus: 7}
	repPlus10    = Repeat{Plus: 10}
	repPlus23    = Repeat{Plus: 23}
)
