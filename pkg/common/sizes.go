package common

import "unsafe"

// Byte widths of the physical types this module carries. The teacher
// derived these via unsafe.Sizeof over its full type zoo (dates,
// decimals, intervals); this module keeps only the widths the
// bitwise/range-bitmap/HLL core actually measures against.
var (
	BoolSize    int
	Int8Size    int
	Int16Size   int
	Int32Size   int
	Int64Size   int
	Int128Size  int
	VarcharSize int
	PointerSize int
)

func init() {
	b := false
	BoolSize = int(unsafe.Sizeof(b))
	i := int8(0)
	Int8Size = int(unsafe.Sizeof(i))
	Int16Size = Int8Size * 2
	Int32Size = Int8Size * 4
	Int64Size = Int8Size * 8
	Int128Size = int(unsafe.Sizeof(Hugeint{}))
	VarcharSize = int(unsafe.Sizeof(String{}))
	PointerSize = int(unsafe.Sizeof(unsafe.Pointer(&b)))
}
