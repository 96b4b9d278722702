package common

import "fmt"

// PhyType is the physical storage type backing a logical type. A full
// SQL engine's PhyType would cover the whole type zoo (dates,
// decimals, floats, structs); this one keeps only the widths the
// bitwise, bitstring, and HLL core actually read and write.
type PhyType int

const (
	NA      PhyType = 0
	BOOL    PhyType = 1
	UINT8   PhyType = 2
	INT8    PhyType = 3
	UINT16  PhyType = 4
	INT16   PhyType = 5
	UINT32  PhyType = 6
	INT32   PhyType = 7
	UINT64  PhyType = 8
	INT64   PhyType = 9
	VARCHAR PhyType = 200
	INT128  PhyType = 204
	UNKNOWN PhyType = 205
	BIT     PhyType = 206
	POINTER PhyType = 208

	INVALID PhyType = 255
)

var pTypeToStr = map[PhyType]string{
	NA:      "NA",
	BOOL:    "BOOL",
	UINT8:   "UINT8",
	INT8:    "INT8",
	UINT16:  "UINT16",
	INT16:   "INT16",
	UINT32:  "UINT32",
	INT32:   "INT32",
	UINT64:  "UINT64",
	INT64:   "INT64",
	VARCHAR: "VARCHAR",
	INT128:  "INT128",
	UNKNOWN: "UNKNOWN",
	BIT:     "BIT",
	POINTER: "POINTER",
	INVALID: "INVALID",
}

func (pt PhyType) String() string {
	if s, has := pTypeToStr[pt]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", pt))
}

func (pt PhyType) Size() int {
	switch pt {
	case BIT, BOOL:
		return BoolSize
	case INT8, UINT8:
		return Int8Size
	case INT16, UINT16:
		return Int16Size
	case INT32, UINT32:
		return Int32Size
	case INT64, UINT64:
		return Int64Size
	case INT128:
		return Int128Size
	case VARCHAR:
		return VarcharSize
	case POINTER:
		return PointerSize
	case UNKNOWN:
		return 0
	default:
		panic(fmt.Sprintf("usp %d", pt))
	}
}

func (pt PhyType) IsConstant() bool {
	return pt >= BOOL && pt <= INT64 ||
		pt == INT128 ||
		pt == POINTER
}

func (pt PhyType) IsVarchar() bool {
	return pt == VARCHAR
}
