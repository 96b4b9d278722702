package common

import (
	"fmt"

	"github.com/daviszhen/hllbit/pkg/util"
)

type LType struct {
	Id   LTypeId
	PTyp PhyType
}

func (lt LType) Serialize(serial util.Serialize) error {
	return util.Write[int](int(lt.Id), serial)
}

func DeserializeLType(deserial util.Deserialize) (LType, error) {
	id := 0
	err := util.Read[int](&id, deserial)
	if err != nil {
		return LType{}, err
	}
	ret := LType{Id: LTypeId(id)}
	ret.PTyp = ret.GetInternalType()
	return ret, nil
}

func MakeLType(id LTypeId) LType {
	ret := LType{Id: id}
	ret.PTyp = ret.GetInternalType()
	return ret
}

func Null() LType {
	return MakeLType(LTID_NULL)
}

func BooleanType() LType {
	return MakeLType(LTID_BOOLEAN)
}

func TinyintType() LType {
	return MakeLType(LTID_TINYINT)
}

func SmallintType() LType {
	return MakeLType(LTID_SMALLINT)
}

func IntegerType() LType {
	return MakeLType(LTID_INTEGER)
}

func BigintType() LType {
	return MakeLType(LTID_BIGINT)
}

func UtinyintType() LType {
	return MakeLType(LTID_UTINYINT)
}

func UsmallintType() LType {
	return MakeLType(LTID_USMALLINT)
}

func UintegerType() LType {
	return MakeLType(LTID_UINTEGER)
}

func UbigintType() LType {
	return MakeLType(LTID_UBIGINT)
}

func HugeintType() LType {
	return MakeLType(LTID_HUGEINT)
}

func HashType() LType {
	return MakeLType(LTID_UBIGINT)
}

func VarcharType() LType {
	return MakeLType(LTID_VARCHAR)
}

func BitType() LType {
	return MakeLType(LTID_BIT)
}

func PointerType() LType {
	return MakeLType(LTID_POINTER)
}

var integralTypes = map[LTypeId]int{
	LTID_TINYINT:   0,
	LTID_SMALLINT:  0,
	LTID_INTEGER:   0,
	LTID_BIGINT:    0,
	LTID_UTINYINT:  0,
	LTID_USMALLINT: 0,
	LTID_UINTEGER:  0,
	LTID_UBIGINT:   0,
	LTID_HUGEINT:   0,
}

// IntegralTypes lists every integer width the scalar bitwise
// aggregate family (bit_and/bit_or/bit_xor) and bitstring_agg
// register over.
func IntegralTypes() []LType {
	ids := []LTypeId{
		LTID_TINYINT, LTID_SMALLINT, LTID_INTEGER, LTID_BIGINT, LTID_HUGEINT,
		LTID_UTINYINT, LTID_USMALLINT, LTID_UINTEGER, LTID_UBIGINT,
	}
	ret := make([]LType, len(ids))
	for i, id := range ids {
		ret[i] = MakeLType(id)
	}
	return ret
}

func (lt LType) IsIntegral() bool {
	_, has := integralTypes[lt.Id]
	return has
}

func (lt LType) Equal(o LType) bool {
	return lt.Id == o.Id
}

func (lt LType) GetInternalType() PhyType {
	switch lt.Id {
	case LTID_BOOLEAN:
		return BOOL
	case LTID_TINYINT:
		return INT8
	case LTID_UTINYINT:
		return UINT8
	case LTID_SMALLINT:
		return INT16
	case LTID_USMALLINT:
		return UINT16
	case LTID_NULL, LTID_INTEGER:
		return INT32
	case LTID_UINTEGER:
		return UINT32
	case LTID_BIGINT:
		return INT64
	case LTID_UBIGINT:
		return UINT64
	case LTID_HUGEINT, LTID_UHUGEINT:
		return INT128
	case LTID_VARCHAR, LTID_CHAR, LTID_BLOB, LTID_BIT:
		return VARCHAR
	case LTID_POINTER:
		return UINT64
	case LTID_INVALID, LTID_UNKNOWN:
		return INVALID
	default:
		panic(fmt.Sprintf("usp logical type %d", lt.Id))
	}
}

func (lt LType) String() string {
	return lt.Id.String()
}
