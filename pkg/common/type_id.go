package common

import "fmt"

// LTypeId enumerates the logical types this module needs: the
// integer family the scalar bitwise aggregates run over, plus
// BIT/VARCHAR/BLOB for the bitstring family, and NULL/INVALID as
// sentinels. A full SQL binder's LTypeId would carry the whole type
// system (dates, decimals, structs, enums, timestamps...); none of
// that is exercised by a binder-less aggregate core.
type LTypeId int

const (
	LTID_INVALID   LTypeId = 0
	LTID_NULL      LTypeId = 1
	LTID_UNKNOWN   LTypeId = 2
	LTID_BOOLEAN   LTypeId = 10
	LTID_TINYINT   LTypeId = 11
	LTID_SMALLINT  LTypeId = 12
	LTID_INTEGER   LTypeId = 13
	LTID_BIGINT    LTypeId = 14
	LTID_CHAR      LTypeId = 24
	LTID_VARCHAR   LTypeId = 25
	LTID_BLOB      LTypeId = 26
	LTID_UTINYINT  LTypeId = 28
	LTID_USMALLINT LTypeId = 29
	LTID_UINTEGER  LTypeId = 30
	LTID_UBIGINT   LTypeId = 31
	LTID_BIT       LTypeId = 36
	LTID_HUGEINT   LTypeId = 50
	LTID_UHUGEINT  LTypeId = 52
	LTID_POINTER   LTypeId = 51
)

var lTypeIdToStr = map[LTypeId]string{
	LTID_INVALID:   "LTID_INVALID",
	LTID_NULL:      "LTID_NULL",
	LTID_UNKNOWN:   "LTID_UNKNOWN",
	LTID_BOOLEAN:   "LTID_BOOLEAN",
	LTID_TINYINT:   "LTID_TINYINT",
	LTID_SMALLINT:  "LTID_SMALLINT",
	LTID_INTEGER:   "LTID_INTEGER",
	LTID_BIGINT:    "LTID_BIGINT",
	LTID_CHAR:      "LTID_CHAR",
	LTID_VARCHAR:   "LTID_VARCHAR",
	LTID_BLOB:      "LTID_BLOB",
	LTID_UTINYINT:  "LTID_UTINYINT",
	LTID_USMALLINT: "LTID_USMALLINT",
	LTID_UINTEGER:  "LTID_UINTEGER",
	LTID_UBIGINT:   "LTID_UBIGINT",
	LTID_BIT:       "LTID_BIT",
	LTID_HUGEINT:   "LTID_HUGEINT",
	LTID_UHUGEINT:  "LTID_UHUGEINT",
	LTID_POINTER:   "LTID_POINTER",
}

func (id LTypeId) String() string {
	if s, has := lTypeIdToStr[id]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", id))
}
