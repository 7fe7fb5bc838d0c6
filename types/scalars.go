package types

import (
	"math"
)

// Element types. Each one maps to a single kind.
type (
	Boolean   bool
	GUID      [16]byte
	Byte      uint8
	Short     int16
	Int       int32
	Long      int64
	Real      float32
	Float     float64
	Char      byte
	Symbol    string
	Timestamp int64
	Month     int32
	Date      int32
	Datetime  float64
	Timespan  int64
	Minute    int32
	Second    int32
	Time      int32
	Enum      int64
)

// Scalar is the set of element types that can be stored in atoms and vectors.
type Scalar interface {
	Boolean | GUID | Byte | Short | Int | Long | Real | Float | Char | Symbol |
		Timestamp | Month | Date | Datetime | Timespan | Minute | Second | Time

	Kind() Kind
	IsNull() bool
}

// Null and infinity sentinels.
const (
	NullShort Short = math.MinInt16
	InfShort  Short = math.MaxInt16
	NullInt   Int   = math.MinInt32
	InfInt    Int   = math.MaxInt32
	NullLong  Long  = math.MinInt64
	InfLong   Long  = math.MaxInt64

	NullTimestamp Timestamp = math.MinInt64
	InfTimestamp  Timestamp = math.MaxInt64
	NullTimespan  Timespan  = math.MinInt64
	InfTimespan   Timespan  = math.MaxInt64
	NullMonth     Month     = math.MinInt32
	InfMonth      Month     = math.MaxInt32
	NullDate      Date      = math.MinInt32
	InfDate       Date      = math.MaxInt32
	NullMinute    Minute    = math.MinInt32
	InfMinute     Minute    = math.MaxInt32
	NullSecond    Second    = math.MinInt32
	InfSecond     Second    = math.MaxInt32
	NullTime      Time      = math.MinInt32
	InfTime       Time      = math.MaxInt32

	NullEnum Enum = math.MinInt64
	InfEnum  Enum = math.MaxInt64

	NullSymbol Symbol = ""
)

// NullGUID is the all-zero GUID.
var NullGUID GUID

func (Boolean) Kind() Kind   { return KindBoolean }
func (GUID) Kind() Kind      { return KindGUID }
func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Real) Kind() Kind      { return KindReal }
func (Float) Kind() Kind     { return KindFloat }
func (Char) Kind() Kind      { return KindChar }
func (Symbol) Kind() Kind    { return KindSymbol }
func (Timestamp) Kind() Kind { return KindTimestamp }
func (Month) Kind() Kind     { return KindMonth }
func (Date) Kind() Kind      { return KindDate }
func (Datetime) Kind() Kind  { return KindDatetime }
func (Timespan) Kind() Kind  { return KindTimespan }
func (Minute) Kind() Kind    { return KindMinute }
func (Second) Kind() Kind    { return KindSecond }
func (Time) Kind() Kind      { return KindTime }

// Booleans, bytes and chars have no null.
func (Boolean) IsNull() bool { return false }
func (Byte) IsNull() bool    { return false }
func (Char) IsNull() bool    { return false }

func (g GUID) IsNull() bool      { return g == NullGUID }
func (x Short) IsNull() bool     { return x == NullShort }
func (x Int) IsNull() bool       { return x == NullInt }
func (x Long) IsNull() bool      { return x == NullLong }
func (x Real) IsNull() bool      { return math.IsNaN(float64(x)) }
func (x Float) IsNull() bool     { return math.IsNaN(float64(x)) }
func (s Symbol) IsNull() bool    { return s == NullSymbol }
func (x Timestamp) IsNull() bool { return x == NullTimestamp }
func (x Month) IsNull() bool     { return x == NullMonth }
func (x Date) IsNull() bool      { return x == NullDate }
func (x Datetime) IsNull() bool  { return math.IsNaN(float64(x)) }
func (x Timespan) IsNull() bool  { return x == NullTimespan }
func (x Minute) IsNull() bool    { return x == NullMinute }
func (x Second) IsNull() bool    { return x == NullSecond }
func (x Time) IsNull() bool      { return x == NullTime }
func (x Enum) IsNull() bool      { return x == NullEnum }

// IsInf reports whether x is the positive or negative infinity of its kind.
func (x Short) IsInf() bool     { return x == InfShort || x == -InfShort }
func (x Int) IsInf() bool       { return x == InfInt || x == -InfInt }
func (x Long) IsInf() bool      { return x == InfLong || x == -InfLong }
func (x Real) IsInf() bool      { return math.IsInf(float64(x), 0) }
func (x Float) IsInf() bool     { return math.IsInf(float64(x), 0) }
func (x Timestamp) IsInf() bool { return x == InfTimestamp || x == -InfTimestamp }
func (x Month) IsInf() bool     { return x == InfMonth || x == -InfMonth }
func (x Date) IsInf() bool      { return x == InfDate || x == -InfDate }
func (x Datetime) IsInf() bool  { return math.IsInf(float64(x), 0) }
func (x Timespan) IsInf() bool  { return x == InfTimespan || x == -InfTimespan }
func (x Minute) IsInf() bool    { return x == InfMinute || x == -InfMinute }
func (x Second) IsInf() bool    { return x == InfSecond || x == -InfSecond }
func (x Time) IsInf() bool      { return x == InfTime || x == -InfTime }
