package convert

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mica-format/go-mica/ir"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

var (
	Int   = SignedOf[int]()
	Int8  = SignedOf[int8]()
	Int16 = SignedOf[int16]()
	Int32 = SignedOf[int32]()
	Int64 = SignedOf[int64]()

	Uint   = UnsignedOf[uint]()
	Uint8  = UnsignedOf[uint8]()
	Uint16 = UnsignedOf[uint16]()
	Uint32 = UnsignedOf[uint32]()
	Uint64 = UnsignedOf[uint64]()

	Float32 = FloatOf[float32]()
	Float64 = FloatOf[float64]()
)

// SignedOf builds the codec for a signed integral type. Encoding is plain
// decimal. Decoding takes decimal, 0o octal and 0x hex forms, parses
// through a 64-bit accumulator and fails on any value outside T's range.
func SignedOf[T Signed]() Codec[T] {
	return signedCodec[T]{}
}

type signedCodec[T Signed] struct{}

func (signedCodec[T]) Encode(v T) *ir.Node {
	return ir.Scalar(strconv.FormatInt(int64(v), 10))
}

func (signedCodec[T]) Decode(n *ir.Node) (T, bool) {
	var zero T
	if n.Kind != ir.ScalarKind {
		return zero, false
	}
	wide, ok := parseWideInt(n.Text)
	if !ok || int64(T(wide)) != wide {
		return zero, false
	}
	return T(wide), true
}

// UnsignedOf is SignedOf's unsigned counterpart.
func UnsignedOf[T Unsigned]() Codec[T] {
	return unsignedCodec[T]{}
}

type unsignedCodec[T Unsigned] struct{}

func (unsignedCodec[T]) Encode(v T) *ir.Node {
	return ir.Scalar(strconv.FormatUint(uint64(v), 10))
}

func (unsignedCodec[T]) Decode(n *ir.Node) (T, bool) {
	var zero T
	if n.Kind != ir.ScalarKind {
		return zero, false
	}
	wide, ok := parseWideUint(n.Text)
	if !ok || uint64(T(wide)) != wide {
		return zero, false
	}
	return T(wide), true
}

// parseWideInt tries the decimal, octal and hex grammars in that order.
// Octal and hex take no sign. Overflow of the wide accumulator fails.
func parseWideInt(s string) (int64, bool) {
	var (
		v   int64
		err error
	)
	switch {
	case decimalText.MatchString(s):
		v, err = strconv.ParseInt(s, 10, 64)
	case octalText.MatchString(s):
		v, err = strconv.ParseInt(s[2:], 8, 64)
	case hexText.MatchString(s):
		v, err = strconv.ParseInt(s[2:], 16, 64)
	default:
		return 0, false
	}
	return v, err == nil
}

func parseWideUint(s string) (uint64, bool) {
	var (
		v   uint64
		err error
	)
	switch {
	case decimalText.MatchString(s):
		if s[0] == '-' {
			// a signed form is only in range when it is zero
			i, ierr := strconv.ParseInt(s, 10, 64)
			if ierr != nil || i != 0 {
				return 0, false
			}
			return 0, true
		}
		v, err = strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	case octalText.MatchString(s):
		v, err = strconv.ParseUint(s[2:], 8, 64)
	case hexText.MatchString(s):
		v, err = strconv.ParseUint(s[2:], 16, 64)
	default:
		return 0, false
	}
	return v, err == nil
}

// FloatOf builds the codec for a floating point type. NaN and the two
// infinities encode as .nan, .inf and -.inf; anything else encodes with
// just enough digits to round-trip, plus a trailing dot whenever the text
// would otherwise read as a decimal integer.
func FloatOf[T Float]() Codec[T] {
	return floatCodec[T]{}
}

type floatCodec[T Float] struct{}

func (floatCodec[T]) Encode(v T) *ir.Node {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return ir.Scalar(".nan")
	case math.IsInf(f, 1):
		return ir.Scalar(".inf")
	case math.IsInf(f, -1):
		return ir.Scalar("-.inf")
	}
	s := strconv.FormatFloat(f, 'g', -1, reflect.TypeFor[T]().Bits())
	if decimalText.MatchString(s) {
		s += "."
	}
	return ir.Scalar(s)
}

func (floatCodec[T]) Decode(n *ir.Node) (T, bool) {
	var zero T
	if n.Kind != ir.ScalarKind {
		return zero, false
	}
	f, ok := parseWideFloat(n.Text)
	if !ok {
		return zero, false
	}
	// narrowing may land on an infinity; unlike the integral path that is
	// in range
	return T(f), true
}

func parseWideFloat(s string) (float64, bool) {
	switch {
	case floatText.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	case infText.MatchString(s):
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case nanText.MatchString(s):
		return math.NaN(), true
	default:
		return 0, false
	}
}
