package parser

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"herald/pkg/input"
)

// Integer is the constraint covering the signed integer argument types
// (8 through 64 bit). One generic parser serves the whole family; per-type
// behavior differences are nothing but the bit width and configured bounds.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Float is the constraint covering the floating-point argument types.
type Float interface {
	~float32 | ~float64
}

// IntegerParser parses one token as a signed integer of type T, enforcing
// the configured [Min, Max] range. The zero value accepts the full range of
// T; use NewIntegerParserInRange for explicit bounds. HasMin/HasMax track
// whether bounds were configured, so error messages can report "unbounded"
// instead of the type's physical limits.
type IntegerParser[T Integer] struct {
	Min, Max       T
	HasMin, HasMax bool
}

// NewIntegerParser returns a parser accepting the full range of T.
func NewIntegerParser[T Integer]() *IntegerParser[T] {
	lo, hi := integerLimits[T]()
	return &IntegerParser[T]{Min: T(lo), Max: T(hi)}
}

// NewIntegerParserInRange returns a parser restricted to [min, max].
func NewIntegerParserInRange[T Integer](min, max T) *IntegerParser[T] {
	return &IntegerParser[T]{Min: min, Max: max, HasMin: true, HasMax: true}
}

// Parse implements Parser.
func (p *IntegerParser[T]) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}
	v, err := strconv.ParseInt(token, 10, bitsOf[T]())
	if err != nil || v < int64(p.Min) || v > int64(p.Max) {
		return nil, &NumberError{
			TypeName: typeNameOf[T](),
			Input:    token,
			Min:      renderIntBound(int64(p.Min), p.HasMin),
			Max:      renderIntBound(int64(p.Max), p.HasMax),
		}
	}
	in.ReadString()
	return T(v), nil
}

// ContextFree implements Parser.
func (p *IntegerParser[T]) ContextFree() bool { return true }

// Suggest proposes digit extensions of the partial input that are either in
// range themselves or a prefix of some in-range value. For partial input "1"
// with max 120 this yields "1", "10" through "19"; values such as "13" stay
// because 13 is already within range, and "19" stays because it is in range
// even though no further extension of it is.
func (p *IntegerParser[T]) Suggest(_ Context, prefix string) []string {
	return suggestIntegers(prefix, int64(p.Min), int64(p.Max))
}

// FloatParser parses one token as a floating-point number of type T,
// enforcing the configured [Min, Max] range. Construction mirrors
// IntegerParser.
type FloatParser[T Float] struct {
	Min, Max       T
	HasMin, HasMax bool
}

// NewFloatParser returns a parser accepting the full range of T.
func NewFloatParser[T Float]() *FloatParser[T] {
	return &FloatParser[T]{Min: T(math.Inf(-1)), Max: T(math.Inf(1))}
}

// NewFloatParserInRange returns a parser restricted to [min, max].
func NewFloatParserInRange[T Float](min, max T) *FloatParser[T] {
	return &FloatParser[T]{Min: min, Max: max, HasMin: true, HasMax: true}
}

// Parse implements Parser.
func (p *FloatParser[T]) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}
	v, err := strconv.ParseFloat(token, bitsOf[T]())
	// The comparison is phrased positively so NaN, which fails every
	// ordering test, can never slip through a bounds check.
	if err != nil || !(v >= float64(p.Min) && v <= float64(p.Max)) {
		return nil, &NumberError{
			TypeName: typeNameOf[T](),
			Input:    token,
			Min:      renderFloatBound(float64(p.Min), p.HasMin),
			Max:      renderFloatBound(float64(p.Max), p.HasMax),
		}
	}
	in.ReadString()
	return T(v), nil
}

// ContextFree implements Parser.
func (p *FloatParser[T]) ContextFree() bool { return true }

// Suggest proposes digit extensions over the integer portion of the range.
// Fractional completions are not generated; once the user types a decimal
// point the suggestion list goes quiet.
func (p *FloatParser[T]) Suggest(_ Context, prefix string) []string {
	min := float64(p.Min)
	max := float64(p.Max)
	lo := int64(math.MinInt64)
	hi := int64(math.MaxInt64)
	if min > float64(math.MinInt64) {
		lo = int64(math.Ceil(min))
	}
	if max < float64(math.MaxInt64) {
		hi = int64(math.Floor(max))
	}
	return suggestIntegers(prefix, lo, hi)
}

func bitsOf[T any]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}

func typeNameOf[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func integerLimits[T Integer]() (int64, int64) {
	bits := bitsOf[T]()
	max := int64(1)<<(bits-1) - 1
	return -max - 1, max
}

func renderIntBound(v int64, configured bool) string {
	if !configured {
		return Unbounded
	}
	return strconv.FormatInt(v, 10)
}

func renderFloatBound(v float64, configured bool) string {
	if !configured {
		return Unbounded
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func suggestIntegers(prefix string, min, max int64) []string {
	switch prefix {
	case "", "-":
		var out []string
		if prefix == "" && min < 0 {
			out = append(out, "-")
		}
		for d := int64(0); d <= 9; d++ {
			if d == 0 && prefix == "-" {
				continue
			}
			c := d
			if prefix == "-" {
				c = -d
			}
			ok := c >= min && c <= max
			// "0" is never a prefix of a longer number.
			if !ok && c != 0 {
				ok = digitExtensionInRange(c, min, max)
			}
			if ok {
				out = append(out, prefix+strconv.FormatInt(d, 10))
			}
		}
		return out
	}

	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return nil
	}
	var out []string
	if n >= min && n <= max {
		out = append(out, prefix)
	}
	// Extending "0" would produce leading-zero forms like "01".
	if n == 0 {
		return out
	}
	for d := int64(0); d <= 9; d++ {
		if n > 0 && n > (math.MaxInt64-d)/10 {
			break
		}
		if n < 0 && n < (math.MinInt64+d)/10 {
			break
		}
		c := n*10 + d
		if n < 0 {
			c = n*10 - d
		}
		if (c >= min && c <= max) || digitExtensionInRange(c, min, max) {
			out = append(out, prefix+strconv.FormatInt(d, 10))
		}
	}
	return out
}

// digitExtensionInRange reports whether appending one or more decimal digits
// to c can produce a value within [min, max].
func digitExtensionInRange(c, min, max int64) bool {
	lo, hi := c, c
	for i := 0; i < 18; i++ {
		if c >= 0 {
			if lo > math.MaxInt64/10 || hi > (math.MaxInt64-9)/10 {
				return false
			}
			lo = lo * 10
			hi = hi*10 + 9
			if lo > max {
				return false
			}
			if hi >= min {
				return true
			}
		} else {
			if lo < (math.MinInt64+9)/10 || hi < math.MinInt64/10 {
				return false
			}
			lo = lo*10 - 9
			hi = hi * 10
			if hi < min {
				return false
			}
			if lo <= max {
				return true
			}
		}
	}
	return false
}
