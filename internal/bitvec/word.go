package bitvec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxWidth is the widest word supported.
const MaxWidth = 64

var (
	// ErrMalformed is returned when a word literal does not follow the
	// `<width>'h<hex>` syntax.
	ErrMalformed = errors.New("malformed configuration word")
	// ErrOverflow is returned when the value has bits set above the
	// declared width.
	ErrOverflow = errors.New("value does not fit declared width")
)

var literalRegex = regexp.MustCompile(`^\s*(\d+)\s*'\s*[hH]\s*([0-9a-fA-F_]+)\s*$`)

// Word is an immutable bit vector of fixed width.
type Word struct {
	width int
	value uint64
}

// New returns a word of the given width. It panics if value has bits set
// above width or if width is out of range.
func New(width int, value uint64) Word {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bitvec: invalid width %d", width))
	}
	if width < MaxWidth && value>>uint(width) != 0 {
		panic(fmt.Sprintf("bitvec: value %#x overflows %d bits", value, width))
	}
	return Word{width: width, value: value}
}

// FromBits builds a word from bits stored least-significant first.
func FromBits(bits ...bool) Word {
	var v uint64
	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}
	return New(len(bits), v)
}

// Parse parses a `<width>'h<hex>` literal such as "4'h8" or "20'h0_7F0A".
// Hex digits may be fewer than the width requires (zero extended) but
// must not encode bits above it.
func Parse(s string) (Word, error) {
	m := literalRegex.FindStringSubmatch(s)
	if m == nil {
		return Word{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	width, err := strconv.Atoi(m[1])
	if err != nil || width < 1 || width > MaxWidth {
		return Word{}, fmt.Errorf("%w: width %s out of range in %q", ErrMalformed, m[1], s)
	}
	digits := strings.TrimLeft(strings.ReplaceAll(m[2], "_", ""), "0")
	if digits == "" {
		return Word{width: width}, nil
	}
	if len(digits) > MaxWidth/4 {
		return Word{}, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Word{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	if width < MaxWidth && v>>uint(width) != 0 {
		return Word{}, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return Word{width: width, value: v}, nil
}

// Width returns the declared bit width.
func (w Word) Width() int { return w.width }

// Uint returns the word as an unsigned integer.
func (w Word) Uint() uint64 { return w.value }

// IsZero reports whether w is the zero Word (no width).
func (w Word) IsZero() bool { return w.width == 0 }

// Bit returns bit i. It panics if i is outside [0, Width).
func (w Word) Bit(i int) bool {
	if i < 0 || i >= w.width {
		panic(fmt.Sprintf("bitvec: bit %d out of range for width %d", i, w.width))
	}
	return w.value>>uint(i)&1 == 1
}

// Slice returns bits [lo, hi) as a new word, bit lo becoming bit 0.
func (w Word) Slice(lo, hi int) Word {
	if lo < 0 || hi > w.width || lo >= hi {
		panic(fmt.Sprintf("bitvec: invalid slice [%d:%d) of width %d", lo, hi, w.width))
	}
	n := hi - lo
	v := w.value >> uint(lo)
	if n < MaxWidth {
		v &= 1<<uint(n) - 1
	}
	return Word{width: n, value: v}
}

// Bits returns the word least-significant bit first.
func (w Word) Bits() []bool {
	out := make([]bool, w.width)
	for i := range out {
		out[i] = w.Bit(i)
	}
	return out
}

// String formats w back into its `<width>'h<hex>` literal.
func (w Word) String() string {
	return fmt.Sprintf("%d'h%X", w.width, w.value)
}
