// Package uint128 implements fixed-width 128-bit unsigned integers on two
// uint64 words. All arithmetic wraps modulo 2^128; there is no overflow
// error path.
package uint128

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// ErrSyntax is returned by Parse for input that is neither decimal nor hex.
var ErrSyntax = errors.New("uint128: invalid syntax")

var (
	// Zero is the additive identity.
	Zero = Uint128{}
	// One is the multiplicative identity.
	One = Uint128{Lo: 1}
	// Max is 2^128-1.
	Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

	bigMask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// New returns hi<<64 | lo.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// From64 widens v.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Add returns u+v mod 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u-v mod 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Neg returns -u mod 2^128.
func (u Uint128) Neg() Uint128 {
	return Zero.Sub(u)
}

// Mul returns the low 128 bits of u*v.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	hi += u.Hi*v.Lo + u.Lo*v.Hi
	return Uint128{Hi: hi, Lo: lo}
}

// Mul64 returns the full 128-bit product of a and b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// And returns u&v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Mask returns u reduced modulo 2^n. n >= 128 returns u unchanged.
func (u Uint128) Mask(n uint) Uint128 {
	switch {
	case n >= 128:
		return u
	case n >= 64:
		return Uint128{Hi: u.Hi & (1<<(n-64) - 1), Lo: u.Lo}
	default:
		return Uint128{Lo: u.Lo & (1<<n - 1)}
	}
}

// Rsh returns u>>n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Bit returns bit i of u.
func (u Uint128) Bit(i uint) uint {
	if i >= 64 {
		return uint(u.Hi>>(i-64)) & 1
	}
	return uint(u.Lo>>i) & 1
}

// BitLen returns the number of bits required to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// IsOdd reports whether the least significant bit is set.
func (u Uint128) IsOdd() bool {
	return u.Lo&1 == 1
}

// SetOdd returns u with its least significant bit set.
func (u Uint128) SetOdd() Uint128 {
	u.Lo |= 1
	return u
}

// Equals reports whether u == v.
func (u Uint128) Equals(v Uint128) bool {
	return u == v
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u == v:
		return 0
	case u.Hi < v.Hi || (u.Hi == v.Hi && u.Lo < v.Lo):
		return -1
	default:
		return 1
	}
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// FromBig reduces x modulo 2^128. Negative values wrap the way two's
// complement does.
func FromBig(x *big.Int) Uint128 {
	m := new(big.Int).And(x, bigMask128)
	lo := new(big.Int).And(m, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := m.Rsh(m, 64).Uint64()
	return Uint128{Hi: hi, Lo: lo}
}

// FromBytes reads a big-endian integer. Inputs longer than 16 bytes keep
// only their low 128 bits.
func FromBytes(b []byte) Uint128 {
	if len(b) > 16 {
		b = b[len(b)-16:]
	}
	var buf [16]byte
	copy(buf[16-len(b):], b)
	return Uint128{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}
}

// PutBytes writes u big-endian into b, which must hold 16 bytes.
func (u Uint128) PutBytes(b []byte) {
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:16], u.Lo)
}

// Hex formats u as 0x followed by 32 lowercase hex digits.
func (u Uint128) Hex() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}

// String formats u in decimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprint(u.Lo)
	}
	return u.Big().String()
}

// Parse reads s as a 0x-prefixed hex number, a decimal number, or bare hex
// digits, in that order of preference. Values wider than 128 bits are
// reduced modulo 2^128.
func Parse(s string) (Uint128, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	base := 0
	switch {
	case strings.HasPrefix(t, "0x"):
		t, base = t[2:], 16
		if !isDigits(t, true) {
			base = 0
		}
	case isDigits(t, false):
		base = 10
	case isDigits(t, true):
		base = 16
	}
	if base == 0 {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	x, ok := new(big.Int).SetString(t, base)
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBig(x), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Uint128 {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func isDigits(s string, hex bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case hex && c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
