package uint128

var two = From64(2)

// Inverse returns the multiplicative inverse of a modulo 2^128 using
// Newton (Hensel) lifting. Only odd numbers are invertible; ok is false
// otherwise.
func Inverse(a Uint128) (inv Uint128, ok bool) {
	if !a.IsOdd() {
		return Zero, false
	}

	// every odd number is its own inverse mod 2
	inv = One
	for n := uint(1); n < 128; {
		n *= 2
		if n > 128 {
			n = 128
		}
		inv = inv.Mul(two.Sub(a.Mul(inv))).Mask(n)
	}
	inv = inv.Mul(two.Sub(a.Mul(inv)))

	return inv, a.Mul(inv) == One
}
