package num

import (
	"fmt"
	"math"
)

// Complex is an immutable (Re, Im) pair.
type Complex struct {
	Re float64
	Im float64
}

// Zero is the additive identity.
var Zero = Complex{}

// Real returns Complex{x, 0}.
func Real(x float64) Complex {
	return Complex{Re: x}
}

// Add returns a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

// Sub returns a - b.
func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

// Mul returns the complex product a * b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		a.Re*b.Re - a.Im*b.Im,
		a.Re*b.Im + a.Im*b.Re,
	}
}

// Scale returns a with both parts multiplied by s.
func (a Complex) Scale(s float64) Complex {
	return Complex{a.Re * s, a.Im * s}
}

// Accumulate adds b into a in place.
func (a *Complex) Accumulate(b Complex) {
	a.Re += b.Re
	a.Im += b.Im
}

// Magnitude returns the Euclidean norm sqrt(re^2 + im^2).
func (a Complex) Magnitude() float64 {
	return math.Sqrt(a.Re*a.Re + a.Im*a.Im)
}

// Complex128 converts a to Go's builtin complex type.
func (a Complex) Complex128() complex128 {
	return complex(a.Re, a.Im)
}

// FromComplex128 converts a builtin complex value.
func FromComplex128(c complex128) Complex {
	return Complex{real(c), imag(c)}
}

// String formats a as "(re, im)".
func (a Complex) String() string {
	return fmt.Sprintf("(%g, %g)", a.Re, a.Im)
}

// Twiddle returns the forward-transform weight exp(-i*2*pi*k/n) as
// (cos(angle), -sin(angle)).
func Twiddle(k, n int) Complex {
	angle := 2 * math.Pi * float64(k) / float64(n)
	sin, cos := math.Sincos(angle)
	return Complex{cos, -sin}
}
