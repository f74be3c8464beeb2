package engine

import (
	"math"

	"nickandperla.net/scical/internal/token"
)

// Constants available through CONSTANT tokens.
var Constants = map[string]float64{
	token.ConstPi:         math.Pi,
	token.ConstE:          math.E,
	token.ConstPhi:        math.Phi,
	token.ConstEulerGamma: 0.5772156649015329,
}

// Compute applies a binary operator. Division by zero yields 0.
func Compute(op token.Operator, a, b float64) float64 {
	switch op {
	case token.Add:
		return a + b
	case token.Subtract:
		return a - b
	case token.Multiply:
		return a * b
	case token.Divide:
		if b == 0 {
			return 0
		}
		return a / b
	case token.Power:
		return math.Pow(a, b)
	case token.Combination:
		return Combination(a, b)
	case token.Permutation:
		return Permutation(a, b)
	}
	return b
}

// maxFactorial is the largest n whose factorial is finite in float64.
const maxFactorial = 170

// Factorial multiplies 2..n. Anything below 2, including NaN, gives 1;
// non-integers stop at the last integer not above n.
func Factorial(n float64) float64 {
	if n > maxFactorial {
		return math.Inf(1)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

// Combination returns n! / (r! (n-r)!).
func Combination(n, r float64) float64 {
	return Factorial(n) / (Factorial(r) * Factorial(n-r))
}

// Permutation returns n! / (n-r)!.
func Permutation(n, r float64) float64 {
	return Factorial(n) / Factorial(n-r)
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }
