// SPDX-License-Identifier: MIT

package formula

// Kind is the element type of a Value.
type Kind int

const (
	// Number values hold float64 samples in Num.
	Number Kind = iota
	// Boolean values hold per-sample truth values in Bool.
	Boolean
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Boolean {
		return "boolean"
	}

	return "number"
}

// Value is an evaluation result: a numeric or boolean array of length N.
// Exactly one of Num and Bool is populated, according to Kind.
type Value struct {
	Kind Kind
	Num  []float64
	Bool []bool
}

// Len returns the number of elements.
func (v Value) Len() int {
	if v.Kind == Boolean {
		return len(v.Bool)
	}

	return len(v.Num)
}

func fill(n int, x float64) Value {
	out := make([]float64, n)
	for i := range out {
		out[i] = x
	}

	return Value{Kind: Number, Num: out}
}

func fillBool(n int, b bool) Value {
	out := make([]bool, n)
	for i := range out {
		out[i] = b
	}

	return Value{Kind: Boolean, Bool: out}
}
