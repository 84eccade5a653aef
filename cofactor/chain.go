package cofactor

import "github.com/f3rmion/clearh/group"

// MulByNegZ sets out to (-z)*in and returns out, where z is the
// BLS12-381 parameter -0xd201000000010000. out may alias in.
//
// Bos-Coster (win=2) addition chain for 0xd201000000010000:
// 69 links, 63 doublings and 5 additions of the input.
func MulByNegZ[E any, P group.Point[E]](out, in *E) *E {
	var p E
	P(&p).Set(in)

	P(out).Double(&p)
	P(out).Add(out, &p)          // 3
	doubleAdd[E, P](out, 2, &p)  // 13
	doubleAdd[E, P](out, 3, &p)  // 105
	doubleAdd[E, P](out, 9, &p)  // 53761
	doubleAdd[E, P](out, 32, &p) // 230901736800257
	doubleN[E, P](out, 16)       // 15132376222941642752
	return out
}

// doubleN doubles acc in place n times.
func doubleN[E any, P group.Point[E]](acc *E, n int) {
	for range n {
		P(acc).Double(acc)
	}
}

// doubleAdd sets acc to 2^n*acc + q.
func doubleAdd[E any, P group.Point[E]](acc *E, n int, q *E) {
	doubleN[E, P](acc, n)
	P(acc).Add(acc, q)
}
