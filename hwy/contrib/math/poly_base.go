package math

import "github.com/ajroetker/go-halfvec/hwy"

// PolyEstrin_F16x8 evaluates the degree-7 polynomial described by c at every
// lane of x using Estrin's scheme:
//
//	A = c4*x + c0    B = c6*x + c2
//	C = c5*x + c1    D = c7*x + c3
//	result = (A + B*x^2) + (C + D*x^2)*x^4
//
// The four pairs are independent, so the dependency chain is three fused
// operations deep instead of seven for Horner's method.
func PolyEstrin_F16x8(x hwy.Float16x8, c *CoeffTable) hwy.Float16x8 {
	c0, c4 := c.Pair04()
	c2, c6 := c.Pair26()
	c1, c5 := c.Pair15()
	c3, c7 := c.Pair37()

	a := hwy.BroadcastF16x8(c4).MulAdd(x, hwy.BroadcastF16x8(c0))
	b := hwy.BroadcastF16x8(c6).MulAdd(x, hwy.BroadcastF16x8(c2))
	cc := hwy.BroadcastF16x8(c5).MulAdd(x, hwy.BroadcastF16x8(c1))
	d := hwy.BroadcastF16x8(c7).MulAdd(x, hwy.BroadcastF16x8(c3))

	x2 := x.Mul(x)
	x4 := x2.Mul(x2)

	lo := b.MulAdd(x2, a)
	hi := d.MulAdd(x2, cc)
	return hi.MulAdd(x4, lo)
}

// PolyHorner_F16x8 evaluates the same polynomial as PolyEstrin_F16x8 with
// Horner's method, highest degree first. It is slower but serves as a
// reference ordering for accuracy comparisons.
func PolyHorner_F16x8(x hwy.Float16x8, c *CoeffTable) hwy.Float16x8 {
	// Degree order of the pairing layout: x^7 .. x^0.
	order := [8]int{7, 3, 5, 1, 6, 2, 4, 0}
	p := hwy.BroadcastF16x8(c[order[0]])
	for _, k := range order[1:] {
		p = p.MulAdd(x, hwy.BroadcastF16x8(c[k]))
	}
	return p
}
