package analytic

// LinearNewtonPolynomial returns the line through (x1,y1) and (x2,y2).
func LinearNewtonPolynomial(x1, x2, y1, y2 float64) Polynomial {
	dydx := (y2 - y1) / (x2 - x1)
	return Shifting{-x1}.Polynomial().Scale(dydx).AddScalar(y1)
}

// QuadraticNewtonPolynomial returns the parabola through three points.
func QuadraticNewtonPolynomial(x1, x2, x3, y1, y2, y3 float64) Polynomial {
	dydx12 := (y2 - y1) / (x2 - x1)
	dydx23 := (y3 - y2) / (x3 - x2)
	dy2dx2 := (dydx23 - dydx12) / (x3 - x1)
	s1, s2 := Shifting{-x1}.Polynomial(), Shifting{-x2}.Polynomial()
	return s1.Scale(dydx12).
		Add(s1.Mul(s2).Scale(dy2dx2)).
		AddScalar(y1)
}

// CubicNewtonPolynomial returns the cubic through four points.
func CubicNewtonPolynomial(x1, x2, x3, x4, y1, y2, y3, y4 float64) Polynomial {
	dydx12 := (y2 - y1) / (x2 - x1)
	dydx23 := (y3 - y2) / (x3 - x2)
	dydx34 := (y4 - y3) / (x4 - x3)
	dy2dx2_13 := (dydx23 - dydx12) / (x3 - x1)
	dy2dx2_24 := (dydx34 - dydx23) / (x4 - x2)
	dy3dx3 := (dy2dx2_24 - dy2dx2_13) / (x4 - x1)
	s1 := Shifting{-x1}.Polynomial()
	s12 := s1.Mul(Shifting{-x2}.Polynomial())
	s123 := s12.Mul(Shifting{-x3}.Polynomial())
	return s1.Scale(dydx12).
		Add(s12.Scale(dy2dx2_13)).
		Add(s123.Scale(dy3dx3)).
		AddScalar(y1)
}

// CubicHermite returns the cubic on [x0,x1] that passes through y0 and y1
// with slopes d0 and d1 at either end.
func CubicHermite(x0, x1, y0, y1, d0, d1 float64) Polynomial {
	// in coordinates centered on (x0,y0) the cubic is d0t+at²+ct³, where
	//   Y  =  d0X +  aX² +  cX³
	//   d1 =  d0  + 2aX  + 3cX²
	X, Y := x1-x0, y1-y0
	u := (Y - d0*X) / (X * X)
	v := (d1 - d0) / X
	local := NewPolynomial(0, 3, 0, d0, 3*u-v, (v-2*u)/X)
	return local.ComposeShifting(Shifting{-x0}).AddScalar(y0)
}

// LegendrePolynomial returns the nth Legendre polynomial,
// dⁿ/dxⁿ (x²-1)ⁿ / (2ⁿn!).
func LegendrePolynomial(n int) Polynomial {
	p := NewPolynomial(0, 2, -1, 0, 1).Pow(n)
	for i := 0; i < n; i++ {
		p = p.Derivative()
	}
	return p.Scale(1 / (float64(int(1)<<n) * factorial(n)))
}
