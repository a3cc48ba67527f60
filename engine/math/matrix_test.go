package math

import (
	m "math"
	"testing"
)

func TestNewMatrixZeroFillAndOverwrite(t *testing.T) {
	a := NewMatrix(3, 1, 2)
	want := []float64{1, 2, 0, 0, 0, 0, 0, 0, 0}
	for i, v := range want {
		if a.Data[i] != v {
			t.Fatalf("Data[%d] = %v, want %v", i, a.Data[i], v)
		}
	}
}

func TestMatrixAddSub(t *testing.T) {
	a := NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := NewIdentity(3)
	sum := a.Add(b)
	if sum.Data[0] != 2 || sum.Data[4] != 6 || sum.Data[8] != 10 {
		t.Errorf("add diagonal wrong: %v", sum.Data)
	}
	if got := sum.Sub(b); !got.Compare(a, K_FLOAT_EPSILON) {
		t.Errorf("add then sub did not round-trip: %v", got.Data)
	}
}

func TestMatrixMulScalar(t *testing.T) {
	a := NewDiagonal(4, 1, 2, 3, 4).MulScalar(2)
	if a.Data[0] != 2 || a.Data[5] != 4 || a.Data[10] != 6 || a.Data[15] != 8 {
		t.Errorf("scalar mul wrong: %v", a.Data)
	}
}

func TestMatrixIdentityIsMultiplicativeIdentity(t *testing.T) {
	for _, side := range []int{3, 4} {
		a := NewMatrix(side)
		for i := range a.Data {
			a.Data[i] = float64(i) - 3.5
		}
		if got := a.Mul(NewIdentity(side)); !got.Compare(a, K_FLOAT_EPSILON) {
			t.Errorf("side %d: m * I != m", side)
		}
		if got := NewIdentity(side).Mul(a); !got.Compare(a, K_FLOAT_EPSILON) {
			t.Errorf("side %d: I * m != m", side)
		}
	}
}

func TestMatrixMulNotCommutativeButAssociative(t *testing.T) {
	a := NewMatrix(3, 0, 1, 0, 1, 0, 0, 0, 0, 1)
	b := NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	c := NewRotation(0.3)
	if a.Mul(b).Compare(b.Mul(a), K_FLOAT_EPSILON) {
		t.Error("expected a*b != b*a for these operands")
	}
	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if !left.Compare(right, 1e-12) {
		t.Error("(a*b)*c != a*(b*c)")
	}
}

func TestMatrixTransposeTwiceIsIdentity(t *testing.T) {
	a := NewMatrix(4)
	for i := range a.Data {
		a.Data[i] = float64(i * i)
	}
	orig := NewMatrix(4, a.Data...)
	if got := a.Transpose().Transpose(); !got.Compare(orig, 0) {
		t.Errorf("transpose(transpose(m)) != m: %v", got.Data)
	}
}

func TestMatrixTranspose(t *testing.T) {
	a := NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	a.Transpose()
	want := NewMatrix(3, 1, 4, 7, 2, 5, 8, 3, 6, 9)
	if !a.Compare(want, 0) {
		t.Errorf("transpose = %v", a.Data)
	}
}

func TestMatrixBlockRotate(t *testing.T) {
	a := NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	a.Rotate(true)
	wantCW := NewMatrix(3, 7, 4, 1, 8, 5, 2, 9, 6, 3)
	if !a.Compare(wantCW, 0) {
		t.Fatalf("clockwise rotate = %v", a.Data)
	}
	// Rotating back counter-clockwise restores the original grid.
	a.Rotate(false)
	if !a.Compare(NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9), 0) {
		t.Errorf("counter-clockwise rotate = %v", a.Data)
	}
}

func TestNewDiagonal(t *testing.T) {
	a := NewDiagonal(3, 2, 4, 8)
	want := NewMatrix(3, 2, 0, 0, 0, 4, 0, 0, 0, 8)
	if !a.Compare(want, 0) {
		t.Errorf("diagonal = %v", a.Data)
	}
}

func TestNewTranslationColumnPlacement(t *testing.T) {
	a := NewTranslation(4, 5, 6, 7)
	// Last column holds the translation, final diagonal cell stays 1.
	if a.Data[3] != 5 || a.Data[7] != 6 || a.Data[11] != 7 || a.Data[15] != 1 {
		t.Fatalf("translation column wrong: %v", a.Data)
	}
	v := a.MulVec(NewVec3(1, 2, 3))
	if !v.Compare(NewVec3(6, 8, 10), K_FLOAT_EPSILON) {
		t.Errorf("translate applied = (%v, %v, %v)", v.X, v.Y, v.Z)
	}
}

func TestMatrixMulVecDimensionality(t *testing.T) {
	v := NewIdentity(4).MulVec(NewVec3(1, 2, 3))
	if v.Dim != Dim3 || v.W != 1 {
		t.Errorf("4x4 result = %+v, want 3D with w=1", v)
	}
	v2 := NewIdentity(3).MulVec(NewVec2(1, 2))
	if v2.Dim != Dim2 || v2.W != 1 {
		t.Errorf("3x3 result = %+v, want 2D with w=1", v2)
	}
}

func TestMatrixShapeMismatchPanics(t *testing.T) {
	mustPanicDimension(t, func() { NewMatrix(5) })
	mustPanicDimension(t, func() { NewIdentity(3).Add(NewIdentity(4)) })
	mustPanicDimension(t, func() { NewIdentity(4).Mul(NewIdentity(3)) })
	mustPanicDimension(t, func() { NewIdentity(4).MulVec(NewVec2(1, 2)) })
	mustPanicDimension(t, func() { NewIdentity(3).MulVec(NewVec3(1, 2, 3)) })
}

func TestAxisRotationConstructors(t *testing.T) {
	angle := K_PI / 2
	cases := []struct {
		name string
		rot  Matrix
		in   Vector
		want Vector
	}{
		{"pitch", NewPitchRotation(angle), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"yaw", NewYawRotation(angle), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"roll", NewRollRotation(angle), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
	}
	for _, tc := range cases {
		got := tc.rot.MulVec(tc.in)
		if !got.Compare(tc.want, 1e-12) {
			t.Errorf("%s: got (%v, %v, %v), want (%v, %v, %v)",
				tc.name, got.X, got.Y, got.Z, tc.want.X, tc.want.Y, tc.want.Z)
		}
	}
}

func TestRotation3x3(t *testing.T) {
	got := NewRotation(K_PI / 2).MulVec(NewVec2(1, 0))
	if m.Abs(got.X) > 1e-12 || m.Abs(got.Y-1) > 1e-12 {
		t.Errorf("z rotation of (1,0) = (%v, %v), want (0, 1)", got.X, got.Y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %v", got)
	}
	if got := Clamp(-1.5, 0.0, 3.0); got != 0 {
		t.Errorf("Clamp(-1.5,0,3) = %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2,0,3) = %v", got)
	}
}
