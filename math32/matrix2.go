// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 2D affine transformation matrix, in the same configuration
// used in SVG and other 2D graphics systems:
//
//	XX YX
//	XY YY
//	X0 Y0
//
// where the last column is implicitly [0, 0, 1].
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// IsIdentity reports whether this matrix is the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Translate2D returns a [Matrix2] translating by the given x and y offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a [Matrix2] scaling by the given x and y factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a [Matrix2] rotating by the given angle in radians,
// counterclockwise for positive angles in a standard y-up coordinate system.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// Mul returns this matrix multiplied by the other given matrix.
// Multiplication order is the reverse of the "logical" application order:
// m.Mul(o) applies o first, then m.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// MulVector2AsVector multiplies the given [Vector2] as a vector by this matrix,
// without any translation.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y, m.YX*v.X+m.YY*v.Y)
}

// MulVector2AsPoint multiplies the given [Vector2] as a point by this matrix,
// including translation.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y+m.X0, m.YX*v.X+m.YY*v.Y+m.Y0)
}

// Translate returns this matrix composed with a translation by the given
// x and y offsets, with the translation applied first.
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// ExtractRot extracts the rotation angle in radians from this matrix.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(m.YX, m.XX)
}

// Inverse returns the inverse of this matrix, such that
// m.Mul(m.Inverse()) is the identity. Returns the identity
// for a singular (non-invertible) matrix.
func (m Matrix2) Inverse() Matrix2 {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 {
		return Identity2()
	}
	id := 1 / det
	return Matrix2{
		XX: m.YY * id,
		YX: -m.YX * id,
		XY: -m.XY * id,
		YY: m.XX * id,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * id,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * id,
	}
}

// String returns the string representation of the matrix.
func (m Matrix2) String() string {
	return fmt.Sprintf("[%v %v %v; %v %v %v]", m.XX, m.XY, m.X0, m.YX, m.YY, m.Y0)
}
