package grapple

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	upHint    = rl.Vector3{Y: 1}
	rightHint = rl.Vector3{X: 1}
)

// RopeTransform builds the matrix that stretches a unit cylinder (Y from
// -0.5 to 0.5) between from and to. Returns false when the two points are
// closer than epsilon and no direction can be derived.
//
// The basis uses world up as the hint vector unless the rope is within
// parallelThreshold of vertical, where it switches to world right.
func RopeTransform(from, to rl.Vector3, epsilon, parallelThreshold float32) (rl.Matrix, bool) {
	span := rl.Vector3Subtract(to, from)
	length := rl.Vector3Length(span)
	if length < epsilon {
		return rl.Matrix{}, false
	}

	yAxis := rl.Vector3Scale(span, 1/length)
	hint := upHint
	if absf(rl.Vector3DotProduct(yAxis, upHint)) >= parallelThreshold {
		hint = rightHint
	}
	xAxis := rl.Vector3Normalize(rl.Vector3CrossProduct(yAxis, hint))
	zAxis := rl.Vector3CrossProduct(xAxis, yAxis)
	mid := rl.Vector3Lerp(from, to, 0.5)

	return rl.Matrix{
		M0: xAxis.X, M1: xAxis.Y, M2: xAxis.Z,
		M4: yAxis.X * length, M5: yAxis.Y * length, M6: yAxis.Z * length,
		M8: zAxis.X, M9: zAxis.Y, M10: zAxis.Z,
		M12: mid.X, M13: mid.Y, M14: mid.Z,
		M15: 1,
	}, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
